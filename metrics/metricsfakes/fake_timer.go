// This file was generated by counterfeiter
package metricsfakes

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/metrics"
)

type FakeTimer struct {
	TimeStub        func(logger lager.Logger, fn func(), tags ...string)
	timeMutex       sync.RWMutex
	timeArgsForCall []struct {
		logger lager.Logger
		fn     func()
		tags   []string
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeTimer) Time(logger lager.Logger, fn func(), tags ...string) {
	fake.timeMutex.Lock()
	fake.timeArgsForCall = append(fake.timeArgsForCall, struct {
		logger lager.Logger
		fn     func()
		tags   []string
	}{logger, fn, tags})
	fake.recordInvocation("Time", []interface{}{logger, fn, tags})
	fake.timeMutex.Unlock()
	if fake.TimeStub != nil {
		fake.TimeStub(logger, fn, tags...)
	}
}

func (fake *FakeTimer) TimeCallCount() int {
	fake.timeMutex.RLock()
	defer fake.timeMutex.RUnlock()
	return len(fake.timeArgsForCall)
}

func (fake *FakeTimer) TimeArgsForCall(i int) (lager.Logger, func(), []string) {
	fake.timeMutex.RLock()
	defer fake.timeMutex.RUnlock()
	return fake.timeArgsForCall[i].logger, fake.timeArgsForCall[i].fn, fake.timeArgsForCall[i].tags
}

func (fake *FakeTimer) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeTimer) recordInvocation(key string, args []interface{}) {
	fake.invocationsMutex.Lock()
	defer fake.invocationsMutex.Unlock()
	if fake.invocations == nil {
		fake.invocations = map[string][][]interface{}{}
	}
	if fake.invocations[key] == nil {
		fake.invocations[key] = [][]interface{}{}
	}
	fake.invocations[key] = append(fake.invocations[key], args)
}

var _ metrics.Timer = new(FakeTimer)
