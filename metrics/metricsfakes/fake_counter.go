// This file was generated by counterfeiter
package metricsfakes

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/metrics"
)

type FakeCounter struct {
	IncStub        func(logger lager.Logger, tags ...string)
	incMutex       sync.RWMutex
	incArgsForCall []struct {
		logger lager.Logger
		tags   []string
	}
	IncNStub        func(logger lager.Logger, count int, tags ...string)
	incNMutex       sync.RWMutex
	incNArgsForCall []struct {
		logger lager.Logger
		count  int
		tags   []string
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeCounter) Inc(logger lager.Logger, tags ...string) {
	fake.incMutex.Lock()
	fake.incArgsForCall = append(fake.incArgsForCall, struct {
		logger lager.Logger
		tags   []string
	}{logger, tags})
	fake.recordInvocation("Inc", []interface{}{logger, tags})
	fake.incMutex.Unlock()
	if fake.IncStub != nil {
		fake.IncStub(logger, tags...)
	}
}

func (fake *FakeCounter) IncCallCount() int {
	fake.incMutex.RLock()
	defer fake.incMutex.RUnlock()
	return len(fake.incArgsForCall)
}

func (fake *FakeCounter) IncArgsForCall(i int) (lager.Logger, []string) {
	fake.incMutex.RLock()
	defer fake.incMutex.RUnlock()
	return fake.incArgsForCall[i].logger, fake.incArgsForCall[i].tags
}

func (fake *FakeCounter) IncN(logger lager.Logger, count int, tags ...string) {
	fake.incNMutex.Lock()
	fake.incNArgsForCall = append(fake.incNArgsForCall, struct {
		logger lager.Logger
		count  int
		tags   []string
	}{logger, count, tags})
	fake.recordInvocation("IncN", []interface{}{logger, count, tags})
	fake.incNMutex.Unlock()
	if fake.IncNStub != nil {
		fake.IncNStub(logger, count, tags...)
	}
}

func (fake *FakeCounter) IncNCallCount() int {
	fake.incNMutex.RLock()
	defer fake.incNMutex.RUnlock()
	return len(fake.incNArgsForCall)
}

func (fake *FakeCounter) IncNArgsForCall(i int) (lager.Logger, int, []string) {
	fake.incNMutex.RLock()
	defer fake.incNMutex.RUnlock()
	return fake.incNArgsForCall[i].logger, fake.incNArgsForCall[i].count, fake.incNArgsForCall[i].tags
}

func (fake *FakeCounter) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeCounter) recordInvocation(key string, args []interface{}) {
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

var _ metrics.Counter = new(FakeCounter)
