// This file was generated by counterfeiter
package catalogfakes

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/catalog"
)

type FakeResyncer struct {
	ResyncAllStub        func(logger lager.Logger)
	resyncAllMutex       sync.RWMutex
	resyncAllArgsForCall []struct {
		logger lager.Logger
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeResyncer) ResyncAll(logger lager.Logger) {
	fake.resyncAllMutex.Lock()
	fake.resyncAllArgsForCall = append(fake.resyncAllArgsForCall, struct {
		logger lager.Logger
	}{logger})
	fake.recordInvocation("ResyncAll", []interface{}{logger})
	fake.resyncAllMutex.Unlock()
	if fake.ResyncAllStub != nil {
		fake.ResyncAllStub(logger)
	}
}

func (fake *FakeResyncer) ResyncAllCallCount() int {
	fake.resyncAllMutex.RLock()
	defer fake.resyncAllMutex.RUnlock()
	return len(fake.resyncAllArgsForCall)
}

func (fake *FakeResyncer) ResyncAllArgsForCall(i int) lager.Logger {
	fake.resyncAllMutex.RLock()
	defer fake.resyncAllMutex.RUnlock()
	return fake.resyncAllArgsForCall[i].logger
}

func (fake *FakeResyncer) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeResyncer) recordInvocation(key string, args []interface{}) {
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

var _ catalog.Resyncer = new(FakeResyncer)
