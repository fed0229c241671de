// This file was generated by counterfeiter
package webhookfakes

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/db"
	"github.com/inkwell-press/dewey/webhook"
)

type FakeRegistrar struct {
	SetupStub        func(logger lager.Logger, project db.Project) webhook.Outcome
	setupMutex       sync.RWMutex
	setupArgsForCall []struct {
		logger  lager.Logger
		project db.Project
	}
	setupReturns struct {
		result1 webhook.Outcome
	}
	setupReturnsOnCall map[int]struct {
		result1 webhook.Outcome
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeRegistrar) Setup(logger lager.Logger, project db.Project) webhook.Outcome {
	fake.setupMutex.Lock()
	ret, specificReturn := fake.setupReturnsOnCall[len(fake.setupArgsForCall)]
	fake.setupArgsForCall = append(fake.setupArgsForCall, struct {
		logger  lager.Logger
		project db.Project
	}{logger, project})
	fake.recordInvocation("Setup", []interface{}{logger, project})
	fake.setupMutex.Unlock()
	if fake.SetupStub != nil {
		return fake.SetupStub(logger, project)
	}
	if specificReturn {
		return ret.result1
	}
	return fake.setupReturns.result1
}

func (fake *FakeRegistrar) SetupCallCount() int {
	fake.setupMutex.RLock()
	defer fake.setupMutex.RUnlock()
	return len(fake.setupArgsForCall)
}

func (fake *FakeRegistrar) SetupArgsForCall(i int) (lager.Logger, db.Project) {
	fake.setupMutex.RLock()
	defer fake.setupMutex.RUnlock()
	return fake.setupArgsForCall[i].logger, fake.setupArgsForCall[i].project
}

func (fake *FakeRegistrar) SetupReturns(result1 webhook.Outcome) {
	fake.SetupStub = nil
	fake.setupReturns = struct {
		result1 webhook.Outcome
	}{result1}
}

func (fake *FakeRegistrar) SetupReturnsOnCall(i int, result1 webhook.Outcome) {
	fake.SetupStub = nil
	if fake.setupReturnsOnCall == nil {
		fake.setupReturnsOnCall = make(map[int]struct {
			result1 webhook.Outcome
		})
	}
	fake.setupReturnsOnCall[i] = struct {
		result1 webhook.Outcome
	}{result1}
}

func (fake *FakeRegistrar) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeRegistrar) recordInvocation(key string, args []interface{}) {
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

var _ webhook.Registrar = new(FakeRegistrar)
