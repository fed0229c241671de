// This file was generated by counterfeiter
package tokensfakes

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/db"
	"github.com/inkwell-press/dewey/tokens"
)

type FakeResolver struct {
	ResolveStub        func(logger lager.Logger, project db.Project, forceLocal bool) (string, bool)
	resolveMutex       sync.RWMutex
	resolveArgsForCall []struct {
		logger     lager.Logger
		project    db.Project
		forceLocal bool
	}
	resolveReturns struct {
		result1 string
		result2 bool
	}
	resolveReturnsOnCall map[int]struct {
		result1 string
		result2 bool
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeResolver) Resolve(logger lager.Logger, project db.Project, forceLocal bool) (string, bool) {
	fake.resolveMutex.Lock()
	ret, specificReturn := fake.resolveReturnsOnCall[len(fake.resolveArgsForCall)]
	fake.resolveArgsForCall = append(fake.resolveArgsForCall, struct {
		logger     lager.Logger
		project    db.Project
		forceLocal bool
	}{logger, project, forceLocal})
	fake.recordInvocation("Resolve", []interface{}{logger, project, forceLocal})
	fake.resolveMutex.Unlock()
	if fake.ResolveStub != nil {
		return fake.ResolveStub(logger, project, forceLocal)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fake.resolveReturns.result1, fake.resolveReturns.result2
}

func (fake *FakeResolver) ResolveCallCount() int {
	fake.resolveMutex.RLock()
	defer fake.resolveMutex.RUnlock()
	return len(fake.resolveArgsForCall)
}

func (fake *FakeResolver) ResolveArgsForCall(i int) (lager.Logger, db.Project, bool) {
	fake.resolveMutex.RLock()
	defer fake.resolveMutex.RUnlock()
	return fake.resolveArgsForCall[i].logger, fake.resolveArgsForCall[i].project, fake.resolveArgsForCall[i].forceLocal
}

func (fake *FakeResolver) ResolveReturns(result1 string, result2 bool) {
	fake.ResolveStub = nil
	fake.resolveReturns = struct {
		result1 string
		result2 bool
	}{result1, result2}
}

func (fake *FakeResolver) ResolveReturnsOnCall(i int, result1 string, result2 bool) {
	fake.ResolveStub = nil
	if fake.resolveReturnsOnCall == nil {
		fake.resolveReturnsOnCall = make(map[int]struct {
			result1 string
			result2 bool
		})
	}
	fake.resolveReturnsOnCall[i] = struct {
		result1 string
		result2 bool
	}{result1, result2}
}

func (fake *FakeResolver) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeResolver) recordInvocation(key string, args []interface{}) {
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

var _ tokens.Resolver = new(FakeResolver)
