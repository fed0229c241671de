// This file was generated by counterfeiter
package tokensfakes

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/tokens"
)

type FakeProjectTokenFetcher struct {
	ProjectTokenStub        func(logger lager.Logger, slug string) (string, error)
	projectTokenMutex       sync.RWMutex
	projectTokenArgsForCall []struct {
		logger lager.Logger
		slug   string
	}
	projectTokenReturns struct {
		result1 string
		result2 error
	}
	projectTokenReturnsOnCall map[int]struct {
		result1 string
		result2 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeProjectTokenFetcher) ProjectToken(logger lager.Logger, slug string) (string, error) {
	fake.projectTokenMutex.Lock()
	ret, specificReturn := fake.projectTokenReturnsOnCall[len(fake.projectTokenArgsForCall)]
	fake.projectTokenArgsForCall = append(fake.projectTokenArgsForCall, struct {
		logger lager.Logger
		slug   string
	}{logger, slug})
	fake.recordInvocation("ProjectToken", []interface{}{logger, slug})
	fake.projectTokenMutex.Unlock()
	if fake.ProjectTokenStub != nil {
		return fake.ProjectTokenStub(logger, slug)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fake.projectTokenReturns.result1, fake.projectTokenReturns.result2
}

func (fake *FakeProjectTokenFetcher) ProjectTokenCallCount() int {
	fake.projectTokenMutex.RLock()
	defer fake.projectTokenMutex.RUnlock()
	return len(fake.projectTokenArgsForCall)
}

func (fake *FakeProjectTokenFetcher) ProjectTokenArgsForCall(i int) (lager.Logger, string) {
	fake.projectTokenMutex.RLock()
	defer fake.projectTokenMutex.RUnlock()
	return fake.projectTokenArgsForCall[i].logger, fake.projectTokenArgsForCall[i].slug
}

func (fake *FakeProjectTokenFetcher) ProjectTokenReturns(result1 string, result2 error) {
	fake.ProjectTokenStub = nil
	fake.projectTokenReturns = struct {
		result1 string
		result2 error
	}{result1, result2}
}

func (fake *FakeProjectTokenFetcher) ProjectTokenReturnsOnCall(i int, result1 string, result2 error) {
	fake.ProjectTokenStub = nil
	if fake.projectTokenReturnsOnCall == nil {
		fake.projectTokenReturnsOnCall = make(map[int]struct {
			result1 string
			result2 error
		})
	}
	fake.projectTokenReturnsOnCall[i] = struct {
		result1 string
		result2 error
	}{result1, result2}
}

func (fake *FakeProjectTokenFetcher) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeProjectTokenFetcher) recordInvocation(key string, args []interface{}) {
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

var _ tokens.ProjectTokenFetcher = new(FakeProjectTokenFetcher)
