// This file was generated by counterfeiter
package dbfakes

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/db"
)

type FakeProjectRepository struct {
	FindBySlugStub        func(logger lager.Logger, slug string) (db.Project, bool, error)
	findBySlugMutex       sync.RWMutex
	findBySlugArgsForCall []struct {
		logger lager.Logger
		slug   string
	}
	findBySlugReturns struct {
		result1 db.Project
		result2 bool
		result3 error
	}
	findBySlugReturnsOnCall map[int]struct {
		result1 db.Project
		result2 bool
		result3 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeProjectRepository) FindBySlug(logger lager.Logger, slug string) (db.Project, bool, error) {
	fake.findBySlugMutex.Lock()
	ret, specificReturn := fake.findBySlugReturnsOnCall[len(fake.findBySlugArgsForCall)]
	fake.findBySlugArgsForCall = append(fake.findBySlugArgsForCall, struct {
		logger lager.Logger
		slug   string
	}{logger, slug})
	fake.recordInvocation("FindBySlug", []interface{}{logger, slug})
	fake.findBySlugMutex.Unlock()
	if fake.FindBySlugStub != nil {
		return fake.FindBySlugStub(logger, slug)
	}
	if specificReturn {
		return ret.result1, ret.result2, ret.result3
	}
	return fake.findBySlugReturns.result1, fake.findBySlugReturns.result2, fake.findBySlugReturns.result3
}

func (fake *FakeProjectRepository) FindBySlugCallCount() int {
	fake.findBySlugMutex.RLock()
	defer fake.findBySlugMutex.RUnlock()
	return len(fake.findBySlugArgsForCall)
}

func (fake *FakeProjectRepository) FindBySlugArgsForCall(i int) (lager.Logger, string) {
	fake.findBySlugMutex.RLock()
	defer fake.findBySlugMutex.RUnlock()
	return fake.findBySlugArgsForCall[i].logger, fake.findBySlugArgsForCall[i].slug
}

func (fake *FakeProjectRepository) FindBySlugReturns(result1 db.Project, result2 bool, result3 error) {
	fake.FindBySlugStub = nil
	fake.findBySlugReturns = struct {
		result1 db.Project
		result2 bool
		result3 error
	}{result1, result2, result3}
}

func (fake *FakeProjectRepository) FindBySlugReturnsOnCall(i int, result1 db.Project, result2 bool, result3 error) {
	fake.FindBySlugStub = nil
	if fake.findBySlugReturnsOnCall == nil {
		fake.findBySlugReturnsOnCall = make(map[int]struct {
			result1 db.Project
			result2 bool
			result3 error
		})
	}
	fake.findBySlugReturnsOnCall[i] = struct {
		result1 db.Project
		result2 bool
		result3 error
	}{result1, result2, result3}
}

func (fake *FakeProjectRepository) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeProjectRepository) recordInvocation(key string, args []interface{}) {
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

var _ db.ProjectRepository = new(FakeProjectRepository)
