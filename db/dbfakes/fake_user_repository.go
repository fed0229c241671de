// This file was generated by counterfeiter
package dbfakes

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/db"
)

type FakeUserRepository struct {
	FindByUsernameStub        func(logger lager.Logger, username string) (db.User, bool, error)
	findByUsernameMutex       sync.RWMutex
	findByUsernameArgsForCall []struct {
		logger   lager.Logger
		username string
	}
	findByUsernameReturns struct {
		result1 db.User
		result2 bool
		result3 error
	}
	findByUsernameReturnsOnCall map[int]struct {
		result1 db.User
		result2 bool
		result3 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeUserRepository) FindByUsername(logger lager.Logger, username string) (db.User, bool, error) {
	fake.findByUsernameMutex.Lock()
	ret, specificReturn := fake.findByUsernameReturnsOnCall[len(fake.findByUsernameArgsForCall)]
	fake.findByUsernameArgsForCall = append(fake.findByUsernameArgsForCall, struct {
		logger   lager.Logger
		username string
	}{logger, username})
	fake.recordInvocation("FindByUsername", []interface{}{logger, username})
	fake.findByUsernameMutex.Unlock()
	if fake.FindByUsernameStub != nil {
		return fake.FindByUsernameStub(logger, username)
	}
	if specificReturn {
		return ret.result1, ret.result2, ret.result3
	}
	return fake.findByUsernameReturns.result1, fake.findByUsernameReturns.result2, fake.findByUsernameReturns.result3
}

func (fake *FakeUserRepository) FindByUsernameCallCount() int {
	fake.findByUsernameMutex.RLock()
	defer fake.findByUsernameMutex.RUnlock()
	return len(fake.findByUsernameArgsForCall)
}

func (fake *FakeUserRepository) FindByUsernameArgsForCall(i int) (lager.Logger, string) {
	fake.findByUsernameMutex.RLock()
	defer fake.findByUsernameMutex.RUnlock()
	return fake.findByUsernameArgsForCall[i].logger, fake.findByUsernameArgsForCall[i].username
}

func (fake *FakeUserRepository) FindByUsernameReturns(result1 db.User, result2 bool, result3 error) {
	fake.FindByUsernameStub = nil
	fake.findByUsernameReturns = struct {
		result1 db.User
		result2 bool
		result3 error
	}{result1, result2, result3}
}

func (fake *FakeUserRepository) FindByUsernameReturnsOnCall(i int, result1 db.User, result2 bool, result3 error) {
	fake.FindByUsernameStub = nil
	if fake.findByUsernameReturnsOnCall == nil {
		fake.findByUsernameReturnsOnCall = make(map[int]struct {
			result1 db.User
			result2 bool
			result3 error
		})
	}
	fake.findByUsernameReturnsOnCall[i] = struct {
		result1 db.User
		result2 bool
		result3 error
	}{result1, result2, result3}
}

func (fake *FakeUserRepository) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeUserRepository) recordInvocation(key string, args []interface{}) {
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

var _ db.UserRepository = new(FakeUserRepository)
