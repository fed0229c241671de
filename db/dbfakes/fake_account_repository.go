// This file was generated by counterfeiter
package dbfakes

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/db"
)

type FakeAccountRepository struct {
	ForUserStub        func(logger lager.Logger, userID uint, provider string) ([]db.Account, error)
	forUserMutex       sync.RWMutex
	forUserArgsForCall []struct {
		logger   lager.Logger
		userID   uint
		provider string
	}
	forUserReturns struct {
		result1 []db.Account
		result2 error
	}
	forUserReturnsOnCall map[int]struct {
		result1 []db.Account
		result2 error
	}
	ForProviderStub        func(logger lager.Logger, provider string) ([]db.Account, error)
	forProviderMutex       sync.RWMutex
	forProviderArgsForCall []struct {
		logger   lager.Logger
		provider string
	}
	forProviderReturns struct {
		result1 []db.Account
		result2 error
	}
	forProviderReturnsOnCall map[int]struct {
		result1 []db.Account
		result2 error
	}
	ForRepositoryStub        func(logger lager.Logger, provider string, fullName string) ([]db.Account, error)
	forRepositoryMutex       sync.RWMutex
	forRepositoryArgsForCall []struct {
		logger   lager.Logger
		provider string
		fullName string
	}
	forRepositoryReturns struct {
		result1 []db.Account
		result2 error
	}
	forRepositoryReturnsOnCall map[int]struct {
		result1 []db.Account
		result2 error
	}
	FindByLoginStub        func(logger lager.Logger, provider string, login string) (db.Account, bool, error)
	findByLoginMutex       sync.RWMutex
	findByLoginArgsForCall []struct {
		logger   lager.Logger
		provider string
		login    string
	}
	findByLoginReturns struct {
		result1 db.Account
		result2 bool
		result3 error
	}
	findByLoginReturnsOnCall map[int]struct {
		result1 db.Account
		result2 bool
		result3 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeAccountRepository) ForUser(logger lager.Logger, userID uint, provider string) ([]db.Account, error) {
	fake.forUserMutex.Lock()
	ret, specificReturn := fake.forUserReturnsOnCall[len(fake.forUserArgsForCall)]
	fake.forUserArgsForCall = append(fake.forUserArgsForCall, struct {
		logger   lager.Logger
		userID   uint
		provider string
	}{logger, userID, provider})
	fake.recordInvocation("ForUser", []interface{}{logger, userID, provider})
	fake.forUserMutex.Unlock()
	if fake.ForUserStub != nil {
		return fake.ForUserStub(logger, userID, provider)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fake.forUserReturns.result1, fake.forUserReturns.result2
}

func (fake *FakeAccountRepository) ForUserCallCount() int {
	fake.forUserMutex.RLock()
	defer fake.forUserMutex.RUnlock()
	return len(fake.forUserArgsForCall)
}

func (fake *FakeAccountRepository) ForUserArgsForCall(i int) (lager.Logger, uint, string) {
	fake.forUserMutex.RLock()
	defer fake.forUserMutex.RUnlock()
	return fake.forUserArgsForCall[i].logger, fake.forUserArgsForCall[i].userID, fake.forUserArgsForCall[i].provider
}

func (fake *FakeAccountRepository) ForUserReturns(result1 []db.Account, result2 error) {
	fake.ForUserStub = nil
	fake.forUserReturns = struct {
		result1 []db.Account
		result2 error
	}{result1, result2}
}

func (fake *FakeAccountRepository) ForUserReturnsOnCall(i int, result1 []db.Account, result2 error) {
	fake.ForUserStub = nil
	if fake.forUserReturnsOnCall == nil {
		fake.forUserReturnsOnCall = make(map[int]struct {
			result1 []db.Account
			result2 error
		})
	}
	fake.forUserReturnsOnCall[i] = struct {
		result1 []db.Account
		result2 error
	}{result1, result2}
}

func (fake *FakeAccountRepository) ForProvider(logger lager.Logger, provider string) ([]db.Account, error) {
	fake.forProviderMutex.Lock()
	ret, specificReturn := fake.forProviderReturnsOnCall[len(fake.forProviderArgsForCall)]
	fake.forProviderArgsForCall = append(fake.forProviderArgsForCall, struct {
		logger   lager.Logger
		provider string
	}{logger, provider})
	fake.recordInvocation("ForProvider", []interface{}{logger, provider})
	fake.forProviderMutex.Unlock()
	if fake.ForProviderStub != nil {
		return fake.ForProviderStub(logger, provider)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fake.forProviderReturns.result1, fake.forProviderReturns.result2
}

func (fake *FakeAccountRepository) ForProviderCallCount() int {
	fake.forProviderMutex.RLock()
	defer fake.forProviderMutex.RUnlock()
	return len(fake.forProviderArgsForCall)
}

func (fake *FakeAccountRepository) ForProviderArgsForCall(i int) (lager.Logger, string) {
	fake.forProviderMutex.RLock()
	defer fake.forProviderMutex.RUnlock()
	return fake.forProviderArgsForCall[i].logger, fake.forProviderArgsForCall[i].provider
}

func (fake *FakeAccountRepository) ForProviderReturns(result1 []db.Account, result2 error) {
	fake.ForProviderStub = nil
	fake.forProviderReturns = struct {
		result1 []db.Account
		result2 error
	}{result1, result2}
}

func (fake *FakeAccountRepository) ForProviderReturnsOnCall(i int, result1 []db.Account, result2 error) {
	fake.ForProviderStub = nil
	if fake.forProviderReturnsOnCall == nil {
		fake.forProviderReturnsOnCall = make(map[int]struct {
			result1 []db.Account
			result2 error
		})
	}
	fake.forProviderReturnsOnCall[i] = struct {
		result1 []db.Account
		result2 error
	}{result1, result2}
}

func (fake *FakeAccountRepository) ForRepository(logger lager.Logger, provider string, fullName string) ([]db.Account, error) {
	fake.forRepositoryMutex.Lock()
	ret, specificReturn := fake.forRepositoryReturnsOnCall[len(fake.forRepositoryArgsForCall)]
	fake.forRepositoryArgsForCall = append(fake.forRepositoryArgsForCall, struct {
		logger   lager.Logger
		provider string
		fullName string
	}{logger, provider, fullName})
	fake.recordInvocation("ForRepository", []interface{}{logger, provider, fullName})
	fake.forRepositoryMutex.Unlock()
	if fake.ForRepositoryStub != nil {
		return fake.ForRepositoryStub(logger, provider, fullName)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fake.forRepositoryReturns.result1, fake.forRepositoryReturns.result2
}

func (fake *FakeAccountRepository) ForRepositoryCallCount() int {
	fake.forRepositoryMutex.RLock()
	defer fake.forRepositoryMutex.RUnlock()
	return len(fake.forRepositoryArgsForCall)
}

func (fake *FakeAccountRepository) ForRepositoryArgsForCall(i int) (lager.Logger, string, string) {
	fake.forRepositoryMutex.RLock()
	defer fake.forRepositoryMutex.RUnlock()
	return fake.forRepositoryArgsForCall[i].logger, fake.forRepositoryArgsForCall[i].provider, fake.forRepositoryArgsForCall[i].fullName
}

func (fake *FakeAccountRepository) ForRepositoryReturns(result1 []db.Account, result2 error) {
	fake.ForRepositoryStub = nil
	fake.forRepositoryReturns = struct {
		result1 []db.Account
		result2 error
	}{result1, result2}
}

func (fake *FakeAccountRepository) ForRepositoryReturnsOnCall(i int, result1 []db.Account, result2 error) {
	fake.ForRepositoryStub = nil
	if fake.forRepositoryReturnsOnCall == nil {
		fake.forRepositoryReturnsOnCall = make(map[int]struct {
			result1 []db.Account
			result2 error
		})
	}
	fake.forRepositoryReturnsOnCall[i] = struct {
		result1 []db.Account
		result2 error
	}{result1, result2}
}

func (fake *FakeAccountRepository) FindByLogin(logger lager.Logger, provider string, login string) (db.Account, bool, error) {
	fake.findByLoginMutex.Lock()
	ret, specificReturn := fake.findByLoginReturnsOnCall[len(fake.findByLoginArgsForCall)]
	fake.findByLoginArgsForCall = append(fake.findByLoginArgsForCall, struct {
		logger   lager.Logger
		provider string
		login    string
	}{logger, provider, login})
	fake.recordInvocation("FindByLogin", []interface{}{logger, provider, login})
	fake.findByLoginMutex.Unlock()
	if fake.FindByLoginStub != nil {
		return fake.FindByLoginStub(logger, provider, login)
	}
	if specificReturn {
		return ret.result1, ret.result2, ret.result3
	}
	return fake.findByLoginReturns.result1, fake.findByLoginReturns.result2, fake.findByLoginReturns.result3
}

func (fake *FakeAccountRepository) FindByLoginCallCount() int {
	fake.findByLoginMutex.RLock()
	defer fake.findByLoginMutex.RUnlock()
	return len(fake.findByLoginArgsForCall)
}

func (fake *FakeAccountRepository) FindByLoginArgsForCall(i int) (lager.Logger, string, string) {
	fake.findByLoginMutex.RLock()
	defer fake.findByLoginMutex.RUnlock()
	return fake.findByLoginArgsForCall[i].logger, fake.findByLoginArgsForCall[i].provider, fake.findByLoginArgsForCall[i].login
}

func (fake *FakeAccountRepository) FindByLoginReturns(result1 db.Account, result2 bool, result3 error) {
	fake.FindByLoginStub = nil
	fake.findByLoginReturns = struct {
		result1 db.Account
		result2 bool
		result3 error
	}{result1, result2, result3}
}

func (fake *FakeAccountRepository) FindByLoginReturnsOnCall(i int, result1 db.Account, result2 bool, result3 error) {
	fake.FindByLoginStub = nil
	if fake.findByLoginReturnsOnCall == nil {
		fake.findByLoginReturnsOnCall = make(map[int]struct {
			result1 db.Account
			result2 bool
			result3 error
		})
	}
	fake.findByLoginReturnsOnCall[i] = struct {
		result1 db.Account
		result2 bool
		result3 error
	}{result1, result2, result3}
}

func (fake *FakeAccountRepository) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeAccountRepository) recordInvocation(key string, args []interface{}) {
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

var _ db.AccountRepository = new(FakeAccountRepository)
