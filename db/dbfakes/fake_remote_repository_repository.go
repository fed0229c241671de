// This file was generated by counterfeiter
package dbfakes

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/db"
)

type FakeRemoteRepositoryRepository struct {
	UpsertStub        func(logger lager.Logger, user db.User, repository *db.RemoteRepository) (db.UpsertOutcome, error)
	upsertMutex       sync.RWMutex
	upsertArgsForCall []struct {
		logger     lager.Logger
		user       db.User
		repository *db.RemoteRepository
	}
	upsertReturns struct {
		result1 db.UpsertOutcome
		result2 error
	}
	upsertReturnsOnCall map[int]struct {
		result1 db.UpsertOutcome
		result2 error
	}
	ForUserStub        func(logger lager.Logger, userID uint) ([]db.RemoteRepository, error)
	forUserMutex       sync.RWMutex
	forUserArgsForCall []struct {
		logger lager.Logger
		userID uint
	}
	forUserReturns struct {
		result1 []db.RemoteRepository
		result2 error
	}
	forUserReturnsOnCall map[int]struct {
		result1 []db.RemoteRepository
		result2 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeRemoteRepositoryRepository) Upsert(logger lager.Logger, user db.User, repository *db.RemoteRepository) (db.UpsertOutcome, error) {
	fake.upsertMutex.Lock()
	ret, specificReturn := fake.upsertReturnsOnCall[len(fake.upsertArgsForCall)]
	fake.upsertArgsForCall = append(fake.upsertArgsForCall, struct {
		logger     lager.Logger
		user       db.User
		repository *db.RemoteRepository
	}{logger, user, repository})
	fake.recordInvocation("Upsert", []interface{}{logger, user, repository})
	fake.upsertMutex.Unlock()
	if fake.UpsertStub != nil {
		return fake.UpsertStub(logger, user, repository)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fake.upsertReturns.result1, fake.upsertReturns.result2
}

func (fake *FakeRemoteRepositoryRepository) UpsertCallCount() int {
	fake.upsertMutex.RLock()
	defer fake.upsertMutex.RUnlock()
	return len(fake.upsertArgsForCall)
}

func (fake *FakeRemoteRepositoryRepository) UpsertArgsForCall(i int) (lager.Logger, db.User, *db.RemoteRepository) {
	fake.upsertMutex.RLock()
	defer fake.upsertMutex.RUnlock()
	return fake.upsertArgsForCall[i].logger, fake.upsertArgsForCall[i].user, fake.upsertArgsForCall[i].repository
}

func (fake *FakeRemoteRepositoryRepository) UpsertReturns(result1 db.UpsertOutcome, result2 error) {
	fake.UpsertStub = nil
	fake.upsertReturns = struct {
		result1 db.UpsertOutcome
		result2 error
	}{result1, result2}
}

func (fake *FakeRemoteRepositoryRepository) UpsertReturnsOnCall(i int, result1 db.UpsertOutcome, result2 error) {
	fake.UpsertStub = nil
	if fake.upsertReturnsOnCall == nil {
		fake.upsertReturnsOnCall = make(map[int]struct {
			result1 db.UpsertOutcome
			result2 error
		})
	}
	fake.upsertReturnsOnCall[i] = struct {
		result1 db.UpsertOutcome
		result2 error
	}{result1, result2}
}

func (fake *FakeRemoteRepositoryRepository) ForUser(logger lager.Logger, userID uint) ([]db.RemoteRepository, error) {
	fake.forUserMutex.Lock()
	ret, specificReturn := fake.forUserReturnsOnCall[len(fake.forUserArgsForCall)]
	fake.forUserArgsForCall = append(fake.forUserArgsForCall, struct {
		logger lager.Logger
		userID uint
	}{logger, userID})
	fake.recordInvocation("ForUser", []interface{}{logger, userID})
	fake.forUserMutex.Unlock()
	if fake.ForUserStub != nil {
		return fake.ForUserStub(logger, userID)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fake.forUserReturns.result1, fake.forUserReturns.result2
}

func (fake *FakeRemoteRepositoryRepository) ForUserCallCount() int {
	fake.forUserMutex.RLock()
	defer fake.forUserMutex.RUnlock()
	return len(fake.forUserArgsForCall)
}

func (fake *FakeRemoteRepositoryRepository) ForUserArgsForCall(i int) (lager.Logger, uint) {
	fake.forUserMutex.RLock()
	defer fake.forUserMutex.RUnlock()
	return fake.forUserArgsForCall[i].logger, fake.forUserArgsForCall[i].userID
}

func (fake *FakeRemoteRepositoryRepository) ForUserReturns(result1 []db.RemoteRepository, result2 error) {
	fake.ForUserStub = nil
	fake.forUserReturns = struct {
		result1 []db.RemoteRepository
		result2 error
	}{result1, result2}
}

func (fake *FakeRemoteRepositoryRepository) ForUserReturnsOnCall(i int, result1 []db.RemoteRepository, result2 error) {
	fake.ForUserStub = nil
	if fake.forUserReturnsOnCall == nil {
		fake.forUserReturnsOnCall = make(map[int]struct {
			result1 []db.RemoteRepository
			result2 error
		})
	}
	fake.forUserReturnsOnCall[i] = struct {
		result1 []db.RemoteRepository
		result2 error
	}{result1, result2}
}

func (fake *FakeRemoteRepositoryRepository) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeRemoteRepositoryRepository) recordInvocation(key string, args []interface{}) {
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

var _ db.RemoteRepositoryRepository = new(FakeRemoteRepositoryRepository)
