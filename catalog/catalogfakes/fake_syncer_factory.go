// This file was generated by counterfeiter
package catalogfakes

import (
	"sync"

	"github.com/inkwell-press/dewey/catalog"
	"github.com/inkwell-press/dewey/db"
)

type FakeSyncerFactory struct {
	ForAccountStub        func(account db.Account) catalog.Syncer
	forAccountMutex       sync.RWMutex
	forAccountArgsForCall []struct {
		account db.Account
	}
	forAccountReturns struct {
		result1 catalog.Syncer
	}
	forAccountReturnsOnCall map[int]struct {
		result1 catalog.Syncer
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeSyncerFactory) ForAccount(account db.Account) catalog.Syncer {
	fake.forAccountMutex.Lock()
	ret, specificReturn := fake.forAccountReturnsOnCall[len(fake.forAccountArgsForCall)]
	fake.forAccountArgsForCall = append(fake.forAccountArgsForCall, struct {
		account db.Account
	}{account})
	fake.recordInvocation("ForAccount", []interface{}{account})
	fake.forAccountMutex.Unlock()
	if fake.ForAccountStub != nil {
		return fake.ForAccountStub(account)
	}
	if specificReturn {
		return ret.result1
	}
	return fake.forAccountReturns.result1
}

func (fake *FakeSyncerFactory) ForAccountCallCount() int {
	fake.forAccountMutex.RLock()
	defer fake.forAccountMutex.RUnlock()
	return len(fake.forAccountArgsForCall)
}

func (fake *FakeSyncerFactory) ForAccountArgsForCall(i int) db.Account {
	fake.forAccountMutex.RLock()
	defer fake.forAccountMutex.RUnlock()
	return fake.forAccountArgsForCall[i].account
}

func (fake *FakeSyncerFactory) ForAccountReturns(result1 catalog.Syncer) {
	fake.ForAccountStub = nil
	fake.forAccountReturns = struct {
		result1 catalog.Syncer
	}{result1}
}

func (fake *FakeSyncerFactory) ForAccountReturnsOnCall(i int, result1 catalog.Syncer) {
	fake.ForAccountStub = nil
	if fake.forAccountReturnsOnCall == nil {
		fake.forAccountReturnsOnCall = make(map[int]struct {
			result1 catalog.Syncer
		})
	}
	fake.forAccountReturnsOnCall[i] = struct {
		result1 catalog.Syncer
	}{result1}
}

func (fake *FakeSyncerFactory) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeSyncerFactory) recordInvocation(key string, args []interface{}) {
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

var _ catalog.SyncerFactory = new(FakeSyncerFactory)
