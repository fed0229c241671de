// This file was generated by counterfeiter
package webhookfakes

import (
	"sync"

	"github.com/inkwell-press/dewey/githubclient"
	"github.com/inkwell-press/dewey/webhook"
)

type FakeClientFactory struct {
	ForTokenStub        func(token string) githubclient.Client
	forTokenMutex       sync.RWMutex
	forTokenArgsForCall []struct {
		token string
	}
	forTokenReturns struct {
		result1 githubclient.Client
	}
	forTokenReturnsOnCall map[int]struct {
		result1 githubclient.Client
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeClientFactory) ForToken(token string) githubclient.Client {
	fake.forTokenMutex.Lock()
	ret, specificReturn := fake.forTokenReturnsOnCall[len(fake.forTokenArgsForCall)]
	fake.forTokenArgsForCall = append(fake.forTokenArgsForCall, struct {
		token string
	}{token})
	fake.recordInvocation("ForToken", []interface{}{token})
	fake.forTokenMutex.Unlock()
	if fake.ForTokenStub != nil {
		return fake.ForTokenStub(token)
	}
	if specificReturn {
		return ret.result1
	}
	return fake.forTokenReturns.result1
}

func (fake *FakeClientFactory) ForTokenCallCount() int {
	fake.forTokenMutex.RLock()
	defer fake.forTokenMutex.RUnlock()
	return len(fake.forTokenArgsForCall)
}

func (fake *FakeClientFactory) ForTokenArgsForCall(i int) string {
	fake.forTokenMutex.RLock()
	defer fake.forTokenMutex.RUnlock()
	return fake.forTokenArgsForCall[i].token
}

func (fake *FakeClientFactory) ForTokenReturns(result1 githubclient.Client) {
	fake.ForTokenStub = nil
	fake.forTokenReturns = struct {
		result1 githubclient.Client
	}{result1}
}

func (fake *FakeClientFactory) ForTokenReturnsOnCall(i int, result1 githubclient.Client) {
	fake.ForTokenStub = nil
	if fake.forTokenReturnsOnCall == nil {
		fake.forTokenReturnsOnCall = make(map[int]struct {
			result1 githubclient.Client
		})
	}
	fake.forTokenReturnsOnCall[i] = struct {
		result1 githubclient.Client
	}{result1}
}

func (fake *FakeClientFactory) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeClientFactory) recordInvocation(key string, args []interface{}) {
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

var _ webhook.ClientFactory = new(FakeClientFactory)
