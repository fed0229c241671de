// This file was generated by counterfeiter
package githubclientfakes

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/githubclient"
)

type FakeClient struct {
	UserRepositoriesStub        func(lager.Logger) ([]githubclient.GitHubRepository, error)
	userRepositoriesMutex       sync.RWMutex
	userRepositoriesArgsForCall []struct {
		arg1 lager.Logger
	}
	userRepositoriesReturns struct {
		result1 []githubclient.GitHubRepository
		result2 error
	}
	userRepositoriesReturnsOnCall map[int]struct {
		result1 []githubclient.GitHubRepository
		result2 error
	}
	UserOrganizationsStub        func(lager.Logger) ([]githubclient.GitHubOrganization, error)
	userOrganizationsMutex       sync.RWMutex
	userOrganizationsArgsForCall []struct {
		arg1 lager.Logger
	}
	userOrganizationsReturns struct {
		result1 []githubclient.GitHubOrganization
		result2 error
	}
	userOrganizationsReturnsOnCall map[int]struct {
		result1 []githubclient.GitHubOrganization
		result2 error
	}
	OrganizationStub        func(lager.Logger, string) (githubclient.GitHubOrganization, error)
	organizationMutex       sync.RWMutex
	organizationArgsForCall []struct {
		arg1 lager.Logger
		arg2 string
	}
	organizationReturns struct {
		result1 githubclient.GitHubOrganization
		result2 error
	}
	organizationReturnsOnCall map[int]struct {
		result1 githubclient.GitHubOrganization
		result2 error
	}
	OrganizationRepositoriesStub        func(lager.Logger, string) ([]githubclient.GitHubRepository, error)
	organizationRepositoriesMutex       sync.RWMutex
	organizationRepositoriesArgsForCall []struct {
		arg1 lager.Logger
		arg2 string
	}
	organizationRepositoriesReturns struct {
		result1 []githubclient.GitHubRepository
		result2 error
	}
	organizationRepositoriesReturnsOnCall map[int]struct {
		result1 []githubclient.GitHubRepository
		result2 error
	}
	CreateRepositoryHookStub        func(lager.Logger, string, string, string, string) error
	createRepositoryHookMutex       sync.RWMutex
	createRepositoryHookArgsForCall []struct {
		arg1 lager.Logger
		arg2 string
		arg3 string
		arg4 string
		arg5 string
	}
	createRepositoryHookReturns struct {
		result1 error
	}
	createRepositoryHookReturnsOnCall map[int]struct {
		result1 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeClient) UserRepositories(arg1 lager.Logger) ([]githubclient.GitHubRepository, error) {
	fake.userRepositoriesMutex.Lock()
	ret, specificReturn := fake.userRepositoriesReturnsOnCall[len(fake.userRepositoriesArgsForCall)]
	fake.userRepositoriesArgsForCall = append(fake.userRepositoriesArgsForCall, struct {
		arg1 lager.Logger
	}{arg1})
	fake.recordInvocation("UserRepositories", []interface{}{arg1})
	fake.userRepositoriesMutex.Unlock()
	if fake.UserRepositoriesStub != nil {
		return fake.UserRepositoriesStub(arg1)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fake.userRepositoriesReturns.result1, fake.userRepositoriesReturns.result2
}

func (fake *FakeClient) UserRepositoriesCallCount() int {
	fake.userRepositoriesMutex.RLock()
	defer fake.userRepositoriesMutex.RUnlock()
	return len(fake.userRepositoriesArgsForCall)
}

func (fake *FakeClient) UserRepositoriesArgsForCall(i int) lager.Logger {
	fake.userRepositoriesMutex.RLock()
	defer fake.userRepositoriesMutex.RUnlock()
	return fake.userRepositoriesArgsForCall[i].arg1
}

func (fake *FakeClient) UserRepositoriesReturns(result1 []githubclient.GitHubRepository, result2 error) {
	fake.UserRepositoriesStub = nil
	fake.userRepositoriesReturns = struct {
		result1 []githubclient.GitHubRepository
		result2 error
	}{result1, result2}
}

func (fake *FakeClient) UserRepositoriesReturnsOnCall(i int, result1 []githubclient.GitHubRepository, result2 error) {
	fake.UserRepositoriesStub = nil
	if fake.userRepositoriesReturnsOnCall == nil {
		fake.userRepositoriesReturnsOnCall = make(map[int]struct {
			result1 []githubclient.GitHubRepository
			result2 error
		})
	}
	fake.userRepositoriesReturnsOnCall[i] = struct {
		result1 []githubclient.GitHubRepository
		result2 error
	}{result1, result2}
}

func (fake *FakeClient) UserOrganizations(arg1 lager.Logger) ([]githubclient.GitHubOrganization, error) {
	fake.userOrganizationsMutex.Lock()
	ret, specificReturn := fake.userOrganizationsReturnsOnCall[len(fake.userOrganizationsArgsForCall)]
	fake.userOrganizationsArgsForCall = append(fake.userOrganizationsArgsForCall, struct {
		arg1 lager.Logger
	}{arg1})
	fake.recordInvocation("UserOrganizations", []interface{}{arg1})
	fake.userOrganizationsMutex.Unlock()
	if fake.UserOrganizationsStub != nil {
		return fake.UserOrganizationsStub(arg1)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fake.userOrganizationsReturns.result1, fake.userOrganizationsReturns.result2
}

func (fake *FakeClient) UserOrganizationsCallCount() int {
	fake.userOrganizationsMutex.RLock()
	defer fake.userOrganizationsMutex.RUnlock()
	return len(fake.userOrganizationsArgsForCall)
}

func (fake *FakeClient) UserOrganizationsArgsForCall(i int) lager.Logger {
	fake.userOrganizationsMutex.RLock()
	defer fake.userOrganizationsMutex.RUnlock()
	return fake.userOrganizationsArgsForCall[i].arg1
}

func (fake *FakeClient) UserOrganizationsReturns(result1 []githubclient.GitHubOrganization, result2 error) {
	fake.UserOrganizationsStub = nil
	fake.userOrganizationsReturns = struct {
		result1 []githubclient.GitHubOrganization
		result2 error
	}{result1, result2}
}

func (fake *FakeClient) UserOrganizationsReturnsOnCall(i int, result1 []githubclient.GitHubOrganization, result2 error) {
	fake.UserOrganizationsStub = nil
	if fake.userOrganizationsReturnsOnCall == nil {
		fake.userOrganizationsReturnsOnCall = make(map[int]struct {
			result1 []githubclient.GitHubOrganization
			result2 error
		})
	}
	fake.userOrganizationsReturnsOnCall[i] = struct {
		result1 []githubclient.GitHubOrganization
		result2 error
	}{result1, result2}
}

func (fake *FakeClient) Organization(arg1 lager.Logger, arg2 string) (githubclient.GitHubOrganization, error) {
	fake.organizationMutex.Lock()
	ret, specificReturn := fake.organizationReturnsOnCall[len(fake.organizationArgsForCall)]
	fake.organizationArgsForCall = append(fake.organizationArgsForCall, struct {
		arg1 lager.Logger
		arg2 string
	}{arg1, arg2})
	fake.recordInvocation("Organization", []interface{}{arg1, arg2})
	fake.organizationMutex.Unlock()
	if fake.OrganizationStub != nil {
		return fake.OrganizationStub(arg1, arg2)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fake.organizationReturns.result1, fake.organizationReturns.result2
}

func (fake *FakeClient) OrganizationCallCount() int {
	fake.organizationMutex.RLock()
	defer fake.organizationMutex.RUnlock()
	return len(fake.organizationArgsForCall)
}

func (fake *FakeClient) OrganizationArgsForCall(i int) (lager.Logger, string) {
	fake.organizationMutex.RLock()
	defer fake.organizationMutex.RUnlock()
	return fake.organizationArgsForCall[i].arg1, fake.organizationArgsForCall[i].arg2
}

func (fake *FakeClient) OrganizationReturns(result1 githubclient.GitHubOrganization, result2 error) {
	fake.OrganizationStub = nil
	fake.organizationReturns = struct {
		result1 githubclient.GitHubOrganization
		result2 error
	}{result1, result2}
}

func (fake *FakeClient) OrganizationReturnsOnCall(i int, result1 githubclient.GitHubOrganization, result2 error) {
	fake.OrganizationStub = nil
	if fake.organizationReturnsOnCall == nil {
		fake.organizationReturnsOnCall = make(map[int]struct {
			result1 githubclient.GitHubOrganization
			result2 error
		})
	}
	fake.organizationReturnsOnCall[i] = struct {
		result1 githubclient.GitHubOrganization
		result2 error
	}{result1, result2}
}

func (fake *FakeClient) OrganizationRepositories(arg1 lager.Logger, arg2 string) ([]githubclient.GitHubRepository, error) {
	fake.organizationRepositoriesMutex.Lock()
	ret, specificReturn := fake.organizationRepositoriesReturnsOnCall[len(fake.organizationRepositoriesArgsForCall)]
	fake.organizationRepositoriesArgsForCall = append(fake.organizationRepositoriesArgsForCall, struct {
		arg1 lager.Logger
		arg2 string
	}{arg1, arg2})
	fake.recordInvocation("OrganizationRepositories", []interface{}{arg1, arg2})
	fake.organizationRepositoriesMutex.Unlock()
	if fake.OrganizationRepositoriesStub != nil {
		return fake.OrganizationRepositoriesStub(arg1, arg2)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fake.organizationRepositoriesReturns.result1, fake.organizationRepositoriesReturns.result2
}

func (fake *FakeClient) OrganizationRepositoriesCallCount() int {
	fake.organizationRepositoriesMutex.RLock()
	defer fake.organizationRepositoriesMutex.RUnlock()
	return len(fake.organizationRepositoriesArgsForCall)
}

func (fake *FakeClient) OrganizationRepositoriesArgsForCall(i int) (lager.Logger, string) {
	fake.organizationRepositoriesMutex.RLock()
	defer fake.organizationRepositoriesMutex.RUnlock()
	return fake.organizationRepositoriesArgsForCall[i].arg1, fake.organizationRepositoriesArgsForCall[i].arg2
}

func (fake *FakeClient) OrganizationRepositoriesReturns(result1 []githubclient.GitHubRepository, result2 error) {
	fake.OrganizationRepositoriesStub = nil
	fake.organizationRepositoriesReturns = struct {
		result1 []githubclient.GitHubRepository
		result2 error
	}{result1, result2}
}

func (fake *FakeClient) OrganizationRepositoriesReturnsOnCall(i int, result1 []githubclient.GitHubRepository, result2 error) {
	fake.OrganizationRepositoriesStub = nil
	if fake.organizationRepositoriesReturnsOnCall == nil {
		fake.organizationRepositoriesReturnsOnCall = make(map[int]struct {
			result1 []githubclient.GitHubRepository
			result2 error
		})
	}
	fake.organizationRepositoriesReturnsOnCall[i] = struct {
		result1 []githubclient.GitHubRepository
		result2 error
	}{result1, result2}
}

func (fake *FakeClient) CreateRepositoryHook(arg1 lager.Logger, arg2 string, arg3 string, arg4 string, arg5 string) error {
	fake.createRepositoryHookMutex.Lock()
	ret, specificReturn := fake.createRepositoryHookReturnsOnCall[len(fake.createRepositoryHookArgsForCall)]
	fake.createRepositoryHookArgsForCall = append(fake.createRepositoryHookArgsForCall, struct {
		arg1 lager.Logger
		arg2 string
		arg3 string
		arg4 string
		arg5 string
	}{arg1, arg2, arg3, arg4, arg5})
	fake.recordInvocation("CreateRepositoryHook", []interface{}{arg1, arg2, arg3, arg4, arg5})
	fake.createRepositoryHookMutex.Unlock()
	if fake.CreateRepositoryHookStub != nil {
		return fake.CreateRepositoryHookStub(arg1, arg2, arg3, arg4, arg5)
	}
	if specificReturn {
		return ret.result1
	}
	return fake.createRepositoryHookReturns.result1
}

func (fake *FakeClient) CreateRepositoryHookCallCount() int {
	fake.createRepositoryHookMutex.RLock()
	defer fake.createRepositoryHookMutex.RUnlock()
	return len(fake.createRepositoryHookArgsForCall)
}

func (fake *FakeClient) CreateRepositoryHookArgsForCall(i int) (lager.Logger, string, string, string, string) {
	fake.createRepositoryHookMutex.RLock()
	defer fake.createRepositoryHookMutex.RUnlock()
	return fake.createRepositoryHookArgsForCall[i].arg1, fake.createRepositoryHookArgsForCall[i].arg2, fake.createRepositoryHookArgsForCall[i].arg3, fake.createRepositoryHookArgsForCall[i].arg4, fake.createRepositoryHookArgsForCall[i].arg5
}

func (fake *FakeClient) CreateRepositoryHookReturns(result1 error) {
	fake.CreateRepositoryHookStub = nil
	fake.createRepositoryHookReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakeClient) CreateRepositoryHookReturnsOnCall(i int, result1 error) {
	fake.CreateRepositoryHookStub = nil
	if fake.createRepositoryHookReturnsOnCall == nil {
		fake.createRepositoryHookReturnsOnCall = make(map[int]struct {
			result1 error
		})
	}
	fake.createRepositoryHookReturnsOnCall[i] = struct {
		result1 error
	}{result1}
}

func (fake *FakeClient) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeClient) recordInvocation(key string, args []interface{}) {
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

var _ githubclient.Client = new(FakeClient)
