// This file was generated by counterfeiter
package metricsfakes

import (
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/metrics"
)

type FakeGauge struct {
	UpdateStub        func(logger lager.Logger, value float32, tags ...string)
	updateMutex       sync.RWMutex
	updateArgsForCall []struct {
		logger lager.Logger
		value  float32
		tags   []string
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeGauge) Update(logger lager.Logger, value float32, tags ...string) {
	fake.updateMutex.Lock()
	fake.updateArgsForCall = append(fake.updateArgsForCall, struct {
		logger lager.Logger
		value  float32
		tags   []string
	}{logger, value, tags})
	fake.recordInvocation("Update", []interface{}{logger, value, tags})
	fake.updateMutex.Unlock()
	if fake.UpdateStub != nil {
		fake.UpdateStub(logger, value, tags...)
	}
}

func (fake *FakeGauge) UpdateCallCount() int {
	fake.updateMutex.RLock()
	defer fake.updateMutex.RUnlock()
	return len(fake.updateArgsForCall)
}

func (fake *FakeGauge) UpdateArgsForCall(i int) (lager.Logger, float32, []string) {
	fake.updateMutex.RLock()
	defer fake.updateMutex.RUnlock()
	return fake.updateArgsForCall[i].logger, fake.updateArgsForCall[i].value, fake.updateArgsForCall[i].tags
}

func (fake *FakeGauge) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeGauge) recordInvocation(key string, args []interface{}) {
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

var _ metrics.Gauge = new(FakeGauge)
