package metrics

import "github.com/inkwell-press/dewey/datadog"

//go:generate counterfeiter . Emitter

type Emitter interface {
	Counter(name string) Counter
	Gauge(name string) Gauge
	Timer(name string) Timer
}

func BuildEmitter(apiKey string, environment string) Emitter {
	if apiKey == "" {
		return &nullEmitter{
			environment: environment,
		}
	}

	client := datadog.NewClient(apiKey)

	return NewEmitter(client, environment)
}

func NewEmitter(dataDogClient datadog.Client, environment string) *emitter {
	return &emitter{
		client:      dataDogClient,
		environment: environment,
	}
}

type emitter struct {
	client      datadog.Client
	environment string
}

func (emitter *emitter) Counter(name string) Counter {
	metric := NewMetric(name, datadog.CounterMetricType, emitter)

	return NewCounter(metric)
}

func (emitter *emitter) Gauge(name string) Gauge {
	return NewMetric(name, datadog.GaugeMetricType, emitter)
}

func (emitter *emitter) Timer(name string) Timer {
	metric := NewMetric(name, datadog.GaugeMetricType, emitter)

	return NewTimer(metric)
}

type nullEmitter struct {
	environment string
}

func (e *nullEmitter) Counter(name string) Counter {
	return NewNullCounter(&nullMetric{})
}

func (e *nullEmitter) Gauge(name string) Gauge {
	return &nullMetric{}
}

func (e *nullEmitter) Timer(name string) Timer {
	return &nullTimer{}
}
