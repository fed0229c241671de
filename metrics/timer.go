package metrics

import (
	"time"

	"code.cloudfoundry.org/lager"
)

//go:generate counterfeiter . Timer

type Timer interface {
	Time(logger lager.Logger, fn func(), tags ...string)
}

type timer struct {
	metric Metric
}

func NewTimer(metric Metric) Timer {
	return &timer{
		metric: metric,
	}
}

func (t *timer) Time(logger lager.Logger, fn func(), tags ...string) {
	startTime := time.Now()

	fn()
	duration := time.Since(startTime)

	logger.Debug("stopping-timer", lager.Data{
		"duration": duration.String(),
	})
	t.metric.Update(logger, float32(duration.Seconds()), tags...)
}

type nullTimer struct{}

func (t *nullTimer) Time(logger lager.Logger, fn func(), tags ...string) {
	fn()
}
