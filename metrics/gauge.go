package metrics

import "code.cloudfoundry.org/lager"

//go:generate counterfeiter . Gauge

type Gauge interface {
	Update(logger lager.Logger, value float32, tags ...string)
}
