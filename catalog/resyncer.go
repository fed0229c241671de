package catalog

import (
	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/db"
	"github.com/inkwell-press/dewey/metrics"
)

//go:generate counterfeiter . Resyncer

// Resyncer refreshes the catalog for every known github account. A
// failing account is logged and skipped so one revoked token cannot
// starve the rest of the fleet.
type Resyncer interface {
	ResyncAll(logger lager.Logger)
}

type resyncer struct {
	accountRepository db.AccountRepository
	syncerFactory     SyncerFactory

	syncTimer    metrics.Timer
	successGauge metrics.Gauge
	failureGauge metrics.Gauge
}

func NewResyncer(
	accountRepository db.AccountRepository,
	syncerFactory SyncerFactory,
	emitter metrics.Emitter,
) Resyncer {
	return &resyncer{
		accountRepository: accountRepository,
		syncerFactory:     syncerFactory,

		syncTimer:    emitter.Timer("catalog.sync-time"),
		successGauge: emitter.Gauge("resync.success"),
		failureGauge: emitter.Gauge("resync.failure"),
	}
}

func (r *resyncer) ResyncAll(logger lager.Logger) {
	logger = logger.Session("resync-all")
	logger.Debug("starting")
	defer logger.Debug("done")

	accounts, err := r.accountRepository.ForProvider(logger, db.ProviderGitHub)
	if err != nil {
		logger.Error("failed-to-list-accounts", err)
		return
	}

	var successes, failures int

	for _, account := range accounts {
		syncer := r.syncerFactory.ForAccount(account)

		var syncErr error
		r.syncTimer.Time(logger, func() {
			syncErr = syncer.Sync(logger)
		})

		if syncErr != nil {
			logger.Error("failed-to-sync", syncErr, lager.Data{
				"login": account.Login,
			})
			failures++
			continue
		}

		successes++
	}

	r.successGauge.Update(logger, float32(successes))
	r.failureGauge.Update(logger, float32(failures))

	logger.Info("completed", lager.Data{
		"successes": successes,
		"failures":  failures,
	})
}
