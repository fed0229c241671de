package catalog

import (
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	mapset "github.com/deckarep/golang-set"
	uuid "github.com/satori/go.uuid"
	"github.com/tedsuo/ifrit"

	"github.com/inkwell-press/dewey/db"
)

// Hint names a repository that was just pushed to and should have its
// owners' catalogs refreshed.
type Hint struct {
	Owner string
	Name  string
}

func (h Hint) FullName() string {
	return fmt.Sprintf("%s/%s", h.Owner, h.Name)
}

type hintWorker struct {
	logger            lager.Logger
	hints             <-chan Hint
	clock             clock.Clock
	interval          time.Duration
	accountRepository db.AccountRepository
	syncerFactory     SyncerFactory
}

// NewHintWorker consumes push hints and resyncs the accounts that know
// the pushed repository. Hints are collected for an interval before
// being worked so that a burst of pushes to one repository costs a
// single resync.
func NewHintWorker(
	logger lager.Logger,
	hints <-chan Hint,
	clock clock.Clock,
	interval time.Duration,
	accountRepository db.AccountRepository,
	syncerFactory SyncerFactory,
) ifrit.Runner {
	return &hintWorker{
		logger:            logger,
		hints:             hints,
		clock:             clock,
		interval:          interval,
		accountRepository: accountRepository,
		syncerFactory:     syncerFactory,
	}
}

func (w *hintWorker) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := w.logger.Session("hint-worker")
	logger.Info("started")

	close(ready)

	ticker := w.clock.NewTicker(w.interval)

	defer func() {
		logger.Info("done")
		ticker.Stop()
	}()

	pending := mapset.NewSet()

	for {
		select {
		case <-signals:
			w.flush(logger, pending)
			return nil
		case hint := <-w.hints:
			if !pending.Add(hint) {
				logger.Debug("duplicate-hint", lager.Data{
					"repository": hint.FullName(),
				})
			}
		case <-ticker.C():
			w.flush(logger, pending)
			pending = mapset.NewSet()
		}
	}
}

func (w *hintWorker) flush(logger lager.Logger, pending mapset.Set) {
	if pending.Cardinality() == 0 {
		return
	}

	logger = logger.Session("flush", lager.Data{
		"flush-id": uuid.Must(uuid.NewV4()).String(),
		"hints":    pending.Cardinality(),
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	for item := range pending.Iter() {
		w.work(logger, item.(Hint))
	}
}

func (w *hintWorker) work(logger lager.Logger, hint Hint) {
	logger = logger.Session("work", lager.Data{
		"repository": hint.FullName(),
	})

	accounts, err := w.accountRepository.ForRepository(logger, db.ProviderGitHub, hint.FullName())
	if err != nil {
		logger.Error("failed-to-find-accounts", err)
		return
	}

	if len(accounts) == 0 {
		logger.Debug("no-known-accounts")
		return
	}

	for _, account := range accounts {
		syncer := w.syncerFactory.ForAccount(account)

		if err := syncer.Sync(logger); err != nil {
			logger.Error("failed-to-sync", err, lager.Data{
				"login": account.Login,
			})
		}
	}
}
