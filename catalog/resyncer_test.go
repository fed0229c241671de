package catalog_test

import (
	"errors"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/inkwell-press/dewey/catalog"
	"github.com/inkwell-press/dewey/catalog/catalogfakes"
	"github.com/inkwell-press/dewey/db"
	"github.com/inkwell-press/dewey/db/dbfakes"
	"github.com/inkwell-press/dewey/metrics"
	"github.com/inkwell-press/dewey/metrics/metricsfakes"
)

var _ = Describe("Resyncer", func() {
	var (
		logger *lagertest.TestLogger

		accountRepository *dbfakes.FakeAccountRepository
		syncerFactory     *catalogfakes.FakeSyncerFactory
		emitter           *metricsfakes.FakeEmitter

		successGauge *metricsfakes.FakeGauge
		failureGauge *metricsfakes.FakeGauge

		margaretSyncer *catalogfakes.FakeSyncer
		silasSyncer    *catalogfakes.FakeSyncer

		resyncer catalog.Resyncer
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("resyncer")

		accountRepository = &dbfakes.FakeAccountRepository{}
		accountRepository.ForProviderReturns([]db.Account{
			{Model: db.Model{ID: 1}, Provider: db.ProviderGitHub, Login: "margaret"},
			{Model: db.Model{ID: 2}, Provider: db.ProviderGitHub, Login: "silas"},
		}, nil)

		margaretSyncer = &catalogfakes.FakeSyncer{}
		silasSyncer = &catalogfakes.FakeSyncer{}

		syncerFactory = &catalogfakes.FakeSyncerFactory{}
		syncerFactory.ForAccountStub = func(account db.Account) catalog.Syncer {
			if account.Login == "margaret" {
				return margaretSyncer
			}
			return silasSyncer
		}

		successGauge = &metricsfakes.FakeGauge{}
		failureGauge = &metricsfakes.FakeGauge{}

		fakeTimer := &metricsfakes.FakeTimer{}
		fakeTimer.TimeStub = func(logger lager.Logger, f func(), tags ...string) {
			f()
		}

		emitter = &metricsfakes.FakeEmitter{}
		emitter.TimerReturns(fakeTimer)
		emitter.GaugeStub = func(name string) metrics.Gauge {
			switch name {
			case "resync.success":
				return successGauge
			case "resync.failure":
				return failureGauge
			default:
				return &metricsfakes.FakeGauge{}
			}
		}

		resyncer = catalog.NewResyncer(accountRepository, syncerFactory, emitter)
	})

	It("syncs every github account", func() {
		resyncer.ResyncAll(logger)

		_, provider := accountRepository.ForProviderArgsForCall(0)
		Expect(provider).To(Equal(db.ProviderGitHub))

		Expect(syncerFactory.ForAccountCallCount()).To(Equal(2))
		Expect(margaretSyncer.SyncCallCount()).To(Equal(1))
		Expect(silasSyncer.SyncCallCount()).To(Equal(1))
	})

	It("reports the success and failure tallies", func() {
		resyncer.ResyncAll(logger)

		Expect(successGauge.UpdateCallCount()).To(Equal(1))
		_, value, _ := successGauge.UpdateArgsForCall(0)
		Expect(value).To(Equal(float32(2)))

		Expect(failureGauge.UpdateCallCount()).To(Equal(1))
		_, value, _ = failureGauge.UpdateArgsForCall(0)
		Expect(value).To(BeZero())
	})

	Context("when one account fails to sync", func() {
		BeforeEach(func() {
			margaretSyncer.SyncReturns(errors.New("token revoked"))
		})

		It("carries on with the rest", func() {
			resyncer.ResyncAll(logger)

			Expect(silasSyncer.SyncCallCount()).To(Equal(1))
			Expect(logger).To(gbytes.Say("failed-to-sync"))
		})

		It("counts the failure", func() {
			resyncer.ResyncAll(logger)

			_, value, _ := successGauge.UpdateArgsForCall(0)
			Expect(value).To(Equal(float32(1)))

			_, value, _ = failureGauge.UpdateArgsForCall(0)
			Expect(value).To(Equal(float32(1)))
		})
	})

	Context("when listing the accounts fails", func() {
		BeforeEach(func() {
			accountRepository.ForProviderReturns(nil, errors.New("connection lost"))
		})

		It("syncs nothing and logs", func() {
			resyncer.ResyncAll(logger)

			Expect(syncerFactory.ForAccountCallCount()).To(BeZero())
			Expect(logger).To(gbytes.Say("failed-to-list-accounts"))
		})
	})
})
