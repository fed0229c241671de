package catalog_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/ginkgomon"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/inkwell-press/dewey/catalog"
	"github.com/inkwell-press/dewey/catalog/catalogfakes"
	"github.com/inkwell-press/dewey/db"
	"github.com/inkwell-press/dewey/db/dbfakes"
)

var _ = Describe("HintWorker", func() {
	var (
		logger   *lagertest.TestLogger
		hints    chan catalog.Hint
		clock    *fakeclock.FakeClock
		interval time.Duration

		accountRepository *dbfakes.FakeAccountRepository
		syncerFactory     *catalogfakes.FakeSyncerFactory
		syncer            *catalogfakes.FakeSyncer

		runner  ifrit.Runner
		process ifrit.Process
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("hintworker")
		hints = make(chan catalog.Hint)
		clock = fakeclock.NewFakeClock(time.Now())
		interval = 1 * time.Minute

		accountRepository = &dbfakes.FakeAccountRepository{}
		accountRepository.ForRepositoryReturns([]db.Account{
			{Model: db.Model{ID: 1}, Provider: db.ProviderGitHub, Login: "margaret"},
		}, nil)

		syncer = &catalogfakes.FakeSyncer{}
		syncerFactory = &catalogfakes.FakeSyncerFactory{}
		syncerFactory.ForAccountReturns(syncer)
	})

	JustBeforeEach(func() {
		runner = catalog.NewHintWorker(
			logger,
			hints,
			clock,
			interval,
			accountRepository,
			syncerFactory,
		)
		process = ginkgomon.Invoke(runner)
	})

	AfterEach(func() {
		ginkgomon.Interrupt(process)
	})

	It("holds hints until the flush interval elapses", func() {
		hints <- catalog.Hint{Owner: "margaret", Name: "fieldnotes"}

		Consistently(syncer.SyncCallCount).Should(BeZero())

		clock.Increment(interval)

		Eventually(syncer.SyncCallCount).Should(Equal(1))

		_, provider, fullName := accountRepository.ForRepositoryArgsForCall(0)
		Expect(provider).To(Equal(db.ProviderGitHub))
		Expect(fullName).To(Equal("margaret/fieldnotes"))
	})

	It("collapses a burst of pushes into a single resync", func() {
		hints <- catalog.Hint{Owner: "margaret", Name: "fieldnotes"}
		hints <- catalog.Hint{Owner: "margaret", Name: "fieldnotes"}
		hints <- catalog.Hint{Owner: "margaret", Name: "fieldnotes"}

		clock.Increment(interval)

		Eventually(syncer.SyncCallCount).Should(Equal(1))
		Consistently(syncer.SyncCallCount).Should(Equal(1))
	})

	It("works distinct repositories separately", func() {
		hints <- catalog.Hint{Owner: "margaret", Name: "fieldnotes"}
		hints <- catalog.Hint{Owner: "inkwell", Name: "press"}

		clock.Increment(interval)

		Eventually(syncer.SyncCallCount).Should(Equal(2))
	})

	It("resyncs every account that knows the repository", func() {
		accountRepository.ForRepositoryReturns([]db.Account{
			{Model: db.Model{ID: 1}, Provider: db.ProviderGitHub, Login: "margaret"},
			{Model: db.Model{ID: 2}, Provider: db.ProviderGitHub, Login: "silas"},
		}, nil)

		hints <- catalog.Hint{Owner: "margaret", Name: "fieldnotes"}

		clock.Increment(interval)

		Eventually(syncerFactory.ForAccountCallCount).Should(Equal(2))
	})

	It("drains pending hints on shutdown", func() {
		hints <- catalog.Hint{Owner: "margaret", Name: "fieldnotes"}

		ginkgomon.Interrupt(process)

		Expect(syncer.SyncCallCount()).To(Equal(1))
	})

	Context("when no account knows the repository", func() {
		BeforeEach(func() {
			accountRepository.ForRepositoryReturns([]db.Account{}, nil)
		})

		It("does nothing", func() {
			hints <- catalog.Hint{Owner: "stranger", Name: "attic"}

			clock.Increment(interval)

			Eventually(accountRepository.ForRepositoryCallCount).Should(Equal(1))
			Consistently(syncerFactory.ForAccountCallCount).Should(BeZero())
		})
	})

	Context("when looking up accounts fails", func() {
		BeforeEach(func() {
			accountRepository.ForRepositoryReturns(nil, errors.New("connection lost"))
		})

		It("logs and carries on", func() {
			hints <- catalog.Hint{Owner: "margaret", Name: "fieldnotes"}

			clock.Increment(interval)

			Eventually(logger).Should(gbytes.Say("failed-to-find-accounts"))
		})
	})

	Context("when a sync fails", func() {
		BeforeEach(func() {
			syncer.SyncReturns(errors.New("token revoked"))
		})

		It("logs the failure", func() {
			hints <- catalog.Hint{Owner: "margaret", Name: "fieldnotes"}

			clock.Increment(interval)

			Eventually(logger).Should(gbytes.Say("failed-to-sync"))
		})
	})
})
