package catalog_test

import (
	"os"
	"sync"
	"time"

	"github.com/tedsuo/ifrit"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/inkwell-press/dewey/catalog"
)

var _ = Describe("ScheduleRunner", func() {
	var (
		runner  *catalog.ScheduleRunner
		process ifrit.Process
	)

	JustBeforeEach(func() {
		runner = catalog.NewScheduleRunner()
		process = ifrit.Invoke(runner)
	})

	AfterEach(func() {
		process.Signal(os.Kill)
		<-process.Wait()
	})

	Describe("scheduling work", func() {
		It("runs the work on that schedule", func() {
			wg := &sync.WaitGroup{}
			wg.Add(2)

			err := runner.ScheduleWork("@every 1s", func() {
				wg.Done()
			})
			Expect(err).NotTo(HaveOccurred())

			done := make(chan struct{})

			go func() {
				wg.Wait()
				close(done)
			}()

			Eventually(done, 3*time.Second).Should(BeClosed())
		})

		It("rejects a malformed schedule", func() {
			err := runner.ScheduleWork("@every never", func() {})
			Expect(err).To(HaveOccurred())
		})

		It("does not exit until all the work that is currently in progress has finished", func() {
			wg := &sync.WaitGroup{}
			wg.Add(1)

			started := make(chan struct{})

			err := runner.ScheduleWork("@every 1s", func() {
				close(started)
				wg.Wait()
			})
			Expect(err).NotTo(HaveOccurred())

			<-started

			process.Signal(os.Kill)

			Consistently(process.Wait()).ShouldNot(Receive())

			wg.Done()

			Eventually(process.Wait()).Should(Receive())
		})
	})
})
