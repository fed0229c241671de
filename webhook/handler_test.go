package webhook_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	"github.com/google/go-github/v55/github"

	"github.com/inkwell-press/dewey/catalog"
	"github.com/inkwell-press/dewey/metrics"
	"github.com/inkwell-press/dewey/metrics/metricsfakes"
	"github.com/inkwell-press/dewey/webhook"
)

var _ = Describe("Handler", func() {
	var (
		logger *lagertest.TestLogger

		handler http.Handler
		hints   chan catalog.Hint
		clk     *fakeclock.FakeClock
		emitter *metricsfakes.FakeEmitter

		hintsEmitted      *metricsfakes.FakeCounter
		webhookDelayGauge *metricsfakes.FakeGauge

		fakeRequest *http.Request
		recorder    *httptest.ResponseRecorder

		configuredSecrets []string
		signingSecret     string
		pushEvent         github.PushEvent
		pushTime          time.Time
		now               time.Time
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("webhook")

		recorder = httptest.NewRecorder()
		hints = make(chan catalog.Hint, 1)

		configuredSecrets = []string{"example-secret"}
		signingSecret = configuredSecrets[0]

		pushTime = time.Date(2023, 6, 14, 9, 30, 0, 0, time.UTC)
		now = pushTime.Add(42 * time.Second)
		clk = fakeclock.NewFakeClock(now)

		hintsEmitted = &metricsfakes.FakeCounter{}
		webhookDelayGauge = &metricsfakes.FakeGauge{}

		emitter = &metricsfakes.FakeEmitter{}
		emitter.CounterReturns(hintsEmitted)
		emitter.GaugeStub = func(name string) metrics.Gauge {
			switch name {
			case "ingest.webhook-delay":
				return webhookDelayGauge
			default:
				panic("unexpected metric!")
			}
		}

		pushEvent = github.PushEvent{
			Before: github.String("commit-sha-0"),
			After:  github.String("commit-sha-5"),
			Repo: &github.PushEventRepository{
				Private:  github.Bool(false),
				Name:     github.String("fieldnotes"),
				FullName: github.String("margaret/fieldnotes"),
				Owner: &github.User{
					Name: github.String("margaret"),
				},
				PushedAt: &github.Timestamp{
					Time: pushTime,
				},
			},
		}
	})

	Context("when the request is properly formed", func() {
		JustBeforeEach(func() {
			handler = webhook.NewHandler(logger, hints, clk, emitter, configuredSecrets)

			body := &bytes.Buffer{}
			err := json.NewEncoder(body).Encode(pushEvent)
			Expect(err).NotTo(HaveOccurred())

			macHeader := fmt.Sprintf("sha1=%s", messageMAC(signingSecret, body.Bytes()))

			fakeRequest, _ = http.NewRequest("POST", "http://example.com/github", body)
			fakeRequest.Header.Set("Content-Type", "application/json")
			fakeRequest.Header.Set("X-GitHub-Event", "push")
			fakeRequest.Header.Set("X-Hub-Signature", macHeader)
			fakeRequest.Header.Set("X-GitHub-Delivery", "delivery-id")
		})

		It("responds with 200", func() {
			handler.ServeHTTP(recorder, fakeRequest)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("emits a resync hint for the pushed repository", func() {
			handler.ServeHTTP(recorder, fakeRequest)

			var hint catalog.Hint
			Eventually(hints).Should(Receive(&hint))

			Expect(hint).To(Equal(catalog.Hint{
				Owner: "margaret",
				Name:  "fieldnotes",
			}))
			Expect(hintsEmitted.IncCallCount()).To(Equal(1))
		})

		It("emits the webhook delay", func() {
			handler.ServeHTTP(recorder, fakeRequest)

			Expect(webhookDelayGauge.UpdateCallCount()).To(Equal(1))

			_, value, _ := webhookDelayGauge.UpdateArgsForCall(0)
			Expect(value).To(BeNumerically("==", 42))
		})

		Context("when multiple secrets are configured", func() {
			BeforeEach(func() {
				configuredSecrets = []string{"example-secret-a", "example-secret-b"}
			})

			Context("when the request is signed with the first secret", func() {
				BeforeEach(func() {
					signingSecret = "example-secret-a"
				})

				It("responds with 200", func() {
					handler.ServeHTTP(recorder, fakeRequest)
					Expect(recorder.Code).To(Equal(http.StatusOK))
				})
			})

			Context("when the request is signed with the second secret", func() {
				BeforeEach(func() {
					signingSecret = "example-secret-b"
				})

				It("responds with 200", func() {
					handler.ServeHTTP(recorder, fakeRequest)
					Expect(recorder.Code).To(Equal(http.StatusOK))
				})
			})
		})

		Context("when the payload names no repository", func() {
			BeforeEach(func() {
				pushEvent.Repo = nil
			})

			It("responds with OK and emits nothing", func() {
				handler.ServeHTTP(recorder, fakeRequest)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(hints).NotTo(Receive())
			})
		})

		Context("when the event is not a push", func() {
			JustBeforeEach(func() {
				fakeRequest.Header.Set("X-GitHub-Event", "issues")
			})

			It("acknowledges and ignores it", func() {
				handler.ServeHTTP(recorder, fakeRequest)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(hints).NotTo(Receive())
			})
		})
	})

	Context("when the signature is invalid", func() {
		JustBeforeEach(func() {
			body := &bytes.Buffer{}
			err := json.NewEncoder(body).Encode(pushEvent)
			Expect(err).NotTo(HaveOccurred())

			fakeRequest, _ = http.NewRequest("POST", "http://example.com/github", body)
			fakeRequest.Header.Set("Content-Type", "application/json")
			fakeRequest.Header.Set("X-GitHub-Event", "push")
			fakeRequest.Header.Set("X-Hub-Signature", "thisaintnohmacsignature")

			handler = webhook.NewHandler(logger, hints, clk, emitter, configuredSecrets)
		})

		It("responds with 403 and emits nothing", func() {
			handler.ServeHTTP(recorder, fakeRequest)

			Expect(recorder.Code).To(Equal(http.StatusForbidden))
			Expect(hints).NotTo(Receive())
		})
	})

	Context("when the payload is not valid JSON", func() {
		JustBeforeEach(func() {
			badJSON := bytes.NewBufferString("{'ooops:---")

			fakeRequest, _ = http.NewRequest("POST", "http://example.com/github", badJSON)
			fakeRequest.Header.Set("Content-Type", "application/json")
			fakeRequest.Header.Set("X-GitHub-Event", "push")
			fakeRequest.Header.Set("X-Hub-Signature", fmt.Sprintf("sha1=%s", messageMAC(signingSecret, badJSON.Bytes())))

			handler = webhook.NewHandler(logger, hints, clk, emitter, configuredSecrets)
		})

		It("responds with 400 and emits nothing", func() {
			handler.ServeHTTP(recorder, fakeRequest)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(hints).NotTo(Receive())
		})
	})
})

func messageMAC(secret string, body []byte) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return fmt.Sprintf("%x", mac.Sum(nil))
}
