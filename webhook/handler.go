package webhook

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/google/go-github/v55/github"

	"github.com/inkwell-press/dewey/catalog"
	"github.com/inkwell-press/dewey/metrics"
)

type handler struct {
	logger     lager.Logger
	secretKeys []string
	hints      chan<- catalog.Hint
	clock      clock.Clock

	hintsEmitted      metrics.Counter
	webhookDelayGauge metrics.Gauge
}

// NewHandler accepts github push events, checks them against the
// secret ring, and turns them into resync hints.
func NewHandler(
	logger lager.Logger,
	hints chan<- catalog.Hint,
	clock clock.Clock,
	emitter metrics.Emitter,
	secretKeys []string,
) http.Handler {
	return &handler{
		logger:     logger.Session("webhook-handler"),
		secretKeys: secretKeys,
		hints:      hints,
		clock:      clock,

		hintsEmitted:      emitter.Counter("ingest.hints-emitted"),
		webhookDelayGauge: emitter.Gauge("ingest.webhook-delay"),
	}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()

	h.logger.Debug("starting")

	if eventType := r.Header.Get("X-GitHub-Event"); eventType != "push" {
		h.logger.Info("ignored-event", lager.Data{
			"event": eventType,
		})
		w.WriteHeader(http.StatusOK)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("invalid-payload", err)
		w.WriteHeader(http.StatusForbidden)
		return
	}
	r.Body.Close()
	r.Header.Set("Content-Type", "application/json")

	var payload []byte
	for i, secretKey := range h.secretKeys {
		r.Body = ioutil.NopCloser(bytes.NewReader(body))
		payload, err = github.ValidatePayload(r, []byte(secretKey))
		if err == nil {
			break
		}

		if i == len(h.secretKeys)-1 {
			h.logger.Error("invalid-payload", err)
			w.WriteHeader(http.StatusForbidden)
			return
		}
	}

	var event github.PushEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		h.logger.Error("unmarshal-failed", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	owner := event.GetRepo().GetOwner().GetName()
	if owner == "" {
		owner = event.GetRepo().GetOwner().GetLogin()
	}
	name := event.GetRepo().GetName()

	if owner == "" || name == "" {
		h.logger.Info("invalid-event-dropped")
		w.WriteHeader(http.StatusOK)
		return
	}

	if pushedAt := event.GetRepo().GetPushedAt(); !pushedAt.IsZero() {
		delay := now.Sub(pushedAt.Time).Seconds()
		h.webhookDelayGauge.Update(h.logger, float32(delay))
	}

	h.logger.Info("handling-webhook-payload", lager.Data{
		"owner":     owner,
		"repo":      name,
		"private":   event.GetRepo().GetPrivate(),
		"github-id": r.Header.Get("X-GitHub-Delivery"),
	})

	h.hints <- catalog.Hint{
		Owner: owner,
		Name:  name,
	}
	h.hintsEmitted.Inc(h.logger)

	h.logger.Debug("done")
	w.WriteHeader(http.StatusOK)
}
