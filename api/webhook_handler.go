package api

import (
	"encoding/json"
	"net/http"

	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/rata"

	"github.com/inkwell-press/dewey/db"
	"github.com/inkwell-press/dewey/webhook"
)

// WebhookHandler installs a push hook on a project's repository.
type WebhookHandler struct {
	logger            lager.Logger
	projectRepository db.ProjectRepository
	registrar         webhook.Registrar
}

func NewWebhookHandler(
	logger lager.Logger,
	projectRepository db.ProjectRepository,
	registrar webhook.Registrar,
) *WebhookHandler {
	return &WebhookHandler{
		logger:            logger,
		projectRepository: projectRepository,
		registrar:         registrar,
	}
}

type outcomeResponse struct {
	Outcome string `json:"outcome"`
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := rata.Param(r, "project")
	logger := h.logger.Session("setup-webhook", lager.Data{
		"project": slug,
	})

	project, found, err := h.projectRepository.FindBySlug(logger, slug)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not look up project")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "unknown project")
		return
	}

	outcome := h.registrar.Setup(logger, project)

	var status int
	switch outcome {
	case webhook.OutcomeCreated:
		status = http.StatusCreated
	case webhook.OutcomeRejected:
		status = http.StatusConflict
	default:
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(outcomeResponse{
		Outcome: outcome.String(),
	})
}
