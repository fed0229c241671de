package api

import (
	"encoding/json"
	"net/http"

	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/rata"

	"github.com/inkwell-press/dewey/db"
	"github.com/inkwell-press/dewey/tokens"
)

// TokenHandler serves project tokens to deployments that are not
// allowed to read token columns themselves. It always resolves
// locally; answering remote lookups with another remote lookup would
// loop.
type TokenHandler struct {
	logger            lager.Logger
	projectRepository db.ProjectRepository
	resolver          tokens.Resolver
}

func NewTokenHandler(
	logger lager.Logger,
	projectRepository db.ProjectRepository,
	resolver tokens.Resolver,
) *TokenHandler {
	return &TokenHandler{
		logger:            logger,
		projectRepository: projectRepository,
		resolver:          resolver,
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := rata.Param(r, "project")
	logger := h.logger.Session("project-token", lager.Data{
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

	token, found := h.resolver.Resolve(logger, project, true)
	if !found {
		writeError(w, http.StatusNotFound, "no token for project")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tokenResponse{
		Token: token,
	})
}
