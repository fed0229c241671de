package api

import (
	"encoding/json"
	"net/http"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
	"github.com/tedsuo/rata"

	"github.com/inkwell-press/dewey/catalog"
	"github.com/inkwell-press/dewey/db"
)

// SyncHandler refreshes a single user's catalog on demand.
type SyncHandler struct {
	logger            lager.Logger
	userRepository    db.UserRepository
	accountRepository db.AccountRepository
	syncerFactory     catalog.SyncerFactory
}

func NewSyncHandler(
	logger lager.Logger,
	userRepository db.UserRepository,
	accountRepository db.AccountRepository,
	syncerFactory catalog.SyncerFactory,
) *SyncHandler {
	return &SyncHandler{
		logger:            logger,
		userRepository:    userRepository,
		accountRepository: accountRepository,
		syncerFactory:     syncerFactory,
	}
}

type syncResponse struct {
	User   string `json:"user"`
	Synced bool   `json:"synced"`
}

func (h *SyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	username := rata.Param(r, "username")
	logger := h.logger.Session("sync-user", lager.Data{
		"username": username,
	})

	user, found, err := h.userRepository.FindByUsername(logger, username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not look up user")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "unknown user")
		return
	}

	accounts, err := h.accountRepository.ForUser(logger, user.ID, db.ProviderGitHub)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not look up accounts")
		return
	}
	if len(accounts) == 0 {
		writeError(w, http.StatusNotFound, "no connected github account")
		return
	}

	var result *multierror.Error
	for _, account := range accounts {
		syncer := h.syncerFactory.ForAccount(account)
		if err := syncer.Sync(logger); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		logger.Error("failed-to-sync", err)
		writeError(w, http.StatusBadGateway, "could not sync from github; try reconnecting the github account")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(syncResponse{
		User:   username,
		Synced: true,
	})
}
