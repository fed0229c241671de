package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/rata"

	"github.com/inkwell-press/dewey/catalog"
	"github.com/inkwell-press/dewey/db"
	"github.com/inkwell-press/dewey/tokens"
	"github.com/inkwell-press/dewey/web"
	"github.com/inkwell-press/dewey/webhook"
)

// NewRouter assembles the internal HTTP surface. The webhook ingest
// handler is mounted alongside the API routes but bypasses bearer
// auth; github authenticates those deliveries with the hook secret.
func NewRouter(
	logger lager.Logger,
	authToken string,
	userRepository db.UserRepository,
	accountRepository db.AccountRepository,
	projectRepository db.ProjectRepository,
	remoteRepositoryRepository db.RemoteRepositoryRepository,
	remoteOrganizationRepository db.RemoteOrganizationRepository,
	syncerFactory catalog.SyncerFactory,
	registrar webhook.Registrar,
	resolver tokens.Resolver,
	ingestHandler http.Handler,
) (http.Handler, error) {
	handlers := rata.Handlers{
		web.SyncUser: auth(authToken, NewSyncHandler(
			logger,
			userRepository,
			accountRepository,
			syncerFactory,
		)),
		web.UserRepositories: auth(authToken, NewRepositoriesHandler(
			logger,
			userRepository,
			remoteRepositoryRepository,
		)),
		web.UserOrganizations: auth(authToken, NewOrganizationsHandler(
			logger,
			userRepository,
			remoteOrganizationRepository,
		)),
		web.SetupWebhook: auth(authToken, NewWebhookHandler(
			logger,
			projectRepository,
			registrar,
		)),
		web.ProjectToken: auth(authToken, NewTokenHandler(
			logger,
			projectRepository,
			resolver,
		)),
		web.IngestPush: ingestHandler,
	}

	return rata.NewRouter(web.Routes, handlers)
}

func auth(token string, next http.Handler) http.Handler {
	if token == "" {
		return next
	}

	expected := "Bearer " + token

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if subtle.ConstantTimeCompare([]byte(header), []byte(expected)) != 1 {
			writeError(w, http.StatusUnauthorized, "bad or missing token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}
