package api

import (
	"encoding/json"
	"net/http"

	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/rata"

	"github.com/inkwell-press/dewey/db"
)

type Repository struct {
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CloneURL     string `json:"clone_url"`
	HTMLURL      string `json:"html_url"`
	Private      bool   `json:"private"`
	Admin        bool   `json:"admin"`
	Organization string `json:"organization,omitempty"`
}

type Organization struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	HTMLURL   string `json:"html_url"`
	AvatarURL string `json:"avatar_url"`
}

// RepositoriesHandler lists a user's cataloged repositories.
type RepositoriesHandler struct {
	logger                     lager.Logger
	userRepository             db.UserRepository
	remoteRepositoryRepository db.RemoteRepositoryRepository
}

func NewRepositoriesHandler(
	logger lager.Logger,
	userRepository db.UserRepository,
	remoteRepositoryRepository db.RemoteRepositoryRepository,
) *RepositoriesHandler {
	return &RepositoriesHandler{
		logger:                     logger,
		userRepository:             userRepository,
		remoteRepositoryRepository: remoteRepositoryRepository,
	}
}

func (h *RepositoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	username := rata.Param(r, "username")
	logger := h.logger.Session("list-repositories", lager.Data{
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

	records, err := h.remoteRepositoryRepository.ForUser(logger, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not list repositories")
		return
	}

	repositories := []Repository{}
	for _, record := range records {
		repository := Repository{
			FullName:    record.FullName,
			Name:        record.Name,
			Description: record.Description,
			CloneURL:    record.CloneURL,
			HTMLURL:     record.HTMLURL,
			Private:     record.Private,
			Admin:       record.Admin,
		}

		if record.Organization != nil {
			repository.Organization = record.Organization.Slug
		}

		repositories = append(repositories, repository)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(repositories)
}

// OrganizationsHandler lists a user's cataloged organizations.
type OrganizationsHandler struct {
	logger                       lager.Logger
	userRepository               db.UserRepository
	remoteOrganizationRepository db.RemoteOrganizationRepository
}

func NewOrganizationsHandler(
	logger lager.Logger,
	userRepository db.UserRepository,
	remoteOrganizationRepository db.RemoteOrganizationRepository,
) *OrganizationsHandler {
	return &OrganizationsHandler{
		logger:                       logger,
		userRepository:               userRepository,
		remoteOrganizationRepository: remoteOrganizationRepository,
	}
}

func (h *OrganizationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	username := rata.Param(r, "username")
	logger := h.logger.Session("list-organizations", lager.Data{
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

	records, err := h.remoteOrganizationRepository.ForUser(logger, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not list organizations")
		return
	}

	organizations := []Organization{}
	for _, record := range records {
		organizations = append(organizations, Organization{
			Slug:      record.Slug,
			Name:      record.Name,
			Email:     record.Email,
			HTMLURL:   record.HTMLURL,
			AvatarURL: record.AvatarURL,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(organizations)
}
