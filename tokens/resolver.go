package tokens

import (
	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/db"
)

//go:generate counterfeiter . ProjectTokenFetcher

// ProjectTokenFetcher asks another dewey deployment for a project's
// token, for web nodes that must not read token columns themselves.
type ProjectTokenFetcher interface {
	ProjectToken(logger lager.Logger, slug string) (string, error)
}

//go:generate counterfeiter . Resolver

// Resolver finds a github token that can act on behalf of a project.
// It never fails loudly; a missing token is an expected state.
type Resolver interface {
	Resolve(logger lager.Logger, project db.Project, forceLocal bool) (string, bool)
}

type resolver struct {
	allowPrivateRepositories bool
	resolveViaAPI            bool
	fetcher                  ProjectTokenFetcher
	accountRepository        db.AccountRepository
}

func NewResolver(
	allowPrivateRepositories bool,
	resolveViaAPI bool,
	fetcher ProjectTokenFetcher,
	accountRepository db.AccountRepository,
) Resolver {
	return &resolver{
		allowPrivateRepositories: allowPrivateRepositories,
		resolveViaAPI:            resolveViaAPI,
		fetcher:                  fetcher,
		accountRepository:        accountRepository,
	}
}

func (r *resolver) Resolve(logger lager.Logger, project db.Project, forceLocal bool) (string, bool) {
	logger = logger.Session("resolve-token", lager.Data{
		"project": project.Slug,
	})

	if !r.allowPrivateRepositories {
		logger.Debug("private-repositories-disabled")
		return "", false
	}

	if r.resolveViaAPI && !forceLocal {
		token, err := r.fetcher.ProjectToken(logger, project.Slug)
		if err != nil {
			logger.Error("failed-to-fetch-token", err)
			return "", false
		}

		return token, token != ""
	}

	return r.localToken(logger, project)
}

// The first stored token among the project's users wins.
func (r *resolver) localToken(logger lager.Logger, project db.Project) (string, bool) {
	for _, user := range project.Users {
		accounts, err := r.accountRepository.ForUser(logger, user.ID, db.ProviderGitHub)
		if err != nil {
			logger.Error("failed-to-list-accounts", err, lager.Data{
				"user": user.Username,
			})
			continue
		}

		for _, account := range accounts {
			if account.Token != "" {
				return account.Token, true
			}
		}
	}

	logger.Info("no-token-found")

	return "", false
}
