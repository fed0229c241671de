package catalog

import (
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/inkwell-press/dewey/db"
	"github.com/inkwell-press/dewey/githubclient"
	"github.com/inkwell-press/dewey/metrics"
)

//go:generate counterfeiter . Syncer

// Syncer mirrors the repositories and organizations a single github
// account can see into the local catalog.
type Syncer interface {
	Sync(logger lager.Logger) error
}

type syncer struct {
	githubClient githubclient.Client
	policy       Policy
	account      db.Account

	remoteRepositoryRepository   db.RemoteRepositoryRepository
	remoteOrganizationRepository db.RemoteOrganizationRepository

	repositoriesCreated  metrics.Counter
	repositoriesUpdated  metrics.Counter
	repositoriesSkipped  metrics.Counter
	organizationsCreated metrics.Counter
	organizationsUpdated metrics.Counter
	policyRejections     metrics.Counter
}

func NewSyncer(
	githubClient githubclient.Client,
	policy Policy,
	account db.Account,
	remoteRepositoryRepository db.RemoteRepositoryRepository,
	remoteOrganizationRepository db.RemoteOrganizationRepository,
	emitter metrics.Emitter,
) Syncer {
	return &syncer{
		githubClient: githubClient,
		policy:       policy,
		account:      account,

		remoteRepositoryRepository:   remoteRepositoryRepository,
		remoteOrganizationRepository: remoteOrganizationRepository,

		repositoriesCreated:  emitter.Counter("catalog.repositories-created"),
		repositoriesUpdated:  emitter.Counter("catalog.repositories-updated"),
		repositoriesSkipped:  emitter.Counter("catalog.repositories-skipped"),
		organizationsCreated: emitter.Counter("catalog.organizations-created"),
		organizationsUpdated: emitter.Counter("catalog.organizations-updated"),
		policyRejections:     emitter.Counter("catalog.policy-rejections"),
	}
}

func (s *syncer) Sync(logger lager.Logger) error {
	logger = logger.Session("sync", lager.Data{
		"login": s.account.Login,
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	var result *multierror.Error

	if err := s.syncRepositories(logger); err != nil {
		result = multierror.Append(result, err)
	}

	if err := s.syncOrganizations(logger); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func (s *syncer) syncRepositories(logger lager.Logger) error {
	logger = logger.Session("repositories")

	repos, err := s.githubClient.UserRepositories(logger)
	if err != nil {
		logger.Error("failed-to-fetch", err)
		return err
	}

	var result *multierror.Error
	tally := upsertTally{}

	for _, repo := range repos {
		if !s.policy.AllowsRepository(repo.Private) {
			s.policyRejections.Inc(logger)
			tally.rejected++
			continue
		}

		outcome, err := s.remoteRepositoryRepository.Upsert(logger, s.account.User, s.remoteRepository(repo, nil))
		if err != nil {
			logger.Error("failed-to-upsert", err, lager.Data{
				"repository": repo.FullName,
			})
			result = multierror.Append(result, err)
			continue
		}

		s.countRepository(logger, outcome, &tally)
	}

	logger.Info("synced", tally.data())

	return result.ErrorOrNil()
}

func (s *syncer) syncOrganizations(logger lager.Logger) error {
	logger = logger.Session("organizations")

	orgs, err := s.githubClient.UserOrganizations(logger)
	if err != nil {
		logger.Error("failed-to-fetch", err)
		return err
	}

	var result *multierror.Error
	tally := upsertTally{}

	for _, summary := range orgs {
		org, err := s.githubClient.Organization(logger, summary.Login)
		if err != nil {
			logger.Error("failed-to-fetch-organization", err, lager.Data{
				"organization": summary.Login,
			})
			result = multierror.Append(result, err)
			continue
		}

		record := &db.RemoteOrganization{
			Slug:      org.Login,
			Name:      org.Name,
			Email:     org.Email,
			AvatarURL: org.AvatarURL,
			HTMLURL:   org.HTMLURL,
			RawJSON:   org.RawJSON,
			AccountID: s.account.ID,
		}

		outcome, err := s.remoteOrganizationRepository.Upsert(logger, s.account.User, record)
		if err != nil {
			logger.Error("failed-to-upsert", err, lager.Data{
				"organization": org.Login,
			})
			result = multierror.Append(result, err)
			continue
		}

		switch outcome {
		case db.UpsertCreated:
			s.organizationsCreated.Inc(logger)
		case db.UpsertUpdated:
			s.organizationsUpdated.Inc(logger)
		}

		if err := s.syncOrganizationRepositories(logger, record, &tally); err != nil {
			result = multierror.Append(result, err)
		}
	}

	logger.Info("synced", tally.data())

	return result.ErrorOrNil()
}

func (s *syncer) syncOrganizationRepositories(logger lager.Logger, org *db.RemoteOrganization, tally *upsertTally) error {
	logger = logger.Session("organization-repositories", lager.Data{
		"organization": org.Slug,
	})

	repos, err := s.githubClient.OrganizationRepositories(logger, org.Slug)
	if err != nil {
		logger.Error("failed-to-fetch", err)
		return err
	}

	var result *multierror.Error

	for _, repo := range repos {
		if !s.policy.AllowsRepository(repo.Private) {
			s.policyRejections.Inc(logger)
			tally.rejected++
			continue
		}

		outcome, err := s.remoteRepositoryRepository.Upsert(logger, s.account.User, s.remoteRepository(repo, &org.ID))
		if err != nil {
			logger.Error("failed-to-upsert", err, lager.Data{
				"repository": repo.FullName,
			})
			result = multierror.Append(result, err)
			continue
		}

		s.countRepository(logger, outcome, tally)
	}

	return result.ErrorOrNil()
}

// Private repositories are cloned over SSH; public ones keep the
// anonymous HTTPS URL.
func (s *syncer) remoteRepository(repo githubclient.GitHubRepository, organizationID *uint) *db.RemoteRepository {
	cloneURL := repo.CloneURL
	if repo.Private {
		cloneURL = repo.SSHURL
	}

	return &db.RemoteRepository{
		FullName:       repo.FullName,
		Name:           repo.Name,
		Description:    repo.Description,
		SSHURL:         repo.SSHURL,
		HTMLURL:        repo.HTMLURL,
		CloneURL:       cloneURL,
		AvatarURL:      repo.AvatarURL,
		Private:        repo.Private,
		Admin:          repo.Admin,
		VCS:            "git",
		RawJSON:        repo.RawJSON,
		AccountID:      s.account.ID,
		OrganizationID: organizationID,
	}
}

func (s *syncer) countRepository(logger lager.Logger, outcome db.UpsertOutcome, tally *upsertTally) {
	switch outcome {
	case db.UpsertCreated:
		s.repositoriesCreated.Inc(logger)
		tally.created++
	case db.UpsertUpdated:
		s.repositoriesUpdated.Inc(logger)
		tally.updated++
	case db.UpsertSkipped:
		s.repositoriesSkipped.Inc(logger)
		tally.skipped++
	}
}

type upsertTally struct {
	created  int
	updated  int
	skipped  int
	rejected int
}

func (t upsertTally) data() lager.Data {
	return lager.Data{
		"created":  t.created,
		"updated":  t.updated,
		"skipped":  t.skipped,
		"rejected": t.rejected,
	}
}
