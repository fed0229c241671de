package catalog

import (
	"github.com/google/go-github/v55/github"

	"github.com/inkwell-press/dewey/db"
	"github.com/inkwell-press/dewey/githubclient"
	"github.com/inkwell-press/dewey/metrics"
)

//go:generate counterfeiter . SyncerFactory

// SyncerFactory builds a Syncer bound to one account's github token.
// It is the single construction path shared by the API, the resyncer,
// and the hint worker.
type SyncerFactory interface {
	ForAccount(account db.Account) Syncer
}

type syncerFactory struct {
	policy                       Policy
	remoteRepositoryRepository   db.RemoteRepositoryRepository
	remoteOrganizationRepository db.RemoteOrganizationRepository
	emitter                      metrics.Emitter
}

func NewSyncerFactory(
	policy Policy,
	remoteRepositoryRepository db.RemoteRepositoryRepository,
	remoteOrganizationRepository db.RemoteOrganizationRepository,
	emitter metrics.Emitter,
) SyncerFactory {
	return &syncerFactory{
		policy:                       policy,
		remoteRepositoryRepository:   remoteRepositoryRepository,
		remoteOrganizationRepository: remoteOrganizationRepository,
		emitter:                      emitter,
	}
}

func (f *syncerFactory) ForAccount(account db.Account) Syncer {
	httpClient := githubclient.NewHTTPClient(account.Token)
	ghClient := githubclient.NewClient(github.NewClient(httpClient))

	return NewSyncer(
		ghClient,
		f.policy,
		account,
		f.remoteRepositoryRepository,
		f.remoteOrganizationRepository,
		f.emitter,
	)
}
