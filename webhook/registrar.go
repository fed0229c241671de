package webhook

import (
	"fmt"
	"net/url"

	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/db"
	"github.com/inkwell-press/dewey/githubclient"
	"github.com/inkwell-press/dewey/metrics"
	"github.com/inkwell-press/dewey/tokens"
)

type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeRejected
	OutcomeErrored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeRejected:
		return "rejected"
	case OutcomeErrored:
		return "errored"
	default:
		return "unknown"
	}
}

//go:generate counterfeiter . Registrar

// Registrar installs a push webhook on a project's repository so that
// pushes show up as resync hints.
type Registrar interface {
	Setup(logger lager.Logger, project db.Project) Outcome
}

type registrar struct {
	domain        string
	secret        string
	resolver      tokens.Resolver
	clientFactory ClientFactory

	hooksCreated  metrics.Counter
	hooksRejected metrics.Counter
	hooksErrored  metrics.Counter
}

func NewRegistrar(
	domain string,
	secret string,
	resolver tokens.Resolver,
	clientFactory ClientFactory,
	emitter metrics.Emitter,
) Registrar {
	return &registrar{
		domain:        domain,
		secret:        secret,
		resolver:      resolver,
		clientFactory: clientFactory,

		hooksCreated:  emitter.Counter("webhook.hooks-created"),
		hooksRejected: emitter.Counter("webhook.hooks-rejected"),
		hooksErrored:  emitter.Counter("webhook.hooks-errored"),
	}
}

func (r *registrar) Setup(logger lager.Logger, project db.Project) Outcome {
	logger = logger.Session("setup-webhook", lager.Data{
		"project": project.Slug,
	})

	owner, name, err := githubclient.ParseOwnerRepo(project.RepoURL)
	if err != nil {
		logger.Error("failed-to-parse-repo-url", err, lager.Data{
			"url": project.RepoURL,
		})
		r.hooksErrored.Inc(logger)
		return OutcomeErrored
	}

	token, found := r.resolver.Resolve(logger, project, true)
	if !found {
		logger.Info("no-token")
		r.hooksErrored.Inc(logger)
		return OutcomeErrored
	}

	client := r.clientFactory.ForToken(token)

	hookURL := fmt.Sprintf("https://%s/github?project=%s", r.domain, url.QueryEscape(project.Slug))

	err = client.CreateRepositoryHook(logger, owner, name, hookURL, r.secret)
	if err != nil {
		if _, rejected := err.(*githubclient.HookRejectedError); rejected {
			r.hooksRejected.Inc(logger)
			return OutcomeRejected
		}

		r.hooksErrored.Inc(logger)
		return OutcomeErrored
	}

	r.hooksCreated.Inc(logger)
	return OutcomeCreated
}
