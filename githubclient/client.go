package githubclient

import (
	"context"
	"encoding/json"
	"fmt"

	"code.cloudfoundry.org/lager"
	"github.com/google/go-github/v55/github"
)

//go:generate counterfeiter . Client

type Client interface {
	UserRepositories(lager.Logger) ([]GitHubRepository, error)
	UserOrganizations(lager.Logger) ([]GitHubOrganization, error)
	Organization(lager.Logger, string) (GitHubOrganization, error)
	OrganizationRepositories(lager.Logger, string) ([]GitHubRepository, error)
	CreateRepositoryHook(lager.Logger, string, string, string, string) error
}

type GitHubRepository struct {
	Owner             string
	Name              string
	FullName          string
	Description       string
	SSHURL            string
	HTMLURL           string
	CloneURL          string
	AvatarURL         string
	Private           bool
	Admin             bool
	OrganizationLogin string
	RawJSON           []byte
}

type GitHubOrganization struct {
	Login     string
	Name      string
	Email     string
	AvatarURL string
	HTMLURL   string
	RawJSON   []byte
}

type HookRejectedError struct {
	StatusCode int
	Message    string
}

func (e *HookRejectedError) Error() string {
	return fmt.Sprintf("hook rejected: %d: %s", e.StatusCode, e.Message)
}

type client struct {
	ghClient *github.Client
}

func NewClient(ghClient *github.Client) Client {
	return &client{
		ghClient: ghClient,
	}
}

func (c *client) UserRepositories(logger lager.Logger) ([]GitHubRepository, error) {
	logger = logger.Session("user-repositories")

	opts := &github.RepositoryListOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var ghRepos []*github.Repository

	for {
		rs, resp, err := c.ghClient.Repositories.List(context.Background(), "", opts)
		if err != nil {
			logger.Error("failed", err, lager.Data{
				"fetching-page": opts.ListOptions.Page,
			})
			return nil, err
		}

		ghRepos = append(ghRepos, rs...)

		if resp.NextPage == 0 {
			break
		}

		opts.ListOptions.Page = resp.NextPage
	}

	return c.projectRepositories(logger, ghRepos)
}

func (c *client) OrganizationRepositories(logger lager.Logger, login string) ([]GitHubRepository, error) {
	logger = logger.Session("organization-repositories", lager.Data{
		"organization": login,
	})

	opts := &github.RepositoryListByOrgOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var ghRepos []*github.Repository

	for {
		rs, resp, err := c.ghClient.Repositories.ListByOrg(context.Background(), login, opts)
		if err != nil {
			logger.Error("failed", err, lager.Data{
				"fetching-page": opts.ListOptions.Page,
			})
			return nil, err
		}

		ghRepos = append(ghRepos, rs...)

		if resp.NextPage == 0 {
			break
		}

		opts.ListOptions.Page = resp.NextPage
	}

	return c.projectRepositories(logger, ghRepos)
}

func (c *client) UserOrganizations(logger lager.Logger) ([]GitHubOrganization, error) {
	logger = logger.Session("user-organizations")

	opts := &github.ListOptions{PerPage: 100}

	var organizations []GitHubOrganization

	for {
		os, resp, err := c.ghClient.Organizations.List(context.Background(), "", opts)
		if err != nil {
			logger.Error("failed", err, lager.Data{
				"fetching-page": opts.Page,
			})
			return nil, err
		}

		for _, o := range os {
			organization, err := projectOrganization(o)
			if err != nil {
				logger.Error("failed-to-marshal-json", err)
				return nil, err
			}

			organizations = append(organizations, organization)
		}

		if resp.NextPage == 0 {
			break
		}

		opts.Page = resp.NextPage
	}

	return organizations, nil
}

func (c *client) Organization(logger lager.Logger, login string) (GitHubOrganization, error) {
	logger = logger.Session("organization", lager.Data{
		"organization": login,
	})

	o, _, err := c.ghClient.Organizations.Get(context.Background(), login)
	if err != nil {
		logger.Error("failed", err)
		return GitHubOrganization{}, err
	}

	organization, err := projectOrganization(o)
	if err != nil {
		logger.Error("failed-to-marshal-json", err)
		return GitHubOrganization{}, err
	}

	return organization, nil
}

func (c *client) CreateRepositoryHook(logger lager.Logger, owner, name, hookURL, secret string) error {
	logger = logger.Session("create-repository-hook", lager.Data{
		"owner":      owner,
		"repository": name,
	})

	hook := &github.Hook{
		Name:   github.String("web"),
		Active: github.Bool(true),
		Events: []string{"push"},
		Config: map[string]interface{}{
			"url":          hookURL,
			"content_type": "json",
			"secret":       secret,
		},
	}

	_, _, err := c.ghClient.Repositories.CreateHook(context.Background(), owner, name, hook)
	if err != nil {
		if errResp, ok := err.(*github.ErrorResponse); ok {
			logger.Info("rejected", lager.Data{
				"status":  errResp.Response.StatusCode,
				"message": errResp.Message,
			})
			return &HookRejectedError{
				StatusCode: errResp.Response.StatusCode,
				Message:    errResp.Message,
			}
		}

		logger.Error("failed", err)
		return err
	}

	logger.Info("created")
	return nil
}

func (c *client) projectRepositories(logger lager.Logger, ghRepos []*github.Repository) ([]GitHubRepository, error) {
	var repos []GitHubRepository

	for _, r := range ghRepos {
		rawJSONBytes, err := json.Marshal(r)
		if err != nil {
			logger.Error("failed-to-marshal-json", err)
			return nil, err
		}

		repo := GitHubRepository{
			Owner:       r.GetOwner().GetLogin(),
			Name:        r.GetName(),
			FullName:    r.GetFullName(),
			Description: r.GetDescription(),
			SSHURL:      r.GetSSHURL(),
			HTMLURL:     r.GetHTMLURL(),
			CloneURL:    r.GetCloneURL(),
			AvatarURL:   r.GetOwner().GetAvatarURL(),
			Private:     r.GetPrivate(),
			Admin:       r.GetPermissions()["admin"],
			RawJSON:     rawJSONBytes,
		}

		if r.GetOwner().GetType() == "Organization" {
			repo.OrganizationLogin = r.GetOwner().GetLogin()
		}

		repos = append(repos, repo)
	}

	return repos, nil
}

func projectOrganization(o *github.Organization) (GitHubOrganization, error) {
	rawJSONBytes, err := json.Marshal(o)
	if err != nil {
		return GitHubOrganization{}, err
	}

	return GitHubOrganization{
		Login:     o.GetLogin(),
		Name:      o.GetName(),
		Email:     o.GetEmail(),
		AvatarURL: o.GetAvatarURL(),
		HTMLURL:   o.GetHTMLURL(),
		RawJSON:   rawJSONBytes,
	}, nil
}
