package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/rata"

	"github.com/inkwell-press/dewey/net"
	"github.com/inkwell-press/dewey/web"
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

type SyncResult struct {
	User   string `json:"user"`
	Synced bool   `json:"synced"`
}

// Client talks to a deweyd deployment's internal API.
type Client interface {
	ProjectToken(logger lager.Logger, slug string) (string, error)
	SyncUser(logger lager.Logger, username string) (SyncResult, error)
	UserRepositories(logger lager.Logger, username string) ([]Repository, error)
	UserOrganizations(logger lager.Logger, username string) ([]Organization, error)
	SetupWebhook(logger lager.Logger, slug string) (string, error)
}

type client struct {
	requestGenerator *rata.RequestGenerator
	authToken        string
	httpClient       net.Client
}

func NewClient(baseURL string, authToken string) Client {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			DisableKeepAlives: true,
		},
	}

	return &client{
		requestGenerator: rata.NewRequestGenerator(strings.TrimSuffix(baseURL, "/"), web.Routes),
		authToken:        authToken,
		httpClient:       net.NewRetryingClient(httpClient),
	}
}

func (c *client) ProjectToken(logger lager.Logger, slug string) (string, error) {
	logger = logger.Session("project-token", lager.Data{
		"project": slug,
	})

	var response struct {
		Token string `json:"token"`
	}

	err := c.do(logger, web.ProjectToken, rata.Params{"project": slug}, &response)
	if err != nil {
		return "", err
	}

	return response.Token, nil
}

func (c *client) SyncUser(logger lager.Logger, username string) (SyncResult, error) {
	logger = logger.Session("sync-user", lager.Data{
		"username": username,
	})

	var result SyncResult

	err := c.do(logger, web.SyncUser, rata.Params{"username": username}, &result)
	if err != nil {
		return SyncResult{}, err
	}

	return result, nil
}

func (c *client) UserRepositories(logger lager.Logger, username string) ([]Repository, error) {
	logger = logger.Session("user-repositories", lager.Data{
		"username": username,
	})

	var repositories []Repository

	err := c.do(logger, web.UserRepositories, rata.Params{"username": username}, &repositories)
	if err != nil {
		return nil, err
	}

	return repositories, nil
}

func (c *client) UserOrganizations(logger lager.Logger, username string) ([]Organization, error) {
	logger = logger.Session("user-organizations", lager.Data{
		"username": username,
	})

	var organizations []Organization

	err := c.do(logger, web.UserOrganizations, rata.Params{"username": username}, &organizations)
	if err != nil {
		return nil, err
	}

	return organizations, nil
}

// SetupWebhook reports the registrar's outcome. A hook the provider
// rejected as already present comes back as its outcome, not an
// error; only transport and server failures error.
func (c *client) SetupWebhook(logger lager.Logger, slug string) (string, error) {
	logger = logger.Session("setup-webhook", lager.Data{
		"project": slug,
	})

	req, err := c.requestGenerator.CreateRequest(web.SetupWebhook, rata.Params{"project": slug}, nil)
	if err != nil {
		logger.Error("failed-to-build-request", err)
		return "", err
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("failed-to-send", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusConflict {
		err := fmt.Errorf("bad response: %s", resp.Status)
		logger.Error("failed", err)
		return "", err
	}

	var response struct {
		Outcome string `json:"outcome"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		logger.Error("failed-to-decode-response", err)
		return "", err
	}

	return response.Outcome, nil
}

func (c *client) do(logger lager.Logger, route string, params rata.Params, response interface{}) error {
	logger.Debug("starting")

	req, err := c.requestGenerator.CreateRequest(route, params, nil)
	if err != nil {
		logger.Error("failed-to-build-request", err)
		return err
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("failed-to-send", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("bad response: %s", resp.Status)
		logger.Error("failed", err)
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		logger.Error("failed-to-decode-response", err)
		return err
	}

	logger.Debug("done")

	return nil
}
