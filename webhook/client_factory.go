package webhook

import (
	"github.com/google/go-github/v55/github"

	"github.com/inkwell-press/dewey/githubclient"
)

//go:generate counterfeiter . ClientFactory

// ClientFactory builds a github client for a token that was resolved
// at request time rather than read off an account row.
type ClientFactory interface {
	ForToken(token string) githubclient.Client
}

type clientFactory struct{}

func NewClientFactory() ClientFactory {
	return clientFactory{}
}

func (clientFactory) ForToken(token string) githubclient.Client {
	httpClient := githubclient.NewHTTPClient(token)
	return githubclient.NewClient(github.NewClient(httpClient))
}
