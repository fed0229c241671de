package githubclient

import (
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

func NewHTTPClient(token string) *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base: &http.Transport{
				DisableKeepAlives: true,
			},
		},
	}
}
