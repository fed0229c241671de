package commands

import (
	"code.cloudfoundry.org/lager"

	"github.com/inkwell-press/dewey/apiclient"
)

type DeweyCommand struct {
	APIURL    string `long:"api-url" description:"base URL of the deweyd API" env:"DEWEY_API_URL" default:"http://127.0.0.1:8080" value-name:"URL"`
	AuthToken string `long:"api-auth-token" description:"bearer token for the deweyd API" env:"DEWEY_API_AUTH_TOKEN" value-name:"TOKEN"`

	Sync    SyncCommand    `command:"sync" description:"Refresh a user's repository and organization catalog from GitHub"`
	Repos   ReposCommand   `command:"repos" description:"List a user's cataloged repositories"`
	Orgs    OrgsCommand    `command:"orgs" description:"List a user's cataloged organizations"`
	Webhook WebhookCommand `command:"webhook" description:"Install a push webhook on a project's repository"`
}

var Dewey DeweyCommand

func (command *DeweyCommand) client() apiclient.Client {
	return apiclient.NewClient(command.APIURL, command.AuthToken)
}

// The CLI talks to the API on the operator's behalf; its own log
// stream stays quiet unless a sink is registered.
func (command *DeweyCommand) logger() lager.Logger {
	return lager.NewLogger("dewey-cli")
}
