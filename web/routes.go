package web

import "github.com/tedsuo/rata"

const (
	SyncUser          = "SyncUser"
	UserRepositories  = "UserRepositories"
	UserOrganizations = "UserOrganizations"
	SetupWebhook      = "SetupWebhook"
	ProjectToken      = "ProjectToken"
	IngestPush        = "IngestPush"
)

var Routes = rata.Routes{
	{Path: "/api/v1/users/:username/sync", Method: "POST", Name: SyncUser},
	{Path: "/api/v1/users/:username/repositories", Method: "GET", Name: UserRepositories},
	{Path: "/api/v1/users/:username/organizations", Method: "GET", Name: UserOrganizations},
	{Path: "/api/v1/projects/:project/webhook", Method: "POST", Name: SetupWebhook},
	{Path: "/api/v1/projects/:project/token", Method: "GET", Name: ProjectToken},
	{Path: "/github", Method: "POST", Name: IngestPush},
}
