package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	yaml "gopkg.in/yaml.v2"

	"github.com/inkwell-press/dewey/cmdflag"
)

const (
	PrivacyLevelPublic  = "public"
	PrivacyLevelPrivate = "private"
)

func LoadDeweyConfig(bs []byte) (*DeweyConfig, error) {
	c := &DeweyConfig{}
	err := yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

type DeweyOpts struct {
	ConfigFile cmdflag.FileFlag `long:"config-file" description:"path to config file" value-name:"PATH"`

	*DeweyConfig
}

type DeweyConfig struct {
	API struct {
		BindPort  uint16 `long:"api-bind-port" description:"port on which to serve the internal API" env:"API_BIND_PORT" value-name:"PORT" yaml:"bind_port"`
		AuthToken string `long:"api-auth-token" description:"bearer token required on API requests" env:"API_AUTH_TOKEN" value-name:"TOKEN" yaml:"auth_token"`
	} `group:"API Options" yaml:"api"`

	GitHub struct {
		PrivacyLevel   string   `long:"github-privacy-level" description:"most private repository visibility to catalog (public or private)" env:"GITHUB_PRIVACY_LEVEL" value-name:"LEVEL" yaml:"privacy_level"`
		WebhookDomain  string   `long:"github-webhook-domain" description:"domain github should deliver push events to" env:"GITHUB_WEBHOOK_DOMAIN" value-name:"DOMAIN" yaml:"webhook_domain"`
		WebhookSecrets []string `long:"github-webhook-secret" description:"secrets to verify github deliveries against" env:"GITHUB_WEBHOOK_SECRETS" env-delim:"," value-name:"SECRET" yaml:"webhook_secrets"`
	} `group:"GitHub Options" yaml:"github"`

	Tokens struct {
		AllowPrivateRepositories bool   `long:"allow-private-repositories" description:"enable token resolution for private repository access" env:"ALLOW_PRIVATE_REPOSITORIES" yaml:"allow_private_repositories"`
		ResolveViaAPI            bool   `long:"resolve-tokens-via-api" description:"resolve project tokens through another deployment's API instead of the local database" env:"RESOLVE_TOKENS_VIA_API" yaml:"resolve_via_api"`
		APIBaseURL               string `long:"tokens-api-base-url" description:"base URL of the deployment to resolve tokens against" env:"TOKENS_API_BASE_URL" value-name:"URL" yaml:"api_base_url"`
	} `group:"Token Options" yaml:"tokens"`

	Resync struct {
		CronSchedule string        `long:"resync-cron-schedule" description:"cron schedule for full catalog resyncs" env:"RESYNC_CRON_SCHEDULE" value-name:"SPEC" yaml:"cron_schedule"`
		HintInterval time.Duration `long:"resync-hint-interval" description:"how long to collect push hints before working them" env:"RESYNC_HINT_INTERVAL" value-name:"INTERVAL" yaml:"hint_interval"`
	} `group:"Resync Options" yaml:"resync"`

	MySQL struct {
		Username     string `long:"mysql-username" description:"MySQL username" value-name:"USERNAME" yaml:"username"`
		Password     string `long:"mysql-password" description:"MySQL password" value-name:"PASSWORD" yaml:"password"`
		Hostname     string `long:"mysql-hostname" description:"MySQL hostname" value-name:"HOSTNAME" yaml:"hostname"`
		Port         uint16 `long:"mysql-port" description:"MySQL port" value-name:"PORT" yaml:"port"`
		DBName       string `long:"mysql-dbname" description:"MySQL database name" value-name:"DBNAME" yaml:"db_name"`
		BoundService string `long:"mysql-bound-service" description:"name of a bound Cloud Foundry MySQL service to read credentials from" env:"MYSQL_BOUND_SERVICE" value-name:"NAME" yaml:"bound_service"`
	} `group:"MySQL Options" yaml:"mysql"`

	Metrics struct {
		SentryDSN     string `long:"sentry-dsn" description:"DSN to emit to Sentry with" env:"SENTRY_DSN" value-name:"DSN" yaml:"sentry_dsn"`
		DatadogAPIKey string `long:"datadog-api-key" description:"key to emit to datadog" env:"DATADOG_API_KEY" value-name:"KEY" yaml:"datadog_api_key"`
		Environment   string `long:"environment" description:"environment tag for metrics" env:"ENVIRONMENT" value-name:"NAME" yaml:"environment"`
	} `group:"Metrics Options" yaml:"metrics"`
}

func (c *DeweyConfig) Validate() []error {
	var errs []error

	if c.API.BindPort == 0 {
		errs = append(errs, errors.New("no api bind port specified"))
	}

	switch c.GitHub.PrivacyLevel {
	case PrivacyLevelPublic, PrivacyLevelPrivate:
	default:
		errs = append(errs, fmt.Errorf("unknown privacy level: %s", c.GitHub.PrivacyLevel))
	}

	if c.MySQL.BoundService == "" {
		if c.MySQL.Username == "" {
			errs = append(errs, errors.New("no mysql username specified"))
		}

		if c.MySQL.Hostname == "" {
			errs = append(errs, errors.New("no mysql hostname specified"))
		}

		if c.MySQL.DBName == "" {
			errs = append(errs, errors.New("no mysql db name specified"))
		}
	}

	if c.Tokens.ResolveViaAPI && c.Tokens.APIBaseURL == "" {
		errs = append(errs, errors.New("resolving tokens via api requires an api base url"))
	}

	return errs
}

func (c *DeweyConfig) Merge(other *DeweyConfig) error {
	src := reflect.ValueOf(other).Elem()
	dst := reflect.ValueOf(c).Elem()

	return merge(dst, src)
}

// Defaults that only apply when neither the file nor the flags set a
// value; merge treats zero values as unset, so they cannot live in
// struct tags.
func (c *DeweyConfig) ApplyDefaults() {
	if c.GitHub.PrivacyLevel == "" {
		c.GitHub.PrivacyLevel = PrivacyLevelPublic
	}

	if c.Resync.CronSchedule == "" {
		c.Resync.CronSchedule = "@every 1h"
	}

	if c.Resync.HintInterval == 0 {
		c.Resync.HintInterval = 10 * time.Second
	}

	if c.Metrics.Environment == "" {
		c.Metrics.Environment = "development"
	}

	if c.MySQL.Port == 0 {
		c.MySQL.Port = 3306
	}
}
