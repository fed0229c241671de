package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/pprof"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	flags "github.com/jessevdk/go-flags"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/inkwell-press/dewey/api"
	"github.com/inkwell-press/dewey/apiclient"
	"github.com/inkwell-press/dewey/catalog"
	"github.com/inkwell-press/dewey/config"
	"github.com/inkwell-press/dewey/db"
	"github.com/inkwell-press/dewey/db/migrations"
	"github.com/inkwell-press/dewey/metrics"
	"github.com/inkwell-press/dewey/tokens"
	"github.com/inkwell-press/dewey/webhook"
)

func main() {
	var flagOpts config.DeweyOpts

	logger := lager.NewLogger("deweyd")
	logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.INFO))
	logger.Info("starting")

	_, err := flags.Parse(&flagOpts)
	if err != nil {
		os.Exit(1)
	}

	cfg := &config.DeweyConfig{}
	if flagOpts.ConfigFile != "" {
		bs, err := ioutil.ReadFile(flagOpts.ConfigFile.Path())
		if err != nil {
			logger.Error("failed-to-open-config-file", err)
			os.Exit(1)
		}

		cfg, err = config.LoadDeweyConfig(bs)
		if err != nil {
			logger.Error("failed-to-load-config-file", err)
			os.Exit(1)
		}
	}

	if flagOpts.DeweyConfig != nil {
		if err := cfg.Merge(flagOpts.DeweyConfig); err != nil {
			logger.Error("failed-to-merge-config", err)
			os.Exit(1)
		}
	}

	cfg.ApplyDefaults()

	if errs := cfg.Validate(); errs != nil {
		for _, err := range errs {
			fmt.Println(err.Error())
		}
		os.Exit(1)
	}

	if cfg.Metrics.SentryDSN != "" {
		logger.RegisterSink(catalog.NewSentrySink(cfg.Metrics.SentryDSN, cfg.Metrics.Environment))
	}

	var dbURI string
	if cfg.MySQL.BoundService != "" {
		dbURI, err = db.NewDSNFromVCAP(cfg.MySQL.BoundService)
		if err != nil {
			log.Fatalf("vcap services error: %s", err)
		}
	} else {
		dbURI = db.NewDSN(
			cfg.MySQL.Username,
			cfg.MySQL.Password,
			cfg.MySQL.DBName,
			cfg.MySQL.Hostname,
			int(cfg.MySQL.Port),
		)
	}

	database, err := migrations.LockDBAndMigrate(logger, "mysql", dbURI)
	if err != nil {
		log.Fatalf("db error: %s", err)
	}
	database.LogMode(false)

	clk := clock.NewClock()

	userRepository := db.NewUserRepository(database)
	accountRepository := db.NewAccountRepository(database)
	projectRepository := db.NewProjectRepository(database)
	remoteRepositoryRepository := db.NewRemoteRepositoryRepository(database)
	remoteOrganizationRepository := db.NewRemoteOrganizationRepository(database)

	emitter := metrics.BuildEmitter(cfg.Metrics.DatadogAPIKey, cfg.Metrics.Environment)

	policy := catalog.Policy{PrivacyLevel: cfg.GitHub.PrivacyLevel}
	syncerFactory := catalog.NewSyncerFactory(
		policy,
		remoteRepositoryRepository,
		remoteOrganizationRepository,
		emitter,
	)

	var fetcher tokens.ProjectTokenFetcher
	if cfg.Tokens.ResolveViaAPI {
		fetcher = apiclient.NewClient(cfg.Tokens.APIBaseURL, cfg.API.AuthToken)
	}

	resolver := tokens.NewResolver(
		cfg.Tokens.AllowPrivateRepositories,
		cfg.Tokens.ResolveViaAPI,
		fetcher,
		accountRepository,
	)

	var hookSecret string
	if len(cfg.GitHub.WebhookSecrets) > 0 {
		hookSecret = cfg.GitHub.WebhookSecrets[0]
	}

	registrar := webhook.NewRegistrar(
		cfg.GitHub.WebhookDomain,
		hookSecret,
		resolver,
		webhook.NewClientFactory(),
		emitter,
	)

	hints := make(chan catalog.Hint, 100)
	ingestHandler := webhook.NewHandler(logger, hints, clk, emitter, cfg.GitHub.WebhookSecrets)

	router, err := api.NewRouter(
		logger,
		cfg.API.AuthToken,
		userRepository,
		accountRepository,
		projectRepository,
		remoteRepositoryRepository,
		remoteOrganizationRepository,
		syncerFactory,
		registrar,
		resolver,
		ingestHandler,
	)
	if err != nil {
		log.Fatalf("router error: %s", err)
	}

	resyncer := catalog.NewResyncer(accountRepository, syncerFactory, emitter)

	scheduleRunner := catalog.NewScheduleRunner()
	err = scheduleRunner.ScheduleWork(cfg.Resync.CronSchedule, func() {
		resyncer.ResyncAll(logger)
	})
	if err != nil {
		log.Fatalf("schedule error: %s", err)
	}

	hintWorker := catalog.NewHintWorker(
		logger,
		hints,
		clk,
		cfg.Resync.HintInterval,
		accountRepository,
		syncerFactory,
	)

	runner := sigmon.New(grouper.NewParallel(os.Interrupt, []grouper.Member{
		{Name: "api", Runner: http_server.New(fmt.Sprintf(":%d", cfg.API.BindPort), router)},
		{Name: "schedule-runner", Runner: scheduleRunner},
		{Name: "hint-worker", Runner: hintWorker},
		{Name: "debug", Runner: http_server.New("127.0.0.1:6060", debugHandler())},
	}))

	err = <-ifrit.Invoke(runner).Wait()
	if err != nil {
		log.Fatalf("failed-to-start: %s", err)
	}
}

func debugHandler() http.Handler {
	debugRouter := http.NewServeMux()
	debugRouter.Handle("/debug/pprof/", http.HandlerFunc(pprof.Index))
	debugRouter.Handle("/debug/pprof/cmdline", http.HandlerFunc(pprof.Cmdline))
	debugRouter.Handle("/debug/pprof/profile", http.HandlerFunc(pprof.Profile))
	debugRouter.Handle("/debug/pprof/symbol", http.HandlerFunc(pprof.Symbol))
	debugRouter.Handle("/debug/pprof/trace", http.HandlerFunc(pprof.Trace))

	return debugRouter
}
