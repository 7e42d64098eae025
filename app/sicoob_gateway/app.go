package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	formatter "github.com/bluexlab/logrus-formatter"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/gobuffalo/pop"
	"github.com/gobuffalo/pop/logging"
	"github.com/openebl/sicoob-gateway/pkg/config"
	"github.com/openebl/sicoob-gateway/pkg/gateway/api"
	"github.com/openebl/sicoob-gateway/pkg/gateway/middleware"
	"github.com/openebl/sicoob-gateway/pkg/gateway/storage/postgres"
	"github.com/openebl/sicoob-gateway/pkg/gateway/webhook"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/auth"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/boleto"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/cobranca"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/pix"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/transport"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const appName string = "sicoob-gateway"

type CLI struct {
	Server struct {
	} `cmd:"" help:"Run the gateway API and webhook receiver"`
	Migrate struct {
		Path string `short:"p" long:"path" help:"Path to the migration files" type:"existingdir" default:"migrations"`
	} `cmd:"" help:"Migrate the database"`
	Config string `short:"c" long:"config" help:"Path to the configuration file" type:"existingfile" default:"config.yaml"`
}

type App struct{}

func (a *App) Run() {
	formatter.InitLogger()

	var cli CLI
	ctx := kong.Parse(&cli, kong.UsageOnError())
	switch ctx.Command() {
	case "server":
		a.runServer(cli)
	case "migrate":
		a.runMigrate(cli)
	default:
	}
}

func loadConfig(path string) config.GatewayConfig {
	var appConfig config.GatewayConfig
	if err := config.FromFile(path, &appConfig); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}
	config.ApplyEnv(&appConfig, os.LookupEnv)
	appConfig.SetDefaults()
	return appConfig
}

func (a *App) runServer(cli CLI) {
	ctx := context.Background()

	appConfig := loadConfig(cli.Config)
	if err := appConfig.Validate(); err != nil {
		logrus.Errorf("invalid config: %v", err)
		os.Exit(128)
	}

	if endpoint := appConfig.OTLPEndpoint; endpoint != "" {
		exporter, err := otlp_util.InitExporter(
			otlp_util.WithContext(ctx),
			otlp_util.WithEndPoint(endpoint),
			otlp_util.WithServiceName(appName),
			otlp_util.WithInSecure(),
			otlp_util.WithErrorHandler(func(err error) {
				logrus.Warnf("OTLP error: %v", err)
			}),
		)
		if err != nil {
			logrus.Errorf("failed to initialize OTLP exporter: %v", err)
			os.Exit(128)
		}
		defer func() { _ = exporter.Shutdown(ctx) }()
	}

	sicoobConfig := appConfig.Sicoob
	bundle, err := transport.LoadCertificateBundle(transport.CertificateConfig{
		PFXBase64:   sicoobConfig.Certificate.PFXBase64,
		PFXPassword: sicoobConfig.Certificate.PFXPassword,
		CertPath:    sicoobConfig.Certificate.CertPath,
		KeyPath:     sicoobConfig.Certificate.KeyPath,
		CABase64:    sicoobConfig.Certificate.CABase64,
		CAPath:      sicoobConfig.Certificate.CAPath,
	})
	if err != nil {
		logrus.Errorf("failed to load client certificate: %v", err)
		os.Exit(128)
	}

	authHTTPClient, err := transport.NewHTTPClient(bundle,
		transport.WithName("auth"),
		transport.WithEnvironment(sicoobConfig.Environment),
		transport.WithTimeout(transport.DefaultAuthTimeout),
		transport.WithInsecureSkipVerify(sicoobConfig.InsecureSkipVerify),
	)
	if err != nil {
		logrus.Errorf("failed to create auth transport: %v", err)
		os.Exit(128)
	}
	apiHTTPClient, err := transport.NewHTTPClient(bundle,
		transport.WithName("api"),
		transport.WithEnvironment(sicoobConfig.Environment),
		transport.WithTimeout(sicoobConfig.Timeout),
		transport.WithInsecureSkipVerify(sicoobConfig.InsecureSkipVerify),
	)
	if err != nil {
		logrus.Errorf("failed to create API transport: %v", err)
		os.Exit(128)
	}

	authClient := auth.NewClient(auth.Config{
		TokenURL:     sicoobConfig.AuthURL,
		ValidateURL:  sicoobConfig.AuthValidateURL,
		BaseURL:      sicoobConfig.AuthBaseURL,
		ClientID:     sicoobConfig.ClientID,
		ClientSecret: sicoobConfig.ClientSecret,
		Scopes:       sicoobConfig.Scopes,
	}, authHTTPClient)
	pixClient := pix.NewClient(sicoobConfig.PixBaseURL, apiHTTPClient, authClient)
	boletoClient := boleto.NewClient(boleto.Config{
		BaseURL:                sicoobConfig.BoletoBaseURL,
		Cooperativa:            sicoobConfig.Cooperativa,
		ContaCorrente:          sicoobConfig.Conta,
		GenerateDocumentNumber: sicoobConfig.GenerateDocumentNumber,
		PostsPerSecond:         sicoobConfig.BoletoPostsPerSecond,
	}, apiHTTPClient, authClient)
	chargeService := cobranca.NewService(pixClient, boletoClient)

	processor := webhook.NewProcessorWithConfig(appConfig.Webhook)
	ctrls := api.Controllers{
		Pix:      pixClient,
		Boleto:   boletoClient,
		Cobranca: chargeService,
		Webhook:  processor,
		Tokens:   authClient,
	}
	if appConfig.Database.Host != "" {
		dbStorage, err := postgres.NewStorageWithConfig(appConfig.Database)
		if err != nil {
			logrus.Errorf("failed to create database connection: %v", err)
			os.Exit(128)
		}
		defer dbStorage.Close()
		webhook.RegisterDefaultHandlers(processor, dbStorage)
		ctrls.Charges = dbStorage
	} else {
		logrus.Warnf("no database configured: webhook events and created charges are not persisted")
	}

	var windowStore middleware.WindowStore
	if appConfig.Redis.Addr != "" {
		rdb := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{appConfig.Redis.Addr},
			Password: appConfig.Redis.Password,
			DB:       appConfig.Redis.DB,
		})
		defer rdb.Close()
		var opts []middleware.RedisWindowStoreOption
		if appConfig.Redis.Prefix != "" {
			opts = append(opts, middleware.WithWindowPrefix(appConfig.Redis.Prefix))
		}
		windowStore = middleware.NewRedisWindowStore(rdb, opts...)
	} else {
		windowStore = middleware.NewMemoryWindowStore()
	}

	rateLimit := appConfig.RateLimit
	var limiterOpts []middleware.RateLimiterOption
	if len(rateLimit.TrustedProxies) > 0 {
		limiterOpts = append(limiterOpts, middleware.WithKeyFunc(middleware.ForwardedClientIP(rateLimit.TrustedProxies...)))
	}
	guards := api.Guards{
		JWT:              middleware.NewJWTAuth(appConfig.JWT),
		APILimiter:       middleware.NewRateLimiter(windowStore, "api", rateLimit.Window, rateLimit.Max, limiterOpts...),
		WebhookLimiter:   middleware.NewRateLimiter(windowStore, "webhook", rateLimit.Window, rateLimit.WebhookMax, limiterOpts...),
		WebhookSignature: middleware.NewWebhookSignature(appConfig.Webhook.Secret, appConfig.Webhook.TimestampTolerance),
	}
	apiServer, err := api.NewAPIWithController(ctrls, guards, api.APIConfig{LocalAddress: appConfig.LocalAddress})
	if err != nil {
		logrus.Errorf("failed to create API server: %v", err)
		os.Exit(128)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()

		if err := apiServer.Run(); err != nil {
			logrus.Errorf("failed to run API server: %v", err)
			os.Exit(1)
		}
	}(wg)

	// listen for the stop signal
	<-ctx.Done()

	// Restore default behavior on the signals we are listening to
	stop()
	logrus.Info("shutting down gracefully, press Ctrl+C again to force")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Close(ctx); err != nil {
		logrus.Warnf("failed to close API server: %v", err)
		os.Exit(1)
	}

	wg.Wait()
	logrus.Info("gateway stopped")
}

func (a *App) runMigrate(cli CLI) {
	appConfig := loadConfig(cli.Config)

	pop.SetLogger(func(lvl logging.Level, s string, args ...interface{}) {
		switch lvl {
		case logging.Debug:
			logrus.Debugf(s, args...)
		case logging.Info:
			logrus.Infof(s, args...)
		case logging.Warn:
			logrus.Warnf(s, args...)
		case logging.Error:
			logrus.Errorf(s, args...)
		case logging.SQL:
		}
	})

	cd := pop.ConnectionDetails{
		Dialect:  "postgres",
		Database: appConfig.Database.Database,
		Host:     appConfig.Database.Host,
		Port:     strconv.Itoa(appConfig.Database.Port),
		User:     appConfig.Database.User,
		Password: appConfig.Database.Password,
	}
	conn, err := pop.NewConnection(&cd)
	if err != nil {
		logrus.Errorf("failed to create connection: %v", err)
		os.Exit(128)
	}

	if err = conn.Dialect.CreateDB(); err != nil {
		logrus.Warnf("failed to create database: %v", err)
	}

	migrator, err := pop.NewFileMigrator(cli.Migrate.Path, conn)
	if err != nil {
		logrus.Errorf("failed to create migrator: %v", err)
		os.Exit(128)
	}
	// The migrator must not try to dump the schema.
	migrator.SchemaPath = ""

	if err = migrator.Up(); err != nil {
		logrus.Errorf("failed to migrate: %v", err)
		os.Exit(1)
	}
	logrus.Infof("migrations in %s applied", cli.Migrate.Path)
}
