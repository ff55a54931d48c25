// Package main provides the entry point for the team-management backend.
package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/squadra/internal/api"
	"github.com/yourusername/squadra/internal/config"
	"github.com/yourusername/squadra/internal/database"
	"github.com/yourusername/squadra/internal/datasource"
	"github.com/yourusername/squadra/internal/health"
	"github.com/yourusername/squadra/internal/logger"
	"github.com/yourusername/squadra/internal/metrics"
	"github.com/yourusername/squadra/internal/repository"
	"github.com/yourusername/squadra/internal/scheduler"
	"github.com/yourusername/squadra/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithDefaults("config/config.yaml")
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}

	// Load AWS secrets if enabled
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			stdlog.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			stdlog.Fatalf("Failed to load secrets: %v", err)
		}
	}

	// Validate configuration
	if err := config.Validate(cfg); err != nil {
		stdlog.Fatalf("Invalid configuration: %v", err)
	}

	// Set up logging
	appLog := logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"club":        cfg.Club.Name,
		"season":      cfg.Club.Season,
		"version":     Version,
	}).Info("Squadra backend starting")

	// Initialize database connection
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	// The pool ping only proves connectivity; run a real query before
	// anything depends on the database.
	if err := db.HealthCheck(ctx); err != nil {
		appLog.WithError(err).Fatal("Database health check failed")
	}
	appLog.Info("Database connection established")

	// Initialize repositories
	repos, err := repository.NewRepositories(db)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to initialize repositories")
	}

	// Initialize services
	rosterSvc := service.NewRosterService(repos.Player, appLog)
	matchSvc := service.NewMatchService(repos.Match, repos.Event, repos.FormationRecord, appLog)
	statsSvc := service.NewStatsService(
		repos.Player, repos.Match, repos.Event, repos.FormationRecord,
		time.Duration(cfg.Stats.CacheTTLSeconds)*time.Second,
		appLog,
	)
	feesSvc := service.NewFeesService(
		repos.Fee, repos.Player,
		decimal.NewFromFloat(cfg.Club.SeasonFee),
		cfg.Club.Season,
		appLog,
	)

	feedClient := newFeedClient(cfg, appLog)
	calendarSvc := service.NewCalendarService(feedClient, repos.Match, cfg.Club.Season, appLog)

	// Initialize metrics
	metrics.InitRegistry()
	if cfg.Metrics.Enabled {
		startMetricsServer(cfg, appLog)
	}

	// Start health server
	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Club:        cfg.Club.Name,
		Season:      cfg.Club.Season,
		Version:     Version,
		Port:        cfg.Server.HealthPort,
		Logger:      appLog,
		DB:          db,
	})
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			appLog.WithError(err).Error("Health server stopped")
		}
	}()

	// Start scheduler
	sched := scheduler.NewScheduler(statsSvc, calendarSvc, appLog)
	if cfg.Stats.WarmCron != "" {
		if err := sched.ScheduleStatsWarm(cfg.Stats.WarmCron); err != nil {
			appLog.WithError(err).Fatal("Failed to schedule stats warm job")
		}
	}
	if cfg.FixturesFeed.Enabled && cfg.FixturesFeed.RefreshCron != "" {
		if err := sched.ScheduleFixturesRefresh(cfg.FixturesFeed.RefreshCron); err != nil {
			appLog.WithError(err).Fatal("Failed to schedule fixtures refresh job")
		}
	}
	if err := sched.Start(); err != nil {
		appLog.WithError(err).Warn("Scheduler not started")
	} else {
		appLog.WithField("next_run", sched.NextRun()).Info("Scheduler running")
	}

	// Build the HTTP API
	handler := api.NewHandler(rosterSvc, matchSvc, statsSvc, feesSvc, calendarSvc)
	router := api.NewRouter(handler, cfg.Server.CORSAllowOrigins, appLog)

	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
	}

	go func() {
		appLog.WithField("port", cfg.Server.Port).Info("API server listening")
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.WithError(err).Fatal("API server failed")
		}
	}()

	healthServer.SetReady(true)

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	appLog.WithField("signal", sig).Info("Shutdown signal received")

	healthServer.SetReady(false)
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownGraceSecs)*time.Second,
	)
	defer shutdownCancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Error("Error during API server shutdown")
	}
	if err := healthServer.Shutdown(); err != nil {
		appLog.WithError(err).Error("Error during health server shutdown")
	}

	appLog.Info("Squadra backend shut down successfully")
}

// newFeedClient builds the fixtures feed client from configuration. A feed
// that is disabled or missing its URL still gets a client pointing at an
// empty base URL; imports then fail fast with a clear error instead of a
// nil dereference.
func newFeedClient(cfg *config.Config, appLog *logrus.Logger) *datasource.FixturesFeedClient {
	httpCfg := datasource.DefaultHTTPClientConfig()
	if cfg.FixturesFeed.TimeoutSeconds > 0 {
		httpCfg.Timeout = time.Duration(cfg.FixturesFeed.TimeoutSeconds) * time.Second
	}
	if cfg.FixturesFeed.MaxRetries > 0 {
		httpCfg.MaxRetries = cfg.FixturesFeed.MaxRetries
	}
	if cfg.FixturesFeed.RateLimit > 0 {
		httpCfg.RateLimit = cfg.FixturesFeed.RateLimit
	}

	httpLogger := stdlog.New(appLog.Writer(), "fixtures-feed: ", 0)
	httpClient := datasource.NewRateLimitedHTTPClient(httpCfg, httpLogger)
	return datasource.NewFixturesFeedClient(cfg.FixturesFeed.URL, cfg.FixturesFeed.APIKey, httpClient)
}

func startMetricsServer(cfg *config.Config, appLog *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, metrics.Handler())

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler: mux,
	}

	metricsLog := logger.WithComponent(appLog, "metrics")
	go func() {
		metricsLog.WithFields(logrus.Fields{
			"port": cfg.Metrics.Port,
			"path": cfg.Metrics.Path,
		}).Info("Metrics server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			metricsLog.WithError(err).Error("Metrics server stopped")
		}
	}()
}
