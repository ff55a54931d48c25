// Package main provides the fixtures-import CLI, which pulls the season
// match calendar from the federation fixtures feed.
package main

import (
	"context"
	"fmt"
	stdlog "log"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/squadra/internal/config"
	"github.com/yourusername/squadra/internal/database"
	"github.com/yourusername/squadra/internal/datasource"
	"github.com/yourusername/squadra/internal/logger"
	"github.com/yourusername/squadra/internal/repository"
	"github.com/yourusername/squadra/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
}

var rootCmd = &cobra.Command{
	Use:   "fixtures-import",
	Short: "Import the season match calendar from the federation feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if !cfg.FixturesFeed.Enabled {
			return fmt.Errorf("fixtures feed is disabled in configuration")
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		appLog := logger.NewLogger(cfg.App.LogLevel)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		db, err := database.NewDB(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		repos, err := repository.NewRepositories(db)
		if err != nil {
			return fmt.Errorf("failed to initialize repositories: %w", err)
		}

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
		feedClient := datasource.NewFixturesFeedClient(cfg.FixturesFeed.URL, cfg.FixturesFeed.APIKey, httpClient)

		calendarSvc := service.NewCalendarService(feedClient, repos.Match, cfg.Club.Season, appLog)

		result, err := calendarSvc.ImportFixtures(ctx)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Printf("Imported %d fixtures: %d created, %d updated, %d skipped\n",
			result.Total, result.Created, result.Updated, result.Skipped)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fixtures-import %s (%s)\n", Version, GitCommit)
	},
}

func main() {
	rootCmd.AddCommand(versionCmd)
	if err := rootCmd.Execute(); err != nil {
		stdlog.Fatalf("Error: %v", err)
	}
}
