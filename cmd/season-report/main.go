// Package main provides the season-report CLI, which writes the season
// paperwork sheets as CSV files.
package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/squadra/internal/config"
	"github.com/yourusername/squadra/internal/database"
	"github.com/yourusername/squadra/internal/export"
	"github.com/yourusername/squadra/internal/logger"
	"github.com/yourusername/squadra/internal/models"
	"github.com/yourusername/squadra/internal/repository"
	"github.com/yourusername/squadra/internal/stats"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	outputDir  string
	matchID    string
	appLog     *logrus.Logger
	cfg        *config.Config
	db         *database.DB
	repos      *repository.Repositories
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", ".", "Directory to write CSV files into")

	callupCmd.Flags().StringVarP(&matchID, "match", "m", "", "Match id to write the call-up sheet for")
	callupCmd.MarkFlagRequired("match")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(attendanceCmd)
	rootCmd.AddCommand(callupCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "season-report",
	Short: "Write season paperwork sheets as CSV",
	Long:  `Computes derived season statistics from the database and writes the per-player stats sheet, the attendance planner, and per-match call-up sheets as CSV files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Write the per-player season stats sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		players, matches, events, records, err := loadSnapshot(ctx)
		if err != nil {
			return err
		}

		computed := stats.ComputeStats(players, events, records, matches)

		path := filepath.Join(outputDir, "season_stats.csv")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()

		if err := export.WriteSeasonStats(f, players, computed); err != nil {
			return fmt.Errorf("failed to write stats sheet: %w", err)
		}

		appLog.WithFields(logrus.Fields{"file": path, "players": len(players)}).Info("Season stats sheet written")
		return nil
	},
}

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Write the attendance planner grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		players, err := repos.Player.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load players: %w", err)
		}
		matches, err := repos.Match.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load matches: %w", err)
		}

		path := filepath.Join(outputDir, "attendance_planner.csv")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()

		if err := export.WriteAttendancePlanner(f, players, matches); err != nil {
			return fmt.Errorf("failed to write attendance planner: %w", err)
		}

		appLog.WithField("file", path).Info("Attendance planner written")
		return nil
	},
}

var callupCmd = &cobra.Command{
	Use:   "callup",
	Short: "Write the call-up sheet for one match",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(matchID)
		if err != nil {
			return fmt.Errorf("match id must be a UUID: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		match, err := repos.Match.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load match: %w", err)
		}
		players, err := repos.Player.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load players: %w", err)
		}
		records, err := repos.FormationRecord.GetByMatch(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load call-ups: %w", err)
		}

		path := filepath.Join(outputDir, fmt.Sprintf("callup_%s.csv", match.Kickoff.Format("2006-01-02")))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()

		if err := export.WriteCallUpSheet(f, match, players, records); err != nil {
			return fmt.Errorf("failed to write call-up sheet: %w", err)
		}

		appLog.WithFields(logrus.Fields{"file": path, "opponent": match.Opponent}).Info("Call-up sheet written")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("season-report %s (%s)\n", Version, GitCommit)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		stdlog.Fatalf("Error: %v", err)
	}
}

func setup() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLog = logger.NewLogger(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err = database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	repos, err = repository.NewRepositories(db)
	if err != nil {
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}

	return nil
}

func loadSnapshot(ctx context.Context) ([]*models.Player, []*models.Match, []*models.MatchEvent, []*models.FormationRecord, error) {
	players, err := repos.Player.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load players: %w", err)
	}
	matches, err := repos.Match.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load matches: %w", err)
	}
	events, err := repos.Event.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load events: %w", err)
	}
	records, err := repos.FormationRecord.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load call-ups: %w", err)
	}
	return players, matches, events, records, nil
}
