package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/squadra/internal/metrics"
	"github.com/yourusername/squadra/internal/models"
	"github.com/yourusername/squadra/internal/repository"
)

// FixturesSource fetches the season calendar from the federation feed
type FixturesSource interface {
	FetchFixtures(ctx context.Context, season string) ([]*models.Match, error)
}

// ImportResult reports the outcome of one fixtures import run
type ImportResult struct {
	Fetched time.Time `json:"fetched"`
	Total   int       `json:"total"`
	Created int       `json:"created"`
	Updated int       `json:"updated"`
	Skipped int       `json:"skipped"`
}

// CalendarService imports the federation fixtures calendar into the
// match table
type CalendarService struct {
	source  FixturesSource
	matches repository.MatchRepository
	season  string
	logger  *logrus.Logger
}

// NewCalendarService creates a new calendar import service
func NewCalendarService(
	source FixturesSource,
	matches repository.MatchRepository,
	season string,
	logger *logrus.Logger,
) *CalendarService {
	return &CalendarService{
		source:  source,
		matches: matches,
		season:  season,
		logger:  logger,
	}
}

// ImportFixtures fetches the current season calendar and upserts each
// fixture. Matches already past the scheduled state are never touched.
func (s *CalendarService) ImportFixtures(ctx context.Context) (*ImportResult, error) {
	start := time.Now()

	fixtures, err := s.source.FetchFixtures(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixtures: %w", err)
	}

	result := &ImportResult{Fetched: start, Total: len(fixtures)}
	for _, fixture := range fixtures {
		created, err := s.matches.UpsertFixture(ctx, fixture)
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"opponent": fixture.Opponent,
				"kickoff":  fixture.Kickoff,
				"error":    err,
			}).Warn("Failed to upsert fixture, skipping")
			result.Skipped++
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	elapsed := time.Since(start)
	metrics.RecordFixturesImport(result.Created+result.Updated, elapsed.Seconds())
	s.logger.WithFields(logrus.Fields{
		"total":    result.Total,
		"created":  result.Created,
		"updated":  result.Updated,
		"skipped":  result.Skipped,
		"duration": elapsed,
	}).Info("Fixtures import completed")

	return result, nil
}
