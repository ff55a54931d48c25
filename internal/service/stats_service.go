package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/squadra/internal/metrics"
	"github.com/yourusername/squadra/internal/models"
	"github.com/yourusername/squadra/internal/repository"
	"github.com/yourusername/squadra/internal/stats"
)

const seasonStatsCacheKey = "season_stats"

// StatsService computes season statistics over the full event history.
// Results are cached with a TTL because every computation re-reads the
// whole dataset.
type StatsService struct {
	players repository.PlayerRepository
	matches repository.MatchRepository
	events  repository.EventRepository
	records repository.FormationRecordRepository
	cache   *cache.Cache
	logger  *logrus.Logger
}

// NewStatsService creates a new stats service with the given cache TTL
func NewStatsService(
	players repository.PlayerRepository,
	matches repository.MatchRepository,
	events repository.EventRepository,
	records repository.FormationRecordRepository,
	cacheTTL time.Duration,
	logger *logrus.Logger,
) *StatsService {
	return &StatsService{
		players: players,
		matches: matches,
		events:  events,
		records: records,
		cache:   cache.New(cacheTTL, cacheTTL*2),
		logger:  logger,
	}
}

// SeasonStats returns per-player stats for the whole roster
func (s *StatsService) SeasonStats(ctx context.Context) (map[uuid.UUID]*models.PlayerStats, error) {
	if cached, found := s.cache.Get(seasonStatsCacheKey); found {
		metrics.RecordStatsCacheHit()
		return cached.(map[uuid.UUID]*models.PlayerStats), nil
	}
	metrics.RecordStatsCacheMiss()

	computed, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetDefault(seasonStatsCacheKey, computed)
	return computed, nil
}

// PlayerStats returns one player's season stats. Players with no
// registered activity get a zero-valued stats row.
func (s *StatsService) PlayerStats(ctx context.Context, playerID uuid.UUID) (*models.PlayerStats, error) {
	if _, err := s.players.GetByID(ctx, playerID); err != nil {
		return nil, err
	}

	all, err := s.SeasonStats(ctx)
	if err != nil {
		return nil, err
	}

	if st, ok := all[playerID]; ok {
		return st, nil
	}
	return &models.PlayerStats{PlayerID: playerID}, nil
}

// Warm recomputes the season stats and refreshes the cache
func (s *StatsService) Warm(ctx context.Context) error {
	computed, err := s.compute(ctx)
	if err != nil {
		return err
	}
	s.cache.SetDefault(seasonStatsCacheKey, computed)
	s.logger.WithField("players", len(computed)).Debug("Stats cache warmed")
	return nil
}

// Invalidate drops cached stats so the next read recomputes
func (s *StatsService) Invalidate() {
	s.cache.Delete(seasonStatsCacheKey)
}

func (s *StatsService) compute(ctx context.Context) (map[uuid.UUID]*models.PlayerStats, error) {
	start := time.Now()

	players, err := s.players.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	matches, err := s.matches.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}
	events, err := s.events.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	records, err := s.records.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load call-ups: %w", err)
	}

	computed := stats.ComputeStats(players, events, records, matches)

	elapsed := time.Since(start)
	metrics.RecordStatsComputation(elapsed.Seconds())
	s.logger.WithFields(logrus.Fields{
		"players":  len(players),
		"matches":  len(matches),
		"events":   len(events),
		"duration": elapsed,
	}).Debug("Season stats computed")

	return computed, nil
}
