package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/squadra/internal/models"
	"github.com/yourusername/squadra/internal/repository"
	"github.com/yourusername/squadra/internal/stats"
)

// MatchService manages matches, their events, and call-up records
type MatchService struct {
	matches repository.MatchRepository
	events  repository.EventRepository
	records repository.FormationRecordRepository
	logger  *logrus.Logger
}

// NewMatchService creates a new match service
func NewMatchService(
	matches repository.MatchRepository,
	events repository.EventRepository,
	records repository.FormationRecordRepository,
	logger *logrus.Logger,
) *MatchService {
	return &MatchService{
		matches: matches,
		events:  events,
		records: records,
		logger:  logger,
	}
}

// ListMatches returns all matches ordered by kickoff
func (s *MatchService) ListMatches(ctx context.Context) ([]*models.Match, error) {
	return s.matches.GetAll(ctx)
}

// GetMatch returns one match by id
func (s *MatchService) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	return s.matches.GetByID(ctx, id)
}

// CreateMatch persists a new match
func (s *MatchService) CreateMatch(ctx context.Context, match *models.Match) error {
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	if match.Status == "" {
		match.Status = models.MatchStatusScheduled
	}
	return s.matches.Create(ctx, match)
}

// UpdateMatch persists changes to an existing match
func (s *MatchService) UpdateMatch(ctx context.Context, match *models.Match) error {
	return s.matches.Update(ctx, match)
}

// DeleteMatch removes a match
func (s *MatchService) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	return s.matches.Delete(ctx, id)
}

// RecordEvent persists a match event after verifying the match exists
func (s *MatchService) RecordEvent(ctx context.Context, event *models.MatchEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if _, err := s.matches.GetByID(ctx, event.MatchID); err != nil {
		return fmt.Errorf("failed to verify match: %w", err)
	}

	if err := s.events.Create(ctx, event); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"match_id":   event.MatchID,
		"event_type": event.Type,
		"minute":     event.Minute,
	}).Info("Match event recorded")

	return nil
}

// ListEvents returns a match's events in chronological order
func (s *MatchService) ListEvents(ctx context.Context, matchID uuid.UUID) ([]*models.MatchEvent, error) {
	return s.events.GetByMatch(ctx, matchID)
}

// SetCallUp inserts or replaces a player's call-up record for a match
func (s *MatchService) SetCallUp(ctx context.Context, record *models.FormationRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if _, err := s.matches.GetByID(ctx, record.MatchID); err != nil {
		return fmt.Errorf("failed to verify match: %w", err)
	}
	return s.records.Upsert(ctx, record)
}

// ListCallUps returns a match's call-up records
func (s *MatchService) ListCallUps(ctx context.Context, matchID uuid.UUID) ([]*models.FormationRecord, error) {
	return s.records.GetByMatch(ctx, matchID)
}

// Summary computes the per-match rollup for the analysis view
func (s *MatchService) Summary(ctx context.Context, matchID uuid.UUID) (*stats.MatchSummary, error) {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	events, err := s.events.GetByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	records, err := s.records.GetByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load call-ups: %w", err)
	}

	return stats.Summarize(match, events, records), nil
}
