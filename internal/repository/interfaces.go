// Package repository provides data access for the Squadra domain entities.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/squadra/internal/models"
)

// PlayerRepository defines data access for players
type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetAll(ctx context.Context) ([]*models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MatchRepository defines data access for matches
type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	GetAll(ctx context.Context) ([]*models.Match, error)
	GetUpcoming(ctx context.Context, limit int) ([]*models.Match, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id uuid.UUID) error
	// UpsertFixture inserts a scheduled match or updates kickoff/venue of an
	// existing one matched by opponent and calendar day. Used by the
	// fixtures feed import.
	UpsertFixture(ctx context.Context, match *models.Match) (created bool, err error)
}

// EventRepository defines data access for match events
type EventRepository interface {
	Create(ctx context.Context, event *models.MatchEvent) error
	GetByMatch(ctx context.Context, matchID uuid.UUID) ([]*models.MatchEvent, error)
	GetAll(ctx context.Context) ([]*models.MatchEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FormationRecordRepository defines data access for per-match call-up records
type FormationRecordRepository interface {
	Upsert(ctx context.Context, record *models.FormationRecord) error
	GetByMatch(ctx context.Context, matchID uuid.UUID) ([]*models.FormationRecord, error)
	GetAll(ctx context.Context) ([]*models.FormationRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FeeRepository defines data access for membership fee payments
type FeeRepository interface {
	Create(ctx context.Context, payment *models.FeePayment) error
	GetByPlayer(ctx context.Context, playerID uuid.UUID, season string) ([]*models.FeePayment, error)
	GetBySeason(ctx context.Context, season string) ([]*models.FeePayment, error)
}
