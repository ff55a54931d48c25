package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yourusername/squadra/internal/database"
	"github.com/yourusername/squadra/internal/models"
)

const errScanEvent = "failed to scan match event: %w"

const eventColumns = `
	id, match_id, player_id, second_player_id, event_type, minute, half,
	value, note, created_at
`

// PostgresEventRepository implements EventRepository for PostgreSQL
type PostgresEventRepository struct {
	db *database.DB
}

// NewPostgresEventRepository creates a new match event repository
func NewPostgresEventRepository(db *database.DB) EventRepository {
	return &PostgresEventRepository{db: db}
}

// Create inserts a new match event
func (r *PostgresEventRepository) Create(ctx context.Context, event *models.MatchEvent) error {
	query := `
		INSERT INTO match_events (id, match_id, player_id, second_player_id,
			event_type, minute, half, value, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		event.ID, event.MatchID, event.PlayerID, event.SecondPlayerID,
		event.Type, event.Minute, event.Half, event.Value, event.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to create match event: %w", err)
	}

	return nil
}

// GetByMatch retrieves all events of one match in chronological order
func (r *PostgresEventRepository) GetByMatch(ctx context.Context, matchID uuid.UUID) ([]*models.MatchEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM match_events
		WHERE match_id = $1
		ORDER BY half ASC, minute ASC
	`
	return r.queryEvents(ctx, query, matchID)
}

// GetAll retrieves every recorded event
func (r *PostgresEventRepository) GetAll(ctx context.Context) ([]*models.MatchEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM match_events ORDER BY created_at ASC`
	return r.queryEvents(ctx, query)
}

// Delete deletes a match event
func (r *PostgresEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	commandTag, err := r.db.GetPool().Exec(ctx, "DELETE FROM match_events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete match event: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *PostgresEventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*models.MatchEvent, error) {
	rows, err := r.db.GetPool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query match events: %w", err)
	}
	defer rows.Close()

	var events []*models.MatchEvent
	for rows.Next() {
		event := &models.MatchEvent{}
		err := rows.Scan(
			&event.ID, &event.MatchID, &event.PlayerID, &event.SecondPlayerID,
			&event.Type, &event.Minute, &event.Half, &event.Value, &event.Note,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanEvent, err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
