package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yourusername/squadra/internal/database"
	"github.com/yourusername/squadra/internal/models"
)

const errScanRecord = "failed to scan call-up record: %w"

const recordColumns = `
	id, match_id, player_id, status, slot, minutes_played, minute_entered,
	created_at, updated_at
`

// PostgresFormationRecordRepository implements FormationRecordRepository
// for PostgreSQL
type PostgresFormationRecordRepository struct {
	db *database.DB
}

// NewPostgresFormationRecordRepository creates a new call-up record repository
func NewPostgresFormationRecordRepository(db *database.DB) FormationRecordRepository {
	return &PostgresFormationRecordRepository{db: db}
}

// Upsert inserts or replaces a player's call-up record for a match.
// One record per player per match.
func (r *PostgresFormationRecordRepository) Upsert(ctx context.Context, record *models.FormationRecord) error {
	query := `
		INSERT INTO formation_records (id, match_id, player_id, status, slot,
			minutes_played, minute_entered)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (match_id, player_id) DO UPDATE SET
			status = EXCLUDED.status,
			slot = EXCLUDED.slot,
			minutes_played = EXCLUDED.minutes_played,
			minute_entered = EXCLUDED.minute_entered,
			updated_at = NOW()
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		record.ID, record.MatchID, record.PlayerID, record.Status, record.Slot,
		record.MinutesPlayed, record.MinuteEntered,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert call-up record: %w", err)
	}

	return nil
}

// GetByMatch retrieves all call-up records of one match
func (r *PostgresFormationRecordRepository) GetByMatch(ctx context.Context, matchID uuid.UUID) ([]*models.FormationRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM formation_records WHERE match_id = $1`
	return r.queryRecords(ctx, query, matchID)
}

// GetAll retrieves every call-up record
func (r *PostgresFormationRecordRepository) GetAll(ctx context.Context) ([]*models.FormationRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM formation_records ORDER BY created_at ASC`
	return r.queryRecords(ctx, query)
}

// Delete deletes a call-up record
func (r *PostgresFormationRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	commandTag, err := r.db.GetPool().Exec(ctx, "DELETE FROM formation_records WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete call-up record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *PostgresFormationRecordRepository) queryRecords(ctx context.Context, query string, args ...interface{}) ([]*models.FormationRecord, error) {
	rows, err := r.db.GetPool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query call-up records: %w", err)
	}
	defer rows.Close()

	var records []*models.FormationRecord
	for rows.Next() {
		record := &models.FormationRecord{}
		err := rows.Scan(
			&record.ID, &record.MatchID, &record.PlayerID, &record.Status,
			&record.Slot, &record.MinutesPlayed, &record.MinuteEntered,
			&record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanRecord, err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
