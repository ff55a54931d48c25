package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/squadra/internal/database"
	"github.com/yourusername/squadra/internal/models"
)

const errScanMatch = "failed to scan match: %w"

const matchColumns = `
	id, kickoff, opponent, home, venue, competition, formation_id,
	own_score, opponent_score, status, notes, created_at, updated_at
`

// PostgresMatchRepository implements MatchRepository for PostgreSQL
type PostgresMatchRepository struct {
	db *database.DB
}

// NewPostgresMatchRepository creates a new match repository
func NewPostgresMatchRepository(db *database.DB) MatchRepository {
	return &PostgresMatchRepository{db: db}
}

// Create inserts a new match
func (r *PostgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (id, kickoff, opponent, home, venue, competition,
			formation_id, own_score, opponent_score, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		match.ID, match.Kickoff, match.Opponent, match.Home, match.Venue,
		match.Competition, match.FormationID, match.OwnScore, match.OpponentScore,
		match.Status, match.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}

	return nil
}

// GetByID retrieves a match by ID
func (r *PostgresMatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	match, err := scanMatch(r.db.GetPool().QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// GetAll retrieves all matches ordered by kickoff
func (r *PostgresMatchRepository) GetAll(ctx context.Context) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches ORDER BY kickoff ASC`
	return r.queryMatches(ctx, query)
}

// GetUpcoming retrieves upcoming scheduled matches ordered by kickoff
func (r *PostgresMatchRepository) GetUpcoming(ctx context.Context, limit int) ([]*models.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE status = 'scheduled' AND kickoff > NOW()
		ORDER BY kickoff ASC
		LIMIT $1
	`
	return r.queryMatches(ctx, query, limit)
}

// GetByDateRange retrieves matches within a date range
func (r *PostgresMatchRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*models.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE kickoff >= $1 AND kickoff <= $2
		ORDER BY kickoff ASC
	`
	return r.queryMatches(ctx, query, start, end)
}

// Update updates an existing match
func (r *PostgresMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches SET
			kickoff = $2, opponent = $3, home = $4, venue = $5,
			competition = $6, formation_id = $7, own_score = $8,
			opponent_score = $9, status = $10, notes = $11, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := r.db.GetPool().Exec(ctx, query,
		match.ID, match.Kickoff, match.Opponent, match.Home, match.Venue,
		match.Competition, match.FormationID, match.OwnScore, match.OpponentScore,
		match.Status, match.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Delete deletes a match along with its events and call-up records. The
// three deletes run in one transaction so a failure cannot leave orphaned
// rows behind.
func (r *PostgresMatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM match_events WHERE match_id = $1", id); err != nil {
			return fmt.Errorf("failed to delete match events: %w", err)
		}

		if _, err := tx.Exec(ctx, "DELETE FROM formation_records WHERE match_id = $1", id); err != nil {
			return fmt.Errorf("failed to delete formation records: %w", err)
		}

		commandTag, err := tx.Exec(ctx, "DELETE FROM matches WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("failed to delete match: %w", err)
		}

		if commandTag.RowsAffected() == 0 {
			return models.ErrNotFound
		}

		return nil
	})
}

// UpsertFixture inserts a scheduled match, or refreshes kickoff and venue
// of an existing fixture against the same opponent on the same day.
// Matches that already progressed past 'scheduled' are left untouched.
func (r *PostgresMatchRepository) UpsertFixture(ctx context.Context, match *models.Match) (bool, error) {
	dayStart := time.Date(
		match.Kickoff.Year(), match.Kickoff.Month(), match.Kickoff.Day(),
		0, 0, 0, 0, match.Kickoff.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	query := `
		SELECT id, status FROM matches
		WHERE opponent = $1 AND kickoff >= $2 AND kickoff < $3
		LIMIT 1
	`

	var existingID uuid.UUID
	var status models.MatchStatus
	err := r.db.GetPool().QueryRow(ctx, query, match.Opponent, dayStart, dayEnd).Scan(&existingID, &status)
	if err == pgx.ErrNoRows {
		if match.ID == uuid.Nil {
			match.ID = uuid.New()
		}
		if err := r.Create(ctx, match); err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up fixture: %w", err)
	}

	if status != models.MatchStatusScheduled {
		return false, nil
	}

	updateQuery := `
		UPDATE matches SET kickoff = $2, venue = $3, home = $4,
			competition = $5, updated_at = NOW()
		WHERE id = $1
	`
	if _, err := r.db.GetPool().Exec(ctx, updateQuery,
		existingID, match.Kickoff, match.Venue, match.Home, match.Competition,
	); err != nil {
		return false, fmt.Errorf("failed to refresh fixture: %w", err)
	}

	match.ID = existingID
	return false, nil
}

func (r *PostgresMatchRepository) queryMatches(ctx context.Context, query string, args ...interface{}) ([]*models.Match, error) {
	rows, err := r.db.GetPool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []*models.Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf(errScanMatch, err)
		}
		matches = append(matches, match)
	}

	return matches, rows.Err()
}

func scanMatch(row pgx.Row) (*models.Match, error) {
	match := &models.Match{}
	err := row.Scan(
		&match.ID, &match.Kickoff, &match.Opponent, &match.Home, &match.Venue,
		&match.Competition, &match.FormationID, &match.OwnScore, &match.OpponentScore,
		&match.Status, &match.Notes, &match.CreatedAt, &match.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return match, nil
}
