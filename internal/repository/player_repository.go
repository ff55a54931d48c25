package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/squadra/internal/database"
	"github.com/yourusername/squadra/internal/models"
)

const errScanPlayer = "failed to scan player: %w"

const playerColumns = `
	id, first_name, last_name, number, role, role_specializations,
	formation_positions, yellow_cards_season, red_cards_season,
	created_at, updated_at
`

// PostgresPlayerRepository implements PlayerRepository for PostgreSQL
type PostgresPlayerRepository struct {
	db *database.DB
}

// NewPostgresPlayerRepository creates a new player repository
func NewPostgresPlayerRepository(db *database.DB) PlayerRepository {
	return &PostgresPlayerRepository{db: db}
}

// Create inserts a new player
func (r *PostgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	specs, positions, err := marshalPlayerJSON(player)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO players (id, first_name, last_name, number, role,
			role_specializations, formation_positions,
			yellow_cards_season, red_cards_season)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.GetPool().Exec(ctx, query,
		player.ID, player.FirstName, player.LastName, player.Number, player.Role,
		specs, positions, player.YellowCardsSeason, player.RedCardsSeason,
	)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}

	return nil
}

// GetByID retrieves a player by ID
func (r *PostgresPlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	player, err := scanPlayer(r.db.GetPool().QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

// GetAll retrieves the full roster ordered by last name
func (r *PostgresPlayerRepository) GetAll(ctx context.Context) ([]*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY last_name, first_name`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf(errScanPlayer, err)
		}
		players = append(players, player)
	}

	return players, rows.Err()
}

// Update updates an existing player
func (r *PostgresPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	specs, positions, err := marshalPlayerJSON(player)
	if err != nil {
		return err
	}

	query := `
		UPDATE players SET
			first_name = $2, last_name = $3, number = $4, role = $5,
			role_specializations = $6, formation_positions = $7,
			yellow_cards_season = $8, red_cards_season = $9, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := r.db.GetPool().Exec(ctx, query,
		player.ID, player.FirstName, player.LastName, player.Number, player.Role,
		specs, positions, player.YellowCardsSeason, player.RedCardsSeason,
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Delete deletes a player
func (r *PostgresPlayerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	commandTag, err := r.db.GetPool().Exec(ctx, "DELETE FROM players WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// marshalPlayerJSON encodes the jsonb columns; empty collections persist as
// NULL so the wildcard lookup stays cheap.
func marshalPlayerJSON(player *models.Player) ([]byte, []byte, error) {
	var specs, positions []byte
	var err error

	if len(player.RoleSpecializations) > 0 {
		specs, err = json.Marshal(player.RoleSpecializations)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal specializations: %w", err)
		}
	}
	if len(player.FormationPositions) > 0 {
		positions, err = json.Marshal(player.FormationPositions)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal formation positions: %w", err)
		}
	}

	return specs, positions, nil
}

// scanPlayer scans one player row, decoding the jsonb columns
func scanPlayer(row pgx.Row) (*models.Player, error) {
	player := &models.Player{}
	var specs, positions []byte

	err := row.Scan(
		&player.ID, &player.FirstName, &player.LastName, &player.Number, &player.Role,
		&specs, &positions, &player.YellowCardsSeason, &player.RedCardsSeason,
		&player.CreatedAt, &player.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &player.RoleSpecializations); err != nil {
			return nil, fmt.Errorf("failed to unmarshal specializations: %w", err)
		}
	}
	if len(positions) > 0 {
		if err := json.Unmarshal(positions, &player.FormationPositions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal formation positions: %w", err)
		}
	}

	return player, nil
}
