package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yourusername/squadra/internal/database"
	"github.com/yourusername/squadra/internal/models"
)

const feeColumns = `id, player_id, season, amount, paid_at, method, note, created_at`

// PostgresFeeRepository implements FeeRepository for PostgreSQL
type PostgresFeeRepository struct {
	db *database.DB
}

// NewPostgresFeeRepository creates a new fee payment repository
func NewPostgresFeeRepository(db *database.DB) FeeRepository {
	return &PostgresFeeRepository{db: db}
}

// Create inserts a new fee payment
func (r *PostgresFeeRepository) Create(ctx context.Context, payment *models.FeePayment) error {
	query := `
		INSERT INTO fee_payments (id, player_id, season, amount, paid_at, method, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		payment.ID, payment.PlayerID, payment.Season, payment.Amount,
		payment.PaidAt, payment.Method, payment.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to create fee payment: %w", err)
	}

	return nil
}

// GetByPlayer retrieves a player's fee payments for a season
func (r *PostgresFeeRepository) GetByPlayer(ctx context.Context, playerID uuid.UUID, season string) ([]*models.FeePayment, error) {
	query := `
		SELECT ` + feeColumns + `
		FROM fee_payments
		WHERE player_id = $1 AND season = $2
		ORDER BY paid_at ASC
	`
	return r.queryPayments(ctx, query, playerID, season)
}

// GetBySeason retrieves all fee payments of a season
func (r *PostgresFeeRepository) GetBySeason(ctx context.Context, season string) ([]*models.FeePayment, error) {
	query := `
		SELECT ` + feeColumns + `
		FROM fee_payments
		WHERE season = $1
		ORDER BY paid_at ASC
	`
	return r.queryPayments(ctx, query, season)
}

func (r *PostgresFeeRepository) queryPayments(ctx context.Context, query string, args ...interface{}) ([]*models.FeePayment, error) {
	rows, err := r.db.GetPool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fee payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.FeePayment
	for rows.Next() {
		payment := &models.FeePayment{}
		err := rows.Scan(
			&payment.ID, &payment.PlayerID, &payment.Season, &payment.Amount,
			&payment.PaidAt, &payment.Method, &payment.Note, &payment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fee payment: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}
