package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeePayment represents a membership fee installment paid by a player's
// family for a season
type FeePayment struct {
	ID       uuid.UUID       `db:"id" json:"id" validate:"required,uuid4"`
	PlayerID uuid.UUID       `db:"player_id" json:"player_id" validate:"required,uuid4"`
	Season   string          `db:"season" json:"season" validate:"required"`
	Amount   decimal.Decimal `db:"amount" json:"amount"`
	PaidAt   time.Time       `db:"paid_at" json:"paid_at" validate:"required"`
	Method   string          `db:"method" json:"method"`
	Note     string          `db:"note" json:"note,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

// FeeBalance summarizes the fee position of one player for a season
type FeeBalance struct {
	PlayerID    uuid.UUID       `json:"player_id"`
	Season      string          `json:"season"`
	Due         decimal.Decimal `json:"due"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
}
