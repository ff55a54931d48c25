package models

import (
	"time"

	"github.com/google/uuid"
)

// LineupStatus is the closed set of call-up states for a player in a match
type LineupStatus string

const (
	StatusStarter     LineupStatus = "TITOLARE"
	StatusBench       LineupStatus = "PANCHINA"
	StatusUnavailable LineupStatus = "INDISPONIBILE"
)

// FormationRecord represents one player's persisted call-up entry for a
// match: lineup status, minutes actually played, and the minute they entered
// play when substituted in.
type FormationRecord struct {
	ID            uuid.UUID    `db:"id" json:"id" validate:"required,uuid4"`
	MatchID       uuid.UUID    `db:"match_id" json:"match_id" validate:"required,uuid4"`
	PlayerID      uuid.UUID    `db:"player_id" json:"player_id" validate:"required,uuid4"`
	Status        LineupStatus `db:"status" json:"status" validate:"required,oneof=TITOLARE PANCHINA INDISPONIBILE"`
	Slot          *SlotCode    `db:"slot" json:"slot,omitempty"`
	MinutesPlayed int          `db:"minutes_played" json:"minutes_played" validate:"gte=0"`
	MinuteEntered *int         `db:"minute_entered" json:"minute_entered,omitempty" validate:"omitempty,gte=0"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at" json:"updated_at"`
}

// EnteredPlay reports whether a bench player actually took the field.
// Sitting on the bench alone does not count as an appearance.
func (r *FormationRecord) EnteredPlay() bool {
	return r.MinutesPlayed > 0 || r.MinuteEntered != nil
}
