package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType is the closed set of recordable match event kinds
type EventType string

const (
	EventGoal         EventType = "goal"
	EventAssist       EventType = "assist"
	EventMissedGoal   EventType = "missed_goal"
	EventYellowCard   EventType = "yellow_card"
	EventRedCard      EventType = "red_card"
	EventPenalty      EventType = "penalty"
	EventSubstitution EventType = "substitution"
	EventInjury       EventType = "injury"
	EventRating       EventType = "rating"
	EventCustom       EventType = "custom"
)

// MatchEvent represents a single recorded event within a match.
// PlayerID is optional (team-level events have none); SecondPlayerID is the
// incoming player of a substitution.
type MatchEvent struct {
	ID             uuid.UUID  `db:"id" json:"id" validate:"required,uuid4"`
	MatchID        uuid.UUID  `db:"match_id" json:"match_id" validate:"required,uuid4"`
	PlayerID       *uuid.UUID `db:"player_id" json:"player_id,omitempty"`
	SecondPlayerID *uuid.UUID `db:"second_player_id" json:"second_player_id,omitempty"`
	Type           EventType  `db:"event_type" json:"event_type" validate:"required,oneof=goal assist missed_goal yellow_card red_card penalty substitution injury rating custom"`
	Minute         int        `db:"minute" json:"minute" validate:"gte=0"`
	Half           int        `db:"half" json:"half" validate:"oneof=1 2"`
	Value          *float64   `db:"value" json:"value,omitempty"`
	Note           string     `db:"note" json:"note,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// Involves reports whether the event references the given player, either as
// the primary subject or as the incoming player of a substitution.
func (e *MatchEvent) Involves(playerID uuid.UUID) bool {
	if e.PlayerID != nil && *e.PlayerID == playerID {
		return true
	}
	return e.SecondPlayerID != nil && *e.SecondPlayerID == playerID
}
