package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
	MatchStatusAbandoned  MatchStatus = "abandoned"
)

// MatchOutcome represents the result of a decided match from the club's
// point of view
type MatchOutcome string

const (
	OutcomeWin  MatchOutcome = "win"
	OutcomeDraw MatchOutcome = "draw"
	OutcomeLoss MatchOutcome = "loss"
)

// Match represents a fixture against an opponent club
type Match struct {
	ID            uuid.UUID   `db:"id" json:"id" validate:"required,uuid4"`
	Kickoff       time.Time   `db:"kickoff" json:"kickoff" validate:"required"`
	Opponent      string      `db:"opponent" json:"opponent" validate:"required"`
	Home          bool        `db:"home" json:"home"`
	Venue         string      `db:"venue" json:"venue"`
	Competition   string      `db:"competition" json:"competition"`
	FormationID   string      `db:"formation_id" json:"formation_id"`
	OwnScore      *int        `db:"own_score" json:"own_score,omitempty" validate:"omitempty,gte=0"`
	OpponentScore *int        `db:"opponent_score" json:"opponent_score,omitempty" validate:"omitempty,gte=0"`
	Status        MatchStatus `db:"status" json:"status" validate:"oneof=scheduled in_progress completed abandoned"`
	Notes         string      `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updated_at"`
}

// IsDecided reports whether both scores are recorded
func (m *Match) IsDecided() bool {
	return m.OwnScore != nil && m.OpponentScore != nil
}

// Outcome returns the match outcome from the club's point of view.
// The second return value is false while the match is undecided.
func (m *Match) Outcome() (MatchOutcome, bool) {
	if !m.IsDecided() {
		return "", false
	}
	switch {
	case *m.OwnScore > *m.OpponentScore:
		return OutcomeWin, true
	case *m.OwnScore < *m.OpponentScore:
		return OutcomeLoss, true
	default:
		return OutcomeDraw, true
	}
}

// IsUpcoming checks if the match hasn't been played yet
func (m *Match) IsUpcoming() bool {
	return m.Status == MatchStatusScheduled
}
