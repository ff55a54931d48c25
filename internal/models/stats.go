package models

import "github.com/google/uuid"

// PlayerStats holds the derived career totals for one player. It is
// computed on read from raw events, call-up records, and match results,
// and never stored.
type PlayerStats struct {
	PlayerID       uuid.UUID `json:"player_id"`
	MinutesPlayed  int       `json:"minutes_played"`
	Convocations   int       `json:"convocations"`
	Starts         int       `json:"starts"`
	SubAppearances int       `json:"sub_appearances"`
	Goals          int       `json:"goals"`
	Assists        int       `json:"assists"`
	MissedGoals    int       `json:"missed_goals"`
	YellowCards    int       `json:"yellow_cards"`
	RedCards       int       `json:"red_cards"`
	Penalties      int       `json:"penalties"`
	Injuries       int       `json:"injuries"`
	// AverageRating stays nil when no rating events exist for the player,
	// which is distinct from an average of zero.
	AverageRating *float64 `json:"average_rating,omitempty"`
	Wins          int      `json:"wins"`
	Draws         int      `json:"draws"`
	Losses        int      `json:"losses"`
	// GoalsConceded only accrues for goalkeepers.
	GoalsConceded int `json:"goals_conceded"`
}

// Appearances returns the number of matches the player actually took the
// field in (starts plus substitute appearances).
func (s *PlayerStats) Appearances() int {
	return s.Starts + s.SubAppearances
}
