package stats

import (
	"github.com/google/uuid"

	"github.com/yourusername/squadra/internal/models"
)

// ScorerLine is one player's goal tally within a single match
type ScorerLine struct {
	PlayerID uuid.UUID `json:"player_id"`
	Goals    int       `json:"goals"`
}

// MatchSummary is the per-match rollup consumed by the match-analysis view
type MatchSummary struct {
	MatchID     uuid.UUID            `json:"match_id"`
	Registered  bool                 `json:"registered"`
	Outcome     *models.MatchOutcome `json:"outcome,omitempty"`
	Scorers     []ScorerLine         `json:"scorers,omitempty"`
	YellowCards int                  `json:"yellow_cards"`
	RedCards    int                  `json:"red_cards"`
	Injuries    int                  `json:"injuries"`
	Starters    int                  `json:"starters"`
	BenchUsed   int                  `json:"bench_used"`
	Unavailable int                  `json:"unavailable"`
}

// Summarize computes the rollup for one match from its events and call-up
// records. Events and records belonging to other matches are ignored, so
// callers may pass unfiltered season collections.
func Summarize(m *models.Match, events []*models.MatchEvent, records []*models.FormationRecord) *MatchSummary {
	sum := &MatchSummary{MatchID: m.ID}

	goalsByScorer := make(map[uuid.UUID]int)
	var scorerOrder []uuid.UUID

	for _, e := range events {
		if e.MatchID != m.ID {
			continue
		}
		sum.Registered = true
		switch e.Type {
		case models.EventGoal:
			if e.PlayerID != nil {
				if _, seen := goalsByScorer[*e.PlayerID]; !seen {
					scorerOrder = append(scorerOrder, *e.PlayerID)
				}
				goalsByScorer[*e.PlayerID]++
			}
		case models.EventYellowCard:
			sum.YellowCards++
		case models.EventRedCard:
			sum.RedCards++
		case models.EventInjury:
			sum.Injuries++
		}
	}

	for _, id := range scorerOrder {
		sum.Scorers = append(sum.Scorers, ScorerLine{PlayerID: id, Goals: goalsByScorer[id]})
	}

	for _, r := range records {
		if r.MatchID != m.ID {
			continue
		}
		switch r.Status {
		case models.StatusStarter:
			sum.Starters++
		case models.StatusBench:
			if r.EnteredPlay() {
				sum.BenchUsed++
			}
		case models.StatusUnavailable:
			sum.Unavailable++
		}
	}

	if m.Status == models.MatchStatusCompleted {
		sum.Registered = true
	}
	if outcome, decided := m.Outcome(); decided {
		sum.Outcome = &outcome
	}

	return sum
}
