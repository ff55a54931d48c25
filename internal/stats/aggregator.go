// Package stats computes derived player and match statistics from raw
// event, call-up, and result records. All computation is pure and runs on
// an already-loaded snapshot; nothing here touches storage.
package stats

import (
	"github.com/google/uuid"

	"github.com/yourusername/squadra/internal/models"
)

// ComputeStats derives career totals for every player in the snapshot.
// Missing or partial data degrades to zero or nil per metric; inputs are
// never mutated and no error paths exist.
func ComputeStats(
	players []*models.Player,
	events []*models.MatchEvent,
	records []*models.FormationRecord,
	matches []*models.Match,
) map[uuid.UUID]*models.PlayerStats {
	matchByID := make(map[uuid.UUID]*models.Match, len(matches))
	for _, m := range matches {
		matchByID[m.ID] = m
	}

	hasEvents := make(map[uuid.UUID]bool, len(matches))
	eventsByPlayer := make(map[uuid.UUID][]*models.MatchEvent)
	for _, e := range events {
		hasEvents[e.MatchID] = true
		if e.PlayerID != nil {
			eventsByPlayer[*e.PlayerID] = append(eventsByPlayer[*e.PlayerID], e)
		}
	}

	recordsByPlayer := make(map[uuid.UUID][]*models.FormationRecord)
	for _, r := range records {
		recordsByPlayer[r.PlayerID] = append(recordsByPlayer[r.PlayerID], r)
	}

	result := make(map[uuid.UUID]*models.PlayerStats, len(players))
	for _, p := range players {
		result[p.ID] = computePlayerStats(p, eventsByPlayer[p.ID], recordsByPlayer[p.ID], matchByID, hasEvents)
	}
	return result
}

// registered reports whether a match counts as actually played. The status
// field is authoritative; legacy rows without one fall back to event
// presence.
func registered(m *models.Match, hasEvents map[uuid.UUID]bool) bool {
	if m == nil {
		return false
	}
	return m.Status == models.MatchStatusCompleted || hasEvents[m.ID]
}

func computePlayerStats(
	p *models.Player,
	events []*models.MatchEvent,
	records []*models.FormationRecord,
	matchByID map[uuid.UUID]*models.Match,
	hasEvents map[uuid.UUID]bool,
) *models.PlayerStats {
	s := &models.PlayerStats{PlayerID: p.ID}

	convoked := make(map[uuid.UUID]bool)
	started := make(map[uuid.UUID]bool)
	subbedIn := make(map[uuid.UUID]bool)

	keeper := p.IsGoalkeeper()

	for _, r := range records {
		s.MinutesPlayed += r.MinutesPlayed
		convoked[r.MatchID] = true

		switch r.Status {
		case models.StatusStarter:
			started[r.MatchID] = true
		case models.StatusBench:
			if r.EnteredPlay() {
				subbedIn[r.MatchID] = true
			}
		case models.StatusUnavailable:
			// still a call-up record, already counted above
		}

		// The whole match's conceded goals go to any goalkeeper who played
		// minutes in it; no partial attribution for mid-match keeper swaps.
		if keeper && r.MinutesPlayed > 0 {
			m := matchByID[r.MatchID]
			if registered(m, hasEvents) && m.OpponentScore != nil {
				s.GoalsConceded += *m.OpponentScore
			}
		}
	}

	s.Convocations = len(convoked)
	s.Starts = len(started)
	s.SubAppearances = len(subbedIn)

	var ratingSum float64
	var ratingCount int
	for _, e := range events {
		switch e.Type {
		case models.EventGoal:
			s.Goals++
		case models.EventAssist:
			s.Assists++
		case models.EventMissedGoal:
			s.MissedGoals++
		case models.EventYellowCard:
			s.YellowCards++
		case models.EventRedCard:
			s.RedCards++
		case models.EventPenalty:
			s.Penalties++
		case models.EventInjury:
			s.Injuries++
		case models.EventRating:
			if e.Value != nil {
				ratingSum += *e.Value
				ratingCount++
			}
		case models.EventSubstitution, models.EventCustom:
			// minutes live on call-up records, custom events carry no metric
		}
	}

	// In-match card events and the club's season-level disciplinary
	// counters track different things; the displayed total is additive.
	s.YellowCards += p.YellowCardsSeason
	s.RedCards += p.RedCardsSeason

	if ratingCount > 0 {
		avg := ratingSum / float64(ratingCount)
		s.AverageRating = &avg
	}

	// Win/draw/loss only over registered, decided matches the player was
	// called up for.
	for matchID := range convoked {
		m := matchByID[matchID]
		if !registered(m, hasEvents) {
			continue
		}
		outcome, decided := m.Outcome()
		if !decided {
			continue
		}
		switch outcome {
		case models.OutcomeWin:
			s.Wins++
		case models.OutcomeDraw:
			s.Draws++
		case models.OutcomeLoss:
			s.Losses++
		}
	}

	return s
}
