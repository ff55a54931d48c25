// Package export writes the season paperwork sheets as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/yourusername/squadra/internal/models"
)

// WriteSeasonStats writes one row per player with their derived season
// totals, ordered by last name.
func WriteSeasonStats(w io.Writer, players []*models.Player, stats map[uuid.UUID]*models.PlayerStats) error {
	sorted := make([]*models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].LastName != sorted[j].LastName {
			return sorted[i].LastName < sorted[j].LastName
		}
		return sorted[i].FirstName < sorted[j].FirstName
	})

	cw := csv.NewWriter(w)
	header := []string{
		"player", "role", "minutes", "convocations", "starts", "sub_appearances",
		"goals", "assists", "yellow_cards", "red_cards", "average_rating",
		"wins", "draws", "losses", "goals_conceded",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, p := range sorted {
		st := stats[p.ID]
		if st == nil {
			st = &models.PlayerStats{PlayerID: p.ID}
		}
		rating := ""
		if st.AverageRating != nil {
			rating = strconv.FormatFloat(*st.AverageRating, 'f', 2, 64)
		}
		row := []string{
			p.FullName(), p.Role,
			strconv.Itoa(st.MinutesPlayed),
			strconv.Itoa(st.Convocations),
			strconv.Itoa(st.Starts),
			strconv.Itoa(st.SubAppearances),
			strconv.Itoa(st.Goals),
			strconv.Itoa(st.Assists),
			strconv.Itoa(st.YellowCards),
			strconv.Itoa(st.RedCards),
			rating,
			strconv.Itoa(st.Wins),
			strconv.Itoa(st.Draws),
			strconv.Itoa(st.Losses),
			strconv.Itoa(st.GoalsConceded),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCallUpSheet writes the match call-up sheet: convocated players
// grouped by role, then the unavailable list. Row order inside a group
// follows shirt number.
func WriteCallUpSheet(w io.Writer, match *models.Match, players []*models.Player, records []*models.FormationRecord) error {
	byPlayer := make(map[uuid.UUID]*models.FormationRecord)
	for _, r := range records {
		if r.MatchID == match.ID {
			byPlayer[r.PlayerID] = r
		}
	}

	called := make([]*models.Player, 0, len(players))
	for _, p := range players {
		if _, ok := byPlayer[p.ID]; ok {
			called = append(called, p)
		}
	}
	sort.SliceStable(called, func(i, j int) bool {
		ri, rj := called[i].Role, called[j].Role
		if ri != rj {
			return ri < rj
		}
		return shirtNumber(called[i]) < shirtNumber(called[j])
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"opponent", "kickoff", "venue"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	venue := match.Venue
	if venue == "" && match.Home {
		venue = "casa"
	}
	if err := cw.Write([]string{match.Opponent, match.Kickoff.Format("2006-01-02 15:04"), venue}); err != nil {
		return fmt.Errorf("failed to write match row: %w", err)
	}

	if err := cw.Write([]string{"number", "player", "role", "status", "slot"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range called {
		rec := byPlayer[p.ID]
		number := ""
		if p.Number != nil {
			number = strconv.Itoa(*p.Number)
		}
		slot := ""
		if rec.Slot != nil {
			slot = string(*rec.Slot)
		}
		row := []string{number, p.FullName(), p.Role, string(rec.Status), slot}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteAttendancePlanner writes the planner grid: one row per player, one
// column per upcoming match, cells left blank for the coach to mark.
func WriteAttendancePlanner(w io.Writer, players []*models.Player, matches []*models.Match) error {
	upcoming := make([]*models.Match, 0, len(matches))
	for _, m := range matches {
		if m.IsUpcoming() {
			upcoming = append(upcoming, m)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Kickoff.Before(upcoming[j].Kickoff)
	})

	sorted := make([]*models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].FullName()) < strings.ToLower(sorted[j].FullName())
	})

	cw := csv.NewWriter(w)
	header := []string{"player"}
	for _, m := range upcoming {
		header = append(header, fmt.Sprintf("%s (%s)", m.Opponent, m.Kickoff.Format("02/01")))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	blank := make([]string, len(upcoming))
	for _, p := range sorted {
		row := append([]string{p.FullName()}, blank...)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func shirtNumber(p *models.Player) int {
	if p.Number == nil {
		return 1000
	}
	return *p.Number
}
