package formation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/squadra/internal/models"
)

func newPlayer(role string) *models.Player {
	return &models.Player{ID: uuid.New(), Role: role}
}

// TestAssignAllStartingPair covers the canonical keeper + right-back roster
func TestAssignAllStartingPair(t *testing.T) {
	keeper := newPlayer("Portiere")
	back := newPlayer("Terzino Destro")

	assigned := AssignAll([]*models.Player{keeper, back}, "4-4-2")

	require.Len(t, assigned, 2)
	assert.Equal(t, models.SlotPortiere, assigned[keeper.ID])
	assert.Equal(t, models.SlotTerzinoDestro, assigned[back.ID])
}

// TestAssignAllFallbackSlot verifies the second acceptable slot is used when
// the formation has no primary slot for the role: 3-5-2 has no TD, so a
// right back lands on ED.
func TestAssignAllFallbackSlot(t *testing.T) {
	keeper := newPlayer("Portiere")
	back := newPlayer("Terzino Destro")

	assigned := AssignAll([]*models.Player{keeper, back}, "3-5-2")

	require.Len(t, assigned, 2)
	assert.Equal(t, models.SlotPortiere, assigned[keeper.ID])
	assert.Equal(t, models.SlotEsternoDestro, assigned[back.ID])
}

func TestAssignAllUnknownFormation(t *testing.T) {
	roster := []*models.Player{newPlayer("Portiere"), newPlayer("Attaccante")}

	assigned := AssignAll(roster, "9-9-9")

	assert.Empty(t, assigned)
}

func TestWildcardOverridePrecedence(t *testing.T) {
	p := newPlayer("Attaccante")
	p.FormationPositions = map[string]models.SlotCode{
		models.WildcardFormation: models.SlotDifensoreCentrale,
		"4-4-2":                  models.SlotAttaccante,
	}

	for _, id := range IDs() {
		slot, ok := Resolve(p, id, nil)
		require.True(t, ok, "formation %s", id)
		assert.Equal(t, models.SlotDifensoreCentrale, slot, "formation %s", id)
	}
}

// Explicit overrides win even over the goalkeeper pin.
func TestOverrideBeatsGoalkeeperPin(t *testing.T) {
	p := newPlayer("Portiere")
	p.FormationPositions = map[string]models.SlotCode{"4-4-2": models.SlotDifensoreCentrale}

	slot, ok := Resolve(p, "4-4-2", nil)

	require.True(t, ok)
	assert.Equal(t, models.SlotDifensoreCentrale, slot)
}

func TestGoalkeeperPinIgnoresSpecializations(t *testing.T) {
	p := newPlayer("Portiere")
	p.RoleSpecializations = []models.RoleWeight{
		{Role: "Attaccante", Weight: 60},
		{Role: "Ala Destra", Weight: 40},
	}

	slot, ok := Resolve(p, "4-3-3", nil)

	require.True(t, ok)
	assert.Equal(t, models.SlotPortiere, slot)
}

func TestGoalkeeperPinCaseInsensitive(t *testing.T) {
	p := newPlayer("PORTIERE")

	slot, ok := Resolve(p, "4-4-2", nil)

	require.True(t, ok)
	assert.Equal(t, models.SlotPortiere, slot)
}

// TestSpecializationWeightOrdering: 70% right back beats 30% right winger
// when both slots are open.
func TestSpecializationWeightOrdering(t *testing.T) {
	p := newPlayer("")
	p.RoleSpecializations = []models.RoleWeight{
		{Role: "Ala Destra", Weight: 30},
		{Role: "Terzino Destro", Weight: 70},
	}

	slot, ok := Resolve(p, "4-4-2", nil)

	require.True(t, ok)
	assert.Equal(t, models.SlotTerzinoDestro, slot)
}

// Equal weights keep their insertion order.
func TestSpecializationTieBreakInsertionOrder(t *testing.T) {
	p := newPlayer("")
	p.RoleSpecializations = []models.RoleWeight{
		{Role: "Ala Destra", Weight: 50},
		{Role: "Terzino Destro", Weight: 50},
	}

	slot, ok := Resolve(p, "4-3-3", nil)

	require.True(t, ok)
	assert.Equal(t, models.SlotAlaDestra, slot)
}

func TestResolveSkipsClaimedSlots(t *testing.T) {
	p := newPlayer("Terzino Destro")
	taken := map[models.SlotCode]bool{models.SlotTerzinoDestro: true}

	slot, ok := Resolve(p, "4-4-2", taken)

	require.True(t, ok)
	assert.Equal(t, models.SlotEsternoDestro, slot)
}

func TestResolveNoMatch(t *testing.T) {
	tests := []struct {
		name   string
		player *models.Player
	}{
		{"empty player", newPlayer("")},
		{"unknown role", newPlayer("Libero Volante")},
		{"role with no open slot", func() *models.Player {
			return newPlayer("Trequartista") // 4-4-2 has no TRQ and CC is claimed below
		}()},
	}

	taken := map[models.SlotCode]bool{models.SlotCentrocampista: true}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Resolve(tt.player, "4-4-2", taken)
			assert.False(t, ok)
		})
	}
}

// TestAssignAllNoDoubleBooking builds a roster far larger than the slot
// vocabulary and checks every slot code is claimed at most once.
func TestAssignAllNoDoubleBooking(t *testing.T) {
	roles := []string{
		"Portiere", "Terzino Destro", "Terzino Sinistro", "Difensore Centrale",
		"Difensore Centrale", "Esterno Destro", "Esterno Sinistro",
		"Centrocampista Centrale", "Centrocampista Centrale", "Attaccante",
		"Attaccante", "Ala Destra", "Ala Sinistra", "Trequartista", "Mediano",
	}
	var roster []*models.Player
	for _, r := range roles {
		roster = append(roster, newPlayer(r))
	}

	for _, id := range IDs() {
		assigned := AssignAll(roster, id)

		seen := make(map[models.SlotCode]uuid.UUID)
		for playerID, slot := range assigned {
			if prev, dup := seen[slot]; dup {
				t.Fatalf("formation %s: slot %s assigned to both %s and %s", id, slot, prev, playerID)
			}
			seen[slot] = playerID
		}
	}
}

// A forced slot already claimed by an earlier player leaves the later
// player to the heuristic pass instead of double-booking.
func TestAssignAllForcedCollisionFallsThrough(t *testing.T) {
	first := newPlayer("")
	first.FormationPositions = map[string]models.SlotCode{models.WildcardFormation: models.SlotTerzinoDestro}
	second := newPlayer("Terzino Destro")
	second.FormationPositions = map[string]models.SlotCode{"4-4-2": models.SlotTerzinoDestro}

	assigned := AssignAll([]*models.Player{first, second}, "4-4-2")

	require.Len(t, assigned, 2)
	assert.Equal(t, models.SlotTerzinoDestro, assigned[first.ID])
	assert.Equal(t, models.SlotEsternoDestro, assigned[second.ID])
}

func TestAssignAllUnresolvedPlayersAbsent(t *testing.T) {
	keeper := newPlayer("Portiere")
	spare := newPlayer("Portiere") // POR already claimed, nothing else matches

	assigned := AssignAll([]*models.Player{keeper, spare}, "4-4-2")

	require.Len(t, assigned, 1)
	assert.Equal(t, models.SlotPortiere, assigned[keeper.ID])
	_, ok := assigned[spare.ID]
	assert.False(t, ok)
}

func TestAssignAllDeterministic(t *testing.T) {
	roster := []*models.Player{
		newPlayer("Portiere"),
		newPlayer("Difensore Centrale"),
		newPlayer("Terzino Destro"),
		newPlayer("Centrocampista Centrale"),
		newPlayer("Attaccante"),
	}
	roster[2].RoleSpecializations = []models.RoleWeight{
		{Role: "Esterno Destro", Weight: 50},
		{Role: "Terzino Destro", Weight: 50},
	}

	first := AssignAll(roster, "4-4-2")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, AssignAll(roster, "4-4-2"))
	}
}

func TestLayoutsAreStartingElevens(t *testing.T) {
	for _, id := range IDs() {
		layout, ok := Layout(id)
		require.True(t, ok)
		assert.Len(t, layout, 11, "formation %s", id)

		keepers := 0
		for _, slot := range layout {
			if slot == models.SlotPortiere {
				keepers++
			}
		}
		assert.Equal(t, 1, keepers, "formation %s must field exactly one goalkeeper", id)
	}
}

func TestLayoutUnknown(t *testing.T) {
	layout, ok := Layout("2-2-6")
	assert.False(t, ok)
	assert.Nil(t, layout)
}
