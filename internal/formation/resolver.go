package formation

import (
	"sort"

	"github.com/google/uuid"

	"github.com/yourusername/squadra/internal/models"
)

// Resolution priority, applied identically in single-player resolution and
// in the first pass of AssignAll:
//
//  1. wildcard override ("*" entry in formationPositions)
//  2. formation-specific override
//  3. goalkeeper pin (role text contains "portiere", POR in layout)
//  4. specialization-derived (weight descending, insertion order on ties)
//  5. primary-role-derived
//
// Explicit overrides always win, including over the goalkeeper pin.
// Missing or malformed data never raises an error: the player simply
// resolves to no slot.

// Assignment maps player ids to their assigned slot codes. Players with no
// resolvable slot are absent from the map.
type Assignment map[uuid.UUID]models.SlotCode

// Resolve computes the slot for a single player in the given formation.
// taken holds slot codes already claimed within the current batch run;
// forced placements (overrides, goalkeeper pin) ignore it, heuristic
// placements skip claimed slots. The second return value is false when no
// slot could be resolved.
func Resolve(p *models.Player, formationID string, taken map[models.SlotCode]bool) (models.SlotCode, bool) {
	layout, ok := definitions[formationID]
	if !ok {
		return "", false
	}
	if slot, ok := forcedSlot(p, formationID, layout); ok {
		return slot, true
	}
	return heuristicSlot(p, layout, taken)
}

// AssignAll maps every resolvable player of the roster to a slot of the
// given formation. Two passes: forced placements first (overrides and
// goalkeeper pin, claiming slots in roster order), then heuristic
// placements for everyone left. No slot code is ever assigned twice; a
// player whose forced slot was already claimed falls through to the
// heuristic pass. Unresolved players have no entry in the result.
func AssignAll(players []*models.Player, formationID string) Assignment {
	assigned := make(Assignment)
	layout, ok := definitions[formationID]
	if !ok {
		return assigned
	}

	taken := make(map[models.SlotCode]bool, len(layout))

	for _, p := range players {
		slot, ok := forcedSlot(p, formationID, layout)
		if !ok || taken[slot] {
			continue
		}
		assigned[p.ID] = slot
		taken[slot] = true
	}

	for _, p := range players {
		if _, done := assigned[p.ID]; done {
			continue
		}
		slot, ok := heuristicSlot(p, layout, taken)
		if !ok {
			continue
		}
		assigned[p.ID] = slot
		taken[slot] = true
	}

	return assigned
}

// forcedSlot applies the unconditional rules: wildcard override,
// formation-specific override, goalkeeper pin.
func forcedSlot(p *models.Player, formationID string, layout []models.SlotCode) (models.SlotCode, bool) {
	if slot, ok := p.FormationPositions[models.WildcardFormation]; ok {
		return slot, true
	}
	if slot, ok := p.FormationPositions[formationID]; ok {
		return slot, true
	}
	if p.IsGoalkeeper() && contains(layout, models.SlotPortiere) {
		return models.SlotPortiere, true
	}
	return "", false
}

// heuristicSlot applies the preference rules: specializations by descending
// weight, then the primary role. A candidate slot must appear in the layout
// and must not already be claimed.
func heuristicSlot(p *models.Player, layout []models.SlotCode, taken map[models.SlotCode]bool) (models.SlotCode, bool) {
	for _, rw := range specializationsByWeight(p.RoleSpecializations) {
		if slot, ok := firstOpenSlot(slotsForRole(rw.Role), layout, taken); ok {
			return slot, true
		}
	}
	if p.Role != "" {
		if slot, ok := firstOpenSlot(slotsForRole(p.Role), layout, taken); ok {
			return slot, true
		}
	}
	return "", false
}

// specializationsByWeight returns a copy sorted by descending weight.
// The stable sort keeps insertion order for equal weights, which makes
// resolution deterministic.
func specializationsByWeight(specs []models.RoleWeight) []models.RoleWeight {
	if len(specs) < 2 {
		return specs
	}
	sorted := make([]models.RoleWeight, len(specs))
	copy(sorted, specs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})
	return sorted
}

// firstOpenSlot returns the first acceptable slot that exists in the layout
// and has not been claimed.
func firstOpenSlot(acceptable []models.SlotCode, layout []models.SlotCode, taken map[models.SlotCode]bool) (models.SlotCode, bool) {
	for _, slot := range acceptable {
		if contains(layout, slot) && !taken[slot] {
			return slot, true
		}
	}
	return "", false
}
