// Package formation implements the tactical position resolver: it maps
// roster players onto the slot layout of a chosen formation, honoring
// explicit per-player overrides, the goalkeeper pin, and declared role
// specializations.
package formation

import (
	"strings"

	"github.com/yourusername/squadra/internal/models"
)

// definitions is the static table of supported formations. Each layout is
// an ordered starting-eleven slot sequence. Changing the supported
// vocabulary is a code change, not a data migration.
var definitions = map[string][]models.SlotCode{
	"4-4-2": {
		models.SlotPortiere,
		models.SlotTerzinoDestro, models.SlotDifensoreCentrale, models.SlotDifensoreCentrale, models.SlotTerzinoSinistro,
		models.SlotEsternoDestro, models.SlotCentrocampista, models.SlotCentrocampista, models.SlotEsternoSinistro,
		models.SlotAttaccante, models.SlotAttaccante,
	},
	"4-3-3": {
		models.SlotPortiere,
		models.SlotTerzinoDestro, models.SlotDifensoreCentrale, models.SlotDifensoreCentrale, models.SlotTerzinoSinistro,
		models.SlotCentrocampista, models.SlotCentrocampista, models.SlotCentrocampista,
		models.SlotAlaDestra, models.SlotAttaccante, models.SlotAlaSinistra,
	},
	"3-5-2": {
		models.SlotPortiere,
		models.SlotDifensoreCentrale, models.SlotDifensoreCentrale, models.SlotDifensoreCentrale,
		models.SlotEsternoDestro, models.SlotCentrocampista, models.SlotCentrocampista, models.SlotCentrocampista, models.SlotEsternoSinistro,
		models.SlotAttaccante, models.SlotAttaccante,
	},
	"4-2-3-1": {
		models.SlotPortiere,
		models.SlotTerzinoDestro, models.SlotDifensoreCentrale, models.SlotDifensoreCentrale, models.SlotTerzinoSinistro,
		models.SlotCentrocampista, models.SlotCentrocampista,
		models.SlotAlaDestra, models.SlotTrequartista, models.SlotAlaSinistra,
		models.SlotAttaccante,
	},
	"3-4-3": {
		models.SlotPortiere,
		models.SlotDifensoreCentrale, models.SlotDifensoreCentrale, models.SlotDifensoreCentrale,
		models.SlotEsternoDestro, models.SlotCentrocampista, models.SlotCentrocampista, models.SlotEsternoSinistro,
		models.SlotAlaDestra, models.SlotAttaccante, models.SlotAlaSinistra,
	},
}

// roleSlots maps canonical role and specialization names to their
// acceptable slots, most preferred first. Keys are lowercase; use
// slotsForRole for lookups.
var roleSlots = map[string][]models.SlotCode{
	"portiere":                {models.SlotPortiere},
	"difensore centrale":      {models.SlotDifensoreCentrale},
	"terzino destro":          {models.SlotTerzinoDestro, models.SlotEsternoDestro},
	"terzino sinistro":        {models.SlotTerzinoSinistro, models.SlotEsternoSinistro},
	"esterno destro":          {models.SlotEsternoDestro, models.SlotAlaDestra},
	"esterno sinistro":        {models.SlotEsternoSinistro, models.SlotAlaSinistra},
	"centrocampista centrale": {models.SlotCentrocampista},
	"mediano":                 {models.SlotCentrocampista},
	"trequartista":            {models.SlotTrequartista, models.SlotCentrocampista},
	"ala destra":              {models.SlotAlaDestra, models.SlotEsternoDestro},
	"ala sinistra":            {models.SlotAlaSinistra, models.SlotEsternoSinistro},
	"attaccante":              {models.SlotAttaccante},
	"punta centrale":          {models.SlotAttaccante},
	"seconda punta":           {models.SlotAttaccante, models.SlotTrequartista},
}

// Layout returns the ordered slot sequence for a formation. Unknown
// formation identifiers yield a nil layout.
func Layout(formationID string) ([]models.SlotCode, bool) {
	layout, ok := definitions[formationID]
	return layout, ok
}

// IDs returns the identifiers of all supported formations.
func IDs() []string {
	ids := make([]string, 0, len(definitions))
	for id := range definitions {
		ids = append(ids, id)
	}
	return ids
}

// IsKnown reports whether a formation identifier is supported.
func IsKnown(formationID string) bool {
	_, ok := definitions[formationID]
	return ok
}

// slotsForRole returns the acceptable slots for a role name, most
// preferred first.
func slotsForRole(role string) []models.SlotCode {
	return roleSlots[strings.ToLower(strings.TrimSpace(role))]
}

// contains reports whether the layout includes the slot code.
func contains(layout []models.SlotCode, slot models.SlotCode) bool {
	for _, s := range layout {
		if s == slot {
			return true
		}
	}
	return false
}
