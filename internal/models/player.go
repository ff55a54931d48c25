package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SlotCode identifies a tactical slot on the pitch (e.g. "POR", "TD", "DC").
type SlotCode string

// Tactical slot vocabulary. The formation definition table and the
// role-to-slot map only ever reference these codes.
const (
	SlotPortiere           SlotCode = "POR"
	SlotTerzinoDestro      SlotCode = "TD"
	SlotDifensoreCentrale  SlotCode = "DC"
	SlotTerzinoSinistro    SlotCode = "TS"
	SlotEsternoDestro      SlotCode = "ED"
	SlotCentrocampista     SlotCode = "CC"
	SlotEsternoSinistro    SlotCode = "ES"
	SlotAlaDestra          SlotCode = "AD"
	SlotAlaSinistra        SlotCode = "AS"
	SlotTrequartista       SlotCode = "TRQ"
	SlotAttaccante         SlotCode = "ATT"
)

// WildcardFormation is the formationPositions key meaning "this position
// applies regardless of the selected formation".
const WildcardFormation = "*"

// goalkeeperKeyword is matched case-insensitively against a player's role
// text to decide whether goalkeeper rules apply.
const goalkeeperKeyword = "portiere"

// RoleWeight is one entry of a player's role specializations. Entries are
// kept as an ordered slice rather than a map so that equal weights keep
// their original insertion order when sorted.
type RoleWeight struct {
	Role   string `db:"role" json:"role" validate:"required"`
	Weight int    `db:"weight" json:"weight" validate:"gte=0,lte=100"`
}

// Player represents a rostered player of the club
type Player struct {
	ID                  uuid.UUID           `db:"id" json:"id" validate:"required,uuid4"`
	FirstName           string              `db:"first_name" json:"first_name" validate:"required"`
	LastName            string              `db:"last_name" json:"last_name" validate:"required"`
	Number              *int                `db:"number" json:"number,omitempty" validate:"omitempty,gte=1,lte=99"`
	Role                string              `db:"role" json:"role,omitempty"`
	RoleSpecializations []RoleWeight        `db:"role_specializations" json:"role_specializations,omitempty"`
	FormationPositions  map[string]SlotCode `db:"formation_positions" json:"formation_positions,omitempty"`
	YellowCardsSeason   int                 `db:"yellow_cards_season" json:"yellow_cards_season" validate:"gte=0"`
	RedCardsSeason      int                 `db:"red_cards_season" json:"red_cards_season" validate:"gte=0"`
	CreatedAt           time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time           `db:"updated_at" json:"updated_at"`
}

// FullName returns the player's display name
func (p *Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// IsGoalkeeper reports whether the player's role text denotes a goalkeeper
func (p *Player) IsGoalkeeper() bool {
	return strings.Contains(strings.ToLower(p.Role), goalkeeperKeyword)
}

// PositionFor returns the player's explicit position override for the given
// formation, if one exists. The wildcard entry takes precedence over a
// formation-specific one.
func (p *Player) PositionFor(formationID string) (SlotCode, bool) {
	if slot, ok := p.FormationPositions[WildcardFormation]; ok {
		return slot, true
	}
	slot, ok := p.FormationPositions[formationID]
	return slot, ok
}

// ValidateSpecializations enforces the 100%-sum rule for specialization
// weights. The position resolver itself tolerates partial data; this check
// belongs at the write boundary (player create/update).
func (p *Player) ValidateSpecializations() error {
	if len(p.RoleSpecializations) == 0 {
		return nil
	}
	sum := 0
	for _, rw := range p.RoleSpecializations {
		sum += rw.Weight
	}
	if sum != 100 {
		return ErrInvalidSpecializations
	}
	return nil
}
