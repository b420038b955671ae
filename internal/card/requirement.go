package card

import (
	"strconv"
	"strings"
)

// Requirement is the attribute constraint a played card imposes on the next
// play: any combination of color, number and action. It is also how a played
// wildcard is represented after its color is declared — a color with nothing
// else. A Requirement with neither color nor number is wild and matches
// everything.
type Requirement struct {
	HasColor  bool
	Color     Color
	HasNumber bool
	Number    int
	HasAction bool
	Action    Action
}

// ColorRequirement is the constraint a wildcard imposes once its color is
// declared.
func ColorRequirement(c Color) Requirement {
	return Requirement{HasColor: true, Color: c}
}

// IsWild reports whether the requirement constrains neither color nor number.
func (r Requirement) IsWild() bool {
	return !r.HasColor && !r.HasNumber
}

// Matches reports whether two requirements are mutually satisfiable: either
// is wild, or they share a color, a number, or an action. Symmetric and
// reflexive.
func (r Requirement) Matches(o Requirement) bool {
	return r.IsWild() || o.IsWild() ||
		(r.HasColor && o.HasColor && r.Color == o.Color) ||
		(r.HasNumber && o.HasNumber && r.Number == o.Number) ||
		(r.HasAction && o.HasAction && r.Action == o.Action)
}

func (r Requirement) String() string {
	var parts []string
	if r.HasColor {
		parts = append(parts, r.Color.String())
	}
	if r.HasNumber {
		parts = append(parts, strconv.Itoa(r.Number))
	}
	if r.HasAction {
		parts = append(parts, r.Action.String())
	}
	if len(parts) == 0 {
		return "any"
	}
	return strings.Join(parts, " ")
}
