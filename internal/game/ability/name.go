// Package ability models ability scores with stacking, descriptor-keyed
// modifiers and the derived ability bonus.
package ability

import (
	"fmt"
	"strings"
)

// Name identifies one of the six ability scores.
type Name string

const (
	Strength     Name = "Strength"
	Dexterity    Name = "Dexterity"
	Constitution Name = "Constitution"
	Intelligence Name = "Intelligence"
	Wisdom       Name = "Wisdom"
	Charisma     Name = "Charisma"
)

var names = []Name{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}

// Names returns the six ability names in canonical sheet order.
func Names() []Name {
	out := make([]Name, len(names))
	copy(out, names)
	return out
}

// String returns the display label, e.g. "Strength".
func (n Name) String() string {
	return string(n)
}

// Prefix returns the 3-letter upper-case abbreviation, e.g. "STR".
func (n Name) Prefix() string {
	s := strings.ToUpper(string(n))
	if len(s) > 3 {
		return s[:3]
	}
	return s
}

// Valid reports whether n is one of the six ability names.
func (n Name) Valid() bool {
	for _, v := range names {
		if v == n {
			return true
		}
	}
	return false
}

// ParseName resolves a label ("strength") or prefix ("STR"), case-insensitively.
//
// Postcondition: Returns a valid Name or a non-nil error.
func ParseName(s string) (Name, error) {
	key := strings.TrimSpace(s)
	for _, n := range names {
		if strings.EqualFold(key, string(n)) || strings.EqualFold(key, n.Prefix()) {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown ability %q", s)
}

// Bonus returns the ability bonus for score: floor((score - 10) / 2).
// Odd scores below 10 round toward negative infinity, so Bonus(9) == -1.
func Bonus(score int) int {
	diff := score - 10
	if diff >= 0 {
		return diff / 2
	}
	return (diff - 1) / 2
}
