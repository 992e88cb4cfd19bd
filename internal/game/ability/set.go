package ability

import (
	"fmt"
	"strings"
)

// DefaultBase is the base value assigned to abilities not given to NewSet.
const DefaultBase = 10

// Set holds one Score per ability.
// It is not safe for concurrent use; the caller must serialise access.
type Set struct {
	scores map[Name]*Score
}

// NewSet creates a Set from base values. Abilities missing from bases start
// at DefaultBase.
//
// Postcondition: Returns a Set holding all six abilities, or an error if
// bases contains an invalid Name.
func NewSet(bases map[Name]int) (*Set, error) {
	for n := range bases {
		if !n.Valid() {
			return nil, fmt.Errorf("unknown ability %q", n)
		}
	}
	s := &Set{scores: make(map[Name]*Score, len(names))}
	for _, n := range names {
		base, ok := bases[n]
		if !ok {
			base = DefaultBase
		}
		s.scores[n] = NewScore(n, base, false)
	}
	return s, nil
}

// Get returns the Score for name.
//
// Postcondition: Returns a non-nil Score for any valid Name; nil otherwise.
func (s *Set) Get(name Name) *Score {
	return s.scores[name]
}

// Apply registers m on the Score for m.Ability.
//
// Postcondition: Returns an error only when m.Ability is not a valid Name.
func (s *Set) Apply(m Modifier) error {
	sc, ok := s.scores[m.Ability]
	if !ok {
		return fmt.Errorf("unknown ability %q", m.Ability)
	}
	return sc.RegisterModifier(m)
}

// Remove deregisters descriptor from every Score.
func (s *Set) Remove(descriptor string) {
	for _, sc := range s.scores {
		sc.DeregisterModifier(descriptor)
	}
}

// SetModifiedDisplay toggles the display mode of every Score.
func (s *Set) SetModifiedDisplay(on bool) {
	for _, sc := range s.scores {
		if on {
			sc.SetModifiedDisplay()
		} else {
			sc.UnsetModifiedDisplay()
		}
	}
}

// Each calls fn for every Score in canonical order.
func (s *Set) Each(fn func(*Score)) {
	for _, n := range names {
		fn(s.scores[n])
	}
}

// String renders one Score per line in canonical order.
func (s *Set) String() string {
	lines := make([]string, 0, len(names))
	s.Each(func(sc *Score) {
		lines = append(lines, sc.String())
	})
	return strings.Join(lines, "\n")
}
