package ability

import (
	"fmt"
	"sort"
	"strings"
)

// Score is one ability's base value plus its active modifiers.
// It is not safe for concurrent use; the caller must serialise access.
type Score struct {
	name            Name
	base            int
	modifiers       map[string]Modifier
	modifiedDisplay bool
}

// NewScore creates a Score with no modifiers. modifiedDisplay selects whether
// String and StringNoName render the modified or raw value.
func NewScore(name Name, base int, modifiedDisplay bool) *Score {
	return &Score{
		name:            name,
		base:            base,
		modifiers:       make(map[string]Modifier),
		modifiedDisplay: modifiedDisplay,
	}
}

// Name returns the ability this score belongs to.
func (s *Score) Name() Name {
	return s.name
}

// Base returns the unmodified score.
func (s *Score) Base() int {
	return s.base
}

// SetBase replaces the unmodified score. Registered modifiers are kept.
func (s *Score) SetBase(v int) {
	s.base = v
}

// Score returns the base value, or the base value plus every registered
// modifier value when modified is true.
func (s *Score) Score(modified bool) int {
	if !modified {
		return s.base
	}
	total := s.base
	for _, m := range s.modifiers {
		total += m.Value
	}
	return total
}

// Bonus returns Bonus(Score(modified)).
func (s *Score) Bonus(modified bool) int {
	return Bonus(s.Score(modified))
}

// RegisterModifier adds m keyed by its descriptor. A descriptor that is
// already registered keeps its first modifier; the new one is discarded.
//
// Postcondition: Returns a *MismatchError and leaves the score unchanged when
// m.Ability != Name().
func (s *Score) RegisterModifier(m Modifier) error {
	if m.Ability != s.name {
		return &MismatchError{Want: s.name, Got: m.Ability}
	}
	if _, ok := s.modifiers[m.Descriptor]; !ok {
		s.modifiers[m.Descriptor] = m
	}
	return nil
}

// DeregisterModifier removes the modifier with descriptor. Unknown
// descriptors are a no-op.
func (s *Score) DeregisterModifier(descriptor string) {
	delete(s.modifiers, descriptor)
}

// HasModifier reports whether descriptor is registered.
func (s *Score) HasModifier(descriptor string) bool {
	_, ok := s.modifiers[descriptor]
	return ok
}

// Modifiers returns a snapshot of the registered modifiers sorted by descriptor.
func (s *Score) Modifiers() []Modifier {
	out := make([]Modifier, 0, len(s.modifiers))
	for _, m := range s.modifiers {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Descriptor < out[j].Descriptor })
	return out
}

// SetModifiedDisplay makes String render the modified value.
func (s *Score) SetModifiedDisplay() {
	s.modifiedDisplay = true
}

// UnsetModifiedDisplay makes String render the raw value.
func (s *Score) UnsetModifiedDisplay() {
	s.modifiedDisplay = false
}

// ModifiedDisplay reports the current display mode.
func (s *Score) ModifiedDisplay() bool {
	return s.modifiedDisplay
}

// String renders "<PREFIX>: <score> <bonus>", e.g. "STR: 14 +2" or "DEX:  8 -1".
func (s *Score) String() string {
	return fmt.Sprintf("%s: %s", s.name.Prefix(), s.values())
}

// StringNoName renders the score and bonus without the label, e.g. "8 -1".
func (s *Score) StringNoName() string {
	return strings.TrimSpace(s.values())
}

func (s *Score) values() string {
	return fmt.Sprintf("%2d %+2d", s.Score(s.modifiedDisplay), s.Bonus(s.modifiedDisplay))
}
