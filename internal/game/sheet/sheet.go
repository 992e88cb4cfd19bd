package sheet

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/charsheet/internal/game/ability"
	"github.com/cory-johannsen/charsheet/internal/game/dice"
	"github.com/cory-johannsen/charsheet/internal/game/hitpoints"
)

// Sheet is the live state built from a Def.
type Sheet struct {
	ID        string
	Name      string
	Abilities *ability.Set
	HitPoints *hitpoints.HitPoints
}

// Build constructs a Sheet from def. Modifiers without a descriptor take one
// from gen.
//
// Precondition: def must be non-nil.
// Postcondition: Returns a fully populated Sheet, or an error naming the
// first invalid or duplicated ability, or invalid dice expression.
func Build(def *Def, gen ability.DescriptorGenerator) (*Sheet, error) {
	bases := make(map[ability.Name]int, len(def.Abilities))
	for key, v := range def.Abilities {
		n, err := ability.ParseName(key)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", def.ID, err)
		}
		if _, dup := bases[n]; dup {
			return nil, fmt.Errorf("sheet %q: duplicate ability %s", def.ID, n)
		}
		bases[n] = v
	}
	abilities, err := ability.NewSet(bases)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", def.ID, err)
	}
	abilities.SetModifiedDisplay(def.ModifiedDisplay)

	for _, md := range def.Modifiers {
		n, err := ability.ParseName(md.Ability)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: modifier %q: %w", def.ID, md.Descriptor, err)
		}
		if err := abilities.Apply(ability.NewModifier(n, md.Value, md.Descriptor, gen)); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", def.ID, err)
		}
	}

	pools := make([]*dice.HitDice, 0, len(def.HitDice))
	for _, expr := range def.HitDice {
		d, err := dice.Parse(expr)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: hit dice: %w", def.ID, err)
		}
		pools = append(pools, dice.FromDice(d))
	}

	return &Sheet{
		ID:        def.ID,
		Name:      def.Name,
		Abilities: abilities,
		HitPoints: hitpoints.New(def.HitPoints, pools...),
	}, nil
}

// String renders the name, ability block, hit points, and each hit dice pool.
func (s *Sheet) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteString("\n")
	b.WriteString(s.Abilities.String())
	b.WriteString("\n")
	b.WriteString(s.HitPoints.String())
	for _, p := range s.HitPoints.Pools() {
		b.WriteString("\nHD: ")
		b.WriteString(p.String())
	}
	return b.String()
}
