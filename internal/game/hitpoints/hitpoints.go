// Package hitpoints holds a character's current and maximum hit points along
// with the hit dice pools that back resource-based recovery.
//
// HitPoints is a container: deciding when to spend hit dice and how much
// healing to apply is left to the caller.
package hitpoints

import (
	"fmt"

	"github.com/cory-johannsen/charsheet/internal/game/dice"
)

// HitPoints tracks current and maximum hit points and owns zero or more hit
// dice pools. Current has no floor; clamping and death rules belong to the caller.
// It is not safe for concurrent use; the caller must serialise access.
type HitPoints struct {
	Current int
	Maximum int
	pools   []*dice.HitDice
}

// New creates HitPoints at full health owning pools in the given order.
//
// Precondition: every pool must be non-nil and not shared with another HitPoints.
// Postcondition: Current == Maximum == maximum.
func New(maximum int, pools ...*dice.HitDice) *HitPoints {
	owned := make([]*dice.HitDice, 0, len(pools))
	for _, p := range pools {
		if p == nil {
			panic("hitpoints: New precondition violated: pool must be non-nil")
		}
		owned = append(owned, p)
	}
	return &HitPoints{Current: maximum, Maximum: maximum, pools: owned}
}

// Pools returns the hit dice pools in construction order. The slice is a copy;
// the pools themselves are shared.
func (hp *HitPoints) Pools() []*dice.HitDice {
	out := make([]*dice.HitDice, len(hp.pools))
	copy(out, hp.pools)
	return out
}

// Pool returns the first pool whose descriptor matches.
func (hp *HitPoints) Pool(descriptor string) (*dice.HitDice, bool) {
	for _, p := range hp.pools {
		if p.Descriptor() == descriptor {
			return p, true
		}
	}
	return nil, false
}

// RemainingHitDice sums the remaining uses across all pools.
func (hp *HitPoints) RemainingHitDice() int {
	total := 0
	for _, p := range hp.pools {
		total += p.Remaining()
	}
	return total
}

// String renders "HP: <current>/<maximum>".
func (hp *HitPoints) String() string {
	return fmt.Sprintf("HP: %d/%d", hp.Current, hp.Maximum)
}
