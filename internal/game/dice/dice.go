// Package dice provides the randomness abstraction, dice geometry, and the
// depletable hit dice pool used by the character core.
package dice

import "fmt"

// Source is the randomness provider for dice rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// UniformInt returns a uniformly distributed int in the inclusive range [low, high].
//
// Precondition: src must be non-nil; high >= low.
// Postcondition: low <= return value <= high.
func UniformInt(src Source, low, high int) int {
	if high < low {
		panic(fmt.Sprintf("dice: UniformInt called with high %d < low %d", high, low))
	}
	return low + src.Intn(high-low+1)
}

// Upper bounds accepted by New.
const (
	MaxCount = 1000
	MaxSides = 1000
)

// Dice is N dice sharing the same face count, e.g. 3d8.
// Dice values are immutable once constructed.
type Dice struct {
	Count      int    // number of dice
	Sides      int    // faces per die
	Descriptor string // optional label, e.g. "Fighter"
}

// New validates and returns a Dice.
//
// Postcondition: Returns a Dice with 1 <= Count <= MaxCount and
// 1 <= Sides <= MaxSides, or a non-nil error.
func New(count, sides int, descriptor string) (Dice, error) {
	if count < 1 || count > MaxCount {
		return Dice{}, fmt.Errorf("dice: count must be 1-%d, got %d", MaxCount, count)
	}
	if sides < 1 || sides > MaxSides {
		return Dice{}, fmt.Errorf("dice: sides must be 1-%d, got %d", MaxSides, sides)
	}
	return Dice{Count: count, Sides: sides, Descriptor: descriptor}, nil
}

// Roll draws Count independent values in [1, Sides] and returns their sum.
//
// Precondition: src must be non-nil.
// Postcondition: Min() <= return value <= Max().
func (d Dice) Roll(src Source) int {
	return d.Rolls(src).Total()
}

// Rolls is Roll with the individual die results preserved.
//
// Postcondition: len(result.Dice) == d.Count.
func (d Dice) Rolls(src Source) RollResult {
	rolled := make([]int, d.Count)
	for i := range rolled {
		rolled[i] = UniformInt(src, 1, d.Sides)
	}
	return RollResult{Expression: d.Expression(), Dice: rolled}
}

// Min returns the lowest possible total: one per die.
func (d Dice) Min() int {
	return d.Count
}

// Max returns the highest possible total.
func (d Dice) Max() int {
	return d.Count * d.Sides
}

// Expression returns the bare "<count>d<sides>" form without the descriptor.
func (d Dice) Expression() string {
	return fmt.Sprintf("%dd%d", d.Count, d.Sides)
}

// String returns "<descriptor>: <count>d<sides>", or just "<count>d<sides>"
// when no descriptor is set.
func (d Dice) String() string {
	if d.Descriptor == "" {
		return d.Expression()
	}
	return d.Descriptor + ": " + d.Expression()
}

// RollResult holds the audit trail for a single roll.
//
// Postcondition: Total() == sum(Dice).
type RollResult struct {
	Expression string // e.g. "3d8"
	Dice       []int  // individual die results
}

// Total returns the sum of all die results.
func (r RollResult) Total() int {
	total := 0
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"3d8 → [4 5 1] = 10"
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	return fmt.Sprintf("%s → %v = %d", r.Expression, r.Dice, r.Total())
}
