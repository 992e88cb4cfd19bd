package dice

import "fmt"

// HitDice is a consumable pool of dice sized by character level. Each Use
// spends one die from the pool; Replenish restores uses up to capacity.
//
// Invariant: 0 <= Remaining() <= Capacity(); Capacity() is fixed at construction.
// It is not safe for concurrent use; the caller must serialise access.
type HitDice struct {
	dice      Dice
	capacity  int
	remaining int
}

// NewHitDice creates a full pool of count dice with the given sides.
//
// Postcondition: Capacity() == Remaining() == count, or a non-nil error.
func NewHitDice(count, sides int, descriptor string) (*HitDice, error) {
	d, err := New(count, sides, descriptor)
	if err != nil {
		return nil, err
	}
	return FromDice(d), nil
}

// FromDice wraps a copy of d as a full hit dice pool.
//
// Precondition: d must be valid (Count >= 1, Sides >= 1).
func FromDice(d Dice) *HitDice {
	return &HitDice{dice: d, capacity: d.Count, remaining: d.Count}
}

// Dice returns a copy of the pool's dice geometry.
func (h *HitDice) Dice() Dice {
	return h.dice
}

// Sides returns the faces per die.
func (h *HitDice) Sides() int {
	return h.dice.Sides
}

// Descriptor returns the pool's label, e.g. "Fighter".
func (h *HitDice) Descriptor() string {
	return h.dice.Descriptor
}

// Min returns the lowest possible total of rolling the whole pool.
func (h *HitDice) Min() int {
	return h.dice.Min()
}

// Max returns the highest possible total of rolling the whole pool.
func (h *HitDice) Max() int {
	return h.dice.Max()
}

// Capacity returns the total number of usable dice.
func (h *HitDice) Capacity() int {
	return h.capacity
}

// Remaining returns the number of dice still available.
func (h *HitDice) Remaining() int {
	return h.remaining
}

// Depleted reports whether no dice remain.
func (h *HitDice) Depleted() bool {
	return h.remaining == 0
}

// Use spends one die and returns a single draw in [1, Sides].
// A depleted pool returns 0 and is left unchanged.
//
// Precondition: src must be non-nil.
// Postcondition: Remaining() decreases by 1 iff the return value is > 0.
func (h *HitDice) Use(src Source) int {
	if h.remaining <= 0 {
		return 0
	}
	h.remaining--
	return UniformInt(src, 1, h.dice.Sides)
}

// Replenish restores up to amount uses, discarding anything above capacity.
// A non-positive amount is a no-op.
//
// Postcondition: Remaining() <= Capacity().
func (h *HitDice) Replenish(amount int) {
	if amount <= 0 {
		return
	}
	h.remaining += min(h.capacity-h.remaining, amount)
}

// ReplenishAll restores the pool to capacity.
func (h *HitDice) ReplenishAll() {
	h.remaining = h.capacity
}

// String returns the dice string with a "(remaining/capacity)" suffix, e.g.
// "Fighter: 3d10 (2/3)".
func (h *HitDice) String() string {
	return fmt.Sprintf("%s (%d/%d)", h.dice.String(), h.remaining, h.capacity)
}
