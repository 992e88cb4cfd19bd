package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/charsheet/internal/game/dice"
)

func TestNewHitDice_StartsFull(t *testing.T) {
	h, err := dice.NewHitDice(3, 8, "")
	require.NoError(t, err)
	assert.Equal(t, 3, h.Capacity())
	assert.Equal(t, 3, h.Remaining())
	assert.False(t, h.Depleted())
	assert.Equal(t, 3, h.Min())
	assert.Equal(t, 24, h.Max())
}

func TestHitDice_CapacityFixedAtConstruction(t *testing.T) {
	d := dice.MustParse("Cleric: 3d8")
	h := dice.FromDice(d)
	d.Count = 1

	geometry := h.Dice()
	geometry.Count = 1
	geometry.Sides = 4

	assert.Equal(t, 3, h.Capacity())
	assert.Equal(t, 3, h.Remaining())
	assert.Equal(t, 8, h.Sides())
	assert.Equal(t, "Cleric", h.Descriptor())
	assert.Equal(t, "Cleric: 3d8 (3/3)", h.String())

	h.Use(&fixedSource{val: 0})
	h.Replenish(10)
	assert.Equal(t, 3, h.Remaining())
}

func TestNewHitDice_RejectsInvalid(t *testing.T) {
	_, err := dice.NewHitDice(0, 8, "")
	assert.Error(t, err)
}

func TestHitDice_UseUntilDepleted(t *testing.T) {
	h, err := dice.NewHitDice(3, 8, "")
	require.NoError(t, err)
	src := dice.NewSeededSource(7)

	for want := 2; want >= 0; want-- {
		v := h.Use(src)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 8)
		assert.Equal(t, want, h.Remaining())
	}
	assert.True(t, h.Depleted())

	assert.Equal(t, 0, h.Use(src))
	assert.Equal(t, 0, h.Remaining())

	h.Replenish(5)
	assert.Equal(t, 3, h.Remaining())
}

func TestHitDice_UseDrawsSingleDie(t *testing.T) {
	h, err := dice.NewHitDice(4, 10, "")
	require.NoError(t, err)
	assert.Equal(t, 10, h.Use(&fixedSource{val: 99}))
}

func TestHitDice_Replenish_NonPositiveIsNoOp(t *testing.T) {
	h, err := dice.NewHitDice(2, 6, "")
	require.NoError(t, err)
	src := &fixedSource{val: 0}
	h.Use(src)
	h.Use(src)

	h.Replenish(0)
	assert.Equal(t, 0, h.Remaining())
	h.Replenish(-5)
	assert.Equal(t, 0, h.Remaining())
	h.Replenish(1)
	assert.Equal(t, 1, h.Remaining())
}

func TestHitDice_ReplenishAll(t *testing.T) {
	h, err := dice.NewHitDice(5, 12, "")
	require.NoError(t, err)
	src := &fixedSource{val: 0}
	for i := 0; i < 4; i++ {
		h.Use(src)
	}
	h.ReplenishAll()
	assert.Equal(t, 5, h.Remaining())
}

func TestHitDice_String(t *testing.T) {
	h, err := dice.NewHitDice(3, 10, "Fighter")
	require.NoError(t, err)
	h.Use(&fixedSource{val: 0})
	assert.Equal(t, "Fighter: 3d10 (2/3)", h.String())

	plain, err := dice.NewHitDice(1, 6, "")
	require.NoError(t, err)
	assert.Equal(t, "1d6 (1/1)", plain.String())
}

// TestHitDice_Invariant_Property drives random Use/Replenish sequences and
// checks 0 <= Remaining() <= Capacity() after every step.
func TestHitDice_Invariant_Property(t *testing.T) {
	src := dice.NewSeededSource(1)
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(1, 20).Draw(rt, "capacity")
		h, err := dice.NewHitDice(capacity, 8, "")
		require.NoError(rt, err)

		steps := rapid.SliceOfN(rapid.IntRange(-30, 30), 1, 50).Draw(rt, "steps")
		for _, step := range steps {
			before := h.Remaining()
			if step == 0 {
				v := h.Use(src)
				if before == 0 {
					assert.Equal(rt, 0, v)
					assert.Equal(rt, 0, h.Remaining())
				} else {
					assert.Equal(rt, before-1, h.Remaining())
				}
			} else {
				h.Replenish(step)
				if step < 0 {
					assert.Equal(rt, before, h.Remaining())
				} else {
					assert.Equal(rt, min(capacity, before+step), h.Remaining())
				}
			}
			assert.GreaterOrEqual(rt, h.Remaining(), 0)
			assert.LessOrEqual(rt, h.Remaining(), h.Capacity())
		}
	})
}

// TestHitDice_ExhaustAfterCapacityUses_Property checks that exactly capacity
// uses drain the pool and further uses return 0.
func TestHitDice_ExhaustAfterCapacityUses_Property(t *testing.T) {
	src := dice.NewSeededSource(99)
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(1, 20).Draw(rt, "capacity")
		sides := rapid.IntRange(1, 20).Draw(rt, "sides")
		h, err := dice.NewHitDice(capacity, sides, "")
		require.NoError(rt, err)

		for i := 0; i < capacity; i++ {
			v := h.Use(src)
			assert.GreaterOrEqual(rt, v, 1)
			assert.LessOrEqual(rt, v, sides)
		}
		assert.Equal(rt, 0, h.Remaining())
		assert.Equal(rt, 0, h.Use(src))
		assert.Equal(rt, 0, h.Remaining())
	})
}
