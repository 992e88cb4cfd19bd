package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/charsheet/internal/game/dice"
)

func newObservedRoller(src dice.Source) (*dice.Roller, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return dice.NewLoggedRoller(src, zap.New(core)), logs
}

func TestRoller_Roll_LogsResult(t *testing.T) {
	roller, logs := newObservedRoller(&fixedSource{val: 2})
	result := roller.Roll(dice.MustParse("2d6"))
	assert.Equal(t, 6, result.Total())

	entries := logs.FilterMessage("dice roll").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "2d6", fields["expression"])
	assert.EqualValues(t, 6, fields["total"])
}

func TestRoller_RollExpr_ParseError(t *testing.T) {
	roller, logs := newObservedRoller(&fixedSource{})
	_, err := roller.RollExpr("nope")
	assert.ErrorIs(t, err, dice.ErrInvalidExpression)
	assert.Equal(t, 0, logs.Len())
}

func TestRoller_UseAndReplenish(t *testing.T) {
	roller, logs := newObservedRoller(&fixedSource{val: 3})
	h, err := dice.NewHitDice(1, 8, "Rogue")
	require.NoError(t, err)

	assert.Equal(t, 4, roller.Use(h))
	assert.Equal(t, 0, roller.Use(h))
	roller.Replenish(h, 10)
	assert.Equal(t, 1, h.Remaining())

	assert.Equal(t, 1, logs.FilterMessage("hit die used").Len())
	assert.Equal(t, 1, logs.FilterMessage("hit dice depleted").Len())
	replenished := logs.FilterMessage("hit dice replenished").All()
	require.Len(t, replenished, 1)
	assert.EqualValues(t, 1, replenished[0].ContextMap()["restored"])
}
