package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged dice rolling and hit dice
// consumption. Every roll is logged at debug level with the expression, die
// values, and total.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Source returns the underlying randomness provider.
func (r *Roller) Source() Source {
	return r.src
}

// Roll rolls d and logs the result.
//
// Postcondition: d.Min() <= result.Total() <= d.Max().
func (r *Roller) Roll(d Dice) RollResult {
	result := d.Rolls(r.src)
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.String("descriptor", d.Descriptor),
		zap.Ints("dice", result.Dice),
		zap.Int("total", result.Total()),
	)
	return result
}

// RollExpr parses expr and rolls it, logging the result.
//
// Postcondition: Returns a RollResult or a parse error.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	d, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll(d), nil
}

// Use spends one die from h and logs the recovery roll. A depleted pool is
// logged and returns 0.
//
// Precondition: h must be non-nil.
func (r *Roller) Use(h *HitDice) int {
	if h.Depleted() {
		r.logger.Debug("hit dice depleted",
			zap.String("hit_dice", h.String()),
		)
		return 0
	}
	v := h.Use(r.src)
	r.logger.Debug("hit die used",
		zap.String("descriptor", h.Descriptor()),
		zap.Int("sides", h.Sides()),
		zap.Int("result", v),
		zap.Int("remaining", h.Remaining()),
		zap.Int("capacity", h.Capacity()),
	)
	return v
}

// Replenish restores up to amount uses on h and logs the new pool state.
//
// Precondition: h must be non-nil.
func (r *Roller) Replenish(h *HitDice, amount int) {
	before := h.Remaining()
	h.Replenish(amount)
	r.logger.Debug("hit dice replenished",
		zap.String("descriptor", h.Descriptor()),
		zap.Int("requested", amount),
		zap.Int("restored", h.Remaining()-before),
		zap.Int("remaining", h.Remaining()),
	)
}
