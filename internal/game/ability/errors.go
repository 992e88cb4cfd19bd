package ability

import (
	"errors"
	"fmt"
)

// ErrAbilityMismatch matches any *MismatchError via errors.Is.
var ErrAbilityMismatch = errors.New("ability mismatch")

// MismatchError is returned when a modifier is registered on a score for a
// different ability.
type MismatchError struct {
	Want Name // the score's ability
	Got  Name // the modifier's ability
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("ability mismatch (%s != %s)", e.Got, e.Want)
}

// Is reports whether target is ErrAbilityMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrAbilityMismatch
}
