package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidExpression is wrapped by every Parse failure.
var ErrInvalidExpression = errors.New("dice: invalid expression")

// Parse parses a dice expression into a Dice.
// Supported forms: "d20", "3d8", "Fighter: 3d8", "Fighter:1d10".
//
// Precondition: expr must be a non-empty string.
// Postcondition: Returns a valid Dice or an error wrapping ErrInvalidExpression.
func Parse(expr string) (Dice, error) {
	raw := expr
	s := strings.TrimSpace(expr)
	if s == "" {
		return Dice{}, fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}

	descriptor := ""
	if idx := strings.LastIndex(s, ":"); idx >= 0 {
		descriptor = strings.TrimSpace(s[:idx])
		s = strings.TrimSpace(s[idx+1:])
	}

	s = strings.ToLower(s)
	dIdx := strings.Index(s, "d")
	if dIdx < 0 {
		return Dice{}, fmt.Errorf("%w: missing 'd' in %q", ErrInvalidExpression, raw)
	}

	// Count defaults to 1 when omitted.
	count := 1
	if countStr := s[:dIdx]; countStr != "" {
		n, err := strconv.Atoi(countStr)
		if err != nil {
			return Dice{}, fmt.Errorf("%w: invalid die count in %q: %v", ErrInvalidExpression, raw, err)
		}
		count = n
	}

	sides, err := strconv.Atoi(s[dIdx+1:])
	if err != nil {
		return Dice{}, fmt.Errorf("%w: invalid die sides in %q: %v", ErrInvalidExpression, raw, err)
	}

	d, err := New(count, sides, descriptor)
	if err != nil {
		return Dice{}, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return d, nil
}

// MustParse parses expr and panics on error. Useful for package-level values.
//
// Precondition: expr must be a valid dice expression.
func MustParse(expr string) Dice {
	d, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return d
}
