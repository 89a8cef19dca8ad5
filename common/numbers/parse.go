// Package numbers holds the input parser and the pure numeric predicates
// used to classify an integer.
package numbers

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidInput is matched by every error returned from Parse.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError carries the raw value that could not be parsed.
type InvalidInputError struct {
	Raw    string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Raw, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Parse converts raw into a signed 64-bit integer. Only an optional leading
// minus sign followed by ASCII digits is accepted.
func Parse(raw string) (int64, error) {
	if raw == "" {
		return 0, &InvalidInputError{Raw: raw, Reason: "empty value"}
	}

	digits := raw
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, &InvalidInputError{Raw: raw, Reason: "missing digits"}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, &InvalidInputError{Raw: raw, Reason: "not an integer"}
		}
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &InvalidInputError{Raw: raw, Reason: "out of int64 range"}
		}
		return 0, &InvalidInputError{Raw: raw, Reason: err.Error()}
	}
	return n, nil
}
