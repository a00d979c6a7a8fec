// Package dim: sentinel errors and rich error payloads.
//
// All algebra entry points return these sentinels (possibly wrapped); tests
// and callers match them via errors.Is. The payload types carry the offending
// operands so callers can report exactly which exponent vectors disagreed.
package dim

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates two exponent vectors were required to be
	// equal (or one of them dimensionless) but were not.
	ErrDimensionMismatch = errors.New("dim: dimension mismatch")

	// ErrInvalidExponent indicates an exponent that cannot participate in the
	// algebra: NaN, ±Inf, or a power whose operand was required to be
	// dimensionless but was not.
	ErrInvalidExponent = errors.New("dim: invalid exponent")
)

// MismatchError reports a failed equality check between two Dimensions.
// It unwraps to ErrDimensionMismatch so errors.Is keeps working.
type MismatchError struct {
	// Op is the operation label that performed the check (e.g. "Add").
	Op string

	// Left and Right are the two exponent vectors that disagreed.
	Left, Right Dimension
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("dim: %s: dimension mismatch: %s vs %s", e.Op, e.Left, e.Right)
}

// Unwrap exposes the sentinel for errors.Is matching.
func (e *MismatchError) Unwrap() error { return ErrDimensionMismatch }

// InvalidExponentError reports an exponent rejected by the algebra.
// It unwraps to ErrInvalidExponent so errors.Is keeps working.
type InvalidExponentError struct {
	// Op is the operation label that rejected the exponent (e.g. "PowFloat").
	Op string

	// Exponent is the textual form of the offending exponent.
	Exponent string
}

func (e *InvalidExponentError) Error() string {
	return fmt.Sprintf("dim: %s: invalid exponent %s", e.Op, e.Exponent)
}

// Unwrap exposes the sentinel for errors.Is matching.
func (e *InvalidExponentError) Unwrap() error { return ErrInvalidExponent }

// CheckSame verifies that a and b carry the same exponent vector.
// Success is silent (nil); failure returns a *MismatchError labeled with op.
// Callers that tolerate dimensionless operands must handle that before the
// check; CheckSame itself is strict equality.
func CheckSame(op string, a, b Dimension) error {
	if a == b {
		return nil
	}

	return &MismatchError{Op: op, Left: a, Right: b}
}
