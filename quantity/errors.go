// Package quantity: sentinel errors.
//
// Dimension-algebra failures (mismatch, invalid exponent) surface as the dim
// package's sentinels; buffer-level failures surface as the tensor package's.
// The sentinels below cover the conditions owned by this layer. Tests and
// callers match all of them via errors.Is.
package quantity

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBuffer indicates a Quantity was constructed from, or operates on,
	// a nil tensor buffer.
	ErrNilBuffer = errors.New("quantity: nil buffer")

	// ErrUnitsDisagree indicates a sequence of Quantities that was required
	// to share one Dimension carried at least two different ones.
	ErrUnitsDisagree = errors.New("quantity: units disagree")

	// ErrEmptySequence indicates a sequence constructor received no elements.
	ErrEmptySequence = errors.New("quantity: empty sequence")
)

// quantityErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is keeps matching. Use only when err != nil.
func quantityErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
