// Package umath: sentinel errors.
//
// The dispatcher adds one error kind of its own: an operand whose runtime
// type it cannot coerce. Dimension failures surface as the dim package's
// sentinels, buffer failures as the tensor package's, sequence failures as
// the quantity package's.
package umath

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType indicates an operand of a runtime type the dispatcher
// cannot coerce into a buffer or Quantity.
var ErrUnsupportedType = errors.New("umath: unsupported operand type")

// TypeError reports the offending operand. It unwraps to ErrUnsupportedType
// so errors.Is keeps working.
type TypeError struct {
	// Op is the operation that received the operand.
	Op string

	// Value is the operand itself; the message reports its runtime type.
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("umath: %s: unsupported operand type %T", e.Op, e.Value)
}

// Unwrap exposes the sentinel for errors.Is matching.
func (e *TypeError) Unwrap() error { return ErrUnsupportedType }

// umathErrorf tags err with the operation name, preserving errors.Is/As.
func umathErrorf(op string, err error) error {
	return fmt.Errorf("umath: %s: %w", op, err)
}
