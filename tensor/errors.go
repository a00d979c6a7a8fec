// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the tensor
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (invalid option constructors).

package tensor

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with tensorErrorf(op, ErrX) so
// callers can still match via errors.Is.

var (
	// ErrNilTensor indicates that a nil *Tensor (receiver or argument) was used.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrBadShape is returned when a requested shape is invalid (negative
	// extent, or element count that does not match the provided data).
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrShapeMismatch indicates incompatible shapes between operands:
	// unequal where equality is required, or non-broadcastable where
	// broadcasting is attempted.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrOutOfRange indicates an element index outside valid bounds, or an
	// index tuple whose length does not match the tensor rank.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrBadAxis indicates an axis outside [-ndim, ndim).
	ErrBadAxis = errors.New("tensor: axis out of range")

	// ErrNotVector signals that a 1-d tensor was required but not provided.
	ErrNotVector = errors.New("tensor: vector (1-d) required")

	// ErrNotMatrix signals that a 2-d tensor was required but not provided.
	ErrNotMatrix = errors.New("tensor: matrix (2-d) required")

	// ErrBadCount indicates an invalid element count (e.g. negative num for
	// Linspace, or a zero step for Arange).
	ErrBadCount = errors.New("tensor: invalid count")

	// ErrBadSplit indicates an invalid section count or split indices.
	ErrBadSplit = errors.New("tensor: invalid split")

	// ErrBadMode indicates an unknown mode string (Convolve, Meshgrid).
	ErrBadMode = errors.New("tensor: unknown mode")

	// ErrBadSubscripts indicates einsum subscripts that cannot be parsed or
	// do not match the operands (rank/extent disagreement, ellipsis, …).
	ErrBadSubscripts = errors.New("tensor: invalid einsum subscripts")

	// ErrEmptyInput indicates an operation that requires at least one element
	// (Max/Min reductions, Stack of zero tensors) received none.
	ErrEmptyInput = errors.New("tensor: empty input")
)

// tensorErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across facades. Use only when err != nil.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
