// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/axis checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with tensorErrorf(opTag, err).
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package tensor

// validatorErrorf is intentionally absent: validators return plain sentinels
// and the facade attaches the operation tag exactly once.

// ValidateNotNil ensures the tensor reference is non-nil.
// Returns ErrNilTensor if t == nil. Complexity: O(1).
func ValidateNotNil(t *Tensor) error {
	if t == nil {
		return ErrNilTensor
	}

	return nil
}

// ValidateAllNotNil ensures every tensor in ts is non-nil.
// Complexity: O(len(ts)).
func ValidateAllNotNil(ts ...*Tensor) error {
	for _, t := range ts {
		if t == nil {
			return ErrNilTensor
		}
	}

	return nil
}

// ValidateShape ensures every extent is non-negative.
// Zero extents are legal (empty tensors); negative ones are not.
// Returns ErrBadShape on violation. Complexity: O(ndim).
func ValidateShape(s Shape) error {
	for _, d := range s {
		if d < 0 {
			return ErrBadShape
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have identical shapes.
// Assumes both are non-nil (compose with ValidateAllNotNil).
// Returns ErrShapeMismatch on violation. Complexity: O(ndim).
func ValidateSameShape(a, b *Tensor) error {
	if !a.shape.Equal(b.shape) {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateAxis normalizes a possibly-negative axis against rank ndim
// (NumPy convention: -1 is the last axis) and bounds-checks it.
// Returns the normalized axis or ErrBadAxis. Complexity: O(1).
func ValidateAxis(axis, ndim int) (int, error) {
	if axis < 0 {
		axis += ndim
	}
	if axis < 0 || axis >= ndim {
		return 0, ErrBadAxis
	}

	return axis, nil
}

// ValidateVector ensures t is 1-d.
// Returns ErrNotVector on violation. Complexity: O(1).
func ValidateVector(t *Tensor) error {
	if len(t.shape) != 1 {
		return ErrNotVector
	}

	return nil
}

// ValidateMatrix ensures t is 2-d.
// Returns ErrNotMatrix on violation. Complexity: O(1).
func ValidateMatrix(t *Tensor) error {
	if len(t.shape) != 2 {
		return ErrNotMatrix
	}

	return nil
}

// validateBinary is the composite NotNil(a) → NotNil(b) guard shared by all
// two-operand kernels; shape compatibility is checked by the kernel itself
// (equality or broadcast, whichever it supports).
func validateBinary(a, b *Tensor) error {
	if a == nil || b == nil {
		return ErrNilTensor
	}

	return nil
}
