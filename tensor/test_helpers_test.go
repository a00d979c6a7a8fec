// SPDX-License-Identifier: MIT
// Package tensor_test contains shared test helpers.
//
// Purpose:
//   - Small deterministic fixtures and comparison utilities for the kernel
//     tests. All data is finite and hand-picked so exact equality is safe.

package tensor_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/dimq/tensor"
)

// Vec BUILDS a 1-d tensor from literal values.
func Vec(t *testing.T, vals ...float64) *tensor.Tensor {
	t.Helper()

	return tensor.FromVector(vals)
}

// Mat BUILDS a 2-d tensor from row literals or fails the test.
func Mat(t *testing.T, rows [][]float64) *tensor.Tensor {
	t.Helper()
	m, err := tensor.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustReshape RESHAPES or fails the test.
func MustReshape(t *testing.T, x *tensor.Tensor, shape tensor.Shape) *tensor.Tensor {
	t.Helper()
	r, err := tensor.Reshape(x, shape)
	if err != nil {
		t.Fatalf("Reshape(%v): %v", shape, err)
	}

	return r
}

// CompareShape ASSERTS the tensor has exactly the wanted shape.
func CompareShape(t *testing.T, got *tensor.Tensor, want tensor.Shape) {
	t.Helper()
	if got == nil {
		t.Fatalf("CompareShape: nil tensor")
	}
	if !got.Shape().Equal(want) {
		t.Fatalf("shape = %v; want %v", got.Shape(), want)
	}
}

// CompareFlat ASSERTS strict equality of the flat buffer (use only for
// integer-like or exactly representable values).
func CompareFlat(t *testing.T, want []float64, got *tensor.Tensor) {
	t.Helper()
	if got == nil {
		t.Fatalf("CompareFlat: nil tensor")
	}
	data := got.Data()
	if len(data) != len(want) {
		t.Fatalf("numel = %d; want %d", len(data), len(want))
	}
	for i := range want {
		gi, wi := data[i], want[i]
		if gi != wi && !(math.IsNaN(gi) && math.IsNaN(wi)) {
			t.Fatalf("data[%d] = %v; want %v", i, gi, wi)
		}
	}
}

// CompareCloseFlat ASSERTS |got[i]-want[i]| ≤ eps element-wise.
func CompareCloseFlat(t *testing.T, want []float64, got *tensor.Tensor, eps float64) {
	t.Helper()
	data := got.Data()
	if len(data) != len(want) {
		t.Fatalf("numel = %d; want %d", len(data), len(want))
	}
	for i := range want {
		if math.Abs(data[i]-want[i]) > eps {
			t.Fatalf("data[%d] = %g; want %g (eps=%g)", i, data[i], want[i], eps)
		}
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}
