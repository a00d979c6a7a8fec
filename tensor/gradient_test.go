// SPDX-License-Identifier: MIT
// Package tensor_test verifies the numerical gradient.

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/dimq/tensor"
)

func TestGradient_LinearIsExact(t *testing.T) {
	t.Parallel()

	// f(x) = 3x: the stencils are exact for affine data, edges included.
	x := Vec(t, 0, 3, 6, 9, 12)
	grads, err := tensor.Gradient(x)
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	if len(grads) != 1 {
		t.Fatalf("grads = %d; want 1 per axis", len(grads))
	}
	CompareFlat(t, []float64{3, 3, 3, 3, 3}, grads[0])
}

func TestGradient_QuadraticInterior(t *testing.T) {
	t.Parallel()

	// f(x) = x² sampled at unit spacing: central differences are exact in
	// the interior (2x), one-sided edges are first order.
	x := Vec(t, 0, 1, 4, 9, 16)
	grads, err := tensor.Gradient(x)
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	CompareFlat(t, []float64{1, 2, 4, 6, 7}, grads[0])
}

func TestGradient_ScalarSpacing(t *testing.T) {
	t.Parallel()

	// Samples of f(x)=x on a grid with step 0.5.
	f := Vec(t, 0, 0.5, 1, 1.5)
	grads, err := tensor.Gradient(f, tensor.FromScalar(0.5))
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	CompareCloseFlat(t, []float64{1, 1, 1, 1}, grads[0], 1e-12)
}

func TestGradient_NonUniformCoordinates(t *testing.T) {
	t.Parallel()

	// f(x) = x² on x = {0, 1, 3, 7}: the non-uniform interior stencil is
	// exact for quadratics (three-point Lagrange derivative).
	coords := Vec(t, 0, 1, 3, 7)
	f := Vec(t, 0, 1, 9, 49)
	grads, err := tensor.Gradient(f, coords)
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	// Interior: f'(1)=2, f'(3)=6. Edges one-sided: (1-0)/1=1, (49-9)/4=10.
	CompareCloseFlat(t, []float64{1, 2, 6, 10}, grads[0], 1e-12)
}

func TestGradient_TwoAxes(t *testing.T) {
	t.Parallel()

	// f(i,j) = 10i + j on a 3×3 grid: ∂/∂axis0 = 10, ∂/∂axis1 = 1.
	m := Mat(t, [][]float64{
		{0, 1, 2},
		{10, 11, 12},
		{20, 21, 22},
	})
	grads, err := tensor.Gradient(m)
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	if len(grads) != 2 {
		t.Fatalf("grads = %d; want 2", len(grads))
	}
	CompareFlat(t, []float64{10, 10, 10, 10, 10, 10, 10, 10, 10}, grads[0])
	CompareFlat(t, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}, grads[1])
}

func TestGradient_Rejections(t *testing.T) {
	t.Parallel()

	_, err := tensor.Gradient(Vec(t, 1))
	AssertErrorIs(t, err, tensor.ErrBadShape) // too short

	_, err = tensor.Gradient(Vec(t, 1, 2), Vec(t, 1, 2, 3))
	AssertErrorIs(t, err, tensor.ErrShapeMismatch) // coordinate length

	m := Mat(t, [][]float64{{1, 2}, {3, 4}})
	_, err = tensor.Gradient(m, tensor.FromScalar(1), tensor.FromScalar(1), tensor.FromScalar(1))
	AssertErrorIs(t, err, tensor.ErrBadCount) // spacing arity
}

func TestGradient_ResultIsFloat(t *testing.T) {
	t.Parallel()

	x := tensor.FromVector([]float64{0, 2, 4}, tensor.WithDType(tensor.Int64))
	grads, err := tensor.Gradient(x)
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	if grads[0].DType() != tensor.Float64 {
		t.Fatalf("gradient dtype = %v; want float64", grads[0].DType())
	}
}
