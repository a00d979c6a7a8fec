// SPDX-License-Identifier: MIT
// Package tensor_test verifies elementwise kernels: arithmetic, broadcasting,
// rounding and comparison masks.

package tensor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dimq/tensor"
)

// ---------- Broadcasting ----------

func TestBroadcastShapes_Rules(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		a, b tensor.Shape
		want tensor.Shape
	}{
		{"equal", tensor.Shape{2, 3}, tensor.Shape{2, 3}, tensor.Shape{2, 3}},
		{"trailing", tensor.Shape{2, 3}, tensor.Shape{3}, tensor.Shape{2, 3}},
		{"ones", tensor.Shape{2, 1}, tensor.Shape{1, 4}, tensor.Shape{2, 4}},
		{"scalar", tensor.Shape{}, tensor.Shape{5}, tensor.Shape{5}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tensor.BroadcastShapes(tc.a, tc.b)
			if err != nil {
				t.Fatalf("BroadcastShapes: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("broadcast = %v; want %v", got, tc.want)
			}
		})
	}

	_, err := tensor.BroadcastShapes(tensor.Shape{2, 3}, tensor.Shape{4})
	AssertErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestAdd_BroadcastRowAcrossMatrix(t *testing.T) {
	t.Parallel()

	m := Mat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	row := Vec(t, 10, 20, 30)
	got, err := tensor.Add(m, row)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	CompareShape(t, got, tensor.Shape{2, 3})
	CompareFlat(t, []float64{11, 22, 33, 14, 25, 36}, got)
}

func TestAdd_ScalarBroadcast(t *testing.T) {
	t.Parallel()

	got, err := tensor.Add(Vec(t, 1, 2), tensor.FromScalar(10))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	CompareFlat(t, []float64{11, 12}, got)
}

func TestAdd_IncompatibleShapes(t *testing.T) {
	t.Parallel()

	_, err := tensor.Add(Vec(t, 1, 2), Vec(t, 1, 2, 3))
	AssertErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestAdd_NilOperand(t *testing.T) {
	t.Parallel()

	_, err := tensor.Add(nil, Vec(t, 1))
	AssertErrorIs(t, err, tensor.ErrNilTensor)
}

// ---------- Arithmetic semantics ----------

func TestSubMul_SameShapeFastPath(t *testing.T) {
	t.Parallel()

	a := Vec(t, 5, 7, 9)
	b := Vec(t, 1, 2, 3)
	diff, err := tensor.Sub(a, b)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	CompareFlat(t, []float64{4, 5, 6}, diff)

	prod, err := tensor.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	CompareFlat(t, []float64{5, 14, 27}, prod)
}

func TestDiv_TrueDivisionAlwaysFloat(t *testing.T) {
	t.Parallel()

	a := tensor.FromVector([]float64{7, 8}, tensor.WithDType(tensor.Int64))
	b := tensor.FromVector([]float64{2, 2}, tensor.WithDType(tensor.Int64))
	got, err := tensor.Div(a, b)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	CompareFlat(t, []float64{3.5, 4}, got)
	if got.DType() != tensor.Float64 {
		t.Fatalf("true division dtype = %v; want float64", got.DType())
	}
}

func TestFloorDivMod_SignFollowsDivisor(t *testing.T) {
	t.Parallel()

	a := Vec(t, 7, -7, 7, -7)
	b := Vec(t, 3, 3, -3, -3)

	q, err := tensor.FloorDiv(a, b)
	if err != nil {
		t.Fatalf("FloorDiv: %v", err)
	}
	CompareFlat(t, []float64{2, -3, -3, 2}, q)

	r, err := tensor.Mod(a, b)
	if err != nil {
		t.Fatalf("Mod: %v", err)
	}
	CompareFlat(t, []float64{1, 2, -2, -1}, r)
}

func TestDivmod_Identity(t *testing.T) {
	t.Parallel()

	a := Vec(t, 9, -9, 0.5)
	b := Vec(t, 4, 4, 0.25)
	q, r, err := tensor.Divmod(a, b)
	if err != nil {
		t.Fatalf("Divmod: %v", err)
	}
	// q·b + r must reconstruct a.
	qb, err := tensor.Mul(q, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	back, err := tensor.Add(qb, r)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	CompareCloseFlat(t, a.Data(), back, 1e-12)
}

func TestPowLdexp(t *testing.T) {
	t.Parallel()

	p, err := tensor.Pow(Vec(t, 2, 3, 4), Vec(t, 3, 2, 0.5))
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	CompareFlat(t, []float64{8, 9, 2}, p)

	l, err := tensor.Ldexp(Vec(t, 1, 3), Vec(t, 3, 2))
	if err != nil {
		t.Fatalf("Ldexp: %v", err)
	}
	CompareFlat(t, []float64{8, 12}, l)
}

func TestMaximumMinimum(t *testing.T) {
	t.Parallel()

	a := Vec(t, 1, 9, 5)
	b := Vec(t, 3, 2, 5)
	mx, err := tensor.Maximum(a, b)
	if err != nil {
		t.Fatalf("Maximum: %v", err)
	}
	CompareFlat(t, []float64{3, 9, 5}, mx)

	mn, err := tensor.Minimum(a, b)
	if err != nil {
		t.Fatalf("Minimum: %v", err)
	}
	CompareFlat(t, []float64{1, 2, 5}, mn)
}

// ---------- Unary maps ----------

func TestUnaryMaps(t *testing.T) {
	t.Parallel()

	x := Vec(t, -2, 0.25, 9)

	neg, err := tensor.Neg(x)
	if err != nil {
		t.Fatalf("Neg: %v", err)
	}
	CompareFlat(t, []float64{2, -0.25, -9}, neg)

	abs, err := tensor.Abs(x)
	if err != nil {
		t.Fatalf("Abs: %v", err)
	}
	CompareFlat(t, []float64{2, 0.25, 9}, abs)

	sq, err := tensor.Square(x)
	if err != nil {
		t.Fatalf("Square: %v", err)
	}
	CompareFlat(t, []float64{4, 0.0625, 81}, sq)

	rt, err := tensor.Sqrt(Vec(t, 4, 9, 0.25))
	if err != nil {
		t.Fatalf("Sqrt: %v", err)
	}
	CompareFlat(t, []float64{2, 3, 0.5}, rt)

	cb, err := tensor.Cbrt(Vec(t, 8, -27))
	if err != nil {
		t.Fatalf("Cbrt: %v", err)
	}
	CompareFlat(t, []float64{2, -3}, cb)

	rec, err := tensor.Reciprocal(Vec(t, 2, -4))
	if err != nil {
		t.Fatalf("Reciprocal: %v", err)
	}
	CompareFlat(t, []float64{0.5, -0.25}, rec)
}

func TestRound_HalfToEven(t *testing.T) {
	t.Parallel()

	got, err := tensor.Round(Vec(t, 0.5, 1.5, 2.5, -0.5, -1.5, 2.4))
	if err != nil {
		t.Fatalf("Round: %v", err)
	}
	CompareFlat(t, []float64{0, 2, 2, 0, -2, 2}, got)
}

func TestFloorCeilTruncSign(t *testing.T) {
	t.Parallel()

	x := Vec(t, -1.5, 1.5)
	fl, err := tensor.Floor(x)
	if err != nil {
		t.Fatalf("Floor: %v", err)
	}
	CompareFlat(t, []float64{-2, 1}, fl)

	ce, err := tensor.Ceil(x)
	if err != nil {
		t.Fatalf("Ceil: %v", err)
	}
	CompareFlat(t, []float64{-1, 2}, ce)

	tr, err := tensor.Trunc(x)
	if err != nil {
		t.Fatalf("Trunc: %v", err)
	}
	CompareFlat(t, []float64{-1, 1}, tr)

	sg, err := tensor.Sign(Vec(t, -3, 0, 7, math.NaN()))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	CompareFlat(t, []float64{-1, 0, 1, math.NaN()}, sg)
}

// ---------- Comparisons ----------

func TestComparisons_BoolMasks(t *testing.T) {
	t.Parallel()

	a := Vec(t, 1, 2, 3)
	b := Vec(t, 2, 2, 2)

	lt, err := tensor.Less(a, b)
	if err != nil {
		t.Fatalf("Less: %v", err)
	}
	CompareFlat(t, []float64{1, 0, 0}, lt)
	if lt.DType() != tensor.Bool {
		t.Fatalf("mask dtype = %v; want bool", lt.DType())
	}

	ge, err := tensor.GreaterEqual(a, b)
	if err != nil {
		t.Fatalf("GreaterEqual: %v", err)
	}
	CompareFlat(t, []float64{0, 1, 1}, ge)

	eq, err := tensor.Equal(a, b)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	CompareFlat(t, []float64{0, 1, 0}, eq)

	ne, err := tensor.NotEqual(a, b)
	if err != nil {
		t.Fatalf("NotEqual: %v", err)
	}
	CompareFlat(t, []float64{1, 0, 1}, ne)
}

func TestPredicates_FiniteInfNaN(t *testing.T) {
	t.Parallel()

	x := Vec(t, 1, math.Inf(1), math.NaN(), math.Inf(-1))

	fin, err := tensor.IsFinite(x)
	if err != nil {
		t.Fatalf("IsFinite: %v", err)
	}
	CompareFlat(t, []float64{1, 0, 0, 0}, fin)

	inf, err := tensor.IsInf(x)
	if err != nil {
		t.Fatalf("IsInf: %v", err)
	}
	CompareFlat(t, []float64{0, 1, 0, 1}, inf)

	nan, err := tensor.IsNaN(x)
	if err != nil {
		t.Fatalf("IsNaN: %v", err)
	}
	CompareFlat(t, []float64{0, 0, 1, 0}, nan)
}

func TestAllClose_Tolerances(t *testing.T) {
	t.Parallel()

	a := Vec(t, 1, 2, 3)
	b := Vec(t, 1+1e-9, 2, 3)
	ok, err := tensor.AllClose(a, b, 1e-5, 1e-8)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose must accept tiny relative error")
	}

	far := Vec(t, 1.1, 2, 3)
	ok, err = tensor.AllClose(a, far, 1e-5, 1e-8)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if ok {
		t.Fatalf("AllClose must reject 10%% error")
	}

	// Equal infinities compare close; NaN never does.
	inf := Vec(t, math.Inf(1))
	ok, err = tensor.AllClose(inf, Vec(t, math.Inf(1)), 0, 0)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("equal infinities must be close")
	}
}
