// SPDX-License-Identifier: MIT
// Package tensor_test verifies shape manipulation: views, permutations,
// triangles, diagonals, splits and grids.

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/dimq/tensor"
)

// ---------- Views ----------

func TestReshape_ViewSharesStorage(t *testing.T) {
	t.Parallel()

	x := Vec(t, 1, 2, 3, 4, 5, 6)
	m := MustReshape(t, x, tensor.Shape{2, 3})
	CompareShape(t, m, tensor.Shape{2, 3})

	// A write through the view is visible in the base.
	if err := m.Set(99, 1, 2); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, _ := x.At(5)
	if v != 99 {
		t.Fatalf("view write invisible in base: got %v", v)
	}
}

func TestReshape_InfersOneExtent(t *testing.T) {
	t.Parallel()

	x := Vec(t, 1, 2, 3, 4, 5, 6)
	m := MustReshape(t, x, tensor.Shape{-1, 2})
	CompareShape(t, m, tensor.Shape{3, 2})

	_, err := tensor.Reshape(x, tensor.Shape{-1, -1})
	AssertErrorIs(t, err, tensor.ErrBadShape)
	_, err = tensor.Reshape(x, tensor.Shape{4, 2})
	AssertErrorIs(t, err, tensor.ErrBadShape)
	_, err = tensor.Reshape(x, tensor.Shape{-1, 4})
	AssertErrorIs(t, err, tensor.ErrBadShape)
}

func TestRavel_FlatView(t *testing.T) {
	t.Parallel()

	m := Mat(t, [][]float64{{1, 2}, {3, 4}})
	flat, err := tensor.Ravel(m)
	if err != nil {
		t.Fatalf("Ravel: %v", err)
	}
	CompareShape(t, flat, tensor.Shape{4})
	if err = flat.Set(-1, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, _ := m.At(0, 0)
	if v != -1 {
		t.Fatalf("Ravel must be a view")
	}
}

// ---------- Permutations ----------

func TestTranspose_Matrix(t *testing.T) {
	t.Parallel()

	m := Mat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := tensor.Transpose(m)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	CompareShape(t, tr, tensor.Shape{3, 2})
	CompareFlat(t, []float64{1, 4, 2, 5, 3, 6}, tr)

	// Vectors and scalars come back unchanged.
	v := Vec(t, 1, 2)
	tv, err := tensor.Transpose(v)
	if err != nil {
		t.Fatalf("Transpose vector: %v", err)
	}
	CompareFlat(t, []float64{1, 2}, tv)
}

func TestPermute_3d(t *testing.T) {
	t.Parallel()

	x, err := tensor.FromSlice([]float64{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	}, tensor.Shape{2, 2, 3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	p, err := tensor.Permute(x, []int{2, 0, 1})
	if err != nil {
		t.Fatalf("Permute: %v", err)
	}
	CompareShape(t, p, tensor.Shape{3, 2, 2})
	// p[i,j,k] = x[j,k,i].
	want, _ := x.At(1, 0, 2)
	got, _ := p.At(2, 1, 0)
	if got != want {
		t.Fatalf("Permute misplaced: got %v want %v", got, want)
	}

	_, err = tensor.Permute(x, []int{0, 0, 1})
	AssertErrorIs(t, err, tensor.ErrBadAxis)
	_, err = tensor.Permute(x, []int{0, 1})
	AssertErrorIs(t, err, tensor.ErrBadAxis)
}

// ---------- Triangles and diagonals ----------

func TestTrilTriu(t *testing.T) {
	t.Parallel()

	m := Mat(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	lo, err := tensor.Tril(m, 0)
	if err != nil {
		t.Fatalf("Tril: %v", err)
	}
	CompareFlat(t, []float64{
		1, 0, 0,
		4, 5, 0,
		7, 8, 9,
	}, lo)

	hi, err := tensor.Triu(m, 1)
	if err != nil {
		t.Fatalf("Triu: %v", err)
	}
	CompareFlat(t, []float64{
		0, 2, 3,
		0, 0, 6,
		0, 0, 0,
	}, hi)

	_, err = tensor.Tril(Vec(t, 1, 2), 0)
	AssertErrorIs(t, err, tensor.ErrNotMatrix)
}

func TestDiag_BothDirections(t *testing.T) {
	t.Parallel()

	// Vector → matrix with offset.
	d, err := tensor.Diag(Vec(t, 1, 2), 1)
	if err != nil {
		t.Fatalf("Diag build: %v", err)
	}
	CompareShape(t, d, tensor.Shape{3, 3})
	CompareFlat(t, []float64{
		0, 1, 0,
		0, 0, 2,
		0, 0, 0,
	}, d)

	// Matrix → vector, main and offset diagonals.
	m := Mat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	main, err := tensor.Diag(m, 0)
	if err != nil {
		t.Fatalf("Diag extract: %v", err)
	}
	CompareFlat(t, []float64{1, 5}, main)

	upper, err := tensor.Diag(m, 1)
	if err != nil {
		t.Fatalf("Diag extract k=1: %v", err)
	}
	CompareFlat(t, []float64{2, 6}, upper)

	lower, err := tensor.Diag(m, -1)
	if err != nil {
		t.Fatalf("Diag extract k=-1: %v", err)
	}
	CompareFlat(t, []float64{4}, lower)
}

func TestFillDiagonal_InPlaceAndWrap(t *testing.T) {
	t.Parallel()

	m, err := tensor.Zeros(tensor.Shape{4, 2})
	if err != nil {
		t.Fatalf("Zeros: %v", err)
	}
	if err = tensor.FillDiagonal(m, 5, false); err != nil {
		t.Fatalf("FillDiagonal: %v", err)
	}
	CompareFlat(t, []float64{
		5, 0,
		0, 5,
		0, 0,
		0, 0,
	}, m)

	w, err := tensor.Zeros(tensor.Shape{4, 2})
	if err != nil {
		t.Fatalf("Zeros: %v", err)
	}
	if err = tensor.FillDiagonal(w, 5, true); err != nil {
		t.Fatalf("FillDiagonal wrap: %v", err)
	}
	// Wrapping restarts below the filled block (NumPy tall-matrix rule).
	CompareFlat(t, []float64{
		5, 0,
		0, 5,
		0, 0,
		5, 0,
	}, w)
}

// ---------- Splits ----------

func TestSplit_StrictSections(t *testing.T) {
	t.Parallel()

	x := Vec(t, 1, 2, 3, 4, 5, 6)
	parts, err := tensor.Split(x, 3, 0)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(parts) != 3 {
		t.Fatalf("parts = %d; want 3", len(parts))
	}
	CompareFlat(t, []float64{1, 2}, parts[0])
	CompareFlat(t, []float64{3, 4}, parts[1])
	CompareFlat(t, []float64{5, 6}, parts[2])

	_, err = tensor.Split(x, 4, 0)
	AssertErrorIs(t, err, tensor.ErrBadSplit)
}

func TestArraySplit_UnevenAllowed(t *testing.T) {
	t.Parallel()

	x := Vec(t, 1, 2, 3, 4, 5)
	parts, err := tensor.ArraySplit(x, 3, 0)
	if err != nil {
		t.Fatalf("ArraySplit: %v", err)
	}
	// 5 = 2 + 2 + 1: the first extra element goes to the leading parts.
	CompareFlat(t, []float64{1, 2}, parts[0])
	CompareFlat(t, []float64{3, 4}, parts[1])
	CompareFlat(t, []float64{5}, parts[2])
}

func TestSplitAt_IndicesAlongAxis(t *testing.T) {
	t.Parallel()

	m := Mat(t, [][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	parts, err := tensor.SplitAt(m, []int{1}, 0)
	if err != nil {
		t.Fatalf("SplitAt: %v", err)
	}
	CompareShape(t, parts[0], tensor.Shape{1, 2})
	CompareFlat(t, []float64{1, 2}, parts[0])
	CompareShape(t, parts[1], tensor.Shape{2, 2})
	CompareFlat(t, []float64{3, 4, 5, 6}, parts[1])

	_, err = tensor.SplitAt(m, []int{2, 1}, 0)
	AssertErrorIs(t, err, tensor.ErrBadSplit)
}

func TestSplit_AlongColumns(t *testing.T) {
	t.Parallel()

	m := Mat(t, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	})
	parts, err := tensor.Split(m, 2, 1)
	if err != nil {
		t.Fatalf("Split axis 1: %v", err)
	}
	CompareShape(t, parts[0], tensor.Shape{2, 2})
	CompareFlat(t, []float64{1, 2, 5, 6}, parts[0])
	CompareFlat(t, []float64{3, 4, 7, 8}, parts[1])
}

// ---------- Grids ----------

func TestMeshgrid_BothIndexings(t *testing.T) {
	t.Parallel()

	x := Vec(t, 1, 2, 3)
	y := Vec(t, 10, 20)

	ij, err := tensor.Meshgrid(tensor.IndexIJ, x, y)
	if err != nil {
		t.Fatalf("Meshgrid ij: %v", err)
	}
	CompareShape(t, ij[0], tensor.Shape{3, 2})
	CompareFlat(t, []float64{1, 1, 2, 2, 3, 3}, ij[0])
	CompareFlat(t, []float64{10, 20, 10, 20, 10, 20}, ij[1])

	xy, err := tensor.Meshgrid(tensor.IndexXY, x, y)
	if err != nil {
		t.Fatalf("Meshgrid xy: %v", err)
	}
	CompareShape(t, xy[0], tensor.Shape{2, 3})
	CompareFlat(t, []float64{1, 2, 3, 1, 2, 3}, xy[0])
	CompareFlat(t, []float64{10, 10, 10, 20, 20, 20}, xy[1])

	_, err = tensor.Meshgrid("polar", x)
	AssertErrorIs(t, err, tensor.ErrBadMode)
}

func TestVander_BothOrders(t *testing.T) {
	t.Parallel()

	x := Vec(t, 1, 2, 3)

	dec, err := tensor.Vander(x, 3, false)
	if err != nil {
		t.Fatalf("Vander: %v", err)
	}
	CompareFlat(t, []float64{
		1, 1, 1,
		4, 2, 1,
		9, 3, 1,
	}, dec)

	inc, err := tensor.Vander(x, 3, true)
	if err != nil {
		t.Fatalf("Vander increasing: %v", err)
	}
	CompareFlat(t, []float64{
		1, 1, 1,
		1, 2, 4,
		1, 3, 9,
	}, inc)
}

func TestBroadcastTo_Materializes(t *testing.T) {
	t.Parallel()

	row := Vec(t, 1, 2, 3)
	got, err := tensor.BroadcastTo(row, tensor.Shape{2, 3})
	if err != nil {
		t.Fatalf("BroadcastTo: %v", err)
	}
	CompareFlat(t, []float64{1, 2, 3, 1, 2, 3}, got)

	// Narrowing is not a broadcast.
	_, err = tensor.BroadcastTo(Mat(t, [][]float64{{1, 2}, {3, 4}}), tensor.Shape{2})
	AssertErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestStack_NewLeadingAxis(t *testing.T) {
	t.Parallel()

	a := Vec(t, 1, 2)
	b := Vec(t, 3, 4)
	s, err := tensor.Stack([]*tensor.Tensor{a, b})
	if err != nil {
		t.Fatalf("Stack: %v", err)
	}
	CompareShape(t, s, tensor.Shape{2, 2})
	CompareFlat(t, []float64{1, 2, 3, 4}, s)

	_, err = tensor.Stack(nil)
	AssertErrorIs(t, err, tensor.ErrEmptyInput)
	_, err = tensor.Stack([]*tensor.Tensor{a, Vec(t, 1, 2, 3)})
	AssertErrorIs(t, err, tensor.ErrShapeMismatch)
}
