// SPDX-License-Identifier: MIT
// Package tensor: construction kernels (allocation, filling, ranges).
//
// Purpose:
//   - Declare every way a Tensor comes into existence: blank allocation,
//     copies of Go data, filled/triangular patterns, numeric ranges.
//   - All constructors validate fail-fast and return "tensor: ..." sentinels.
//
// Notes:
//   - Empty mirrors Zeros: Go cannot hand out uninitialized memory, so the
//     "uninitialized" constructor of the NumPy catalogue returns zeros here.
//   - Range kernels delegate spacing math to gonum/floats where it has a
//     kernel (Span); the rest is explicit loops with documented formulas.

package tensor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation tags for unified error wrapping (no magic strings).
const (
	opNew       = "New"
	opZeros     = "Zeros"
	opOnes      = "Ones"
	opFull      = "Full"
	opEmpty     = "Empty"
	opFromSlice = "FromSlice"
	opFromRows  = "FromRows"
	opEye       = "Eye"
	opIdentity  = "Identity"
	opTri       = "Tri"
	opArange    = "Arange"
	opLinspace  = "Linspace"
	opLogspace  = "Logspace"
)

// newTensor allocates zeroed storage for a validated shape.
// Internal: shape is cloned, so callers may reuse their slice.
func newTensor(s Shape, dt DType) *Tensor {
	return &Tensor{data: make([]float64, s.Numel()), shape: s.Clone(), dtype: dt}
}

// New allocates a zero-initialized tensor of the given shape.
// Stage 1 (Validate): every extent must be non-negative.
// Stage 2 (Prepare): resolve options, allocate flat storage.
// Complexity: O(numel) time and memory.
func New(shape Shape, opts ...Option) (*Tensor, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, tensorErrorf(opNew, err)
	}
	o := gatherOptions(opts...)

	return newTensor(shape, o.dtype), nil
}

// Zeros returns a tensor of the given shape filled with 0.
func Zeros(shape Shape, opts ...Option) (*Tensor, error) {
	t, err := New(shape, opts...)
	if err != nil {
		return nil, tensorErrorf(opZeros, err)
	}

	return t, nil
}

// Ones returns a tensor of the given shape filled with 1.
func Ones(shape Shape, opts ...Option) (*Tensor, error) {
	return fill(opOnes, shape, 1, opts...)
}

// Full returns a tensor of the given shape filled with fillValue.
func Full(shape Shape, fillValue float64, opts ...Option) (*Tensor, error) {
	return fill(opFull, shape, fillValue, opts...)
}

// Empty returns a tensor of the given shape with zeroed storage.
// Go has no uninitialized allocation, so Empty and Zeros coincide.
func Empty(shape Shape, opts ...Option) (*Tensor, error) {
	t, err := New(shape, opts...)
	if err != nil {
		return nil, tensorErrorf(opEmpty, err)
	}

	return t, nil
}

// fill shares validation/allocation between Ones and Full.
func fill(opTag string, shape Shape, v float64, opts ...Option) (*Tensor, error) {
	t, err := New(shape, opts...)
	if err != nil {
		return nil, tensorErrorf(opTag, err)
	}
	for i := range t.data {
		t.data[i] = v
	}

	return t, nil
}

// FromScalar wraps a single value as a 0-d tensor.
func FromScalar(v float64, opts ...Option) *Tensor {
	o := gatherOptions(opts...)
	t := newTensor(nil, o.dtype)
	t.data[0] = v

	return t
}

// FromSlice copies data into a tensor of the given shape.
// Stage 1 (Validate): shape extents non-negative, numel == len(data).
// Stage 2 (Execute): copy into fresh storage (caller keeps ownership).
// Complexity: O(numel).
func FromSlice(data []float64, shape Shape, opts ...Option) (*Tensor, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, tensorErrorf(opFromSlice, err)
	}
	if shape.Numel() != len(data) {
		return nil, tensorErrorf(opFromSlice, ErrBadShape)
	}
	o := gatherOptions(opts...)
	t := newTensor(shape, o.dtype)
	copy(t.data, data)

	return t, nil
}

// FromVector copies a flat slice into a 1-d tensor.
func FromVector(data []float64, opts ...Option) *Tensor {
	o := gatherOptions(opts...)
	t := newTensor(Shape{len(data)}, o.dtype)
	copy(t.data, data)

	return t
}

// FromRows copies a rectangular [][]float64 into a 2-d tensor.
// Ragged input is rejected with ErrBadShape.
// Complexity: O(rows·cols).
func FromRows(rows [][]float64, opts ...Option) (*Tensor, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	o := gatherOptions(opts...)
	t := newTensor(Shape{r, c}, o.dtype)
	for i, row := range rows {
		if len(row) != c {
			return nil, tensorErrorf(opFromRows, ErrBadShape)
		}
		copy(t.data[i*c:(i+1)*c], row)
	}

	return t, nil
}

// Eye returns an n×m matrix with ones on the k-th diagonal (k>0 above the
// main diagonal, k<0 below) and zeros elsewhere.
// Complexity: O(n·m).
func Eye(n, m, k int, opts ...Option) (*Tensor, error) {
	if n < 0 || m < 0 {
		return nil, tensorErrorf(opEye, ErrBadShape)
	}
	o := gatherOptions(opts...)
	t := newTensor(Shape{n, m}, o.dtype)
	for i := 0; i < n; i++ {
		j := i + k
		if j >= 0 && j < m {
			t.data[i*m+j] = 1
		}
	}

	return t, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int, opts ...Option) (*Tensor, error) {
	t, err := Eye(n, n, 0, opts...)
	if err != nil {
		return nil, tensorErrorf(opIdentity, ErrBadShape)
	}

	return t, nil
}

// Tri returns an n×m matrix with ones at and below the k-th diagonal
// (column j ≤ row i + k) and zeros elsewhere.
// Complexity: O(n·m).
func Tri(n, m, k int, opts ...Option) (*Tensor, error) {
	if n < 0 || m < 0 {
		return nil, tensorErrorf(opTri, ErrBadShape)
	}
	o := gatherOptions(opts...)
	t := newTensor(Shape{n, m}, o.dtype)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if j <= i+k {
				t.data[i*m+j] = 1
			}
		}
	}

	return t, nil
}

// Arange returns evenly spaced values in the half-open interval
// [start, stop) with the given step (negative steps count down).
// Stage 1 (Validate): step must be non-zero and finite.
// Stage 2 (Execute): count = ceil((stop-start)/step), clamped at zero;
// element i is start + i·step.
// Complexity: O(count).
func Arange(start, stop, step float64, opts ...Option) (*Tensor, error) {
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, tensorErrorf(opArange, ErrBadCount)
	}
	count := int(math.Ceil((stop - start) / step))
	if count < 0 {
		count = 0
	}
	o := gatherOptions(opts...)
	t := newTensor(Shape{count}, o.dtype)
	for i := 0; i < count; i++ {
		t.data[i] = start + float64(i)*step
	}

	return t, nil
}

// Linspace returns num evenly spaced values from start to stop.
// With endpoint=true both ends are included (gonum floats.Span); with
// endpoint=false the spacing is (stop-start)/num and stop is excluded.
// Complexity: O(num).
func Linspace(start, stop float64, num int, endpoint bool, opts ...Option) (*Tensor, error) {
	if num < 0 {
		return nil, tensorErrorf(opLinspace, ErrBadCount)
	}
	o := gatherOptions(opts...)
	t := newTensor(Shape{num}, o.dtype)
	switch {
	case num == 0:
		// nothing to fill
	case num == 1:
		t.data[0] = start
	case endpoint:
		floats.Span(t.data, start, stop)
	default:
		step := (stop - start) / float64(num)
		for i := 0; i < num; i++ {
			t.data[i] = start + float64(i)*step
		}
	}

	return t, nil
}

// Logspace returns num values spaced evenly on a log scale: base raised to
// the exponents Linspace(start, stop, num, endpoint).
// Complexity: O(num).
func Logspace(start, stop float64, num int, endpoint bool, base float64, opts ...Option) (*Tensor, error) {
	exps, err := Linspace(start, stop, num, endpoint, opts...)
	if err != nil {
		return nil, tensorErrorf(opLogspace, ErrBadCount)
	}
	for i, e := range exps.data {
		exps.data[i] = math.Pow(base, e)
	}

	return exps, nil
}
