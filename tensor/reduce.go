// SPDX-License-Identifier: MIT
// Package tensor: reduction kernels (full-tensor and per-axis) plus their
// cumulative and NaN-skipping variants.
//
// Purpose:
//   - Full reductions return plain float64 scalars; axis reductions return a
//     tensor with the reduced axis removed; cumulative kernels either flatten
//     (no axis) or preserve shape (per-axis), following the NumPy catalogue.
//   - Flat accumulation delegates to gonum: floats.Sum/Prod/Max/Min/CumSum/
//     CumProd and stat.Mean/Variance/PopVariance and their StdDev twins.
//
// Determinism:
//   - Axis kernels decompose the buffer into outer·axis·inner spans and walk
//     them in fixed order; results are bit-stable across runs.

package tensor

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Operation tags for unified error wrapping (no magic strings).
const (
	opSum     = "Sum"
	opProd    = "Prod"
	opMean    = "Mean"
	opVar     = "Var"
	opStd     = "Std"
	opMax     = "Max"
	opMin     = "Min"
	opCumSum  = "CumSum"
	opCumProd = "CumProd"
	opNaNProd = "NaNProd"
	opNaNVar  = "NaNVar"
)

// axisSpans decomposes the flat buffer around a validated axis:
// index(o, k, in) = (o·n + k)·inner + in for o<outer, k<n, in<inner.
func (t *Tensor) axisSpans(axis int) (outer, n, inner int) {
	n = t.shape[axis]
	outer, inner = 1, 1
	for i := 0; i < axis; i++ {
		outer *= t.shape[i]
	}
	for i := axis + 1; i < len(t.shape); i++ {
		inner *= t.shape[i]
	}

	return outer, n, inner
}

// removeAxis returns the shape with one axis dropped.
func removeAxis(s Shape, axis int) Shape {
	out := make(Shape, 0, len(s)-1)
	out = append(out, s[:axis]...)
	out = append(out, s[axis+1:]...)

	return out
}

// ---------- Full reductions ----------

// SumAll returns the sum of every element (0 for empty tensors).
func SumAll(t *Tensor) (float64, error) {
	if t == nil {
		return 0, tensorErrorf(opSum, ErrNilTensor)
	}

	return floats.Sum(t.data), nil
}

// ProdAll returns the product of every element (1 for empty tensors).
func ProdAll(t *Tensor) (float64, error) {
	if t == nil {
		return 0, tensorErrorf(opProd, ErrNilTensor)
	}

	return floats.Prod(t.data), nil
}

// MeanAll returns the arithmetic mean. Empty tensors are rejected.
func MeanAll(t *Tensor) (float64, error) {
	if t == nil {
		return 0, tensorErrorf(opMean, ErrNilTensor)
	}
	if len(t.data) == 0 {
		return 0, tensorErrorf(opMean, ErrEmptyInput)
	}

	return stat.Mean(t.data, nil), nil
}

// VarAll returns the variance with the given delta degrees of freedom:
// ddof=0 is the population variance (the NumPy default), ddof=1 the sample
// variance. Requires numel > ddof.
func VarAll(t *Tensor, ddof int) (float64, error) {
	if t == nil {
		return 0, tensorErrorf(opVar, ErrNilTensor)
	}

	return varSlice(opVar, t.data, ddof)
}

// StdAll returns sqrt(VarAll).
func StdAll(t *Tensor, ddof int) (float64, error) {
	v, err := VarAll(t, ddof)
	if err != nil {
		return 0, tensorErrorf(opStd, err)
	}

	return math.Sqrt(v), nil
}

// varSlice dispatches ddof 0/1 to the gonum estimators and computes the
// general denominator n-ddof manually otherwise.
func varSlice(opTag string, xs []float64, ddof int) (float64, error) {
	n := len(xs)
	if n-ddof <= 0 {
		return 0, tensorErrorf(opTag, ErrEmptyInput)
	}
	switch ddof {
	case 0:
		return stat.PopVariance(xs, nil), nil
	case 1:
		return stat.Variance(xs, nil), nil
	default:
		mu := stat.Mean(xs, nil)
		var acc float64
		for _, v := range xs {
			d := v - mu
			acc += d * d
		}

		return acc / float64(n-ddof), nil
	}
}

// MaxAll returns the largest element. Empty tensors are rejected
// (gonum floats.Max would panic on them).
func MaxAll(t *Tensor) (float64, error) {
	if t == nil {
		return 0, tensorErrorf(opMax, ErrNilTensor)
	}
	if len(t.data) == 0 {
		return 0, tensorErrorf(opMax, ErrEmptyInput)
	}

	return floats.Max(t.data), nil
}

// MinAll returns the smallest element. Empty tensors are rejected.
func MinAll(t *Tensor) (float64, error) {
	if t == nil {
		return 0, tensorErrorf(opMin, ErrNilTensor)
	}
	if len(t.data) == 0 {
		return 0, tensorErrorf(opMin, ErrEmptyInput)
	}

	return floats.Min(t.data), nil
}

// ---------- NaN-skipping reductions ----------

// NaNProdAll returns the product over non-NaN elements (NaN counts as 1).
func NaNProdAll(t *Tensor) (float64, error) {
	if t == nil {
		return 0, tensorErrorf(opNaNProd, ErrNilTensor)
	}
	acc := 1.0
	for _, v := range t.data {
		if !math.IsNaN(v) {
			acc *= v
		}
	}

	return acc, nil
}

// NaNVarAll returns the variance over non-NaN elements only.
// Requires more than ddof valid elements.
func NaNVarAll(t *Tensor, ddof int) (float64, error) {
	if t == nil {
		return 0, tensorErrorf(opNaNVar, ErrNilTensor)
	}
	valid := make([]float64, 0, len(t.data))
	for _, v := range t.data {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}

	return varSlice(opNaNVar, valid, ddof)
}

// ---------- Axis reductions ----------

// foldAxis reduces one axis with an accumulator function, producing a tensor
// with that axis removed. Shared by Sum/Prod/Max/Min axis kernels.
// Complexity: O(numel).
func foldAxis(opTag string, t *Tensor, axis int, dt DType, init float64, f func(acc, v float64) float64) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opTag, ErrNilTensor)
	}
	ax, err := ValidateAxis(axis, len(t.shape))
	if err != nil {
		return nil, tensorErrorf(opTag, err)
	}
	outer, n, inner := t.axisSpans(ax)
	out := newTensor(removeAxis(t.shape, ax), dt)
	for o := 0; o < outer; o++ {
		base := o * n * inner
		for in := 0; in < inner; in++ {
			acc := init
			for k := 0; k < n; k++ {
				acc = f(acc, t.data[base+k*inner+in])
			}
			out.data[o*inner+in] = acc
		}
	}

	return out, nil
}

// SumAxis sums along one axis (negative axes count from the end).
func SumAxis(t *Tensor, axis int) (*Tensor, error) {
	return foldAxis(opSum, t, axis, t.reduceDType(), 0, func(acc, v float64) float64 { return acc + v })
}

// ProdAxis multiplies along one axis.
func ProdAxis(t *Tensor, axis int) (*Tensor, error) {
	return foldAxis(opProd, t, axis, t.reduceDType(), 1, func(acc, v float64) float64 { return acc * v })
}

// MaxAxis takes the maximum along one axis. The reduced axis must be
// non-empty (an empty axis has no maximum).
func MaxAxis(t *Tensor, axis int) (*Tensor, error) {
	if err := validateReducedAxis(t, axis); err != nil {
		return nil, tensorErrorf(opMax, err)
	}

	return foldAxis(opMax, t, axis, t.reduceDType(), math.Inf(-1), math.Max)
}

// MinAxis takes the minimum along one axis. The reduced axis must be
// non-empty.
func MinAxis(t *Tensor, axis int) (*Tensor, error) {
	if err := validateReducedAxis(t, axis); err != nil {
		return nil, tensorErrorf(opMin, err)
	}

	return foldAxis(opMin, t, axis, t.reduceDType(), math.Inf(1), math.Min)
}

// validateReducedAxis rejects nil tensors and zero-extent reduction axes.
func validateReducedAxis(t *Tensor, axis int) error {
	if t == nil {
		return ErrNilTensor
	}
	ax, err := ValidateAxis(axis, len(t.shape))
	if err != nil {
		return err
	}
	if t.shape[ax] == 0 {
		return ErrEmptyInput
	}

	return nil
}

// MeanAxis averages along one axis.
func MeanAxis(t *Tensor, axis int) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opMean, ErrNilTensor)
	}
	ax, err := ValidateAxis(axis, len(t.shape))
	if err != nil {
		return nil, tensorErrorf(opMean, err)
	}
	if t.shape[ax] == 0 {
		return nil, tensorErrorf(opMean, ErrEmptyInput)
	}
	sum, err := SumAxis(t, ax)
	if err != nil {
		return nil, err
	}
	sum.dtype = Float64
	floats.ScaleTo(sum.data, 1/float64(t.shape[ax]), sum.data)

	return sum, nil
}

// VarAxis computes the variance along one axis with the given ddof
// (two-pass: per-lane mean, then squared deviations over n-ddof).
// Complexity: O(numel), two sweeps.
func VarAxis(t *Tensor, axis int, ddof int) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opVar, ErrNilTensor)
	}
	ax, err := ValidateAxis(axis, len(t.shape))
	if err != nil {
		return nil, tensorErrorf(opVar, err)
	}
	outer, n, inner := t.axisSpans(ax)
	if n-ddof <= 0 {
		return nil, tensorErrorf(opVar, ErrEmptyInput)
	}
	mu, err := MeanAxis(t, ax)
	if err != nil {
		return nil, err
	}
	out := newTensor(removeAxis(t.shape, ax), Float64)
	for o := 0; o < outer; o++ {
		base := o * n * inner
		for in := 0; in < inner; in++ {
			m := mu.data[o*inner+in]
			var acc float64
			for k := 0; k < n; k++ {
				d := t.data[base+k*inner+in] - m
				acc += d * d
			}
			out.data[o*inner+in] = acc / float64(n-ddof)
		}
	}

	return out, nil
}

// ---------- Cumulative kernels ----------

// CumSum returns the running sum over the flattened buffer (1-d result),
// the NumPy behavior when no axis is given.
func CumSum(t *Tensor) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opCumSum, ErrNilTensor)
	}
	out := newTensor(Shape{len(t.data)}, t.reduceDType())
	floats.CumSum(out.data, t.data)

	return out, nil
}

// CumProd returns the running product over the flattened buffer.
func CumProd(t *Tensor) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opCumProd, ErrNilTensor)
	}
	out := newTensor(Shape{len(t.data)}, t.reduceDType())
	floats.CumProd(out.data, t.data)

	return out, nil
}

// NaNCumProd returns the running product with NaN treated as 1.
func NaNCumProd(t *Tensor) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opNaNProd, ErrNilTensor)
	}
	out := newTensor(Shape{len(t.data)}, t.reduceDType())
	acc := 1.0
	for i, v := range t.data {
		if !math.IsNaN(v) {
			acc *= v
		}
		out.data[i] = acc
	}

	return out, nil
}

// CumSumAxis returns the running sum along one axis, shape preserved.
func CumSumAxis(t *Tensor, axis int) (*Tensor, error) {
	return scanAxis(opCumSum, t, axis, 0, func(acc, v float64) float64 { return acc + v })
}

// CumProdAxis returns the running product along one axis, shape preserved.
func CumProdAxis(t *Tensor, axis int) (*Tensor, error) {
	return scanAxis(opCumProd, t, axis, 1, func(acc, v float64) float64 { return acc * v })
}

// scanAxis shares the per-lane running-accumulator walk of the cumulative
// axis kernels. Complexity: O(numel).
func scanAxis(opTag string, t *Tensor, axis int, init float64, f func(acc, v float64) float64) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opTag, ErrNilTensor)
	}
	ax, err := ValidateAxis(axis, len(t.shape))
	if err != nil {
		return nil, tensorErrorf(opTag, err)
	}
	outer, n, inner := t.axisSpans(ax)
	out := newTensor(t.shape, t.reduceDType())
	for o := 0; o < outer; o++ {
		base := o * n * inner
		for in := 0; in < inner; in++ {
			acc := init
			for k := 0; k < n; k++ {
				acc = f(acc, t.data[base+k*inner+in])
				out.data[base+k*inner+in] = acc
			}
		}
	}

	return out, nil
}

// reduceDType keeps Int64 tagging through additive/multiplicative folds and
// upgrades Bool to Int64 (counting semantics).
func (t *Tensor) reduceDType() DType {
	if t == nil {
		return Float64
	}
	switch t.dtype {
	case Int64, Bool:
		return Int64
	default:
		return Float64
	}
}
