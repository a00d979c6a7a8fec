// Package quantity: shape methods. Rearranging a buffer never changes its
// physics, so every method here keeps the receiver's Dimension.
package quantity

import (
	"github.com/katalvlaran/dimq/dim"
	"github.com/katalvlaran/dimq/tensor"
)

const opFillDiagonal = "FillDiagonal"

// Reshape returns a view with a new shape of equal element count (one extent
// may be -1). The buffer is shared with the receiver.
func (q Quantity) Reshape(shape tensor.Shape) (Quantity, error) {
	t, err := tensor.Reshape(q.value, shape)

	return derive(t, err, q.d)
}

// Ravel returns a flat 1-d view over the receiver's buffer.
func (q Quantity) Ravel() (Quantity, error) {
	t, err := tensor.Ravel(q.value)

	return derive(t, err, q.d)
}

// Transpose reverses the axis order (matrices transpose, vectors and scalars
// copy through).
func (q Quantity) Transpose() (Quantity, error) {
	t, err := tensor.Transpose(q.value)

	return derive(t, err, q.d)
}

// Tril keeps the elements on and below the k-th diagonal of a matrix.
func (q Quantity) Tril(k int) (Quantity, error) {
	t, err := tensor.Tril(q.value, k)

	return derive(t, err, q.d)
}

// Triu keeps the elements on and above the k-th diagonal of a matrix.
func (q Quantity) Triu(k int) (Quantity, error) {
	t, err := tensor.Triu(q.value, k)

	return derive(t, err, q.d)
}

// Diag extracts the k-th diagonal of a matrix, or builds a matrix with a
// vector on its k-th diagonal.
func (q Quantity) Diag(k int) (Quantity, error) {
	t, err := tensor.Diag(q.value, k)

	return derive(t, err, q.d)
}

// Split cuts the receiver into equally sized sections along an axis. Every
// part keeps the receiver's Dimension.
func (q Quantity) Split(sections, axis int) ([]Quantity, error) {
	ts, err := tensor.Split(q.value, sections, axis)
	if err != nil {
		return nil, err
	}

	return q.wrapAll(ts), nil
}

// ArraySplit is Split that tolerates uneven sections (NumPy array_split).
func (q Quantity) ArraySplit(sections, axis int) ([]Quantity, error) {
	ts, err := tensor.ArraySplit(q.value, sections, axis)
	if err != nil {
		return nil, err
	}

	return q.wrapAll(ts), nil
}

// SplitAt cuts the receiver at explicit indices along an axis.
func (q Quantity) SplitAt(indices []int, axis int) ([]Quantity, error) {
	ts, err := tensor.SplitAt(q.value, indices, axis)
	if err != nil {
		return nil, err
	}

	return q.wrapAll(ts), nil
}

// wrapAll tags every part with the receiver's Dimension.
func (q Quantity) wrapAll(ts []*tensor.Tensor) []Quantity {
	out := make([]Quantity, len(ts))
	for i, t := range ts {
		out[i] = Quantity{value: t, d: q.d}
	}

	return out
}

// FillDiagonal overwrites the main diagonal of a matrix in place with a
// scalar value. The value's Dimension must equal the receiver's and its
// buffer must hold exactly one element; any violation is reported before
// the buffer is touched. This is the single mutating method of the type.
func (q Quantity) FillDiagonal(val Quantity, wrap bool) error {
	if err := dim.CheckSame(opFillDiagonal, q.d, val.d); err != nil {
		return err
	}
	if val.value == nil {
		return quantityErrorf(opFillDiagonal, ErrNilBuffer)
	}
	if val.Size() != 1 {
		return quantityErrorf(opFillDiagonal, tensor.ErrBadShape)
	}

	return tensor.FillDiagonal(q.value, val.value.Data()[0], wrap)
}
