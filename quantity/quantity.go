// Package quantity: the Quantity value type, constructors and accessors.
package quantity

import (
	"github.com/katalvlaran/dimq/dim"
	"github.com/katalvlaran/dimq/tensor"
)

// Operation tags for error wrapping (shared with the method files).
const (
	opNew            = "New"
	opFromQuantities = "FromQuantities"
	opAt             = "At"
)

// Internal panic messages (programmer errors only; no magic strings).
const panicMustNew = "quantity: MustNew: "

// Quantity is a numeric tensor tagged with a physical Dimension. It is a
// small value struct: copying a Quantity copies the Dimension and shares the
// underlying buffer. The Dimension is fixed at construction; methods derive
// fresh Quantities and never rewrite the receiver's Dimension.
//
// The zero Quantity has a nil buffer and is not usable; construct via New or
// the From* helpers.
type Quantity struct {
	value *tensor.Tensor
	d     dim.Dimension
}

// New wraps an existing tensor buffer with Dimension d.
// A nil buffer yields ErrNilBuffer.
func New(t *tensor.Tensor, d dim.Dimension) (Quantity, error) {
	if t == nil {
		return Quantity{}, quantityErrorf(opNew, ErrNilBuffer)
	}

	return Quantity{value: t, d: d}, nil
}

// MustNew is New that panics on error. For literals in tests and examples.
func MustNew(t *tensor.Tensor, d dim.Dimension) Quantity {
	q, err := New(t, d)
	if err != nil {
		panic(panicMustNew + err.Error())
	}

	return q
}

// FromScalar builds a 0-d Quantity holding v with Dimension d.
func FromScalar(v float64, d dim.Dimension) Quantity {
	return Quantity{value: tensor.FromScalar(v), d: d}
}

// FromSlice builds a 1-d Quantity over a copy of data with Dimension d.
func FromSlice(data []float64, d dim.Dimension) Quantity {
	return Quantity{value: tensor.FromVector(data), d: d}
}

// FromRows builds a 2-d Quantity from equally sized rows with Dimension d.
// Ragged rows yield tensor.ErrBadShape.
func FromRows(rows [][]float64, d dim.Dimension) (Quantity, error) {
	t, err := tensor.FromRows(rows)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{value: t, d: d}, nil
}

// FromQuantities stacks equally shaped Quantities along a new leading axis.
// All elements must carry the same Dimension: the first disagreement yields
// ErrUnitsDisagree before any buffer is touched. An empty sequence yields
// ErrEmptySequence; shape disagreement surfaces as tensor.ErrShapeMismatch.
func FromQuantities(qs []Quantity) (Quantity, error) {
	if len(qs) == 0 {
		return Quantity{}, quantityErrorf(opFromQuantities, ErrEmptySequence)
	}

	d := qs[0].d
	ts := make([]*tensor.Tensor, len(qs))
	for i, q := range qs {
		if q.d != d {
			return Quantity{}, quantityErrorf(opFromQuantities, ErrUnitsDisagree)
		}
		ts[i] = q.value
	}

	t, err := tensor.Stack(ts)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{value: t, d: d}, nil
}

// Value returns the wrapped buffer. The buffer is shared, not copied;
// mutating it mutates the Quantity.
func (q Quantity) Value() *tensor.Tensor { return q.value }

// Dim returns the Dimension.
func (q Quantity) Dim() dim.Dimension { return q.d }

// IsDimensionless reports whether the Dimension is the zero vector.
func (q Quantity) IsDimensionless() bool { return q.d.IsDimensionless() }

// Shape returns a copy of the buffer shape (nil buffer reads as 0-d).
func (q Quantity) Shape() tensor.Shape {
	if q.value == nil {
		return tensor.Shape{}
	}

	return q.value.Shape()
}

// NDim returns the buffer rank.
func (q Quantity) NDim() int {
	if q.value == nil {
		return 0
	}

	return q.value.NDim()
}

// Size returns the buffer element count.
func (q Quantity) Size() int {
	if q.value == nil {
		return 0
	}

	return q.value.Size()
}

// DType returns the buffer dtype tag.
func (q Quantity) DType() tensor.DType {
	if q.value == nil {
		return tensor.Float64
	}

	return q.value.DType()
}

// At returns the element at the index tuple as a 0-d Quantity carrying the
// receiver's Dimension. Index errors surface as tensor.ErrOutOfRange.
func (q Quantity) At(ix ...int) (Quantity, error) {
	if q.value == nil {
		return Quantity{}, quantityErrorf(opAt, ErrNilBuffer)
	}
	v, err := q.value.At(ix...)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{value: tensor.FromScalar(v, tensor.WithDType(q.value.DType())), d: q.d}, nil
}

// Clone returns a deep copy: fresh buffer, same Dimension.
func (q Quantity) Clone() Quantity {
	if q.value == nil {
		return Quantity{d: q.d}
	}

	return Quantity{value: q.value.Clone(), d: q.d}
}

// String renders "<values> <dim>", or just the values when dimensionless:
// "[3, 4] L·T^-1", "2.5 M", "[1, 2]".
func (q Quantity) String() string {
	if q.value == nil {
		return "Quantity{}"
	}
	if q.d.IsDimensionless() {
		return q.value.String()
	}

	return q.value.String() + " " + q.d.String()
}
