// Package umath: the Operand variant and operand coercion.
package umath

import (
	"github.com/katalvlaran/dimq/dim"
	"github.com/katalvlaran/dimq/quantity"
	"github.com/katalvlaran/dimq/tensor"
)

const opCoerce = "Coerce"

// Operand is the closed operand variant of the dispatcher: either a bare
// numeric buffer or a buffer tagged with a Dimension. It is a small value
// struct; the buffer is shared, never copied.
//
// The representation is canonical: a Dimensioned operand never carries the
// zero Dimension (construction collapses it to bare), so IsQuantity is
// equivalent to "carries physics".
type Operand struct {
	buf         *tensor.Tensor
	d           dim.Dimension
	dimensioned bool
}

// Bare wraps a plain buffer.
func Bare(t *tensor.Tensor) Operand { return Operand{buf: t} }

// BareScalar wraps a plain 0-d scalar.
func BareScalar(v float64) Operand { return Operand{buf: tensor.FromScalar(v)} }

// Dimensioned wraps a buffer with Dimension d. The zero Dimension collapses
// to a bare Operand, keeping the representation canonical.
func Dimensioned(t *tensor.Tensor, d dim.Dimension) Operand {
	if d.IsDimensionless() {
		return Operand{buf: t}
	}

	return Operand{buf: t, d: d, dimensioned: true}
}

// FromQuantity converts a Quantity into an Operand (dimensionless
// Quantities become bare).
func FromQuantity(q quantity.Quantity) Operand {
	return Dimensioned(q.Value(), q.Dim())
}

// IsQuantity reports whether the Operand carries a Dimension.
func (o Operand) IsQuantity() bool { return o.dimensioned }

// Tensor returns the underlying buffer, whatever the variant.
func (o Operand) Tensor() *tensor.Tensor { return o.buf }

// Dim returns the carried Dimension; bare Operands read as Dimensionless.
func (o Operand) Dim() dim.Dimension {
	if !o.dimensioned {
		return dim.Dimensionless
	}

	return o.d
}

// Quantity rebuilds the Quantity view of a dimensioned Operand.
// The second result is false for bare Operands.
func (o Operand) Quantity() (quantity.Quantity, bool) {
	if !o.dimensioned || o.buf == nil {
		return quantity.Quantity{}, false
	}

	return quantity.MustNew(o.buf, o.d), true
}

// String renders like a Quantity: "<values> <dim>", values alone when bare.
func (o Operand) String() string {
	if o.buf == nil {
		return "Operand{}"
	}
	if !o.dimensioned {
		return o.buf.String()
	}

	return o.buf.String() + " " + o.d.String()
}

// Coerce converts an arbitrary caller value into an Operand.
//
// Accepted kinds: Operand, quantity.Quantity, *tensor.Tensor, float64,
// float32, int, int64, []float64, []int (Int64-tagged), [][]float64,
// []quantity.Quantity (stacked; units must agree) and []any (elements
// coerced recursively, then stacked under one shared Dimension, where bare
// elements count as dimensionless). Anything else yields a *TypeError
// wrapping ErrUnsupportedType.
func Coerce(v any) (Operand, error) {
	return coerce(opCoerce, v)
}

// coerce is Coerce with the calling operation's tag for error payloads.
func coerce(op string, v any) (Operand, error) {
	switch x := v.(type) {
	case Operand:
		return x, nil
	case quantity.Quantity:
		return FromQuantity(x), nil
	case *tensor.Tensor:
		return Bare(x), nil
	case float64:
		return BareScalar(x), nil
	case float32:
		return BareScalar(float64(x)), nil
	case int:
		return BareScalar(float64(x)), nil
	case int64:
		return BareScalar(float64(x)), nil
	case []float64:
		return Bare(tensor.FromVector(x)), nil
	case []int:
		data := make([]float64, len(x))
		for i, n := range x {
			data[i] = float64(n)
		}

		return Bare(tensor.FromVector(data, tensor.WithDType(tensor.Int64))), nil
	case [][]float64:
		t, err := tensor.FromRows(x)
		if err != nil {
			return Operand{}, err
		}

		return Bare(t), nil
	case []quantity.Quantity:
		q, err := quantity.FromQuantities(x)
		if err != nil {
			return Operand{}, err
		}

		return FromQuantity(q), nil
	case []any:
		return coerceSequence(op, x)
	default:
		return Operand{}, &TypeError{Op: op, Value: v}
	}
}

// coerceSequence coerces every element, requires one shared Dimension
// (bare elements count as dimensionless) and stacks the buffers along a
// new leading axis.
func coerceSequence(op string, xs []any) (Operand, error) {
	if len(xs) == 0 {
		return Operand{}, umathErrorf(op, quantity.ErrEmptySequence)
	}

	elems := make([]Operand, len(xs))
	for i, x := range xs {
		e, err := coerce(op, x)
		if err != nil {
			return Operand{}, err
		}
		elems[i] = e
	}

	shared := elems[0].Dim()
	ts := make([]*tensor.Tensor, len(elems))
	for i, e := range elems {
		if e.Dim() != shared {
			return Operand{}, umathErrorf(op, quantity.ErrUnitsDisagree)
		}
		ts[i] = e.Tensor()
	}

	t, err := tensor.Stack(ts)
	if err != nil {
		return Operand{}, err
	}

	return Dimensioned(t, shared), nil
}

// coerceAll maps coerce over an operand list.
func coerceAll(op string, vs ...any) ([]Operand, error) {
	out := make([]Operand, len(vs))
	for i, v := range vs {
		o, err := coerce(op, v)
		if err != nil {
			return nil, err
		}
		out[i] = o
	}

	return out, nil
}
