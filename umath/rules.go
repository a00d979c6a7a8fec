// Package umath: the four propagation rules as internal combinators.
//
// Every catalogue operation reduces to one combinator; the combinator owns
// the order of work (coerce → Dimension rule → kernel → wrap), so eager
// checking and the unitless collapse hold uniformly across the catalogue
// instead of being re-stated per operation.
package umath

import (
	"github.com/katalvlaran/dimq/dim"
	"github.com/katalvlaran/dimq/tensor"
)

// unaryKernel / binaryKernel are the engine call shapes the combinators
// drive. Options-bearing operations close over their resolved Options to
// fit these shapes.
type (
	unaryKernel  func(*tensor.Tensor) (*tensor.Tensor, error)
	binaryKernel func(a, b *tensor.Tensor) (*tensor.Tensor, error)
)

// wrap is the single exit of every rule: kernel errors pass through, a
// Dimensionless result collapses to a bare Operand (Dimensioned already
// normalizes), anything else comes back tagged.
func wrap(t *tensor.Tensor, err error, d dim.Dimension) (Operand, error) {
	if err != nil {
		return Operand{}, err
	}

	return Dimensioned(t, d), nil
}

// wrapAll tags every buffer of a multi-result kernel with one Dimension,
// collapsing dimensionless parts like wrap does.
func wrapAll(ts []*tensor.Tensor, d dim.Dimension) []Operand {
	out := make([]Operand, len(ts))
	for i, t := range ts {
		out[i] = Dimensioned(t, d)
	}

	return out
}

// coercePair coerces two operands under one operation tag.
func coercePair(op string, a, b any) (Operand, Operand, error) {
	x, err := coerce(op, a)
	if err != nil {
		return Operand{}, Operand{}, err
	}
	y, err := coerce(op, b)
	if err != nil {
		return Operand{}, Operand{}, err
	}

	return x, y, nil
}

// notNil guards Operands whose buffer is inspected before any kernel call;
// kernels validate their own inputs.
func notNil(op string, os ...Operand) error {
	for _, o := range os {
		if o.buf == nil {
			return umathErrorf(op, tensor.ErrNilTensor)
		}
	}

	return nil
}

// scalarOf extracts the single element of a one-element Operand; range
// bounds and fill values must be scalars.
func scalarOf(op string, o Operand) (float64, error) {
	if o.buf == nil {
		return 0, umathErrorf(op, tensor.ErrNilTensor)
	}
	if o.buf.Size() != 1 {
		return 0, umathErrorf(op, tensor.ErrBadShape)
	}

	return o.buf.Data()[0], nil
}

// ---------- rule 1: unit-preserving ----------

// keepUnary applies a Dimension-preserving unary kernel.
func keepUnary(op string, v any, kernel unaryKernel) (Operand, error) {
	x, err := coerce(op, v)
	if err != nil {
		return Operand{}, err
	}
	t, err := kernel(x.buf)

	return wrap(t, err, x.Dim())
}

// keepBinary verifies both operands carry one Dimension (bare reads as
// Dimensionless, so a bare operand only ever matches a bare or
// dimensionless one) and keeps it. The check precedes the kernel.
func keepBinary(op string, a, b any, kernel binaryKernel) (Operand, error) {
	x, y, err := coercePair(op, a, b)
	if err != nil {
		return Operand{}, err
	}
	if err = dim.CheckSame(op, x.Dim(), y.Dim()); err != nil {
		return Operand{}, err
	}
	t, err := kernel(x.buf, y.buf)

	return wrap(t, err, x.Dim())
}

// ---------- rule 2: unit-transforming ----------

// transformUnary applies a unary kernel and maps the operand Dimension
// through dimFn (d², d^1/2, d^1/3, d⁻¹, or identity for the product
// conventions).
func transformUnary(op string, v any, kernel unaryKernel, dimFn func(dim.Dimension) dim.Dimension) (Operand, error) {
	x, err := coerce(op, v)
	if err != nil {
		return Operand{}, err
	}
	t, err := kernel(x.buf)

	return wrap(t, err, dimFn(x.Dim()))
}

// ---------- rule 3: unit-combining ----------

// combineBinary merges the operand Dimensions through dimFn; a bare operand
// contributes Dimensionless, so bare/Quantity mixes are legal here.
func combineBinary(op string, a, b any, kernel binaryKernel, dimFn func(dx, dy dim.Dimension) dim.Dimension) (Operand, error) {
	x, y, err := coercePair(op, a, b)
	if err != nil {
		return Operand{}, err
	}
	t, err := kernel(x.buf, y.buf)

	return wrap(t, err, dimFn(x.Dim(), y.Dim()))
}

// ---------- rule 4: unit-checking pass-through ----------

// checkAgainst verifies every dimensioned Operand matches the reference
// Dimension. Bare Operands pass: under this rule they adopt the reference
// on the way out instead of being compared against it.
func checkAgainst(op string, ref dim.Dimension, ops ...Operand) error {
	for _, o := range ops {
		if !o.dimensioned {
			continue
		}
		if err := dim.CheckSame(op, ref, o.d); err != nil {
			return err
		}
	}

	return nil
}

// sharedDim resolves the Dimension a pass-through family call should carry:
// the first dimensioned Operand sets it, every other dimensioned Operand
// must match it, bare Operands adopt it.
func sharedDim(op string, ops ...Operand) (dim.Dimension, error) {
	d := dim.Dimensionless
	for _, o := range ops {
		if o.dimensioned {
			d = o.d
			break
		}
	}
	if err := checkAgainst(op, d, ops...); err != nil {
		return dim.Dimensionless, err
	}

	return d, nil
}

// unitOf resolves the result Dimension of a creation call from its source
// Operand and the WithUnit option: a declared unit is checked against a
// dimensioned source and attached to a bare one. It never overrides.
func unitOf(op string, o Options, src Operand) (dim.Dimension, error) {
	if !o.unitSet {
		return src.Dim(), nil
	}
	if src.dimensioned {
		if err := dim.CheckSame(op, src.d, o.unit); err != nil {
			return dim.Dimensionless, err
		}

		return src.d, nil
	}

	return o.unit, nil
}

// unitOrNone is unitOf for creation calls with no source operand: the
// declared unit attaches unconditionally.
func (o Options) unitOrNone() dim.Dimension {
	if !o.unitSet {
		return dim.Dimensionless
	}

	return o.unit
}
