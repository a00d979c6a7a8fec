// Package umath: the array-creation slice of the catalogue.
//
// Creation calls follow the unit-checking pass-through rule. A Dimension
// can enter a call two ways — carried by a source operand (fill value,
// prototype array, range bound) or declared via WithUnit — and the two must
// agree whenever both are present: WithUnit verifies against dimensioned
// operands and attaches to bare ones, never overriding. Results land in
// the usual collapse, so a dimensionless outcome is a bare Operand.
package umath

import (
	"github.com/katalvlaran/dimq/dim"
	"github.com/katalvlaran/dimq/tensor"
)

// Operation tags carried into error payloads.
const (
	opFull         = "Full"
	opFullLike     = "FullLike"
	opEye          = "Eye"
	opIdentity     = "Identity"
	opTri          = "Tri"
	opTril         = "Tril"
	opTriu         = "Triu"
	opDiag         = "Diag"
	opEmpty        = "Empty"
	opEmptyLike    = "EmptyLike"
	opOnes         = "Ones"
	opOnesLike     = "OnesLike"
	opZeros        = "Zeros"
	opZerosLike    = "ZerosLike"
	opAsarray      = "Asarray"
	opArange       = "Arange"
	opLinspace     = "Linspace"
	opLogspace     = "Logspace"
	opFillDiagonal = "FillDiagonal"
	opArraySplit   = "ArraySplit"
	opMeshgrid     = "Meshgrid"
	opVander       = "Vander"
)

// likeOpts keeps the prototype's dtype unless WithDType overrode it.
func likeOpts(o Options, proto *tensor.Tensor) []tensor.Option {
	if o.dtypeSet {
		return o.engineOpts()
	}

	return []tensor.Option{tensor.WithDType(proto.DType())}
}

// ---------- filled constructors ----------

// Full returns a tensor of the given shape filled with the scalar fill
// value; a dimensioned fill value hands its Dimension to the result.
func Full(shape tensor.Shape, fillValue any, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)
	f, err := coerce(opFull, fillValue)
	if err != nil {
		return Operand{}, err
	}
	d, err := unitOf(opFull, o, f)
	if err != nil {
		return Operand{}, err
	}
	v, err := scalarOf(opFull, f)
	if err != nil {
		return Operand{}, err
	}
	t, err := tensor.Full(shape, v, o.engineOpts()...)

	return wrap(t, err, d)
}

// FullLike returns a tensor shaped like a and filled with the scalar fill
// value. The result takes the FILL's Dimension: a dimensioned a must agree
// with a dimensioned fill, and a bare fill yields a bare result whatever a
// carries.
func FullLike(a, fillValue any, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)
	x, f, err := coercePair(opFullLike, a, fillValue)
	if err != nil {
		return Operand{}, err
	}
	if err = notNil(opFullLike, x); err != nil {
		return Operand{}, err
	}
	if x.dimensioned && f.dimensioned {
		if err = dim.CheckSame(opFullLike, x.d, f.d); err != nil {
			return Operand{}, err
		}
	}
	d, err := unitOf(opFullLike, o, f)
	if err != nil {
		return Operand{}, err
	}
	v, err := scalarOf(opFullLike, f)
	if err != nil {
		return Operand{}, err
	}
	t, err := tensor.Full(x.buf.Shape(), v, likeOpts(o, x.buf)...)

	return wrap(t, err, d)
}

// Eye returns the n×n identity-like matrix with ones on the k-th diagonal;
// WithCols widens it to n×m, WithK shifts the diagonal, WithUnit attaches a
// Dimension.
func Eye(n int, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)
	m := o.cols
	if m < 0 {
		m = n
	}
	t, err := tensor.Eye(n, m, o.k, o.engineOpts()...)

	return wrap(t, err, o.unitOrNone())
}

// Identity returns the n×n identity matrix; WithUnit attaches a Dimension.
func Identity(n int, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)
	t, err := tensor.Identity(n, o.engineOpts()...)

	return wrap(t, err, o.unitOrNone())
}

// Tri returns the n×n (or n×m with WithCols) matrix of ones at and below
// the k-th diagonal; WithUnit attaches a Dimension.
func Tri(n int, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)
	m := o.cols
	if m < 0 {
		m = n
	}
	t, err := tensor.Tri(n, m, o.k, o.engineOpts()...)

	return wrap(t, err, o.unitOrNone())
}

// Tril zeroes the entries above the k-th diagonal of a matrix operand; the
// operand's Dimension is kept, and WithUnit must agree with it.
func Tril(v any, opts ...Option) (Operand, error) {
	return triLike(opTril, v, tensor.Tril, opts)
}

// Triu zeroes the entries below the k-th diagonal; Dimension rule as Tril.
func Triu(v any, opts ...Option) (Operand, error) {
	return triLike(opTriu, v, tensor.Triu, opts)
}

// Diag extracts the k-th diagonal of a matrix, or builds a matrix from a
// vector on its k-th diagonal; Dimension rule as Tril.
func Diag(v any, opts ...Option) (Operand, error) {
	return triLike(opDiag, v, tensor.Diag, opts)
}

// triLike shares the coerce → unit check → k-parameterized kernel sequence
// of Tril, Triu and Diag.
func triLike(op string, v any, kernel func(*tensor.Tensor, int) (*tensor.Tensor, error), opts []Option) (Operand, error) {
	o := gatherOptions(opts...)
	x, err := coerce(op, v)
	if err != nil {
		return Operand{}, err
	}
	d, err := unitOf(op, o, x)
	if err != nil {
		return Operand{}, err
	}
	t, err := kernel(x.buf, o.k)

	return wrap(t, err, d)
}

// ---------- blank constructors ----------

// Empty returns a zeroed tensor of the given shape; WithUnit attaches a
// Dimension. Storage always starts zeroed, there is no uninitialized
// variant.
func Empty(shape tensor.Shape, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)
	t, err := tensor.Empty(shape, o.engineOpts()...)

	return wrap(t, err, o.unitOrNone())
}

// Ones returns a tensor of ones; WithUnit attaches a Dimension.
func Ones(shape tensor.Shape, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)
	t, err := tensor.Ones(shape, o.engineOpts()...)

	return wrap(t, err, o.unitOrNone())
}

// Zeros returns a tensor of zeros; WithUnit attaches a Dimension.
func Zeros(shape tensor.Shape, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)
	t, err := tensor.Zeros(shape, o.engineOpts()...)

	return wrap(t, err, o.unitOrNone())
}

// EmptyLike returns a zeroed tensor shaped and typed like a; a's Dimension
// is kept, and WithUnit must agree with it.
func EmptyLike(a any, opts ...Option) (Operand, error) {
	return blankLike(opEmptyLike, a, tensor.Empty, opts)
}

// OnesLike returns a tensor of ones shaped and typed like a; Dimension rule
// as EmptyLike.
func OnesLike(a any, opts ...Option) (Operand, error) {
	return blankLike(opOnesLike, a, tensor.Ones, opts)
}

// ZerosLike returns a tensor of zeros shaped and typed like a; Dimension
// rule as EmptyLike.
func ZerosLike(a any, opts ...Option) (Operand, error) {
	return blankLike(opZerosLike, a, tensor.Zeros, opts)
}

// blankLike shares the prototype-driven construction of EmptyLike, OnesLike
// and ZerosLike.
func blankLike(op string, a any, kernel func(tensor.Shape, ...tensor.Option) (*tensor.Tensor, error), opts []Option) (Operand, error) {
	o := gatherOptions(opts...)
	x, err := coerce(op, a)
	if err != nil {
		return Operand{}, err
	}
	if err = notNil(op, x); err != nil {
		return Operand{}, err
	}
	d, err := unitOf(op, o, x)
	if err != nil {
		return Operand{}, err
	}
	t, err := kernel(x.buf.Shape(), likeOpts(o, x.buf)...)

	return wrap(t, err, d)
}

// ---------- conversion ----------

// Asarray coerces an arbitrary value — Quantity, buffer, scalar, nested
// slice, or a sequence of Quantities that must share one Dimension — into
// an Operand. WithUnit verifies against a dimensioned source and attaches
// to a bare one; WithDType re-tags the buffer.
func Asarray(v any, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)
	x, err := coerce(opAsarray, v)
	if err != nil {
		return Operand{}, err
	}
	if err = notNil(opAsarray, x); err != nil {
		return Operand{}, err
	}
	d, err := unitOf(opAsarray, o, x)
	if err != nil {
		return Operand{}, err
	}
	buf := x.buf
	if o.dtypeSet {
		buf = buf.AsType(o.dtype)
	}

	return wrap(buf, nil, d)
}

// Array is the catalogue alias of Asarray.
func Array(v any, opts ...Option) (Operand, error) { return Asarray(v, opts...) }

// ---------- ranges ----------

// Arange mirrors the 1/2/3-argument range call: Arange(stop),
// Arange(start, stop) and Arange(start, stop, step), all operands scalar.
// The result Dimension comes from stop; dimensioned start and step operands
// must agree with it, bare ones adopt it (as the implied defaults 0 and 1
// always do).
func Arange(args ...any) (Operand, error) {
	if len(args) < 1 || len(args) > 3 {
		return Operand{}, umathErrorf(opArange, tensor.ErrBadCount)
	}
	ops, err := coerceAll(opArange, args...)
	if err != nil {
		return Operand{}, err
	}
	var start, stop, step Operand
	switch len(ops) {
	case 1:
		start, stop, step = BareScalar(0), ops[0], BareScalar(1)
	case 2:
		start, stop, step = ops[0], ops[1], BareScalar(1)
	default:
		start, stop, step = ops[0], ops[1], ops[2]
	}
	d := stop.Dim()
	if err = checkAgainst(opArange, d, start, step); err != nil {
		return Operand{}, err
	}
	from, err := scalarOf(opArange, start)
	if err != nil {
		return Operand{}, err
	}
	to, err := scalarOf(opArange, stop)
	if err != nil {
		return Operand{}, err
	}
	by, err := scalarOf(opArange, step)
	if err != nil {
		return Operand{}, err
	}
	t, err := tensor.Arange(from, to, by)

	return wrap(t, err, d)
}

// Linspace returns WithNum evenly spaced scalars between two scalar bounds,
// including stop unless WithEndpoint(false). Dimensioned bounds must share
// one Dimension; the result carries it.
func Linspace(start, stop any, opts ...Option) (Operand, error) {
	return spaced(opLinspace, start, stop, opts, false)
}

// Logspace returns WithNum scalars spaced evenly on a log scale: the bounds
// are exponents of WithBase. Dimension rule as Linspace.
func Logspace(start, stop any, opts ...Option) (Operand, error) {
	return spaced(opLogspace, start, stop, opts, true)
}

// spaced shares the bound handling of Linspace and Logspace.
func spaced(op string, start, stop any, opts []Option, logScale bool) (Operand, error) {
	o := gatherOptions(opts...)
	a, b, err := coercePair(op, start, stop)
	if err != nil {
		return Operand{}, err
	}
	d, err := sharedDim(op, a, b)
	if err != nil {
		return Operand{}, err
	}
	from, err := scalarOf(op, a)
	if err != nil {
		return Operand{}, err
	}
	to, err := scalarOf(op, b)
	if err != nil {
		return Operand{}, err
	}
	var t *tensor.Tensor
	if logScale {
		t, err = tensor.Logspace(from, to, o.num, o.endpoint, o.base, o.engineOpts()...)
	} else {
		t, err = tensor.Linspace(from, to, o.num, o.endpoint, o.engineOpts()...)
	}

	return wrap(t, err, d)
}

// ---------- structural constructors ----------

// FillDiagonal returns a copy of the matrix operand with its diagonal set
// to the scalar fill value; WithWrap continues the diagonal down tall
// matrices. The result takes the FILL's Dimension, checked against a
// dimensioned matrix operand first. (The in-place variant lives on
// quantity.Quantity.)
func FillDiagonal(a, fillValue any, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)
	x, f, err := coercePair(opFillDiagonal, a, fillValue)
	if err != nil {
		return Operand{}, err
	}
	if err = notNil(opFillDiagonal, x); err != nil {
		return Operand{}, err
	}
	if x.dimensioned && f.dimensioned {
		if err = dim.CheckSame(opFillDiagonal, x.d, f.d); err != nil {
			return Operand{}, err
		}
	}
	d, err := unitOf(opFillDiagonal, o, f)
	if err != nil {
		return Operand{}, err
	}
	v, err := scalarOf(opFillDiagonal, f)
	if err != nil {
		return Operand{}, err
	}
	t := x.buf.Clone()
	if err = tensor.FillDiagonal(t, v, o.wrap); err != nil {
		return Operand{}, err
	}

	return wrap(t, nil, d)
}

// ArraySplit cuts the operand into sections along WithAxis, allowing uneven
// parts; every part keeps the operand's Dimension.
func ArraySplit(v any, sections int, opts ...Option) ([]Operand, error) {
	o := gatherOptions(opts...)
	x, err := coerce(opArraySplit, v)
	if err != nil {
		return nil, err
	}
	parts, err := tensor.ArraySplit(x.buf, sections, o.axis)
	if err != nil {
		return nil, err
	}

	return wrapAll(parts, x.Dim()), nil
}

// Meshgrid expands coordinate vectors into coordinate grids under
// WithIndexing (tensor.IndexXY or tensor.IndexIJ). All vectors must share
// one Dimension — bare vectors read as dimensionless — and every grid
// carries it.
func Meshgrid(vs []any, opts ...Option) ([]Operand, error) {
	o := gatherOptions(opts...)
	ops, err := coerceAll(opMeshgrid, vs...)
	if err != nil {
		return nil, err
	}
	d := dim.Dimensionless
	bufs := make([]*tensor.Tensor, len(ops))
	for i, x := range ops {
		if i == 0 {
			d = x.Dim()
		} else if err = dim.CheckSame(opMeshgrid, d, x.Dim()); err != nil {
			return nil, err
		}
		bufs[i] = x.buf
	}
	grids, err := tensor.Meshgrid(o.indexing, bufs...)
	if err != nil {
		return nil, err
	}

	return wrapAll(grids, d), nil
}

// Vander returns the Vandermonde matrix of a vector operand — WithCols
// columns of powers, decreasing unless WithIncreasing(true); without
// WithCols the vector length sets the width. The operand's Dimension is
// kept.
func Vander(v any, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)
	x, err := coerce(opVander, v)
	if err != nil {
		return Operand{}, err
	}
	if err = notNil(opVander, x); err != nil {
		return Operand{}, err
	}
	n := o.cols
	if n < 0 {
		n = x.buf.Size()
	}
	t, err := tensor.Vander(x.buf, n, o.increasing)

	return wrap(t, err, x.Dim())
}
