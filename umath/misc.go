// Package umath: gradient, attribute getters, predicates, windows and
// constants.
package umath

import (
	"math"

	"github.com/katalvlaran/dimq/tensor"
)

// Operation tags carried into error payloads.
const (
	opGradient = "Gradient"
	opNDim     = "NDim"
	opShape    = "Shape"
	opSize     = "Size"
	opIsFinite = "IsFinite"
	opIsInf    = "IsInf"
	opIsNaN    = "IsNaN"
)

// Mathematical constants of the catalogue.
const (
	// E is Euler's number.
	E = math.E

	// Pi is the circle constant.
	Pi = math.Pi
)

// Inf is the positive IEEE-754 infinity. (math.Inf is not a constant
// expression, hence a var.)
var Inf = math.Inf(1)

// Gradient returns second-order central differences of the operand, one
// result per differentiated axis. Spacings follow the engine contract —
// none for unit steps, one scalar or coordinate vector for all axes, or
// one per axis — and each result carries dim(f)/dim(spacing), so a
// dimensionless quotient collapses to a bare Operand.
func Gradient(f any, spacings ...any) ([]Operand, error) {
	x, err := coerce(opGradient, f)
	if err != nil {
		return nil, err
	}
	sp, err := coerceAll(opGradient, spacings...)
	if err != nil {
		return nil, err
	}
	bufs := make([]*tensor.Tensor, len(sp))
	for i, s := range sp {
		bufs[i] = s.buf
	}
	grads, err := tensor.Gradient(x.buf, bufs...)
	if err != nil {
		return nil, err
	}

	out := make([]Operand, len(grads))
	for i, g := range grads {
		d := x.Dim()
		switch {
		case len(sp) == 1:
			d = d.Div(sp[0].Dim())
		case len(sp) > 1:
			d = d.Div(sp[i].Dim())
		}
		out[i] = Dimensioned(g, d)
	}

	return out, nil
}

// ---------- attribute getters ----------

// NDim returns the rank of the operand's buffer.
func NDim(v any) (int, error) {
	x, err := coerce(opNDim, v)
	if err != nil {
		return 0, err
	}
	if err = notNil(opNDim, x); err != nil {
		return 0, err
	}

	return x.buf.NDim(), nil
}

// Shape returns the shape of the operand's buffer.
func Shape(v any) (tensor.Shape, error) {
	x, err := coerce(opShape, v)
	if err != nil {
		return nil, err
	}
	if err = notNil(opShape, x); err != nil {
		return nil, err
	}

	return x.buf.Shape(), nil
}

// Size returns the element count of the operand's buffer.
func Size(v any) (int, error) {
	x, err := coerce(opSize, v)
	if err != nil {
		return 0, err
	}
	if err = notNil(opSize, x); err != nil {
		return 0, err
	}

	return x.buf.Size(), nil
}

// ---------- predicates (bare Bool masks out) ----------

// IsFinite returns a bare Bool mask of the finite elements; finiteness is
// a property of the numbers, so the Dimension is stripped.
func IsFinite(v any) (Operand, error) { return predicate(opIsFinite, v, tensor.IsFinite) }

// IsInf returns a bare Bool mask of the ±Inf elements.
func IsInf(v any) (Operand, error) { return predicate(opIsInf, v, tensor.IsInf) }

// IsNaN returns a bare Bool mask of the NaN elements.
func IsNaN(v any) (Operand, error) { return predicate(opIsNaN, v, tensor.IsNaN) }

// predicate coerces, runs a mask kernel and strips the Dimension.
func predicate(op string, v any, kernel unaryKernel) (Operand, error) {
	x, err := coerce(op, v)
	if err != nil {
		return Operand{}, err
	}
	t, err := kernel(x.buf)
	if err != nil {
		return Operand{}, err
	}

	return Bare(t), nil
}

// ---------- windows (Dimension-blind pass-throughs) ----------

// Bartlett returns the n-point triangular window as a bare Operand.
func Bartlett(n int) Operand { return Bare(tensor.Bartlett(n)) }

// Blackman returns the n-point Blackman window as a bare Operand.
func Blackman(n int) Operand { return Bare(tensor.Blackman(n)) }

// Hamming returns the n-point Hamming window as a bare Operand.
func Hamming(n int) Operand { return Bare(tensor.Hamming(n)) }

// Hanning returns the n-point Hann window as a bare Operand.
func Hanning(n int) Operand { return Bare(tensor.Hanning(n)) }

// Kaiser returns the n-point Kaiser window with shape parameter beta as a
// bare Operand.
func Kaiser(n int, beta float64) Operand { return Bare(tensor.Kaiser(n, beta)) }
