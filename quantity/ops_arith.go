// Package quantity: arithmetic methods and their Dimension rules.
//
// Three families live here:
//   - additive binaries (Add, Sub, Mod, Maximum, Minimum) require equal
//     Dimensions and keep them;
//   - combining binaries (Mul, Div, Divmod, Pow) derive the result Dimension
//     from both operands;
//   - unary maps either keep the Dimension (Neg, Abs, rounding) or transform
//     it (Sqrt, Cbrt, Square, Reciprocal).
//
// Every Dimension check runs before the numeric kernel is called.
package quantity

import (
	"github.com/katalvlaran/dimq/dim"
	"github.com/katalvlaran/dimq/tensor"
)

// Operation tags carried into dim.MismatchError / error wrapping.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opMod     = "Mod"
	opMaximum = "Maximum"
	opMinimum = "Minimum"
	opDivmod  = "Divmod"
	opPow     = "Pow"
	opCompare = "Compare"
)

// Rational exponents of the root-taking transforms.
var (
	halfExp  = dim.NewRatio(1, 2)
	thirdExp = dim.NewRatio(1, 3)
)

// derive wraps a kernel result with Dimension d, passing kernel errors
// through unchanged. The single exit path of most methods in this package.
func derive(t *tensor.Tensor, err error, d dim.Dimension) (Quantity, error) {
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{value: t, d: d}, nil
}

// sameDim runs a binary kernel after verifying both operands carry one
// Dimension; the result keeps it. Mismatches surface as *dim.MismatchError
// before the kernel is touched.
func (q Quantity) sameDim(op string, o Quantity, kernel func(a, b *tensor.Tensor) (*tensor.Tensor, error)) (Quantity, error) {
	if err := dim.CheckSame(op, q.d, o.d); err != nil {
		return Quantity{}, err
	}
	t, err := kernel(q.value, o.value)

	return derive(t, err, q.d)
}

// ---------- additive binaries (equal Dimensions required) ----------

// Add returns q + o elementwise. Dimensions must match.
func (q Quantity) Add(o Quantity) (Quantity, error) { return q.sameDim(opAdd, o, tensor.Add) }

// Sub returns q - o elementwise. Dimensions must match.
func (q Quantity) Sub(o Quantity) (Quantity, error) { return q.sameDim(opSub, o, tensor.Sub) }

// Mod returns the Python-style remainder of q by o (sign follows o).
// Dimensions must match; the remainder keeps them.
func (q Quantity) Mod(o Quantity) (Quantity, error) { return q.sameDim(opMod, o, tensor.Mod) }

// Maximum returns the elementwise larger of q and o. Dimensions must match.
func (q Quantity) Maximum(o Quantity) (Quantity, error) {
	return q.sameDim(opMaximum, o, tensor.Maximum)
}

// Minimum returns the elementwise smaller of q and o. Dimensions must match.
func (q Quantity) Minimum(o Quantity) (Quantity, error) {
	return q.sameDim(opMinimum, o, tensor.Minimum)
}

// ---------- combining binaries ----------

// Mul returns q · o elementwise; the result Dimension is the product of both.
func (q Quantity) Mul(o Quantity) (Quantity, error) {
	t, err := tensor.Mul(q.value, o.value)

	return derive(t, err, q.d.Mul(o.d))
}

// Div returns q / o elementwise (true division, always Float64); the result
// Dimension is the quotient of both.
func (q Quantity) Div(o Quantity) (Quantity, error) {
	t, err := tensor.Div(q.value, o.value)

	return derive(t, err, q.d.Div(o.d))
}

// FloorDiv returns the floored quotient; the Dimension rule matches Div.
func (q Quantity) FloorDiv(o Quantity) (Quantity, error) {
	t, err := tensor.FloorDiv(q.value, o.value)

	return derive(t, err, q.d.Div(o.d))
}

// Divmod returns the floored quotient and Python-style remainder in one call.
// The quotient carries dim(q)/dim(o), the remainder carries dim(q).
func (q Quantity) Divmod(o Quantity) (Quantity, Quantity, error) {
	quo, rem, err := tensor.Divmod(q.value, o.value)
	if err != nil {
		return Quantity{}, Quantity{}, err
	}

	return Quantity{value: quo, d: q.d.Div(o.d)}, Quantity{value: rem, d: q.d}, nil
}

// Pow raises q to the exponent o. The exponent must be dimensionless; a
// dimensioned base additionally requires a scalar exponent so the result
// Dimension d^p is well defined. Violations yield *dim.InvalidExponentError
// before any numeric work.
func (q Quantity) Pow(o Quantity) (Quantity, error) {
	if !o.IsDimensionless() {
		return Quantity{}, &dim.InvalidExponentError{Op: opPow, Exponent: o.d.String()}
	}
	if q.d.IsDimensionless() {
		t, err := tensor.Pow(q.value, o.value)

		return derive(t, err, dim.Dimensionless)
	}
	if o.Size() != 1 {
		return Quantity{}, &dim.InvalidExponentError{Op: opPow, Exponent: "array of shape " + o.Shape().String()}
	}
	nd, err := q.d.PowFloat(o.value.Data()[0])
	if err != nil {
		return Quantity{}, err
	}
	t, err := tensor.Pow(q.value, o.value)

	return derive(t, err, nd)
}

// PowScalar raises q to a plain float power p; the Dimension becomes d^p.
func (q Quantity) PowScalar(p float64) (Quantity, error) {
	nd, err := q.d.PowFloat(p)
	if err != nil {
		return Quantity{}, err
	}
	t, err := tensor.PowScalar(q.value, p)

	return derive(t, err, nd)
}

// ---------- Dimension-preserving unary maps ----------

// Neg returns -q.
func (q Quantity) Neg() (Quantity, error) {
	t, err := tensor.Neg(q.value)

	return derive(t, err, q.d)
}

// Abs returns |q|.
func (q Quantity) Abs() (Quantity, error) {
	t, err := tensor.Abs(q.value)

	return derive(t, err, q.d)
}

// Floor rounds every element toward negative infinity.
func (q Quantity) Floor() (Quantity, error) {
	t, err := tensor.Floor(q.value)

	return derive(t, err, q.d)
}

// Ceil rounds every element toward positive infinity.
func (q Quantity) Ceil() (Quantity, error) {
	t, err := tensor.Ceil(q.value)

	return derive(t, err, q.d)
}

// Round rounds every element half-to-even.
func (q Quantity) Round() (Quantity, error) {
	t, err := tensor.Round(q.value)

	return derive(t, err, q.d)
}

// ---------- Dimension-transforming unary maps ----------

// Sqrt returns the elementwise square root; the Dimension becomes d^1/2.
func (q Quantity) Sqrt() (Quantity, error) {
	t, err := tensor.Sqrt(q.value)

	return derive(t, err, q.d.Pow(halfExp))
}

// Cbrt returns the elementwise cube root; the Dimension becomes d^1/3.
func (q Quantity) Cbrt() (Quantity, error) {
	t, err := tensor.Cbrt(q.value)

	return derive(t, err, q.d.Pow(thirdExp))
}

// Square returns q² elementwise; the Dimension becomes d².
func (q Quantity) Square() (Quantity, error) {
	t, err := tensor.Square(q.value)

	return derive(t, err, q.d.Pow(dim.Int(2)))
}

// Reciprocal returns 1/q elementwise; the Dimension becomes d⁻¹.
func (q Quantity) Reciprocal() (Quantity, error) {
	t, err := tensor.Reciprocal(q.value)

	return derive(t, err, q.d.Invert())
}

// ---------- comparisons (bare Bool masks out) ----------

// compareWith verifies equal Dimensions, then returns the kernel's Bool mask.
func (q Quantity) compareWith(o Quantity, kernel func(a, b *tensor.Tensor) (*tensor.Tensor, error)) (*tensor.Tensor, error) {
	if err := dim.CheckSame(opCompare, q.d, o.d); err != nil {
		return nil, err
	}

	return kernel(q.value, o.value)
}

// Equal returns the elementwise q == o mask. Dimensions must match.
func (q Quantity) Equal(o Quantity) (*tensor.Tensor, error) {
	return q.compareWith(o, tensor.Equal)
}

// NotEqual returns the elementwise q != o mask. Dimensions must match.
func (q Quantity) NotEqual(o Quantity) (*tensor.Tensor, error) {
	return q.compareWith(o, tensor.NotEqual)
}

// Less returns the elementwise q < o mask. Dimensions must match.
func (q Quantity) Less(o Quantity) (*tensor.Tensor, error) {
	return q.compareWith(o, tensor.Less)
}

// LessEqual returns the elementwise q <= o mask. Dimensions must match.
func (q Quantity) LessEqual(o Quantity) (*tensor.Tensor, error) {
	return q.compareWith(o, tensor.LessEqual)
}

// Greater returns the elementwise q > o mask. Dimensions must match.
func (q Quantity) Greater(o Quantity) (*tensor.Tensor, error) {
	return q.compareWith(o, tensor.Greater)
}

// GreaterEqual returns the elementwise q >= o mask. Dimensions must match.
func (q Quantity) GreaterEqual(o Quantity) (*tensor.Tensor, error) {
	return q.compareWith(o, tensor.GreaterEqual)
}
