// Package umath: the unit-transforming and unit-combining slices of the
// catalogue.
//
// Unary transforms map the operand Dimension through a fixed function
// (d², d^1/2, d^1/3, d⁻¹). The product family (Prod, CumProd and friends)
// sits here too but KEEPS the Dimension by library convention; the package
// tests pin that convention down. Binary entries merge both operand
// Dimensions — product for multiplicative kernels and every linear-algebra
// contraction, quotient for the division family — with bare operands
// contributing Dimensionless.
package umath

import (
	"github.com/katalvlaran/dimq/dim"
	"github.com/katalvlaran/dimq/tensor"
)

// Operation tags carried into error payloads.
const (
	opReciprocal  = "Reciprocal"
	opVar         = "Var"
	opNaNVar      = "NaNVar"
	opSqrt        = "Sqrt"
	opCbrt        = "Cbrt"
	opSquare      = "Square"
	opProd        = "Prod"
	opNaNProd     = "NaNProd"
	opCumProd     = "CumProd"
	opNaNCumProd  = "NaNCumProd"
	opMultiply    = "Multiply"
	opDivide      = "Divide"
	opFloorDivide = "FloorDivide"
	opPower       = "Power"
	opFloatPower  = "FloatPower"
	opLdexp       = "Ldexp"
	opDivmod      = "Divmod"
	opCross       = "Cross"
	opConvolve    = "Convolve"
	opDot         = "Dot"
	opVDot        = "VDot"
	opInner       = "Inner"
	opOuter       = "Outer"
	opKron        = "Kron"
	opMatMul      = "MatMul"
	opTensorDot   = "TensorDot"
)

// Rational exponents of the root-taking transforms.
var (
	halfExp  = dim.NewRatio(1, 2)
	thirdExp = dim.NewRatio(1, 3)
)

// Dimension maps shared across the catalogue.
func dimKeep(d dim.Dimension) dim.Dimension { return d }
func dimSquare(d dim.Dimension) dim.Dimension { return d.Pow(dim.Int(2)) }
func dimMul(a, b dim.Dimension) dim.Dimension { return a.Mul(b) }
func dimDiv(a, b dim.Dimension) dim.Dimension { return a.Div(b) }

// ---------- unary transforms ----------

// Reciprocal returns 1/v elementwise; the Dimension becomes d⁻¹.
func Reciprocal(v any) (Operand, error) {
	return transformUnary(opReciprocal, v, tensor.Reciprocal, dim.Dimension.Invert)
}

// Sqrt returns the elementwise square root; the Dimension becomes d^1/2.
func Sqrt(v any) (Operand, error) {
	return transformUnary(opSqrt, v, tensor.Sqrt, func(d dim.Dimension) dim.Dimension {
		return d.Pow(halfExp)
	})
}

// Cbrt returns the elementwise cube root; the Dimension becomes d^1/3.
func Cbrt(v any) (Operand, error) {
	return transformUnary(opCbrt, v, tensor.Cbrt, func(d dim.Dimension) dim.Dimension {
		return d.Pow(thirdExp)
	})
}

// Square returns v² elementwise; the Dimension becomes d².
func Square(v any) (Operand, error) {
	return transformUnary(opSquare, v, tensor.Square, dimSquare)
}

// Var returns the 0-d variance of all elements; WithDdof sets the delta
// degrees of freedom. Variance squares the data, so the Dimension becomes
// d².
func Var(v any, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)
	x, err := coerce(opVar, v)
	if err != nil {
		return Operand{}, err
	}
	val, err := tensor.VarAll(x.buf, o.ddof)
	if err != nil {
		return Operand{}, err
	}

	return wrap(tensor.FromScalar(val), nil, dimSquare(x.Dim()))
}

// NaNVar is Var over the non-NaN elements only; the Dimension becomes d².
func NaNVar(v any, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)
	x, err := coerce(opNaNVar, v)
	if err != nil {
		return Operand{}, err
	}
	val, err := tensor.NaNVarAll(x.buf, o.ddof)
	if err != nil {
		return Operand{}, err
	}

	return wrap(tensor.FromScalar(val), nil, dimSquare(x.Dim()))
}

// ---------- product family (Dimension kept by convention) ----------

// Prod returns the 0-d product of all elements. The Dimension is kept
// unchanged rather than raised to the element count.
func Prod(v any) (Operand, error) {
	x, err := coerce(opProd, v)
	if err != nil {
		return Operand{}, err
	}
	val, err := tensor.ProdAll(x.buf)
	if err != nil {
		return Operand{}, err
	}

	return wrap(tensor.FromScalar(val, tensor.WithDType(foldDType(x.buf.DType()))), nil, x.Dim())
}

// Product is the catalogue alias of Prod.
func Product(v any) (Operand, error) { return Prod(v) }

// NaNProd is Prod over the non-NaN elements only; Dimension kept.
func NaNProd(v any) (Operand, error) {
	x, err := coerce(opNaNProd, v)
	if err != nil {
		return Operand{}, err
	}
	val, err := tensor.NaNProdAll(x.buf)
	if err != nil {
		return Operand{}, err
	}

	return wrap(tensor.FromScalar(val, tensor.WithDType(foldDType(x.buf.DType()))), nil, x.Dim())
}

// CumProd returns the running product over the flattened buffer;
// Dimension kept.
func CumProd(v any) (Operand, error) {
	return transformUnary(opCumProd, v, tensor.CumProd, dimKeep)
}

// CumProduct is the catalogue alias of CumProd.
func CumProduct(v any) (Operand, error) { return CumProd(v) }

// NaNCumProd is CumProd with NaN elements scanned as 1.
func NaNCumProd(v any) (Operand, error) {
	return transformUnary(opNaNCumProd, v, tensor.NaNCumProd, dimKeep)
}

// foldDType mirrors the engine's reduction tagging: Int64 and Bool buffers
// fold to Int64, everything else to Float64.
func foldDType(dt tensor.DType) tensor.DType {
	if dt == tensor.Int64 || dt == tensor.Bool {
		return tensor.Int64
	}

	return tensor.Float64
}

// ---------- binary combines ----------

// Multiply returns x · y with broadcasting; the Dimensions multiply.
func Multiply(x, y any) (Operand, error) {
	return combineBinary(opMultiply, x, y, tensor.Mul, dimMul)
}

// Divide returns x / y (true division); the result carrier is
// dim(x)/dim(y), so dividing equal Dimensions collapses to a bare Operand.
func Divide(x, y any) (Operand, error) {
	return combineBinary(opDivide, x, y, tensor.Div, dimDiv)
}

// TrueDivide is the catalogue alias of Divide.
func TrueDivide(x, y any) (Operand, error) { return Divide(x, y) }

// FloorDivide returns the floored quotient; Dimension rule as Divide.
func FloorDivide(x, y any) (Operand, error) {
	return combineBinary(opFloorDivide, x, y, tensor.FloorDiv, dimDiv)
}

// Power raises x to the exponent y. The exponent must be bare or
// dimensionless; a dimensioned base additionally requires a scalar exponent
// so the result Dimension d^p is well defined. Violations yield
// *dim.InvalidExponentError before any numeric work.
func Power(x, y any) (Operand, error) { return power(opPower, x, y) }

// FloatPower is the catalogue alias of Power; the kernel computes in
// float64 either way.
func FloatPower(x, y any) (Operand, error) { return power(opFloatPower, x, y) }

func power(op string, x, y any) (Operand, error) {
	a, b, err := coercePair(op, x, y)
	if err != nil {
		return Operand{}, err
	}
	if b.dimensioned {
		return Operand{}, &dim.InvalidExponentError{Op: op, Exponent: b.d.String()}
	}
	if !a.dimensioned {
		t, err := tensor.Pow(a.buf, b.buf)

		return wrap(t, err, dim.Dimensionless)
	}
	if b.buf == nil || b.buf.Size() != 1 {
		return Operand{}, &dim.InvalidExponentError{Op: op, Exponent: "array exponent over dimensioned base"}
	}
	nd, err := a.d.PowFloat(b.buf.Data()[0])
	if err != nil {
		return Operand{}, err
	}
	t, err := tensor.Pow(a.buf, b.buf)

	return wrap(t, err, nd)
}

// Ldexp returns x · 2^y. The exponent operand must be bare or
// dimensionless; the result keeps x's Dimension.
func Ldexp(x, y any) (Operand, error) {
	a, b, err := coercePair(opLdexp, x, y)
	if err != nil {
		return Operand{}, err
	}
	if b.dimensioned {
		return Operand{}, &dim.InvalidExponentError{Op: opLdexp, Exponent: b.d.String()}
	}
	t, err := tensor.Ldexp(a.buf, b.buf)

	return wrap(t, err, a.Dim())
}

// Divmod returns the floored quotient and Python-style remainder in one
// call. The quotient carries dim(x)/dim(y) — collapsing when the operands
// share a Dimension — and the remainder carries dim(x).
func Divmod(x, y any) (Operand, Operand, error) {
	a, b, err := coercePair(opDivmod, x, y)
	if err != nil {
		return Operand{}, Operand{}, err
	}
	quo, rem, err := tensor.Divmod(a.buf, b.buf)
	if err != nil {
		return Operand{}, Operand{}, err
	}

	return Dimensioned(quo, dimDiv(a.Dim(), b.Dim())), Dimensioned(rem, a.Dim()), nil
}

// Cross returns the vector cross product (three-component vectors, or
// two-component ones collapsing to the z-coordinate); the Dimensions
// multiply.
func Cross(x, y any) (Operand, error) {
	return combineBinary(opCross, x, y, tensor.Cross, dimMul)
}

// Convolve returns the discrete linear convolution of two vectors; WithMode
// selects the tensor.ConvFull / ConvSame / ConvValid window. Convolution
// sums products, so the Dimensions multiply.
func Convolve(x, y any, opts ...Option) (Operand, error) {
	o := gatherOptions(opts...)

	return combineBinary(opConvolve, x, y, func(a, b *tensor.Tensor) (*tensor.Tensor, error) {
		return tensor.Convolve(a, b, o.mode)
	}, dimMul)
}

// ---------- linear algebra (product rule throughout) ----------

// Dot returns the NumPy dot product: vector·vector, matrix·vector,
// matrix·matrix or scalar scaling, as the shapes dictate. Every contraction
// sums products, so the Dimensions multiply.
func Dot(x, y any) (Operand, error) { return combineBinary(opDot, x, y, tensor.Dot, dimMul) }

// VDot flattens both operands and returns their 0-d inner product;
// Dimension rule as Dot.
func VDot(x, y any) (Operand, error) { return combineBinary(opVDot, x, y, tensor.VDot, dimMul) }

// Inner contracts the last axes of both operands; Dimension rule as Dot.
func Inner(x, y any) (Operand, error) { return combineBinary(opInner, x, y, tensor.Inner, dimMul) }

// Outer flattens both operands and returns the outer-product matrix;
// Dimension rule as Dot.
func Outer(x, y any) (Operand, error) { return combineBinary(opOuter, x, y, tensor.Outer, dimMul) }

// Kron returns the Kronecker product; Dimension rule as Dot.
func Kron(x, y any) (Operand, error) { return combineBinary(opKron, x, y, tensor.Kron, dimMul) }

// MatMul returns the matrix product with NumPy's vector promotion;
// Dimension rule as Dot.
func MatMul(x, y any) (Operand, error) {
	return combineBinary(opMatMul, x, y, tensor.MatMul, dimMul)
}

// TensorDot contracts the listed axis pairs of x and y; Dimension rule as
// Dot.
func TensorDot(x, y any, axesX, axesY []int) (Operand, error) {
	return combineBinary(opTensorDot, x, y, func(a, b *tensor.Tensor) (*tensor.Tensor, error) {
		return tensor.TensorDot(a, b, axesX, axesY)
	}, dimMul)
}
