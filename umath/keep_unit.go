// Package umath: the unit-preserving slice of the catalogue.
//
// Binary entries require both operands to carry one Dimension and keep it;
// unary and structural entries keep the operand's Dimension untouched.
package umath

import (
	"github.com/katalvlaran/dimq/tensor"
)

// Operation tags carried into error payloads.
const (
	opAdd       = "Add"
	opSubtract  = "Subtract"
	opMod       = "Mod"
	opMaximum   = "Maximum"
	opMinimum   = "Minimum"
	opNegative  = "Negative"
	opAbsolute  = "Absolute"
	opReshape   = "Reshape"
	opRavel     = "Ravel"
	opTranspose = "Transpose"
)

// Add returns x + y with broadcasting; both operands must carry the same
// Dimension and the sum keeps it.
func Add(x, y any) (Operand, error) { return keepBinary(opAdd, x, y, tensor.Add) }

// Subtract returns x - y; Dimension rule as Add.
func Subtract(x, y any) (Operand, error) { return keepBinary(opSubtract, x, y, tensor.Sub) }

// Mod returns the Python-style remainder of x / y. Both operands share one
// Dimension and the remainder keeps it.
func Mod(x, y any) (Operand, error) { return keepBinary(opMod, x, y, tensor.Mod) }

// Maximum returns the elementwise larger of x and y under one Dimension.
func Maximum(x, y any) (Operand, error) { return keepBinary(opMaximum, x, y, tensor.Maximum) }

// Minimum returns the elementwise smaller of x and y under one Dimension.
func Minimum(x, y any) (Operand, error) { return keepBinary(opMinimum, x, y, tensor.Minimum) }

// Negative returns -x; the Dimension is kept.
func Negative(v any) (Operand, error) { return keepUnary(opNegative, v, tensor.Neg) }

// Absolute returns |x|; the Dimension is kept.
func Absolute(v any) (Operand, error) { return keepUnary(opAbsolute, v, tensor.Abs) }

// Reshape returns a view of v with the requested shape (one extent may be
// -1 and is inferred); the Dimension is kept.
func Reshape(v any, shape tensor.Shape) (Operand, error) {
	return keepUnary(opReshape, v, func(t *tensor.Tensor) (*tensor.Tensor, error) {
		return tensor.Reshape(t, shape)
	})
}

// Ravel returns a flat view of v; the Dimension is kept.
func Ravel(v any) (Operand, error) { return keepUnary(opRavel, v, tensor.Ravel) }

// Transpose reverses the axes of v; the Dimension is kept.
func Transpose(v any) (Operand, error) { return keepUnary(opTranspose, v, tensor.Transpose) }
