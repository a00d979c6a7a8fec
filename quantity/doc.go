// Package quantity pairs a numeric tensor with a physical Dimension,
// giving every array in dimq a unit-aware identity.
//
// 🚀 What is a Quantity?
//
//	A Quantity is a value struct {buffer, Dimension}: the buffer is a
//	*tensor.Tensor carrying the numbers, the Dimension (package dim) carries
//	the physics.  The Dimension is fixed at construction and every method
//	derives the result Dimension from the receiver's by the algebra rules:
//	  • shape and additive ops keep the Dimension (Reshape, Sum, Add, ...)
//	  • transforming ops map it          (Sqrt → d^1/2, Var → d², ...)
//	  • combining ops merge two          (Mul → d·d', Div → d/d')
//	  • comparisons check and strip it   (bare Bool tensors out)
//
// ✨ Key properties:
//   - the Dimension is never mutated; methods return fresh Quantities
//   - additive and comparison methods require equal Dimensions and fail
//     with dim.ErrDimensionMismatch before touching any numbers
//   - Pow demands a dimensionless exponent (dim.ErrInvalidExponent)
//   - numeric behavior is exactly the tensor package's; this layer only
//     decides which Dimension the result carries
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/dimq/dim"
//	  "github.com/katalvlaran/dimq/quantity"
//	)
//
//	x := quantity.FromSlice([]float64{3, 4}, dim.Length)
//	t := quantity.FromScalar(2, dim.Time)
//
//	v, err := x.Div(t)       // [1.5, 2] L·T^-1
//	_, err = x.Add(t)        // dim.ErrDimensionMismatch
//
// See example_test.go for runnable examples.
package quantity
