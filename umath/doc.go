// Package umath is the unit-aware operation dispatcher of dimq: the full
// NumPy-flavored catalogue, accepting quantities and plain values alike.
//
// 🚀 How dispatch works
//
//	Every input is coerced into an Operand, the closed two-case variant
//	{bare buffer | buffer + Dimension}. Each operation then applies exactly
//	one propagation rule to decide the result Dimension:
//	  • keep      — Add, Subtract, Reshape, ...: operands must share one
//	                Dimension; the result keeps it
//	  • transform — Sqrt, Square, Var, ...: a pure function of the operand
//	                Dimension (d^1/2, d², d⁻¹)
//	  • combine   — Multiply, Dot, Convolve, ...: merge both operand
//	                Dimensions (product or quotient)
//	  • check     — Arange, Asarray, Meshgrid, ...: verify agreement, then
//	                pass one Dimension through
//	Einsum is the one sequenced case: its Dimension folds over the
//	contraction plan step by step.
//
// ✨ Key properties:
//   - unitless collapse: any result whose Dimension works out to the zero
//     vector comes back as a bare buffer, never a wrapped one
//   - eager checking: every Dimension rule runs before the numeric kernel,
//     so a mismatch performs no numeric work at all
//   - WithUnit on creation operations verifies against dimensioned operands
//     and attaches to bare ones; it never silently overrides
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/dimq/dim"
//	  "github.com/katalvlaran/dimq/quantity"
//	  "github.com/katalvlaran/dimq/umath"
//	)
//
//	pos := quantity.FromSlice([]float64{10, 20}, dim.Length)
//	dt := quantity.FromScalar(2, dim.Time)
//
//	v, _ := umath.Divide(pos, dt)  // Quantity operand, L·T⁻¹
//	r, _ := umath.Divide(pos, pos) // bare operand: unitless collapse
//	ts, _ := umath.Arange(quantity.FromScalar(5, dim.Time)) // [0..4] T
//
// See example_test.go for runnable examples.
package umath
