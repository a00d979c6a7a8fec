// Package dim implements exact dimensional algebra over the seven SI base
// dimensions, the foundation for every unit-aware computation in dimq.
//
// 🚀 What is a Dimension?
//
//	A Dimension is a vector of seven rational exponents, one per SI base
//	dimension (length, mass, time, current, temperature, amount, luminous
//	intensity).  Velocity is L·T⁻¹, energy is L²·M·T⁻², a plain number is
//	the zero vector.  Combining quantities combines their exponent vectors:
//	  • multiply values  → add exponent vectors
//	  • divide values    → subtract exponent vectors
//	  • raise to power p → scale every exponent by p
//	  • invert value     → negate every exponent
//
// ✨ Key properties:
//   - exponents are exact rationals (Ratio), never floats: sqrt∘square is
//     the identity, and equality is exact, not approximate
//   - Dimension is a comparable value type; the zero value is Dimensionless
//   - all operations are pure: receivers are never mutated
//   - mismatches surface as *MismatchError wrapping ErrDimensionMismatch,
//     carrying both operands for diagnostics
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dimq/dim"
//
//	accel := dim.Length.Div(dim.Time.Pow(dim.Int(2))) // L·T⁻²
//	force := dim.Mass.Mul(accel)                      // L·M·T⁻²
//
//	if err := dim.CheckSame("Add", force, accel); err != nil {
//	  // errors.Is(err, dim.ErrDimensionMismatch) == true
//	}
//
// See example_test.go for runnable examples.
package dim
