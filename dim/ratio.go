// Package dim: exact rational exponents.
//
// Ratio is the scalar type of the exponent algebra. It is a small immutable
// value (numerator/denominator in int64) kept in canonical form so that Go's
// built-in == is exact semantic equality. The zero Ratio is exactly 0/1,
// which makes the zero Dimension exactly dimensionless.
package dim

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// maxExponentDen bounds the denominator accepted when converting a float
	// exponent to an exact Ratio. Physical exponents are tiny rationals
	// (1/2, 1/3, 2, -1); a bound of 1e9 is far beyond any of them while
	// keeping all internal products inside int64.
	maxExponentDen = 1_000_000_000

	// ratioTol is the relative tolerance at which a continued-fraction
	// convergent is accepted as "the" rational value of a float exponent.
	ratioTol = 1e-12

	// maxExactFloat is the largest magnitude accepted for a float exponent;
	// beyond 2⁶² the integer part alone would overflow the numerator.
	maxExactFloat = float64(1 << 62)
)

// Internal panic messages (programmer errors only; no magic strings).
const (
	panicZeroDen = "dim: NewRatio: denominator must be non-zero"
)

// Ratio is an exact rational number p/q in canonical form:
// q > 0 and gcd(|p|, q) == 1. The canonical zero is 0/1.
//
// Ratio is comparable: two Ratios are semantically equal iff they are ==.
// The denominator is stored minus one so that the zero value of the struct
// is the canonical 0/1 rather than the meaningless 0/0.
type Ratio struct {
	num  int64 // numerator, carries the sign
	den1 int64 // denominator - 1; zero value encodes denominator 1
}

// NewRatio returns the canonical Ratio num/den.
// Panics with a stable message when den == 0 (programmer error).
func NewRatio(num, den int64) Ratio {
	if den == 0 {
		panic(panicZeroDen)
	}

	return normalizeRatio(num, den)
}

// Int returns the Ratio n/1.
func Int(n int64) Ratio { return Ratio{num: n} }

// Num returns the numerator (sign included).
func (r Ratio) Num() int64 { return r.num }

// Den returns the denominator (always positive).
func (r Ratio) Den() int64 { return r.den1 + 1 }

// IsZero reports whether r is exactly 0.
func (r Ratio) IsZero() bool { return r.num == 0 }

// IsInt reports whether r is a whole number.
func (r Ratio) IsInt() bool { return r.den1 == 0 }

// Add returns r + s in canonical form.
func (r Ratio) Add(s Ratio) Ratio {
	return normalizeRatio(r.num*s.Den()+s.num*r.Den(), r.Den()*s.Den())
}

// Sub returns r - s in canonical form.
func (r Ratio) Sub(s Ratio) Ratio {
	return normalizeRatio(r.num*s.Den()-s.num*r.Den(), r.Den()*s.Den())
}

// Neg returns -r.
func (r Ratio) Neg() Ratio { return Ratio{num: -r.num, den1: r.den1} }

// Mul returns r · s in canonical form.
func (r Ratio) Mul(s Ratio) Ratio {
	return normalizeRatio(r.num*s.num, r.Den()*s.Den())
}

// Float64 returns the closest float64 to r.
func (r Ratio) Float64() float64 { return float64(r.num) / float64(r.Den()) }

// String renders whole ratios bare ("2", "-1") and the rest as "p/q" ("1/2").
func (r Ratio) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

// RatioFromFloat converts a float exponent to its exact rational value.
//
// Every exponent that occurs in practice (integers, halves, thirds, ...)
// is recovered exactly: the continued-fraction expansion of f is walked
// until a convergent p/q reproduces f within ratioTol, and that convergent
// is returned in canonical form. Denominators are capped at maxExponentDen;
// if the cap is hit first, the best convergent found so far is used.
//
// NaN, ±Inf and magnitudes beyond 2⁶² cannot be exponents and yield an
// *InvalidExponentError wrapping ErrInvalidExponent.
func RatioFromFloat(f float64) (Ratio, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= maxExactFloat {
		return Ratio{}, &InvalidExponentError{Op: "RatioFromFloat", Exponent: fmt.Sprint(f)}
	}

	// Whole numbers short-circuit the expansion.
	if f == math.Trunc(f) {
		return Int(int64(f)), nil
	}

	neg := f < 0
	x := math.Abs(f)
	target := x

	// Continued-fraction state: p/q is the latest convergent,
	// pPrev/qPrev the one before it.
	var (
		pPrev, qPrev = int64(0), int64(1)
		p, q         = int64(1), int64(0)
	)
	for step := 0; step < 64; step++ {
		a := int64(math.Floor(x))
		pNext := a*p + pPrev
		qNext := a*q + qPrev
		if qNext > maxExponentDen || qNext < 0 || pNext < 0 {
			// Cap hit (or overflow): keep the best convergent so far.
			break
		}
		pPrev, qPrev, p, q = p, q, pNext, qNext

		if math.Abs(target-float64(p)/float64(q)) <= ratioTol*math.Max(1, target) {
			break
		}

		frac := x - float64(a)
		if frac == 0 {
			break
		}
		x = 1 / frac
	}

	if neg {
		p = -p
	}

	return normalizeRatio(p, q), nil
}

// normalizeRatio reduces num/den to canonical form.
// Precondition: den != 0 (enforced by every caller).
func normalizeRatio(num, den int64) Ratio {
	if num == 0 {
		return Ratio{}
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd64(num, den); g > 1 {
		num /= g
		den /= g
	}

	return Ratio{num: num, den1: den - 1}
}

// gcd64 returns the greatest common divisor of |a| and |b|.
func gcd64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
