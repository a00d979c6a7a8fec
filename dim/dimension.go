// Package dim: the Dimension value type and its algebra.
package dim

import "strings"

// Base identifies one of the seven SI base dimensions. The order matches the
// SI convention (metre, kilogram, second, ampere, kelvin, mole, candela) and
// is part of the exponent-vector layout, so it must never be reordered.
type Base int

const (
	// BaseLength is the length dimension (symbol L).
	BaseLength Base = iota

	// BaseMass is the mass dimension (symbol M).
	BaseMass

	// BaseTime is the time dimension (symbol T).
	BaseTime

	// BaseCurrent is the electric-current dimension (symbol I).
	BaseCurrent

	// BaseTemperature is the thermodynamic-temperature dimension (symbol Th).
	BaseTemperature

	// BaseAmount is the amount-of-substance dimension (symbol N).
	BaseAmount

	// BaseLuminous is the luminous-intensity dimension (symbol J).
	BaseLuminous

	// NumBase is the number of base dimensions (the exponent-vector length).
	NumBase int = iota
)

// baseSymbols maps Base to its conventional dimension symbol.
// "Th" stands in for the usual Θ to keep output plain ASCII.
var baseSymbols = [NumBase]string{"L", "M", "T", "I", "Th", "N", "J"}

// String returns the conventional symbol of the base dimension.
func (b Base) String() string {
	if b < 0 || int(b) >= NumBase {
		return "?"
	}

	return baseSymbols[b]
}

// Dimension is a vector of NumBase rational exponents. It is an immutable
// comparable value: the zero value is Dimensionless, equality is exact ==,
// and every operation returns a fresh value.
type Dimension struct {
	exps [NumBase]Ratio
}

// Dimensionless is the zero exponent vector, the dimension of plain numbers.
var Dimensionless = Dimension{}

// Unit vectors, one per base dimension. Compose them with Mul/Div/Pow:
//
//	velocity := dim.Length.Div(dim.Time)
//	energy   := dim.Mass.Mul(dim.Length.Pow(dim.Int(2))).Div(dim.Time.Pow(dim.Int(2)))
var (
	Length      = unit(BaseLength)
	Mass        = unit(BaseMass)
	Time        = unit(BaseTime)
	Current     = unit(BaseCurrent)
	Temperature = unit(BaseTemperature)
	Amount      = unit(BaseAmount)
	Luminous    = unit(BaseLuminous)
)

// unit builds the Dimension with exponent 1 on base b and 0 elsewhere.
func unit(b Base) Dimension {
	var d Dimension
	d.exps[b] = Int(1)

	return d
}

// New builds a Dimension from a sparse exponent map; absent bases are zero.
// Panics with a stable message on an out-of-range Base (programmer error).
func New(exps map[Base]Ratio) Dimension {
	var d Dimension
	for b, r := range exps {
		if b < 0 || int(b) >= NumBase {
			panic(panicBadBase)
		}
		d.exps[b] = r
	}

	return d
}

const panicBadBase = "dim: New: unknown base dimension"

// Exp returns the exponent carried on base b.
// Panics with a stable message on an out-of-range Base (programmer error).
func (d Dimension) Exp(b Base) Ratio {
	if b < 0 || int(b) >= NumBase {
		panic(panicBadBase)
	}

	return d.exps[b]
}

// Mul returns the dimension of a product: exponents add pairwise.
func (d Dimension) Mul(o Dimension) Dimension {
	var out Dimension
	for i := 0; i < NumBase; i++ {
		out.exps[i] = d.exps[i].Add(o.exps[i])
	}

	return out
}

// Div returns the dimension of a quotient: exponents subtract pairwise.
func (d Dimension) Div(o Dimension) Dimension {
	var out Dimension
	for i := 0; i < NumBase; i++ {
		out.exps[i] = d.exps[i].Sub(o.exps[i])
	}

	return out
}

// Invert returns the dimension of a reciprocal: every exponent negated.
func (d Dimension) Invert() Dimension {
	var out Dimension
	for i := 0; i < NumBase; i++ {
		out.exps[i] = d.exps[i].Neg()
	}

	return out
}

// Pow returns the dimension of d raised to the rational power r:
// every exponent scaled by r. Pow(Int(0)) is always Dimensionless and
// Pow(Int(1)) returns d unchanged, so sqrt∘square round-trips exactly.
func (d Dimension) Pow(r Ratio) Dimension {
	var out Dimension
	for i := 0; i < NumBase; i++ {
		out.exps[i] = d.exps[i].Mul(r)
	}

	return out
}

// PowFloat returns d raised to a float power, converting the exponent to its
// exact rational value first (see RatioFromFloat). NaN/±Inf exponents yield
// an *InvalidExponentError wrapping ErrInvalidExponent.
func (d Dimension) PowFloat(f float64) (Dimension, error) {
	r, err := RatioFromFloat(f)
	if err != nil {
		return Dimension{}, err
	}

	return d.Pow(r), nil
}

// Equal reports exact equality of the two exponent vectors.
// Identical to d == o; provided for call-site readability.
func (d Dimension) Equal(o Dimension) bool { return d == o }

// IsDimensionless reports whether every exponent is zero.
func (d Dimension) IsDimensionless() bool { return d == Dimensionless }

// String renders the exponent vector, skipping zero entries:
// "L·T^-2" for acceleration, "L^2·M·T^-2" for energy, "1" when dimensionless.
func (d Dimension) String() string {
	if d == Dimensionless {
		return "1"
	}

	var sb strings.Builder
	for i := 0; i < NumBase; i++ {
		r := d.exps[i]
		if r.IsZero() {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("·")
		}
		sb.WriteString(baseSymbols[i])
		if r != Int(1) {
			sb.WriteString("^")
			sb.WriteString(r.String())
		}
	}

	return sb.String()
}
