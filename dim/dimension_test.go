package dim_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/dimq/dim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDimension_ZeroValueIsDimensionless verifies the central value-type
// contract: the zero Dimension is Dimensionless and == works.
func TestDimension_ZeroValueIsDimensionless(t *testing.T) {
	var d dim.Dimension
	assert.True(t, d.IsDimensionless(), "zero value must be dimensionless")
	assert.Equal(t, dim.Dimensionless, d, "zero value must equal Dimensionless")
	assert.True(t, d == dim.Dimensionless, "== must hold for the zero value")
}

// TestDimension_MulAddsExponents checks that multiplying dimensions adds
// their exponent vectors, commutatively and associatively.
func TestDimension_MulAddsExponents(t *testing.T) {
	area := dim.Length.Mul(dim.Length)
	assert.Equal(t, dim.Int(2), area.Exp(dim.BaseLength), "L·L carries L²")

	ab := dim.Length.Mul(dim.Time)
	ba := dim.Time.Mul(dim.Length)
	assert.Equal(t, ab, ba, "Mul must be commutative")

	left := dim.Length.Mul(dim.Mass).Mul(dim.Time)
	right := dim.Length.Mul(dim.Mass.Mul(dim.Time))
	assert.Equal(t, left, right, "Mul must be associative")
}

// TestDimension_DivSubtractsExponents checks the quotient rule and the
// inverse law d · d⁻¹ = 1.
func TestDimension_DivSubtractsExponents(t *testing.T) {
	velocity := dim.Length.Div(dim.Time)
	assert.Equal(t, dim.Int(1), velocity.Exp(dim.BaseLength))
	assert.Equal(t, dim.Int(-1), velocity.Exp(dim.BaseTime))

	assert.Equal(t, dim.Dimensionless, velocity.Mul(velocity.Invert()),
		"d · d⁻¹ must collapse to dimensionless")
	assert.Equal(t, dim.Dimensionless, velocity.Div(velocity),
		"d / d must collapse to dimensionless")
}

// TestDimension_PowScalesExponents verifies rational power scaling,
// including the exact sqrt∘square round-trip.
func TestDimension_PowScalesExponents(t *testing.T) {
	accel := dim.Length.Div(dim.Time.Pow(dim.Int(2)))

	assert.Equal(t, dim.Dimensionless, accel.Pow(dim.Ratio{}), "d⁰ = 1")
	assert.Equal(t, accel, accel.Pow(dim.Int(1)), "d¹ = d")

	squared := accel.Pow(dim.Int(2))
	assert.Equal(t, dim.Int(-4), squared.Exp(dim.BaseTime), "(L·T⁻²)² carries T⁻⁴")

	back := squared.Pow(dim.NewRatio(1, 2))
	assert.Equal(t, accel, back, "sqrt∘square must be the exact identity")

	cbrt := dim.Length.Pow(dim.Int(3)).Pow(dim.NewRatio(1, 3))
	assert.Equal(t, dim.Length, cbrt, "cbrt∘cube must be the exact identity")
}

// TestDimension_PowFloat verifies float exponents convert exactly and
// non-finite exponents are rejected.
func TestDimension_PowFloat(t *testing.T) {
	area := dim.Length.Pow(dim.Int(2))

	got, err := area.PowFloat(0.5)
	require.NoError(t, err)
	assert.Equal(t, dim.Length, got, "L² ** 0.5 = L")

	third, err := dim.Length.Pow(dim.Int(3)).PowFloat(1.0 / 3.0)
	require.NoError(t, err)
	assert.Equal(t, dim.Length, third, "L³ ** (1/3) = L")

	_, err = area.PowFloat(math.NaN())
	assert.ErrorIs(t, err, dim.ErrInvalidExponent, "NaN exponent must be rejected")
}

// TestDimension_New builds from a sparse map and reads back exponents.
func TestDimension_New(t *testing.T) {
	energy := dim.New(map[dim.Base]dim.Ratio{
		dim.BaseLength: dim.Int(2),
		dim.BaseMass:   dim.Int(1),
		dim.BaseTime:   dim.Int(-2),
	})
	want := dim.Mass.Mul(dim.Length.Pow(dim.Int(2))).Div(dim.Time.Pow(dim.Int(2)))
	assert.Equal(t, want, energy, "map construction must match composed algebra")

	assert.Panics(t, func() { dim.New(map[dim.Base]dim.Ratio{dim.Base(99): dim.Int(1)}) },
		"out-of-range base must panic")
}

// TestCheckSame_MatchAndMismatch covers the silent success path and the
// rich mismatch payload.
func TestCheckSame_MatchAndMismatch(t *testing.T) {
	v := dim.Length.Div(dim.Time)
	assert.NoError(t, dim.CheckSame("Add", v, v), "equal dims must pass")

	err := dim.CheckSame("Add", dim.Length, dim.Time)
	require.Error(t, err)
	assert.ErrorIs(t, err, dim.ErrDimensionMismatch, "sentinel must match via errors.Is")

	var mism *dim.MismatchError
	require.True(t, errors.As(err, &mism), "payload type must be recoverable via errors.As")
	assert.Equal(t, "Add", mism.Op)
	assert.Equal(t, dim.Length, mism.Left)
	assert.Equal(t, dim.Time, mism.Right)
	assert.Contains(t, err.Error(), "dimension mismatch", "message names the condition")
}

// TestDimension_String checks the debug rendering of exponent vectors.
func TestDimension_String(t *testing.T) {
	assert.Equal(t, "1", dim.Dimensionless.String())
	assert.Equal(t, "L", dim.Length.String())
	assert.Equal(t, "L·T^-2", dim.Length.Div(dim.Time.Pow(dim.Int(2))).String())
	assert.Equal(t, "L^1/2", dim.Length.Pow(dim.NewRatio(1, 2)).String())
	assert.Equal(t, "L^2·M·T^-2",
		dim.Mass.Mul(dim.Length.Pow(dim.Int(2))).Div(dim.Time.Pow(dim.Int(2))).String())
}

// TestBase_String covers the base-dimension symbols used in renderings.
func TestBase_String(t *testing.T) {
	assert.Equal(t, "L", dim.BaseLength.String())
	assert.Equal(t, "Th", dim.BaseTemperature.String())
	assert.Equal(t, "J", dim.BaseLuminous.String())
	assert.Equal(t, "?", dim.Base(-1).String())
}
