package quantity_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dimq/dim"
	"github.com/katalvlaran/dimq/quantity"
	"github.com/katalvlaran/dimq/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdd_RequiresEqualDimensions covers the happy path and the eager
// mismatch rejection carrying both operands.
func TestAdd_RequiresEqualDimensions(t *testing.T) {
	a := quantity.FromSlice([]float64{1, 2}, dim.Length)
	b := quantity.FromSlice([]float64{3, 4}, dim.Length)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, sum.Value().Data())
	assert.Equal(t, dim.Length, sum.Dim())

	_, err = a.Add(quantity.FromSlice([]float64{1, 2}, dim.Time))
	require.ErrorIs(t, err, dim.ErrDimensionMismatch)

	var mism *dim.MismatchError
	require.True(t, errors.As(err, &mism))
	assert.Equal(t, "Add", mism.Op)
	assert.Equal(t, dim.Length, mism.Left)
	assert.Equal(t, dim.Time, mism.Right)
}

// TestAdd_DimensionlessOnlyMatchesDimensionless: a plain number is the zero
// vector, so it only adds to another plain number.
func TestAdd_DimensionlessOnlyMatchesDimensionless(t *testing.T) {
	bare := quantity.FromScalar(5, dim.Dimensionless)
	timed := quantity.FromScalar(3, dim.Time)

	_, err := bare.Add(timed)
	assert.ErrorIs(t, err, dim.ErrDimensionMismatch,
		"5 + 3s has no consistent unit")

	ok, err := bare.Add(quantity.FromScalar(2, dim.Dimensionless))
	require.NoError(t, err)
	assert.True(t, ok.IsDimensionless())
}

// TestSubModMaximumMinimum_KeepSharedDimension sweeps the remaining additive
// binaries: same numeric behavior as the engine, Dimension preserved.
func TestSubModMaximumMinimum_KeepSharedDimension(t *testing.T) {
	a := quantity.FromSlice([]float64{7, -7}, dim.Time)
	b := quantity.FromSlice([]float64{3, 3}, dim.Time)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, -10}, diff.Value().Data())
	assert.Equal(t, dim.Time, diff.Dim())

	rem, err := a.Mod(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, rem.Value().Data(), "remainder sign follows the divisor")
	assert.Equal(t, dim.Time, rem.Dim())

	hi, err := a.Maximum(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 3}, hi.Value().Data())

	lo, err := a.Minimum(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -7}, lo.Value().Data())

	_, err = a.Maximum(quantity.FromSlice([]float64{1, 1}, dim.Mass))
	assert.ErrorIs(t, err, dim.ErrDimensionMismatch)
}

// TestMul_CombinesDimensions pins 3m · 2s = 6 m·s.
func TestMul_CombinesDimensions(t *testing.T) {
	length := quantity.FromScalar(3, dim.Length)
	duration := quantity.FromScalar(2, dim.Time)

	got, err := length.Mul(duration)
	require.NoError(t, err)
	v, err := got.Value().At()
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
	assert.Equal(t, dim.Length.Mul(dim.Time), got.Dim())
}

// TestDiv_QuotientDimension pins 10m / 2s = 5 m/s, and the self-quotient
// collapsing to a dimensionless Quantity.
func TestDiv_QuotientDimension(t *testing.T) {
	d := quantity.FromScalar(10, dim.Length)
	s := quantity.FromScalar(2, dim.Time)

	v, err := d.Div(s)
	require.NoError(t, err)
	got, err := v.Value().At()
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
	assert.Equal(t, velocity, v.Dim())

	ratio, err := d.Div(quantity.FromScalar(2, dim.Length))
	require.NoError(t, err)
	assert.True(t, ratio.IsDimensionless(),
		"like dims cancel; the method keeps the wrapper, the dispatcher strips it")
}

// TestFloorDivDivmod_SplitDimensions checks the quotient/remainder pair:
// the quotient carries d_x/d_y, the remainder d_x.
func TestFloorDivDivmod_SplitDimensions(t *testing.T) {
	x := quantity.FromSlice([]float64{7, -7}, dim.Length)
	y := quantity.FromSlice([]float64{2, 2}, dim.Time)

	fd, err := x.FloorDiv(y)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -4}, fd.Value().Data())
	assert.Equal(t, velocity, fd.Dim())

	quo, rem, err := x.Divmod(y)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -4}, quo.Value().Data())
	assert.Equal(t, []float64{1, 1}, rem.Value().Data())
	assert.Equal(t, velocity, quo.Dim())
	assert.Equal(t, dim.Length, rem.Dim())
}

// TestPow_DimensionedBase covers scalar exponents on a dimensioned base and
// both invalid-exponent paths.
func TestPow_DimensionedBase(t *testing.T) {
	base := quantity.FromScalar(2, dim.Length)

	cubed, err := base.Pow(quantity.FromScalar(3, dim.Dimensionless))
	require.NoError(t, err)
	v, err := cubed.Value().At()
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)
	assert.Equal(t, dim.Length.Pow(dim.Int(3)), cubed.Dim())

	// Exponent carrying a dimension is never legal.
	_, err = base.Pow(quantity.FromScalar(3, dim.Length))
	assert.ErrorIs(t, err, dim.ErrInvalidExponent)

	// Array exponent on a dimensioned base leaves d^p undefined.
	_, err = base.Pow(quantity.FromSlice([]float64{1, 2}, dim.Dimensionless))
	assert.ErrorIs(t, err, dim.ErrInvalidExponent)

	// Dimensionless base happily takes an array exponent.
	xs := quantity.FromSlice([]float64{2, 3}, dim.Dimensionless)
	pw, err := xs.Pow(quantity.FromSlice([]float64{2, 2}, dim.Dimensionless))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 9}, pw.Value().Data())
	assert.True(t, pw.IsDimensionless())
}

// TestPowScalar_FractionalExponents verifies d^p for fractional p.
func TestPowScalar_FractionalExponents(t *testing.T) {
	area := quantity.FromScalar(9, dim.Length.Pow(dim.Int(2)))

	side, err := area.PowScalar(0.5)
	require.NoError(t, err)
	v, err := side.Value().At()
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, dim.Length, side.Dim())
}

// TestSqrtSquare_RoundTrip covers sqrt(square(q)).dim == q.dim exactly,
// plus the [4,9] m² → [2,3] m scenario.
func TestSqrtSquare_RoundTrip(t *testing.T) {
	area := quantity.FromSlice([]float64{4, 9}, dim.Length.Pow(dim.Int(2)))

	side, err := area.Sqrt()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, side.Value().Data())
	assert.Equal(t, dim.Length, side.Dim())

	q := quantity.FromSlice([]float64{1.5, 2.5}, velocity)
	sq, err := q.Square()
	require.NoError(t, err)
	back, err := sq.Sqrt()
	require.NoError(t, err)
	assert.Equal(t, q.Dim(), back.Dim(), "sqrt∘square must restore the dimension exactly")
}

// TestCbrtReciprocal_TransformRules checks d^1/3 and d⁻¹ derivations.
func TestCbrtReciprocal_TransformRules(t *testing.T) {
	vol := quantity.FromScalar(27, dim.Length.Pow(dim.Int(3)))
	edge, err := vol.Cbrt()
	require.NoError(t, err)
	v, err := edge.Value().At()
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, dim.Length, edge.Dim())

	period := quantity.FromSlice([]float64{2, 4}, dim.Time)
	freq, err := period.Reciprocal()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.25}, freq.Value().Data())
	assert.Equal(t, dim.Time.Invert(), freq.Dim())
}

// TestUnaryKeepers_PreserveDimension sweeps Neg/Abs/Floor/Ceil/Round.
func TestUnaryKeepers_PreserveDimension(t *testing.T) {
	q := quantity.FromSlice([]float64{-1.5, 2.5}, dim.Mass)

	neg, err := q.Neg()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2.5}, neg.Value().Data())

	abs, err := q.Abs()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, abs.Value().Data())

	fl, err := q.Floor()
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 2}, fl.Value().Data())

	ce, err := q.Ceil()
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 3}, ce.Value().Data())

	ro, err := q.Round()
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 2}, ro.Value().Data(), "half rounds to even")

	for _, got := range []quantity.Quantity{neg, abs, fl, ce, ro} {
		assert.Equal(t, dim.Mass, got.Dim())
	}
}

// TestComparisons_CheckThenStrip: equal dims produce a bare Bool mask,
// unequal dims never reach the kernel.
func TestComparisons_CheckThenStrip(t *testing.T) {
	a := quantity.FromSlice([]float64{1, 5}, dim.Length)
	b := quantity.FromSlice([]float64{2, 2}, dim.Length)

	lt, err := a.Less(b)
	require.NoError(t, err)
	assert.Equal(t, tensor.Bool, lt.DType(), "comparison masks are plain Bool tensors")
	assert.Equal(t, []float64{1, 0}, lt.Data())

	ge, err := a.GreaterEqual(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, ge.Data())

	eq, err := a.Equal(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, eq.Data())

	ne, err := a.NotEqual(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, ne.Data())

	gt, err := a.Greater(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, gt.Data())

	le, err := a.LessEqual(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, le.Data())

	_, err = a.Less(quantity.FromSlice([]float64{1, 1}, dim.Time))
	assert.ErrorIs(t, err, dim.ErrDimensionMismatch)
}
