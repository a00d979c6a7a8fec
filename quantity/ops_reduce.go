// Package quantity: reductions and scans, with their Dimension rules.
//
// Additive folds (Sum, Mean, Max, Min, CumSum) keep the Dimension: adding
// metres yields metres. Var squares it and Std keeps it. The product family
// (Prod, CumProd and the NaN-skipping variants) also KEEPS the Dimension by
// library convention, even though multiplying n like-dimensioned values is
// physically d^n; see the package tests that pin this convention down.
package quantity

import (
	"github.com/katalvlaran/dimq/dim"
	"github.com/katalvlaran/dimq/tensor"
)

// scalarFold wraps a full-reduction scalar as a 0-d Quantity with Dimension d.
func scalarFold(v float64, err error, dt tensor.DType, d dim.Dimension) (Quantity, error) {
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{value: tensor.FromScalar(v, tensor.WithDType(dt)), d: d}, nil
}

// foldDType mirrors the engine's reduction tagging: Int64 and Bool buffers
// fold to Int64, everything else to Float64.
func foldDType(dt tensor.DType) tensor.DType {
	if dt == tensor.Int64 || dt == tensor.Bool {
		return tensor.Int64
	}

	return tensor.Float64
}

// ---------- Dimension-keeping folds ----------

// Sum returns the 0-d total of all elements.
func (q Quantity) Sum() (Quantity, error) {
	v, err := tensor.SumAll(q.value)

	return scalarFold(v, err, foldDType(q.DType()), q.d)
}

// SumAxis sums along one axis.
func (q Quantity) SumAxis(axis int) (Quantity, error) {
	t, err := tensor.SumAxis(q.value, axis)

	return derive(t, err, q.d)
}

// CumSum returns the running sum over the flattened buffer.
func (q Quantity) CumSum() (Quantity, error) {
	t, err := tensor.CumSum(q.value)

	return derive(t, err, q.d)
}

// CumSumAxis returns the running sum along one axis, shape preserved.
func (q Quantity) CumSumAxis(axis int) (Quantity, error) {
	t, err := tensor.CumSumAxis(q.value, axis)

	return derive(t, err, q.d)
}

// Mean returns the 0-d arithmetic mean.
func (q Quantity) Mean() (Quantity, error) {
	v, err := tensor.MeanAll(q.value)

	return scalarFold(v, err, tensor.Float64, q.d)
}

// MeanAxis averages along one axis.
func (q Quantity) MeanAxis(axis int) (Quantity, error) {
	t, err := tensor.MeanAxis(q.value, axis)

	return derive(t, err, q.d)
}

// Max returns the 0-d largest element (empty buffers are rejected).
func (q Quantity) Max() (Quantity, error) {
	v, err := tensor.MaxAll(q.value)

	return scalarFold(v, err, foldDType(q.DType()), q.d)
}

// MaxAxis takes the maximum along one axis.
func (q Quantity) MaxAxis(axis int) (Quantity, error) {
	t, err := tensor.MaxAxis(q.value, axis)

	return derive(t, err, q.d)
}

// Min returns the 0-d smallest element (empty buffers are rejected).
func (q Quantity) Min() (Quantity, error) {
	v, err := tensor.MinAll(q.value)

	return scalarFold(v, err, foldDType(q.DType()), q.d)
}

// MinAxis takes the minimum along one axis.
func (q Quantity) MinAxis(axis int) (Quantity, error) {
	t, err := tensor.MinAxis(q.value, axis)

	return derive(t, err, q.d)
}

// ---------- product family (Dimension kept by convention) ----------

// Prod returns the 0-d product of all elements. The Dimension is kept
// unchanged rather than raised to the element count.
func (q Quantity) Prod() (Quantity, error) {
	v, err := tensor.ProdAll(q.value)

	return scalarFold(v, err, foldDType(q.DType()), q.d)
}

// ProdAxis multiplies along one axis; Dimension kept.
func (q Quantity) ProdAxis(axis int) (Quantity, error) {
	t, err := tensor.ProdAxis(q.value, axis)

	return derive(t, err, q.d)
}

// CumProd returns the running product over the flattened buffer;
// Dimension kept.
func (q Quantity) CumProd() (Quantity, error) {
	t, err := tensor.CumProd(q.value)

	return derive(t, err, q.d)
}

// NaNProd is Prod over the non-NaN elements only.
func (q Quantity) NaNProd() (Quantity, error) {
	v, err := tensor.NaNProdAll(q.value)

	return scalarFold(v, err, foldDType(q.DType()), q.d)
}

// NaNCumProd is CumProd that passes NaN elements through unchanged.
func (q Quantity) NaNCumProd() (Quantity, error) {
	t, err := tensor.NaNCumProd(q.value)

	return derive(t, err, q.d)
}

// ---------- spread statistics ----------

// Var returns the 0-d variance with the given delta degrees of freedom.
// Variance squares the data, so the Dimension becomes d².
func (q Quantity) Var(ddof int) (Quantity, error) {
	v, err := tensor.VarAll(q.value, ddof)

	return scalarFold(v, err, tensor.Float64, q.d.Pow(dim.Int(2)))
}

// VarAxis is Var along one axis; the Dimension becomes d².
func (q Quantity) VarAxis(axis, ddof int) (Quantity, error) {
	t, err := tensor.VarAxis(q.value, axis, ddof)

	return derive(t, err, q.d.Pow(dim.Int(2)))
}

// NaNVar is Var over the non-NaN elements only; the Dimension becomes d².
func (q Quantity) NaNVar(ddof int) (Quantity, error) {
	v, err := tensor.NaNVarAll(q.value, ddof)

	return scalarFold(v, err, tensor.Float64, q.d.Pow(dim.Int(2)))
}

// Std returns the 0-d standard deviation; sqrt undoes the squaring, so the
// Dimension stays d.
func (q Quantity) Std(ddof int) (Quantity, error) {
	v, err := tensor.StdAll(q.value, ddof)

	return scalarFold(v, err, tensor.Float64, q.d)
}
