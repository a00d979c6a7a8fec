// SPDX-License-Identifier: MIT
// Package tensor: product kernels (dot, matmul, outer, kron, tensordot,
// cross, convolve).
//
// Stage: the 2-d heavy lifting is delegated to gonum/mat (Dense.Mul,
// Dense.Outer, Dense.Kronecker, mat.Dot); everything above 2-d is reduced
// to a 2-d matmul by axis permutation and reshape. Zero-extent operands
// bypass gonum (its constructors reject empty matrices) and produce the
// empty or zero-filled result NumPy would.

package tensor

import (
	"gonum.org/v1/gonum/mat"
)

// Operation tags for unified error wrapping.
const (
	opDot       = "Dot"
	opVDot      = "VDot"
	opInner     = "Inner"
	opOuter     = "Outer"
	opKron      = "Kron"
	opMatMul    = "MatMul"
	opTensorDot = "TensorDot"
	opCross     = "Cross"
	opConvolve  = "Convolve"
)

// Convolution modes (NumPy names).
const (
	// ConvFull keeps every overlap point: length n+m-1.
	ConvFull = "full"

	// ConvSame returns the centered max(n,m) points of the full result.
	ConvSame = "same"

	// ConvValid keeps only complete overlaps: length max-min+1.
	ConvValid = "valid"
)

// Dot - generalized dot product.
//
// Behavior (mirrors NumPy dot for ranks 0..2):
//   - scalar · any         → elementwise scale
//   - vector · vector      → inner product, 0-d result
//   - matrix · vector      → matrix-vector product, 1-d result
//   - vector · matrix      → row-vector product, 1-d result
//   - matrix · matrix      → matrix product
//
// Errors: ErrNilTensor, ErrShapeMismatch (inner extents disagree),
// ErrNotMatrix (rank above 2).
// Complexity: O(n·m·k) for the matrix cases.
func Dot(a, b *Tensor) (*Tensor, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, tensorErrorf(opDot, err)
	}
	if a.NDim() == 0 || b.NDim() == 0 {
		return scaleByScalar(opDot, a, b)
	}
	if a.NDim() > 2 || b.NDim() > 2 {
		return nil, tensorErrorf(opDot, ErrNotMatrix)
	}
	if a.NDim() == 1 && b.NDim() == 1 {
		if a.shape[0] != b.shape[0] {
			return nil, tensorErrorf(opDot, ErrShapeMismatch)
		}

		return FromScalar(dotFlat(a.data, b.data)), nil
	}

	// Remaining combinations reduce to a 2-d product with the vector side
	// promoted, then the promoted axis dropped.
	left, right := a, b
	if left.NDim() == 1 {
		left = &Tensor{data: a.data, shape: Shape{1, a.shape[0]}, dtype: a.dtype}
	}
	if right.NDim() == 1 {
		right = &Tensor{data: b.data, shape: Shape{b.shape[0], 1}, dtype: b.dtype}
	}
	prod, err := matmul2d(left, right, resultDType(a, b))
	if err != nil {
		return nil, tensorErrorf(opDot, err)
	}

	return dropPromoted(prod, a.NDim() == 1, b.NDim() == 1), nil
}

// VDot flattens both operands and returns their inner product as a 0-d
// tensor. Lengths must match.
func VDot(a, b *Tensor) (*Tensor, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, tensorErrorf(opVDot, err)
	}
	if len(a.data) != len(b.data) {
		return nil, tensorErrorf(opVDot, ErrShapeMismatch)
	}

	return FromScalar(dotFlat(a.data, b.data)), nil
}

// Inner contracts the last axis of both operands: the result shape is
// a.shape[:-1] + b.shape[:-1]. Scalar operands scale the other side.
func Inner(a, b *Tensor) (*Tensor, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, tensorErrorf(opInner, err)
	}
	if a.NDim() == 0 || b.NDim() == 0 {
		return scaleByScalar(opInner, a, b)
	}
	out, err := TensorDot(a, b, []int{-1}, []int{-1})
	if err != nil {
		return nil, tensorErrorf(opInner, ErrShapeMismatch)
	}

	return out, nil
}

// Outer flattens both operands and returns the full outer product matrix
// out[i,j] = a[i]·b[j].
func Outer(a, b *Tensor) (*Tensor, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, tensorErrorf(opOuter, err)
	}
	n, m := len(a.data), len(b.data)
	out := newTensor(Shape{n, m}, resultDType(a, b))
	if n == 0 || m == 0 {
		return out, nil
	}
	var d mat.Dense
	d.Outer(1, mat.NewVecDense(n, a.data), mat.NewVecDense(m, b.data))
	copy(out.data, d.RawMatrix().Data)

	return out, nil
}

// Kron - Kronecker product.
//
// Behavior: operands are promoted to matrices (leading length-1 axes),
// multiplied blockwise via gonum Dense.Kronecker, and the result is
// brought back to rank max(rank(a), rank(b)): two vectors produce a
// vector of length n·m, anything involving a matrix stays a matrix.
// Inputs above rank 2 are rejected with ErrNotMatrix.
// Complexity: O(numel(a)·numel(b)).
func Kron(a, b *Tensor) (*Tensor, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, tensorErrorf(opKron, err)
	}
	if a.NDim() > 2 || b.NDim() > 2 {
		return nil, tensorErrorf(opKron, ErrNotMatrix)
	}
	ra, ca := promotedDims(a)
	rb, cb := promotedDims(b)
	out := newTensor(Shape{ra * rb, ca * cb}, resultDType(a, b))
	if len(out.data) > 0 {
		var d mat.Dense
		d.Kronecker(mat.NewDense(ra, ca, a.data), mat.NewDense(rb, cb, b.data))
		copy(out.data, d.RawMatrix().Data)
	}

	switch max(a.NDim(), b.NDim()) {
	case 0:
		return FromScalar(out.data[0]), nil
	case 1:
		return &Tensor{data: out.data, shape: Shape{len(out.data)}, dtype: out.dtype}, nil
	default:
		return out, nil
	}
}

// MatMul - matrix product with NumPy matmul promotion.
//
// Behavior:
//   - matrix @ matrix → matrix product
//   - vector @ matrix → the vector is a (1,k) row; the prepended axis is
//     dropped from the result
//   - matrix @ vector → the vector is a (k,1) column; the appended axis is
//     dropped from the result
//   - vector @ vector → 0-d inner product
//
// Scalar operands are rejected (ErrNotMatrix), matching NumPy matmul.
// Errors: ErrNilTensor, ErrNotMatrix, ErrShapeMismatch.
// Complexity: O(n·m·k).
func MatMul(a, b *Tensor) (*Tensor, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, tensorErrorf(opMatMul, err)
	}
	if a.NDim() == 0 || b.NDim() == 0 || a.NDim() > 2 || b.NDim() > 2 {
		return nil, tensorErrorf(opMatMul, ErrNotMatrix)
	}
	left, right := a, b
	if left.NDim() == 1 {
		left = &Tensor{data: a.data, shape: Shape{1, a.shape[0]}, dtype: a.dtype}
	}
	if right.NDim() == 1 {
		right = &Tensor{data: b.data, shape: Shape{b.shape[0], 1}, dtype: b.dtype}
	}
	prod, err := matmul2d(left, right, resultDType(a, b))
	if err != nil {
		return nil, tensorErrorf(opMatMul, err)
	}

	return dropPromoted(prod, a.NDim() == 1, b.NDim() == 1), nil
}

// TensorDot - contraction over explicit axis pairs.
//
// Behavior: axesA[i] of a is contracted against axesB[i] of b (negative
// axes wrap). Free axes of a, in order, followed by free axes of b form
// the result shape. The contraction is lowered to one 2-d matmul by
// permuting contracted axes to the boundary and reshaping.
// Errors: ErrBadAxis (out of range or repeated), ErrShapeMismatch
// (pair extents disagree or len(axesA) != len(axesB)).
// Complexity: O(prod(free_a)·prod(contracted)·prod(free_b)).
func TensorDot(a, b *Tensor, axesA, axesB []int) (*Tensor, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, tensorErrorf(opTensorDot, err)
	}
	if len(axesA) != len(axesB) {
		return nil, tensorErrorf(opTensorDot, ErrShapeMismatch)
	}
	normA, err := normalizeAxes(axesA, a.NDim())
	if err != nil {
		return nil, tensorErrorf(opTensorDot, err)
	}
	normB, err := normalizeAxes(axesB, b.NDim())
	if err != nil {
		return nil, tensorErrorf(opTensorDot, err)
	}
	contracted := 1
	for i := range normA {
		if a.shape[normA[i]] != b.shape[normB[i]] {
			return nil, tensorErrorf(opTensorDot, ErrShapeMismatch)
		}
		contracted *= a.shape[normA[i]]
	}

	freeA := freeAxes(a.NDim(), normA)
	freeB := freeAxes(b.NDim(), normB)

	// a → (freeA..., contracted...), b → (contracted..., freeB...).
	permA, err := Permute(a, append(append([]int{}, freeA...), normA...))
	if err != nil {
		return nil, tensorErrorf(opTensorDot, err)
	}
	permB, err := Permute(b, append(append([]int{}, normB...), freeB...))
	if err != nil {
		return nil, tensorErrorf(opTensorDot, err)
	}

	outShape := make(Shape, 0, len(freeA)+len(freeB))
	m, n := 1, 1
	for _, ax := range freeA {
		outShape = append(outShape, a.shape[ax])
		m *= a.shape[ax]
	}
	for _, ax := range freeB {
		outShape = append(outShape, b.shape[ax])
		n *= b.shape[ax]
	}

	left := &Tensor{data: permA.data, shape: Shape{m, contracted}, dtype: a.dtype}
	right := &Tensor{data: permB.data, shape: Shape{contracted, n}, dtype: b.dtype}
	prod, err := matmul2d(left, right, resultDType(a, b))
	if err != nil {
		return nil, tensorErrorf(opTensorDot, err)
	}

	return &Tensor{data: prod.data, shape: outShape, dtype: prod.dtype}, nil
}

// Cross computes the cross product along the last axis. Both operands must
// share their full shape with a last extent of 3 (vector result) or 2
// (z-component only, the last axis is dropped).
func Cross(a, b *Tensor) (*Tensor, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, tensorErrorf(opCross, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, tensorErrorf(opCross, err)
	}
	rank := a.NDim()
	if rank == 0 {
		return nil, tensorErrorf(opCross, ErrNotVector)
	}
	comp := a.shape[rank-1]
	if comp != 2 && comp != 3 {
		return nil, tensorErrorf(opCross, ErrNotVector)
	}

	lead := a.shape[:rank-1].Clone()
	pairs := lead.Numel()
	dt := resultDType(a, b)
	if comp == 2 {
		// Planar vectors: only the z component survives.
		out := newTensor(lead, dt)
		for p := 0; p < pairs; p++ {
			ax, ay := a.data[p*2], a.data[p*2+1]
			bx, by := b.data[p*2], b.data[p*2+1]
			out.data[p] = ax*by - ay*bx
		}

		return out, nil
	}
	out := newTensor(a.shape.Clone(), dt)
	for p := 0; p < pairs; p++ {
		ax, ay, az := a.data[p*3], a.data[p*3+1], a.data[p*3+2]
		bx, by, bz := b.data[p*3], b.data[p*3+1], b.data[p*3+2]
		out.data[p*3] = ay*bz - az*by
		out.data[p*3+1] = az*bx - ax*bz
		out.data[p*3+2] = ax*by - ay*bx
	}

	return out, nil
}

// Convolve - discrete 1-d linear convolution.
//
// Behavior: out[k] = Σ_i a[i]·v[k-i], evaluated over the window the mode
// selects (ConvFull, ConvSame, ConvValid). Both inputs must be non-empty
// vectors.
// Errors: ErrNilTensor, ErrNotVector, ErrEmptyInput, ErrBadMode.
// Complexity: O(n·m).
func Convolve(a, v *Tensor, mode string) (*Tensor, error) {
	if err := validateBinary(a, v); err != nil {
		return nil, tensorErrorf(opConvolve, err)
	}
	if err := ValidateVector(a); err != nil {
		return nil, tensorErrorf(opConvolve, err)
	}
	if err := ValidateVector(v); err != nil {
		return nil, tensorErrorf(opConvolve, err)
	}
	n, m := a.shape[0], v.shape[0]
	if n == 0 || m == 0 {
		return nil, tensorErrorf(opConvolve, ErrEmptyInput)
	}

	full := make([]float64, n+m-1)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			full[i+j] += a.data[i] * v.data[j]
		}
	}

	lo, hi := 0, len(full)
	switch mode {
	case ConvFull:
		// Keep everything.
	case ConvSame:
		length := max(n, m)
		lo = (min(n, m) - 1) / 2
		hi = lo + length
	case ConvValid:
		lo = min(n, m) - 1
		hi = lo + max(n, m) - min(n, m) + 1
	default:
		return nil, tensorErrorf(opConvolve, ErrBadMode)
	}
	out := newTensor(Shape{hi - lo}, resultDType(a, v))
	copy(out.data, full[lo:hi])

	return out, nil
}

// matmul2d multiplies two 2-d tensors via gonum Dense.Mul. Inner extents
// must agree; zero-extent operands short-circuit to a zero-filled result.
func matmul2d(a, b *Tensor, dt DType) (*Tensor, error) {
	ra, ca := a.shape[0], a.shape[1]
	rb, cb := b.shape[0], b.shape[1]
	if ca != rb {
		return nil, ErrShapeMismatch
	}
	out := newTensor(Shape{ra, cb}, dt)
	if ra == 0 || cb == 0 || ca == 0 {
		return out, nil
	}
	var d mat.Dense
	d.Mul(mat.NewDense(ra, ca, a.data), mat.NewDense(rb, cb, b.data))
	copy(out.data, d.RawMatrix().Data)

	return out, nil
}

// dotFlat is the raw inner product of two equal-length slices, delegated
// to gonum when non-empty.
func dotFlat(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}

	return mat.Dot(mat.NewVecDense(len(a), a), mat.NewVecDense(len(b), b))
}

// scaleByScalar handles the scalar·tensor degenerate case of Dot/Inner.
func scaleByScalar(opTag string, a, b *Tensor) (*Tensor, error) {
	scalar, other := a, b
	if b.NDim() == 0 {
		scalar, other = b, a
	}
	out, err := Mul(other, scalar)
	if err != nil {
		return nil, tensorErrorf(opTag, err)
	}

	return out, nil
}

// dropPromoted removes the axes MatMul/Dot inserted to promote vector
// operands: the leading axis for a promoted left side, the trailing axis
// for a promoted right side.
func dropPromoted(prod *Tensor, leftVec, rightVec bool) *Tensor {
	shape := prod.shape
	switch {
	case leftVec && rightVec:
		return FromScalar(prod.data[0])
	case leftVec:
		shape = Shape{shape[1]}
	case rightVec:
		shape = Shape{shape[0]}
	}

	return &Tensor{data: prod.data, shape: shape, dtype: prod.dtype}
}

// promotedDims reports the matrix extents of a rank ≤ 2 tensor, padding
// leading length-1 axes.
func promotedDims(t *Tensor) (rows, cols int) {
	switch t.NDim() {
	case 0:
		return 1, 1
	case 1:
		return 1, t.shape[0]
	default:
		return t.shape[0], t.shape[1]
	}
}

// normalizeAxes wraps negative axes and rejects repeats.
func normalizeAxes(axes []int, rank int) ([]int, error) {
	out := make([]int, len(axes))
	seen := make([]bool, rank)
	for i, a := range axes {
		ax, err := ValidateAxis(a, rank)
		if err != nil {
			return nil, err
		}
		if seen[ax] {
			return nil, ErrBadAxis
		}
		seen[ax] = true
		out[i] = ax
	}

	return out, nil
}

// freeAxes lists the axes of 0..rank-1 not present in contracted, in order.
func freeAxes(rank int, contracted []int) []int {
	used := make([]bool, rank)
	for _, ax := range contracted {
		used[ax] = true
	}
	free := make([]int, 0, rank-len(contracted))
	for ax := 0; ax < rank; ax++ {
		if !used[ax] {
			free = append(free, ax)
		}
	}

	return free
}
