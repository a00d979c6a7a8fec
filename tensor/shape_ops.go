// SPDX-License-Identifier: MIT
// Package tensor: shape manipulation kernels.
//
// Purpose:
//   - Reshape/Ravel are O(1) views over the same storage (NumPy semantics:
//     mutating the view mutates the base). Every other kernel materializes
//     fresh storage and leaves its operand untouched.
//   - FillDiagonal is the single deliberate in-place entry point of the
//     engine; its doc says so loudly.
//
// Determinism:
//   - All walks are fixed-order (flat or odometer); no map iteration anywhere.

package tensor

// Operation tags for unified error wrapping (no magic strings).
const (
	opReshape      = "Reshape"
	opRavel        = "Ravel"
	opTranspose    = "Transpose"
	opPermute      = "Permute"
	opTril         = "Tril"
	opTriu         = "Triu"
	opDiag         = "Diag"
	opFillDiagonal = "FillDiagonal"
	opSplit        = "Split"
	opArraySplit   = "ArraySplit"
	opMeshgrid     = "Meshgrid"
	opVander       = "Vander"
	opBroadcastTo  = "BroadcastTo"
	opStack        = "Stack"
)

// Meshgrid indexing modes (NumPy names).
const (
	// IndexXY is Cartesian indexing: the first two axes come out swapped.
	IndexXY = "xy"

	// IndexIJ is matrix indexing: axis order follows argument order.
	IndexIJ = "ij"
)

// Reshape returns a view of t with a new shape of equal element count.
// One extent may be -1 and is inferred from the rest. The view shares
// storage with t: writes through either are visible in both.
// Complexity: O(rank); no data copy.
func Reshape(t *Tensor, shape Shape) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opReshape, ErrNilTensor)
	}
	resolved, err := resolveShape(shape, len(t.data))
	if err != nil {
		return nil, tensorErrorf(opReshape, err)
	}

	return &Tensor{data: t.data, shape: resolved, dtype: t.dtype}, nil
}

// resolveShape validates a reshape target and infers a single -1 extent.
func resolveShape(shape Shape, numel int) (Shape, error) {
	out := shape.Clone()
	infer := -1
	known := 1
	for i, d := range out {
		switch {
		case d == -1:
			if infer >= 0 {
				return nil, ErrBadShape // at most one inferred extent
			}
			infer = i
		case d < 0:
			return nil, ErrBadShape
		default:
			known *= d
		}
	}
	if infer >= 0 {
		if known == 0 || numel%known != 0 {
			return nil, ErrBadShape
		}
		out[infer] = numel / known
	} else if known != numel {
		return nil, ErrBadShape
	}

	return out, nil
}

// Ravel returns a flat 1-d view sharing storage with t.
func Ravel(t *Tensor) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opRavel, ErrNilTensor)
	}

	return &Tensor{data: t.data, shape: Shape{len(t.data)}, dtype: t.dtype}, nil
}

// Permute returns a copy with axes reordered: out[i0,…,in] = t[iₚ₀,…,iₚₙ].
// axes must be a permutation of 0..ndim-1.
// Complexity: O(numel).
func Permute(t *Tensor, axes []int) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opPermute, ErrNilTensor)
	}
	rank := len(t.shape)
	if len(axes) != rank {
		return nil, tensorErrorf(opPermute, ErrBadAxis)
	}
	seen := make([]bool, rank)
	outShape := make(Shape, rank)
	for i, a := range axes {
		ax, err := ValidateAxis(a, rank)
		if err != nil || seen[ax] {
			return nil, tensorErrorf(opPermute, ErrBadAxis)
		}
		seen[ax] = true
		outShape[i] = t.shape[ax]
	}

	out := newTensor(outShape, t.dtype)
	if rank == 0 {
		out.data[0] = t.data[0]

		return out, nil
	}

	// Walk the output in flat order; derive the source offset from the
	// permuted strides of the input.
	srcStrides := t.shape.Strides()
	permStrides := make([]int, rank)
	for i, a := range axes {
		ax := a
		if ax < 0 {
			ax += rank
		}
		permStrides[i] = srcStrides[ax]
	}
	idx := make([]int, rank)
	src := 0
	for i := range out.data {
		out.data[i] = t.data[src]
		for ax := rank - 1; ax >= 0; ax-- {
			idx[ax]++
			src += permStrides[ax]
			if idx[ax] < outShape[ax] {
				break
			}
			idx[ax] = 0
			src -= permStrides[ax] * outShape[ax]
		}
	}

	return out, nil
}

// Transpose reverses all axes (NumPy .T): matrices flip rows/columns,
// scalars and vectors come back as clones.
func Transpose(t *Tensor) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opTranspose, ErrNilTensor)
	}
	if len(t.shape) <= 1 {
		return t.Clone(), nil
	}
	axes := make([]int, len(t.shape))
	for i := range axes {
		axes[i] = len(t.shape) - 1 - i
	}

	return Permute(t, axes)
}

// Tril returns a copy of a matrix with entries above the k-th diagonal
// zeroed (j > i+k cleared).
func Tril(t *Tensor, k int) (*Tensor, error) {
	return triSelect(opTril, t, k, true)
}

// Triu returns a copy of a matrix with entries below the k-th diagonal
// zeroed (j < i+k cleared).
func Triu(t *Tensor, k int) (*Tensor, error) {
	return triSelect(opTriu, t, k, false)
}

// triSelect shares validation and the row/column sweep of Tril/Triu.
func triSelect(opTag string, t *Tensor, k int, lower bool) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opTag, ErrNilTensor)
	}
	if err := ValidateMatrix(t); err != nil {
		return nil, tensorErrorf(opTag, err)
	}
	rows, cols := t.shape[0], t.shape[1]
	out := t.Clone()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if lower && j > i+k || !lower && j < i+k {
				out.data[i*cols+j] = 0
			}
		}
	}

	return out, nil
}

// Diag extracts the k-th diagonal of a matrix into a vector, or builds a
// matrix with a vector laid on its k-th diagonal, mirroring NumPy diag.
// Complexity: O(n) extraction, O(n²) construction.
func Diag(t *Tensor, k int) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opDiag, ErrNilTensor)
	}
	switch len(t.shape) {
	case 1:
		n := t.shape[0] + abs(k)
		out := newTensor(Shape{n, n}, t.dtype)
		for i, v := range t.data {
			r, c := i, i+k
			if k < 0 {
				r, c = i-k, i
			}
			out.data[r*n+c] = v
		}

		return out, nil
	case 2:
		rows, cols := t.shape[0], t.shape[1]
		var length int
		if k >= 0 {
			length = min(rows, cols-k)
		} else {
			length = min(rows+k, cols)
		}
		if length < 0 {
			length = 0
		}
		out := newTensor(Shape{length}, t.dtype)
		for i := 0; i < length; i++ {
			r, c := i, i+k
			if k < 0 {
				r, c = i-k, i
			}
			out.data[i] = t.data[r*cols+c]
		}

		return out, nil
	default:
		return nil, tensorErrorf(opDiag, ErrNotMatrix)
	}
}

// FillDiagonal writes val onto the main diagonal of a matrix, IN PLACE.
// With wrap=true the diagonal restarts below the last column for tall
// matrices (NumPy fill_diagonal semantics). The only mutating kernel in
// the engine. Complexity: O(min(r,c)) (O(r) when wrapping).
func FillDiagonal(t *Tensor, val float64, wrap bool) error {
	if t == nil {
		return tensorErrorf(opFillDiagonal, ErrNilTensor)
	}
	if err := ValidateMatrix(t); err != nil {
		return tensorErrorf(opFillDiagonal, err)
	}
	rows, cols := t.shape[0], t.shape[1]
	if cols == 0 {
		return nil
	}
	// Flat stride cols+1 lands on the diagonal; wrapping skips one row
	// after each full sweep, which the flat walk does automatically.
	step := cols + 1
	end := len(t.data)
	if !wrap && rows > cols {
		end = cols * cols // stop after the first full diagonal
	}
	for off := 0; off < end; off += step {
		t.data[off] = val
	}

	return nil
}

// Split divides t into equal sections along an axis; the axis extent must be
// divisible by sections. Each part is an independent copy.
func Split(t *Tensor, sections int, axis int) ([]*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opSplit, ErrNilTensor)
	}
	ax, err := ValidateAxis(axis, len(t.shape))
	if err != nil {
		return nil, tensorErrorf(opSplit, err)
	}
	if sections <= 0 || t.shape[ax]%sections != 0 {
		return nil, tensorErrorf(opSplit, ErrBadSplit)
	}

	return splitPoints(t, ax, evenPoints(t.shape[ax], sections)), nil
}

// ArraySplit divides t into sections along an axis, allowing uneven parts:
// the first extent%sections parts are one element longer (NumPy rule).
func ArraySplit(t *Tensor, sections int, axis int) ([]*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opArraySplit, ErrNilTensor)
	}
	ax, err := ValidateAxis(axis, len(t.shape))
	if err != nil {
		return nil, tensorErrorf(opArraySplit, err)
	}
	if sections <= 0 {
		return nil, tensorErrorf(opArraySplit, ErrBadSplit)
	}
	n := t.shape[ax]
	size, extra := n/sections, n%sections
	points := make([]int, 0, sections+1)
	points = append(points, 0)
	for i := 0; i < sections; i++ {
		step := size
		if i < extra {
			step++
		}
		points = append(points, points[len(points)-1]+step)
	}

	return splitPoints(t, ax, points), nil
}

// SplitAt divides t at explicit indices along an axis (NumPy split with an
// index list). Indices must be non-decreasing and within the axis extent.
func SplitAt(t *Tensor, indices []int, axis int) ([]*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opSplit, ErrNilTensor)
	}
	ax, err := ValidateAxis(axis, len(t.shape))
	if err != nil {
		return nil, tensorErrorf(opSplit, err)
	}
	n := t.shape[ax]
	points := make([]int, 0, len(indices)+2)
	points = append(points, 0)
	prev := 0
	for _, ix := range indices {
		if ix < prev || ix > n {
			return nil, tensorErrorf(opSplit, ErrBadSplit)
		}
		points = append(points, ix)
		prev = ix
	}
	points = append(points, n)

	return splitPoints(t, ax, points), nil
}

// evenPoints builds the cut list for an exact division.
func evenPoints(n, sections int) []int {
	size := n / sections
	points := make([]int, sections+1)
	for i := range points {
		points[i] = i * size
	}

	return points
}

// splitPoints copies the half-open ranges [points[i], points[i+1]) along a
// validated axis into independent tensors.
func splitPoints(t *Tensor, axis int, points []int) []*Tensor {
	outer, n, inner := t.axisSpans(axis)
	parts := make([]*Tensor, len(points)-1)
	for p := 0; p < len(parts); p++ {
		lo, hi := points[p], points[p+1]
		shape := t.shape.Clone()
		shape[axis] = hi - lo
		part := newTensor(shape, t.dtype)
		for o := 0; o < outer; o++ {
			src := (o*n + lo) * inner
			dst := o * (hi - lo) * inner
			copy(part.data[dst:dst+(hi-lo)*inner], t.data[src:src+(hi-lo)*inner])
		}
		parts[p] = part
	}

	return parts
}

// Meshgrid expands 1-d coordinate vectors into broadcast coordinate grids.
// indexing selects IndexXY (Cartesian, first two axes swapped) or IndexIJ
// (matrix order). Every returned grid has the same shape.
// Complexity: O(len(vs) · numel(grid)).
func Meshgrid(indexing string, vs ...*Tensor) ([]*Tensor, error) {
	if indexing != IndexXY && indexing != IndexIJ {
		return nil, tensorErrorf(opMeshgrid, ErrBadMode)
	}
	if len(vs) == 0 {
		return nil, tensorErrorf(opMeshgrid, ErrEmptyInput)
	}
	for _, v := range vs {
		if v == nil {
			return nil, tensorErrorf(opMeshgrid, ErrNilTensor)
		}
		if err := ValidateVector(v); err != nil {
			return nil, tensorErrorf(opMeshgrid, err)
		}
	}

	rank := len(vs)
	dims := make(Shape, rank)
	for i, v := range vs {
		dims[i] = v.shape[0]
	}
	// Cartesian indexing swaps the first two axes of the grid.
	if indexing == IndexXY && rank >= 2 {
		dims[0], dims[1] = dims[1], dims[0]
	}

	out := make([]*Tensor, rank)
	for k, v := range vs {
		// Axis along which grid k varies.
		axis := k
		if indexing == IndexXY && rank >= 2 {
			if k == 0 {
				axis = 1
			} else if k == 1 {
				axis = 0
			}
		}
		g := newTensor(dims, Float64)
		idx := make([]int, rank)
		for i := range g.data {
			g.data[i] = v.data[idx[axis]]
			for ax := rank - 1; ax >= 0; ax-- {
				idx[ax]++
				if idx[ax] < dims[ax] {
					break
				}
				idx[ax] = 0
			}
		}
		out[k] = g
	}

	return out, nil
}

// Vander builds the Vandermonde matrix of a vector: n columns of powers,
// decreasing by default (column j holds x^(n-1-j)), increasing on request.
// Complexity: O(len(x)·n).
func Vander(x *Tensor, n int, increasing bool) (*Tensor, error) {
	if x == nil {
		return nil, tensorErrorf(opVander, ErrNilTensor)
	}
	if err := ValidateVector(x); err != nil {
		return nil, tensorErrorf(opVander, err)
	}
	if n < 0 {
		return nil, tensorErrorf(opVander, ErrBadCount)
	}
	rows := x.shape[0]
	out := newTensor(Shape{rows, n}, x.dtype)
	for i := 0; i < rows; i++ {
		acc := 1.0
		for j := 0; j < n; j++ {
			col := j
			if !increasing {
				col = n - 1 - j
			}
			out.data[i*n+col] = acc
			acc *= x.data[i]
		}
	}

	return out, nil
}

// BroadcastTo materializes t broadcast to the given shape.
func BroadcastTo(t *Tensor, shape Shape) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opBroadcastTo, ErrNilTensor)
	}
	joint, err := BroadcastShapes(t.shape, shape)
	if err != nil || !joint.Equal(shape) {
		return nil, tensorErrorf(opBroadcastTo, ErrShapeMismatch)
	}
	out := newTensor(shape, t.dtype)
	str := broadcastStrides(t.shape, shape)
	rank := len(shape)
	idx := make([]int, rank)
	src := 0
	for i := range out.data {
		out.data[i] = t.data[src]
		for ax := rank - 1; ax >= 0; ax-- {
			idx[ax]++
			src += str[ax]
			if idx[ax] < shape[ax] {
				break
			}
			idx[ax] = 0
			src -= str[ax] * shape[ax]
		}
	}

	return out, nil
}

// Stack joins equal-shape tensors along a new leading axis.
func Stack(ts []*Tensor) (*Tensor, error) {
	if len(ts) == 0 {
		return nil, tensorErrorf(opStack, ErrEmptyInput)
	}
	if err := ValidateAllNotNil(ts...); err != nil {
		return nil, tensorErrorf(opStack, err)
	}
	base := ts[0]
	for _, t := range ts[1:] {
		if err := ValidateSameShape(base, t); err != nil {
			return nil, tensorErrorf(opStack, err)
		}
	}
	shape := append(Shape{len(ts)}, base.shape...)
	out := newTensor(shape, base.dtype)
	block := base.Size()
	for i, t := range ts {
		copy(out.data[i*block:(i+1)*block], t.data)
	}

	return out, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
