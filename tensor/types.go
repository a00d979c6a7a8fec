// SPDX-License-Identifier: MIT
// Package tensor: core value types (Shape, DType, Tensor) and element access.
//
// Purpose:
//   - Declare the dense N-d container and its O(1) accessors.
//   - Keep storage rules in one place: flat row-major []float64, Shape owns
//     the layout, DType tags interpretation (storage is always float64).
//
// Notes:
//   - Scalars are 0-d tensors: Shape{} with exactly one element.
//   - Kernels live in dedicated files (elementwise, reduce, shape_ops,
//     linalg, einsum, gradient, window); this file stays dependency-free.

package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Shape describes the extent of each axis, outermost first.
// A nil/empty Shape is the scalar shape.
type Shape []int

// Numel returns the total element count (1 for scalars, 0 if any axis is 0).
// Complexity: O(ndim).
func (s Shape) Numel() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	if len(s) == 0 {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Equal reports whether both shapes have identical rank and extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Strides returns row-major strides: the flat distance between consecutive
// elements along each axis. Empty for scalars.
// Complexity: O(ndim).
func (s Shape) Strides() []int {
	if len(s) == 0 {
		return nil
	}
	str := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		str[i] = acc
		acc *= s[i]
	}

	return str
}

// String renders the shape as "(2, 3)"; scalars render as "()".
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, d := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", d)
	}
	sb.WriteString(")")

	return sb.String()
}

// DType tags how a buffer's float64 storage is to be interpreted.
// It is metadata only: Int64-tagged tensors hold integral values,
// Bool-tagged tensors hold 0/1. Storage never changes representation.
type DType int

const (
	// Float64 is the default element interpretation.
	Float64 DType = iota

	// Int64 tags integral-valued buffers (Arange over ints, FloorDiv results).
	Int64

	// Bool tags 0/1-valued buffers (comparisons, IsFinite family).
	Bool
)

// String returns the NumPy-style dtype name.
func (dt DType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Tensor is a dense N-dimensional array: flat row-major float64 storage plus
// a Shape and a DType tag. The zero value is not usable; construct via the
// New*/From* constructors.
type Tensor struct {
	data  []float64 // flat backing storage, length == shape.Numel()
	shape Shape     // axis extents, outermost first
	dtype DType     // interpretation tag; storage is always float64
}

// Shape returns a copy of the tensor's shape (callers cannot corrupt layout).
func (t *Tensor) Shape() Shape { return t.shape.Clone() }

// NDim returns the rank (0 for scalars).
func (t *Tensor) NDim() int { return len(t.shape) }

// Size returns the total element count.
func (t *Tensor) Size() int { return len(t.data) }

// DType returns the interpretation tag.
func (t *Tensor) DType() DType { return t.dtype }

// Data returns the flat backing slice itself, not a copy. It is the engine's
// escape hatch for kernel code and zero-copy interop; mutating it mutates the
// tensor (and every view sharing the buffer).
func (t *Tensor) Data() []float64 { return t.data }

// offsetOf computes the flat index for an index tuple.
// Stage 1 (Validate): tuple length must equal rank, every index in bounds.
// Stage 2 (Execute): accumulate row-major offset.
// Complexity: O(ndim).
func (t *Tensor) offsetOf(ix []int) (int, error) {
	if len(ix) != len(t.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for i, v := range ix {
		if v < 0 || v >= t.shape[i] {
			return 0, ErrOutOfRange
		}
		off = off*t.shape[i] + v
	}

	return off, nil
}

// At retrieves the element at the given index tuple. Scalars use At() with
// no indices. Returns ErrOutOfRange on a bad tuple, never panics.
// Complexity: O(ndim).
func (t *Tensor) At(ix ...int) (float64, error) {
	if t == nil {
		return 0, tensorErrorf("At", ErrNilTensor)
	}
	off, err := t.offsetOf(ix)
	if err != nil {
		return 0, tensorErrorf("At", err)
	}

	return t.data[off], nil
}

// Set assigns v at the given index tuple (value first, indices variadic).
// Returns ErrOutOfRange on a bad tuple, never panics.
// Complexity: O(ndim).
func (t *Tensor) Set(v float64, ix ...int) error {
	if t == nil {
		return tensorErrorf("Set", ErrNilTensor)
	}
	off, err := t.offsetOf(ix)
	if err != nil {
		return tensorErrorf("Set", err)
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy: fresh storage, same shape and dtype.
// Complexity: O(n) time and memory.
func (t *Tensor) Clone() *Tensor {
	cp := make([]float64, len(t.data))
	copy(cp, t.data)

	return &Tensor{data: cp, shape: t.shape.Clone(), dtype: t.dtype}
}

// AsType returns a copy reinterpreted under dt: Int64 truncates toward zero,
// Bool collapses to 0/1, Float64 copies verbatim.
// Complexity: O(n).
func (t *Tensor) AsType(dt DType) *Tensor {
	out := t.Clone()
	out.dtype = dt
	switch dt {
	case Int64:
		for i, v := range out.data {
			out.data[i] = math.Trunc(v)
		}
	case Bool:
		for i, v := range out.data {
			if v != 0 {
				out.data[i] = 1
			} else {
				out.data[i] = 0
			}
		}
	}

	return out
}

// String implements fmt.Stringer for debugging: scalars render bare, 1-d as
// "[a, b]", 2-d as stacked rows, higher ranks as shape plus flat data.
// Complexity: O(n) for string construction.
func (t *Tensor) String() string {
	if t == nil {
		return "<nil>"
	}
	switch len(t.shape) {
	case 0:
		return fmt.Sprintf("%g", t.data[0])
	case 1:
		return formatRow(t.data)
	case 2:
		var sb strings.Builder
		rows, cols := t.shape[0], t.shape[1]
		for i := 0; i < rows; i++ {
			sb.WriteString(formatRow(t.data[i*cols : (i+1)*cols]))
			if i < rows-1 {
				sb.WriteString("\n")
			}
		}

		return sb.String()
	default:
		return fmt.Sprintf("Tensor%s %s", t.shape, formatRow(t.data))
	}
}

// formatRow renders a flat slice as "[a, b, c]".
func formatRow(xs []float64) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range xs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteString("]")

	return sb.String()
}
