// SPDX-License-Identifier: MIT
// Package tensor: elementwise kernels (unary maps, binary zips, comparisons)
// with NumPy broadcasting.
//
// Purpose:
//   - One broadcast walker serves every binary kernel; one map helper serves
//     every unary kernel. Kernels themselves are one-line value functions.
//   - Same-shape operands take a flat fast path; Add/Sub/Mul/Div additionally
//     delegate the flat loop to gonum/floats fused kernels.
//
// Determinism:
//   - Fast path: single flat walk 0..n-1.
//   - Broadcast path: fixed odometer order (last axis fastest), identical on
//     every run.

package tensor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation tags for unified error wrapping (no magic strings).
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opDiv      = "Div"
	opFloorDiv = "FloorDiv"
	opMod      = "Mod"
	opPow      = "Pow"
	opLdexp    = "Ldexp"
	opMaximum  = "Maximum"
	opMinimum  = "Minimum"
	opDivmod   = "Divmod"
	opCompare  = "Compare"
	opAllClose = "AllClose"
	opUnary    = "Map"
)

// BroadcastShapes resolves the NumPy broadcast of two shapes: axes align
// right, extents must match or be 1, missing axes count as 1.
// Returns ErrShapeMismatch when the shapes are incompatible.
// Complexity: O(max rank).
func BroadcastShapes(a, b Shape) (Shape, error) {
	n := max(len(a), len(b))
	out := make(Shape, n)
	for i := 0; i < n; i++ {
		da, db := 1, 1
		if j := i - (n - len(a)); j >= 0 {
			da = a[j]
		}
		if j := i - (n - len(b)); j >= 0 {
			db = b[j]
		}
		switch {
		case da == db:
			out[i] = da
		case da == 1:
			out[i] = db
		case db == 1:
			out[i] = da
		default:
			return nil, ErrShapeMismatch
		}
	}

	return out, nil
}

// broadcastStrides maps a tensor's row-major strides onto a broadcast result
// shape: stride 0 on every axis the tensor repeats along.
func broadcastStrides(s Shape, out Shape) []int {
	str := make([]int, len(out))
	own := s.Strides()
	offset := len(out) - len(s)
	for i := offset; i < len(out); i++ {
		if s[i-offset] == 1 && out[i] != 1 {
			str[i] = 0 // repeat along this axis
		} else {
			str[i] = own[i-offset]
		}
	}

	return str
}

// broadcastZip evaluates out[i] = f(a[...], b[...]) over the broadcast of the
// two operand shapes.
// Stage 1 (Validate): non-nil operands, broadcast-compatible shapes.
// Stage 2 (Execute): equal shapes walk flat; otherwise an incremental
// odometer tracks both operand offsets without re-deriving indices.
// Complexity: O(numel(out)) time, O(rank) extra space.
func broadcastZip(opTag string, a, b *Tensor, dt DType, f func(x, y float64) float64) (*Tensor, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, tensorErrorf(opTag, err)
	}

	// Fast path: identical shapes, single flat loop.
	if a.shape.Equal(b.shape) {
		out := newTensor(a.shape, dt)
		for i := range out.data {
			out.data[i] = f(a.data[i], b.data[i])
		}

		return out, nil
	}

	outShape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, tensorErrorf(opTag, err)
	}
	out := newTensor(outShape, dt)

	sa := broadcastStrides(a.shape, outShape)
	sb := broadcastStrides(b.shape, outShape)
	rank := len(outShape)
	idx := make([]int, rank)
	offA, offB := 0, 0
	for i := range out.data {
		out.data[i] = f(a.data[offA], b.data[offB])
		// Odometer: bump the last axis, carry leftwards.
		for ax := rank - 1; ax >= 0; ax-- {
			idx[ax]++
			offA += sa[ax]
			offB += sb[ax]
			if idx[ax] < outShape[ax] {
				break
			}
			idx[ax] = 0
			offA -= sa[ax] * outShape[ax]
			offB -= sb[ax] * outShape[ax]
		}
	}

	return out, nil
}

// mapUnary evaluates out[i] = f(t[i]) into a fresh tensor tagged dt.
func mapUnary(opTag string, t *Tensor, dt DType, f func(float64) float64) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opTag, ErrNilTensor)
	}
	out := newTensor(t.shape, dt)
	for i, v := range t.data {
		out.data[i] = f(v)
	}

	return out, nil
}

// resultDType keeps integral tagging only when both operands carry it.
func resultDType(a, b *Tensor) DType {
	if a.dtype == Int64 && b.dtype == Int64 {
		return Int64
	}

	return Float64
}

// ---------- Binary arithmetic ----------

// Add returns a + b with broadcasting. Same-shape operands ride the
// gonum fused kernel. Complexity: O(numel).
func Add(a, b *Tensor) (*Tensor, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, tensorErrorf(opAdd, err)
	}
	if a.shape.Equal(b.shape) {
		out := newTensor(a.shape, resultDType(a, b))
		floats.AddTo(out.data, a.data, b.data)

		return out, nil
	}

	return broadcastZip(opAdd, a, b, resultDType(a, b), func(x, y float64) float64 { return x + y })
}

// Sub returns a - b with broadcasting. Same-shape operands ride the
// gonum fused kernel. Complexity: O(numel).
func Sub(a, b *Tensor) (*Tensor, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, tensorErrorf(opSub, err)
	}
	if a.shape.Equal(b.shape) {
		out := newTensor(a.shape, resultDType(a, b))
		floats.SubTo(out.data, a.data, b.data)

		return out, nil
	}

	return broadcastZip(opSub, a, b, resultDType(a, b), func(x, y float64) float64 { return x - y })
}

// Mul returns a · b elementwise with broadcasting. Same-shape operands ride
// the gonum fused kernel. Complexity: O(numel).
func Mul(a, b *Tensor) (*Tensor, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, tensorErrorf(opMul, err)
	}
	if a.shape.Equal(b.shape) {
		out := newTensor(a.shape, resultDType(a, b))
		floats.MulTo(out.data, a.data, b.data)

		return out, nil
	}

	return broadcastZip(opMul, a, b, resultDType(a, b), func(x, y float64) float64 { return x * y })
}

// Div returns a / b elementwise with broadcasting (true division: the result
// is always Float64-tagged). Division by zero follows IEEE (±Inf, NaN).
// Complexity: O(numel).
func Div(a, b *Tensor) (*Tensor, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, tensorErrorf(opDiv, err)
	}
	if a.shape.Equal(b.shape) {
		out := newTensor(a.shape, Float64)
		floats.DivTo(out.data, a.data, b.data)

		return out, nil
	}

	return broadcastZip(opDiv, a, b, Float64, func(x, y float64) float64 { return x / y })
}

// FloorDiv returns floor(a / b) elementwise with broadcasting.
func FloorDiv(a, b *Tensor) (*Tensor, error) {
	return broadcastZip(opFloorDiv, a, b, resultDType(a, b), floorDivVal)
}

// Mod returns the Python-style remainder a - floor(a/b)·b, whose sign
// follows the divisor. Complexity: O(numel).
func Mod(a, b *Tensor) (*Tensor, error) {
	return broadcastZip(opMod, a, b, resultDType(a, b), modVal)
}

// Divmod returns floor(a/b) and the matching remainder in one call, the
// invariant being q·b + r == a (up to float rounding).
func Divmod(a, b *Tensor) (*Tensor, *Tensor, error) {
	q, err := broadcastZip(opDivmod, a, b, resultDType(a, b), floorDivVal)
	if err != nil {
		return nil, nil, err
	}
	r, err := broadcastZip(opDivmod, a, b, resultDType(a, b), modVal)
	if err != nil {
		return nil, nil, err
	}

	return q, r, nil
}

// Pow returns a ** b elementwise with broadcasting.
func Pow(a, b *Tensor) (*Tensor, error) {
	return broadcastZip(opPow, a, b, Float64, math.Pow)
}

// PowScalar returns t ** p elementwise.
func PowScalar(t *Tensor, p float64) (*Tensor, error) {
	return mapUnary(opPow, t, Float64, func(v float64) float64 { return math.Pow(v, p) })
}

// Ldexp returns a · 2**b elementwise with broadcasting.
func Ldexp(a, b *Tensor) (*Tensor, error) {
	return broadcastZip(opLdexp, a, b, Float64, func(x, y float64) float64 { return x * math.Exp2(y) })
}

// Maximum returns the elementwise maximum with broadcasting.
func Maximum(a, b *Tensor) (*Tensor, error) {
	return broadcastZip(opMaximum, a, b, resultDType(a, b), math.Max)
}

// Minimum returns the elementwise minimum with broadcasting.
func Minimum(a, b *Tensor) (*Tensor, error) {
	return broadcastZip(opMinimum, a, b, resultDType(a, b), math.Min)
}

func floorDivVal(x, y float64) float64 { return math.Floor(x / y) }

func modVal(x, y float64) float64 { return x - math.Floor(x/y)*y }

// ---------- Unary maps ----------

// Neg returns -t (gonum scale kernel on the flat buffer).
func Neg(t *Tensor) (*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opUnary, ErrNilTensor)
	}
	out := newTensor(t.shape, t.dtype)
	floats.ScaleTo(out.data, -1, t.data)

	return out, nil
}

// Abs returns |t| elementwise.
func Abs(t *Tensor) (*Tensor, error) { return mapUnary(opUnary, t, t.safeDType(), math.Abs) }

// Sqrt returns √t elementwise (NaN for negative input, IEEE rules).
func Sqrt(t *Tensor) (*Tensor, error) { return mapUnary(opUnary, t, Float64, math.Sqrt) }

// Cbrt returns the real cube root elementwise (defined for negatives).
func Cbrt(t *Tensor) (*Tensor, error) { return mapUnary(opUnary, t, Float64, math.Cbrt) }

// Square returns t² elementwise.
func Square(t *Tensor) (*Tensor, error) {
	return mapUnary(opUnary, t, t.safeDType(), func(v float64) float64 { return v * v })
}

// Reciprocal returns 1/t elementwise (±Inf at zero, IEEE rules).
func Reciprocal(t *Tensor) (*Tensor, error) {
	return mapUnary(opUnary, t, Float64, func(v float64) float64 { return 1 / v })
}

// Floor returns ⌊t⌋ elementwise.
func Floor(t *Tensor) (*Tensor, error) { return mapUnary(opUnary, t, t.safeDType(), math.Floor) }

// Ceil returns ⌈t⌉ elementwise.
func Ceil(t *Tensor) (*Tensor, error) { return mapUnary(opUnary, t, t.safeDType(), math.Ceil) }

// Round rounds half to even (banker's rounding, the NumPy default).
func Round(t *Tensor) (*Tensor, error) {
	return mapUnary(opUnary, t, t.safeDType(), math.RoundToEven)
}

// Trunc drops the fractional part toward zero.
func Trunc(t *Tensor) (*Tensor, error) { return mapUnary(opUnary, t, t.safeDType(), math.Trunc) }

// Sign returns -1, 0 or +1 elementwise (NaN propagates).
func Sign(t *Tensor) (*Tensor, error) {
	return mapUnary(opUnary, t, t.safeDType(), func(v float64) float64 {
		switch {
		case math.IsNaN(v):
			return v
		case v > 0:
			return 1
		case v < 0:
			return -1
		default:
			return 0
		}
	})
}

// safeDType keeps the operand's tag for shape/order-preserving unary maps
// but never lets Bool leak through arithmetic.
func (t *Tensor) safeDType() DType {
	if t.dtype == Bool {
		return Int64
	}

	return t.dtype
}

// ---------- Comparisons and predicates ----------

// compare evaluates a predicate into a Bool-tagged 0/1 tensor.
func compare(a, b *Tensor, pred func(x, y float64) bool) (*Tensor, error) {
	return broadcastZip(opCompare, a, b, Bool, func(x, y float64) float64 {
		if pred(x, y) {
			return 1
		}

		return 0
	})
}

// Equal returns the elementwise x == y mask (Bool-tagged, broadcasting).
func Equal(a, b *Tensor) (*Tensor, error) {
	return compare(a, b, func(x, y float64) bool { return x == y })
}

// NotEqual returns the elementwise x != y mask.
func NotEqual(a, b *Tensor) (*Tensor, error) {
	return compare(a, b, func(x, y float64) bool { return x != y })
}

// Less returns the elementwise x < y mask.
func Less(a, b *Tensor) (*Tensor, error) {
	return compare(a, b, func(x, y float64) bool { return x < y })
}

// LessEqual returns the elementwise x <= y mask.
func LessEqual(a, b *Tensor) (*Tensor, error) {
	return compare(a, b, func(x, y float64) bool { return x <= y })
}

// Greater returns the elementwise x > y mask.
func Greater(a, b *Tensor) (*Tensor, error) {
	return compare(a, b, func(x, y float64) bool { return x > y })
}

// GreaterEqual returns the elementwise x >= y mask.
func GreaterEqual(a, b *Tensor) (*Tensor, error) {
	return compare(a, b, func(x, y float64) bool { return x >= y })
}

// IsFinite returns the elementwise finiteness mask (Bool-tagged).
func IsFinite(t *Tensor) (*Tensor, error) {
	return mapUnary(opUnary, t, Bool, func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}

		return 1
	})
}

// IsInf returns the elementwise ±Inf mask (Bool-tagged).
func IsInf(t *Tensor) (*Tensor, error) {
	return mapUnary(opUnary, t, Bool, func(v float64) float64 {
		if math.IsInf(v, 0) {
			return 1
		}

		return 0
	})
}

// IsNaN returns the elementwise NaN mask (Bool-tagged).
func IsNaN(t *Tensor) (*Tensor, error) {
	return mapUnary(opUnary, t, Bool, func(v float64) float64 {
		if math.IsNaN(v) {
			return 1
		}

		return 0
	})
}

// AllClose reports whether every pair satisfies |x-y| ≤ atol + rtol·|y|
// after broadcasting. Equal infinities compare close; NaN never does.
// Complexity: O(numel).
func AllClose(a, b *Tensor, rtol, atol float64) (bool, error) {
	mask, err := compare(a, b, func(x, y float64) bool {
		if x == y {
			return true // covers equal infinities
		}

		return math.Abs(x-y) <= atol+rtol*math.Abs(y)
	})
	if err != nil {
		return false, tensorErrorf(opAllClose, err)
	}
	for _, v := range mask.data {
		if v == 0 {
			return false, nil
		}
	}

	return true, nil
}
