// SPDX-License-Identifier: MIT

// Package tensor is the numeric array engine of dimq: dense N-dimensional
// float64 buffers with NumPy-style semantics, built on gonum kernels.
//
// 🚀 What is tensor?
//
//	A Tensor is a flat row-major []float64 plus a Shape and a DType tag.
//	Scalars are 0-d tensors, vectors are 1-d, matrices are 2-d, and the
//	same kernels serve every rank:
//	  • construction: Zeros, Ones, Full, Eye, Tri, Arange, Linspace, …
//	  • elementwise:  Add, Sub, Mul, Div, Pow, comparisons — with broadcasting
//	  • reductions:   Sum, Prod, Mean, Var, Max, Min — full or per-axis
//	  • shape:        Reshape, Permute, Tril, Diag, Split, Meshgrid, Stack
//	  • linalg:       Dot, MatMul, Outer, Kron, TensorDot, Cross, Convolve
//	  • einsum:       subscript parsing into an executable contraction Plan
//
// ✨ Design rules:
//   - strict fail-fast validation; every failure is a "tensor: ..." sentinel
//     matched via errors.Is (see errors.go)
//   - operands are never mutated; the only in-place entry point is
//     FillDiagonal, and it says so
//   - deterministic loops everywhere: flat 0..n-1 walks on the fast path,
//     fixed odometer order on the broadcast path
//   - numeric heavy lifting delegates to gonum (floats, stat, mat,
//     dsp/window); this package owns shapes, validation and dispatch
//
// The package is dimension-blind on purpose: it computes values only.
// Unit bookkeeping lives in dimq/quantity and dimq/umath, which call in here.
//
// See example_test.go for runnable examples.
package tensor
