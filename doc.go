// Package dimq is your in-memory toolkit for unit-aware array computing —
// exact dimensional algebra, dimensioned tensors, and a NumPy-flavored
// operation catalogue that propagates units for you.
//
// 🚀 What is dimq?
//
//	A modern, value-semantics library that brings together:
//		• Exact dimensions: seven SI exponents as rationals, never floats
//		• Quantities: any tensor tagged with a Dimension, immutable by value
//		• A dense-tensor engine: creation, elementwise, linalg, einsum,
//		  gradients, windows — gonum underneath
//		• Four propagation rules: keep, transform, combine, check — every
//		  catalogue operation reduces to exactly one of them
//		• Unitless collapse: results whose Dimension cancels out come back
//		  as plain buffers, never spurious wrappers
//
// ✨ Why choose dimq?
//
//   - Fail fast – every dimension check runs before any numeric kernel
//   - Exact algebra – sqrt∘square is the identity, equality is equality
//   - Pure Go values – no cgo, no mutation, no hidden state
//   - One entry point – umath accepts quantities, tensors, scalars and
//     nested slices alike and coerces them itself
//
// Under the hood, everything is organized under four subpackages:
//
//	dim/      — the exponent-vector algebra (Ratio, Dimension, CheckSame)
//	tensor/   — the dense numeric engine (dimension-blind, gonum-backed)
//	quantity/ — tensor + Dimension as one immutable value
//	umath/    — the operation dispatcher: the catalogue, the four rules
//
// Quick taste:
//
//	pos := quantity.FromSlice([]float64{10, 20}, dim.Length)
//	dt := quantity.FromScalar(2, dim.Time)
//
//	v, _ := umath.Divide(pos, dt)  // [5, 10] L·T⁻¹
//	r, _ := umath.Divide(pos, pos) // [1, 1] — bare, the units cancelled
//
// Dive into the per-package docs and example_test.go files for the full
// catalogue, the propagation rules and the error contract.
//
//	go get github.com/katalvlaran/dimq
package dimq
