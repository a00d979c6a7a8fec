// SPDX-License-Identifier: MIT
// Package tensor: symmetric window generators.
//
// Purpose: return the classic smoothing windows as 1-d tensors. Where
// gonum/dsp/window has the window (Hamming, Hann, Blackman) the values come
// from applying it to a ones vector; Bartlett and Kaiser use their
// closed forms directly.
//
// Conventions (NumPy window semantics):
//   - n < 1 returns an empty vector, n == 1 returns [1]; both shortcuts are
//     taken before gonum, whose formulas divide by n-1.
//   - All windows are symmetric, peak 1 at the center.

package tensor

import (
	"math"

	"gonum.org/v1/gonum/dsp/window"
)

// Bartlett returns the triangular window
// w[i] = 1 - |2i/(n-1) - 1|.
func Bartlett(n int) *Tensor {
	return makeWindow(n, func(i int) float64 {
		return 1 - math.Abs(2*float64(i)/float64(n-1)-1)
	})
}

// Hamming returns the raised-cosine Hamming window via gonum.
func Hamming(n int) *Tensor {
	return applyWindow(n, window.Hamming)
}

// Hanning returns the Hann window via gonum (NumPy spells it hanning).
func Hanning(n int) *Tensor {
	return applyWindow(n, window.Hann)
}

// Blackman returns the three-term Blackman window via gonum.
func Blackman(n int) *Tensor {
	return applyWindow(n, window.Blackman)
}

// Kaiser returns the Kaiser window
// w[i] = I0(beta·sqrt(1 - (2i/(n-1) - 1)²)) / I0(beta),
// with I0 the zeroth-order modified Bessel function.
func Kaiser(n int, beta float64) *Tensor {
	denom := besselI0(beta)

	return makeWindow(n, func(i int) float64 {
		r := 2*float64(i)/float64(n-1) - 1

		return besselI0(beta*math.Sqrt(1-r*r)) / denom
	})
}

// makeWindow handles the degenerate lengths and fills the rest from f.
func makeWindow(n int, f func(i int) float64) *Tensor {
	switch {
	case n < 1:
		return newTensor(Shape{0}, Float64)
	case n == 1:
		t := newTensor(Shape{1}, Float64)
		t.data[0] = 1

		return t
	}
	t := newTensor(Shape{n}, Float64)
	for i := 0; i < n; i++ {
		t.data[i] = f(i)
	}

	return t
}

// applyWindow runs a gonum in-place window over a ones vector. Degenerate
// lengths short-circuit before gonum (its formulas divide by n-1).
func applyWindow(n int, w func([]float64) []float64) *Tensor {
	t := makeWindow(n, func(int) float64 { return 1 })
	if len(t.data) > 1 {
		w(t.data)
	}

	return t
}

// besselI0 evaluates the zeroth-order modified Bessel function of the first
// kind by its power series I0(x) = Σ ((x/2)^k / k!)², terminating when a
// term stops contributing.
func besselI0(x float64) float64 {
	sum, term := 1.0, 1.0
	half := x / 2
	for k := 1; k < 64; k++ {
		term *= (half / float64(k)) * (half / float64(k))
		sum += term
		if term < sum*1e-16 {
			break
		}
	}

	return sum
}
