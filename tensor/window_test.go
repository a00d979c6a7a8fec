// SPDX-License-Identifier: MIT
// Package tensor_test verifies the window generators. Checks are structural
// (length, symmetry, peak, edge behavior) so they hold for any standard
// coefficient convention.

package tensor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dimq/tensor"
)

// assertWindowShape checks the invariants every symmetric window obeys:
// length n, symmetry w[i] == w[n-1-i], peak 1 at the center, values ≤ 1.
func assertWindowShape(t *testing.T, w *tensor.Tensor, n int) {
	t.Helper()
	CompareShape(t, w, tensor.Shape{n})
	data := w.Data()
	for i := 0; i < n/2; i++ {
		if math.Abs(data[i]-data[n-1-i]) > 1e-12 {
			t.Fatalf("asymmetry at %d: %g vs %g", i, data[i], data[n-1-i])
		}
	}
	if n%2 == 1 {
		if math.Abs(data[n/2]-1) > 1e-12 {
			t.Fatalf("odd-length center = %g; want 1", data[n/2])
		}
	}
	for i, v := range data {
		if v > 1+1e-12 {
			t.Fatalf("w[%d] = %g exceeds 1", i, v)
		}
	}
}

func TestWindows_DegenerateLengths(t *testing.T) {
	t.Parallel()

	for name, build := range map[string]func(int) *tensor.Tensor{
		"bartlett": tensor.Bartlett,
		"hamming":  tensor.Hamming,
		"hanning":  tensor.Hanning,
		"blackman": tensor.Blackman,
		"kaiser":   func(n int) *tensor.Tensor { return tensor.Kaiser(n, 5) },
	} {
		t.Run(name, func(t *testing.T) {
			CompareShape(t, build(0), tensor.Shape{0})
			CompareShape(t, build(-3), tensor.Shape{0})
			one := build(1)
			CompareFlat(t, []float64{1}, one)
		})
	}
}

func TestBartlett_ExactTriangle(t *testing.T) {
	t.Parallel()

	got := tensor.Bartlett(5)
	CompareFlat(t, []float64{0, 0.5, 1, 0.5, 0}, got)
	assertWindowShape(t, got, 5)
}

func TestHamming_Structure(t *testing.T) {
	t.Parallel()

	w := tensor.Hamming(9)
	assertWindowShape(t, w, 9)
	// Hamming never reaches zero at the edges, whatever the exact α.
	data := w.Data()
	if data[0] < 0.05 || data[0] > 0.1 {
		t.Fatalf("edge = %g; want a small positive pedestal", data[0])
	}
}

func TestHanning_ZeroEdges(t *testing.T) {
	t.Parallel()

	w := tensor.Hanning(9)
	assertWindowShape(t, w, 9)
	data := w.Data()
	if math.Abs(data[0]) > 1e-12 || math.Abs(data[8]) > 1e-12 {
		t.Fatalf("Hann edges = %g, %g; want 0", data[0], data[8])
	}
}

func TestBlackman_NearZeroEdges(t *testing.T) {
	t.Parallel()

	w := tensor.Blackman(9)
	assertWindowShape(t, w, 9)
	data := w.Data()
	if math.Abs(data[0]) > 0.01 {
		t.Fatalf("Blackman edge = %g; want ~0", data[0])
	}
}

func TestKaiser_BetaZeroIsRectangular(t *testing.T) {
	t.Parallel()

	// I0(0) = 1, so β = 0 collapses to the all-ones window.
	w := tensor.Kaiser(7, 0)
	CompareCloseFlat(t, []float64{1, 1, 1, 1, 1, 1, 1}, w, 1e-12)
}

func TestKaiser_LargerBetaNarrows(t *testing.T) {
	t.Parallel()

	wide := tensor.Kaiser(11, 2)
	narrow := tensor.Kaiser(11, 8)
	assertWindowShape(t, wide, 11)
	assertWindowShape(t, narrow, 11)
	// Higher beta concentrates energy: edges drop.
	if narrow.Data()[0] >= wide.Data()[0] {
		t.Fatalf("beta=8 edge %g must be below beta=2 edge %g",
			narrow.Data()[0], wide.Data()[0])
	}
}
