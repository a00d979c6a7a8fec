// SPDX-License-Identifier: MIT
// Package tensor: numerical gradient (central differences).

package tensor

// opGradient tags gradient errors.
const opGradient = "Gradient"

// Gradient estimates the partial derivative of t along every axis and
// returns one tensor per axis, always Float64.
//
// Behavior (NumPy gradient):
//   - Interior points use second-order central differences; boundary points
//     use first-order one-sided differences.
//   - spacings supplies the sample distances. Zero arguments mean unit
//     spacing on every axis. One argument applies to every axis. Otherwise
//     one argument per axis is required. Each spacing is either a 0-d
//     scalar step or a 1-d coordinate vector whose length matches the axis;
//     coordinate vectors switch the interior stencil to the non-uniform
//     weights a·f[i-1] + b·f[i] + c·f[i+1] with
//     a = -hs/(hd·(hd+hs)), b = (hs-hd)/(hd·hs), c = hd/(hs·(hd+hs)),
//     where hd = x[i]-x[i-1] and hs = x[i+1]-x[i].
//   - Every axis must have at least 2 samples.
//
// Errors: ErrNilTensor, ErrBadCount (spacing argument count),
// ErrShapeMismatch (coordinate length), ErrNotVector (spacing rank above 1),
// ErrBadShape (axis shorter than 2).
// Complexity: O(rank · numel).
func Gradient(t *Tensor, spacings ...*Tensor) ([]*Tensor, error) {
	if t == nil {
		return nil, tensorErrorf(opGradient, ErrNilTensor)
	}
	rank := t.NDim()
	if rank == 0 {
		return nil, tensorErrorf(opGradient, ErrBadShape)
	}
	if err := ValidateAllNotNil(spacings...); err != nil {
		return nil, tensorErrorf(opGradient, err)
	}

	perAxis := make([]*Tensor, rank)
	switch len(spacings) {
	case 0:
		// Unit spacing everywhere; leave entries nil.
	case 1:
		for ax := range perAxis {
			perAxis[ax] = spacings[0]
		}
	case rank:
		copy(perAxis, spacings)
	default:
		return nil, tensorErrorf(opGradient, ErrBadCount)
	}

	out := make([]*Tensor, rank)
	for ax := 0; ax < rank; ax++ {
		if t.shape[ax] < 2 {
			return nil, tensorErrorf(opGradient, ErrBadShape)
		}
		h, coords, err := resolveSpacing(perAxis[ax], t.shape[ax])
		if err != nil {
			return nil, tensorErrorf(opGradient, err)
		}
		out[ax] = gradientAxis(t, ax, h, coords)
	}

	return out, nil
}

// resolveSpacing splits a spacing argument into a uniform step or a
// coordinate vector. nil means unit step.
func resolveSpacing(s *Tensor, extent int) (h float64, coords []float64, err error) {
	if s == nil {
		return 1, nil, nil
	}
	switch s.NDim() {
	case 0:
		return s.data[0], nil, nil
	case 1:
		if s.shape[0] != extent {
			return 0, nil, ErrShapeMismatch
		}

		return 0, s.data, nil
	default:
		return 0, nil, ErrNotVector
	}
}

// gradientAxis applies the difference stencils along one validated axis.
func gradientAxis(t *Tensor, axis int, h float64, coords []float64) *Tensor {
	outer, n, inner := t.axisSpans(axis)
	out := newTensor(t.shape, Float64)

	x := func(i int) float64 {
		if coords != nil {
			return coords[i]
		}

		return float64(i) * h
	}
	for o := 0; o < outer; o++ {
		base := o * n * inner
		for in := 0; in < inner; in++ {
			at := func(i int) float64 { return t.data[base+i*inner+in] }
			set := func(i int, v float64) { out.data[base+i*inner+in] = v }

			set(0, (at(1)-at(0))/(x(1)-x(0)))
			set(n-1, (at(n-1)-at(n-2))/(x(n-1)-x(n-2)))
			for i := 1; i < n-1; i++ {
				if coords == nil {
					set(i, (at(i+1)-at(i-1))/(2*h))

					continue
				}
				hd := coords[i] - coords[i-1]
				hs := coords[i+1] - coords[i]
				a := -hs / (hd * (hd + hs))
				b := (hs - hd) / (hd * hs)
				c := hd / (hs * (hd + hs))
				set(i, a*at(i-1)+b*at(i)+c*at(i+1))
			}
		}
	}

	return out
}
