// SPDX-License-Identifier: MIT

package cplx

import "gonum.org/v1/gonum/floats/scalar"

// DefaultTolerance is the absolute/relative tolerance used by ApproxEqual
// when callers pass a non-positive tol.
const DefaultTolerance = 1e-9

// ApproxEqual reports whether z and w agree component-wise within tol,
// using an absolute-or-relative test on each part (see
// scalar.EqualWithinAbsOrRel). A NaN component never compares equal.
// Non-positive tol falls back to DefaultTolerance.
// Complexity: O(1).
func (z Complex) ApproxEqual(w Complex, tol float64) bool {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	return scalar.EqualWithinAbsOrRel(z.Real, w.Real, tol, tol) &&
		scalar.EqualWithinAbsOrRel(z.Imag, w.Imag, tol, tol)
}

// ApproxEqual is the function form of z.ApproxEqual(w, tol).
func ApproxEqual(z, w Complex, tol float64) bool {
	return z.ApproxEqual(w, tol)
}
