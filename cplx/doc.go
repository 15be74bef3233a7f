// Package cplx implements the complex scalar used for quantum amplitudes.
//
// A Complex is a plain (Real, Imag) pair with value semantics: Add, Mul and
// every other operation return a fresh value and never mutate their inputs.
// Arithmetic follows IEEE-754 double precision without special-casing NaN or
// Inf, so non-finite inputs propagate through sums and products.
//
//	h := cplx.Real(1 / math.Sqrt2)
//	a := cplx.Mul(h, cplx.One)   // (0.7071067811865476+0i)
//	b := cplx.Add(a, cplx.I)     // (0.7071067811865476+1i)
//
// The matrix package builds its dense engine on these operations.
package cplx
