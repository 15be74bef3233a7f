// SPDX-License-Identifier: MIT
// Package matrix: norms, inner products and state normalization.
//
// Purpose:
//   - Frobenius norm of any matrix (the L2 norm for a state vector).
//   - Inner product ⟨a|b⟩ between column vectors.
//   - Normalize a state vector to unit length.
//
// Determinism:
//   - Fixed flat-slice summation order; results are bit-reproducible.
package matrix

import (
	"math"

	"github.com/katalvlaran/qlinalg/cplx"
)

const (
	opNorm      = "Norm"
	opInner     = "Inner"
	opNormalize = "Normalize"
)

// Norm returns the Frobenius norm sqrt(Σ |m[i,j]|²).
// For an N×1 state vector this is its L2 norm.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Norm(m Matrix) (float64, error) {
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return frobenius(dm), nil
}

// frobenius sums |z|² in flat order and takes the square root.
func frobenius(d *Dense) float64 {
	sq := 0.0
	for _, v := range d.data {
		sq += v.Abs2()
	}

	return math.Sqrt(sq)
}

// Inner returns ⟨a|b⟩ = Σ conj(a[i])·b[i] for column vectors of equal length.
//
// Errors:
//   - ErrNilMatrix, ErrMalformedInput (not a column vector),
//     ErrDimensionMismatch (different lengths).
//
// Complexity: O(n).
func Inner(a, b Matrix) (cplx.Complex, error) {
	if err := ValidateNotNil(a); err != nil {
		return cplx.Zero, matrixErrorf(opInner, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return cplx.Zero, matrixErrorf(opInner, err)
	}
	if err := ValidateColumnVector(a); err != nil {
		return cplx.Zero, matrixErrorf(opInner, err)
	}
	if err := ValidateColumnVector(b); err != nil {
		return cplx.Zero, matrixErrorf(opInner, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return cplx.Zero, matrixErrorf(opInner, err)
	}
	da, err := asDense(a)
	if err != nil {
		return cplx.Zero, matrixErrorf(opInner, err)
	}
	db, err := asDense(b)
	if err != nil {
		return cplx.Zero, matrixErrorf(opInner, err)
	}

	acc := cplx.Zero
	for i := range da.data {
		acc = cplx.Add(acc, cplx.Mul(da.data[i].Conj(), db.data[i]))
	}

	return acc, nil
}

// Normalize scales a column vector to unit L2 norm and also returns the
// original norm.
//
// Implementation:
//   - Stage 1: ValidateColumnVector(state).
//   - Stage 2: compute the norm.
//   - Stage 3: scale by 1/norm; a zero vector is returned unchanged (copy).
//
// Errors: ErrNilMatrix, ErrMalformedInput.
// Complexity: O(n).
func Normalize(state Matrix) (*Dense, float64, error) {
	if err := ValidateColumnVector(state); err != nil {
		return nil, 0, matrixErrorf(opNormalize, err)
	}
	ds, err := asDense(state)
	if err != nil {
		return nil, 0, matrixErrorf(opNormalize, err)
	}

	norm := frobenius(ds)
	if norm == 0 {
		return ds.Clone(), 0, nil
	}
	inv := 1 / norm
	out := newDense(ds.r, 1)
	for i, v := range ds.data {
		out.data[i] = v.Scale(inv)
	}

	return out, norm, nil
}
