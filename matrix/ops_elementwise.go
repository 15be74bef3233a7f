// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison predicates.
//
// Purpose:
//   - Exact (Equal) and tolerant (AllClose) matrix comparison.
//   - Structural checks used to verify gate matrices: IsUnitary, IsHermitian.
//
// Policy:
//   - Tolerant checks compare Real and Imag separately with
//     cplx.ApproxEqual (absolute-or-relative, per component) at the eps
//     resolved from options (WithEpsilon, default DefaultEpsilon).
//   - A shape mismatch is not an error for the predicates: the matrices are
//     simply not equal. Nil operands are errors.
package matrix

import "github.com/katalvlaran/qlinalg/cplx"

const (
	opEqual       = "Equal"
	opAllClose    = "AllClose"
	opIsUnitary   = "IsUnitary"
	opIsHermitian = "IsHermitian"
)

// sameShape reports whether a and b have equal dimensions.
func sameShape(a, b *Dense) bool { return a.r == b.r && a.c == b.c }

// Equal reports exact, component-wise equality of two matrices.
// NaN never equals NaN, matching float64 ==.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Equal(a, b Matrix) (bool, error) {
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if !sameShape(da, db) {
		return false, nil
	}
	for idx := range da.data {
		if da.data[idx] != db.data[idx] {
			return false, nil
		}
	}

	return true, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// entries agrees within eps (see WithEpsilon).
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c), early exit on first violation.
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return allClose(da, db, o.eps), nil
}

// allClose is the shared tolerant comparison; eps == 0 demands exact
// equality (cplx.ApproxEqual would otherwise substitute its default).
func allClose(a, b *Dense, eps float64) bool {
	if !sameShape(a, b) {
		return false
	}
	for idx := range a.data {
		if eps == 0 {
			if a.data[idx] != b.data[idx] {
				return false
			}
			continue
		}
		if !cplx.ApproxEqual(a.data[idx], b.data[idx], eps) {
			return false
		}
	}

	return true
}

// IsUnitary reports whether m†·m ≈ I within eps.
// Non-square input yields (false, nil).
//
// Errors: ErrNilMatrix.
// Complexity: O(n³).
func IsUnitary(m Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	dm, err := asDense(m)
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	if !dm.IsSquare() {
		return false, nil
	}
	adj, err := Adjoint(dm)
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	prod, err := Mul(adj, dm)
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	id, err := NewIdentity(dm.r)
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}

	return allClose(prod, id, o.eps), nil
}

// IsHermitian reports whether m ≈ m† within eps.
// Non-square input yields (false, nil).
//
// Errors: ErrNilMatrix.
// Complexity: O(n²).
func IsHermitian(m Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	dm, err := asDense(m)
	if err != nil {
		return false, matrixErrorf(opIsHermitian, err)
	}
	if !dm.IsSquare() {
		return false, nil
	}
	adj, err := Adjoint(dm)
	if err != nil {
		return false, matrixErrorf(opIsHermitian, err)
	}

	return allClose(dm, adj, o.eps), nil
}
