// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels over any Matrix
// implementation: matrix product, Kronecker (tensor) product, element-wise
// addition and subtraction, scalar scaling, transpose and adjoint.
// All kernels perform fail-fast validation, never mutate their operands and
// return a freshly allocated *Dense.
//
// Purpose:
//   - Implement the composition primitives used to build and apply quantum
//     operators: Mul applies a gate to a state (or composes gates) and Kron
//     lifts small operators into a multi-qubit space.
//
// Notes:
//   - Every scalar operation goes through cplx.Add / cplx.Mul so the kernels
//     inherit the IEEE-754 propagation contract. Zero entries are NOT skipped:
//     0·Inf must still produce NaN in the result.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/qlinalg/cplx"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opKron      = "Kron"
	opKronAll   = "KronAll"
	opTranspose = "Transpose"
	opAdjoint   = "Adjoint"
	opScale     = "Scale"
	opTrace     = "Trace"
	opApply     = "Apply"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a *Dense copy read
// through At in fixed i→j order. The result is treated as read-only by every
// kernel, so no copy is needed on the fast path.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions for non-positive or overflowing
//     shapes reported by foreign implementations; any error surfaced by At.
//
// Complexity:
//   - O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	if !shapeFits(rows, cols) {
		return nil, ErrInvalidDimensions
	}
	out := newDense(rows, cols)
	var (
		i, j int
		v    cplx.Complex
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Mul returns the matrix product C = A×B.
// Entry (i,j) starts at cplx.Zero and accumulates cplx.Mul(A[i,k], B[k,j])
// with cplx.Add for k = 0..n-1, in that order.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); a.Cols != b.Rows ⇒ ErrDimensionMismatch.
//     The r×c result must fit a buffer ⇒ else ErrInvalidDimensions.
//   - Stage 2: materialize operands (no copy for *Dense).
//   - Stage 3: fixed i→j→k triple loop over flat slices.
//
// Inputs:
//   - a: r×n, b: n×c. A state vector is the c == 1 case.
//
// Returns:
//   - *Dense with shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidDimensions (all wrapped with "Mul").
//
// Determinism:
//   - Summation order is fixed by k, so results are bit-reproducible.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if !shapeFits(a.Rows(), b.Cols()) {
		return nil, matrixErrorf(opMul, ErrInvalidDimensions)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := da.r, da.c, db.c
	res := newDense(rows, cols)
	var (
		i, j, k    int
		rowOffsetA int
		acc        cplx.Complex
	)
	for i = 0; i < rows; i++ {
		rowOffsetA = i * inner
		for j = 0; j < cols; j++ {
			acc = cplx.Zero
			for k = 0; k < inner; k++ {
				acc = cplx.Add(acc, cplx.Mul(da.data[rowOffsetA+k], db.data[k*cols+j]))
			}
			res.data[i*cols+j] = acc
		}
	}

	return res, nil
}

// Kron returns the Kronecker (tensor) product A⊗B.
//
// Implementation:
//   - Stage 1: check that (ra*rb)×(ca*cb) fits a buffer, before touching data.
//   - Stage 2: materialize both operands and allocate the result.
//   - Stage 3: for every (i,j) of A and (k,l) of B write
//     out[i*rb+k, j*cb+l] = cplx.Mul(A[i,j], B[k,l]).
//
// Behavior highlights:
//   - No dimension precondition: any two matrices can be tensored.
//   - Operand order matters; placement of a gate among identities is the
//     caller's decision.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions on overflowing result shape
//     (wrapped with "Kron").
//
// Complexity:
//   - Time O(ra*ca*rb*cb), Space the same.
func Kron(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	outRows, outCols, ok := kronShape(a, b)
	if !ok {
		return nil, matrixErrorf(opKron, ErrInvalidDimensions)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	ra, ca, rb, cb := da.r, da.c, db.r, db.c
	res := newDense(outRows, outCols)
	var (
		i, j, k, l int
		av         cplx.Complex
		base       int
	)
	for i = 0; i < ra; i++ {
		for j = 0; j < ca; j++ {
			av = da.data[i*ca+j]
			for k = 0; k < rb; k++ {
				base = (i*rb+k)*outCols + j*cb // row i*rb+k, first column of block j
				for l = 0; l < cb; l++ {
					res.data[base+l] = cplx.Mul(av, db.data[k*cb+l])
				}
			}
		}
	}

	return res, nil
}

// kronShape returns the (ra*rb)×(ca*cb) result shape and whether every
// product stays within shapeFits.
func kronShape(a, b Matrix) (rows, cols int, ok bool) {
	ra, ca, rb, cb := a.Rows(), a.Cols(), b.Rows(), b.Cols()
	if !shapeFits(ra, rb) || !shapeFits(ca, cb) {
		return 0, 0, false
	}
	rows, cols = ra*rb, ca*cb

	return rows, cols, shapeFits(rows, cols)
}

// KronAll folds Kron left to right: ms[0] ⊗ ms[1] ⊗ … ⊗ ms[n-1].
// A single operand is returned as a copy.
//
// Errors:
//   - ErrNilMatrix when ms is empty or contains a nil matrix.
//
// Complexity:
//   - Dominated by the final product: O(Π rows · Π cols).
func KronAll(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opKronAll, ErrNilMatrix)
	}
	first, err := asDense(ms[0])
	if err != nil {
		return nil, matrixErrorf(opKronAll, err)
	}
	acc := first.Clone()
	for idx := 1; idx < len(ms); idx++ {
		if acc, err = Kron(acc, ms[idx]); err != nil {
			return nil, matrixErrorf(fmt.Sprintf("%s[%d]", opKronAll, idx), err)
		}
	}

	return acc, nil
}

// addSub computes element-wise out = a ± b.
// Inputs must share a shape; a fresh Dense is allocated.
// Complexity: O(r*c).
func addSub(a, b Matrix, subtract bool, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense(da.r, da.c)
	for idx := range res.data {
		if subtract {
			res.data[idx] = cplx.Sub(da.data[idx], db.data[idx])
		} else {
			res.data[idx] = cplx.Add(da.data[idx], db.data[idx])
		}
	}

	return res, nil
}

// Add returns the element-wise sum a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, false, opAdd) }

// Sub returns the element-wise difference a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, true, opSub) }

// Scale returns alpha·m, multiplying every entry with cplx.Mul.
// Complexity: O(r*c).
func Scale(m Matrix, alpha cplx.Complex) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDense(dm.r, dm.c)
	for idx, v := range dm.data {
		res.data[idx] = cplx.Mul(alpha, v)
	}

	return res, nil
}

// transpose materializes mᵀ, optionally conjugating each entry.
func transpose(m Matrix, conjugate bool, opTag string) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := dm.r, dm.c
	res := newDense(cols, rows)
	var (
		i, j    int
		baseSrc int
		v       cplx.Complex
	)
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			v = dm.data[baseSrc+j]
			if conjugate {
				v = v.Conj()
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Transpose returns mᵀ (rows and columns swapped, no conjugation).
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) { return transpose(m, false, opTranspose) }

// Adjoint returns the conjugate transpose m† (Hermitian adjoint).
// For a unitary gate U, Adjoint(U) is its inverse.
// Complexity: O(r*c).
func Adjoint(m Matrix) (*Dense, error) { return transpose(m, true, opAdjoint) }

// Trace returns Σ m[i,i] for a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m Matrix) (cplx.Complex, error) {
	if err := ValidateSquare(m); err != nil {
		return cplx.Zero, matrixErrorf(opTrace, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return cplx.Zero, matrixErrorf(opTrace, err)
	}

	acc := cplx.Zero
	for i := 0; i < dm.r; i++ {
		acc = cplx.Add(acc, dm.data[i*dm.c+i])
	}

	return acc, nil
}

// Apply multiplies a square operator by a state vector: op × state.
// It is Mul with the extra contracts that op is square and state is a
// column vector, which catches operands passed in the wrong order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (op), ErrMalformedInput (state not N×1),
//     ErrDimensionMismatch (op.Cols != state.Rows).
//
// Complexity:
//   - Time O(n²), Space O(n).
func Apply(op, state Matrix) (*Dense, error) {
	if err := ValidateNotNil(op); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	if err := ValidateNotNil(state); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	if err := ValidateSquare(op); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	if err := ValidateColumnVector(state); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	res, err := Mul(op, state)
	if err != nil {
		return nil, matrixErrorf(opApply, err)
	}

	return res, nil
}
