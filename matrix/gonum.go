// SPDX-License-Identifier: MIT
// Package matrix: interop with gonum's complex dense matrices.
//
// Purpose:
//   - Hand state vectors and operators to gonum-based tooling (ToCDense).
//   - Accept any gonum complex matrix as input (FromCMatrix).
//
// Both directions copy; neither side aliases the other's storage.
package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qlinalg/cplx"
)

const (
	opToCDense    = "ToCDense"
	opFromCMatrix = "FromCMatrix"
)

// ToCDense copies m into a new gonum *mat.CDense of the same shape.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ToCDense(m Matrix) (*mat.CDense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToCDense, err)
	}

	buf := make([]complex128, len(dm.data))
	for idx, v := range dm.data {
		buf[idx] = v.Complex128()
	}

	return mat.NewCDense(dm.r, dm.c, buf), nil // row-major, same layout as Dense
}

// FromCMatrix copies any gonum complex matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix for a nil argument.
//   - ErrInvalidDimensions when cm has an empty or overflowing dimension.
//
// Complexity: O(r*c).
func FromCMatrix(cm mat.CMatrix) (*Dense, error) {
	if cm == nil {
		return nil, matrixErrorf(opFromCMatrix, ErrNilMatrix)
	}
	if cd, ok := cm.(*mat.CDense); ok && cd == nil {
		return nil, matrixErrorf(opFromCMatrix, ErrNilMatrix)
	}
	rows, cols := cm.Dims()
	if !shapeFits(rows, cols) {
		return nil, matrixErrorf(opFromCMatrix, ErrInvalidDimensions)
	}
	out := newDense(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i*cols+j] = cplx.FromComplex128(cm.At(i, j))
		}
	}

	return out, nil
}
