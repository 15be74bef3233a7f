// SPDX-License-Identifier: MIT
// Package matrix provides converters between flat amplitude lists and
// column-vector matrices.
//
// A state vector is an N×1 *Dense. FromArray builds one from amplitudes;
// ToArray extracts the single column back into a fresh slice.
package matrix

import "github.com/katalvlaran/qlinalg/cplx"

const (
	opFromArray = "FromArray"
	opToArray   = "ToArray"
)

// FromArray returns an n×1 column vector with entry (i,0) = values[i].
// The values are copied.
//
// Errors:
//   - ErrInvalidDimensions when values is empty (a matrix has at least one row).
//
// Complexity: O(n).
func FromArray(values []cplx.Complex) (*Dense, error) {
	if len(values) == 0 {
		return nil, matrixErrorf(opFromArray, ErrInvalidDimensions)
	}
	m := newDense(len(values), 1)
	copy(m.data, values)

	return m, nil
}

// ToArray returns the entries of the sole column of m, in row order, as a
// new slice that does not alias m.
//
// Errors:
//   - ErrMalformedInput when Cols != 1.
//
// Complexity: O(rows).
func (m *Dense) ToArray() ([]cplx.Complex, error) {
	return ToArray(m)
}

// ToArray is the interface form of (*Dense).ToArray for any Matrix.
//
// Errors:
//   - ErrNilMatrix, ErrMalformedInput (Cols != 1).
//
// Complexity: O(rows).
func ToArray(m Matrix) ([]cplx.Complex, error) {
	if err := ValidateColumnVector(m); err != nil {
		return nil, matrixErrorf(opToArray, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToArray, err)
	}
	out := make([]cplx.Complex, dm.r)
	copy(out, dm.data) // cols == 1, so data is exactly the column

	return out, nil
}
