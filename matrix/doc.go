// SPDX-License-Identifier: MIT

// Package matrix is the dense complex matrix engine for quantum state
// simulation.
//
// The matrix package provides:
//
//   - Dense, a row-major, immutable grid of cplx.Complex values, with
//     NewDense (zero matrix), NewDenseFrom (validated explicit data) and
//     NewIdentity constructors.
//   - Mul, the matrix product used to apply a gate to a state vector or to
//     compose gates; it fails with ErrDimensionMismatch when a.Cols != b.Rows.
//   - Kron (alias TensorProduct) and KronAll, which lift few-qubit operators
//     into the full Hilbert space of an n-qubit register.
//   - FromArray / ToArray to move between amplitude slices and N×1 state
//     vectors.
//   - Norm, Inner and Normalize for state vectors.
//   - Adjoint, Trace, AllClose, IsUnitary and IsHermitian for checking gates.
//   - ToCDense / FromCMatrix for interop with gonum.
//
// Every kernel accepts the read-only Matrix interface, returns a freshly
// allocated *Dense and never mutates its operands, so values can be shared
// across goroutines freely. Errors are package sentinels matched with
// errors.Is. Dimension doubles per qubit; sizing registers is left to the
// caller.
package matrix
