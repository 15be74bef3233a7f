// SPDX-License-Identifier: MIT

// Package qlinalg is the linear-algebra core for dense state-vector
// simulation of small quantum registers.
//
// What is inside?
//
//	cplx/   : Complex value type: pure Add/Mul/Sub, conjugate, modulus,
//	          tolerance-aware comparison.
//	matrix/ : immutable Dense matrix of cplx.Complex: identity, Mul,
//	          Kronecker product, adjoint, trace, norms, column-vector
//	          conversions and a gonum bridge.
//
// Typical flow:
//
//	h, _ := matrix.NewDenseFrom(2, 2, hadamardRows)
//	id, _ := matrix.NewIdentity(2)
//	op, _ := matrix.Kron(h, id)                 // lift H onto qubit 0 of 2
//	psi, _ := matrix.FromArray(amplitudes)      // N×1 state vector
//	out, _ := matrix.Apply(op, psi)             // op · psi
//	amps, _ := out.ToArray()
//
// Errors are sentinel values in package matrix, wrapped with the failing
// operation's name. Match them with errors.Is.
//
// Runnable walkthroughs live under examples/.
package qlinalg
