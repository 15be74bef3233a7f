// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the internal options snapshot.
//
// Purpose:
//   - Expose the resolved Options and panic messages to matrix_test ONLY.
//   - The _test.go suffix keeps this surface out of production builds.

// PanicEpsilonInvalid_TestOnly exports the WithEpsilon panic message.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// OptionsSnapshot is a read-only copy of the internal Options fields.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// GatherOptionsSnapshot_TestOnly resolves opts through gatherOptions.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// DefaultOptionsSnapshot_TestOnly returns the documented defaults.
func DefaultOptionsSnapshot_TestOnly() OptionsSnapshot {
	return snapshotOf(defaultOptions())
}
