package kalman

import (
	"math"

	structural "github.com/milosgajdos/go-structural"
)

// tinyNegClamp is the largest magnitude by which a variance may dip below
// zero and still be attributed to floating point round-off.
const tinyNegClamp = 1e-15

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// clampSmallNegative accepts a non-negative finite variance as-is and snaps a
// variance that round-off pushed marginally below zero back to exactly zero.
// Anything else (non-finite, or negative beyond the tolerance) signals
// genuine filter divergence and fails with InstabilityError.
func clampSmallNegative(x float64) (float64, error) {
	if isFinite(x) {
		if x >= 0 {
			return x, nil
		}
		if math.Abs(x) <= tinyNegClamp {
			return 0, nil
		}
	}
	return 0, &structural.InstabilityError{Reason: "kalman: covariance became negative"}
}

// validateVariance checks that a variance parameter is finite and within its
// permitted domain: >= 0 when allowZero is set, > 0 otherwise.
func validateVariance(name string, v float64, allowZero bool) error {
	if !isFinite(v) {
		return &structural.InvalidParameterError{
			Parameter:  name,
			Value:      v,
			Constraint: "must be finite",
		}
	}
	if allowZero {
		if v < 0 {
			return &structural.InvalidParameterError{
				Parameter:  name,
				Value:      v,
				Constraint: "must be >= 0",
			}
		}
		return nil
	}
	if v <= 0 {
		return &structural.InvalidParameterError{
			Parameter:  name,
			Value:      v,
			Constraint: "must be > 0",
		}
	}
	return nil
}
