package kalman

import (
	structural "github.com/milosgajdos/go-structural"
)

// validateSeries checks the observation series and output buffers before any
// numerical work starts: the series must be non-empty and all-finite, and
// every output slice must match the series length.
func validateSeries(y []float64, out ...[]float64) error {
	if len(y) == 0 {
		return &structural.InsufficientDataError{Required: 1, Actual: 0}
	}
	for _, v := range y {
		if !isFinite(v) {
			return &structural.InvalidDataError{Reason: "kalman: all observations must be finite"}
		}
	}
	for _, o := range out {
		if len(o) != len(y) {
			return &structural.InvalidParameterError{
				Parameter:  "out",
				Value:      0,
				Constraint: "all output slices must match y length",
			}
		}
	}
	return nil
}
