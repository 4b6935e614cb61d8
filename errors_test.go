package structural

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert := assert.New(t)

	for _, test := range []struct {
		err error
		msg string
	}{
		{
			err: &InsufficientDataError{Required: 1, Actual: 0},
			msg: "insufficient data: required 1, actual 0",
		},
		{
			err: &InvalidParameterError{Parameter: "r", Value: -1, Constraint: "must be > 0"},
			msg: "invalid parameter `r`=-1: must be > 0",
		},
		{
			err: &InvalidDataError{Reason: "kalman: all observations must be finite"},
			msg: "invalid data: kalman: all observations must be finite",
		},
		{
			err: &NumericalError{Reason: "non-finite updated mean", Op: "LocalLevelFilterInto"},
			msg: "numerical error in LocalLevelFilterInto: non-finite updated mean",
		},
		{
			err: &NumericalError{Reason: "non-finite updated mean"},
			msg: "numerical error: non-finite updated mean",
		},
		{
			err: &InstabilityError{Reason: "kalman: covariance became negative"},
			msg: "numerical instability: kalman: covariance became negative",
		},
	} {
		assert.EqualError(test.err, test.msg)
	}
}

func TestErrorKindsAreDistinguishable(t *testing.T) {
	assert := assert.New(t)

	wrapped := fmt.Errorf("filtering failed: %w", &InstabilityError{Reason: "kalman: covariance became negative"})

	var instErr *InstabilityError
	assert.True(errors.As(wrapped, &instErr))
	assert.Equal("kalman: covariance became negative", instErr.Reason)

	var numErr *NumericalError
	assert.False(errors.As(wrapped, &numErr))
}
