package kalman

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	structural "github.com/milosgajdos/go-structural"
)

func TestClampSmallNegative(t *testing.T) {
	assert := assert.New(t)

	for _, test := range []struct {
		in      float64
		out     float64
		wantErr bool
	}{
		{in: 1.0, out: 1.0},
		{in: 0.0, out: 0.0},
		{in: -1e-16, out: 0.0},
		{in: -1e-15, out: 0.0},
		{in: -1e-14, wantErr: true},
		{in: -1.0, wantErr: true},
		{in: math.NaN(), wantErr: true},
		{in: math.Inf(1), wantErr: true},
		{in: math.Inf(-1), wantErr: true},
	} {
		got, err := clampSmallNegative(test.in)
		if test.wantErr {
			var instErr *structural.InstabilityError
			assert.ErrorAs(err, &instErr)
			continue
		}
		assert.NoError(err)
		assert.Equal(test.out, got)
	}
}

func TestValidateVariance(t *testing.T) {
	assert := assert.New(t)

	for _, test := range []struct {
		v          float64
		allowZero  bool
		wantErr    bool
		constraint string
	}{
		{v: 1.0, allowZero: false},
		{v: 1.0, allowZero: true},
		{v: 0.0, allowZero: true},
		{v: 0.0, allowZero: false, wantErr: true, constraint: "must be > 0"},
		{v: -1.0, allowZero: true, wantErr: true, constraint: "must be >= 0"},
		{v: -1.0, allowZero: false, wantErr: true, constraint: "must be > 0"},
		{v: math.NaN(), allowZero: true, wantErr: true, constraint: "must be finite"},
		{v: math.Inf(1), allowZero: false, wantErr: true, constraint: "must be finite"},
	} {
		err := validateVariance("v", test.v, test.allowZero)
		if !test.wantErr {
			assert.NoError(err)
			continue
		}
		var paramErr *structural.InvalidParameterError
		assert.ErrorAs(err, &paramErr)
		assert.Equal("v", paramErr.Parameter)
		assert.Equal(test.constraint, paramErr.Constraint)
	}
}

func TestValidateSeries(t *testing.T) {
	assert := assert.New(t)

	y := []float64{1.0, 2.0}
	out := make([]float64, 2)

	assert.NoError(validateSeries(y, out, out))

	var insufErr *structural.InsufficientDataError
	assert.ErrorAs(validateSeries(nil), &insufErr)

	var dataErr *structural.InvalidDataError
	assert.ErrorAs(validateSeries([]float64{1.0, math.Inf(-1)}, out, out), &dataErr)

	var paramErr *structural.InvalidParameterError
	assert.ErrorAs(validateSeries(y, out, make([]float64, 3)), &paramErr)
}
