package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeriesPlot(t *testing.T) {
	assert := assert.New(t)

	truth := make([]float64, 3)
	observed := make([]float64, 3)
	filtered := make([]float64, 3)

	plt, err := NewSeriesPlot(truth, observed, filtered)
	assert.NotNil(plt)
	assert.NoError(err)

	plt, err = NewSeriesPlot(nil, nil, nil)
	assert.Nil(plt)
	assert.Error(err)

	plt, err = NewSeriesPlot(truth, make([]float64, 2), filtered)
	assert.Nil(plt)
	assert.Error(err)
}
