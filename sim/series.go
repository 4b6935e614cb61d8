// Package sim simulates scalar structural time series and plots filtering
// runs.
package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/milosgajdos/go-structural/noise"
)

// Series is a simulated scalar observation series together with the latent
// state that generated it.
type Series struct {
	// Observed contains the noisy observations
	Observed []float64
	// Level contains the latent level at each step
	Level []float64
	// Trend contains the latent trend at each step; nil for local-level runs
	Trend []float64
}

// LocalLevelSeries simulates n steps of a local-level model starting at
// initLevel. The level is driven forward by process noise w and observed
// through observation noise v.
// It returns error if n is not positive or either noise source is nil.
func LocalLevelSeries(n int, initLevel float64, w, v noise.Noise) (*Series, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid series length: %d", n)
	}
	if w == nil || v == nil {
		return nil, fmt.Errorf("invalid noise source supplied")
	}

	s := &Series{
		Observed: make([]float64, n),
		Level:    make([]float64, n),
	}

	level := initLevel
	for t := 0; t < n; t++ {
		level += w.Sample()
		s.Level[t] = level
		s.Observed[t] = level + v.Sample()
	}

	return s, nil
}

// LocalLinearTrendSeries simulates n steps of a local-linear trend model
// starting at initLevel and initTrend. The level accumulates the trend plus
// process noise wLevel, the trend is driven by process noise wTrend, and the
// level is observed through observation noise v.
// It returns error if n is not positive or any noise source is nil.
func LocalLinearTrendSeries(n int, initLevel, initTrend float64, wLevel, wTrend, v noise.Noise) (*Series, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid series length: %d", n)
	}
	if wLevel == nil || wTrend == nil || v == nil {
		return nil, fmt.Errorf("invalid noise source supplied")
	}

	s := &Series{
		Observed: make([]float64, n),
		Level:    make([]float64, n),
		Trend:    make([]float64, n),
	}

	level, trend := initLevel, initTrend
	for t := 0; t < n; t++ {
		level += trend + wLevel.Sample()
		trend += wTrend.Sample()
		s.Level[t] = level
		s.Trend[t] = trend
		s.Observed[t] = level + v.Sample()
	}

	return s, nil
}

// RMSE returns the root mean square error between estimate and truth.
// It returns error if the slices differ in length or are empty.
func RMSE(estimate, truth []float64) (float64, error) {
	if len(estimate) == 0 || len(estimate) != len(truth) {
		return 0, fmt.Errorf("invalid data dimensions: %d vs %d", len(estimate), len(truth))
	}

	diff := make([]float64, len(estimate))
	floats.SubTo(diff, estimate, truth)

	return math.Sqrt(floats.Dot(diff, diff) / float64(len(diff))), nil
}
