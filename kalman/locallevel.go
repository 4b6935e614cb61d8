package kalman

import (
	structural "github.com/milosgajdos/go-structural"
)

// LocalLevelFilterInto runs a causal local-level Kalman filter over the
// observation series y, writing the filtered posterior mean and variance for
// every step into outMean and outVar:
//   - state: x_t
//   - observation: y_t = x_t + v_t, v_t ~ N(0, r)
//   - transition: x_t = x_{t-1} + w_t, w_t ~ N(0, q)
//
// outMean[t] holds E[x_t | y_0..y_t] and outVar[t] holds Var[x_t | y_0..y_t].
// Both output slices must have the same length as y.
//
// Validation runs to completion before the recursion starts, so validation
// failures never leave partial output. If the recursion itself fails part way
// through, results for earlier steps remain in the buffers and the whole call
// must be treated as failed.
func LocalLevelFilterInto(y []float64, r, q, initMean, initVar float64, outMean, outVar []float64) error {
	if err := validateSeries(y, outMean, outVar); err != nil {
		return err
	}
	if !isFinite(initMean) {
		return &structural.InvalidParameterError{
			Parameter:  "init_mean",
			Value:      initMean,
			Constraint: "must be finite",
		}
	}
	if err := validateVariance("r", r, false); err != nil {
		return err
	}
	if err := validateVariance("q", q, true); err != nil {
		return err
	}
	if err := validateVariance("init_var", initVar, true); err != nil {
		return err
	}

	x := initMean
	p := initVar

	for t, obs := range y {
		// Predict.
		pPred, err := clampSmallNegative(p + q)
		if err != nil {
			return err
		}

		// Update.
		s := pPred + r
		if !isFinite(s) || s <= 0 {
			return &structural.InstabilityError{Reason: "kalman: invalid innovation variance"}
		}
		k := pPred / s
		innov := obs - x
		x = x + k*innov
		if !isFinite(x) {
			return &structural.NumericalError{Reason: "kalman: non-finite updated mean", Op: opLocalLevel}
		}

		// Joseph form (1D): P = (1-K)^2 P_pred + K^2 R
		oneMinusK := 1.0 - k
		p, err = clampSmallNegative(oneMinusK*oneMinusK*pPred + k*k*r)
		if err != nil {
			return err
		}

		outMean[t] = x
		outVar[t] = p
	}

	return nil
}

// LocalLevelFilter is the allocating variant of LocalLevelFilterInto: it
// allocates the output slices, runs the filter and returns them.
func LocalLevelFilter(y []float64, r, q, initMean, initVar float64) (mean, variance []float64, err error) {
	mean = make([]float64, len(y))
	variance = make([]float64, len(y))
	if err := LocalLevelFilterInto(y, r, q, initMean, initVar, mean, variance); err != nil {
		return nil, nil, err
	}
	return mean, variance, nil
}

// LocalLevel is a local-level structural model: a random walk observed
// through additive Gaussian noise.
type LocalLevel struct {
	// R is observation noise variance
	R float64
	// Q is process noise variance
	Q float64
	// InitMean is the prior mean of the level
	InitMean float64
	// InitVar is the prior variance of the level
	InitVar float64
}

// StateDim returns the hidden state dimension
func (m *LocalLevel) StateDim() int { return 1 }

// ObsVariance returns the observation noise variance
func (m *LocalLevel) ObsVariance() float64 { return m.R }

// FilterInto runs the filter over y into caller-owned output slices.
func (m *LocalLevel) FilterInto(y, outMean, outVar []float64) error {
	return LocalLevelFilterInto(y, m.R, m.Q, m.InitMean, m.InitVar, outMean, outVar)
}

// FilterSeries runs the filter over y and returns the filtered means and
// variances as single-row slices. It implements structural.Filter.
func (m *LocalLevel) FilterSeries(y []float64) (means, variances [][]float64, err error) {
	mean, v, err := LocalLevelFilter(y, m.R, m.Q, m.InitMean, m.InitVar)
	if err != nil {
		return nil, nil, err
	}
	return [][]float64{mean}, [][]float64{v}, nil
}
