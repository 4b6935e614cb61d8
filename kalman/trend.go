package kalman

import (
	structural "github.com/milosgajdos/go-structural"
)

// LocalLinearTrendFilterInto runs a causal local-linear trend Kalman filter
// over the observation series y:
//   - state: [level_t, trend_t]
//   - observation: y_t = level_t + v_t, v_t ~ N(0, r)
//   - transition:
//     level_t = level_{t-1} + trend_{t-1} + w1_t, w1_t ~ N(0, qLevel)
//     trend_t = trend_{t-1} + w2_t, w2_t ~ N(0, qTrend)
//
// For every step t it writes E[level_t | y_0..y_t] to outLevel,
// E[trend_t | y_0..y_t] to outTrend and the corresponding posterior variances
// to outVarLevel and outVarTrend. All four output slices must have the same
// length as y.
//
// The 2x2 state covariance is symmetric and carried as the three scalars
// (p00, p01, p11); the recursion is kept scalar-unrolled so its rounding
// behaviour stays reproducible. Validation failures never leave partial
// output; a mid-recursion numerical failure leaves earlier steps' results in
// the buffers and the whole call must be treated as failed.
func LocalLinearTrendFilterInto(y []float64, r, qLevel, qTrend, initLevel, initTrend, initVarLevel, initVarTrend float64, outLevel, outTrend, outVarLevel, outVarTrend []float64) error {
	if err := validateSeries(y, outLevel, outTrend, outVarLevel, outVarTrend); err != nil {
		return err
	}
	if !isFinite(initLevel) || !isFinite(initTrend) {
		return &structural.InvalidParameterError{
			Parameter:  "init_state",
			Value:      0,
			Constraint: "init_level and init_trend must be finite",
		}
	}
	if err := validateVariance("r", r, false); err != nil {
		return err
	}
	if err := validateVariance("q_level", qLevel, true); err != nil {
		return err
	}
	if err := validateVariance("q_trend", qTrend, true); err != nil {
		return err
	}
	if err := validateVariance("init_var_level", initVarLevel, true); err != nil {
		return err
	}
	if err := validateVariance("init_var_trend", initVarTrend, true); err != nil {
		return err
	}

	level := initLevel
	trend := initTrend

	// Covariance P:
	// [p00 p01]
	// [p10 p11] (p10 == p01)
	p00 := initVarLevel
	p01 := 0.0
	p11 := initVarTrend

	for t, obs := range y {
		// Predict: x^- = F x, F = [[1,1],[0,1]]
		levelPred := level + trend
		trendPred := trend

		// P^- = F P F^T + Q, Q = diag(qLevel, qTrend), expanded:
		// p00' = p00 + 2*p01 + p11
		// p01' = p01 + p11
		// p11' = p11
		p00Pred, err := clampSmallNegative(p00 + 2.0*p01 + p11 + qLevel)
		if err != nil {
			return err
		}
		p01Pred := p01 + p11
		p11Pred, err := clampSmallNegative(p11 + qTrend)
		if err != nil {
			return err
		}
		if !isFinite(p01Pred) {
			return &structural.NumericalError{Reason: "kalman: non-finite predicted covariance", Op: opTrend}
		}

		// Update with H = [1,0]: S = p00_pred + r
		s := p00Pred + r
		if !isFinite(s) || s <= 0 {
			return &structural.InstabilityError{Reason: "kalman: invalid innovation variance"}
		}

		// K = P^- H^T / S = [p00_pred/s, p10_pred/s], p10_pred == p01_pred
		k0 := p00Pred / s
		k1 := p01Pred / s
		if !isFinite(k0) || !isFinite(k1) {
			return &structural.NumericalError{Reason: "kalman: non-finite gain", Op: opTrend}
		}

		innov := obs - levelPred
		if !isFinite(innov) {
			return &structural.NumericalError{Reason: "kalman: non-finite innovation", Op: opTrend}
		}

		level = levelPred + k0*innov
		trend = trendPred + k1*innov
		if !isFinite(level) || !isFinite(trend) {
			return &structural.NumericalError{Reason: "kalman: non-finite updated state", Op: opTrend}
		}

		// Joseph form: P = (I-KH) P^- (I-KH)^T + K R K^T
		// For H = [1,0], K = [k0,k1]^T:
		// I-KH = [[1-k0, 0], [-k1, 1]]
		// A = (I-KH) P^-:
		// a00 = (1-k0)*p00_pred
		// a01 = (1-k0)*p01_pred
		// a10 = -k1*p00_pred + p01_pred
		// a11 = -k1*p01_pred + p11_pred
		oneMinusK0 := 1.0 - k0
		a00 := oneMinusK0 * p00Pred
		a01 := oneMinusK0 * p01Pred
		a10 := -k1*p00Pred + p01Pred
		a11 := -k1*p01Pred + p11Pred

		// P_tmp = A (I-KH)^T:
		// p00 = a00*(1-k0)
		// p01 = a00*(-k1) + a01
		// p11 = a10*(-k1) + a11
		p00New := a00 * oneMinusK0
		p01New := a00*(-k1) + a01
		p11New := a10*(-k1) + a11

		// + K R K^T:
		p00New += k0 * k0 * r
		p01New += k0 * k1 * r
		p11New += k1 * k1 * r

		if !isFinite(p00New) || !isFinite(p01New) || !isFinite(p11New) {
			return &structural.NumericalError{Reason: "kalman: non-finite updated covariance", Op: opTrend}
		}

		p00, err = clampSmallNegative(p00New)
		if err != nil {
			return err
		}
		p11, err = clampSmallNegative(p11New)
		if err != nil {
			return err
		}
		// off-diagonal term is not bounded below by zero, so it is never clamped
		p01 = p01New

		outLevel[t] = level
		outTrend[t] = trend
		outVarLevel[t] = p00
		outVarTrend[t] = p11
	}

	return nil
}

// LocalLinearTrendFilter is the allocating variant of
// LocalLinearTrendFilterInto: it allocates the four output slices, runs the
// filter and returns them.
func LocalLinearTrendFilter(y []float64, r, qLevel, qTrend, initLevel, initTrend, initVarLevel, initVarTrend float64) (level, trend, varLevel, varTrend []float64, err error) {
	n := len(y)
	level = make([]float64, n)
	trend = make([]float64, n)
	varLevel = make([]float64, n)
	varTrend = make([]float64, n)
	if err := LocalLinearTrendFilterInto(y, r, qLevel, qTrend, initLevel, initTrend, initVarLevel, initVarTrend, level, trend, varLevel, varTrend); err != nil {
		return nil, nil, nil, nil, err
	}
	return level, trend, varLevel, varTrend, nil
}

// LocalLinearTrend is a local-linear trend structural model: the level
// accumulates the trend at every step and only the level is observed.
type LocalLinearTrend struct {
	// R is observation noise variance
	R float64
	// QLevel is level process noise variance
	QLevel float64
	// QTrend is trend process noise variance
	QTrend float64
	// InitLevel is the prior mean of the level
	InitLevel float64
	// InitTrend is the prior mean of the trend
	InitTrend float64
	// InitVarLevel is the prior variance of the level
	InitVarLevel float64
	// InitVarTrend is the prior variance of the trend
	InitVarTrend float64
}

// StateDim returns the hidden state dimension
func (m *LocalLinearTrend) StateDim() int { return 2 }

// ObsVariance returns the observation noise variance
func (m *LocalLinearTrend) ObsVariance() float64 { return m.R }

// FilterInto runs the filter over y into caller-owned output slices.
func (m *LocalLinearTrend) FilterInto(y, outLevel, outTrend, outVarLevel, outVarTrend []float64) error {
	return LocalLinearTrendFilterInto(y, m.R, m.QLevel, m.QTrend, m.InitLevel, m.InitTrend, m.InitVarLevel, m.InitVarTrend, outLevel, outTrend, outVarLevel, outVarTrend)
}

// FilterSeries runs the filter over y and returns the filtered means and
// variances as two-row slices, level first. It implements structural.Filter.
func (m *LocalLinearTrend) FilterSeries(y []float64) (means, variances [][]float64, err error) {
	level, trend, varLevel, varTrend, err := LocalLinearTrendFilter(y, m.R, m.QLevel, m.QTrend, m.InitLevel, m.InitTrend, m.InitVarLevel, m.InitVarTrend)
	if err != nil {
		return nil, nil, err
	}
	return [][]float64{level, trend}, [][]float64{varLevel, varTrend}, nil
}
