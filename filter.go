package structural

// Model describes a scalar linear-Gaussian structural time series model.
type Model interface {
	// StateDim returns the dimension of the hidden state
	StateDim() int
	// ObsVariance returns the observation noise variance
	ObsVariance() float64
}

// Filter is a causal scalar series filter: it consumes observations in order
// and produces one posterior estimate per observation, never looking ahead.
type Filter interface {
	// Model describes the filtered model
	Model
	// FilterSeries runs the filter over the observation series y.
	// It returns per-step posterior means and variances, one row per
	// state component, each row holding len(y) values.
	FilterSeries(y []float64) (means, variances [][]float64, err error)
}
