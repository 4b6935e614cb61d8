// Package noise provides scalar noise sources for simulating structural time
// series models.
package noise

// Noise is a scalar noise source.
type Noise interface {
	// Sample draws a single noise sample
	Sample() float64
	// Variance returns the noise variance
	Variance() float64
	// Reset reseeds the noise source
	Reset(seed uint64)
}
