package noise

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian is zero-mean scalar Gaussian noise.
type Gaussian struct {
	// dist is a univariate normal distribution
	dist distuv.Normal
	// variance is Gaussian variance
	variance float64
}

// NewGaussian creates new Gaussian noise with given variance and seed.
// It returns error if the variance is negative or not finite.
func NewGaussian(variance float64, seed uint64) (*Gaussian, error) {
	if math.IsNaN(variance) || math.IsInf(variance, 0) || variance < 0 {
		return nil, fmt.Errorf("invalid noise variance: %v", variance)
	}

	return &Gaussian{
		dist:     newNormal(variance, seed),
		variance: variance,
	}, nil
}

// Sample draws a single sample from Gaussian noise and returns it.
func (g *Gaussian) Sample() float64 {
	return g.dist.Rand()
}

// Variance returns the noise variance.
func (g *Gaussian) Variance() float64 {
	return g.variance
}

// Reset reseeds the noise source with seed.
func (g *Gaussian) Reset(seed uint64) {
	g.dist = newNormal(g.variance, seed)
}

func newNormal(variance float64, seed uint64) distuv.Normal {
	return distuv.Normal{
		Mu:    0,
		Sigma: math.Sqrt(variance),
		Src:   rand.New(rand.NewSource(seed)),
	}
}

// String implements the Stringer interface.
func (g *Gaussian) String() string {
	return fmt.Sprintf("Gaussian{Variance=%v}", g.variance)
}
