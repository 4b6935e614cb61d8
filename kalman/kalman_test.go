package kalman

// genSeeded generates n deterministic pseudo-random values in [-1, 1) from a
// 64-bit LCG so tests and benchmarks do not depend on math/rand ordering.
func genSeeded(n int, seed uint64) []float64 {
	x := make([]float64, n)
	s := seed
	for i := range x {
		s = s*6364136223846793005 + 1442695040888963407
		u := float64(s>>11) * (1.0 / float64(uint64(1)<<53))
		x[i] = 2.0*u - 1.0
	}

	return x
}
