package noise

// None is zero noise: every sample is exactly zero.
type None struct{}

// NewNone creates new None noise.
func NewNone() (*None, error) {
	return &None{}, nil
}

// Sample returns zero.
func (n *None) Sample() float64 {
	return 0
}

// Variance returns zero.
func (n *None) Variance() float64 {
	return 0
}

// Reset is a no-op.
func (n *None) Reset(seed uint64) {}

// String implements the Stringer interface.
func (n *None) String() string {
	return "None{}"
}
