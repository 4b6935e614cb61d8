package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNone(t *testing.T) {
	assert := assert.New(t)

	n, err := NewNone()
	assert.NotNil(n)
	assert.NoError(err)

	for i := 0; i < 10; i++ {
		assert.Equal(0.0, n.Sample())
	}
	assert.Equal(0.0, n.Variance())

	n.Reset(123)
	assert.Equal(0.0, n.Sample())
}
