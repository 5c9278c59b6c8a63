package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_Bounds(t *testing.T) {
	base := 10 * time.Millisecond
	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestExponentialBackoff_CapsAtMax(t *testing.T) {
	base := time.Millisecond
	max := 8 * time.Millisecond

	assert.Equal(t, base, ExponentialBackoff(base, max, 0, 0))
	assert.Equal(t, 4*time.Millisecond, ExponentialBackoff(base, max, 2, 0))
	assert.Equal(t, max, ExponentialBackoff(base, max, 10, 0))
}
