package util

import (
	"testing"

	"github.com/fogleman/ease"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLutEndpoints(t *testing.T) {
	for _, steps := range []int{1, 2, 7, 30} {
		lut := GenerateLut(steps, Smooth)
		require.Len(t, lut, steps+1)
		assert.Equal(t, 0.0, lut[0])
		assert.Equal(t, 1.0, lut[steps])
	}
}

func TestGenerateLutMonotonic(t *testing.T) {
	lut := GenerateLut(25, Smooth)
	for i := 1; i < len(lut); i++ {
		assert.GreaterOrEqual(t, lut[i], lut[i-1], "index %d", i)
	}
}

func TestGenerateLutClampsSteps(t *testing.T) {
	lut := GenerateLut(0, ease.Linear)
	assert.Equal(t, []float64{0, 1}, lut)
}

func TestMemoizerCaches(t *testing.T) {
	m := NewMemoizer(ease.Linear)
	a := m.Lut(10)
	b := m.Lut(10)
	assert.Equal(t, 1, m.Len())
	assert.Same(t, &a[0], &b[0])

	m.Lut(4)
	assert.Equal(t, 2, m.Len())
	assert.InDelta(t, 0.5, m.Lut(4)[2], 1e-9)
}
