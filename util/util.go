package util

import (
	"sync"

	"github.com/fogleman/ease"
)

// EaseFunc maps linear progress in [0, 1] to eased progress.
type EaseFunc func(t float64) float64

// Smooth is the rate function used for every animation unless told otherwise.
var Smooth EaseFunc = ease.InOutQuad

// GenerateLut samples fn at steps+1 evenly spaced points, so lut[0] is the
// start and lut[steps] is the end of the animation.
func GenerateLut(steps int, fn EaseFunc) []float64 {
	if steps < 1 {
		steps = 1
	}
	increment := 1.0 / float64(steps)
	lut := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		lut[i] = fn(float64(i) * increment)
	}
	// Pin the endpoints so elements land exactly on their targets.
	lut[0] = 0
	lut[steps] = 1
	return lut
}

// Memoizer caches look-up tables by step count.
type Memoizer struct {
	mu   sync.Mutex
	fn   EaseFunc
	luts map[int][]float64
}

// NewMemoizer creates an instance of a Memoizer for fn.
func NewMemoizer(fn EaseFunc) *Memoizer {
	m := new(Memoizer)
	m.fn = fn
	m.luts = make(map[int][]float64)
	return m
}

// Lut returns the look-up table for steps, generating it on first use.
// Callers must not modify the returned slice.
func (m *Memoizer) Lut(steps int) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if lut, ok := m.luts[steps]; ok {
		return lut
	}
	lut := GenerateLut(steps, m.fn)
	m.luts[steps] = lut
	return lut
}

// Len returns the number of cached tables.
func (m *Memoizer) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.luts)
}
