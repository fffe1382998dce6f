package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoise_Deterministic(t *testing.T) {
	a := NewNoise(42)
	b := NewNoise(42)

	for i := 0; i < 20; i++ {
		x := float64(i)/7 - 1
		y := float64(i)/5 - 1
		assert.Equal(t, a.Noise2D(x, y), b.Noise2D(x, y), "одинаковый сид должен давать одинаковый шум")
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestNoise_Normalized(t *testing.T) {
	n := NewNoise(7)

	for i := 0; i < 10; i++ {
		x, y := float64(i)*0.13, float64(i)*0.29
		assert.InDelta(t, (n.Noise2D(x, y)+1)/2, n.Normalized(x, y), 1e-12)
	}
}

func TestNoise_SeedsDiffer(t *testing.T) {
	a := NewNoise(1)
	b := NewNoise(2)

	differs := false
	for i := 0; i < 20; i++ {
		x, y := float64(i)*0.37+0.11, float64(i)*0.23+0.05
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			differs = true
		}
	}
	assert.True(t, differs, "разные сиды должны давать разный шум")
}
