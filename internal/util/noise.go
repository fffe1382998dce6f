package util

import (
	"github.com/aquilax/go-perlin"
)

// Параметры шума Перлина для рельефа
const (
	noiseAlpha   = 2.0 // Сглаживание шума
	noiseBeta    = 2.0 // Частота шума
	noiseOctaves = 3   // Количество октав
)

// Noise - детерминированный источник двумерного шума Перлина
type Noise struct {
	seed   int64
	perlin *perlin.Perlin
}

// NewNoise создаёт генератор шума с указанным сидом
func NewNoise(seed int64) *Noise {
	return &Noise{
		seed:   seed,
		perlin: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

// Seed возвращает сид генератора
func (n *Noise) Seed() int64 {
	return n.seed
}

// Noise2D возвращает значение шума в точке (x, y), примерно от -1 до 1
func (n *Noise) Noise2D(x, y float64) float64 {
	return n.perlin.Noise2D(x, y)
}

// Normalized возвращает значение шума, приведённое к диапазону от 0 до 1
func (n *Noise) Normalized(x, y float64) float64 {
	return (n.Noise2D(x, y) + 1.0) / 2.0
}
