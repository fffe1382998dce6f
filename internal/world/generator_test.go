package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatGenerator_Layers(t *testing.T) {
	blocks := FlatGenerator{}.Generate(40)
	require.Len(t, blocks, 40)

	assert.Equal(t, block.GrassBlockID, blocks[19][7][3], "поверхность на слое L/2-1")
	assert.Equal(t, block.DirtBlockID, blocks[18][0][0])
	assert.Equal(t, block.DirtBlockID, blocks[13][39][39])
	assert.Equal(t, block.StoneBlockID, blocks[12][5][5])
	assert.Equal(t, block.StoneBlockID, blocks[0][0][0])
	assert.Equal(t, block.AirBlockID, blocks[20][10][10])
	assert.Equal(t, block.AirBlockID, blocks[39][0][0])
}

func TestNoiseGenerator_Deterministic(t *testing.T) {
	a := NewNoiseGenerator(1337, 10, 19).Generate(40)
	b := NewNoiseGenerator(1337, 10, 19).Generate(40)

	assert.Equal(t, a, b, "одинаковый сид даёт одинаковый мир")
}

func TestNoiseGenerator_Terrain(t *testing.T) {
	blocks := NewNoiseGenerator(42, 10, 19).Generate(40)

	logs := 0
	for x := 0; x < 40; x++ {
		for z := 0; z < 40; z++ {
			assert.Equal(t, block.StoneBlockID, blocks[0][x][z], "глубина всегда камень")
			assert.Equal(t, block.AirBlockID, blocks[39][x][z], "верх мира пуст")
			for y := 0; y < 40; y++ {
				if blocks[y][x][z] == block.LogBlockID {
					logs++
				}
			}
		}
	}
	assert.GreaterOrEqual(t, logs, 10*4, "не меньше десяти деревьев по четыре блока ствола")
}

func TestNoiseGenerator_SmallWorld(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNoiseGenerator(3, 10, 19).Generate(5)
	}, "мир без места для деревьев")
}

func TestTreePositions_Spacing(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	positions := treePositions(40, 19, rng)
	require.Len(t, positions, 19)

	for n, p := range positions {
		assert.GreaterOrEqual(t, p[0], TreeMargin)
		assert.Less(t, p[0], 40-TreeMargin)
		assert.GreaterOrEqual(t, p[1], TreeMargin)
		assert.Less(t, p[1], 40-TreeMargin)
		for _, q := range positions[n+1:] {
			d := math.Hypot(float64(p[0]-q[0]), float64(p[1]-q[1]))
			assert.GreaterOrEqual(t, d, TreeSpacing, "стволы %v и %v слишком близко", p, q)
		}
	}

	assert.Nil(t, treePositions(6, 5, rng), "нет места для деревьев")
}

func TestNewGenerator(t *testing.T) {
	g, err := NewGenerator("flat", 0, 0, 0)
	require.NoError(t, err)
	assert.IsType(t, FlatGenerator{}, g)

	g, err = NewGenerator("noise", 5, 10, 19)
	require.NoError(t, err)
	assert.IsType(t, &NoiseGenerator{}, g)

	_, err = NewGenerator("caves", 0, 0, 0)
	assert.Error(t, err)

	_, err = NewGenerator("noise", 0, 5, 2)
	assert.Error(t, err)
}
