package world

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/annel0/voxel-engine/internal/util"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Константы генерации рельефа
const (
	DirtDepth      = 6    // Глубина слоя земли под травой (вместе с травой)
	NoiseScale     = 20.0 // Масштаб шума по горизонтали, в блоках
	NoiseAmplitude = 6.0  // Амплитуда шума по высоте, в блоках
	TreeMargin     = 3    // Отступ деревьев от края мира
	TreeSpacing    = 3.0  // Минимальное расстояние между стволами
	treeAttempts   = 100  // Попыток на одно дерево
)

// Generator строит начальный массив блоков [y][x][z] размером L×L×L
type Generator interface {
	Generate(size int) [][][]block.BlockID
}

// NewGenerator создаёт генератор по имени из конфигурации ("flat" или "noise")
func NewGenerator(kind string, seed int64, treesMin, treesMax int) (Generator, error) {
	switch kind {
	case "flat":
		return FlatGenerator{}, nil
	case "noise":
		if treesMin < 0 || treesMax < treesMin {
			return nil, fmt.Errorf("некорректный диапазон деревьев [%d, %d]", treesMin, treesMax)
		}
		return NewNoiseGenerator(seed, treesMin, treesMax), nil
	default:
		return nil, fmt.Errorf("неизвестный генератор %q", kind)
	}
}

// surfaceLayer возвращает базовый уровень поверхности
func surfaceLayer(size int) int {
	return size/2 - 1
}

func newBlocks(size int) [][][]block.BlockID {
	blocks := make([][][]block.BlockID, size)
	for y := range blocks {
		blocks[y] = make([][]block.BlockID, size)
		for x := range blocks[y] {
			blocks[y][x] = make([]block.BlockID, size)
		}
	}
	return blocks
}

// FlatGenerator строит плоский мир: трава, под ней земля, ниже камень
type FlatGenerator struct{}

// Generate реализует Generator
func (FlatGenerator) Generate(size int) [][][]block.BlockID {
	blocks := newBlocks(size)
	s := surfaceLayer(size)

	for y := 0; y < size && y <= s; y++ {
		id := block.StoneBlockID
		switch {
		case y == s:
			id = block.GrassBlockID
		case y >= s-DirtDepth:
			id = block.DirtBlockID
		}
		for x := 0; x < size; x++ {
			for z := 0; z < size; z++ {
				blocks[y][x][z] = id
			}
		}
	}
	return blocks
}

// NoiseGenerator строит холмистый мир по шуму Перлина и сажает деревья
type NoiseGenerator struct {
	Seed     int64
	TreesMin int // Минимальное число деревьев
	TreesMax int // Максимальное число деревьев (включительно)
	noise    *util.Noise
}

// NewNoiseGenerator создаёт генератор с указанным сидом
func NewNoiseGenerator(seed int64, treesMin, treesMax int) *NoiseGenerator {
	return &NoiseGenerator{
		Seed:     seed,
		TreesMin: treesMin,
		TreesMax: treesMax,
		noise:    util.NewNoise(seed),
	}
}

// Generate реализует Generator
func (ng *NoiseGenerator) Generate(size int) [][][]block.BlockID {
	blocks := newBlocks(size)
	s := surfaceLayer(size)

	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			height := ng.noise.Noise2D(float64(x)/NoiseScale-1, float64(z)/NoiseScale-1) * NoiseAmplitude
			for y := 0; y < size; y++ {
				offset := float64(y - s)
				switch {
				case offset > height:
					// воздух
				case offset+1 > height:
					blocks[y][x][z] = block.GrassBlockID
				case offset+DirtDepth > height:
					blocks[y][x][z] = block.DirtBlockID
				default:
					blocks[y][x][z] = block.StoneBlockID
				}
			}
		}
	}

	// Генератор случайных чисел локальный, чтобы результат зависел только от сида
	rng := rand.New(rand.NewSource(ng.Seed))
	count := ng.TreesMin
	if ng.TreesMax > ng.TreesMin {
		count += rng.Intn(ng.TreesMax - ng.TreesMin + 1)
	}
	for _, pos := range treePositions(size, count, rng) {
		placeTree(blocks, pos[0], pos[1], rng)
	}
	return blocks
}

// treePositions выбирает позиции стволов на расстоянии не меньше TreeSpacing друг от друга
func treePositions(size, count int, rng *rand.Rand) [][2]int {
	span := size - 2*TreeMargin
	if span <= 0 || count <= 0 {
		return nil
	}

	var positions [][2]int
	for attempt := 0; len(positions) < count && attempt < count*treeAttempts; attempt++ {
		candidate := [2]int{rng.Intn(span) + TreeMargin, rng.Intn(span) + TreeMargin}
		free := true
		for _, p := range positions {
			if math.Hypot(float64(p[0]-candidate[0]), float64(p[1]-candidate[1])) < TreeSpacing {
				free = false
				break
			}
		}
		if free {
			positions = append(positions, candidate)
		}
	}
	return positions
}

// placeTree строит дерево на поверхности столбца (x, z):
// два слоя ствола, кольцо листвы с редкими углами,
// полное кольцо листвы и верхушка с редкими углами.
func placeTree(blocks [][][]block.BlockID, x, z int, rng *rand.Rand) {
	y := 0
	for y < len(blocks) && blocks[y][x][z] != block.AirBlockID {
		y++
	}

	set := func(y, x, z int, id block.BlockID) {
		if y < 0 || y >= len(blocks) || x < 0 || x >= len(blocks[y]) || z < 0 || z >= len(blocks[y][x]) {
			return
		}
		blocks[y][x][z] = id
	}
	ring := func(y int, cornerChance float64) {
		for dx := -1; dx <= 1; dx++ {
			for dz := -1; dz <= 1; dz++ {
				if dx != 0 && dz != 0 && rng.Float64() >= cornerChance {
					continue
				}
				set(y, x+dx, z+dz, block.LeavesBlockID)
			}
		}
	}

	set(y, x, z, block.LogBlockID)
	set(y+1, x, z, block.LogBlockID)

	ring(y+2, 0.4)
	set(y+2, x, z, block.LogBlockID)

	ring(y+3, 1)
	set(y+3, x, z, block.LogBlockID)

	ring(y+4, 0.3)
}
