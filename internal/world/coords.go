package world

import (
	"math"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultBlockSize - длина ребра блока S в мировых единицах
const DefaultBlockSize = 10.0

// Mapper переводит непрерывные мировые координаты в индексы сетки и обратно.
// Мировая точка 0 соответствует центру сетки.
type Mapper struct {
	size      int     // L
	blockSize float64 // S
	offset    int     // L/2
}

// NewMapper создаёт преобразователь для сетки L×L×L с ребром блока S
func NewMapper(size int, blockSize float64) Mapper {
	return Mapper{
		size:      size,
		blockSize: blockSize,
		offset:    size / 2,
	}
}

// Size возвращает L
func (m Mapper) Size() int {
	return m.size
}

// BlockSize возвращает S
func (m Mapper) BlockSize() float64 {
	return m.blockSize
}

// PositionToIndices возвращает индексы ячейки, содержащей p.
// Индексы могут выходить за пределы сетки.
func (m Mapper) PositionToIndices(p mgl64.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: m.toIndex(p.X()),
		Y: m.toIndex(p.Y()),
		Z: m.toIndex(p.Z()),
	}
}

func (m Mapper) toIndex(c float64) int {
	return int(math.Floor(c/m.blockSize)) + m.offset
}

// IndicesToPosition возвращает центр блока с индексами i
func (m Mapper) IndicesToPosition(i vec.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		m.toPosition(i.X),
		m.toPosition(i.Y),
		m.toPosition(i.Z),
	}
}

func (m Mapper) toPosition(i int) float64 {
	return float64(i-m.offset)*m.blockSize + m.blockSize/2
}

// SnapToGrid возвращает центр блока, содержащего p
func (m Mapper) SnapToGrid(p mgl64.Vec3) mgl64.Vec3 {
	return m.IndicesToPosition(m.PositionToIndices(p))
}

// Bounds возвращает мировые границы сетки
func (m Mapper) Bounds() (min, max mgl64.Vec3) {
	lo := float64(-m.offset) * m.blockSize
	hi := float64(m.size-m.offset) * m.blockSize
	return mgl64.Vec3{lo, lo, lo}, mgl64.Vec3{hi, hi, hi}
}
