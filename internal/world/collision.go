package world

import (
	"github.com/annel0/voxel-engine/internal/physics"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/go-gl/mathgl/mgl64"
)

// lowLayerThreshold - доля высоты слоя, ниже которой учитывается слой на два ниже
const lowLayerThreshold = 0.8

// CollisionMask возвращает коробки столбцов окрестности 3×3 вокруг ячейки p,
// которые может задеть тело аватара. Порядок: x внешний, z внутренний.
func (g *Grid) CollisionMask(p mgl64.Vec3) []physics.Box {
	c := g.mapper.PositionToIndices(p)
	size := g.mapper.BlockSize()

	// Положение внутри слоя считаем от его основания, а не через деление,
	// чтобы точно выровненная высота давала ровно порог.
	base := g.mapper.IndicesToPosition(c).Y() - size/2
	low := p.Y()-base < lowLayerThreshold*size

	var boxes []physics.Box
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			col := vec.Vec3{X: c.X + dx, Y: c.Y, Z: c.Z + dz}
			if !g.columnBlocked(col, low) {
				continue
			}
			center := g.mapper.IndicesToPosition(col)
			boxes = append(boxes, physics.NewBox(vec.Vec2Float{X: center.X(), Y: center.Z()}, size, size))
		}
	}
	return boxes
}

// columnBlocked проверяет слой col.Y, слой ниже и, если low, слой на два ниже
func (g *Grid) columnBlocked(col vec.Vec3, low bool) bool {
	if !g.IsEmpty(col) || !g.IsEmpty(col.Down()) {
		return true
	}
	return low && !g.IsEmpty(col.Down().Down())
}
