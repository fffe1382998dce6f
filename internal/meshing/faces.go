package meshing

import (
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/go-gl/mathgl/mgl32"
)

// face описывает одну грань единичного куба: внешнюю нормаль и четыре угла.
// Углы упорядочены так, что треугольники (0,1,2) и (2,1,3) обходятся против
// часовой стрелки при взгляде снаружи.
type face struct {
	dir     vec.Vec3
	corners [4]mgl32.Vec3
}

// faces индексируется как block.Face: +x, -x, +y, -y, +z, -z
var faces = [6]face{
	{ // право
		dir:     vec.Vec3{X: 1},
		corners: [4]mgl32.Vec3{{1, 1, 1}, {1, 0, 1}, {1, 1, 0}, {1, 0, 0}},
	},
	{ // лево
		dir:     vec.Vec3{X: -1},
		corners: [4]mgl32.Vec3{{0, 1, 0}, {0, 0, 0}, {0, 1, 1}, {0, 0, 1}},
	},
	{ // верх
		dir:     vec.Vec3{Y: 1},
		corners: [4]mgl32.Vec3{{0, 1, 1}, {1, 1, 1}, {0, 1, 0}, {1, 1, 0}},
	},
	{ // низ
		dir:     vec.Vec3{Y: -1},
		corners: [4]mgl32.Vec3{{1, 0, 1}, {0, 0, 1}, {1, 0, 0}, {0, 0, 0}},
	},
	{ // перед
		dir:     vec.Vec3{Z: 1},
		corners: [4]mgl32.Vec3{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}},
	},
	{ // зад
		dir:     vec.Vec3{Z: -1},
		corners: [4]mgl32.Vec3{{1, 0, 0}, {0, 0, 0}, {1, 1, 0}, {0, 1, 0}},
	},
}

// quadIndices - два треугольника квада относительно его первой вершины
var quadIndices = [6]uint32{0, 1, 2, 2, 1, 3}
