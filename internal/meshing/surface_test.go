package meshing

import (
	"testing"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// denseVolume - минимальная сетка [y][x][z] для тестов построителя
type denseVolume struct {
	size   int
	edge   float64
	blocks [][][]block.BlockID
}

func newDenseVolume(size int, fill block.BlockID) *denseVolume {
	blocks := make([][][]block.BlockID, size)
	for y := range blocks {
		blocks[y] = make([][]block.BlockID, size)
		for x := range blocks[y] {
			blocks[y][x] = make([]block.BlockID, size)
			for z := range blocks[y][x] {
				blocks[y][x][z] = fill
			}
		}
	}
	return &denseVolume{size: size, edge: 10, blocks: blocks}
}

func (d *denseVolume) Size() int          { return d.size }
func (d *denseVolume) BlockSize() float64 { return d.edge }

func (d *denseVolume) in(i vec.Vec3) bool {
	return i.X >= 0 && i.Y >= 0 && i.Z >= 0 && i.X < d.size && i.Y < d.size && i.Z < d.size
}

func (d *denseVolume) BlockAt(i vec.Vec3) block.BlockID {
	if !d.in(i) {
		return block.AirBlockID
	}
	return d.blocks[i.Y][i.X][i.Z]
}

func (d *denseVolume) IsEmpty(i vec.Vec3) bool {
	return d.BlockAt(i) == block.AirBlockID
}

func (d *denseVolume) IndicesToPosition(i vec.Vec3) mgl64.Vec3 {
	off := d.size / 2
	return mgl64.Vec3{
		float64(i.X-off)*d.edge + d.edge/2,
		float64(i.Y-off)*d.edge + d.edge/2,
		float64(i.Z-off)*d.edge + d.edge/2,
	}
}

func (d *denseVolume) set(i vec.Vec3, id block.BlockID) {
	d.blocks[i.Y][i.X][i.Z] = id
}

func TestFaceTable_OutwardWinding(t *testing.T) {
	for side, f := range faces {
		want := mgl32.Vec3{float32(f.dir.X), float32(f.dir.Y), float32(f.dir.Z)}
		for tri := 0; tri < 2; tri++ {
			a := f.corners[quadIndices[tri*3]]
			b := f.corners[quadIndices[tri*3+1]]
			c := f.corners[quadIndices[tri*3+2]]
			n := b.Sub(a).Cross(c.Sub(a)).Normalize()
			assert.True(t, n.ApproxEqual(want), "грань %d, треугольник %d: нормаль %v, ожидалась %v", side, tri, n, want)
		}

		// Все четыре угла лежат на стороне куба, куда смотрит нормаль
		for _, c := range f.corners {
			switch {
			case f.dir.X != 0:
				assert.Equal(t, float32((f.dir.X+1)/2), c.X())
			case f.dir.Y != 0:
				assert.Equal(t, float32((f.dir.Y+1)/2), c.Y())
			default:
				assert.Equal(t, float32((f.dir.Z+1)/2), c.Z())
			}
		}
	}
}

func TestBuild_SingleBlock(t *testing.T) {
	v := newDenseVolume(4, block.AirBlockID)
	v.set(vec.Vec3{X: 2, Y: 2, Z: 2}, block.StoneBlockID)

	mesh := Build(v)

	require.Equal(t, 6, mesh.FaceCount(), "у одиночного блока открыты все грани")
	assert.Equal(t, 24, mesh.VertexCount())
	assert.Len(t, mesh.Normals, len(mesh.Positions))
	assert.Len(t, mesh.Indices, 36)
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, mesh.Indices[:6])
	assert.Equal(t, []uint32{4, 5, 6, 6, 5, 7}, mesh.Indices[6:12])

	// Блок (2,2,2) при L=4, S=10 занимает куб [0,10]^3
	for i := 0; i < len(mesh.Positions); i++ {
		assert.Contains(t, []float32{0, 10}, mesh.Positions[i])
	}
	for q, id := range mesh.Blocks {
		assert.Equal(t, block.StoneBlockID, id)
		assert.Equal(t, block.Face(q), mesh.Sides[q])
	}
}

func TestBuild_SharedFaceHidden(t *testing.T) {
	v := newDenseVolume(4, block.AirBlockID)
	v.set(vec.Vec3{X: 1, Y: 1, Z: 1}, block.DirtBlockID)
	v.set(vec.Vec3{X: 2, Y: 1, Z: 1}, block.DirtBlockID)

	mesh := Build(v)
	assert.Equal(t, 10, mesh.FaceCount(), "общая грань двух блоков не выводится")
}

func TestBuild_SolidWithCenterHole(t *testing.T) {
	for _, size := range []int{3, 5} {
		v := newDenseVolume(size, block.StoneBlockID)
		c := size / 2
		v.set(vec.Vec3{X: c, Y: c, Z: c}, block.AirBlockID)

		mesh := Build(v)

		// Внешняя оболочка граничит с пространством вне мира
		assert.Equal(t, 6*size*size+6, mesh.FaceCount(), "L=%d", size)

		// Ровно шесть граней обращены к пустой центральной ячейке
		center := v.IndicesToPosition(vec.Vec3{X: c, Y: c, Z: c})
		inner := 0
		for q := 0; q < mesh.FaceCount(); q++ {
			p := mesh.Positions[q*12 : q*12+3]
			n := mesh.Normals[q*12 : q*12+3]
			dx := float64(p[0]) - center.X()
			dy := float64(p[1]) - center.Y()
			dz := float64(p[2]) - center.Z()
			if dx*dx+dy*dy+dz*dz <= 3*25+1e-6 && float64(n[0])*dx+float64(n[1])*dy+float64(n[2])*dz < 0 {
				inner++
			}
		}
		assert.Equal(t, 6, inner, "L=%d", size)
	}
}

func TestBuild_EmptyVolume(t *testing.T) {
	mesh := Build(newDenseVolume(3, block.AirBlockID))
	assert.Zero(t, mesh.FaceCount())
	assert.Empty(t, mesh.Positions)
}
