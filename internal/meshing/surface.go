package meshing

import (
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const defaultTexture = "default"

// Volume - плотная сетка блоков, по которой строится поверхность
type Volume interface {
	Size() int
	BlockSize() float64
	BlockAt(i vec.Vec3) block.BlockID
	IsEmpty(i vec.Vec3) bool
	IndicesToPosition(i vec.Vec3) mgl64.Vec3
}

// Mesh содержит буферы объединённой поверхности открытых граней
type Mesh struct {
	Positions []float32       // x,y,z на вершину
	Normals   []float32       // нормаль на вершину, общая для квада
	Indices   []uint32        // по шесть индексов на квад
	Blocks    []block.BlockID // тип блока на квад
	Sides     []block.Face    // грань блока на квад
}

// FaceCount возвращает число квадов
func (m *Mesh) FaceCount() int {
	return len(m.Indices) / len(quadIndices)
}

// Texture возвращает имя текстуры квада q по типу блока и грани
func (m *Mesh) Texture(q int) string {
	if q < 0 || q >= len(m.Blocks) || q >= len(m.Sides) {
		return defaultTexture
	}
	d, ok := block.Get(m.Blocks[q])
	if !ok {
		return defaultTexture
	}
	if tex := d.Texture(m.Sides[q]); tex != "" {
		return tex
	}
	return defaultTexture
}

// VertexCount возвращает число вершин
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Build полностью перестраивает поверхность: для каждого непустого блока
// и каждого из шести направлений квад выводится, если соседняя ячейка пуста.
// Ячейки вне сетки считаются пустыми.
func Build(v Volume) *Mesh {
	mesh := &Mesh{}
	size := v.Size()
	edge := float32(v.BlockSize())
	half := v.BlockSize() / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			for z := 0; z < size; z++ {
				i := vec.Vec3{X: x, Y: y, Z: z}
				if v.IsEmpty(i) {
					continue
				}

				center := v.IndicesToPosition(i)
				origin := mgl32.Vec3{
					float32(center.X() - half),
					float32(center.Y() - half),
					float32(center.Z() - half),
				}
				id := v.BlockAt(i)

				for side, f := range faces {
					if !v.IsEmpty(i.Add(f.dir)) {
						continue
					}
					mesh.addQuad(origin, edge, f)
					mesh.Blocks = append(mesh.Blocks, id)
					mesh.Sides = append(mesh.Sides, block.Face(side))
				}
			}
		}
	}

	return mesh
}

func (m *Mesh) addQuad(origin mgl32.Vec3, edge float32, f face) {
	base := uint32(m.VertexCount())
	normal := mgl32.Vec3{float32(f.dir.X), float32(f.dir.Y), float32(f.dir.Z)}

	for _, c := range f.corners {
		p := origin.Add(c.Mul(edge))
		m.Positions = append(m.Positions, p[0], p[1], p[2])
		m.Normals = append(m.Normals, normal[0], normal[1], normal[2])
	}
	for _, idx := range quadIndices {
		m.Indices = append(m.Indices, base+idx)
	}
}
