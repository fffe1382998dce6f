package world

import (
	"fmt"

	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/meshing"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/go-gl/mathgl/mgl64"
)

// Cell - одна ячейка сетки.
// Инвариант: ID == 0 ⇔ Proxy == nil и Exposed == false.
type Cell struct {
	ID      block.BlockID // 0 - пусто
	Proxy   block.Proxy   // прокси, есть только у открытых блоков
	Exposed bool          // кеш IsExposed
}

// GridConfig задаёт зависимости сетки
type GridConfig struct {
	BlockSize float64         // S; 0 - DefaultBlockSize
	Catalog   block.Catalog   // обязателен
	Display   Display         // nil - ничего не отображается
	Metrics   *Metrics        // nil - без метрик
	Logger    *logging.Logger // nil - компонентный логгер "world"
}

// Grid владеет плотным массивом ячеек [y][x][z] размером L×L×L
type Grid struct {
	mapper  Mapper
	cells   [][][]Cell
	catalog block.Catalog
	display Display
	metrics *Metrics
	logger  *logging.Logger
	mesh    *meshing.Mesh
	proxies int
}

// NewGrid создаёт сетку из начального массива блоков [y][x][z].
// Массив должен быть кубическим; неизвестные каталогу типы считаются пустотой.
func NewGrid(blocks [][][]block.BlockID, cfg GridConfig) (*Grid, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("каталог блоков не задан")
	}

	size := len(blocks)
	if size == 0 {
		return nil, fmt.Errorf("пустой массив блоков")
	}
	for y := range blocks {
		if len(blocks[y]) != size {
			return nil, fmt.Errorf("слой y=%d: ожидалось %d рядов, получено %d", y, size, len(blocks[y]))
		}
		for x := range blocks[y] {
			if len(blocks[y][x]) != size {
				return nil, fmt.Errorf("ряд y=%d x=%d: ожидалось %d ячеек, получено %d", y, x, size, len(blocks[y][x]))
			}
		}
	}

	blockSize := cfg.BlockSize
	if blockSize == 0 {
		blockSize = DefaultBlockSize
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("некорректная длина ребра блока %v", blockSize)
	}

	g := &Grid{
		mapper:  NewMapper(size, blockSize),
		catalog: cfg.Catalog,
		display: cfg.Display,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
	if g.display == nil {
		g.display = nopDisplay{}
	}
	if g.logger == nil {
		g.logger = logging.GetComponentLogger("world")
	}

	unknown := 0
	g.cells = make([][][]Cell, size)
	for y := range blocks {
		g.cells[y] = make([][]Cell, size)
		for x := range blocks[y] {
			row := make([]Cell, size)
			for z, id := range blocks[y][x] {
				if id != block.AirBlockID && !g.catalog.Has(id) {
					unknown++
					continue
				}
				row[z].ID = id
			}
			g.cells[y][x] = row
		}
	}
	if unknown > 0 {
		g.logger.Warn("начальный массив содержит %d блоков неизвестного типа, они заменены пустотой", unknown)
	}

	g.forEach(func(i vec.Vec3, c *Cell) {
		if g.IsExposed(i) {
			g.show(i)
		}
	})
	g.rebuildMesh()

	g.logger.Debug("сетка %d³ создана: прокси=%d, граней=%d", size, g.proxies, g.mesh.FaceCount())
	return g, nil
}

// forEach обходит все ячейки в порядке [y][x][z]
func (g *Grid) forEach(fn func(i vec.Vec3, c *Cell)) {
	for y := range g.cells {
		for x := range g.cells[y] {
			for z := range g.cells[y][x] {
				fn(vec.Vec3{X: x, Y: y, Z: z}, &g.cells[y][x][z])
			}
		}
	}
}

// cell возвращает ячейку; i должен быть внутри мира
func (g *Grid) cell(i vec.Vec3) *Cell {
	return &g.cells[i.Y][i.X][i.Z]
}

// Mapper возвращает преобразователь координат сетки
func (g *Grid) Mapper() Mapper { return g.mapper }

// Size возвращает L
func (g *Grid) Size() int { return g.mapper.Size() }

// BlockSize возвращает S
func (g *Grid) BlockSize() float64 { return g.mapper.BlockSize() }

// Bounds возвращает мировые границы сетки
func (g *Grid) Bounds() (min, max mgl64.Vec3) { return g.mapper.Bounds() }

// PositionToIndices делегирует Mapper
func (g *Grid) PositionToIndices(p mgl64.Vec3) vec.Vec3 { return g.mapper.PositionToIndices(p) }

// IndicesToPosition делегирует Mapper
func (g *Grid) IndicesToPosition(i vec.Vec3) mgl64.Vec3 { return g.mapper.IndicesToPosition(i) }

// Mesh возвращает текущую объединённую поверхность
func (g *Grid) Mesh() *meshing.Mesh { return g.mesh }

// ProxyCount возвращает число живых прокси
func (g *Grid) ProxyCount() int { return g.proxies }

// IsInWorld проверяет, что все три индекса допустимы
func (g *Grid) IsInWorld(i vec.Vec3) bool {
	size := g.mapper.Size()
	return i.X >= 0 && i.X < size &&
		i.Y >= 0 && i.Y < size &&
		i.Z >= 0 && i.Z < size
}

// IsEmpty возвращает true для пустых ячеек и ячеек вне мира
func (g *Grid) IsEmpty(i vec.Vec3) bool {
	return !g.IsInWorld(i) || g.cell(i).ID == block.AirBlockID
}

// BlockAt возвращает тип блока; 0 для пустых ячеек и ячеек вне мира
func (g *Grid) BlockAt(i vec.Vec3) block.BlockID {
	if !g.IsInWorld(i) {
		return block.AirBlockID
	}
	return g.cell(i).ID
}

// CellAt возвращает копию ячейки
func (g *Grid) CellAt(i vec.Vec3) (Cell, bool) {
	if !g.IsInWorld(i) {
		return Cell{}, false
	}
	return *g.cell(i), true
}

// Neighbors возвращает соседей по осям, лежащих внутри мира, в порядке vec.Axes
func (g *Grid) Neighbors(i vec.Vec3) []vec.Vec3 {
	out := make([]vec.Vec3, 0, len(vec.Axes))
	for _, axis := range vec.Axes {
		j := i.Add(axis)
		if g.IsInWorld(j) {
			out = append(out, j)
		}
	}
	return out
}

// IsExposed вычисляет открытость заново, не доверяя кешу:
// непустой блок открыт, если касается границы мира или пустого соседа.
func (g *Grid) IsExposed(i vec.Vec3) bool {
	if g.IsEmpty(i) {
		return false
	}

	neighbors := g.Neighbors(i)
	if len(neighbors) < len(vec.Axes) {
		return true
	}
	for _, j := range neighbors {
		if g.IsEmpty(j) {
			return true
		}
	}
	return false
}

// Nearby возвращает прокси открытых блоков в пределах ±radius (по Чебышёву)
// от ячейки, содержащей p, в порядке [y][x][z]
func (g *Grid) Nearby(p mgl64.Vec3, radius int) []block.Proxy {
	if radius < 0 {
		return nil
	}

	c := g.mapper.PositionToIndices(p)
	var out []block.Proxy
	for y := c.Y - radius; y <= c.Y+radius; y++ {
		for x := c.X - radius; x <= c.X+radius; x++ {
			for z := c.Z - radius; z <= c.Z+radius; z++ {
				i := vec.Vec3{X: x, Y: y, Z: z}
				if !g.IsInWorld(i) {
					continue
				}
				if cell := g.cell(i); cell.Exposed && cell.Proxy != nil {
					out = append(out, cell.Proxy)
				}
			}
		}
	}
	return out
}

// Proxies возвращает все живые прокси в порядке [y][x][z]
func (g *Grid) Proxies() []block.Proxy {
	out := make([]block.Proxy, 0, g.proxies)
	g.forEach(func(_ vec.Vec3, c *Cell) {
		if c.Proxy != nil {
			out = append(out, c.Proxy)
		}
	})
	return out
}
