package world

import (
	"time"

	"github.com/annel0/voxel-engine/internal/meshing"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/go-gl/mathgl/mgl64"
)

// AddBlock ставит блок типа id в ячейку, содержащую p.
// Вне мира, в занятую ячейку, а также для пустоты и неизвестного типа - no-op.
// Возвращает true, если сетка изменилась.
func (g *Grid) AddBlock(p mgl64.Vec3, id block.BlockID) bool {
	i := g.mapper.PositionToIndices(p)
	if !g.IsInWorld(i) || id == block.AirBlockID || !g.catalog.Has(id) || !g.IsEmpty(i) {
		g.logger.Trace("AddBlock %v (id=%d) проигнорирован", i, id)
		g.metrics.observeEdit("add", false)
		return false
	}

	g.cell(i).ID = id
	if g.IsExposed(i) {
		g.show(i)
	}

	// Новый блок мог закрыть последнюю открытую грань соседей
	for _, j := range g.Neighbors(i) {
		if c := g.cell(j); c.Exposed && !g.IsExposed(j) {
			g.hide(j)
		}
	}

	g.logger.Trace("AddBlock %v id=%d", i, id)
	g.metrics.observeEdit("add", true)
	g.rebuildMesh()
	return true
}

// RemoveBlock очищает ячейку, содержащую p.
// Вне мира и для пустой ячейки - no-op. Возвращает true, если сетка изменилась.
func (g *Grid) RemoveBlock(p mgl64.Vec3) bool {
	i := g.mapper.PositionToIndices(p)
	if g.IsEmpty(i) {
		g.logger.Trace("RemoveBlock %v проигнорирован", i)
		g.metrics.observeEdit("remove", false)
		return false
	}

	if g.cell(i).Exposed {
		g.hide(i)
	}
	g.cell(i).ID = block.AirBlockID

	for _, j := range g.Neighbors(i) {
		if c := g.cell(j); c.ID != block.AirBlockID && !c.Exposed && g.IsExposed(j) {
			g.show(j)
		}
	}

	g.logger.Trace("RemoveBlock %v", i)
	g.metrics.observeEdit("remove", true)
	g.rebuildMesh()
	return true
}

// show помечает ячейку открытой и подключает для неё новый прокси
func (g *Grid) show(i vec.Vec3) {
	c := g.cell(i)
	c.Exposed = true
	c.Proxy = g.catalog.CreateInstance(c.ID, g.mapper.IndicesToPosition(i))
	if c.Proxy == nil {
		g.logger.Warn("каталог не создал прокси для блока %d в %v", c.ID, i)
		return
	}
	g.proxies++
	g.display.Attach(c.Proxy)
}

// hide отключает и отбрасывает прокси; данные блока сохраняются
func (g *Grid) hide(i vec.Vec3) {
	c := g.cell(i)
	if c.Proxy != nil {
		g.display.Detach(c.Proxy)
		g.proxies--
	}
	c.Proxy = nil
	c.Exposed = false
}

// rebuildMesh полностью заменяет объединённую поверхность
func (g *Grid) rebuildMesh() {
	start := time.Now()
	mesh := meshing.Build(g)

	if g.mesh != nil {
		g.display.DetachMesh(g.mesh)
	}
	g.mesh = mesh
	g.display.AttachMesh(mesh)

	took := time.Since(start)
	g.metrics.observeRebuild(mesh.FaceCount(), took)
	g.metrics.observeProxies(g.proxies)
	g.logger.Debug("поверхность перестроена: граней=%d за %v", mesh.FaceCount(), took)
}
