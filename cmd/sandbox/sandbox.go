package main

import (
	"context"
	"fmt"
	"math"

	"github.com/annel0/voxel-engine/internal/config"
	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/observability"
	"github.com/annel0/voxel-engine/internal/physics"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/go-gl/mathgl/mgl64"
	"go.opentelemetry.io/otel/attribute"
)

// Расписание песочницы в тиках
const (
	editEvery  = 45  // Как часто аватар ставит или убирает блок
	jumpEvery  = 60  // Как часто аватар прыгает
	turnPeriod = 240 // Полный оборот направления движения
)

// Sandbox - безголовый мир с одним аватаром
type Sandbox struct {
	cfg      *config.Config
	catalog  *block.DescriptorCatalog
	scene    *world.Scene
	grid     *world.Grid
	resolver *physics.Resolver
	avatar   *physics.Avatar
	logger   *logging.Logger
}

// Report - итог прогона
type Report struct {
	Ticks         int
	GroundedTicks int
	Edits         int
	AppliedEdits  int
	Proxies       int
	Faces         int
	Position      mgl64.Vec3
}

// NewSandbox генерирует мир по конфигурации и ставит аватара на поверхность
func NewSandbox(ctx context.Context, cfg *config.Config, metrics *world.Metrics, logger *logging.Logger) (*Sandbox, error) {
	_, span := observability.Tracer().Start(ctx, "sandbox.generate")
	defer span.End()

	gen, err := world.NewGenerator(cfg.World.Generator, cfg.World.Seed, cfg.World.TreesMin, cfg.World.TreesMax)
	if err != nil {
		return nil, fmt.Errorf("генератор мира: %w", err)
	}
	blocks := gen.Generate(cfg.World.Size)

	s := &Sandbox{
		cfg:     cfg,
		catalog: block.DefaultCatalog(),
		scene:   world.NewScene(),
		logger:  logger,
	}
	s.grid, err = world.NewGrid(blocks, world.GridConfig{
		BlockSize: cfg.World.BlockSize,
		Catalog:   s.catalog,
		Display:   s.scene,
		Metrics:   metrics,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("создание сетки: %w", err)
	}

	tuning := cfg.Physics.Tuning()
	s.resolver = physics.NewResolver(s.grid, tuning)
	s.avatar = physics.NewAvatar(spawnPoint(s.grid, tuning.Height))

	span.SetAttributes(
		attribute.String("world.generator", cfg.World.Generator),
		attribute.Int("world.size", cfg.World.Size),
		attribute.Int("grid.proxies", s.grid.ProxyCount()),
		attribute.Int("mesh.faces", s.grid.Mesh().FaceCount()),
	)
	return s, nil
}

// spawnPoint возвращает позицию глаз аватара над самым высоким блоком центрального столбца
func spawnPoint(g *world.Grid, height float64) mgl64.Vec3 {
	center := g.PositionToIndices(mgl64.Vec3{})
	for y := g.Size() - 1; y >= 0; y-- {
		i := vec.Vec3{X: center.X, Y: y, Z: center.Z}
		if !g.IsEmpty(i) {
			p := g.IndicesToPosition(i)
			return mgl64.Vec3{p.X(), p.Y() + g.BlockSize()/2 + height, p.Z()}
		}
	}
	_, hi := g.Bounds()
	return mgl64.Vec3{0, hi.Y(), 0}
}

// Hotbar возвращает непозиционированные прокси всех блоков каталога
func (s *Sandbox) Hotbar() []block.Proxy {
	var out []block.Proxy
	for _, d := range block.Registered() {
		if p := s.catalog.CreatePreviewInstance(d.ID); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Run прогоняет ticks тиков: аватар ходит по кругу, прыгает и правит мир
func (s *Sandbox) Run(ctx context.Context, ticks int) Report {
	_, span := observability.Tracer().Start(ctx, "sandbox.simulate")
	defer span.End()

	dt := 1.0 / float64(s.cfg.Sandbox.TickRate)
	report := Report{Ticks: ticks}

	for tick := 0; tick < ticks; tick++ {
		angle := 2 * math.Pi * float64(tick) / turnPeriod
		in := physics.Input{
			Direction: vec.Vec2Float{X: math.Cos(angle), Y: math.Sin(angle)},
			Jump:      tick%jumpEvery == jumpEvery/2,
		}
		s.resolver.Step(s.avatar, in, dt)
		if s.avatar.Grounded() {
			report.GroundedTicks++
		}

		if tick > 0 && tick%editEvery == 0 {
			report.Edits++
			if s.edit(tick/editEvery, in.Direction) {
				report.AppliedEdits++
			}
		}
	}

	report.Proxies = s.grid.ProxyCount()
	report.Faces = s.grid.Mesh().FaceCount()
	report.Position = s.avatar.Position

	span.SetAttributes(
		attribute.Int("sandbox.ticks", report.Ticks),
		attribute.Int("sandbox.edits", report.Edits),
		attribute.Int("sandbox.applied_edits", report.AppliedEdits),
	)
	return report
}

// edit по очереди ставит блок перед аватаром на уровне ног
// или выкапывает блок перед ним под уровнем ног
func (s *Sandbox) edit(n int, dir vec.Vec2Float) bool {
	size := s.grid.BlockSize()
	feet := s.avatar.Position.Y() - s.resolver.Tuning().Height
	front := mgl64.Vec3{
		s.avatar.Position.X() + dir.X*size,
		feet + size/2,
		s.avatar.Position.Z() + dir.Y*size,
	}

	if n%2 == 1 {
		ok := s.grid.AddBlock(front, block.CobblestoneBlockID)
		s.logger.Debug("установка блока в %v: %v", s.grid.PositionToIndices(front), ok)
		return ok
	}

	below := front.Sub(mgl64.Vec3{0, size, 0})
	ok := s.grid.RemoveBlock(below)
	s.logger.Debug("удаление блока в %v: %v", s.grid.PositionToIndices(below), ok)
	return ok
}

// Scene возвращает коллекцию отображаемых объектов
func (s *Sandbox) Scene() *world.Scene {
	return s.scene
}

// Grid возвращает сетку мира
func (s *Sandbox) Grid() *world.Grid {
	return s.grid
}
