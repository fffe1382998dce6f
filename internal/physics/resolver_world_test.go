package physics_test

import (
	"io"
	"testing"

	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/physics"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

func flatGrid(t *testing.T, edit func(blocks [][][]block.BlockID)) *world.Grid {
	t.Helper()

	blocks := world.FlatGenerator{}.Generate(40)
	if edit != nil {
		edit(blocks)
	}
	g, err := world.NewGrid(blocks, world.GridConfig{
		Catalog: block.DefaultCatalog(),
		Logger:  logging.NewWriterLogger("world", io.Discard, logging.ERROR),
	})
	require.NoError(t, err)
	return g
}

func TestResolver_StandsOnFlatWorld(t *testing.T) {
	g := flatGrid(t, nil)
	r := physics.NewResolver(g, physics.DefaultTuning(g.BlockSize()))
	a := physics.NewAvatar(mgl64.Vec3{5, 18, 5})

	for i := 0; i < 60; i++ {
		r.Step(a, physics.Input{}, tick)
		require.True(t, a.Grounded(), "тик %d", i)
		require.Equal(t, 18.0, a.Position.Y())
	}
}

func TestResolver_HeadOnApproachNeverOverlaps(t *testing.T) {
	tests := []struct {
		name  string
		cell  vec.Vec3
		start mgl64.Vec3
		dir   vec.Vec2Float
	}{
		{"+x", vec.Vec3{X: 21, Y: 20, Z: 20}, mgl64.Vec3{-45, 18, 5}, vec.Vec2Float{X: 1}},
		{"-x", vec.Vec3{X: 18, Y: 20, Z: 20}, mgl64.Vec3{45, 18, 5}, vec.Vec2Float{X: -1}},
		{"+z", vec.Vec3{X: 20, Y: 20, Z: 22}, mgl64.Vec3{5, 18, -45}, vec.Vec2Float{Y: 1}},
		{"-z", vec.Vec3{X: 20, Y: 20, Z: 17}, mgl64.Vec3{5, 18, 45}, vec.Vec2Float{Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := flatGrid(t, func(blocks [][][]block.BlockID) {
				blocks[tt.cell.Y][tt.cell.X][tt.cell.Z] = block.StoneBlockID
			})
			tuning := physics.DefaultTuning(g.BlockSize())
			r := physics.NewResolver(g, tuning)
			a := physics.NewAvatar(tt.start)

			center := g.IndicesToPosition(tt.cell)
			obstacle := physics.NewBox(vec.Vec2Float{X: center.X(), Y: center.Z()}, g.BlockSize(), g.BlockSize())

			for i := 0; i < 300; i++ {
				r.Step(a, physics.Input{Direction: tt.dir}, tick)
				require.False(t, a.Footprint(tuning.Width).Collide(obstacle, 0, 0),
					"след пересекает блок на тике %d: %v", i, a.Position)
			}

			// Аватар дошёл до блока и прижат к нему
			gap := a.Footprint(tuning.Width)
			assert.True(t, gap.Collide(obstacle, tt.dir.X*0.01, tt.dir.Y*0.01), "аватар упирается в блок")
			assert.True(t, a.Grounded())
		})
	}
}

func TestResolver_JumpAndLand(t *testing.T) {
	g := flatGrid(t, nil)
	r := physics.NewResolver(g, physics.DefaultTuning(g.BlockSize()))
	a := physics.NewAvatar(mgl64.Vec3{5, 18, 5})

	r.Step(a, physics.Input{Jump: true}, tick)
	require.Equal(t, 90.0, a.Velocity.Y())

	peak := a.Position.Y()
	for i := 0; i < 120; i++ {
		r.Step(a, physics.Input{}, tick)
		require.GreaterOrEqual(t, a.Position.Y(), 18.0, "аватар не проваливается сквозь пол")
		if a.Position.Y() > peak {
			peak = a.Position.Y()
		}
	}

	assert.Greater(t, peak, 30.0, "прыжок выше одного блока")
	assert.True(t, a.Grounded(), "аватар приземлился")
	assert.Equal(t, 18.0, a.Position.Y())
}

func TestResolver_CeilingBlocksJump(t *testing.T) {
	// Потолок начинается на высоте 20, над головой стоящего аватара
	g := flatGrid(t, func(blocks [][][]block.BlockID) {
		blocks[22][20][20] = block.StoneBlockID
	})
	r := physics.NewResolver(g, physics.DefaultTuning(g.BlockSize()))
	a := physics.NewAvatar(mgl64.Vec3{5, 18, 5})

	for i := 0; i < 60; i++ {
		r.Step(a, physics.Input{Jump: true}, tick)
		require.True(t, a.Grounded(), "тик %d", i)
		require.Equal(t, 0.0, a.Velocity.Y(), "тик %d", i)
		require.LessOrEqual(t, a.Position.Y(), 20.0, "голова не входит в потолок")
	}

	// Шаг в сторону из-под потолка не отбрасывает аватара назад
	r.Step(a, physics.Input{Direction: vec.Vec2Float{X: 1}}, tick)
	assert.Greater(t, a.Position.X(), 5.0)
}

func TestResolver_TallAvatarStands(t *testing.T) {
	g := flatGrid(t, nil)
	tuning := physics.DefaultTuning(g.BlockSize())
	tuning.Height = 25
	tuning.ProbeRadius = physics.MinProbeRadius(tuning.Height, g.BlockSize())
	r := physics.NewResolver(g, tuning)
	a := physics.NewAvatar(mgl64.Vec3{5, 25.5, 5})

	for i := 0; i < 30; i++ {
		r.Step(a, physics.Input{}, tick)
	}

	assert.True(t, a.Grounded(), "пол найден в радиусе поиска")
	assert.Equal(t, 25.0, a.Position.Y())
}

func TestResolver_StepsOffLedge(t *testing.T) {
	// Площадка в один блок над полом
	g := flatGrid(t, func(blocks [][][]block.BlockID) {
		blocks[20][20][20] = block.PlankBlockID
	})
	r := physics.NewResolver(g, physics.DefaultTuning(g.BlockSize()))
	a := physics.NewAvatar(mgl64.Vec3{5, 28, 5})

	r.Step(a, physics.Input{}, tick)
	require.True(t, a.Grounded())
	require.Equal(t, 28.0, a.Position.Y(), "аватар стоит на площадке")

	for i := 0; i < 120; i++ {
		r.Step(a, physics.Input{Direction: vec.Vec2Float{X: 1}}, tick)
	}
	assert.True(t, a.Grounded())
	assert.Equal(t, 18.0, a.Position.Y(), "аватар спустился на пол")
	assert.Greater(t, a.Position.X(), 13.0)
}
