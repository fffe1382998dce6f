package physics

import (
	"math"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/go-gl/mathgl/mgl64"
)

// Terrain - запросы к сетке, нужные для движения аватара
type Terrain interface {
	CollisionMask(p mgl64.Vec3) []Box
	Nearby(p mgl64.Vec3, radius int) []block.Proxy
	IsEmpty(i vec.Vec3) bool
	PositionToIndices(p mgl64.Vec3) vec.Vec3
	Bounds() (min, max mgl64.Vec3)
	BlockSize() float64
}

// Avatar - состояние аватара между тиками.
// Position - верх аватара (уровень глаз), ноги на Position.Y - Height.
type Avatar struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	grounded bool
}

// NewAvatar создаёт аватара в воздухе в точке position
func NewAvatar(position mgl64.Vec3) *Avatar {
	return &Avatar{Position: position}
}

// Grounded сообщает, стоял ли аватар на полу в конце последнего тика
func (a *Avatar) Grounded() bool {
	return a.grounded
}

// Footprint возвращает горизонтальный след аватара шириной width
func (a *Avatar) Footprint(width float64) Box {
	return NewBox(vec.Vec2Float{X: a.Position.X(), Y: a.Position.Z()}, width, width)
}

// Input - ввод за тик. Direction уже повёрнут в мировые оси (X - x, Y - z).
type Input struct {
	Direction vec.Vec2Float
	Jump      bool
}

// Resolver продвигает аватара на один тик с учётом столкновений
type Resolver struct {
	terrain Terrain
	tuning  Tuning
}

// NewResolver создаёт решатель движения по сетке terrain
func NewResolver(terrain Terrain, tuning Tuning) *Resolver {
	return &Resolver{terrain: terrain, tuning: tuning}
}

// Tuning возвращает константы движения
func (r *Resolver) Tuning() Tuning {
	return r.tuning
}

// Step выполняет один тик длительностью dt секунд
func (r *Resolver) Step(a *Avatar, in Input, dt float64) {
	t := r.tuning
	halfWidth := t.Width / 2

	// Гравитация
	a.Velocity[1] -= t.Gravity * dt

	// Горизонтальная скорость до столкновений
	desired := in.Direction.Normalized()
	hasInput := !desired.IsZero()
	uncapped := r.accelerate(vec.Vec2Float{X: a.Velocity.X(), Y: a.Velocity.Z()}, desired, a.grounded, dt)

	// Столкновения проверяем по осям отдельно для скольжения вдоль стен
	boxes := r.terrain.CollisionMask(a.Position)
	footprint := a.Footprint(t.Width)
	dx := uncapped.X * dt
	dz := uncapped.Y * dt
	resolved := uncapped
	pos := a.Position

	var hitX, hitZ bool
	if dx != 0 {
		if b, ok := footprint.CollideList(boxes, dx, 0); ok {
			hitX = true
			resolved.X = 0
			pos[0] = snapEdge(dx, b.Left(), b.Right(), halfWidth)
		}
	}
	if dz != 0 {
		if b, ok := footprint.CollideList(boxes, 0, dz); ok {
			hitZ = true
			resolved.Y = 0
			pos[2] = snapEdge(dz, b.Bottom(), b.Top(), halfWidth)
		}
	}

	// Угол: по отдельности свободно, вместе - столкновение
	if !hitX && !hitZ && dx != 0 && dz != 0 {
		if b, ok := footprint.CollideList(boxes, dx, dz); ok {
			hitX, hitZ = true, true
			resolved = vec.Vec2Float{}
			pos[0] = snapEdge(dx, b.Left(), b.Right(), halfWidth)
			pos[2] = snapEdge(dz, b.Bottom(), b.Top(), halfWidth)
		}
	}

	// Длина итоговой скорости ограничена проекцией желаемой скорости на ввод,
	// поэтому вдоль стены аватар скользит с правильной скоростью
	if hasInput {
		if speed := uncapped.Length(); speed > 0 {
			if along := uncapped.Dot(desired); along > 0 {
				limit := t.TopSpeed * along / speed
				if resolved.Length() > limit {
					resolved = resolved.Normalized().Mul(limit)
				}
			}
		}
	}

	if !hitX {
		pos[0] += resolved.X * dt
	}
	if !hitZ {
		pos[2] += resolved.Y * dt
	}
	pos[1] += a.Velocity.Y() * dt

	lo, hi := r.terrain.Bounds()
	for k := 0; k < 3; k++ {
		pos[k] = math.Max(lo[k], math.Min(hi[k], pos[k]))
	}

	a.Position = pos
	a.Velocity[0] = resolved.X
	a.Velocity[2] = resolved.Y

	r.land(a, in.Jump)
}

// accelerate разгоняет скорость v в направлении dir или тормозит её без ввода.
// Торможение останавливается на нуле и не меняет знак.
func (r *Resolver) accelerate(v, dir vec.Vec2Float, grounded bool, dt float64) vec.Vec2Float {
	accel := r.tuning.AirAcceleration
	if grounded {
		accel = r.tuning.GroundAcceleration
	}

	if !dir.IsZero() {
		return v.Add(dir.Mul(accel * dt))
	}

	speed := v.Length() - accel*dt
	if speed <= 0 {
		return vec.Vec2Float{}
	}
	return v.Normalized().Mul(speed)
}

// land ставит аватара на пол, если лучи нашли опору при падении
func (r *Resolver) land(a *Avatar, jump bool) {
	a.grounded = false
	if a.Velocity.Y() >= 0 {
		return
	}

	floor, ok := r.probeFloor(a.Position)
	if !ok {
		return
	}

	a.Position[1] = floor + r.tuning.Height
	a.grounded = true

	if jump && r.terrain.IsEmpty(r.ceilingCell(a)) {
		a.Velocity[1] = r.tuning.JumpImpulse
	} else {
		a.Velocity[1] = 0
	}
}

// ceilingCell возвращает клетку сразу над головой стоящего аватара
func (r *Resolver) ceilingCell(a *Avatar) vec.Vec3 {
	feet := r.terrain.PositionToIndices(a.Position.Sub(mgl64.Vec3{0, r.tuning.Height, 0}))
	feet.Y += int(math.Ceil(r.tuning.Height / r.terrain.BlockSize()))
	return feet
}

// snapEdge возвращает координату центра, при которой след касается ближней грани коробки
func snapEdge(d, near, far, halfWidth float64) float64 {
	if d > 0 {
		return near - halfWidth
	}
	return far + halfWidth
}
