package physics

import (
	"github.com/annel0/voxel-engine/internal/vec"
)

// Box представляет неизменяемый прямоугольный коллайдер в горизонтальной плоскости.
// Center.X - мировая ось x, Center.Y - мировая ось z.
type Box struct {
	Center vec.Vec2Float
	Width  float64
	Height float64
}

// NewBox создаёт коллайдер с центром center и указанными размерами
func NewBox(center vec.Vec2Float, width, height float64) Box {
	return Box{Center: center, Width: width, Height: height}
}

func (b Box) Left() float64   { return b.Center.X - b.Width/2 }
func (b Box) Right() float64  { return b.Center.X + b.Width/2 }
func (b Box) Bottom() float64 { return b.Center.Y - b.Height/2 }
func (b Box) Top() float64    { return b.Center.Y + b.Height/2 }

// Collide проверяет строгое пересечение коробки, смещённой на (dx, dy), с other.
// Касание гранями столкновением не считается.
func (b Box) Collide(other Box, dx, dy float64) bool {
	return b.Right()+dx > other.Left() &&
		b.Left()+dx < other.Right() &&
		b.Top()+dy > other.Bottom() &&
		b.Bottom()+dy < other.Top()
}

// CollideList возвращает первую в порядке others коробку, с которой есть пересечение
func (b Box) CollideList(others []Box, dx, dy float64) (Box, bool) {
	for _, other := range others {
		if b.Collide(other, dx, dy) {
			return other, true
		}
	}
	return Box{}, false
}
