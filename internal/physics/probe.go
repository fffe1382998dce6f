package physics

import (
	"math"

	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/go-gl/mathgl/mgl64"
)

// probeFloor пускает четыре вертикальных луча вниз из углов следа аватара
// и возвращает высоту ближайшей верхней грани блока под ногами.
// Лучи смещены внутрь следа на ProbeEpsilon.
func (r *Resolver) probeFloor(p mgl64.Vec3) (float64, bool) {
	half := r.tuning.Width/2 - r.tuning.ProbeEpsilon
	candidates := r.terrain.Nearby(p, r.tuning.ProbeRadius)
	if len(candidates) == 0 {
		return 0, false
	}

	corners := [4][2]float64{
		{p.X() - half, p.Z() - half},
		{p.X() + half, p.Z() - half},
		{p.X() - half, p.Z() + half},
		{p.X() + half, p.Z() + half},
	}

	best, found := 0.0, false
	for _, c := range corners {
		y, ok := r.castDown(c[0], c[1], p.Y(), candidates)
		if !ok {
			continue
		}
		if !found || y > best {
			best, found = y, true
		}
	}
	return best, found
}

// castDown находит верхнюю грань, в которую упирается луч из (x, top, z),
// на расстоянии не больше высоты аватара. Попадания на высоте, не кратной
// ребру блока, отбрасываются.
func (r *Resolver) castDown(x, z, top float64, candidates []block.Proxy) (float64, bool) {
	size := r.terrain.BlockSize()
	half := size / 2

	best, found := 0.0, false
	for _, proxy := range candidates {
		c := proxy.Position()
		if math.Abs(x-c.X()) > half || math.Abs(z-c.Z()) > half {
			continue
		}

		face := c.Y() + half
		if face > top || top-face > r.tuning.Height {
			continue
		}
		if math.Mod(face, size) != 0 {
			continue
		}
		if !found || face > best {
			best, found = face, true
		}
	}
	return best, found
}
