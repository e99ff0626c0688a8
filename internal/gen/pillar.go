package gen

import (
	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/geom"
	"github.com/annel0/voxel-city/internal/vec"
)

// Pillar — вертикальная круглая опора между minZ и maxZ включительно
type Pillar struct {
	origin vec.Vec2
	radius int
	minZ   int
	maxZ   int
}

func NewPillar(origin vec.Vec2, radius, minZ, maxZ int) *Pillar {
	return &Pillar{origin: origin, radius: radius, minZ: minZ, maxZ: maxZ}
}

func (p *Pillar) Bounds() (geom.Box3, bool) {
	o := vec.Vec2{X: p.radius + 1, Y: p.radius + 1}
	footprint := geom.NewBox2(p.origin.Sub(o), p.origin.Add(o))
	return footprint.Extend(p.minZ, p.maxZ), true
}

func (p *Pillar) Contains(pos vec.Vec3) bool {
	if pos.Z < p.minZ || pos.Z > p.maxZ {
		return false
	}
	// Полблока запаса сглаживает ступеньки на диагоналях
	radius := float64(p.radius) + 0.5
	origin := vec.Vec2Float{X: float64(p.origin.X), Y: float64(p.origin.Y)}
	point := vec.Vec2Float{X: float64(pos.X), Y: float64(pos.Y)}
	return origin.DistanceTo(point) <= radius
}

func (p *Pillar) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	if p.Contains(pos) {
		return block.GrayConcrete, true
	}
	return block.Material{}, false
}
