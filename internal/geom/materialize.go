package geom

import (
	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/vec"
)

// Materialize превращает булеву геометрию в материальную:
// постоянный материал везде, где геометрия содержит точку
type Materialize struct {
	Material block.Material
	Geometry Geometry
}

// NewMaterialize создает материальную геометрию с постоянным материалом
func NewMaterialize(mat block.Material, geometry Geometry) *Materialize {
	return &Materialize{Material: mat, Geometry: geometry}
}

// Bounds возвращает бокс внутренней геометрии
func (m *Materialize) Bounds() (Box3, bool) {
	return m.Geometry.Bounds()
}

// Contains возвращает принадлежность точки внутренней геометрии
func (m *Materialize) Contains(pos vec.Vec3) bool {
	return m.Geometry.Contains(pos)
}

// MaterialAt возвращает постоянный материал внутри геометрии
func (m *Materialize) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	if !m.Geometry.Contains(pos) {
		return block.Material{}, false
	}
	return m.Material, true
}
