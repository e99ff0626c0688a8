package geom

import (
	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/vec"
)

// Intersect пересекает материальную геометрию с булевой: точка принадлежит
// результату, когда принадлежит обеим; материал дает только первая.
type Intersect struct {
	Geometry MaterialGeometry
	Filter   Geometry
}

// NewIntersect создает пересечение геометрий
func NewIntersect(geometry MaterialGeometry, filter Geometry) *Intersect {
	return &Intersect{Geometry: geometry, Filter: filter}
}

// Bounds возвращает ОБЪЕДИНЕНИЕ боксов, а не точное пересечение.
// Это намеренное огрубление: родителю не нужно знать свою точную
// обрезанную форму, а заявленный бокс обязан лишь покрывать результат.
func (i *Intersect) Bounds() (Box3, bool) {
	b1, ok1 := i.Geometry.Bounds()
	b2, ok2 := i.Filter.Bounds()
	return tryUnion(b1, ok1, b2, ok2)
}

// Contains возвращает true, если точка принадлежит обеим геометриям
func (i *Intersect) Contains(pos vec.Vec3) bool {
	return i.Geometry.Contains(pos) && i.Filter.Contains(pos)
}

// MaterialAt возвращает материал первой геометрии, только если вторая
// тоже содержит точку; вторая своего материала не дает
func (i *Intersect) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	mat, ok := i.Geometry.MaterialAt(pos)
	if !ok || !i.Filter.Contains(pos) {
		return block.Material{}, false
	}
	return mat, true
}
