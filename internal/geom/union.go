package geom

import (
	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/vec"
)

// Union объединяет геометрии попарным ИЛИ. Порядок детей — контракт:
// MaterialAt возвращает первый непустой материал в порядке объявления.
type Union struct {
	children []MaterialGeometry
}

// NewUnion создает объединение геометрий
func NewUnion(children ...MaterialGeometry) *Union {
	return &Union{children: children}
}

// Children возвращает дочерние геометрии в порядке объявления
func (u *Union) Children() []MaterialGeometry {
	return u.children
}

// Bounds возвращает объединение боксов детей;
// отсутствующий детский бокс нейтрален, не вето
func (u *Union) Bounds() (Box3, bool) {
	var acc Box3
	accOK := false
	for _, g := range u.children {
		b, ok := g.Bounds()
		acc, accOK = tryUnion(acc, accOK, b, ok)
	}
	return acc, accOK
}

// Contains возвращает true, если точка принадлежит хотя бы одному ребенку
func (u *Union) Contains(pos vec.Vec3) bool {
	for _, g := range u.children {
		if g.Contains(pos) {
			return true
		}
	}
	return false
}

// MaterialAt возвращает первый непустой материал в порядке объявления детей
func (u *Union) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	for _, g := range u.children {
		if mat, ok := g.MaterialAt(pos); ok {
			return mat, true
		}
	}
	return block.Material{}, false
}

// Describe описывает детей в обратном порядке объявления: первый
// ребенок рисуется последним, поэтому при перезаписывающем получателе
// на пересечениях побеждает он же, что согласуется с MaterialAt.
func (u *Union) Describe(r Receiver) {
	for i := len(u.children) - 1; i >= 0; i-- {
		if d, ok := u.children[i].(Describer); ok {
			d.Describe(r)
		} else {
			Materializer{Geometry: u.children[i]}.Describe(r)
		}
	}
}
