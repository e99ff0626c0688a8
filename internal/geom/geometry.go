package geom

import (
	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/vec"
)

// Geometry представляет пространственный предикат: булева принадлежность
// точки плюс заявленный ограничивающий бокс.
//
// Bounds возвращает false вторым значением, когда геометрия не ограничена
// (бесконечные полупространства вроде океана или бедрока).
type Geometry interface {
	Bounds() (Box3, bool)
	Contains(pos vec.Vec3) bool
}

// MaterialGeometry расширяет Geometry материалом в каждой точке.
// Для листовых геометрий Contains(p) == (MaterialAt(p) вернул true) —
// документированный инвариант; комбинаторы могут его ослаблять.
type MaterialGeometry interface {
	Geometry
	MaterialAt(pos vec.Vec3) (block.Material, bool)
}

// Receiver принимает сгенерированные воксели. Порядок вызовов —
// построчный обход бокса с внешней осью Z; получатель обязан быть
// нечувствителен к порядку.
type Receiver interface {
	ReceiveBlock(pos vec.Vec3, mat block.Material)
}

// Describer выдает свое содержимое получателю самостоятельно,
// не требуя сэмплирования каждой точки пространства
type Describer interface {
	Describe(r Receiver)
}

// Materializer оборачивает MaterialGeometry в Describer: перебирает
// точки внутри заявленного бокса и передает получателю все совпадения
type Materializer struct {
	Geometry MaterialGeometry
}

// Describe передает получателю каждую точку бокса с материалом
func (m Materializer) Describe(r Receiver) {
	bounds, ok := m.Geometry.Bounds()
	if !ok {
		return
	}
	for z := bounds.Min.Z; z <= bounds.Max.Z; z++ {
		for x := bounds.Min.X; x <= bounds.Max.X; x++ {
			for y := bounds.Min.Y; y <= bounds.Max.Y; y++ {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				if mat, ok := m.Geometry.MaterialAt(pos); ok {
					r.ReceiveBlock(pos, mat)
				}
			}
		}
	}
}

// tryUnion объединяет необязательные боксы: отсутствующий бокс нейтрален
func tryUnion(a Box3, aOK bool, b Box3, bOK bool) (Box3, bool) {
	switch {
	case aOK && bOK:
		return a.Union(b), true
	case aOK:
		return a, true
	case bOK:
		return b, true
	default:
		return Box3{}, false
	}
}
