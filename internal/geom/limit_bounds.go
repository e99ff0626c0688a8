package geom

import (
	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/vec"
)

// LimitBounds обрезает только ЗАЯВЛЕННЫЙ бокс геометрии горизонтальным
// прямоугольником; точечные запросы прямоугольником не перепроверяются
// и уходят во внутреннюю геометрию как есть.
//
// Асимметрия намеренная: обход, управляемый Bounds, получает корректную
// обрезку, а прямой запрос вне прямоугольника отвечает за внутреннюю
// геометрию. Так бесконечный генератор (океан) ограничивается областью,
// которую вообще стоит генерировать.
type LimitBounds struct {
	Geometry MaterialGeometry
	Min, Max vec.Vec2
}

// NewLimitBounds создает геометрию с обрезанным заявленным боксом
func NewLimitBounds(geometry MaterialGeometry, min, max vec.Vec2) *LimitBounds {
	return &LimitBounds{Geometry: geometry, Min: min, Max: max}
}

// Bounds возвращает бокс внутренней геометрии, обжатый по горизонтали
func (l *LimitBounds) Bounds() (Box3, bool) {
	b, ok := l.Geometry.Bounds()
	if !ok {
		// У неограниченной геометрии бокс задает сам прямоугольник —
		// вертикаль остается неограниченной, заявлять нечего
		return Box3{}, false
	}
	b.Min = b.Min.Max(l.Min.Extend(b.Min.Z))
	b.Max = b.Max.Min(l.Max.Extend(b.Max.Z))
	return b, true
}

// Contains не перепроверяет прямоугольник
func (l *LimitBounds) Contains(pos vec.Vec3) bool {
	return l.Geometry.Contains(pos)
}

// MaterialAt не перепроверяет прямоугольник
func (l *LimitBounds) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	return l.Geometry.MaterialAt(pos)
}
