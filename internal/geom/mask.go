package geom

import (
	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/vec"
)

// Mask ограничивает геометрию булевой геометрией-маской.
// Contains сообщает влияние маски, материализация следует внутренней
// геометрии.
type Mask struct {
	Geometry MaterialGeometry
	Filter   Geometry
}

// NewMask создает маскированную геометрию
func NewMask(geometry MaterialGeometry, filter Geometry) *Mask {
	return &Mask{Geometry: geometry, Filter: filter}
}

// Bounds возвращает пересечение боксов маски и геометрии;
// false если у любой из них бокса нет или пересечение пусто
func (m *Mask) Bounds() (Box3, bool) {
	bm, ok := m.Filter.Bounds()
	if !ok {
		return Box3{}, false
	}
	bg, ok := m.Geometry.Bounds()
	if !ok {
		return Box3{}, false
	}
	return bm.Intersect(bg)
}

// Contains возвращает true, если точка принадлежит и маске, и геометрии
func (m *Mask) Contains(pos vec.Vec3) bool {
	return m.Filter.Contains(pos) && m.Geometry.Contains(pos)
}

// MaterialAt возвращает материал внутренней геометрии внутри маски
func (m *Mask) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	if !m.Filter.Contains(pos) {
		return block.Material{}, false
	}
	return m.Geometry.MaterialAt(pos)
}

// Describe фильтрует описание внутренней геометрии через маску
func (m *Mask) Describe(r Receiver) {
	masked := &maskedReceiver{inner: r, accept: m.Filter.Contains}
	if d, ok := m.Geometry.(Describer); ok {
		d.Describe(masked)
	} else {
		Materializer{Geometry: m.Geometry}.Describe(masked)
	}
}

// MaskBox2 — специализация маски горизонтальным прямоугольником.
// Существует только ради производительности: проверка принадлежности
// вырождается в тест по боксу, а заявленный бокс обрезается точнее
// общего случая. Результаты membership обязаны совпадать с Mask.
type MaskBox2 struct {
	Geometry MaterialGeometry
	Box      Box2
}

// NewMaskBox2 создает геометрию, маскированную прямоугольником
func NewMaskBox2(geometry MaterialGeometry, box Box2) *MaskBox2 {
	return &MaskBox2{Geometry: geometry, Box: box}
}

// Bounds возвращает бокс геометрии, обрезанный прямоугольником маски
func (m *MaskBox2) Bounds() (Box3, bool) {
	bg, ok := m.Geometry.Bounds()
	if !ok {
		return Box3{}, false
	}
	return bg.Crop(m.Box)
}

// Contains сводит проверку маски к тесту принадлежности боксу
func (m *MaskBox2) Contains(pos vec.Vec3) bool {
	return m.Box.Contains(pos.ToVec2()) && m.Geometry.Contains(pos)
}

// MaterialAt возвращает материал внутренней геометрии внутри прямоугольника
func (m *MaskBox2) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	if !m.Box.Contains(pos.ToVec2()) {
		return block.Material{}, false
	}
	return m.Geometry.MaterialAt(pos)
}

// Describe фильтрует описание внутренней геометрии прямоугольником
func (m *MaskBox2) Describe(r Receiver) {
	masked := &maskedReceiver{inner: r, accept: func(pos vec.Vec3) bool {
		return m.Box.Contains(pos.ToVec2())
	}}
	if d, ok := m.Geometry.(Describer); ok {
		d.Describe(masked)
	} else {
		Materializer{Geometry: m.Geometry}.Describe(masked)
	}
}

// MaskBox3 — специализация маски 3D боксом
type MaskBox3 struct {
	Geometry MaterialGeometry
	Box      Box3
}

// NewMaskBox3 создает геометрию, маскированную 3D боксом
func NewMaskBox3(geometry MaterialGeometry, box Box3) *MaskBox3 {
	return &MaskBox3{Geometry: geometry, Box: box}
}

// Bounds возвращает пересечение бокса геометрии и бокса маски
func (m *MaskBox3) Bounds() (Box3, bool) {
	bg, ok := m.Geometry.Bounds()
	if !ok {
		return Box3{}, false
	}
	return bg.Intersect(m.Box)
}

// Contains сводит проверку маски к тесту принадлежности боксу
func (m *MaskBox3) Contains(pos vec.Vec3) bool {
	return m.Box.Contains(pos) && m.Geometry.Contains(pos)
}

// MaterialAt возвращает материал внутренней геометрии внутри бокса
func (m *MaskBox3) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	if !m.Box.Contains(pos) {
		return block.Material{}, false
	}
	return m.Geometry.MaterialAt(pos)
}

// Describe фильтрует описание внутренней геометрии боксом
func (m *MaskBox3) Describe(r Receiver) {
	masked := &maskedReceiver{inner: r, accept: m.Box.Contains}
	if d, ok := m.Geometry.(Describer); ok {
		d.Describe(masked)
	} else {
		Materializer{Geometry: m.Geometry}.Describe(masked)
	}
}

// maskedReceiver пропускает к получателю только точки, принятые маской
type maskedReceiver struct {
	inner  Receiver
	accept func(pos vec.Vec3) bool
}

func (m *maskedReceiver) ReceiveBlock(pos vec.Vec3, mat block.Material) {
	if m.accept(pos) {
		m.inner.ReceiveBlock(pos, mat)
	}
}
