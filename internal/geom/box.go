package geom

import "github.com/annel0/voxel-city/internal/vec"

// Box2 представляет осевой 2D ограничивающий прямоугольник.
// Обе границы включительны; после конструктора Min <= Max покомпонентно.
// Значение неизменяемо: union/intersect возвращают новые боксы.
type Box2 struct {
	Min, Max vec.Vec2
}

// Box3 представляет осевой 3D ограничивающий параллелепипед
type Box3 struct {
	Min, Max vec.Vec3
}

// NewBox2 создает Box2 из двух произвольных углов
func NewBox2(a, b vec.Vec2) Box2 {
	return Box2{Min: a.Min(b), Max: a.Max(b)}
}

// NewBox3 создает Box3 из двух произвольных углов
func NewBox3(a, b vec.Vec3) Box3 {
	return Box3{Min: a.Min(b), Max: a.Max(b)}
}

// Union возвращает наименьший бокс, содержащий оба
func (b Box2) Union(other Box2) Box2 {
	return Box2{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Intersect возвращает пересечение боксов; false если они не пересекаются
func (b Box2) Intersect(other Box2) (Box2, bool) {
	if !b.Overlaps(other) {
		return Box2{}, false
	}
	return Box2{Min: b.Min.Max(other.Min), Max: b.Max.Min(other.Max)}, true
}

// Contains проверяет принадлежность точки боксу (границы включительно)
func (b Box2) Contains(p vec.Vec2) bool {
	return inRange(p.X, b.Min.X, b.Max.X) && inRange(p.Y, b.Min.Y, b.Max.Y)
}

// Overlaps проверяет пересечение с другим боксом.
// Проверка по оси симметричная: интервалы пересекаются, если начало одного
// лежит внутри другого ИЛИ наоборот — ни один из интервалов не предполагается
// меньшим.
func (b Box2) Overlaps(other Box2) bool {
	xOverlap := inRange(other.Min.X, b.Min.X, b.Max.X) || inRange(b.Min.X, other.Min.X, other.Max.X)
	yOverlap := inRange(other.Min.Y, b.Min.Y, b.Max.Y) || inRange(b.Min.Y, other.Min.Y, other.Max.Y)
	return xOverlap && yOverlap
}

// Extend поднимает Box2 в 3D с заданным вертикальным диапазоном
func (b Box2) Extend(zMin, zMax int) Box3 {
	return Box3{
		Min: b.Min.Extend(min(zMin, zMax)),
		Max: b.Max.Extend(max(zMin, zMax)),
	}
}

// Union возвращает наименьший бокс, содержащий оба
func (b Box3) Union(other Box3) Box3 {
	return Box3{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Intersect возвращает пересечение боксов; false если они не пересекаются
func (b Box3) Intersect(other Box3) (Box3, bool) {
	if !b.Overlaps(other) {
		return Box3{}, false
	}
	return Box3{Min: b.Min.Max(other.Min), Max: b.Max.Min(other.Max)}, true
}

// Contains проверяет принадлежность точки боксу (границы включительно)
func (b Box3) Contains(p vec.Vec3) bool {
	return inRange(p.X, b.Min.X, b.Max.X) &&
		inRange(p.Y, b.Min.Y, b.Max.Y) &&
		inRange(p.Z, b.Min.Z, b.Max.Z)
}

// Overlaps проверяет пересечение с другим боксом
func (b Box3) Overlaps(other Box3) bool {
	xOverlap := inRange(other.Min.X, b.Min.X, b.Max.X) || inRange(b.Min.X, other.Min.X, other.Max.X)
	yOverlap := inRange(other.Min.Y, b.Min.Y, b.Max.Y) || inRange(b.Min.Y, other.Min.Y, other.Max.Y)
	zOverlap := inRange(other.Min.Z, b.Min.Z, b.Max.Z) || inRange(b.Min.Z, other.Min.Z, other.Max.Z)
	return xOverlap && yOverlap && zOverlap
}

// Truncate отбрасывает вертикальную ось
func (b Box3) Truncate() Box2 {
	return Box2{Min: b.Min.ToVec2(), Max: b.Max.ToVec2()}
}

// Crop обрезает горизонтальную проекцию бокса прямоугольником,
// сохраняя вертикальный диапазон; false если пересечение пусто
func (b Box3) Crop(footprint Box2) (Box3, bool) {
	cropped, ok := b.Truncate().Intersect(footprint)
	if !ok {
		return Box3{}, false
	}
	return cropped.Extend(b.Min.Z, b.Max.Z), true
}

// OverlapsChunk проверяет пересечение горизонтальной проекции бокса
// с чанком 16x16 по координатам чанка
func (b Box3) OverlapsChunk(chunk vec.Vec2) bool {
	chunkBox := NewBox2(
		vec.Vec2{X: chunk.X * 16, Y: chunk.Y * 16},
		vec.Vec2{X: chunk.X*16 + 15, Y: chunk.Y*16 + 15},
	)
	return b.Truncate().Overlaps(chunkBox)
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
