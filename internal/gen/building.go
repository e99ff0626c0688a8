package gen

import (
	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/geom"
	"github.com/annel0/voxel-city/internal/vec"
)

// Building — каркас здания: четыре стены-решетки по периметру
// прямоугольника. Оконные проемы вырезаются на пересечениях четных
// строк и четных уровней, углы всегда сплошные.
type Building struct {
	edgeMin vec.Vec2
	edgeMax vec.Vec2
	level   int
	height  int
}

func NewBuilding(edge1, edge2 vec.Vec2, level, height int) *Building {
	return &Building{
		edgeMin: edge1.Min(edge2),
		edgeMax: edge1.Max(edge2),
		level:   level,
		height:  height,
	}
}

// Top — уровень верхней кромки стен
func (b *Building) Top() int {
	return b.level + b.height
}

func (b *Building) Bounds() (geom.Box3, bool) {
	footprint := geom.Box2{Min: b.edgeMin, Max: b.edgeMax}
	return footprint.Extend(b.level, b.Top()), true
}

func (b *Building) Contains(pos vec.Vec3) bool {
	if pos.Z < b.level || pos.Z > b.Top() {
		return false
	}
	matchesX := pos.X == b.edgeMin.X || pos.X == b.edgeMax.X
	matchesY := pos.Y == b.edgeMin.Y || pos.Y == b.edgeMax.Y
	withinX := pos.X >= b.edgeMin.X && pos.X <= b.edgeMax.X
	withinY := pos.Y >= b.edgeMin.Y && pos.Y <= b.edgeMax.Y
	z := pos.Z - b.level
	if matchesX && matchesY {
		return true
	}
	if matchesX && withinY && !(remEuclid(pos.Y, 2) == 0 && remEuclid(z, 2) == 0) {
		return true
	}
	if matchesY && withinX && !(remEuclid(pos.X, 2) == 0 && remEuclid(z, 2) == 0) {
		return true
	}
	return false
}

func (b *Building) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	if b.Contains(pos) {
		return block.GrayConcrete, true
	}
	return block.Material{}, false
}
