package gen

import (
	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/geom"
	"github.com/annel0/voxel-city/internal/vec"
)

// LandmassThickness — полная высота плиты ландшафта в блоках
const LandmassThickness = 5

// Landmass — плита ландшафта: сплошные верхняя и нижняя грани,
// внутренность заполнена решеткой в шахматном порядке и сплошной
// стенкой по контуру.
type Landmass struct {
	shape *LandmassShape
	level int
}

// NewLandmass создает плиту с верхней гранью на уровне level.
// Возвращает ошибку, если поле не дает ни одной клетки суши.
func NewLandmass(seed int64, level int, size float64) (*Landmass, error) {
	shape, err := NewLandmassShape(seed, size)
	if err != nil {
		return nil, err
	}
	return &Landmass{shape: shape, level: level}, nil
}

// Shape возвращает форму суши, на которой стоит плита
func (l *Landmass) Shape() *LandmassShape {
	return l.shape
}

// MaxZ — уровень верхней грани плиты
func (l *Landmass) MaxZ() int {
	return l.level
}

// MinZ — уровень нижней грани плиты
func (l *Landmass) MinZ() int {
	return l.level - LandmassThickness + 1
}

func (l *Landmass) Bounds() (geom.Box3, bool) {
	footprint := geom.Box2{Min: l.shape.Min(), Max: l.shape.Max()}
	return footprint.Extend(l.MinZ(), l.MaxZ()), true
}

func (l *Landmass) Contains(pos vec.Vec3) bool {
	if !l.shape.Contains(pos.ToVec2()) {
		return false
	}
	min, max := l.MinZ(), l.MaxZ()
	if pos.Z == min || pos.Z == max {
		return true
	}
	// Внутренность плиты: решетка плюс стенка по краю
	return pos.Z > min && pos.Z < max &&
		(sampleCheckered(2, pos.ToVec2()) || l.shape.IsEdgeAt(pos.ToVec2()))
}

func (l *Landmass) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	if l.Contains(pos) {
		return block.GrayConcrete, true
	}
	return block.Material{}, false
}

// sampleCheckered отбирает узлы диагональной решетки с шагом size+1:
// узел в начале каждой ячейки 2(size+1) и второй, смещенный на
// пол-ячейки по обеим осям.
func sampleCheckered(size int, pos vec.Vec2) bool {
	step := size + 1
	xp := remEuclid(pos.X, step*2)
	yp := remEuclid(pos.Y, step*2)
	return (xp == 0 && yp == 0) || (xp == step && yp == step)
}

// remEuclid — остаток от деления, всегда неотрицательный
func remEuclid(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
