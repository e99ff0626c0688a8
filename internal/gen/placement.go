package gen

import (
	"math"
	"math/rand"
	"sort"

	"github.com/annel0/voxel-city/internal/grid"
	"github.com/annel0/voxel-city/internal/vec"
)

// MountPoints выбирает точки крепления опор: клетки на заданном
// удалении от края, прореженные равномерно по ordering. Прореживание
// по ordering, а не по позиции в сетке, дает равномерный шаг вдоль
// периметра даже на нерегулярных формах.
func (s *LandmassShape) MountPoints(edgeDistance, spacing int) []vec.Vec2 {
	type candidate struct {
		pos      vec.Vec2
		ordering int
	}
	var points []candidate
	s.grid.Each(func(pos vec.Vec2, cell Cell) {
		if cell.EdgeDistance == edgeDistance {
			points = append(points, candidate{pos: pos, ordering: cell.Ordering})
		}
	})

	count := len(points) / spacing
	if count == 0 {
		return nil
	}
	adjusted := float64(len(points)) / float64(count)

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].ordering < points[j].ordering
	})

	var selected []vec.Vec2
	for i, p := range points {
		if int(math.Mod(float64(i), adjusted)) == 0 {
			selected = append(selected, p.pos)
		}
	}
	return selected
}

// BuildingBounds ограничивает случайные размеры зданий при упаковке
// (в клетках огрубленной сетки)
type BuildingBounds struct {
	MinWidth, MinDepth int
	MaxWidth, MaxDepth int
}

// BuildingShape — прямоугольник здания в координатах формы ландшафта
type BuildingShape struct {
	Min, Max vec.Vec2
}

// Состояние клетки огрубленной сетки занятости.
// Отсутствие клетки в сетке — "неизвестно" (вне опоры ландшафта).
type occupancy struct {
	occupied bool
	id       int
}

// GenerateBuildingShapes жадно упаковывает здания на форму ландшафта.
//
// Работает на огрубленной вдвое сетке занятости, засеянной свободными
// клетками внутри опоры формы. На каждой итерации: для каждой свободной
// клетки строится случайный прямоугольник-кандидат; кандидат валиден,
// когда весь его интерьер свободен, а одноклеточный ореол не выходит за
// границу сетки; очки — количество занятых клеток ореола (прижимает
// новые здания к существующим); размещается лучший валидный кандидат.
// Повторяется, пока валидные кандидаты не закончатся.
func (s *LandmassShape) GenerateBuildingShapes(rng *rand.Rand, bounds BuildingBounds) []BuildingShape {
	occ := grid.NewSparseGrid[occupancy]()
	s.grid.Each(func(pos vec.Vec2, _ Cell) {
		if pos.X&1 != 0 || pos.Y&1 != 0 {
			return
		}
		coarse := vec.Vec2{X: pos.X >> 1, Y: pos.Y >> 1}
		if s.coarseCellSupported(pos) {
			occ.PutExpand(coarse, occupancy{})
		}
	})

	var shapes []BuildingShape
	nextID := 1
	for {
		best, ok := bestCandidate(occ, rng, bounds)
		if !ok {
			break
		}

		for y := best.min.Y; y <= best.max.Y; y++ {
			for x := best.min.X; x <= best.max.X; x++ {
				occ.Put(vec.Vec2{X: x, Y: y}, occupancy{occupied: true, id: nextID})
			}
		}
		nextID++

		shapes = append(shapes, BuildingShape{
			Min: vec.Vec2{X: best.min.X * 2, Y: best.min.Y * 2},
			Max: vec.Vec2{X: best.max.X*2 + 1, Y: best.max.Y*2 + 1},
		})
	}
	return shapes
}

// coarseCellSupported проверяет, что все четыре клетки формы под
// огрубленной клеткой присутствуют
func (s *LandmassShape) coarseCellSupported(base vec.Vec2) bool {
	return s.grid.Contains(base) &&
		s.grid.Contains(vec.Vec2{X: base.X + 1, Y: base.Y}) &&
		s.grid.Contains(vec.Vec2{X: base.X, Y: base.Y + 1}) &&
		s.grid.Contains(vec.Vec2{X: base.X + 1, Y: base.Y + 1})
}

type placementCandidate struct {
	min, max vec.Vec2
	score    int
}

// bestCandidate перебирает свободные клетки в порядке строк и выбирает
// валидный прямоугольник с наибольшими очками; при равенстве побеждает
// более ранний в порядке перебора
func bestCandidate(occ *grid.SparseGrid[occupancy], rng *rand.Rand, bounds BuildingBounds) (placementCandidate, bool) {
	var best placementCandidate
	found := false
	occ.Each(func(pos vec.Vec2, cell occupancy) {
		if cell.occupied {
			return
		}
		w := bounds.MinWidth + rng.Intn(bounds.MaxWidth-bounds.MinWidth+1)
		d := bounds.MinDepth + rng.Intn(bounds.MaxDepth-bounds.MinDepth+1)
		c := placementCandidate{
			min: pos,
			max: vec.Vec2{X: pos.X + w - 1, Y: pos.Y + d - 1},
		}
		score, valid := scoreCandidate(occ, c)
		if !valid {
			return
		}
		c.score = score
		if !found || c.score > best.score {
			best = c
			found = true
		}
	})
	return best, found
}

// scoreCandidate проверяет валидность кандидата и считает его очки.
// Интерьер обязан быть полностью свободен; неизвестная клетка в ореоле
// (контакт с границей сетки) отклоняет кандидата; занятая клетка ореола
// добавляет очко.
func scoreCandidate(occ *grid.SparseGrid[occupancy], c placementCandidate) (int, bool) {
	for y := c.min.Y; y <= c.max.Y; y++ {
		for x := c.min.X; x <= c.max.X; x++ {
			cell, ok := occ.Get(vec.Vec2{X: x, Y: y})
			if !ok || cell.occupied {
				return 0, false
			}
		}
	}

	score := 0
	for y := c.min.Y - 1; y <= c.max.Y+1; y++ {
		for x := c.min.X - 1; x <= c.max.X+1; x++ {
			if y >= c.min.Y && y <= c.max.Y && x >= c.min.X && x <= c.max.X {
				continue
			}
			cell, ok := occ.Get(vec.Vec2{X: x, Y: y})
			if !ok {
				return 0, false
			}
			if cell.occupied {
				score++
			}
		}
	}
	return score, true
}
