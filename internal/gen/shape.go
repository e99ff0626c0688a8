package gen

import (
	"errors"
	"fmt"
	"math"

	"github.com/annel0/voxel-city/internal/grid"
	"github.com/annel0/voxel-city/internal/vec"
)

// Cell — итоговая аннотация клетки формы ландшафта
type Cell struct {
	// Ordering — значение, связанное с положением клетки вдоль края формы.
	// Соседние клетки ландшафта имеют близкие значения.
	Ordering int
	// EdgeDistance — минимальное евклидово расстояние до внешнего края
	// (с округлением вниз); у клеток края равно 0
	EdgeDistance int
	// Edge — лежит ли клетка на внешнем крае формы
	Edge bool
}

// LandmassShape — форма ландшафта, открытая многопроходным flood-fill
// обходом непрерывного шумового поля. Создается один раз и далее
// неизменяема; потребляется алгоритмами размещения и точечными запросами.
type LandmassShape struct {
	grid *grid.SparseGrid[Cell]
}

// ErrEmptyShape возвращается, когда поле отрицательно уже в начале
// координат и связная область не обнаружена
var ErrEmptyShape = errors.New("gen: пустая форма ландшафта, поле отрицательно в начале координат")

// NewLandmassShape генерирует форму ландшафта по сиду и размеру.
// size < 1 — нарушение предусловия, отклоняется до запуска алгоритма.
func NewLandmassShape(seed int64, size float64) (*LandmassShape, error) {
	if size < 1.0 {
		return nil, fmt.Errorf("gen: размер ландшафта %v меньше 1", size)
	}
	return DiscoverShape(newLandmassField(seed, size))
}

// Sample возвращает клетку формы по координатам
func (s *LandmassShape) Sample(pos vec.Vec2) (Cell, bool) {
	return s.grid.Get(pos)
}

// Contains проверяет принадлежность клетки форме
func (s *LandmassShape) Contains(pos vec.Vec2) bool {
	return s.grid.Contains(pos)
}

// IsEdgeAt проверяет, лежит ли клетка на внешнем крае формы
func (s *LandmassShape) IsEdgeAt(pos vec.Vec2) bool {
	cell, ok := s.grid.Get(pos)
	return ok && cell.Edge
}

// Min возвращает минимальный угол окна формы
func (s *LandmassShape) Min() vec.Vec2 {
	return s.grid.Min()
}

// Max возвращает максимальный угол окна формы
func (s *LandmassShape) Max() vec.Vec2 {
	return s.grid.Max()
}

// Each перебирает клетки формы в порядке строк
func (s *LandmassShape) Each(fn func(pos vec.Vec2, cell Cell)) {
	s.grid.Each(fn)
}

// Len возвращает количество клеток формы
func (s *LandmassShape) Len() int {
	return s.grid.Len()
}

const (
	// Степень обратного расстояния при взвешивании края: резкое
	// затухание, ближние клетки края доминируют
	distancePower = 4

	// Шкала ordering: [0, 2π) отображается в [0, maxOrdering]
	maxOrdering = float64(math.MaxUint32)
)

// Состояния клетки во время обнаружения формы
type scanKind uint8

const (
	scanPresent scanKind = iota
	scanBoundary
	scanBoundaryFinal
)

type scanCell struct {
	kind  scanKind
	index int // порядковый номер обхода внешнего края (только scanBoundaryFinal)
}

// cardinal4 — 4-связные соседи клетки
func cardinal4(p vec.Vec2) [4]vec.Vec2 {
	return [4]vec.Vec2{
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
	}
}

// cardinal8 — 8-связные соседи клетки
func cardinal8(p vec.Vec2) [8]vec.Vec2 {
	return [8]vec.Vec2{
		{X: p.X + 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y + 1},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y - 1},
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y - 1},
	}
}

// DiscoverShape выполняет обнаружение формы над произвольным полем.
//
// Три фазы:
//  1. Внутренний flood fill из начала координат: положительная клетка
//     помечается Present и раскрывает 4-соседей, отрицательная — Boundary
//     и обход через нее не идет. Рост идет только через Present, поэтому
//     найденная область — в точности связная компонента положительных
//     клеток, достижимая из начала координат.
//  2. Обход внешнего края: из Boundary-клетки, максимально удаленной от
//     начала координат (норма Чебышёва), BFS по 8-связности только по
//     Boundary-клеткам; каждая посещенная получает BoundaryFinal и номер
//     в порядке посещения. Внутренних дыр обход не достигает.
//  3. Заливка дыр: оставшиеся Boundary — края внутренних дыр; flood fill
//     из них по 4-связности через неизвестные клетки, все достигнутое
//     становится Present.
func DiscoverShape(field Field) (*LandmassShape, error) {
	scan := grid.NewSparseGrid[scanCell]()

	// Фаза 1: обнаружение базовой формы поля
	queue := []vec.Vec2{{}}
	queued := map[vec.Vec2]struct{}{{}: {}}
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		if field.Sample(float64(pos.X), float64(pos.Y)) > 0 {
			scan.PutExpand(pos, scanCell{kind: scanPresent})
			for _, c := range cardinal4(pos) {
				if _, waiting := queued[c]; !waiting && !scan.Contains(c) {
					queue = append(queue, c)
					queued[c] = struct{}{}
				}
			}
		} else {
			scan.PutExpand(pos, scanCell{kind: scanBoundary})
		}
	}

	if origin, ok := scan.Get(vec.Vec2{}); !ok || origin.kind != scanPresent {
		return nil, ErrEmptyShape
	}

	// Все края формы и самая удаленная клетка края.
	// Раз форма открыта flood fill-ом, отсоединенных пятен снаружи нет,
	// и самая удаленная точка обязана лежать на внешнем крае.
	var allEdges []vec.Vec2
	var outerRoot vec.Vec2
	outerFound := false
	outerDist := -1
	scan.Each(func(pos vec.Vec2, c scanCell) {
		if c.kind != scanBoundary {
			return
		}
		allEdges = append(allEdges, pos)
		if d := pos.Abs().MaxComponent(); d >= outerDist {
			outerDist = d
			outerRoot = pos
			outerFound = true
		}
	})
	if !outerFound {
		// Поле положительно в начале координат, значит минимум четыре
		// граничных клетки существуют
		panic("gen: форма без граничных клеток")
	}

	// Фаза 2: обход внешнего края с нумерацией.
	// На первом шаге раскрывается ровно один сосед: обход выбирает одно
	// направление вдоль кольца вместо двух встречных фронтов.
	index := 0
	queue = queue[:0]
	queue = append(queue, outerRoot)
	queued = map[vec.Vec2]struct{}{outerRoot: {}}
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		scan.Put(pos, scanCell{kind: scanBoundaryFinal, index: index})
		for _, c := range cardinal8(pos) {
			if cell, ok := scan.Get(c); ok && cell.kind == scanBoundary {
				if _, waiting := queued[c]; !waiting {
					queue = append(queue, c)
					queued[c] = struct{}{}
					if index == 0 {
						break
					}
				}
			}
		}
		index++
	}

	// Фаза 3: оставшиеся Boundary — края внутренних дыр.
	// Заливаем пустоты, используя их как источник.
	queue = queue[:0]
	queued = map[vec.Vec2]struct{}{}
	var outerEdges []vec.Vec2
	for _, pos := range allEdges {
		if cell, ok := scan.Get(pos); ok && cell.kind == scanBoundary {
			queue = append(queue, pos)
			queued[pos] = struct{}{}
		} else {
			outerEdges = append(outerEdges, pos)
		}
	}
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		if !scan.Put(pos, scanCell{kind: scanPresent}) {
			panic("gen: заливка дыры вышла за окно формы")
		}
		for _, c := range cardinal4(pos) {
			if _, waiting := queued[c]; !waiting && !scan.Contains(c) {
				queue = append(queue, c)
				queued[c] = struct{}{}
			}
		}
	}

	return deriveFields(scan, outerEdges)
}

// edgeVector — клетка внешнего края и единичное направление по ее номеру
type edgeVector struct {
	pos vec.Vec2
	dir vec.Vec2Float
}

// deriveFields вычисляет ordering и edge distance по итоговому скану
func deriveFields(scan *grid.SparseGrid[scanCell], outerEdges []vec.Vec2) (*LandmassShape, error) {
	total := len(outerEdges)

	edges := make([]edgeVector, 0, total)
	for _, pos := range outerEdges {
		cell, ok := scan.Get(pos)
		if !ok || cell.kind != scanBoundaryFinal {
			panic("gen: клетка внешнего края потеряла пометку BoundaryFinal")
		}
		a := float64(cell.index) / float64(total) * 2 * math.Pi
		edges = append(edges, edgeVector{
			pos: pos,
			dir: vec.Vec2Float{X: math.Cos(a), Y: math.Sin(a)},
		})
	}

	result := grid.NewSparseGrid[Cell]()
	scan.Each(func(pos vec.Vec2, c scanCell) {
		switch c.kind {
		case scanBoundaryFinal:
			ordering := int(float64(c.index) / float64(total) * maxOrdering)
			result.PutExpand(pos, Cell{Ordering: ordering, EdgeDistance: 0, Edge: true})
		case scanPresent:
			ordering, dist := orderingAndDistance(edges, pos)
			result.PutExpand(pos, Cell{Ordering: ordering, EdgeDistance: dist, Edge: false})
		default:
			panic("gen: клетка Boundary пережила заливку дыр")
		}
	})

	return &LandmassShape{grid: result}, nil
}

// orderingAndDistance вычисляет взвешенную круговую позицию клетки и
// расстояние до ближайшей клетки внешнего края. Вес клетки края —
// обратное расстояние в степени distancePower, поэтому ближний край
// доминирует и ordering остается осмысленным для невыпуклых форм.
func orderingAndDistance(edges []edgeVector, pos vec.Vec2) (int, int) {
	var acc vec.Vec2Float
	minDist := math.Inf(1)
	posF := vec.FromVec2(pos)
	for _, e := range edges {
		dist := vec.FromVec2(e.pos).DistanceTo(posF)
		acc = acc.Add(e.dir.Mul(math.Pow(dist, -distancePower)))
		if dist < minDist {
			minDist = dist
		}
	}
	a := math.Atan2(-acc.Y, -acc.X)
	ordering := int((a + math.Pi) / (2 * math.Pi) * maxOrdering)
	return ordering, int(minDist)
}
