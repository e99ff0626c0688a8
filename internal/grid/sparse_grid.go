package grid

import (
	"fmt"

	"github.com/annel0/voxel-city/internal/vec"
)

// SparseGrid представляет разреженную 2D сетку со знаковыми целыми координатами.
// Окно данных хранит `[offset, offset+size)` по каждой оси и монотонно
// расширяется при записи за границу; сетка никогда не сжимается.
// Чтение вне окна и чтение пустой ячейки внутри окна неразличимы.
type SparseGrid[T any] struct {
	rows   [][]cell[T]
	cols   int
	offset vec.Vec2
}

type cell[T any] struct {
	value   T
	present bool
}

// NewSparseGrid создает новую пустую сетку с окном 1x1 в начале координат
func NewSparseGrid[T any]() *SparseGrid[T] {
	return NewSparseGridAt[T](vec.Vec2{})
}

// NewSparseGridAt создает новую пустую сетку с заданным смещением окна
func NewSparseGridAt[T any](offset vec.Vec2) *SparseGrid[T] {
	return &SparseGrid[T]{
		rows:   [][]cell[T]{make([]cell[T], 1)},
		cols:   1,
		offset: offset,
	}
}

// pos переводит глобальную позицию в индексы внутри окна данных
func (g *SparseGrid[T]) pos(p vec.Vec2) (int, int, bool) {
	x := p.X - g.offset.X
	y := p.Y - g.offset.Y
	if x < 0 || y < 0 || x >= g.Width() || y >= g.Height() {
		return 0, 0, false
	}
	return x, y, true
}

// Get возвращает значение по координатам; false если ячейка пуста или вне окна
func (g *SparseGrid[T]) Get(p vec.Vec2) (T, bool) {
	if x, y, ok := g.pos(p); ok && g.rows[y][x].present {
		return g.rows[y][x].value, true
	}
	var zero T
	return zero, false
}

// Contains проверяет наличие значения по координатам
func (g *SparseGrid[T]) Contains(p vec.Vec2) bool {
	_, ok := g.Get(p)
	return ok
}

// Put записывает значение, если позиция внутри текущего окна.
// Возвращает false, если позиция вне окна (значение не записано).
func (g *SparseGrid[T]) Put(p vec.Vec2, value T) bool {
	x, y, ok := g.pos(p)
	if !ok {
		return false
	}
	g.rows[y][x] = cell[T]{value: value, present: true}
	return true
}

// PutExpand записывает значение, расширяя окно данных при необходимости
func (g *SparseGrid[T]) PutExpand(p vec.Vec2, value T) {
	g.ExpandToInclude(p)
	if !g.Put(p, value) {
		panic(fmt.Sprintf("grid: позиция %v вне окна после расширения", p))
	}
}

// Remove удаляет значение по координатам; false если его не было
func (g *SparseGrid[T]) Remove(p vec.Vec2) (T, bool) {
	x, y, ok := g.pos(p)
	if !ok || !g.rows[y][x].present {
		var zero T
		return zero, false
	}
	value := g.rows[y][x].value
	g.rows[y][x] = cell[T]{}
	return value, true
}

// ExpandToInclude расширяет окно данных так, чтобы оно содержало позицию
func (g *SparseGrid[T]) ExpandToInclude(p vec.Vec2) {
	x := p.X - g.offset.X
	y := p.Y - g.offset.Y

	if x < 0 {
		g.growColumnsFront(-x)
	} else if x >= g.Width() {
		g.growColumnsBack(x - g.Width() + 1)
	}

	if y < 0 {
		g.growRowsFront(-y)
	} else if y >= g.Height() {
		g.growRowsBack(y - g.Height() + 1)
	}
}

// growRowsBack добавляет строки со стороны положительного Y
func (g *SparseGrid[T]) growRowsBack(n int) {
	for i := 0; i < n; i++ {
		g.rows = append(g.rows, make([]cell[T], g.cols))
	}
}

// growRowsFront добавляет строки со стороны отрицательного Y
func (g *SparseGrid[T]) growRowsFront(n int) {
	fresh := make([][]cell[T], n, n+len(g.rows))
	for i := range fresh {
		fresh[i] = make([]cell[T], g.cols)
	}
	g.rows = append(fresh, g.rows...)
	g.offset.Y -= n
}

// growColumnsBack добавляет столбцы со стороны положительного X
func (g *SparseGrid[T]) growColumnsBack(n int) {
	g.cols += n
	for y, row := range g.rows {
		fresh := make([]cell[T], g.cols)
		copy(fresh, row)
		g.rows[y] = fresh
	}
}

// growColumnsFront добавляет столбцы со стороны отрицательного X
func (g *SparseGrid[T]) growColumnsFront(n int) {
	g.cols += n
	g.offset.X -= n
	for y, row := range g.rows {
		fresh := make([]cell[T], g.cols)
		copy(fresh[n:], row)
		g.rows[y] = fresh
	}
}

// Min возвращает минимальный угол окна данных
func (g *SparseGrid[T]) Min() vec.Vec2 {
	return g.offset
}

// Max возвращает максимальный угол окна данных (включительно)
func (g *SparseGrid[T]) Max() vec.Vec2 {
	return vec.Vec2{
		X: g.offset.X + g.Width() - 1,
		Y: g.offset.Y + g.Height() - 1,
	}
}

// Width возвращает ширину окна данных
func (g *SparseGrid[T]) Width() int {
	return g.cols
}

// Height возвращает высоту окна данных
func (g *SparseGrid[T]) Height() int {
	return len(g.rows)
}

// Len возвращает количество занятых ячеек
func (g *SparseGrid[T]) Len() int {
	n := 0
	for _, row := range g.rows {
		for x := range row {
			if row[x].present {
				n++
			}
		}
	}
	return n
}

// Each вызывает fn для каждой занятой ячейки в порядке строк (Y, затем X)
func (g *SparseGrid[T]) Each(fn func(p vec.Vec2, value T)) {
	for y, row := range g.rows {
		for x := range row {
			if row[x].present {
				p := vec.Vec2{X: x + g.offset.X, Y: y + g.offset.Y}
				fn(p, row[x].value)
			}
		}
	}
}
