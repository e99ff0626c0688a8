package grid

import (
	"testing"

	"github.com/annel0/voxel-city/internal/vec"
)

func TestSparseGridStartsAtOrigin(t *testing.T) {
	g := NewSparseGrid[int]()

	if g.Width() != 1 || g.Height() != 1 {
		t.Errorf("Ожидалось окно 1x1, получено %dx%d", g.Width(), g.Height())
	}
	if g.Min() != (vec.Vec2{}) || g.Max() != (vec.Vec2{}) {
		t.Errorf("Ожидалось окно {0,0}..{0,0}, получено %v..%v", g.Min(), g.Max())
	}
	if g.Len() != 0 {
		t.Errorf("Новая сетка должна быть пустой, Len=%d", g.Len())
	}
}

func TestSparseGridPutExpandGrowsWindow(t *testing.T) {
	g := NewSparseGrid[string]()
	g.PutExpand(vec.Vec2{X: -3, Y: 2}, "a")
	g.PutExpand(vec.Vec2{X: 4, Y: -1}, "b")

	if g.Min() != (vec.Vec2{X: -3, Y: -1}) {
		t.Errorf("Ожидался Min {-3,-1}, получен %v", g.Min())
	}
	if g.Max() != (vec.Vec2{X: 4, Y: 2}) {
		t.Errorf("Ожидался Max {4,2}, получен %v", g.Max())
	}

	if v, ok := g.Get(vec.Vec2{X: -3, Y: 2}); !ok || v != "a" {
		t.Errorf("Ожидалось значение a, получено %q, ok=%v", v, ok)
	}
	if v, ok := g.Get(vec.Vec2{X: 4, Y: -1}); !ok || v != "b" {
		t.Errorf("Ожидалось значение b, получено %q, ok=%v", v, ok)
	}

	// Клетка внутри окна, но без значения
	if g.Contains(vec.Vec2{X: 0, Y: 0}) {
		t.Error("Пустая клетка внутри окна не должна считаться занятой")
	}
}

func TestSparseGridPutRespectsWindow(t *testing.T) {
	g := NewSparseGrid[int]()
	g.PutExpand(vec.Vec2{X: 2, Y: 2}, 1)

	if !g.Put(vec.Vec2{X: 1, Y: 1}, 5) {
		t.Error("Put внутри окна должен пройти")
	}
	if g.Put(vec.Vec2{X: 3, Y: 0}, 5) {
		t.Error("Put за окном должен быть отвергнут")
	}
	if g.Contains(vec.Vec2{X: 3, Y: 0}) {
		t.Error("Отвергнутый Put не должен оставлять значение")
	}
}

func TestSparseGridRemove(t *testing.T) {
	g := NewSparseGrid[int]()
	g.PutExpand(vec.Vec2{X: 1, Y: 1}, 7)

	v, ok := g.Remove(vec.Vec2{X: 1, Y: 1})
	if !ok || v != 7 {
		t.Errorf("Ожидалось удаление значения 7, получено %d, ok=%v", v, ok)
	}
	if g.Contains(vec.Vec2{X: 1, Y: 1}) {
		t.Error("Клетка должна быть пустой после Remove")
	}
	// Окно не сжимается
	if g.Max() != (vec.Vec2{X: 1, Y: 1}) {
		t.Errorf("Окно не должно сжиматься, Max=%v", g.Max())
	}

	if _, ok := g.Remove(vec.Vec2{X: 9, Y: 9}); ok {
		t.Error("Remove вне окна должен вернуть false")
	}
}

func TestSparseGridEachRowMajor(t *testing.T) {
	g := NewSparseGrid[int]()
	g.PutExpand(vec.Vec2{X: 1, Y: 0}, 2)
	g.PutExpand(vec.Vec2{X: 0, Y: 1}, 3)
	g.PutExpand(vec.Vec2{X: 0, Y: 0}, 1)

	var order []vec.Vec2
	g.Each(func(p vec.Vec2, _ int) {
		order = append(order, p)
	})

	expected := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	if len(order) != len(expected) {
		t.Fatalf("Ожидалось %d клеток, получено %d", len(expected), len(order))
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Позиция %d: ожидалось %v, получено %v", i, expected[i], order[i])
		}
	}
}

func TestSparseGridLen(t *testing.T) {
	g := NewSparseGrid[int]()
	g.PutExpand(vec.Vec2{X: 0, Y: 0}, 1)
	g.PutExpand(vec.Vec2{X: 5, Y: 5}, 2)
	g.PutExpand(vec.Vec2{X: 5, Y: 5}, 3) // перезапись не меняет счетчик

	if g.Len() != 2 {
		t.Errorf("Ожидалось 2 занятых клетки, получено %d", g.Len())
	}
}
