package util

import (
	"testing"

	"github.com/annel0/voxel-city/internal/vec"
)

func TestRingZero(t *testing.T) {
	ring := Ring(0)
	if len(ring) != 1 || ring[0] != (vec.Vec2{}) {
		t.Errorf("Кольцо 0 — одна точка в начале координат, получено %v", ring)
	}
}

func TestRingNegative(t *testing.T) {
	if ring := Ring(-1); ring != nil {
		t.Errorf("Отрицательный радиус дает nil, получено %v", ring)
	}
}

func TestRingShell(t *testing.T) {
	for n := 1; n <= 4; n++ {
		ring := Ring(n)
		if len(ring) != 8*n {
			t.Errorf("Кольцо %d содержит %d точек, ожидалось %d", n, len(ring), 8*n)
		}

		seen := make(map[vec.Vec2]struct{}, len(ring))
		for _, p := range ring {
			// Все точки на расстоянии Чебышёва ровно n
			if p.Abs().MaxComponent() != n {
				t.Errorf("Точка %v не лежит на кольце %d", p, n)
			}
			if _, dup := seen[p]; dup {
				t.Errorf("Точка %v встречается дважды в кольце %d", p, n)
			}
			seen[p] = struct{}{}
		}
	}
}

func TestRingsCoverPlane(t *testing.T) {
	// Кольца 0..3 вместе покрывают квадрат 7x7 без пропусков
	seen := make(map[vec.Vec2]struct{})
	for n := 0; n <= 3; n++ {
		for _, p := range Ring(n) {
			seen[p] = struct{}{}
		}
	}
	for y := -3; y <= 3; y++ {
		for x := -3; x <= 3; x++ {
			if _, ok := seen[vec.Vec2{X: x, Y: y}]; !ok {
				t.Errorf("Точка {%d,%d} не покрыта кольцами", x, y)
			}
		}
	}
	if len(seen) != 49 {
		t.Errorf("Ожидалось 49 точек, получено %d", len(seen))
	}
}
