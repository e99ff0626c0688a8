package util

import (
	"github.com/annel0/voxel-city/internal/vec"
)

// Ring возвращает координаты квадратного кольца радиуса n вокруг
// начала координат (расстояние Чебышева). Кольцо 0 — одна точка.
// Обход кольца детерминирован: четыре стороны по часовой стрелке,
// начиная с верхней.
func Ring(n int) []vec.Vec2 {
	if n < 0 {
		return nil
	}
	if n == 0 {
		return []vec.Vec2{{X: 0, Y: 0}}
	}

	out := make([]vec.Vec2, 0, 8*n)
	for x := -n; x < n; x++ {
		out = append(out, vec.Vec2{X: x, Y: -n})
	}
	for y := -n; y < n; y++ {
		out = append(out, vec.Vec2{X: n, Y: y})
	}
	for x := n; x > -n; x-- {
		out = append(out, vec.Vec2{X: x, Y: n})
	}
	for y := n; y > -n; y-- {
		out = append(out, vec.Vec2{X: -n, Y: y})
	}
	return out
}
