package vec

import (
	"testing"
)

func TestVec2ChunkCoords(t *testing.T) {
	cases := []struct {
		pos   Vec2
		chunk Vec2
		local Vec2
	}{
		{Vec2{X: 0, Y: 0}, Vec2{X: 0, Y: 0}, Vec2{X: 0, Y: 0}},
		{Vec2{X: 15, Y: 15}, Vec2{X: 0, Y: 0}, Vec2{X: 15, Y: 15}},
		{Vec2{X: 16, Y: 31}, Vec2{X: 1, Y: 1}, Vec2{X: 0, Y: 15}},
		{Vec2{X: -1, Y: -16}, Vec2{X: -1, Y: -1}, Vec2{X: 15, Y: 0}},
		{Vec2{X: -17, Y: 5}, Vec2{X: -2, Y: 0}, Vec2{X: 15, Y: 5}},
	}
	for _, tc := range cases {
		if got := tc.pos.ToChunkCoords(); got != tc.chunk {
			t.Errorf("ToChunkCoords(%v) = %v, ожидалось %v", tc.pos, got, tc.chunk)
		}
		if got := tc.pos.LocalInChunk(); got != tc.local {
			t.Errorf("LocalInChunk(%v) = %v, ожидалось %v", tc.pos, got, tc.local)
		}
	}
}

func TestVec2MinMax(t *testing.T) {
	a := Vec2{X: -3, Y: 7}
	b := Vec2{X: 2, Y: -5}

	if got := a.Min(b); got != (Vec2{X: -3, Y: -5}) {
		t.Errorf("Min покомпонентный, получено %v", got)
	}
	if got := a.Max(b); got != (Vec2{X: 2, Y: 7}) {
		t.Errorf("Max покомпонентный, получено %v", got)
	}
}

func TestVec2AbsMaxComponent(t *testing.T) {
	p := Vec2{X: -7, Y: 3}
	if got := p.Abs(); got != (Vec2{X: 7, Y: 3}) {
		t.Errorf("Abs(%v) = %v", p, got)
	}
	if got := p.Abs().MaxComponent(); got != 7 {
		t.Errorf("Норма Чебышёва для %v равна 7, получено %d", p, got)
	}
}

func TestVec2Extend(t *testing.T) {
	p := Vec2{X: 4, Y: -2}
	if got := p.Extend(9); got != (Vec3{X: 4, Y: -2, Z: 9}) {
		t.Errorf("Extend добавляет вертикаль, получено %v", got)
	}
	if got := (Vec3{X: 4, Y: -2, Z: 9}).ToVec2(); got != p {
		t.Errorf("ToVec2 отбрасывает вертикаль, получено %v", got)
	}
}

func TestVec2FloatDistance(t *testing.T) {
	a := FromVec2(Vec2{X: 0, Y: 0})
	b := FromVec2(Vec2{X: 3, Y: 4})
	if got := a.DistanceTo(b); got != 5.0 {
		t.Errorf("Дистанция 3-4-5, получено %v", got)
	}
}
