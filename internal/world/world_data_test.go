package world

import (
	"testing"

	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/vec"
)

func TestWorldDataReceiveAndGet(t *testing.T) {
	w := NewWorldData()

	pos := vec.Vec3{X: 5, Y: -20, Z: 300}
	w.ReceiveBlock(pos, block.GrayConcrete)

	mat, ok := w.Get(pos)
	if !ok {
		t.Fatal("Блок должен быть найден")
	}
	if mat != block.GrayConcrete {
		t.Errorf("Ожидался серый бетон, получено %v", mat)
	}

	if _, ok := w.Get(vec.Vec3{X: 5, Y: -20, Z: 301}); ok {
		t.Error("Соседняя ячейка пуста")
	}
	if w.Len() != 1 {
		t.Errorf("Ожидался 1 блок, получено %d", w.Len())
	}
}

func TestWorldDataOverwriteKeepsCount(t *testing.T) {
	w := NewWorldData()
	pos := vec.Vec3{X: 1, Y: 1, Z: 1}

	w.ReceiveBlock(pos, block.Water)
	w.ReceiveBlock(pos, block.Gravel)

	if w.Len() != 1 {
		t.Errorf("Перезапись не меняет счетчик, Len=%d", w.Len())
	}
	if mat, _ := w.Get(pos); mat != block.Gravel {
		t.Errorf("Ожидался последний записанный материал, получено %v", mat)
	}
}

func TestWorldDataChunkSplit(t *testing.T) {
	w := NewWorldData()

	// Соседние блоки через границу чанка попадают в разные чанки
	w.ReceiveBlock(vec.Vec3{X: 15, Y: 0, Z: 0}, block.Water)
	w.ReceiveBlock(vec.Vec3{X: 16, Y: 0, Z: 0}, block.Water)
	w.ReceiveBlock(vec.Vec3{X: -1, Y: 0, Z: 0}, block.Water)

	if w.ChunkCount() != 3 {
		t.Errorf("Ожидалось 3 чанка, получено %d", w.ChunkCount())
	}

	// Отрицательные координаты: чанк -1, локальная 15
	chunk, local := splitPos(vec.Vec3{X: -1, Y: -16, Z: -17})
	if chunk != (vec.Vec3{X: -1, Y: -1, Z: -2}) {
		t.Errorf("Координаты чанка %v, ожидалось {-1,-1,-2}", chunk)
	}
	if local != (vec.Vec3{X: 15, Y: 0, Z: 15}) {
		t.Errorf("Локальные координаты %v, ожидалось {15,0,15}", local)
	}
}

func TestWorldDataBounds(t *testing.T) {
	w := NewWorldData()

	if _, ok := w.Bounds(); ok {
		t.Error("Пустой буфер не имеет габаритов")
	}

	w.ReceiveBlock(vec.Vec3{X: -5, Y: 3, Z: 10}, block.Water)
	w.ReceiveBlock(vec.Vec3{X: 8, Y: -2, Z: 40}, block.Water)

	bounds, ok := w.Bounds()
	if !ok {
		t.Fatal("Непустой буфер имеет габариты")
	}
	if bounds.Min != (vec.Vec3{X: -5, Y: -2, Z: 10}) {
		t.Errorf("Min %v, ожидалось {-5,-2,10}", bounds.Min)
	}
	if bounds.Max != (vec.Vec3{X: 8, Y: 3, Z: 40}) {
		t.Errorf("Max %v, ожидалось {8,3,40}", bounds.Max)
	}
}

func TestPaletteInterning(t *testing.T) {
	p := NewPalette()

	a := p.GetOrInsert(block.Water)
	b := p.GetOrInsert(block.Gravel)
	c := p.GetOrInsert(block.Water)

	if a != c {
		t.Errorf("Один материал — один индекс: %d и %d", a, c)
	}
	if a == b {
		t.Error("Разные материалы получают разные индексы")
	}
	if p.Len() != 2 {
		t.Errorf("В палитре 2 материала, получено %d", p.Len())
	}

	if mat, ok := p.Get(a); !ok || mat != block.Water {
		t.Errorf("По индексу %d ожидалась вода, получено %v", a, mat)
	}
	if _, ok := p.Get(PaletteIndex(99)); ok {
		t.Error("Несуществующий индекс должен вернуть false")
	}

	mats := p.Materials()
	if len(mats) != 2 || mats[0] != block.Water || mats[1] != block.Gravel {
		t.Errorf("Палитра в порядке регистрации, получено %v", mats)
	}
}

func TestChunkCellsRoundTrip(t *testing.T) {
	chunk := NewChunk(vec.Vec3{X: 1, Y: 2, Z: 3})
	chunk.Set(vec.Vec3{X: 0, Y: 0, Z: 0}, 0)
	chunk.Set(vec.Vec3{X: 15, Y: 15, Z: 15}, 4)

	restored := NewChunk(chunk.Coords)
	restored.LoadCells(chunk.Cells())

	if restored.Filled() != 2 {
		t.Errorf("Ожидалось 2 занятых ячейки, получено %d", restored.Filled())
	}
	if idx, ok := restored.Get(vec.Vec3{X: 15, Y: 15, Z: 15}); !ok || idx != 4 {
		t.Errorf("Ожидался индекс 4, получено %d, ok=%v", idx, ok)
	}
	if idx, ok := restored.Get(vec.Vec3{X: 0, Y: 0, Z: 0}); !ok || idx != 0 {
		t.Errorf("Нулевой индекс палитры тоже занят: %d, ok=%v", idx, ok)
	}
	if _, ok := restored.Get(vec.Vec3{X: 1, Y: 1, Z: 1}); ok {
		t.Error("Незаписанная ячейка пуста")
	}
}
