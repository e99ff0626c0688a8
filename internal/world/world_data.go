package world

import (
	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/geom"
	"github.com/annel0/voxel-city/internal/vec"
)

// ChunkSize — ребро кубического чанка в блоках
const ChunkSize = 16

// Chunk хранит 16x16x16 блоков как индексы палитры.
// Ноль означает пустую ячейку, материалы кодируются как индекс+1.
type Chunk struct {
	Coords vec.Vec3 // Координаты чанка в мире
	cells  [ChunkSize * ChunkSize * ChunkSize]uint16
	filled int
}

// NewChunk создает пустой чанк с указанными координатами
func NewChunk(coords vec.Vec3) *Chunk {
	return &Chunk{Coords: coords}
}

func cellIndex(local vec.Vec3) int {
	return (local.Z*ChunkSize+local.X)*ChunkSize + local.Y
}

// Set записывает индекс палитры в локальную ячейку чанка
func (c *Chunk) Set(local vec.Vec3, idx PaletteIndex) {
	i := cellIndex(local)
	if c.cells[i] == 0 {
		c.filled++
	}
	c.cells[i] = uint16(idx) + 1
}

// Get возвращает индекс палитры в локальной ячейке чанка
func (c *Chunk) Get(local vec.Vec3) (PaletteIndex, bool) {
	v := c.cells[cellIndex(local)]
	if v == 0 {
		return 0, false
	}
	return PaletteIndex(v - 1), true
}

// Filled возвращает количество занятых ячеек
func (c *Chunk) Filled() int {
	return c.filled
}

// Cells возвращает сырой массив индексов (0 — пусто, иначе индекс+1)
func (c *Chunk) Cells() []uint16 {
	return c.cells[:]
}

// LoadCells восстанавливает содержимое чанка из сырого массива
func (c *Chunk) LoadCells(cells []uint16) {
	c.filled = 0
	for i := range c.cells {
		c.cells[i] = 0
	}
	for i := 0; i < len(cells) && i < len(c.cells); i++ {
		if cells[i] != 0 {
			c.filled++
		}
		c.cells[i] = cells[i]
	}
}

// WorldData — разреженный трехмерный буфер блоков, разбитый на чанки.
// Реализует приемник блоков, поэтому годится как сток для отрисовки
// геометрий.
type WorldData struct {
	chunks  map[vec.Vec3]*Chunk
	palette *Palette
	min     vec.Vec3
	max     vec.Vec3
	count   int
}

func NewWorldData() *WorldData {
	return &WorldData{
		chunks:  make(map[vec.Vec3]*Chunk),
		palette: NewPalette(),
	}
}

// Palette возвращает палитру материалов буфера
func (w *WorldData) Palette() *Palette {
	return w.palette
}

func splitPos(pos vec.Vec3) (chunk, local vec.Vec3) {
	// Сдвиг вправо дает деление с округлением вниз и для отрицательных
	chunk = vec.Vec3{X: pos.X >> 4, Y: pos.Y >> 4, Z: pos.Z >> 4}
	local = vec.Vec3{X: pos.X & 15, Y: pos.Y & 15, Z: pos.Z & 15}
	return
}

// ReceiveBlock помещает блок в буфер, создавая чанк при необходимости
func (w *WorldData) ReceiveBlock(pos vec.Vec3, mat block.Material) {
	chunkPos, local := splitPos(pos)
	chunk, ok := w.chunks[chunkPos]
	if !ok {
		chunk = NewChunk(chunkPos)
		w.chunks[chunkPos] = chunk
	}
	if _, occupied := chunk.Get(local); !occupied {
		w.count++
	}
	chunk.Set(local, w.palette.GetOrInsert(mat))

	if w.count == 1 {
		w.min, w.max = pos, pos
	} else {
		w.min = w.min.Min(pos)
		w.max = w.max.Max(pos)
	}
}

// Get возвращает материал в точке, если она занята
func (w *WorldData) Get(pos vec.Vec3) (block.Material, bool) {
	chunkPos, local := splitPos(pos)
	chunk, ok := w.chunks[chunkPos]
	if !ok {
		return block.Material{}, false
	}
	idx, ok := chunk.Get(local)
	if !ok {
		return block.Material{}, false
	}
	return w.palette.Get(idx)
}

// Len возвращает количество занятых блоков
func (w *WorldData) Len() int {
	return w.count
}

// ChunkCount возвращает количество затронутых чанков
func (w *WorldData) ChunkCount() int {
	return len(w.chunks)
}

// Bounds возвращает точные габариты содержимого; false для пустого буфера
func (w *WorldData) Bounds() (geom.Box3, bool) {
	if w.count == 0 {
		return geom.Box3{}, false
	}
	return geom.Box3{Min: w.min, Max: w.max}, true
}

// EachChunk обходит все чанки буфера в произвольном порядке
func (w *WorldData) EachChunk(fn func(chunk *Chunk)) {
	for _, chunk := range w.chunks {
		fn(chunk)
	}
}
