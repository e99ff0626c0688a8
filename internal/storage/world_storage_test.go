package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/vec"
	"github.com/annel0/voxel-city/internal/world"
)

func TestWorldStorageSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	data := world.NewWorldData()
	data.ReceiveBlock(vec.Vec3{X: 0, Y: 0, Z: 48}, block.GrayConcrete)
	data.ReceiveBlock(vec.Vec3{X: 100, Y: -50, Z: 0}, block.Water)
	data.ReceiveBlock(vec.Vec3{X: 100, Y: -50, Z: -64}, block.Bedrock)

	ws, err := NewWorldStorage(dir)
	require.NoError(t, err)

	meta, err := ws.SaveWorld(data, 12345)
	require.NoError(t, err)
	assert.EqualValues(t, 12345, meta.Seed)
	assert.Len(t, meta.Palette, 3)
	assert.NotZero(t, meta.ID)
	require.NoError(t, ws.Close())

	// Повторное открытие читает то же содержимое
	ws, err = NewWorldStorage(dir)
	require.NoError(t, err)
	defer ws.Close()

	loaded, err := ws.LoadMeta()
	require.NoError(t, err)
	assert.Equal(t, meta.ID, loaded.ID)
	assert.Equal(t, meta.Seed, loaded.Seed)
	assert.Equal(t, meta.Palette, loaded.Palette)
	assert.Equal(t, vec.Vec3{X: 0, Y: -50, Z: -64}, loaded.MinPos)
	assert.Equal(t, vec.Vec3{X: 100, Y: 0, Z: 48}, loaded.MaxPos)

	chunk, found, err := ws.LoadChunk(vec.Vec3{X: 0, Y: 0, Z: 3})
	require.NoError(t, err)
	require.True(t, found, "чанк с блоком на z=48 сохранен")
	idx, ok := chunk.Get(vec.Vec3{X: 0, Y: 0, Z: 0})
	require.True(t, ok)
	assert.Equal(t, block.GrayConcrete, loaded.Palette[idx])
}

func TestWorldStorageMissingChunk(t *testing.T) {
	dir := t.TempDir()

	ws, err := NewWorldStorage(dir)
	require.NoError(t, err)
	defer ws.Close()

	data := world.NewWorldData()
	data.ReceiveBlock(vec.Vec3{}, block.Water)
	_, err = ws.SaveWorld(data, 1)
	require.NoError(t, err)

	_, found, err := ws.LoadChunk(vec.Vec3{X: 999, Y: 999, Z: 999})
	require.NoError(t, err)
	assert.False(t, found, "несохраненный чанк возвращает found=false без ошибки")
}

func TestWorldStorageRoundTripAllCells(t *testing.T) {
	dir := t.TempDir()

	data := world.NewWorldData()
	// Один чанк, несколько материалов
	for x := 0; x < 16; x++ {
		mat := block.Water
		if x%2 == 0 {
			mat = block.Gravel
		}
		data.ReceiveBlock(vec.Vec3{X: x, Y: 3, Z: 5}, mat)
	}

	ws, err := NewWorldStorage(dir)
	require.NoError(t, err)
	defer ws.Close()

	meta, err := ws.SaveWorld(data, 7)
	require.NoError(t, err)

	chunk, found, err := ws.LoadChunk(vec.Vec3{X: 0, Y: 0, Z: 0})
	require.NoError(t, err)
	require.True(t, found)

	for x := 0; x < 16; x++ {
		idx, ok := chunk.Get(vec.Vec3{X: x, Y: 3, Z: 5})
		require.True(t, ok, "ячейка x=%d", x)
		want := block.Water
		if x%2 == 0 {
			want = block.Gravel
		}
		assert.Equal(t, want, meta.Palette[idx], "ячейка x=%d", x)
	}
	assert.Equal(t, 16, chunk.Filled())
}
