package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/vec"
)

func TestThreadedUnionMatchesUnion(t *testing.T) {
	children := []MaterialGeometry{
		boxGeom{box: box3(0, 0, 0, 2, 2, 2), mat: matA},
		boxGeom{box: box3(1, 1, 1, 4, 4, 4), mat: matB},
		boxGeom{box: box3(-3, -3, -3, -1, -1, -1), mat: matA},
	}
	tu := NewThreadedUnion(children...)
	u := NewUnion(children...)

	positions := []vec.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: 4, Y: 4, Z: 4},
		{X: -2, Y: -2, Z: -2},
		{X: 9, Y: 9, Z: 9},
	}
	for _, pos := range positions {
		assert.Equal(t, u.Contains(pos), tu.Contains(pos), "Contains в %v", pos)
		wantMat, wantOK := u.MaterialAt(pos)
		gotMat, gotOK := tu.MaterialAt(pos)
		assert.Equal(t, wantOK, gotOK, "наличие материала в %v", pos)
		assert.Equal(t, wantMat, gotMat, "материал в %v", pos)
	}
}

func TestThreadedUnionDeterministicWinner(t *testing.T) {
	// Оба ребенка покрывают одну точку; победитель — меньший индекс,
	// сколько бы раз ни спрашивали
	a := boxGeom{box: box3(0, 0, 0, 2, 2, 2), mat: matA}
	b := boxGeom{box: box3(0, 0, 0, 2, 2, 2), mat: matB}
	tu := NewThreadedUnion(a, b)

	for i := 0; i < 50; i++ {
		mat, ok := tu.MaterialAt(vec.Vec3{X: 1, Y: 1, Z: 1})
		require.True(t, ok)
		require.Equal(t, matA, mat, "итерация %d", i)
	}
}

func TestThreadedUnionBoundsOutsideReject(t *testing.T) {
	tu := NewThreadedUnion(boxGeom{box: box3(0, 0, 0, 2, 2, 2), mat: matA})

	b, ok := tu.Bounds()
	require.True(t, ok)
	assert.Equal(t, box3(0, 0, 0, 2, 2, 2), b)

	assert.False(t, tu.Contains(vec.Vec3{X: 5, Y: 5, Z: 5}))
	_, ok = tu.MaterialAt(vec.Vec3{X: 5, Y: 5, Z: 5})
	assert.False(t, ok)
}

func TestThreadedUnionRetain(t *testing.T) {
	a := boxGeom{box: box3(0, 0, 0, 2, 2, 2), mat: matA}
	b := boxGeom{box: box3(10, 10, 10, 12, 12, 12), mat: matB}
	tu := NewThreadedUnion(a, b)

	// Прогреваем мемоизацию боксов
	bounds, ok := tu.Bounds()
	require.True(t, ok)
	assert.Equal(t, box3(0, 0, 0, 12, 12, 12), bounds)

	tu.Retain(func(g MaterialGeometry) bool {
		gb, _ := g.Bounds()
		return gb.Min.X == 0
	})

	require.Equal(t, 1, tu.Len())
	bounds, ok = tu.Bounds()
	require.True(t, ok, "после Retain бокс пересчитывается")
	assert.Equal(t, box3(0, 0, 0, 2, 2, 2), bounds)

	assert.False(t, tu.Contains(vec.Vec3{X: 11, Y: 11, Z: 11}))
}

func TestThreadedUnionEmpty(t *testing.T) {
	tu := NewThreadedUnion()

	_, ok := tu.Bounds()
	assert.False(t, ok)
	assert.False(t, tu.Contains(vec.Vec3{}))
	_, ok = tu.MaterialAt(vec.Vec3{})
	assert.False(t, ok)
}

func TestThreadedUnionManyChildren(t *testing.T) {
	// Больше детей, чем воркеров: пути с разбиением на диапазоны
	var children []MaterialGeometry
	for i := 0; i < 64; i++ {
		children = append(children, boxGeom{
			box: box3(i*3, 0, 0, i*3+1, 1, 1),
			mat: block.Simple("test:a"),
		})
	}
	tu := NewThreadedUnion(children...)

	assert.True(t, tu.Contains(vec.Vec3{X: 189, Y: 0, Z: 0}))
	assert.True(t, tu.Contains(vec.Vec3{X: 0, Y: 1, Z: 1}))
	assert.False(t, tu.Contains(vec.Vec3{X: 2, Y: 0, Z: 0}), "зазор между боксами")

	mat, ok := tu.MaterialAt(vec.Vec3{X: 30, Y: 0, Z: 0})
	require.True(t, ok)
	assert.Equal(t, block.Simple("test:a"), mat)
}
