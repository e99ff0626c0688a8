package gen

import (
	"math/rand"

	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/geom"
	"github.com/annel0/voxel-city/internal/vec"
)

// Generator — верхний уровень: бедрок, город и океан, обрезанные по
// горизонтальному следу города. Обрезаются только заявленные границы,
// точечные запросы вне следа по-прежнему уходят во внутренние
// геометрии.
type Generator struct {
	inner *geom.LimitBounds
	city  *City
}

// NewGenerator детерминированно строит мир от одного сида.
// Порядок выборки дочерних сидов фиксирован: бедрок, океан, город.
func NewGenerator(seed int64, params CityParams) (*Generator, error) {
	sourceRng := rand.New(rand.NewSource(seed))

	bedrock := NewBedrock(sourceRng, params.WorldMinZ)
	ocean := NewOcean(sourceRng)
	city, err := GenerateCity(sourceRng, params)
	if err != nil {
		return nil, err
	}

	cityBounds, _ := city.Bounds()
	footprint := cityBounds.Truncate()

	inner := geom.NewUnion(bedrock, city, ocean)
	limited := geom.NewLimitBounds(inner, footprint.Min, footprint.Max)

	return &Generator{inner: limited, city: city}, nil
}

// City возвращает сгенерированный город
func (g *Generator) City() *City {
	return g.city
}

// Bounds возвращает габариты мира, обрезанные по следу города
func (g *Generator) Bounds() (geom.Box3, bool) {
	return g.inner.Bounds()
}

// ChunkExists отвечает, пересекает ли чанк 16x16 след мира
func (g *Generator) ChunkExists(chunkPos vec.Vec2) bool {
	bounds, ok := g.inner.Bounds()
	if !ok {
		return true
	}
	return bounds.OverlapsChunk(chunkPos)
}

// BlockAt возвращает материал в точке, если она занята
func (g *Generator) BlockAt(pos vec.Vec3) (block.Material, bool) {
	return g.inner.MaterialAt(pos)
}
