package gen

import (
	"math/rand"

	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/geom"
	"github.com/annel0/voxel-city/internal/vec"
)

// Layer — один ярус города: плита ландшафта, опоры под точками
// крепления и набор зданий на плите. Все из серого бетона.
type Layer struct {
	landmass  *Landmass
	pillars   *geom.Union
	buildings *geom.ThreadedUnion
	bounds    geom.Box3
}

// GenerateLayer строит ярус с верхом плиты на top. Опоры спускаются
// до bottom. Дочерние сиды вытягиваются из rng по порядку, поэтому
// результат детерминирован.
func GenerateLayer(rng *rand.Rand, top, bottom int, size float64, pillars PillarParams, buildings BuildingParams) (*Layer, error) {
	landmass, err := NewLandmass(rng.Int63(), top, size)
	if err != nil {
		return nil, err
	}
	shape := landmass.Shape()

	mounts := shape.MountPoints(pillars.EdgeDistance, pillars.Spacing)
	pillarGeoms := make([]geom.MaterialGeometry, 0, len(mounts))
	for _, origin := range mounts {
		pillarGeoms = append(pillarGeoms, NewPillar(origin, pillars.Radius, bottom, top))
	}

	buildingRng := rand.New(rand.NewSource(rng.Int63()))
	shapes := shape.GenerateBuildingShapes(buildingRng, buildings.Bounds)
	buildingGeoms := make([]geom.MaterialGeometry, 0, len(shapes))
	buildingsMaxZ := top
	for _, bs := range shapes {
		height := buildings.MinHeight
		if buildings.MaxHeight > buildings.MinHeight {
			height += buildingRng.Intn(buildings.MaxHeight - buildings.MinHeight + 1)
		}
		b := NewBuilding(bs.Min, bs.Max, top, height)
		if b.Top() > buildingsMaxZ {
			buildingsMaxZ = b.Top()
		}
		buildingGeoms = append(buildingGeoms, b)
	}

	footprint := geom.Box2{Min: shape.Min(), Max: shape.Max()}
	bounds := geom.NewBox3(
		footprint.Min.Extend(bottom),
		footprint.Max.Extend(buildingsMaxZ),
	)

	return &Layer{
		landmass:  landmass,
		pillars:   geom.NewUnion(pillarGeoms...),
		buildings: geom.NewThreadedUnion(buildingGeoms...),
		bounds:    bounds,
	}, nil
}

// Landmass возвращает плиту яруса
func (l *Layer) Landmass() *Landmass {
	return l.landmass
}

// PillarCount возвращает количество опор яруса
func (l *Layer) PillarCount() int {
	return len(l.pillars.Children())
}

// BuildingCount возвращает количество зданий яруса
func (l *Layer) BuildingCount() int {
	return l.buildings.Len()
}

// RemoveBuildingsCollidingWith убирает здания, чьи габариты пересекают
// габариты любой опоры вышележащего яруса
func (l *Layer) RemoveBuildingsCollidingWith(above *Layer) {
	pillars := above.pillars.Children()
	l.buildings.Retain(func(g geom.MaterialGeometry) bool {
		for _, pillar := range pillars {
			if geometriesIntersect(g, pillar) {
				return false
			}
		}
		return true
	})
}

func geometriesIntersect(a, b geom.Geometry) bool {
	ab, aOK := a.Bounds()
	bb, bOK := b.Bounds()
	if !aOK || !bOK {
		// Неограниченная геометрия пересекает всё
		return true
	}
	return ab.Overlaps(bb)
}

func (l *Layer) Bounds() (geom.Box3, bool) {
	return l.bounds, true
}

func (l *Layer) Contains(pos vec.Vec3) bool {
	return l.landmass.Contains(pos) || l.pillars.Contains(pos) || l.buildings.Contains(pos)
}

func (l *Layer) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	if l.Contains(pos) {
		return block.GrayConcrete, true
	}
	return block.Material{}, false
}
