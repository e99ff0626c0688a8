package gen

import (
	"math"
	"math/rand"

	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/geom"
	"github.com/annel0/voxel-city/internal/vec"
)

// Ocean генерирует:
//
//   - водяной столб от z=0 вниз до морского дна;
//   - дно около z=-32: гравий, ниже — глубинный сланец;
//   - водоросли на гравии (короткие и высокие).
//
// Оба профиля дна строятся от одного сида, поэтому граница гравия
// следует за рельефом поверхности.
type Ocean struct {
	floor1   *oceanFloorField
	floor2   *oceanFloorField
	seagrass *seagrassField
}

func NewOcean(rng *rand.Rand) *Ocean {
	floorSeed := rng.Int63()
	return &Ocean{
		floor1:   newOceanFloorField(floorSeed, 5),
		floor2:   newOceanFloorField(floorSeed, 3),
		seagrass: newSeagrassField(rng.Int63()),
	}
}

func (o *Ocean) sampleFloor1(pos vec.Vec2) int {
	return int(math.Floor(o.floor1.Sample(float64(pos.X), float64(pos.Y)) - 32.0))
}

func (o *Ocean) sampleFloor2(pos vec.Vec2) int {
	return int(math.Floor(o.floor2.Sample(float64(pos.X), float64(pos.Y)) - 34.0))
}

// Bounds возвращает false: океан по горизонтали не ограничен
func (o *Ocean) Bounds() (geom.Box3, bool) {
	return geom.Box3{}, false
}

func (o *Ocean) Contains(pos vec.Vec3) bool {
	return pos.Z <= 0
}

func (o *Ocean) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	if pos.Z > 0 {
		return block.Material{}, false
	}
	xy := pos.ToVec2()
	floor1 := o.sampleFloor1(xy)
	floor2 := o.sampleFloor2(xy)
	switch {
	case pos.Z >= floor1:
		presence := o.seagrass.presenceAt(float64(pos.X), float64(pos.Y))
		switch {
		case presence == SeagrassShort && pos.Z == floor1:
			return block.SeagrassShort, true
		case presence == SeagrassTall && pos.Z == floor1:
			return block.SeagrassTallLower, true
		case presence == SeagrassTall && pos.Z == floor1+1:
			return block.SeagrassTallUpper, true
		default:
			return block.Water, true
		}
	case pos.Z < floor1 && pos.Z >= floor2:
		return block.Gravel, true
	case pos.Z < floor1 || pos.Z < floor2:
		return block.Deepslate, true
	default:
		return block.Material{}, false
	}
}
