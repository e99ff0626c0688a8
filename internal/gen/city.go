package gen

import (
	"math/rand"

	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/geom"
	"github.com/annel0/voxel-city/internal/vec"
)

// PillarParams задает размещение опор яруса
type PillarParams struct {
	EdgeDistance int
	Spacing      int
	Radius       int
}

// BuildingParams задает пределы размеров зданий
type BuildingParams struct {
	Bounds    BuildingBounds
	MinHeight int
	MaxHeight int
}

// CityParams задает состав города
type CityParams struct {
	Size        float64 // радиус нижнего яруса
	Layers      int
	BaseLevel   int // верх плиты нижнего яруса
	LayerHeight int // вертикальный шаг между ярусами
	LayerShrink float64
	WorldMinZ   int // до этого уровня спускаются опоры нижнего яруса
	Pillars     PillarParams
	Buildings   BuildingParams
}

// City — упорядоченный снизу вверх набор ярусов
type City struct {
	layers []*Layer
	bounds geom.Box3
}

// GenerateCity строит все ярусы и прореживает здания: здание яруса
// удаляется, если его габариты пересекает опора яруса выше.
func GenerateCity(rng *rand.Rand, params CityParams) (*City, error) {
	layers := make([]*Layer, 0, params.Layers)
	size := params.Size
	bottom := params.WorldMinZ
	for i := 0; i < params.Layers; i++ {
		top := params.BaseLevel + i*params.LayerHeight
		layer, err := GenerateLayer(rng, top, bottom, size, params.Pillars, params.Buildings)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
		bottom = top
		size *= params.LayerShrink
		if size < 1.0 {
			size = 1.0
		}
	}

	for i := 0; i+1 < len(layers); i++ {
		layers[i].RemoveBuildingsCollidingWith(layers[i+1])
	}

	var bounds geom.Box3
	for i, layer := range layers {
		lb, _ := layer.Bounds()
		if i == 0 {
			bounds = lb
		} else {
			bounds = bounds.Union(lb)
		}
	}

	return &City{layers: layers, bounds: bounds}, nil
}

// Layers возвращает ярусы снизу вверх
func (c *City) Layers() []*Layer {
	return c.layers
}

func (c *City) Bounds() (geom.Box3, bool) {
	return c.bounds, true
}

func (c *City) Contains(pos vec.Vec3) bool {
	for _, layer := range c.layers {
		if layer.Contains(pos) {
			return true
		}
	}
	return false
}

func (c *City) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	for _, layer := range c.layers {
		if mat, ok := layer.MaterialAt(pos); ok {
			return mat, true
		}
	}
	return block.Material{}, false
}
