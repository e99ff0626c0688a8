package gen

import (
	"math"
	"math/rand"

	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/geom"
	"github.com/annel0/voxel-city/internal/vec"
)

// Bedrock — бесконечное полупространство коренной породы.
// Высота поверхности колеблется в пределах пяти блоков над нижней
// границей мира.
type Bedrock struct {
	field *bedrockField
	minZ  int
}

// NewBedrock создает слой бедрока от нижней границы мира minZ
func NewBedrock(rng *rand.Rand, minZ int) *Bedrock {
	return &Bedrock{
		field: newBedrockField(rng.Int63()),
		minZ:  minZ,
	}
}

func (b *Bedrock) sample(pos vec.Vec2) int {
	h := b.field.Sample(float64(pos.X), float64(pos.Y))
	return b.minZ + int(math.Floor(h))
}

// Bounds возвращает false: по горизонтали бедрок не ограничен
func (b *Bedrock) Bounds() (geom.Box3, bool) {
	return geom.Box3{}, false
}

func (b *Bedrock) Contains(pos vec.Vec3) bool {
	if pos.Z >= b.minZ+14 {
		return false
	}
	h := b.sample(pos.ToVec2())
	if h < b.minZ {
		h = b.minZ
	}
	return pos.Z <= h
}

func (b *Bedrock) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	if b.Contains(pos) {
		return block.Bedrock, true
	}
	return block.Material{}, false
}
