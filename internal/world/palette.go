package world

import (
	"github.com/annel0/voxel-city/internal/block"
)

// PaletteIndex — плотный индекс материала в палитре
type PaletteIndex uint16

// Palette интернирует материалы: один материал — один индекс.
// Индексы выдаются плотно, в порядке первого появления, поэтому
// сериализованная палитра воспроизводима.
type Palette struct {
	materials []block.Material
	lookup    map[block.Material]PaletteIndex
}

func NewPalette() *Palette {
	return &Palette{
		materials: nil,
		lookup:    make(map[block.Material]PaletteIndex),
	}
}

// GetOrInsert возвращает индекс материала, регистрируя его при
// первом обращении
func (p *Palette) GetOrInsert(mat block.Material) PaletteIndex {
	if idx, ok := p.lookup[mat]; ok {
		return idx
	}
	idx := PaletteIndex(len(p.materials))
	p.materials = append(p.materials, mat)
	p.lookup[mat] = idx
	return idx
}

// Get возвращает материал по индексу
func (p *Palette) Get(idx PaletteIndex) (block.Material, bool) {
	if int(idx) >= len(p.materials) {
		return block.Material{}, false
	}
	return p.materials[idx], true
}

// Materials возвращает материалы в порядке регистрации
func (p *Palette) Materials() []block.Material {
	out := make([]block.Material, len(p.materials))
	copy(out, p.materials)
	return out
}

func (p *Palette) Len() int {
	return len(p.materials)
}
