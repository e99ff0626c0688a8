package gen

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Field — детерминированная скалярная функция над плоскостью.
// Ядро генерации рассматривает поле как инжектированное, непрозрачное
// и чистое: один и тот же сид дает одно и то же поле.
type Field interface {
	Sample(x, y float64) float64
}

// Параметры шума Перлина (настройка сглаженности)
const (
	noiseAlpha = 2.0
	noiseBeta  = 2.0

	// Золотое сечение — масштаб точечных шумов (бедрок, водоросли)
	phi = 1.61803398874989484820458683436563811
)

// landmassField комбинирует фрактальный шум с радиальным спадом:
// поле положительно около начала координат и уходит в минус за радиусом
// size. Спад линейный по расстоянию, нормированный на size, поэтому шум
// заметно искажает границу, не разрывая связность у центра.
type landmassField struct {
	noise     *perlin.Perlin
	size      float64
	frequency float64
}

func newLandmassField(seed int64, size float64) *landmassField {
	return &landmassField{
		noise:     perlin.NewPerlin(noiseAlpha, noiseBeta, 8, seed),
		size:      size,
		frequency: 1.0 / 64.0,
	}
}

func (f *landmassField) Sample(x, y float64) float64 {
	n := f.noise.Noise2D(x*f.frequency, y*f.frequency) * 0.5
	dist := math.Sqrt(x*x + y*y)
	falloff := clampFloat((f.size-dist)/f.size, -1.0, 1.0)
	return n + falloff
}

// bedrockField задает высоту бедрока: значение в диапазоне [0, 5)
type bedrockField struct {
	noise *perlin.Perlin
}

func newBedrockField(seed int64) *bedrockField {
	return &bedrockField{noise: perlin.NewPerlin(noiseAlpha, noiseBeta, 1, seed)}
}

func (f *bedrockField) Sample(x, y float64) float64 {
	n := f.noise.Noise2D(x/(phi*10.0), y/(phi*10.0))
	return (n + 1.0) * 2.5
}

// oceanFloorField задает рельеф морского дна
type oceanFloorField struct {
	noise *perlin.Perlin
}

// newOceanFloorField создает поле дна; вариант с 5 октавами дает верхнюю
// поверхность, с 3 октавами — границу гравия и глубинного сланца.
// Оба варианта строятся от одного сида.
func newOceanFloorField(seed int64, octaves int32) *oceanFloorField {
	return &oceanFloorField{noise: perlin.NewPerlin(noiseAlpha, noiseBeta, octaves, seed)}
}

func (f *oceanFloorField) Sample(x, y float64) float64 {
	return f.noise.Noise2D(x/128.0, y/128.0) * 4.0
}

// SeagrassPresence описывает наличие водорослей в колонке
type SeagrassPresence uint8

const (
	SeagrassNone SeagrassPresence = iota
	SeagrassShort
	SeagrassTall
)

// seagrassField распределяет водоросли по дну:
// ~60% пусто, ~30% короткие, ~10% высокие
type seagrassField struct {
	noise *perlin.Perlin
}

func newSeagrassField(seed int64) *seagrassField {
	return &seagrassField{noise: perlin.NewPerlin(noiseAlpha, noiseBeta, 1, seed)}
}

func (f *seagrassField) presenceAt(x, y float64) SeagrassPresence {
	n := f.noise.Noise2D(x/(phi*10.0), y/(phi*10.0))
	v := int(math.Floor((n+1.0)*100.0)) % 10
	switch {
	case v >= 9:
		return SeagrassTall
	case v >= 6:
		return SeagrassShort
	default:
		return SeagrassNone
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
