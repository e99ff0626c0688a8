package block

// Material описывает материал вокселя: основной блок и необязательный
// дополнительный (например, вода внутри водорослей). Значение сравнимо
// через == и пригодно как ключ карты.
type Material struct {
	Base  string
	Extra string
}

// Simple создает материал без дополнительного блока
func Simple(base string) Material {
	return Material{Base: base}
}

// WithExtra создает материал с дополнительным блоком
func WithExtra(base, extra string) Material {
	return Material{Base: base, Extra: extra}
}

// HasExtra проверяет наличие дополнительного блока
func (m Material) HasExtra() bool {
	return m.Extra != ""
}

// String возвращает строковое представление материала
func (m Material) String() string {
	if m.Extra != "" {
		return m.Base + "+" + m.Extra
	}
	return m.Base
}

// Фиксированный набор материалов генератора
var (
	Gravel    = Simple("minecraft:gravel")
	Deepslate = Simple("minecraft:deepslate")
	Bedrock   = Simple("minecraft:bedrock")

	Water             = Simple("minecraft:water")
	SeagrassShort     = WithExtra("minecraft:seagrass", "minecraft:water")
	SeagrassTallUpper = WithExtra("minecraft:tall_seagrass[half=upper]", "minecraft:water")
	SeagrassTallLower = WithExtra("minecraft:tall_seagrass[half=lower]", "minecraft:water")

	GrayConcrete = Simple("minecraft:gray_concrete")
)
