package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации генератора.
// Вертикальные границы мира — явные параметры, а не глобальные константы.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	City      CityConfig      `yaml:"city"`
	Pillars   PillarConfig    `yaml:"pillars"`
	Buildings BuildingConfig  `yaml:"buildings"`
	Output    OutputConfig    `yaml:"output"`
}

// WorldConfig задает вертикальный диапазон генерации
type WorldConfig struct {
	MinZ int `yaml:"min_z"`
	MaxZ int `yaml:"max_z"`
}

// CityConfig задает параметры города и его слоев
type CityConfig struct {
	Size        float64 `yaml:"size"`         // радиус нижнего ландшафта в клетках
	Layers      int     `yaml:"layers"`       // количество слоев снизу вверх
	BaseLevel   int     `yaml:"base_level"`   // уровень верха нижнего слоя
	LayerHeight int     `yaml:"layer_height"` // вертикальный шаг между слоями
	LayerShrink float64 `yaml:"layer_shrink"` // множитель размера каждого следующего слоя
}

// PillarConfig задает параметры опор
type PillarConfig struct {
	EdgeDistance int `yaml:"edge_distance"` // удаление точек крепления от края
	Spacing      int `yaml:"spacing"`       // шаг прореживания вдоль периметра
	Radius       int `yaml:"radius"`
}

// BuildingConfig задает пределы размеров зданий
type BuildingConfig struct {
	MinWidth  int `yaml:"min_width"` // в клетках огрубленной сетки упаковки
	MinDepth  int `yaml:"min_depth"`
	MaxWidth  int `yaml:"max_width"`
	MaxDepth  int `yaml:"max_depth"`
	MinHeight int `yaml:"min_height"` // в блоках
	MaxHeight int `yaml:"max_height"`
}

// OutputConfig задает путь сохранения мира
type OutputConfig struct {
	Path string `yaml:"path"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		World: WorldConfig{MinZ: -64, MaxZ: 512},
		City: CityConfig{
			Size:        48.0,
			Layers:      3,
			BaseLevel:   48,
			LayerHeight: 64,
			LayerShrink: 0.6,
		},
		Pillars: PillarConfig{
			EdgeDistance: 12,
			Spacing:      32,
			Radius:       3,
		},
		Buildings: BuildingConfig{
			MinWidth:  2,
			MinDepth:  3,
			MaxWidth:  7,
			MaxDepth:  5,
			MinHeight: 9,
			MaxHeight: 40,
		},
		Output: OutputConfig{Path: "./output"},
	}
}

// GetOutputPath возвращает путь вывода с приоритетом: config -> env -> default
func (o *OutputConfig) GetOutputPath() string {
	if o.Path != "" {
		return o.Path
	}
	if envVal := os.Getenv("GEN_OUTPUT_PATH"); envVal != "" {
		return envVal
	}
	return "./output"
}

// GetLayers возвращает количество слоев с поддержкой fallback значений
func (c *CityConfig) GetLayers() int {
	if c.Layers > 0 {
		return c.Layers
	}
	if envVal := os.Getenv("GEN_CITY_LAYERS"); envVal != "" {
		if n, err := strconv.Atoi(envVal); err == nil && n > 0 {
			return n
		}
	}
	return 3
}

// Validate проверяет согласованность конфигурации.
// Нарушение предусловия фатально: значения не подправляются молча.
func (c *Config) Validate() error {
	if c.World.MinZ >= c.World.MaxZ {
		return fmt.Errorf("config: min_z %d не меньше max_z %d", c.World.MinZ, c.World.MaxZ)
	}
	if c.City.Size < 1.0 {
		return fmt.Errorf("config: размер города %v меньше 1", c.City.Size)
	}
	if c.City.GetLayers() < 1 {
		return fmt.Errorf("config: города без слоев не бывает")
	}
	if c.City.LayerShrink <= 0 || c.City.LayerShrink > 1 {
		return fmt.Errorf("config: layer_shrink %v вне (0, 1]", c.City.LayerShrink)
	}
	if c.Buildings.MinWidth < 1 || c.Buildings.MinDepth < 1 ||
		c.Buildings.MaxWidth < c.Buildings.MinWidth || c.Buildings.MaxDepth < c.Buildings.MinDepth {
		return fmt.Errorf("config: некорректные пределы размеров зданий")
	}
	if c.Buildings.MinHeight < 1 || c.Buildings.MaxHeight < c.Buildings.MinHeight {
		return fmt.Errorf("config: некорректные пределы высоты зданий")
	}
	if c.Pillars.Spacing < 1 || c.Pillars.Radius < 1 || c.Pillars.EdgeDistance < 0 {
		return fmt.Errorf("config: некорректные параметры опор")
	}
	return nil
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV GEN_CONFIG или возвращает дефолты.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("GEN_CONFIG")
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
