package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Конфигурация по умолчанию должна быть валидной: %v", err)
	}
	if cfg.City.Size != 48.0 {
		t.Errorf("Размер города по умолчанию 48, получено %v", cfg.City.Size)
	}
	if cfg.Pillars.EdgeDistance != 12 || cfg.Pillars.Spacing != 32 || cfg.Pillars.Radius != 3 {
		t.Errorf("Неожиданные параметры опор по умолчанию: %+v", cfg.Pillars)
	}
}

func TestLoadMissingPathGivesDefaults(t *testing.T) {
	os.Unsetenv("GEN_CONFIG")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Пустой путь не должен быть ошибкой: %v", err)
	}
	if cfg.World.MinZ != -64 || cfg.World.MaxZ != 512 {
		t.Errorf("Ожидались дефолтные границы мира, получено %+v", cfg.World)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yml")
	content := []byte(`
world:
  min_z: -32
  max_z: 256
city:
  size: 16.0
  layers: 2
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Не удалось записать конфиг: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}
	if cfg.World.MinZ != -32 || cfg.World.MaxZ != 256 {
		t.Errorf("YAML должен перекрыть границы мира, получено %+v", cfg.World)
	}
	if cfg.City.Size != 16.0 || cfg.City.GetLayers() != 2 {
		t.Errorf("YAML должен перекрыть город, получено %+v", cfg.City)
	}
	// Не указанные секции остаются дефолтными
	if cfg.Pillars.Radius != 3 {
		t.Errorf("Неуказанная секция хранит дефолт, получено %+v", cfg.Pillars)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yml")
	content := []byte(`
world:
  min_z: 100
  max_z: 50
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Не удалось записать конфиг: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("min_z >= max_z должен быть отклонен")
	}
}

func TestValidateCatchesBadBuildings(t *testing.T) {
	cfg := Default()
	cfg.Buildings.MaxWidth = 1
	cfg.Buildings.MinWidth = 4
	if err := cfg.Validate(); err == nil {
		t.Error("Max меньше Min должен быть отклонен")
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("Несуществующий файл — ошибка, а не дефолты")
	}
}
