package main

import (
	"flag"
	"log"
	"time"

	"github.com/annel0/voxel-city/internal/config"
	"github.com/annel0/voxel-city/internal/gen"
	"github.com/annel0/voxel-city/internal/logging"
	"github.com/annel0/voxel-city/internal/storage"
	"github.com/annel0/voxel-city/internal/util"
	"github.com/annel0/voxel-city/internal/vec"
	"github.com/annel0/voxel-city/internal/world"
)

func main() {
	seedFlag := flag.Int64("seed", 0, "сид генерации")
	configFlag := flag.String("config", "", "путь к YAML конфигурации")
	outFlag := flag.String("out", "", "каталог вывода (перекрывает конфиг)")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitLogger(); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseLogger()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		logging.LogError("❌ Ошибка загрузки конфигурации: %v", err)
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logging.LogError("❌ Некорректная конфигурация: %v", err)
		log.Fatalf("❌ Некорректная конфигурация: %v", err)
	}

	outputPath := cfg.Output.GetOutputPath()
	if *outFlag != "" {
		outputPath = *outFlag
	}

	logging.LogInfo("🏙 Запуск генератора, сид=%d, вывод=%s", *seedFlag, outputPath)

	started := time.Now()
	generator, err := gen.NewGenerator(*seedFlag, cityParams(cfg))
	if err != nil {
		logging.LogError("❌ Ошибка генерации города: %v", err)
		log.Fatalf("❌ Ошибка генерации города: %v", err)
	}

	for i, layer := range generator.City().Layers() {
		logging.LogLayerGenerated(i, layer.Landmass().Shape().Len(), layer.PillarCount(), layer.BuildingCount())
	}
	if bounds, ok := generator.Bounds(); ok {
		logging.LogInfo("Габариты мира: %v .. %v", bounds.Min, bounds.Max)
	}

	data := world.NewWorldData()
	renderWorld(generator, data, cfg.World.MinZ, cfg.World.MaxZ)
	logging.LogInfo("Сгенерировано %d блоков в %d чанках за %v",
		data.Len(), data.ChunkCount(), time.Since(started).Round(time.Millisecond))

	store, err := storage.NewWorldStorage(outputPath)
	if err != nil {
		logging.LogError("❌ Ошибка открытия хранилища: %v", err)
		log.Fatalf("❌ Ошибка открытия хранилища: %v", err)
	}
	defer store.Close()

	meta, err := store.SaveWorld(data, *seedFlag)
	if err != nil {
		logging.LogError("❌ Ошибка сохранения мира: %v", err)
		log.Fatalf("❌ Ошибка сохранения мира: %v", err)
	}
	logging.LogInfo("✅ Мир сохранен: id=%s, палитра из %d материалов", meta.ID, len(meta.Palette))
}

func cityParams(cfg *config.Config) gen.CityParams {
	return gen.CityParams{
		Size:        cfg.City.Size,
		Layers:      cfg.City.GetLayers(),
		BaseLevel:   cfg.City.BaseLevel,
		LayerHeight: cfg.City.LayerHeight,
		LayerShrink: cfg.City.LayerShrink,
		WorldMinZ:   cfg.World.MinZ,
		Pillars: gen.PillarParams{
			EdgeDistance: cfg.Pillars.EdgeDistance,
			Spacing:      cfg.Pillars.Spacing,
			Radius:       cfg.Pillars.Radius,
		},
		Buildings: gen.BuildingParams{
			Bounds: gen.BuildingBounds{
				MinWidth: cfg.Buildings.MinWidth,
				MinDepth: cfg.Buildings.MinDepth,
				MaxWidth: cfg.Buildings.MaxWidth,
				MaxDepth: cfg.Buildings.MaxDepth,
			},
			MinHeight: cfg.Buildings.MinHeight,
			MaxHeight: cfg.Buildings.MaxHeight,
		},
	}
}

// renderWorld обходит чанки кольцами от центра наружу и заполняет
// буфер. Первое кольцо, не задевшее след мира, завершает обход.
func renderWorld(generator *gen.Generator, data *world.WorldData, minZ, maxZ int) {
	for n := 0; ; n++ {
		touched := false
		for _, chunkPos := range util.Ring(n) {
			if !generator.ChunkExists(chunkPos) {
				continue
			}
			touched = true
			renderChunk(generator, data, chunkPos, minZ, maxZ)
		}
		if !touched {
			break
		}
	}
}

// renderChunk заполняет один столбец чанков 16x16 на всю высоту мира
func renderChunk(generator *gen.Generator, data *world.WorldData, chunkPos vec.Vec2, minZ, maxZ int) {
	count := 0
	for z := minZ; z <= maxZ; z++ {
		for x := 0; x < world.ChunkSize; x++ {
			for y := 0; y < world.ChunkSize; y++ {
				pos := vec.Vec3{
					X: chunkPos.X*world.ChunkSize + x,
					Y: chunkPos.Y*world.ChunkSize + y,
					Z: z,
				}
				if mat, ok := generator.BlockAt(pos); ok {
					data.ReceiveBlock(pos, mat)
					count++
				}
			}
		}
	}
	logging.LogChunkGenerated(chunkPos.X, chunkPos.Y, 0, count)
}
