package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/vec"
	"github.com/annel0/voxel-city/internal/world"
)

// WorldStorage представляет собой хранилище сгенерированного мира.
// Чанки хранятся в BadgerDB по ключу координат, содержимое сжимается
// zstd, метаданные мира лежат отдельной JSON записью.
type WorldStorage struct {
	db           *badger.DB
	dbPath       string
	compressor   *zstd.Encoder
	decompressor *zstd.Decoder
	mutex        sync.RWMutex
	isReady      bool
}

// WorldMeta содержит метаданные сохраненного мира
type WorldMeta struct {
	ID        uuid.UUID        `json:"id"`
	Seed      int64            `json:"seed"`
	CreatedAt time.Time        `json:"created_at"`
	MinPos    vec.Vec3         `json:"min_pos"`
	MaxPos    vec.Vec3         `json:"max_pos"`
	Palette   []block.Material `json:"palette"`
}

var metaKey = []byte("meta")

// NewWorldStorage создает новое хранилище мира
func NewWorldStorage(dataPath string) (*WorldStorage, error) {
	dbPath := filepath.Join(dataPath, "world")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	compressor, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось создать zstd компрессор: %w", err)
	}
	decompressor, err := zstd.NewReader(nil)
	if err != nil {
		compressor.Close()
		db.Close()
		return nil, fmt.Errorf("не удалось создать zstd декомпрессор: %w", err)
	}

	return &WorldStorage{
		db:           db,
		dbPath:       dbPath,
		compressor:   compressor,
		decompressor: decompressor,
		isReady:      true,
	}, nil
}

// Close закрывает хранилище данных
func (ws *WorldStorage) Close() error {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	if !ws.isReady {
		return nil
	}

	ws.isReady = false
	ws.compressor.Close()
	ws.decompressor.Close()
	return ws.db.Close()
}

// chunkKey упаковывает координаты чанка в ключ BadgerDB
func chunkKey(coords vec.Vec3) []byte {
	key := make([]byte, 1+3*8)
	key[0] = 'c'
	binary.BigEndian.PutUint64(key[1:], uint64(int64(coords.X)))
	binary.BigEndian.PutUint64(key[9:], uint64(int64(coords.Y)))
	binary.BigEndian.PutUint64(key[17:], uint64(int64(coords.Z)))
	return key
}

// encodeChunk сериализует ячейки чанка и сжимает их zstd
func (ws *WorldStorage) encodeChunk(chunk *world.Chunk) []byte {
	cells := chunk.Cells()
	raw := make([]byte, len(cells)*2)
	for i, v := range cells {
		binary.LittleEndian.PutUint16(raw[i*2:], v)
	}
	return ws.compressor.EncodeAll(raw, nil)
}

// decodeChunk распаковывает содержимое чанка
func (ws *WorldStorage) decodeChunk(coords vec.Vec3, data []byte) (*world.Chunk, error) {
	raw, err := ws.decompressor.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("не удалось распаковать чанк %v: %w", coords, err)
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("повреждены данные чанка %v: %d байт", coords, len(raw))
	}
	cells := make([]uint16, len(raw)/2)
	for i := range cells {
		cells[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	chunk := world.NewChunk(coords)
	chunk.LoadCells(cells)
	return chunk, nil
}

// SaveWorld сохраняет весь буфер мира одной операцией:
// все чанки и метаданные с палитрой.
func (ws *WorldStorage) SaveWorld(data *world.WorldData, seed int64) (WorldMeta, error) {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	if !ws.isReady {
		return WorldMeta{}, fmt.Errorf("хранилище не готово")
	}

	meta := WorldMeta{
		ID:        uuid.New(),
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
		Palette:   data.Palette().Materials(),
	}
	if bounds, ok := data.Bounds(); ok {
		meta.MinPos = bounds.Min
		meta.MaxPos = bounds.Max
	}

	wb := ws.db.NewWriteBatch()
	defer wb.Cancel()

	var saveErr error
	data.EachChunk(func(chunk *world.Chunk) {
		if saveErr != nil {
			return
		}
		saveErr = wb.Set(chunkKey(chunk.Coords), ws.encodeChunk(chunk))
	})
	if saveErr != nil {
		return WorldMeta{}, fmt.Errorf("не удалось записать чанки: %w", saveErr)
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return WorldMeta{}, fmt.Errorf("не удалось сериализовать метаданные: %w", err)
	}
	if err := wb.Set(metaKey, metaJSON); err != nil {
		return WorldMeta{}, err
	}

	if err := wb.Flush(); err != nil {
		return WorldMeta{}, fmt.Errorf("не удалось сохранить мир: %w", err)
	}
	return meta, nil
}

// LoadMeta читает метаданные сохраненного мира
func (ws *WorldStorage) LoadMeta() (WorldMeta, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	var meta WorldMeta
	err := ws.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &meta)
		})
	})
	if err != nil {
		return WorldMeta{}, fmt.Errorf("не удалось прочитать метаданные: %w", err)
	}
	return meta, nil
}

// LoadChunk читает один чанк; false — чанк не сохранялся
func (ws *WorldStorage) LoadChunk(coords vec.Vec3) (*world.Chunk, bool, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	var chunk *world.Chunk
	err := ws.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chunkKey(coords))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var decodeErr error
			chunk, decodeErr = ws.decodeChunk(coords, val)
			return decodeErr
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return chunk, true, nil
}
