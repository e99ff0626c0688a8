package geom

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/annel0/voxel-city/internal/block"
	"github.com/annel0/voxel-city/internal/vec"
)

// ThreadedUnion — объединение большой коллекции геометрий с параллельной
// оценкой точечных запросов. Общий бокс считается лениво при первом
// обращении и мемоизируется: геометрии неизменяемы после конструирования,
// поэтому гонка первого доступа дает лишь избыточное, но идентичное
// вычисление.
//
// Contains — "совпал хотя бы один ребенок" с ранним выходом; MaterialAt
// возвращает первое совпадение В ПОРЯДКЕ ОБЪЯВЛЕНИЯ: ничья разрешается
// по индексу ребенка, а не по тому, какой воркер закончил раньше.
type ThreadedUnion struct {
	children []MaterialGeometry

	mu          sync.Mutex
	bounds      Box3
	hasBounds   bool
	boundsValid bool
}

// NewThreadedUnion создает параллельное объединение геометрий
func NewThreadedUnion(children ...MaterialGeometry) *ThreadedUnion {
	return &ThreadedUnion{children: children}
}

// Len возвращает количество детей
func (u *ThreadedUnion) Len() int {
	return len(u.children)
}

// Children возвращает дочерние геометрии в порядке объявления
func (u *ThreadedUnion) Children() []MaterialGeometry {
	return u.children
}

// Retain оставляет только детей, для которых keep вернул true, и
// сбрасывает мемоизированный бокс. Единственная разрешенная мутация;
// не должна выполняться одновременно с запросами (§ одиночный писатель).
func (u *ThreadedUnion) Retain(keep func(g MaterialGeometry) bool) {
	filtered := u.children[:0]
	for _, g := range u.children {
		if keep(g) {
			filtered = append(filtered, g)
		}
	}
	u.children = filtered

	u.mu.Lock()
	u.boundsValid = false
	u.mu.Unlock()
}

// Bounds возвращает мемоизированное объединение боксов детей
func (u *ThreadedUnion) Bounds() (Box3, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.boundsValid {
		var acc Box3
		accOK := false
		for _, g := range u.children {
			b, ok := g.Bounds()
			acc, accOK = tryUnion(acc, accOK, b, ok)
		}
		u.bounds, u.hasBounds = acc, accOK
		u.boundsValid = true
	}
	return u.bounds, u.hasBounds
}

// Contains проверяет принадлежность точки хотя бы одному ребенку.
// Точки вне мемоизированного бокса отклоняются за O(1).
func (u *ThreadedUnion) Contains(pos vec.Vec3) bool {
	if bounds, ok := u.Bounds(); !ok || !bounds.Contains(pos) {
		return false
	}

	workers := u.workerCount()
	if workers <= 1 {
		for _, g := range u.children {
			if g.Contains(pos) {
				return true
			}
		}
		return false
	}

	var found atomic.Bool
	var wg sync.WaitGroup
	for _, span := range splitSpans(len(u.children), workers) {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if found.Load() {
					return
				}
				if u.children[i].Contains(pos) {
					found.Store(true)
					return
				}
			}
		}(span[0], span[1])
	}
	wg.Wait()
	return found.Load()
}

// MaterialAt возвращает материал ребенка с наименьшим индексом,
// содержащего точку. Оценка параллельная, результат детерминированный.
func (u *ThreadedUnion) MaterialAt(pos vec.Vec3) (block.Material, bool) {
	if bounds, ok := u.Bounds(); !ok || !bounds.Contains(pos) {
		return block.Material{}, false
	}

	workers := u.workerCount()
	if workers <= 1 {
		for _, g := range u.children {
			if mat, ok := g.MaterialAt(pos); ok {
				return mat, true
			}
		}
		return block.Material{}, false
	}

	// Наименьший индекс совпадения среди всех воркеров; воркеры правее
	// уже найденного индекса прекращают работу досрочно
	best := atomic.Int64{}
	best.Store(int64(len(u.children)))
	materials := make([]block.Material, len(u.children))

	var wg sync.WaitGroup
	for _, span := range splitSpans(len(u.children), workers) {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if int64(i) >= best.Load() {
					return
				}
				if mat, ok := u.children[i].MaterialAt(pos); ok {
					materials[i] = mat
					// Опускаем best до i, если никто не нашел раньше
					for {
						cur := best.Load()
						if int64(i) >= cur || best.CompareAndSwap(cur, int64(i)) {
							break
						}
					}
					return
				}
			}
		}(span[0], span[1])
	}
	wg.Wait()

	if idx := best.Load(); idx < int64(len(u.children)) {
		return materials[idx], true
	}
	return block.Material{}, false
}

func (u *ThreadedUnion) workerCount() int {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(u.children) {
		workers = len(u.children)
	}
	return workers
}

// splitSpans делит n элементов на близкие по размеру диапазоны [lo, hi)
func splitSpans(n, parts int) [][2]int {
	spans := make([][2]int, 0, parts)
	base := n / parts
	rem := n % parts
	lo := 0
	for i := 0; i < parts; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		spans = append(spans, [2]int{lo, lo + size})
		lo += size
	}
	return spans
}
