package category

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/vendorcache/internal/domain"
	"github.com/Gunvolt24/vendorcache/internal/ports"
	"github.com/Gunvolt24/vendorcache/pkg/metrics"
)

// Проверка, что Cache удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.CategoryCache = (*Cache)(nil)

const (
	// DefaultTTL — время жизни раздела с момента последней успешной загрузки.
	DefaultTTL = 30 * time.Minute

	// SnapshotKey — ключ персистентного снапшота каталога (все разделы + lastFetched).
	SnapshotKey = "catalog"
)

type entry struct {
	items     domain.CategoryItems
	fetchedAt time.Time
}

// Cache — per-category TTL-кэш поверх StorageGuard.
// В памяти лежит авторитетная копия на текущую сессию; диск — только
// долговечность между перезапусками. Отказ записи на диск не ломает сессию.
type Cache struct {
	ttl   time.Duration
	guard ports.StorageGuard
	log   ports.Logger

	// now подменяется в тестах на детерминированные часы.
	now func() time.Time

	mu      sync.Mutex
	entries map[domain.Category]entry
}

// New — конструктор; ttl <= 0 заменяется на DefaultTTL.
func New(guard ports.StorageGuard, ttl time.Duration, log ports.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		guard:   guard,
		log:     log,
		now:     time.Now,
		entries: make(map[domain.Category]entry),
	}
}

// Get — записи раздела, только если он Fresh (возраст < TTL).
// Отсутствие записи — вырожденный Stale. Fresh→Stale происходит только временем;
// Stale→Fresh — только через Put после успешной загрузки.
func (c *Cache) Get(cat domain.Category) (domain.CategoryItems, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[cat]
	if !ok {
		metrics.CacheOps.WithLabelValues(cat.String(), "miss").Inc()
		return domain.CategoryItems{}, false
	}
	if c.now().Sub(e.fetchedAt) >= c.ttl {
		metrics.CacheOps.WithLabelValues(cat.String(), "stale").Inc()
		return domain.CategoryItems{}, false
	}
	metrics.CacheOps.WithLabelValues(cat.String(), "hit").Inc()
	return cloneItems(e.items), true
}

// Put — зафиксировать успешную загрузку раздела.
// fetchedAt — момент завершения загрузки (staleness считается консервативно).
// Пустой набор — валидное Fresh-состояние: «в регионе нет вендоров» ≠ «загрузка упала».
func (c *Cache) Put(cat domain.Category, items domain.CategoryItems, fetchedAt time.Time) {
	c.mu.Lock()
	c.entries[cat] = entry{items: cloneItems(items), fetchedAt: fetchedAt}
	snap := c.persistedLocked()
	c.mu.Unlock()

	metrics.CacheOps.WithLabelValues(cat.String(), "refresh").Inc()

	// Запись через Guard; отказ — не ошибка для вызывающего, сессия едет на памяти.
	if res := c.guard.Write(SnapshotKey, snap); !res.OK {
		metrics.CacheOps.WithLabelValues(cat.String(), "memory_only").Inc()
		c.log.Warnf(context.Background(), "catalog snapshot not persisted category=%s reason=%s", cat, res.Reason)
	}
}

// LastFetched — время последней успешной загрузки раздела.
func (c *Cache) LastFetched(cat domain.Category) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[cat]
	if !ok {
		return time.Time{}, false
	}
	return e.fetchedAt, true
}

// Reset — сброс всех разделов; следующий Get по любому разделу — Stale.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[domain.Category]entry)
}

// Restore — подъём персистентного снапшота в память (при старте сервиса).
// Метки lastFetched восстанавливаются, так что TTL действует и через перезапуск.
func (c *Cache) Restore(ctx context.Context) int {
	var snap persistedSnapshot
	if !c.guard.Read(SnapshotKey, &snap) {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	restored := 0
	for _, cat := range domain.Categories() {
		ms, ok := snap.LastFetched[cat]
		if !ok || ms <= 0 {
			continue
		}
		c.entries[cat] = entry{
			items:     snap.itemsFor(cat),
			fetchedAt: time.UnixMilli(ms),
		}
		restored++
	}
	if restored > 0 {
		c.log.Infof(ctx, "catalog cache restored categories=%d", restored)
	}
	return restored
}
