package storage

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"github.com/Gunvolt24/vendorcache/internal/domain"
	"github.com/Gunvolt24/vendorcache/internal/ports"
	"github.com/Gunvolt24/vendorcache/pkg/metrics"
)

// Проверка, что Guard удовлетворяет порту приложения.
var _ ports.StorageGuard = (*Guard)(nil)

const (
	// DefaultQuotaBytes — консервативная оценка квоты хранилища (5 MiB).
	DefaultQuotaBytes = 5 << 20
	// DefaultBudgetPercent — мягкий бюджет: доля квоты, выше которой запись отклоняется.
	DefaultBudgetPercent = 80

	probeKey = "__probe__"
)

// Config — параметры Guard.
type Config struct {
	Namespace     string // префикс ключей подсистемы; чужие ключи не трогаем
	QuotaBytes    int64
	BudgetPercent int
}

// Guard — квотируемая обёртка над Backend.
// Все операции безопасны: сериализация до записи, отказ вместо паники,
// прежнее значение ключа целым при любом отказе.
type Guard struct {
	backend   Backend
	namespace string
	quota     int64
	budget    int64
	available bool
	log       ports.Logger

	// mu сериализует read-modify-write учёт места между конкурентными Write.
	mu sync.Mutex
}

// NewGuard — конструктор. Доступность backend определяется здесь один раз
// пробной записью; при недоступности все операции становятся no-op.
func NewGuard(backend Backend, cfg Config, log ports.Logger) *Guard {
	if log == nil {
		log = noopLogger{}
	}
	if cfg.QuotaBytes <= 0 {
		cfg.QuotaBytes = DefaultQuotaBytes
	}
	if cfg.BudgetPercent <= 0 || cfg.BudgetPercent > 100 {
		cfg.BudgetPercent = DefaultBudgetPercent
	}
	g := &Guard{
		backend:   backend,
		namespace: cfg.Namespace,
		quota:     cfg.QuotaBytes,
		budget:    cfg.QuotaBytes * int64(cfg.BudgetPercent) / 100,
		log:       log,
	}
	g.available = g.probe()
	if !g.available {
		log.Warnf(context.Background(), "storage unavailable, persistence disabled")
	}
	return g
}

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// probe — пробная запись/чтение/удаление служебного ключа.
func (g *Guard) probe() bool {
	if g.backend == nil {
		return false
	}
	key := g.prefixed(probeKey)
	if err := g.backend.Set(key, "1"); err != nil {
		return false
	}
	if _, ok := g.backend.Get(key); !ok {
		return false
	}
	return g.backend.Delete(key) == nil
}

func (g *Guard) prefixed(key string) string {
	if g.namespace == "" {
		return key
	}
	return g.namespace + ":" + key
}

// IsAvailable — определено один раз при старте.
func (g *Guard) IsAvailable() bool { return g.available }

// Write — сериализация до записи: при ошибке сериализации или превышении
// мягкого бюджета значение под ключом остаётся прежним.
func (g *Guard) Write(key string, value any) ports.WriteResult {
	if !g.available {
		return ports.WriteResult{OK: false, Reason: ports.WriteRejectUnavailable}
	}

	raw, err := json.Marshal(value)
	if err != nil {
		metrics.StorageOps.WithLabelValues("write_rejected").Inc()
		g.log.Warnf(context.Background(), "storage write rejected key=%s reason=serialize err=%v", key, err)
		return ports.WriteResult{OK: false, Reason: ports.WriteRejectSerialize}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	full := g.prefixed(key)
	projected := g.usageLocked().UsedBytes - g.entrySize(full) + int64(len(full)+len(raw))
	if projected > g.budget {
		metrics.StorageOps.WithLabelValues("write_rejected").Inc()
		g.log.Warnf(context.Background(), "storage write rejected key=%s reason=quota projected=%d budget=%d",
			key, projected, g.budget)
		return ports.WriteResult{OK: false, Reason: ports.WriteRejectQuota}
	}

	if err := g.backend.Set(full, string(raw)); err != nil {
		metrics.StorageOps.WithLabelValues("write_rejected").Inc()
		g.log.Warnf(context.Background(), "storage write failed key=%s err=%v", key, err)
		return ports.WriteResult{OK: false, Reason: ports.WriteRejectQuota}
	}

	metrics.StorageOps.WithLabelValues("write_ok").Inc()
	metrics.StorageUsedBytes.Set(float64(g.usageLocked().UsedBytes))
	return ports.WriteResult{OK: true}
}

// Read — десериализует значение в dst; при отсутствии ключа или битом JSON
// возвращает false, не трогая dst (декод идёт во временное значение).
func (g *Guard) Read(key string, dst any) bool {
	if !g.available || dst == nil {
		return false
	}
	raw, ok := g.backend.Get(g.prefixed(key))
	if !ok {
		return false
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false
	}
	tmp := reflect.New(rv.Type().Elem())
	if err := json.Unmarshal([]byte(raw), tmp.Interface()); err != nil {
		metrics.StorageOps.WithLabelValues("read_fallback").Inc()
		g.log.Warnf(context.Background(), "storage read fallback key=%s err=%v", key, err)
		return false
	}
	rv.Elem().Set(tmp.Elem())
	return true
}

// Delete — удалить ключ подсистемы.
func (g *Guard) Delete(key string) {
	if !g.available {
		return
	}
	_ = g.backend.Delete(g.prefixed(key))
}

// Usage — сводка по ключам подсистемы; приблизительная, но детерминированная
// (одна и та же формула: сумма байтов ключей и значений).
func (g *Guard) Usage() domain.StorageBudgetSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.usageLocked()
}

func (g *Guard) usageLocked() domain.StorageBudgetSnapshot {
	snap := domain.StorageBudgetSnapshot{AvailableBytes: g.quota}
	if !g.available {
		return snap
	}
	keys, err := g.backend.Keys()
	if err != nil {
		return snap
	}
	for _, k := range keys {
		if !g.owns(k) {
			continue
		}
		snap.UsedBytes += g.entrySize(k)
		snap.KeyCount++
	}
	snap.AvailableBytes = g.quota - snap.UsedBytes
	if snap.AvailableBytes < 0 {
		snap.AvailableBytes = 0
	}
	snap.Percentage = float64(snap.UsedBytes) / float64(g.quota) * 100
	return snap
}

func (g *Guard) entrySize(fullKey string) int64 {
	v, ok := g.backend.Get(fullKey)
	if !ok {
		return 0
	}
	return int64(len(fullKey) + len(v))
}

func (g *Guard) owns(fullKey string) bool {
	if g.namespace == "" {
		return true
	}
	return strings.HasPrefix(fullKey, g.namespace+":")
}

// ClearAll — удаляет только ключи своего namespace: хранилище общее на всё
// приложение, чужое состояние трогать нельзя.
func (g *Guard) ClearAll() int {
	if !g.available {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	keys, err := g.backend.Keys()
	if err != nil {
		return 0
	}
	cleared := 0
	for _, k := range keys {
		if !g.owns(k) {
			continue
		}
		if g.backend.Delete(k) == nil {
			cleared++
		}
	}
	metrics.StorageOps.WithLabelValues("clear").Add(float64(cleared))
	metrics.StorageUsedBytes.Set(float64(g.usageLocked().UsedBytes))
	return cleared
}
