package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_operations_total",
			Help: "Category cache operations",
		},
		[]string{"category", "op"}, // hit|miss|stale|refresh|memory_only
	)
	FetchOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetch_total",
			Help: "Remote catalog fetches per category",
		},
		[]string{"category", "result"}, // ok|error|timeout
	)
)

var (
	StorageOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_operations_total",
			Help: "Storage guard operations",
		},
		[]string{"op"}, // write_ok|write_rejected|read_fallback|clear
	)
	StorageUsedBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storage_used_bytes",
			Help: "Approximate bytes used by namespaced storage keys",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрация коллекторов; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(CacheOps, FetchOps, StorageOps, StorageUsedBytes)
	})
}
