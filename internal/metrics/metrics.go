// Package metrics exposes the prometheus collectors a management/HTTP
// front-end (out of scope, §1) would scrape: asset counts, cache hit/miss,
// router upstream selection, and cache-directory disk usage — the "live
// counters" §3's Supplemented-features note carries over from the
// original's management.cpp.
//
// Grounded on the teacher's metrics/metrics.go: package-level promauto
// vars, one per concern, no wrapping struct.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AssetsByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "bithorded_assets_by_status",
		Help: "Number of live assets by status",
	},
	[]string{"status"},
)

var CacheDiskUsageBytes = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "bithorded_cache_disk_usage_bytes",
		Help: "Total bytes currently occupied by cached assets",
	},
)

var CacheHitTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "bithorded_cache_hit_total",
		Help: "Requests served from an already-hashed cached copy",
	},
)

var CacheMissTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "bithorded_cache_miss_total",
		Help: "Requests that fell through to a forwarded, write-through read",
	},
)

var CacheEvictionTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "bithorded_cache_eviction_total",
		Help: "Assets evicted by make_room to free space for a new upload",
	},
)

var RouterUpstreamOpenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bithorded_router_upstream_open_total",
		Help: "Upstream bindings opened on a connected friend, by peer",
	},
	[]string{"peer"},
)

var RouterUpstreamDropTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bithorded_router_upstream_drop_total",
		Help: "Upstream bindings dropped, by peer and reason",
	},
	[]string{"peer", "reason"},
)

var RouterBlacklistSizeGauge = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "bithorded_router_blacklist_size",
		Help: "Number of session ids currently blacklisted against routing loops",
	},
)

var RequestBindingActiveGauge = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "bithorded_request_bindings_active",
		Help: "Live RequestBindings by the asset kind they wrap",
	},
	[]string{"kind"},
)

var ReadLatencyHistogram = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "bithorded_read_latency_seconds",
		Help:    "async_read latency from call to callback, by asset kind",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
	},
	[]string{"kind"},
)
