package pricecache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики кэша: hit rate и частота деградаций — главные показатели работоспособности сервиса.
var (
	cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coincache",
			Name:      "cache_hits_total",
			Help:      "Requests served from the store without an upstream call",
		},
		[]string{"kind"},
	)

	cacheRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coincache",
			Name:      "cache_refreshes_total",
			Help:      "Upstream fetches triggered by a miss or an expired entry",
		},
		[]string{"kind"},
	)

	cacheStaleServes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coincache",
			Name:      "cache_stale_serves_total",
			Help:      "Expired entries served because the upstream failed",
		},
		[]string{"kind"},
	)

	cacheUpstreamErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coincache",
			Name:      "cache_upstream_errors_total",
			Help:      "Failed upstream fetches",
		},
		[]string{"kind"},
	)
)
