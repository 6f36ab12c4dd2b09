package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus mirrors of the stats counters, labelled by resource type where
// that makes sense. Registered once on the default registry so tests can
// create as many stores as they want.
var (
	metricHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tabela",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Number of cache reads served from a fresh entry.",
	}, []string{"resource"})

	metricMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tabela",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Number of cache reads that required an upstream fetch.",
	}, []string{"resource"})

	metricStaleHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tabela",
		Subsystem: "cache",
		Name:      "stale_hits_total",
		Help:      "Number of cache reads that found a resident but expired entry.",
	})

	metricSets = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tabela",
		Subsystem: "cache",
		Name:      "sets_total",
		Help:      "Number of cache writes.",
	})

	metricEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tabela",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Number of entries evicted to stay under capacity.",
	})

	metricSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "tabela",
		Subsystem: "cache",
		Name:      "entries",
		Help:      "Current number of cache entries.",
	})
)
