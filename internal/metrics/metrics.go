package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuotesTotal counts cart tax quotes by jurisdiction.
	QuotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tax_service",
		Name:      "quotes_total",
		Help:      "Number of cart tax quotes computed, by jurisdiction.",
	}, []string{"jurisdiction"})

	// QuoteDuration observes end-to-end quote latency, including catalog
	// lookups.
	QuoteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "tax_service",
		Name:      "quote_duration_seconds",
		Help:      "Time to compute a cart tax quote.",
		Buckets:   prometheus.DefBuckets,
	})

	// CacheHits counts product cache hits.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tax_service",
		Name:      "product_cache_hits_total",
		Help:      "Number of product cache hits.",
	})

	// CacheMisses counts product cache misses.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tax_service",
		Name:      "product_cache_misses_total",
		Help:      "Number of product cache misses.",
	})

	// EventsPublished counts quote events published to Kafka.
	EventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tax_service",
		Name:      "events_published_total",
		Help:      "Number of quote events published.",
	})
)
