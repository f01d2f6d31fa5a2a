package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeesComputedTotal counts fee records computed by source (subscriber, query)
	FeesComputedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fees_computed_total",
			Help: "Total number of transaction fees computed",
		},
		[]string{"source"},
	)

	// CacheLookupsTotal counts read-through lookups by result (lru_hit, store_hit, miss)
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fee_cache_lookups_total",
			Help: "Total number of fee cache lookups by result",
		},
		[]string{"result"},
	)

	// ReceiptAttemptsTotal counts receipt polls by outcome
	ReceiptAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "receipt_attempts_total",
			Help: "Total number of transaction receipt requests",
		},
		[]string{"outcome"},
	)

	// PersistenceWritesTotal counts fee inserts performed by the queue consumer
	PersistenceWritesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fee_persistence_writes_total",
			Help: "Total number of fee records written to storage",
		},
	)

	// PersistenceFailuresTotal counts fee inserts that failed and were dropped
	PersistenceFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fee_persistence_failures_total",
			Help: "Total number of fee records dropped after a failed insert",
		},
	)

	// QueueBacklog tracks items waiting in the persistence queue
	QueueBacklog = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fee_queue_backlog",
			Help: "Number of fee records waiting to be persisted",
		},
	)

	// OracleRequestDuration tracks market-data request latency
	OracleRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oracle_request_duration_seconds",
			Help:    "Market-data request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "status"},
	)

	// SwapPrice tracks the last decoded pool swap price
	SwapPrice = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pool_swap_price",
			Help: "Price of the last swap observed on the watched pool",
		},
	)

	// SwapEventsTotal counts swap logs received from the subscription
	SwapEventsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pool_swap_events_total",
			Help: "Total number of swap logs received",
		},
	)

	// ErrorsTotal counts errors by component and type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watcher_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
