package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the closet service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	outfitBuckets    []float64
	enabled          bool
	registry         prometheus.Registerer

	// Engine metrics
	queries         *prometheus.CounterVec
	queryLatency    *prometheus.HistogramVec
	itemMutations   *prometheus.CounterVec
	itemsTotal      prometheus.Gauge
	recommendations prometheus.Histogram

	// Wear pipeline
	wearAccepted   prometheus.Counter
	wearDuplicate  prometheus.Counter
	wearApplied    prometheus.Counter
	wearFailed     prometheus.Counter
	wearLatency    prometheus.Histogram
	queueSize      prometheus.Gauge
	queueCapacity  prometheus.Gauge
	queueEnqueued  prometheus.Counter
	queueDequeued  prometheus.Counter
	queueRejected  prometheus.Counter
	workerCount    prometheus.Gauge
	repositoryOps  *prometheus.HistogramVec
	repositorySize prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	errorsByComponent *prometheus.CounterVec

	// Runtime
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Configure replaces the manager behind the package-level helpers with one
// built from opts on a fresh registry. Call it once at startup, before
// GetRegistry is handed to an exporter.
func Configure(opts ...Option) {
	customRegistry = prometheus.NewRegistry()
	globalManager = NewManager(append(opts[:len(opts):len(opts)], WithPrometheusRegistry(customRegistry))...)
}

// DefaultLatencyBuckets returns the millisecond buckets used for latency
// histograms.
func DefaultLatencyBuckets() []float64 {
	return []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250}
}

// DefaultOutfitBuckets returns the buckets of the outfits-per-request histogram.
func DefaultOutfitBuckets() []float64 {
	return []float64{0, 1, 2, 3, 5, 10, 20, 50}
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "closet",
		subsystem:        "wardrobe",
		histogramBuckets: DefaultLatencyBuckets(),
		outfitBuckets:    DefaultOutfitBuckets(),
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.queries = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queries_total",
		Help:      "Total number of engine queries by operation",
	}, []string{"operation"})

	m.queryLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "query_latency_milliseconds",
		Help:      "Engine query latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"operation"})

	m.itemMutations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "item_mutations_total",
		Help:      "Total number of item additions, updates and removals",
	}, []string{"operation"})

	m.itemsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "items_total",
		Help:      "Number of items in the wardrobe",
	})

	m.recommendations = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendations_per_request",
		Help:      "Outfits returned per recommendation request",
		Buckets:   m.outfitBuckets,
	})

	m.wearAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "wear",
		Name:      "events_accepted_total",
		Help:      "Wear events accepted for processing",
	})

	m.wearDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "wear",
		Name:      "events_duplicate_total",
		Help:      "Wear events dropped as duplicates",
	})

	m.wearApplied = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "wear",
		Name:      "events_applied_total",
		Help:      "Wear events applied to an item",
	})

	m.wearFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "wear",
		Name:      "events_failed_total",
		Help:      "Wear events that could not be applied",
	})

	m.wearLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "wear",
		Name:      "processing_latency_milliseconds",
		Help:      "Time spent applying one wear event",
		Buckets:   m.histogramBuckets,
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "queue",
		Name:      "size",
		Help:      "Current number of wear events waiting in the queue",
	})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "queue",
		Name:      "capacity",
		Help:      "Wear event queue capacity",
	})

	m.queueEnqueued = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "queue",
		Name:      "enqueued_total",
		Help:      "Wear events enqueued",
	})

	m.queueDequeued = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "queue",
		Name:      "dequeued_total",
		Help:      "Wear events dequeued by workers",
	})

	m.queueRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "queue",
		Name:      "enqueue_errors_total",
		Help:      "Wear events rejected because the queue was full or closed",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "worker",
		Name:      "count",
		Help:      "Number of running wear workers",
	})

	m.repositoryOps = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "repository",
		Name:      "operation_latency_milliseconds",
		Help:      "Repository operation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"operation"})

	m.repositorySize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "repository",
		Name:      "records_total",
		Help:      "Number of items held by the repository",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Errors by component and type",
	}, []string{"component", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "Heap memory in use in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// RecordQuery counts one engine query and its latency.
func (m *Manager) RecordQuery(operation string, latencyMs float64) {
	if !m.enabled {
		return
	}
	m.queries.WithLabelValues(operation).Inc()
	m.queryLatency.WithLabelValues(operation).Observe(latencyMs)
}

// RecordItemMutation counts an add, update or remove.
func (m *Manager) RecordItemMutation(operation string) {
	if !m.enabled {
		return
	}
	m.itemMutations.WithLabelValues(operation).Inc()
}

// UpdateItemsTotal sets the wardrobe size.
func (m *Manager) UpdateItemsTotal(count int) {
	if !m.enabled {
		return
	}
	m.itemsTotal.Set(float64(count))
}

// RecordRecommendations observes how many outfits one request produced.
func (m *Manager) RecordRecommendations(count int) {
	if !m.enabled {
		return
	}
	m.recommendations.Observe(float64(count))
}

// RecordWearEventAccepted counts a wear event accepted for processing.
func (m *Manager) RecordWearEventAccepted() {
	if m.enabled {
		m.wearAccepted.Inc()
	}
}

// RecordWearEventDuplicate counts a duplicate wear event.
func (m *Manager) RecordWearEventDuplicate() {
	if m.enabled {
		m.wearDuplicate.Inc()
	}
}

// RecordWearEventApplied counts a wear event applied to an item.
func (m *Manager) RecordWearEventApplied(latencyMs float64) {
	if !m.enabled {
		return
	}
	m.wearApplied.Inc()
	m.wearLatency.Observe(latencyMs)
}

// RecordWearEventFailed counts a wear event that could not be applied.
func (m *Manager) RecordWearEventFailed() {
	if m.enabled {
		m.wearFailed.Inc()
	}
}

// UpdateQueueSize sets the current queue size.
func (m *Manager) UpdateQueueSize(size int) {
	if m.enabled {
		m.queueSize.Set(float64(size))
	}
}

// UpdateQueueCapacity sets the queue capacity.
func (m *Manager) UpdateQueueCapacity(capacity int) {
	if m.enabled {
		m.queueCapacity.Set(float64(capacity))
	}
}

// RecordQueueEnqueue counts an enqueued event.
func (m *Manager) RecordQueueEnqueue() {
	if m.enabled {
		m.queueEnqueued.Inc()
	}
}

// RecordQueueDequeue counts a dequeued event.
func (m *Manager) RecordQueueDequeue() {
	if m.enabled {
		m.queueDequeued.Inc()
	}
}

// RecordQueueEnqueueError counts a rejected enqueue.
func (m *Manager) RecordQueueEnqueueError() {
	if m.enabled {
		m.queueRejected.Inc()
	}
}

// UpdateWorkerCount sets the number of running workers.
func (m *Manager) UpdateWorkerCount(count int) {
	if m.enabled {
		m.workerCount.Set(float64(count))
	}
}

// RecordRepositoryLatency observes one repository operation.
func (m *Manager) RecordRepositoryLatency(operation string, latencyMs float64) {
	if m.enabled {
		m.repositoryOps.WithLabelValues(operation).Observe(latencyMs)
	}
}

// UpdateRepositoryRecordsTotal sets the number of stored items.
func (m *Manager) UpdateRepositoryRecordsTotal(count int) {
	if m.enabled {
		m.repositorySize.Set(float64(count))
	}
}

// RecordHTTPRequest records an HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string) {
	if m.enabled {
		m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func (m *Manager) RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if m.enabled {
		m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
	}
}

// RecordErrorByComponent counts an error raised by component.
func (m *Manager) RecordErrorByComponent(component, errorType string) {
	if m.enabled {
		m.errorsByComponent.WithLabelValues(component, errorType).Inc()
	}
}

// UpdateSystemMemoryUsage sets heap memory in use.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) {
	if m.enabled {
		m.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the goroutine count.
func (m *Manager) UpdateSystemGoroutineCount(count int) {
	if m.enabled {
		m.systemGoroutineCount.Set(float64(count))
	}
}

// RecordSystemGCPauseTime observes a GC pause.
func (m *Manager) RecordSystemGCPauseTime(pauseMs float64) {
	if m.enabled {
		m.systemGCPauseTime.Observe(pauseMs)
	}
}

// Package-level helpers backed by the global manager.

// RecordQuery counts one engine query and its latency.
func RecordQuery(operation string, latencyMs float64) { globalManager.RecordQuery(operation, latencyMs) }

// RecordItemMutation counts an add, update or remove.
func RecordItemMutation(operation string) { globalManager.RecordItemMutation(operation) }

// UpdateItemsTotal sets the wardrobe size.
func UpdateItemsTotal(count int) { globalManager.UpdateItemsTotal(count) }

// RecordRecommendations observes how many outfits one request produced.
func RecordRecommendations(count int) { globalManager.RecordRecommendations(count) }

// RecordWearEventAccepted counts a wear event accepted for processing.
func RecordWearEventAccepted() { globalManager.RecordWearEventAccepted() }

// RecordWearEventDuplicate counts a duplicate wear event.
func RecordWearEventDuplicate() { globalManager.RecordWearEventDuplicate() }

// RecordWearEventApplied counts a wear event applied to an item.
func RecordWearEventApplied(latencyMs float64) { globalManager.RecordWearEventApplied(latencyMs) }

// RecordWearEventFailed counts a wear event that could not be applied.
func RecordWearEventFailed() { globalManager.RecordWearEventFailed() }

// UpdateQueueSize sets the current queue size.
func UpdateQueueSize(size int) { globalManager.UpdateQueueSize(size) }

// UpdateQueueCapacity sets the queue capacity.
func UpdateQueueCapacity(capacity int) { globalManager.UpdateQueueCapacity(capacity) }

// RecordQueueEnqueue counts an enqueued event.
func RecordQueueEnqueue() { globalManager.RecordQueueEnqueue() }

// RecordQueueDequeue counts a dequeued event.
func RecordQueueDequeue() { globalManager.RecordQueueDequeue() }

// RecordQueueEnqueueError counts a rejected enqueue.
func RecordQueueEnqueueError() { globalManager.RecordQueueEnqueueError() }

// UpdateWorkerCount sets the number of running workers.
func UpdateWorkerCount(count int) { globalManager.UpdateWorkerCount(count) }

// RecordRepositoryLatency observes one repository operation.
func RecordRepositoryLatency(operation string, latencyMs float64) {
	globalManager.RecordRepositoryLatency(operation, latencyMs)
}

// UpdateRepositoryRecordsTotal sets the number of stored items.
func UpdateRepositoryRecordsTotal(count int) { globalManager.UpdateRepositoryRecordsTotal(count) }

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode)
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequestDuration(endpoint, method, statusCode, durationMs)
}

// RecordErrorByComponent counts an error raised by component.
func RecordErrorByComponent(component, errorType string) {
	globalManager.RecordErrorByComponent(component, errorType)
}

// UpdateSystemMemoryUsage sets heap memory in use.
func UpdateSystemMemoryUsage(bytes uint64) { globalManager.UpdateSystemMemoryUsage(bytes) }

// UpdateSystemGoroutineCount sets the goroutine count.
func UpdateSystemGoroutineCount(count int) { globalManager.UpdateSystemGoroutineCount(count) }

// RecordSystemGCPauseTime observes a GC pause.
func RecordSystemGCPauseTime(pauseMs float64) { globalManager.RecordSystemGCPauseTime(pauseMs) }

// GetRegistry returns the registry backing the package-level helpers.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
