package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcomes recorded for a store operation
const (
	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// StoreMetrics exposes counters/histograms for record store calls.
type StoreMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationLatency  *prometheus.HistogramVec
	batchFailureTotal *prometheus.CounterVec
	noticesTotal      *prometheus.CounterVec
}

func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	m := &StoreMetrics{
		operationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "registry",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total record store operations",
		}, []string{"entity", "operation", "outcome"}),
		operationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "registry",
			Subsystem: "store",
			Name:      "operation_latency_seconds",
			Help:      "Latency of record store operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"entity", "operation"}),
		batchFailureTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "registry",
			Subsystem: "store",
			Name:      "batch_record_failures_total",
			Help:      "Records rejected inside otherwise accepted batch writes",
		}, []string{"entity"}),
		noticesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "registry",
			Subsystem: "notices",
			Name:      "published_total",
			Help:      "Total user-facing notices published",
		}, []string{"level"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.operationsTotal, m.operationLatency, m.batchFailureTotal, m.noticesTotal)
	return m
}

func (m *StoreMetrics) ObserveOperation(entity, operation, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.operationsTotal.WithLabelValues(entity, operation, outcome).Inc()
	m.operationLatency.WithLabelValues(entity, operation).Observe(seconds)
}

func (m *StoreMetrics) ObserveBatchFailures(entity string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.batchFailureTotal.WithLabelValues(entity).Add(float64(count))
}

func (m *StoreMetrics) ObserveNotice(level string) {
	if m == nil {
		return
	}
	m.noticesTotal.WithLabelValues(level).Inc()
}
