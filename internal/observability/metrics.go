package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "scouting_board"

// BoardMetrics exports formation board activity on a dedicated registry.
type BoardMetrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	persists   *prometheus.CounterVec
	persistDur prometheus.Histogram
}

func NewBoardMetrics() *BoardMetrics {
	registry := prometheus.NewRegistry()
	m := &BoardMetrics{
		registry: registry,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "board",
			Name:      "operations_total",
			Help:      "Formation board operations by kind and result.",
		}, []string{"operation", "result"}),
		persists: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "board",
			Name:      "persist_total",
			Help:      "Formation snapshot writes by result.",
		}, []string{"result"}),
		persistDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "board",
			Name:      "persist_duration_seconds",
			Help:      "Latency of formation snapshot writes.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.operations,
		m.persists,
		m.persistDur,
	)
	return m
}

func (m *BoardMetrics) ObserveBoardOperation(operation, result string) {
	m.operations.WithLabelValues(operation, result).Inc()
}

func (m *BoardMetrics) ObservePersist(result string, duration time.Duration) {
	m.persists.WithLabelValues(result).Inc()
	m.persistDur.Observe(duration.Seconds())
}

func (m *BoardMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *BoardMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
