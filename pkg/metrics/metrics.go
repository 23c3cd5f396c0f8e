// Package metrics provides Prometheus metrics for the dashboard synchronization engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "crc"

// Manager владеет метриками хранилища, симуляции и fan-out
type Manager struct {
	registry *prometheus.Registry

	incidentsPublished *prometheus.CounterVec
	renderOutcomes     *prometheus.CounterVec
	readFallbacks      *prometheus.CounterVec
	writeFailures      *prometheus.CounterVec
}

// NewManager регистрирует метрики в собственном реестре, чтобы тесты не конфликтовали
func NewManager() *Manager {
	reg := prometheus.NewRegistry()
	auto := promauto.With(reg)

	return &Manager{
		registry: reg,
		incidentsPublished: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "incidents_published_total",
			Help:      "Total number of incidents added to the store, by source",
		}, []string{"source"}),
		renderOutcomes: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "coordinator",
			Name:      "render_outcomes_total",
			Help:      "Renderer invocations during fan-out, by renderer and outcome",
		}, []string{"renderer", "outcome"}),
		readFallbacks: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "read_fallbacks_total",
			Help:      "Collections initialized from seed data because persisted data was absent or unreadable",
		}, []string{"collection"}),
		writeFailures: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "write_failures_total",
			Help:      "Rejected persistence writes, by collection",
		}, []string{"collection"}),
	}
}

func (m *Manager) IncidentPublished(source string) {
	m.incidentsPublished.WithLabelValues(source).Inc()
}

func (m *Manager) RenderOutcome(renderer, outcome string) {
	m.renderOutcomes.WithLabelValues(renderer, outcome).Inc()
}

func (m *Manager) PersistenceReadFallback(collection string) {
	m.readFallbacks.WithLabelValues(collection).Inc()
}

func (m *Manager) PersistenceWriteFailed(collection string) {
	m.writeFailures.WithLabelValues(collection).Inc()
}

// Registry возвращает реестр для тестов и экспорта
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler отдает метрики в формате Prometheus
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
