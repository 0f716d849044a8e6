package orthology

import (
	"net/http"

	"orth-check/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts reconciliation work in its own registry.
type Metrics struct {
	registry     *prometheus.Registry
	runs         *prometheus.CounterVec
	files        prometheus.Counter
	families     prometheus.Counter
	inconsistent prometheus.Counter
}

// NewMetrics creates and registers the checker's counters.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orthcheck",
			Name:      "runs_total",
			Help:      "Reconciliation runs by source and outcome.",
		}, []string{"source", "outcome"}),
		files: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "orthcheck",
			Name:      "files_processed_total",
			Help:      "Orthology mapping files reconciled.",
		}),
		families: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "orthcheck",
			Name:      "families_total",
			Help:      "Gene families reconciled.",
		}),
		inconsistent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "orthcheck",
			Name:      "inconsistent_families_total",
			Help:      "Gene families with at least one miss-mapped gene.",
		}),
	}
	m.registry.MustRegister(m.runs, m.files, m.families, m.inconsistent)
	return m
}

// ObserveFile records one reconciled file.
func (m *Metrics) ObserveFile(r *reconcile.FileReport) {
	if m == nil {
		return
	}
	m.files.Inc()
	m.families.Add(float64(r.TotalFamilies))
	m.inconsistent.Add(float64(r.InconsistentFamilies))
}

// ObserveRun records the outcome of a run.
func (m *Metrics) ObserveRun(source string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.runs.WithLabelValues(source, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
