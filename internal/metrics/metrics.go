// Package metrics exposes generation counters on a local Prometheus
// registry, served by the serve command.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the generator's counters.
type Metrics struct {
	registry *prometheus.Registry

	RowsProcessed *prometheus.CounterVec
	RowsSkipped   *prometheus.CounterVec
	FilesWritten  *prometheus.CounterVec
}

// New creates a Metrics with its own registry, so tests and repeated runs
// never collide with the global default registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RowsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mobgen_rows_processed_total",
			Help: "Sheet rows turned into files, by sheet.",
		}, []string{"sheet"}),
		RowsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mobgen_rows_skipped_total",
			Help: "Sheet rows skipped (blank name), by sheet.",
		}, []string{"sheet"}),
		FilesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mobgen_files_written_total",
			Help: "Generated files written to the datapack, by sheet.",
		}, []string{"sheet"}),
	}
	m.registry.MustRegister(m.RowsProcessed, m.RowsSkipped, m.FilesWritten)
	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
