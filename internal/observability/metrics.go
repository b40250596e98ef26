package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus gauges, counters, and histograms for the
// dashboard service.
type Metrics struct {
	DatasetRows  prometheus.Gauge
	DatasetReady prometheus.Gauge
	LoadDuration prometheus.Gauge

	HTTPRequests *prometheus.CounterVec // labels: method, status

	// Report computation metrics.
	ReportRequests *prometheus.CounterVec   // labels: chart={summary,existence,conditions,breakdown}
	ReportDuration *prometheus.HistogramVec // labels: chart
	ReportCache    *prometheus.CounterVec   // labels: chart, result={hit,miss}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "parks_dash",
			Name:      "dataset_rows",
			Help:      "Number of enriched survey records loaded from the CSV.",
		}),
		DatasetReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "parks_dash",
			Name:      "dataset_ready",
			Help:      "1 when the dataset snapshot is loaded, 0 otherwise.",
		}),
		LoadDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "parks_dash",
			Name:      "dataset_load_duration_seconds",
			Help:      "Duration of the startup CSV load and enrichment pass.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "parks_dash",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method and status code.",
		}, []string{"method", "status"}),
		ReportRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "parks_dash",
			Name:      "report_requests_total",
			Help:      "Report computations requested, by chart.",
		}, []string{"chart"}),
		ReportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "parks_dash",
			Name:      "report_duration_seconds",
			Help:      "Duration of report computations, by chart.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"chart"}),
		ReportCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "parks_dash",
			Name:      "report_cache_total",
			Help:      "Report cache lookups, by chart and result.",
		}, []string{"chart", "result"}),
	}

	prometheus.MustRegister(
		m.DatasetRows,
		m.DatasetReady,
		m.LoadDuration,
		m.HTTPRequests,
		m.ReportRequests,
		m.ReportDuration,
		m.ReportCache,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		DatasetRows:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "parks_dash", Name: "dataset_rows"}),
		DatasetReady:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "parks_dash", Name: "dataset_ready"}),
		LoadDuration:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "parks_dash", Name: "dataset_load_duration_seconds"}),
		HTTPRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "parks_dash", Name: "http_requests_total"}, []string{"method", "status"}),
		ReportRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "parks_dash", Name: "report_requests_total"}, []string{"chart"}),
		ReportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "parks_dash", Name: "report_duration_seconds"}, []string{"chart"}),
		ReportCache:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "parks_dash", Name: "report_cache_total"}, []string{"chart", "result"}),
	}
}
