package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	commonLabels = []string{"tenant_id"}

	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_requests_total",
			Help: "Total number of requests processed",
		},
		append(commonLabels, "method", "status"),
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketplace_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		commonLabels,
	)

	SecurityDetections = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_security_detections_total",
			Help: "Inbound values rejected by the injection detector",
		},
		[]string{"kind"},
	)

	DatabaseErrors = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_database_errors_total",
			Help: "Database errors mapped into client responses",
		},
		[]string{"kind", "db_code"},
	)
)

// Initialize makes the package registry the default one so promhttp serves it.
func Initialize() {
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

func Gatherer() prometheus.Gatherer {
	return registry
}
