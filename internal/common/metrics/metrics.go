// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ComponentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scraper_components_total",
			Help: "Total number of components processed, by outcome",
		},
		[]string{"outcome"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scraper_fetch_duration_seconds",
			Help:    "Duration of registry and demo payload requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"target"},
	)

	RegistryComponents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "scraper_registry_components",
			Help: "Number of components listed by the registry in the last run",
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scraper_cache_lookups_total",
			Help: "Demo payload cache lookups, by result",
		},
		[]string{"result"},
	)
)

// WriteTextfile dumps the default gatherer in Prometheus text format, for
// the node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
