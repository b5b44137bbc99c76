package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics carries the monitor's instrumentation. Outcome label values:
// "ok", "absent" (quote collapsed), "empty" (series had no data), "error".
type Metrics struct {
	ProviderFetchesTotal  *prometheus.CounterVec
	SnapshotBuildDuration prometheus.Histogram
	RefreshCyclesTotal    prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ProviderFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "provider_fetches_total",
				Help: "Total number of upstream provider fetches by outcome",
			},
			[]string{"provider", "outcome"},
		),

		SnapshotBuildDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "snapshot_build_duration_seconds",
				Help:    "Time spent assembling one rate snapshot",
				Buckets: prometheus.DefBuckets,
			},
		),

		RefreshCyclesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "refresh_cycles_total",
				Help: "Total number of scheduled refresh cycles",
			},
		),
	}
}
