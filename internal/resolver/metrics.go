package resolver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "citator_resolver_duration_seconds",
		Help:    "Latency of source resolver runs",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"resolver"})

	resolveRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "citator_resolver_runs_total",
		Help: "Source resolver runs by outcome",
	}, []string{"resolver", "outcome"})
)

func observeResolve(name string, elapsed time.Duration, found int) {
	resolveDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	outcome := "miss"
	if found > 0 {
		outcome = "hit"
	}
	resolveRuns.WithLabelValues(name, outcome).Inc()
}
