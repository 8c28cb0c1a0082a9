package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service-level Prometheus metrics.
type Metrics struct {
	EnrichmentsTotal  prometheus.Counter
	CandidatesPerCall prometheus.Histogram
}

// New creates and registers all service-level Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		EnrichmentsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "citator_enrichments_total",
			Help: "Total number of citation enrichment calls",
		}),
		CandidatesPerCall: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "citator_candidates_per_call",
			Help:    "Number of candidate citations produced per enrichment call",
			Buckets: []float64{0, 1, 2, 3, 5, 8},
		}),
	}
}

// IncrementEnrichments increments the enrichment counter by 1.
func (m *Metrics) IncrementEnrichments() {
	m.EnrichmentsTotal.Inc()
}

// ObserveCandidates records the candidate count for one enrichment call.
func (m *Metrics) ObserveCandidates(n int) {
	m.CandidatesPerCall.Observe(float64(n))
}
