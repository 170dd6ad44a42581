package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RecommendationRequests.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kalyx_recommendation_requests_total",
			Help: "Ranking requests by outcome.",
		},
		[]string{"outcome"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kalyx_recommendation_duration_seconds",
			Help:    "End-to-end duration of a ranking request.",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kalyx_recommendation_results",
			Help:    "Strains returned per ranking request.",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	CatalogRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kalyx_catalog_rows",
			Help: "Rows currently stored per catalog entity.",
		},
		[]string{"entity"},
	)
)

// RecordRecommendation tracks one ranking request. Duration and result
// size are only observed for completed rankings; rejected and failed
// requests count toward the outcome counter alone.
func RecordRecommendation(outcome string, results int, elapsed time.Duration) {
	RecommendationRequests.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		RecommendationDuration.Observe(elapsed.Seconds())
		RecommendationResults.Observe(float64(results))
	}
}

// SetCatalogRows publishes the current row count for one catalog entity.
func SetCatalogRows(entity string, count int64) {
	CatalogRows.WithLabelValues(entity).Set(float64(count))
}
