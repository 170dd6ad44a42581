package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRecommendationCountsOutcomes(t *testing.T) {
	before := testutil.ToFloat64(RecommendationRequests.WithLabelValues(OutcomeOK))

	RecordRecommendation(OutcomeOK, 4, 12*time.Millisecond)
	RecordRecommendation(OutcomeOK, 0, 3*time.Millisecond)

	after := testutil.ToFloat64(RecommendationRequests.WithLabelValues(OutcomeOK))
	if after-before != 2 {
		t.Fatalf("ok counter grew by %v, want 2", after-before)
	}
}

func TestRecordRecommendationRejectedSkipsObservations(t *testing.T) {
	before := testutil.ToFloat64(RecommendationRequests.WithLabelValues(OutcomeRejected))

	RecordRecommendation(OutcomeRejected, 0, 0)

	after := testutil.ToFloat64(RecommendationRequests.WithLabelValues(OutcomeRejected))
	if after-before != 1 {
		t.Fatalf("rejected counter grew by %v, want 1", after-before)
	}
}

func TestSetCatalogRows(t *testing.T) {
	SetCatalogRows("strains", 10)
	if got := testutil.ToFloat64(CatalogRows.WithLabelValues("strains")); got != 10 {
		t.Fatalf("catalog gauge = %v, want 10", got)
	}

	SetCatalogRows("strains", 3)
	if got := testutil.ToFloat64(CatalogRows.WithLabelValues("strains")); got != 3 {
		t.Fatalf("catalog gauge = %v, want 3", got)
	}
}

func TestMetricsLint(t *testing.T) {
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, problem := range problems {
		t.Errorf("metric %s: %s", problem.Metric, problem.Text)
	}
}
