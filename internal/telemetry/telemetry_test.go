package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewMetricsRegistersAllCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ProofsFetched.WithLabelValues("ethereum").Inc()
	m.MessagesSubmitted.WithLabelValues("recv").Inc()
	m.ChunkUploadRetries.Inc()
	m.FinalityWaitSeconds.Observe(3.5)
	m.SubmissionErrors.WithLabelValues("relayer-transient").Inc()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("unexpected error gathering metrics: %v", err)
	}
	if len(families) != 5 {
		t.Fatalf("expected 5 metric families, got %d", len(families))
	}
}

func TestNewLoggerProduction(t *testing.T) {
	logger, err := NewLogger(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Sync()
	if logger == nil {
		t.Fatalf("expected a non-nil logger")
	}
}
