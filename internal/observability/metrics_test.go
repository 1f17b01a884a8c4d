package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMetricsAccumulatesRequests(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/api/employees", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/api/employees", "GET", 200, 30*time.Millisecond)
	m.RecordRequest("/api/employees", "GET", 404, 5*time.Millisecond)

	require.Equal(t, int64(2), m.RequestCount("/api/employees", "GET", 200))
	require.Equal(t, int64(1), m.RequestCount("/api/employees", "GET", 404))
	require.Equal(t, 20*time.Millisecond, m.AverageDuration("/api/employees", "GET", 200))
	require.Zero(t, m.AverageDuration("/api/employees", "POST", 201))
}

func TestMetricsCountsErrorsByCode(t *testing.T) {
	m := NewMetrics()

	m.RecordError("/api/employees", "POST", "VALIDATION_FAILED")
	m.RecordError("/api/employees", "POST", "VALIDATION_FAILED")

	require.Equal(t, int64(2), m.ErrorCount("/api/employees", "POST", "VALIDATION_FAILED"))
	require.Zero(t, m.ErrorCount("/api/employees", "POST", "NOT_FOUND"))
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics

	m.RecordRequest("/health", "GET", 200, time.Millisecond)
	m.RecordError("/health", "GET", "INTERNAL_ERROR")

	require.Zero(t, m.RequestCount("/health", "GET", 200))
	require.Zero(t, m.ErrorCount("/health", "GET", "INTERNAL_ERROR"))
	require.Zero(t, m.AverageDuration("/health", "GET", 200))
}
