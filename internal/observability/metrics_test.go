package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/jobs/:id", http.MethodGet, 200, 5*time.Millisecond)
	m.RecordRequest("/jobs/:id", http.MethodGet, 200, 7*time.Millisecond)
	m.RecordError("/jobs/myposted", http.MethodGet, "FORBIDDEN")
	m.RecordApplication()

	require.Equal(t, 2.0, testutil.ToFloat64(m.requestCount.WithLabelValues(http.MethodGet, "/jobs/:id", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.errorCount.WithLabelValues(http.MethodGet, "/jobs/myposted", "FORBIDDEN")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.applications))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", http.MethodGet, 200, time.Millisecond)
	m.RecordError("/", http.MethodGet, "X")
	m.RecordApplication()
}

func TestMetricsHandlerExposesRegistry(t *testing.T) {
	m := NewMetrics()
	m.RecordApplication()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, strings.Contains(rr.Body.String(), "job_applications_submitted_total 1"))
}
