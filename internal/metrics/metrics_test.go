package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RecordsIngestion(t *testing.T) {
	m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

	m.RecordIngest("soccer_epl", "ok", 120*time.Millisecond)
	m.RecordIngest("soccer_epl", "provider_unavailable", 10*time.Millisecond)
	m.RecordApplied("soccer_epl")
	m.RecordApplied("soccer_epl")
	m.RecordRejected("soccer_epl")
	m.RecordUnmapped("soccer_epl", 3)
	m.RecordPublishError()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ingestCycles.WithLabelValues("soccer_epl", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ingestCycles.WithLabelValues("soccer_epl", "provider_unavailable")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.resultsApplied.WithLabelValues("soccer_epl")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resultsRejected.WithLabelValues("soccer_epl")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.resultsUnmapped.WithLabelValues("soccer_epl")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.publishErrors))
}

func TestManager_NilIsNoop(t *testing.T) {
	var m *Manager

	assert.NotPanics(t, func() {
		m.RecordIngest("soccer_epl", "ok", time.Second)
		m.RecordApplied("soccer_epl")
		m.RecordRejected("soccer_epl")
		m.RecordUnmapped("soccer_epl", 1)
		m.RecordPublishError()
		m.RecordHTTPRequest("/result/retrieveResults", http.MethodGet, http.StatusOK, time.Millisecond)
	})
}

func TestManager_Handler(t *testing.T) {
	m := NewManager(WithNamespace("test"), WithSubsystem("ingest"))
	m.RecordHTTPRequest("/result/retrieveResults", http.MethodGet, http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_ingest_http_requests_total")
	assert.Contains(t, rec.Body.String(), `endpoint="/result/retrieveResults"`)
}

func TestManager_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewManager()
		NewManager()
	})
}
