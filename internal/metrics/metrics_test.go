package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := metrics.New()

	m.Observe(http.MethodGet, "/api/v1/items/:id", http.StatusOK, 12*time.Millisecond)
	m.Observe(http.MethodGet, "/api/v1/items/:id", http.StatusNotFound, 3*time.Millisecond)
	m.Observe(http.MethodGet, "/api/v1/items/:id", http.StatusOK, 5*time.Millisecond)

	count, err := testutil.GatherAndCount(m.Registry(), "catalog_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per status")
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.Observe(http.MethodDelete, "/api/v1/items/:id", http.StatusNoContent, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), `catalog_http_requests_total{method="DELETE",route="/api/v1/items/:id",status="204"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
