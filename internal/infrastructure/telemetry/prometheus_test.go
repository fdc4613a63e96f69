package telemetry

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := NewMetrics()

	done := m.RequestStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inFlight))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))

	m.ObserveRequest(http.MethodGet, "/api/v1/parties/:subtype", 200, 12*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/v1/parties/:subtype", 200, 8*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/v1/parties/:subtype", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestMetrics_RecordCounters(t *testing.T) {
	m := NewMetrics()

	m.ObserveCacheLookup("itemMaster", false)
	m.ObserveCacheLookup("itemMaster", true)
	m.ObserveCacheLookup("itemMaster", true)
	m.ObserveWrite("documents", "purchase-order", "create")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("itemMaster", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("itemMaster", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recordWrites.WithLabelValues("documents", "purchase-order", "create")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveRequest(http.MethodPost, "/api/v1/validate", 200, time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `mfgdesk_http_requests_total{method="POST",route="/api/v1/validate",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
