package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveStats(t *testing.T) {
	m := New()
	m.ObserveStats("hit", time.Now(), nil)
	m.ObserveStats("hit", time.Now(), errors.New("down"))
	m.ObserveStats("stats", time.Now(), nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatsRequests.WithLabelValues("hit", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatsRequests.WithLabelValues("hit", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatsRequests.WithLabelValues("stats", "success")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveStats("hit", time.Now(), nil)
		m.ObserveNotification("event_created", nil)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveNotification("event_created", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `eventlisting_notifications_total{outcome="sent",template="event_created"} 1`)
}
