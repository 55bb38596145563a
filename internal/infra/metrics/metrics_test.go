package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest(http.MethodGet, "/pins", 200, time.Millisecond)
		m.IncrementUsersRegistered()
		m.IncrementPinsReported()
		m.IncrementConditionChange("URGENT")
		m.IncrementListingsCreated()
		m.IncrementAdoptionRequest("submitted")
		m.AddNotificationsSent(2)
		m.IncrementEventPublished(true)
		m.AddPushDeliveries(1, 1)
		assert.NoError(t, m.RegisterDBStats(nil, "catrescue"))
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.ObserveHTTPRequest(http.MethodGet, "/pins", 200, time.Millisecond)
	m.ObserveHTTPRequest(http.MethodPost, "/pins", 422, time.Millisecond)
	m.IncrementConditionChange("URGENT")
	m.IncrementConditionChange("URGENT")
	m.AddNotificationsSent(3)
	m.AddNotificationsSent(0)
	m.AddPushDeliveries(4, 1)
	m.IncrementEventPublished(false)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/pins", "2xx")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/pins", "4xx")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ConditionChanges.WithLabelValues("URGENT")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.NotificationsSent))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.PushDeliveries.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PushDeliveries.WithLabelValues("failure")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EventsPublished.WithLabelValues("failure")))
}
