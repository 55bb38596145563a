// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"database/sql"
	"time"

	"catrescue/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catrescue"

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registerer prometheus.Registerer

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	UsersRegistered   prometheus.Counter
	PinsReported      prometheus.Counter
	ConditionChanges  *prometheus.CounterVec
	ListingsCreated   prometheus.Counter
	AdoptionRequests  *prometheus.CounterVec
	NotificationsSent prometheus.Counter
	EventsPublished   *prometheus.CounterVec
	PushDeliveries    *prometheus.CounterVec
}

// New creates and registers all metrics with the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates and registers all metrics with reg.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		registerer: reg,

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),

		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "Total number of registered accounts",
		}),

		PinsReported: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pins_reported_total",
			Help:      "Total number of pins created or moved",
		}),

		ConditionChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pin_condition_changes_total",
			Help:      "Pin condition changes by new condition",
		}, []string{"condition"}),

		ListingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adoption_listings_created_total",
			Help:      "Total number of adoption listings created",
		}),

		AdoptionRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adoption_requests_total",
			Help:      "Adoption request lifecycle events by outcome",
		}, []string{"outcome"}), // outcome: submitted, accepted, rejected, withdrawn

		NotificationsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_created_total",
			Help:      "Total number of in-app notifications created",
		}),

		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_events_published_total",
			Help:      "Notification events handed to the publisher by result",
		}, []string{"result"}),

		PushDeliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_deliveries_total",
			Help:      "Push deliveries attempted by the notifier by result",
		}, []string{"result"}),
	}
}

// RegisterDBStats exports the connection pool statistics of db under dbName.
// Registering the same database twice is not an error.
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	if m == nil || db == nil {
		return nil
	}

	err := m.registerer.Register(collectors.NewDBStatsCollector(db, dbName))
	var already prometheus.AlreadyRegisteredError
	if err != nil && !errors.As(err, &already) {
		return errors.Wrap(err, "register db stats collector")
	}

	return nil
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementUsersRegistered() {
	if m != nil {
		m.UsersRegistered.Inc()
	}
}

func (m *Metrics) IncrementPinsReported() {
	if m != nil {
		m.PinsReported.Inc()
	}
}

func (m *Metrics) IncrementConditionChange(condition string) {
	if m != nil {
		m.ConditionChanges.WithLabelValues(condition).Inc()
	}
}

func (m *Metrics) IncrementListingsCreated() {
	if m != nil {
		m.ListingsCreated.Inc()
	}
}

func (m *Metrics) IncrementAdoptionRequest(outcome string) {
	if m != nil {
		m.AdoptionRequests.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) AddNotificationsSent(n int) {
	if m != nil && n > 0 {
		m.NotificationsSent.Add(float64(n))
	}
}

func (m *Metrics) IncrementEventPublished(ok bool) {
	if m != nil {
		m.EventsPublished.WithLabelValues(resultLabel(ok)).Inc()
	}
}

// AddPushDeliveries records the outcome of one multicast batch.
func (m *Metrics) AddPushDeliveries(success, failure int) {
	if m == nil {
		return
	}
	if success > 0 {
		m.PushDeliveries.WithLabelValues("success").Add(float64(success))
	}
	if failure > 0 {
		m.PushDeliveries.WithLabelValues("failure").Add(float64(failure))
	}
}

func resultLabel(ok bool) string {
	if ok {
		return "success"
	}

	return "failure"
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
