package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "parking"

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	reservationsOpened *prometheus.CounterVec
	reservationsClosed *prometheus.CounterVec
	revenue            *prometheus.CounterVec
	bookingsRejected   *prometheus.CounterVec

	outboxPublished prometheus.Counter
	outboxFailed    prometheus.Counter
	outboxPending   prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reservationsOpened: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_opened_total",
			Help:      "Reservations opened per lot",
		}, []string{"lot_id"}),
		reservationsClosed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_closed_total",
			Help:      "Reservations closed per lot",
		}, []string{"lot_id"}),
		revenue: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_total",
			Help:      "Billed amount of closed reservations per lot",
		}, []string{"lot_id"}),
		bookingsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_rejected_total",
			Help:      "Bookings that found no available spot, by reason",
		}, []string{"reason"}),
		outboxPublished: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_events_published_total",
			Help:      "Outbox events delivered to the broker",
		}),
		outboxFailed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_publish_failures_total",
			Help:      "Failed outbox publish attempts",
		}),
		outboxPending: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "outbox_events_pending",
			Help:      "Outbox events not yet published",
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTPRequest uses the route template, never the raw path, to keep
// label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ReservationOpened(lotID int64) {
	m.reservationsOpened.WithLabelValues(strconv.FormatInt(lotID, 10)).Inc()
}

func (m *Metrics) ReservationClosed(lotID int64, cost decimal.Decimal) {
	lot := strconv.FormatInt(lotID, 10)
	m.reservationsClosed.WithLabelValues(lot).Inc()
	m.revenue.WithLabelValues(lot).Add(cost.InexactFloat64())
}

func (m *Metrics) BookingRejected(reason string) {
	m.bookingsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) EventPublished() {
	m.outboxPublished.Inc()
}

func (m *Metrics) EventPublishFailed() {
	m.outboxFailed.Inc()
}

func (m *Metrics) SetPendingEvents(n int64) {
	m.outboxPending.Set(float64(n))
}
