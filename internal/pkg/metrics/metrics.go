package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "merch"

type ServerMetrics struct {
	Requests         *prometheus.CounterVec
	LatencyMS        *prometheus.HistogramVec
	CheckoutsTotal   *prometheus.CounterVec
	SkippedCartLines prometheus.Counter
}

func NewServerMetrics(registerer prometheus.Registerer, service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "checkouts_total",
		Help:      "Checkout attempts by outcome.",
	}, []string{"outcome"})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "skipped_cart_lines_total",
		Help:      "Cart lines left out of a purchase because of insufficient stock.",
	})

	registerer.MustRegister(requests, latency, checkouts, skipped)

	return &ServerMetrics{
		Requests:         requests,
		LatencyMS:        latency,
		CheckoutsTotal:   checkouts,
		SkippedCartLines: skipped,
	}
}

func (m *ServerMetrics) CheckoutSucceeded() {
	m.CheckoutsTotal.WithLabelValues("success").Inc()
}

func (m *ServerMetrics) CheckoutFailed() {
	m.CheckoutsTotal.WithLabelValues("failure").Inc()
}

func (m *ServerMetrics) CartLineSkipped() {
	m.SkippedCartLines.Inc()
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
