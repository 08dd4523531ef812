package server

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "wanipop"

// Metrics holds the Prometheus collectors of the server.
type Metrics struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	cardsServed      prometheus.Counter
	reviewsSubmitted *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "rpc_duration_seconds",
		Help:      "Duration of RPCs in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "rpc_requests_total",
		Help:      "Total number of RPCs by result code",
	}, []string{"procedure", "code"})

	cardsServed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "review_cards_served_total",
		Help:      "Total number of review cards returned in batches",
	})

	reviewsSubmitted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of reviews submitted to WaniKani by outcome",
	}, []string{"outcome"})

	registry.MustRegister(requestDuration, requestTotal, cardsServed, reviewsSubmitted)

	return &Metrics{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		cardsServed:      cardsServed,
		reviewsSubmitted: reviewsSubmitted,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// Interceptor records the duration and result code of every unary RPC.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			res, err := next(ctx, req)

			procedure := req.Spec().Procedure
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.requestDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			m.requestTotal.WithLabelValues(procedure, code).Inc()
			return res, err
		}
	}
}

func (m *Metrics) ObserveCardsServed(count int) {
	m.cardsServed.Add(float64(count))
}

func (m *Metrics) ObserveReviewsSubmitted(succeeded, failed int) {
	m.reviewsSubmitted.WithLabelValues("succeeded").Add(float64(succeeded))
	m.reviewsSubmitted.WithLabelValues("failed").Add(float64(failed))
}
