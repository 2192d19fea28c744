package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kivimon"

var (
	Registry = prometheus.NewRegistry()

	RebuildsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rebuilds_total",
			Help:      "Total number of roster rebuilds.",
		},
	)

	Generation = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation",
			Help:      "Current roster generation.",
		},
	)

	PollsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "polls_total",
			Help:      "Status responses by outcome.",
		},
		[]string{"result"},
	)

	PollDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "poll_duration_seconds",
			Help:      "Latency of node status requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 13),
		},
	)

	ActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Administrative actions by outcome.",
		},
		[]string{"action", "result"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of API requests.",
		},
		[]string{"op", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of API requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 13),
		},
		[]string{"op"},
	)
)

func init() {
	Registry.MustRegister(
		RebuildsTotal,
		Generation,
		PollsTotal,
		PollDuration,
		ActionsTotal,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveAction counts an administrative action.
func ObserveAction(action string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	ActionsTotal.WithLabelValues(action, result).Inc()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Instrument wraps a handler to record request metrics under the op label.
func Instrument(op string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r)

		class := strconv.Itoa(sw.status/100) + "xx"
		HTTPRequestsTotal.WithLabelValues(op, class).Inc()
		HTTPRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	})
}
