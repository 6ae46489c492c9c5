package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	relayRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shark_relay_requests_total",
			Help: "Relay calls by terminal outcome",
		},
		[]string{"outcome"},
	)

	relayDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shark_relay_duration_seconds",
			Help:    "Time from receiving a relay call to its outcome",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"outcome"},
	)

	upstreamErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shark_upstream_errors_total",
			Help: "Non-success responses from the generative API by HTTP status",
		},
		[]string{"status"},
	)
)

// Register registers the relay collectors with r.
func Register(r prometheus.Registerer) {
	r.MustRegister(relayRequestsTotal, relayDurationSeconds, upstreamErrorsTotal)
}

// NewRegistry returns a registry holding the relay collectors and the Go runtime collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	Register(reg)
	reg.MustRegister(collectors.NewGoCollector())
	return reg
}

// RelayCompleted records the outcome of one relay call.
// upstreamStatus is the HTTP status of a failed upstream response, or 0.
func RelayCompleted(outcome string, upstreamStatus int, d time.Duration) {
	relayRequestsTotal.WithLabelValues(outcome).Inc()
	relayDurationSeconds.WithLabelValues(outcome).Observe(d.Seconds())
	if upstreamStatus != 0 {
		upstreamErrorsTotal.WithLabelValues(strconv.Itoa(upstreamStatus)).Inc()
	}
}
