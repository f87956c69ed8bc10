package devserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	gobreaker "github.com/sony/gobreaker/v2"
)

// metrics are registered per server so tests can run servers side by side.
type metrics struct {
	proxyRequests  *prometheus.CounterVec
	proxyRejected  prometheus.Counter
	breakerState   prometheus.Gauge
	previewResults *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		proxyRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "devserver_proxy_requests_total",
				Help: "Requests proxied to the recommendations backend, by status code",
			},
			[]string{"code"},
		),
		proxyRejected: f.NewCounter(
			prometheus.CounterOpts{
				Name: "devserver_proxy_unavailable_total",
				Help: "Proxy requests answered with 503 because the backend was unreachable or the breaker was open",
			},
		),
		breakerState: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "devserver_upstream_breaker_state",
				Help: "Upstream circuit breaker state: 0 closed, 1 half-open, 2 open",
			},
		),
		previewResults: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "devserver_preview_renders_total",
				Help: "Widget previews rendered, by final state",
			},
			[]string{"state"},
		),
	}
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
