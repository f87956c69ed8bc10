package devserver

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/vcrobe/movierecs/internal/config"
	"github.com/vcrobe/movierecs/internal/logging"
)

// UnavailableMessage is the error body returned when the backend cannot be reached.
const UnavailableMessage = "Recommendations service unavailable"

// breakerTransport runs every upstream round trip through a circuit breaker.
// Only transport failures count against the breaker; 5xx responses carry a
// JSON error body the widget shows, so they pass through untouched.
type breakerTransport struct {
	next http.RoundTripper
	cb   *gobreaker.CircuitBreaker[*http.Response]
}

func newBreakerTransport(cfg config.UpstreamConfig, next http.RoundTripper, m *metrics) *breakerTransport {
	settings := gobreaker.Settings{
		Name:    "upstream",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			m.breakerState.Set(breakerStateValue(to))
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Upstream circuit breaker state changed")
		},
	}
	return &breakerTransport{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[*http.Response](settings),
	}
}

func (t *breakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.cb.Execute(func() (*http.Response, error) {
		return t.next.RoundTrip(req)
	})
}

// State returns the breaker's current state.
func (t *breakerTransport) State() gobreaker.State {
	return t.cb.State()
}

// newUpstreamTransport clones the default transport with the configured header timeout.
func newUpstreamTransport(cfg config.UpstreamConfig) http.RoundTripper {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.ResponseHeaderTimeout = cfg.Timeout
	return tr
}

// newProxy forwards requests to target through rt.
func newProxy(target *url.URL, rt http.RoundTripper, m *metrics) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
		},
		Transport: rt,
		ModifyResponse: func(resp *http.Response) error {
			m.proxyRequests.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			m.proxyRejected.Inc()
			ev := logging.Warn().Err(err).Str("path", r.URL.Path)
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				ev = ev.Bool("breaker_open", true)
			}
			ev.Msg("Upstream request failed")
			writeUnavailable(w)
		},
	}
}

// writeUnavailable answers in the endpoint's own error shape so the widget
// shows the message like any other server error.
func writeUnavailable(w http.ResponseWriter) {
	writeJSON(w, http.StatusServiceUnavailable, map[string]any{
		"success": false,
		"error":   UnavailableMessage,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
