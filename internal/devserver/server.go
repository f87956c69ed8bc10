// Package devserver serves the compiled widget for local development.
//
// It serves a static directory (host page, recommendations.wasm,
// wasm_exec.js), reverse-proxies /api/* to the recommendations backend behind
// a circuit breaker, and renders server-side previews of the widget.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/vcrobe/movierecs/internal/config"
	"github.com/vcrobe/movierecs/internal/logging"
)

// Server is the development server.
type Server struct {
	cfg            *config.Config
	logger         zerolog.Logger
	registry       *prometheus.Registry
	metrics        *metrics
	breaker        *breakerTransport
	upstreamClient *http.Client
	handler        http.Handler
}

// New builds a Server from cfg. It does not start listening.
func New(cfg *config.Config) (*Server, error) {
	target, err := url.Parse(cfg.Upstream.URL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream url: %w", err)
	}

	reg := prometheus.NewRegistry()
	m := newMetrics(reg)
	breaker := newBreakerTransport(cfg.Upstream, newUpstreamTransport(cfg.Upstream), m)

	s := &Server{
		cfg:      cfg,
		logger:   logging.With().Str("component", "devserver").Logger(),
		registry: reg,
		metrics:  m,
		breaker:  breaker,
		upstreamClient: &http.Client{
			Transport: breaker,
			Timeout:   cfg.Upstream.Timeout,
		},
	}
	s.handler = s.routes(newProxy(target, breaker, m))
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes(proxy http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Security.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		if s.cfg.Server.PreviewRateLimit > 0 {
			r.Use(httprate.LimitByIP(s.cfg.Server.PreviewRateLimit, time.Minute))
		}
		r.Get("/preview", s.handlePreview)
	})

	r.Handle("/api/*", proxy)
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.Server.StaticDir)))

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"breaker": s.breaker.State().String(),
	})
}

// requestLogger logs one line per request with the chi request id.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func requestLogger(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			l.Debug().
				Str("request_id", chimiddleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("HTTP request")
		})
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("addr", srv.Addr).
			Str("static_dir", s.cfg.Server.StaticDir).
			Str("upstream", s.cfg.Upstream.URL).
			Msg("Dev server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	s.logger.Info().Msg("Dev server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
