// pkg/server/server.go
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dco-tools/changeover-spc/pkg/analysis"
	"github.com/dco-tools/changeover-spc/pkg/config"
)

// Server exposes the analysis engine as a stateless HTTP service: every
// request carries its own datasets and settings, nothing is cached between
// requests.
type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	analyzer *analysis.Analyzer
	http     *http.Server
}

// New creates the HTTP server around an analyzer.
func New(cfg *config.Config, logger *zap.Logger, analyzer *analysis.Analyzer) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if analyzer == nil {
		return nil, errors.New("analyzer cannot be nil")
	}

	s := &Server{cfg: cfg, logger: logger, analyzer: analyzer}
	s.http = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Router builds the route tree. Exposed separately so tests can drive the
// handlers without a listener.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/api/v1/analysis", s.handleAnalysis)

	return r
}

// Start runs the listener until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.cfg.HTTPAddr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("Request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}
