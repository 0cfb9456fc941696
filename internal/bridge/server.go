// Package bridge exposes the shell's command surface over loopback HTTP for the headless shell
// and for development tooling.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/i18n"
	"github.com/sing-config/sing-config/internal/menu"
	"github.com/sing-config/sing-config/internal/observability"
	"github.com/sing-config/sing-config/internal/shell"
)

// Shell is the part of the shell the bridge drives.
type Shell interface {
	CurrentLocale() i18n.Locale
	UpdateMenuLocale(locale i18n.Locale) error
	ExitApp()
	SetWindowTitle(title string) error

	HandleMenuEvent(id string)
	HandleTrayEvent(id string)
	HandleTrayIconClick()

	Menu() *menu.Tree
	Tray() *menu.TrayTree
}

// Response is the envelope of every JSON answer.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Server serves the bridge API.
type Server struct {
	shell   Shell
	bus     *shell.EventBus
	metrics *observability.Metrics
	health  *observability.HealthManager
	assets  http.Handler
	logger  *zap.Logger
	router  *chi.Mux

	heartbeat time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics exposes metrics on /metrics and records request metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithHealth exposes health checks on /healthz.
func WithHealth(h *observability.HealthManager) Option {
	return func(s *Server) { s.health = h }
}

// WithAssets serves the front end at the root path.
func WithAssets(h http.Handler) Option {
	return func(s *Server) { s.assets = h }
}

// WithHeartbeat sets the SSE keep-alive interval.
func WithHeartbeat(d time.Duration) Option {
	return func(s *Server) { s.heartbeat = d }
}

// NewServer creates a bridge server. bus supplies the forwarded events streamed on
// /api/v1/events and may be nil.
func NewServer(sh Shell, bus *shell.EventBus, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		shell:     sh,
		bus:       bus,
		logger:    logger,
		router:    chi.NewRouter(),
		heartbeat: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(s.metrics.HTTPMiddleware())
	s.router.Use(s.loggingMiddleware())
	s.router.Use(middleware.Recoverer)
	s.router.Use(correlationIDMiddleware)

	if s.health != nil {
		s.router.Get("/healthz", s.health.HealthzHandler())
	} else {
		s.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			s.writeSuccess(w, map[string]string{"status": "healthy"})
		})
	}
	if s.metrics != nil {
		s.router.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/locale", s.handleGetLocale)
		r.Put("/locale", s.handleUpdateLocale)
		r.Put("/window/title", s.handleSetTitle)
		r.Post("/exit", s.handleExit)

		r.Get("/menu", s.handleGetMenu)
		r.Get("/tray", s.handleGetTray)
		r.Post("/menu/{id}", s.handleMenuClick)
		r.Post("/tray/{id}", s.handleTrayClick)
		r.Post("/tray-icon/click", s.handleTrayIconClick)
	})

	s.router.Method(http.MethodGet, "/api/v1/events", http.HandlerFunc(s.handleSSEEvents))

	if s.assets != nil {
		s.router.Handle("/*", s.assets)
	}
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("Bridge shutdown failed", zap.Error(err))
		}
	}()

	s.logger.Info("Bridge listening", zap.String("addr", ln.Addr().String()))
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve bridge: %w", err)
	}
	return nil
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) loggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			s.logger.Debug("Bridge request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("correlation_id", CorrelationID(r.Context())))
		})
	}
}

// JSON response helpers

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, Response{Success: false, Error: message})
}

func (s *Server) writeSuccess(w http.ResponseWriter, data interface{}) {
	s.writeJSON(w, http.StatusOK, Response{Success: true, Data: data})
}
