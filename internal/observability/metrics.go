package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Build outcomes for RecordBuild
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics holds the Prometheus collectors of the native shell. All methods are safe on a nil
// receiver so components can run without metrics.
type Metrics struct {
	logger   *zap.Logger
	registry *prometheus.Registry

	menuEvents    *prometheus.CounterVec
	menuBuilds    *prometheus.CounterVec
	windowVisible prometheus.Gauge
	localeInfo    *prometheus.GaugeVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics(logger *zap.Logger) *Metrics {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Metrics{
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	m.initMetrics()
	m.registerMetrics()

	return m
}

func (m *Metrics) initMetrics() {
	m.menuEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "singconfig_menu_events_total",
			Help: "Menu, tray and window events by source and resulting action",
		},
		[]string{"source", "action"},
	)

	m.menuBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "singconfig_menu_builds_total",
			Help: "Menu and tray builds by target and result",
		},
		[]string{"target", "result"},
	)

	m.windowVisible = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "singconfig_window_visible",
		Help: "1 when the main window is visible, 0 when hidden to the tray",
	})

	m.localeInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "singconfig_locale_info",
			Help: "Active UI locale (value is always 1)",
		},
		[]string{"locale"},
	)

	m.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "singconfig_http_requests_total",
			Help: "Total number of bridge HTTP requests",
		},
		[]string{"method", "status"},
	)

	m.httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "singconfig_http_request_duration_seconds",
			Help:    "Bridge HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)
}

func (m *Metrics) registerMetrics() {
	m.registry.MustRegister(
		m.menuEvents,
		m.menuBuilds,
		m.windowVisible,
		m.localeInfo,
		m.httpRequests,
		m.httpDuration,
	)

	m.registry.MustRegister(collectors.NewGoCollector())
	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Handler returns an HTTP handler for the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// RecordEvent counts one routed event
func (m *Metrics) RecordEvent(source, action string) {
	if m == nil {
		return
	}
	m.menuEvents.WithLabelValues(source, action).Inc()
}

// RecordBuild counts one menu or tray build
func (m *Metrics) RecordBuild(target, result string) {
	if m == nil {
		return
	}
	m.menuBuilds.WithLabelValues(target, result).Inc()
}

// SetWindowVisible records the window visibility
func (m *Metrics) SetWindowVisible(visible bool) {
	if m == nil {
		return
	}
	if visible {
		m.windowVisible.Set(1)
	} else {
		m.windowVisible.Set(0)
	}
}

// SetLocale marks locale as the active one
func (m *Metrics) SetLocale(locale string) {
	if m == nil {
		return
	}
	m.localeInfo.Reset()
	m.localeInfo.WithLabelValues(locale).Set(1)
}

// RecordHTTPRequest records a bridge request
func (m *Metrics) RecordHTTPRequest(method, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, status).Inc()
	m.httpDuration.WithLabelValues(method, status).Observe(duration.Seconds())
}

// HTTPMiddleware returns middleware that records HTTP metrics
func (m *Metrics) HTTPMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			m.RecordHTTPRequest(r.Method, http.StatusText(ww.statusCode), time.Since(start))
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush lets streaming handlers behind the middleware flush.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
