package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMetricsRecord(t *testing.T) {
	m := NewMetrics(zaptest.NewLogger(t))

	m.RecordEvent("menu", "forward")
	m.RecordEvent("menu", "forward")
	m.RecordBuild("menu", ResultSuccess)
	m.SetWindowVisible(true)
	m.SetLocale("en")
	m.SetLocale("zh")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.menuEvents.WithLabelValues("menu", "forward")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.menuBuilds.WithLabelValues("menu", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.windowVisible))
	assert.Equal(t, 1, testutil.CollectAndCount(m.localeInfo))

	m.SetWindowVisible(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.windowVisible))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordEvent("tray", "terminate")
		m.RecordBuild("tray", ResultError)
		m.SetWindowVisible(true)
		m.SetLocale("zh")
		m.HTTPMiddleware()(http.NotFoundHandler())
	})
	assert.NotNil(t, m.Handler())
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics(zaptest.NewLogger(t))
	m.RecordEvent("tray_icon", "toggle_window")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "singconfig_menu_events_total"))
}

func TestHealthz(t *testing.T) {
	hm := NewHealthManager(zaptest.NewLogger(t))
	hm.AddHealthChecker(CheckFunc{Component: "menu", Check: func(context.Context) error { return nil }})

	rec := httptest.NewRecorder()
	hm.HealthzHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	hm.AddHealthChecker(CheckFunc{Component: "window", Check: func(context.Context) error { return errors.New("detached") }})
	resp := hm.Check(context.Background())
	assert.Equal(t, "unhealthy", resp.Status)
	require.Len(t, resp.Components, 2)
	assert.Equal(t, "detached", resp.Components[1].Error)
}
