package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sing-config/sing-config/internal/i18n"
	"github.com/sing-config/sing-config/internal/menu"
	"github.com/sing-config/sing-config/internal/observability"
	"github.com/sing-config/sing-config/internal/shell"
)

type fixture struct {
	shell  *shell.Shell
	bus    *shell.EventBus
	server *httptest.Server

	mu    sync.Mutex
	exits []int
}

func (f *fixture) exitCodes() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.exits...)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{bus: shell.NewEventBus()}
	logger := zaptest.NewLogger(t)
	metrics := observability.NewMetrics(logger)

	f.shell = shell.New(shell.Options{
		Locale:  i18n.Chinese,
		Layout:  menu.FileMenuLayout{},
		Emitter: f.bus,
		Metrics: metrics,
		Logger:  logger,
		Exit: func(code int) {
			f.mu.Lock()
			f.exits = append(f.exits, code)
			f.mu.Unlock()
		},
	})
	t.Cleanup(f.shell.Stop)
	require.NoError(t, f.shell.Start())

	srv := NewServer(f.shell, f.bus, logger, WithMetrics(metrics), WithHeartbeat(50*time.Millisecond))
	f.server = httptest.NewServer(srv.Handler())
	t.Cleanup(f.server.Close)
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) (*http.Response, Response) {
	t.Helper()

	req, err := http.NewRequest(method, f.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestLocaleEndpoints(t *testing.T) {
	f := newFixture(t)

	resp, out := f.do(t, http.MethodGet, "/api/v1/locale", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"locale": "zh"}, out.Data)

	resp, out = f.do(t, http.MethodPut, "/api/v1/locale", `{"locale":"en"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.Success)
	assert.Equal(t, i18n.English, f.shell.CurrentLocale())
	assert.Equal(t, "File", f.shell.Menu().Menus[0].Label)

	resp, out = f.do(t, http.MethodPut, "/api/v1/locale", `{"locale":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, out.Success)

	resp, _ = f.do(t, http.MethodPut, "/api/v1/locale", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWindowTitleWithoutWindow(t *testing.T) {
	f := newFixture(t)

	resp, out := f.do(t, http.MethodPut, "/api/v1/window/title", `{"title":"demo.json"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.Success)
}

func TestExit(t *testing.T) {
	f := newFixture(t)

	resp, out := f.do(t, http.MethodPost, "/api/v1/exit", "")
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.True(t, out.Success)
	require.Eventually(t, func() bool { return len(f.exitCodes()) == 1 }, time.Second, 10*time.Millisecond)
}

func TestMenuAndTrayClicks(t *testing.T) {
	f := newFixture(t)
	events := f.bus.Subscribe()

	resp, _ := f.do(t, http.MethodPost, "/api/v1/menu/file_save", "")
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	select {
	case evt := <-events:
		assert.Equal(t, shell.EventMenu, evt.Name)
		assert.Equal(t, menu.IDFileSave, evt.Payload)
	case <-time.After(time.Second):
		t.Fatal("forwarded event not published")
	}

	f.do(t, http.MethodPost, "/api/v1/menu/app_quit", "")
	require.Eventually(t, func() bool { return len(f.exitCodes()) == 1 }, time.Second, 10*time.Millisecond)

	f.do(t, http.MethodPost, "/api/v1/tray/tray_quit", "")
	require.Eventually(t, func() bool { return len(f.exitCodes()) == 2 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []int{0, 0}, f.exitCodes())

	f.do(t, http.MethodPost, "/api/v1/tray-icon/click", "")
	assert.Empty(t, events, "window actions are not forwarded")
}

func TestGetMenu(t *testing.T) {
	f := newFixture(t)

	resp, out := f.do(t, http.MethodGet, "/api/v1/menu", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	menus, ok := out.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, menus, 6)
	assert.Equal(t, "文件", menus[0].(map[string]interface{})["label"])

	resp, out = f.do(t, http.MethodGet, "/api/v1/tray", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, out.Data, 4)
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t)

	resp, out := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.Success)
	assert.NotEmpty(t, resp.Header.Get(CorrelationIDHeader))

	metricsResp, err := http.Get(f.server.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	assert.Equal(t, http.StatusOK, metricsResp.StatusCode)
}

func TestCorrelationIDIsEchoed(t *testing.T) {
	f := newFixture(t)

	req, err := http.NewRequest(http.MethodGet, f.server.URL+"/api/v1/locale", nil)
	require.NoError(t, err)
	req.Header.Set(CorrelationIDHeader, "abc-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(CorrelationIDHeader))
}

func TestEventStream(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.server.URL+"/api/v1/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return f.bus.Subscribers() == 1 }, time.Second, 10*time.Millisecond)
	f.shell.HandleMenuEvent(menu.IDEditFind)

	scanner := bufio.NewScanner(resp.Body)
	var sawEvent, sawData bool
	deadline := time.After(2 * time.Second)
	lines := make(chan string, 128)
	go func() {
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for !(sawEvent && sawData) {
		select {
		case line, ok := <-lines:
			require.True(t, ok, "stream closed early")
			if line == "event: menu-event" {
				sawEvent = true
			}
			if sawEvent && strings.HasPrefix(line, "data: ") {
				assert.Contains(t, line, `"id":"edit_find"`)
				sawData = true
			}
		case <-deadline:
			t.Fatal("no menu-event on the stream")
		}
	}

	cancel()
	require.Eventually(t, func() bool { return f.bus.Subscribers() == 0 }, time.Second, 10*time.Millisecond)
}
