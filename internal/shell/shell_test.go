package shell

import (
	"errors"
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
	"github.com/sing-config/sing-config/internal/window"
)

type fakeInstaller struct {
	installed []*menu.Tree
	err       error
}

func (f *fakeInstaller) InstallMenu(tree *menu.Tree) error {
	if f.err != nil {
		return f.err
	}
	f.installed = append(f.installed, tree)
	return nil
}

func (f *fakeInstaller) current() *menu.Tree {
	if len(f.installed) == 0 {
		return nil
	}
	return f.installed[len(f.installed)-1]
}

type fakeTray struct {
	presented []*menu.TrayTree
	err       error
}

func (f *fakeTray) Present(tree *menu.TrayTree) error {
	if f.err != nil {
		return f.err
	}
	f.presented = append(f.presented, tree)
	return nil
}

type fakeEmitter struct {
	events []string
}

func (f *fakeEmitter) Emit(name, payload string) {
	f.events = append(f.events, name+":"+payload)
}

type fakeWindow struct {
	visible bool
	title   string
	onClose func() bool
}

func (f *fakeWindow) Show() error  { f.visible = true; return nil }
func (f *fakeWindow) Hide() error  { f.visible = false; return nil }
func (f *fakeWindow) Focus() error { return nil }
func (f *fakeWindow) SetTitle(title string) error {
	f.title = title
	return nil
}
func (f *fakeWindow) OnCloseRequested(fn func() bool) func() {
	f.onClose = fn
	return func() { f.onClose = nil }
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls int
	last  i18n.Text
}

func (f *fakeNotifier) WindowHidden(text i18n.Text) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = text
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// brokenLayout produces duplicate identifiers for every locale except Chinese.
type brokenLayout struct{}

func (brokenLayout) Name() string { return "broken" }

func (brokenLayout) Compose(locale i18n.Locale, text *i18n.Text) []*menu.Submenu {
	menus := menu.FileMenuLayout{}.Compose(locale, text)
	if !locale.IsChinese() {
		menus = append(menus, menu.EditMenu(text))
	}
	return menus
}

type fixture struct {
	shell     *Shell
	installer *fakeInstaller
	tray      *fakeTray
	emitter   *fakeEmitter
	window    *fakeWindow
	notifier  *fakeNotifier
	metrics   *observability.Metrics
	exits     []int
}

func newFixture(t *testing.T, layout menu.Layout, followLocale bool) *fixture {
	t.Helper()

	f := &fixture{
		installer: &fakeInstaller{},
		tray:      &fakeTray{},
		emitter:   &fakeEmitter{},
		window:    &fakeWindow{visible: true},
		notifier:  &fakeNotifier{},
		metrics:   observability.NewMetrics(zaptest.NewLogger(t)),
	}
	f.shell = New(Options{
		Locale:            i18n.Chinese,
		Layout:            layout,
		TrayFollowsLocale: followLocale,
		Installer:         f.installer,
		Tray:              f.tray,
		Emitter:           f.emitter,
		Notifier:          f.notifier,
		Metrics:           f.metrics,
		Logger:            zaptest.NewLogger(t),
		Exit:              func(code int) { f.exits = append(f.exits, code) },
	})
	t.Cleanup(f.shell.Stop)
	f.shell.Window().Attach(f.window)
	return f
}

func (f *fixture) scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	f.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestStartInstallsMenuAndTray(t *testing.T) {
	f := newFixture(t, menu.AppMenuLayout{}, true)

	require.NoError(t, f.shell.Start())

	require.Len(t, f.installer.installed, 1)
	assert.Equal(t, "sing-config", f.installer.current().Menus[0].Label)
	require.Len(t, f.tray.presented, 1)
	assert.Same(t, f.installer.current(), f.shell.Menu())
	assert.Equal(t, i18n.Chinese, f.shell.CurrentLocale())
}

func TestStartFailsOnBrokenMenu(t *testing.T) {
	f := newFixture(t, brokenLayout{}, true)
	f.shell.state.Locale = i18n.English

	err := f.shell.Start()
	require.Error(t, err)
	assert.ErrorIs(t, err, menu.ErrDuplicateID)
	assert.Empty(t, f.installer.installed)
	assert.Nil(t, f.shell.Menu())
}

func TestMenuEventsRouting(t *testing.T) {
	f := newFixture(t, menu.FileMenuLayout{}, true)
	require.NoError(t, f.shell.Start())

	f.shell.HandleMenuEvent(menu.IDFileNew)
	f.shell.HandleMenuEvent(menu.IDViewLanguageEn)
	assert.Equal(t, []string{"menu-event:file_new", "menu-event:view_language_en"}, f.emitter.events)
	assert.Empty(t, f.exits)

	f.shell.HandleMenuEvent(menu.IDAppQuit)
	assert.Equal(t, []int{0}, f.exits)
	assert.Len(t, f.emitter.events, 2, "quit must not be forwarded")
}

func TestTrayEventsRouting(t *testing.T) {
	f := newFixture(t, menu.FileMenuLayout{}, true)
	require.NoError(t, f.shell.Start())

	f.shell.HandleTrayEvent(menu.IDTrayHide)
	assert.False(t, f.window.visible)
	assert.Equal(t, window.StateHidden, f.shell.Window().State())

	f.shell.HandleTrayEvent(menu.IDTrayShow)
	assert.True(t, f.window.visible)

	f.shell.HandleTrayEvent("tray_custom")
	assert.Equal(t, []string{"menu-event:tray_custom"}, f.emitter.events)

	f.shell.HandleTrayEvent(menu.IDTrayQuit)
	assert.Equal(t, []int{0}, f.exits)
}

func TestTrayIconClickToggles(t *testing.T) {
	f := newFixture(t, menu.FileMenuLayout{}, true)

	f.shell.HandleTrayIconClick()
	assert.False(t, f.window.visible)
	f.shell.HandleTrayIconClick()
	assert.True(t, f.window.visible)
	assert.Equal(t, window.StateVisible, f.shell.Window().State())
}

func TestCloseRequestHidesAndNotifies(t *testing.T) {
	f := newFixture(t, menu.FileMenuLayout{}, true)

	require.NotNil(t, f.window.onClose)
	assert.True(t, f.window.onClose(), "close must be prevented")
	assert.False(t, f.window.visible)
	assert.Empty(t, f.exits)
	require.Eventually(t, func() bool { return f.notifier.count() == 1 }, time.Second, 10*time.Millisecond)

	f.shell.HandleTrayEvent(menu.IDTrayShow)
	assert.True(t, f.shell.HandleCloseRequest())
	assert.False(t, f.window.visible)
	assert.Equal(t, window.StateHidden, f.shell.Window().State())
	require.Eventually(t, func() bool { return f.notifier.count() == 2 }, time.Second, 10*time.Millisecond)

	// Already hidden: no transition, no notification
	f.shell.HandleCloseRequest()
	f.shell.Stop()
	assert.Equal(t, 2, f.notifier.count())
	assert.Equal(t, "sing-config", f.notifier.last.AppName)
}

func TestVisibilityGaugeFollowsTransitions(t *testing.T) {
	f := newFixture(t, menu.FileMenuLayout{}, true)
	require.NoError(t, f.shell.Start())
	assert.Contains(t, f.scrape(t), "singconfig_window_visible 1")

	f.shell.HandleTrayEvent(menu.IDTrayHide)
	require.Eventually(t, func() bool {
		return strings.Contains(f.scrape(t), "singconfig_window_visible 0")
	}, time.Second, 10*time.Millisecond)

	f.shell.HandleTrayIconClick()
	require.Eventually(t, func() bool {
		return strings.Contains(f.scrape(t), "singconfig_window_visible 1")
	}, time.Second, 10*time.Millisecond)
}

func TestLocaleMetricUsesEffectiveLocale(t *testing.T) {
	f := newFixture(t, menu.FileMenuLayout{}, true)
	require.NoError(t, f.shell.Start())

	require.NoError(t, f.shell.UpdateMenuLocale("fr-FR"))

	assert.Equal(t, i18n.Locale("fr-FR"), f.shell.CurrentLocale())
	body := f.scrape(t)
	assert.Contains(t, body, `singconfig_locale_info{locale="en"} 1`)
	assert.NotContains(t, body, "fr-FR")
}

func TestStopIsIdempotent(t *testing.T) {
	f := newFixture(t, menu.FileMenuLayout{}, true)

	f.shell.Stop()
	f.shell.Stop()

	// Transitions after Stop still drive the window
	f.shell.HandleTrayIconClick()
	assert.False(t, f.window.visible)
	assert.Equal(t, 0, f.notifier.count())
}

func TestUpdateMenuLocale(t *testing.T) {
	f := newFixture(t, menu.FileMenuLayout{}, true)
	require.NoError(t, f.shell.Start())

	require.NoError(t, f.shell.UpdateMenuLocale(i18n.English))

	assert.Equal(t, i18n.English, f.shell.CurrentLocale())
	require.Len(t, f.installer.installed, 2)
	assert.Equal(t, "File", f.installer.current().Menus[0].Label)
	en := f.installer.current().Find(menu.IDViewLanguageEn).(*menu.CheckItem)
	assert.True(t, en.Checked)

	require.Len(t, f.tray.presented, 2)
	assert.Equal(t, "Show", f.tray.presented[1].Items[0].(*menu.Item).Label)
}

func TestUpdateMenuLocaleKeepsTrayWhenNotFollowing(t *testing.T) {
	f := newFixture(t, menu.FileMenuLayout{}, false)
	require.NoError(t, f.shell.Start())

	require.NoError(t, f.shell.UpdateMenuLocale(i18n.English))

	assert.Len(t, f.tray.presented, 1)
	assert.Equal(t, "显示", f.shell.Tray().Items[0].(*menu.Item).Label)
}

func TestUpdateMenuLocaleSurvivesTrayFailure(t *testing.T) {
	f := newFixture(t, menu.FileMenuLayout{}, true)
	require.NoError(t, f.shell.Start())
	trayBefore := f.shell.Tray()

	f.tray.err = errors.New("tray host gone")
	require.NoError(t, f.shell.UpdateMenuLocale(i18n.English))

	assert.Equal(t, i18n.English, f.shell.CurrentLocale())
	assert.Equal(t, "File", f.shell.Menu().Menus[0].Label)
	assert.Same(t, trayBefore, f.shell.Tray())
	assert.Equal(t, "显示", f.shell.Tray().Items[0].(*menu.Item).Label)
	assert.Len(t, f.tray.presented, 1)
}

func TestFailedRebuildKeepsPreviousMenu(t *testing.T) {
	f := newFixture(t, brokenLayout{}, true)
	require.NoError(t, f.shell.Start())
	before := f.shell.Menu()

	err := f.shell.UpdateMenuLocale(i18n.English)
	require.Error(t, err)

	var be *menu.BuildError
	assert.True(t, errors.As(err, &be))
	assert.Same(t, before, f.shell.Menu())
	assert.Same(t, before, f.installer.current())
	assert.Len(t, f.installer.installed, 1)
	assert.Len(t, f.tray.presented, 1)
	assert.Equal(t, i18n.Chinese, f.shell.CurrentLocale())
}

func TestFailedInstallKeepsPreviousMenu(t *testing.T) {
	f := newFixture(t, menu.FileMenuLayout{}, true)
	require.NoError(t, f.shell.Start())
	before := f.shell.Menu()

	f.installer.err = errors.New("toolkit rejected menu")
	require.Error(t, f.shell.UpdateMenuLocale(i18n.English))

	assert.Same(t, before, f.shell.Menu())
	assert.Equal(t, i18n.Chinese, f.shell.CurrentLocale())
}

func TestHeadlessShell(t *testing.T) {
	var exits []int
	s := New(Options{Logger: zaptest.NewLogger(t), Exit: func(code int) { exits = append(exits, code) }})
	t.Cleanup(s.Stop)

	require.NoError(t, s.Start())
	require.NoError(t, s.UpdateMenuLocale(i18n.English))
	assert.Equal(t, i18n.English, s.CurrentLocale())
	assert.NoError(t, s.SetWindowTitle("no window"))

	s.HandleTrayIconClick()
	s.HandleCloseRequest()
	s.HandleMenuEvent(menu.IDFileSave)

	s.ExitApp()
	assert.Equal(t, []int{0}, exits)
}

func TestAttachTrayPresentsCurrentTree(t *testing.T) {
	s := New(Options{Logger: zaptest.NewLogger(t)})
	t.Cleanup(s.Stop)
	require.NoError(t, s.Start())

	tray := &fakeTray{}
	require.NoError(t, s.AttachTray(tray))
	require.Len(t, tray.presented, 1)
	assert.Same(t, s.Tray(), tray.presented[0])
}

func TestCommands(t *testing.T) {
	f := newFixture(t, menu.FileMenuLayout{}, true)
	require.NoError(t, f.shell.Start())
	cmds := NewCommands(f.shell)

	assert.Equal(t, "zh", cmds.GetCurrentLocale())
	require.NoError(t, cmds.UpdateMenuLocale("en"))
	assert.Equal(t, "en", cmds.GetCurrentLocale())

	require.NoError(t, cmds.SetWindowTitle("config.json - sing-config"))
	assert.Equal(t, "config.json - sing-config", f.window.title)

	cmds.ExitApp()
	assert.Equal(t, []int{0}, f.exits)
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe()
	other := &fakeEmitter{}

	MultiEmitter{bus, other, nil}.Emit(EventMenu, menu.IDEditUndo)

	select {
	case evt := <-ch:
		assert.Equal(t, EventMenu, evt.Name)
		assert.Equal(t, menu.IDEditUndo, evt.Payload)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
	assert.Equal(t, []string{"menu-event:edit_undo"}, other.events)

	bus.Unsubscribe(ch)
	assert.Equal(t, 0, bus.Subscribers())
	_, open := <-ch
	assert.False(t, open)

	// Unsubscribing twice is harmless
	bus.Unsubscribe(ch)
}
