// Package shell ties the menu builder, the event router and the window controller together
// and exposes the command surface used by the embedding application.
package shell

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/i18n"
	"github.com/sing-config/sing-config/internal/menu"
	"github.com/sing-config/sing-config/internal/observability"
	"github.com/sing-config/sing-config/internal/router"
	"github.com/sing-config/sing-config/internal/window"
)

// AppState is the application-wide state every build reads from.
type AppState struct {
	Locale i18n.Locale `json:"locale"`
}

// Options configures a Shell. Only Layout is required.
type Options struct {
	Locale            i18n.Locale
	Layout            menu.Layout
	TrayFollowsLocale bool

	Installer MenuInstaller
	Tray      TrayPresenter
	Emitter   Emitter
	Notifier  HideNotifier
	Metrics   *observability.Metrics
	Logger    *zap.Logger

	// Exit ends the process. Defaults to os.Exit.
	Exit func(code int)
}

// Shell is the native shell of one application process.
type Shell struct {
	mu       sync.RWMutex
	state    AppState
	menuTree *menu.Tree
	trayTree *menu.TrayTree

	layout            menu.Layout
	trayFollowsLocale bool

	installer MenuInstaller
	tray      TrayPresenter
	emitter   Emitter
	notifier  HideNotifier
	metrics   *observability.Metrics
	window    *window.Controller
	logger    *zap.Logger
	exit      func(code int)

	transitions <-chan window.Transition
	watchDone   chan struct{}
}

// New creates a shell. Nothing is built until Start.
func New(opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	locale := opts.Locale
	if locale == "" {
		locale = i18n.DefaultLocale
	}
	layout := opts.Layout
	if layout == nil {
		layout = menu.FileMenuLayout{}
	}
	exit := opts.Exit
	if exit == nil {
		exit = os.Exit
	}

	s := &Shell{
		state:             AppState{Locale: locale},
		layout:            layout,
		trayFollowsLocale: opts.TrayFollowsLocale,
		installer:         opts.Installer,
		tray:              opts.Tray,
		emitter:           opts.Emitter,
		notifier:          opts.Notifier,
		metrics:           opts.Metrics,
		window:            window.NewController(logger.Named("window")),
		logger:            logger,
		exit:              exit,
	}
	s.window.OnClose(s.HandleCloseRequest)

	s.transitions = s.window.Subscribe()
	s.watchDone = make(chan struct{})
	go s.watchWindow()
	return s
}

// Stop ends the shell's background work. It is safe to call more than once.
func (s *Shell) Stop() {
	s.window.Unsubscribe(s.transitions)
	<-s.watchDone
}

// watchWindow keeps the visibility gauge current and sends the hide notification for every
// visible to hidden transition.
func (s *Shell) watchWindow() {
	defer close(s.watchDone)

	for t := range s.transitions {
		s.metrics.SetWindowVisible(t.To == window.StateVisible)
		if t.To == window.StateHidden && s.notifier != nil {
			s.notifier.WindowHidden(i18n.For(s.CurrentLocale()))
		}
	}
}

// Window returns the visibility controller.
func (s *Shell) Window() *window.Controller {
	return s.window
}

// State returns a copy of the application state.
func (s *Shell) State() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Menu returns the installed menu tree, or nil before Start.
func (s *Shell) Menu() *menu.Tree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.menuTree
}

// Tray returns the presented tray tree, or nil before Start.
func (s *Shell) Tray() *menu.TrayTree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trayTree
}

// Layout returns the layout chosen at startup.
func (s *Shell) Layout() menu.Layout {
	return s.layout
}

// SetInstaller sets the menu installer once the host is ready.
func (s *Shell) SetInstaller(installer MenuInstaller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.installer = installer
}

// AttachTray sets the tray presenter once the tray loop is running and presents the current
// tray menu on it when the shell has already started.
func (s *Shell) AttachTray(tray TrayPresenter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tray = tray
	if tray == nil || s.trayTree == nil {
		return nil
	}
	if err := tray.Present(s.trayTree); err != nil {
		return fmt.Errorf("present tray menu: %w", err)
	}
	return nil
}

// Start builds and installs the menu bar and the tray menu. Any failure aborts startup.
func (s *Shell) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	locale := s.state.Locale

	tree, err := s.buildMenu(locale)
	if err != nil {
		return err
	}
	tray, err := s.buildTray(locale)
	if err != nil {
		return err
	}

	if s.installer != nil {
		if err := s.installer.InstallMenu(tree); err != nil {
			s.logger.Error("Failed to install menu", zap.Error(err))
			return fmt.Errorf("install menu: %w", err)
		}
	}
	s.menuTree = tree

	if s.tray != nil {
		if err := s.tray.Present(tray); err != nil {
			s.logger.Error("Failed to present tray menu", zap.Error(err))
			return fmt.Errorf("present tray menu: %w", err)
		}
	}
	s.trayTree = tray

	s.metrics.SetLocale(string(locale.Canonical()))
	s.metrics.SetWindowVisible(s.window.State() == window.StateVisible)

	s.logger.Info("Native shell started",
		zap.String("locale", string(locale)),
		zap.String("layout", s.layout.Name()),
		zap.Bool("menu_installed", s.installer != nil),
		zap.Bool("tray", s.tray != nil))
	return nil
}

func (s *Shell) buildMenu(locale i18n.Locale) (*menu.Tree, error) {
	tree, err := menu.Build(s.layout, locale)
	if err != nil {
		s.metrics.RecordBuild(menu.TargetMenuBar, observability.ResultError)
		s.logger.Error("Failed to build menu", zap.String("locale", string(locale)), zap.Error(err))
		return nil, err
	}
	s.metrics.RecordBuild(menu.TargetMenuBar, observability.ResultSuccess)
	return tree, nil
}

func (s *Shell) buildTray(locale i18n.Locale) (*menu.TrayTree, error) {
	tray, err := menu.BuildTray(locale)
	if err != nil {
		s.metrics.RecordBuild(menu.TargetTray, observability.ResultError)
		s.logger.Error("Failed to build tray menu", zap.String("locale", string(locale)), zap.Error(err))
		return nil, err
	}
	s.metrics.RecordBuild(menu.TargetTray, observability.ResultSuccess)
	return tray, nil
}

// HandleMenuEvent handles a click on a menu bar entry.
func (s *Shell) HandleMenuEvent(id string) {
	s.apply(router.SourceMenu, router.RouteMenu(id))
}

// HandleTrayEvent handles a click on a tray menu entry.
func (s *Shell) HandleTrayEvent(id string) {
	s.apply(router.SourceTray, router.RouteTray(id))
}

// HandleTrayIconClick handles a primary click on the tray icon.
func (s *Shell) HandleTrayIconClick() {
	s.apply(router.SourceIcon, router.TrayIconClick())
}

// HandleCloseRequest handles the window's close request. It returns true when the host must
// keep the window alive, which is always.
func (s *Shell) HandleCloseRequest() bool {
	s.apply(router.SourceWindow, router.CloseRequested())
	return true
}

func (s *Shell) apply(source router.Source, action router.Action) {
	s.metrics.RecordEvent(string(source), string(action.Kind))
	s.logger.Debug("Routing event",
		zap.String("source", string(source)),
		zap.String("action", action.String()))

	switch action.Kind {
	case router.KindTerminate:
		s.ExitApp()
	case router.KindShowWindow:
		s.window.Show()
	case router.KindHideWindow:
		if source == router.SourceWindow {
			s.window.InterceptClose()
		} else {
			s.window.Hide()
		}
	case router.KindToggleWindow:
		s.window.Toggle()
	case router.KindForward:
		if s.emitter != nil {
			s.emitter.Emit(EventMenu, action.ID)
		}
	}
}

// CurrentLocale returns the active locale.
func (s *Shell) CurrentLocale() i18n.Locale {
	return s.State().Locale
}

// UpdateMenuLocale rebuilds the menu bar (and the tray when configured) for locale and
// installs it. The new trees are fully built before anything is replaced; on failure the
// previous menu stays installed and the locale is unchanged.
func (s *Shell) UpdateMenuLocale(locale i18n.Locale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, err := s.buildMenu(locale)
	if err != nil {
		return fmt.Errorf("rebuild menu for locale %q: %w", locale, err)
	}

	var tray *menu.TrayTree
	if s.trayFollowsLocale {
		if tray, err = s.buildTray(locale); err != nil {
			return fmt.Errorf("rebuild tray menu for locale %q: %w", locale, err)
		}
	}

	if s.installer != nil {
		if err := s.installer.InstallMenu(tree); err != nil {
			s.logger.Error("Failed to install menu", zap.String("locale", string(locale)), zap.Error(err))
			return fmt.Errorf("install menu for locale %q: %w", locale, err)
		}
	}
	s.menuTree = tree
	s.state.Locale = locale
	s.metrics.SetLocale(string(locale.Canonical()))

	if tray != nil {
		if s.tray != nil {
			if err := s.tray.Present(tray); err != nil {
				// The menu bar is already switched; the tray keeps its previous labels.
				s.logger.Warn("Failed to present tray menu", zap.String("locale", string(locale)), zap.Error(err))
				return nil
			}
		}
		s.trayTree = tray
	}

	s.logger.Info("Menu locale updated",
		zap.String("locale", string(locale)),
		zap.Bool("tray_rebuilt", tray != nil))
	return nil
}

// ExitApp terminates the process immediately.
func (s *Shell) ExitApp() {
	s.logger.Info("Exit requested")
	_ = s.logger.Sync()
	s.exit(0)
}

// SetWindowTitle changes the window title. A missing window is not an error.
func (s *Shell) SetWindowTitle(title string) error {
	s.window.SetTitle(title)
	return nil
}
