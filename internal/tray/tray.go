//go:build !nogui && !headless

package tray

import (
	"errors"
	goruntime "runtime"
	"sync"

	"github.com/energye/systray"
	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/menu"
)

// ErrNotReady is returned when a menu is presented before the tray loop started.
var ErrNotReady = errors.New("tray is not ready")

// Presenter owns the OS tray icon and renders tray menus on it.
type Presenter struct {
	handler Handler
	logger  *zap.Logger

	mu    sync.Mutex
	ready bool
	end   func()
}

// New creates a tray presenter. Nothing is shown until Start.
func New(handler Handler, logger *zap.Logger) *Presenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Presenter{handler: handler, logger: logger}
}

// Start runs the tray loop. onReady is called once the icon exists and menus can be
// presented. On macOS the host owns the main thread, so the tray joins its loop instead of
// running its own.
func (p *Presenter) Start(onReady func(p *Presenter)) {
	ready := func() {
		p.setup()
		if onReady != nil {
			onReady(p)
		}
	}
	exit := func() {
		p.mu.Lock()
		p.ready = false
		p.mu.Unlock()
		p.logger.Info("Tray exited")
	}

	if goruntime.GOOS == "darwin" {
		start, end := systray.RunWithExternalLoop(ready, exit)
		p.mu.Lock()
		p.end = end
		p.mu.Unlock()
		start()
		return
	}

	go func() {
		goruntime.LockOSThread()
		systray.Run(ready, exit)
	}()
}

// Stop removes the tray icon.
func (p *Presenter) Stop() {
	p.mu.Lock()
	end := p.end
	p.mu.Unlock()

	if end != nil {
		end()
		return
	}
	systray.Quit()
}

func (p *Presenter) setup() {
	systray.SetIcon(TrayIcon(goruntime.GOOS))
	systray.SetTooltip(Tooltip())

	systray.SetOnClick(func(systray.IMenu) {
		p.handler.HandleTrayIconClick()
	})
	systray.SetOnRClick(func(m systray.IMenu) {
		if err := m.ShowMenu(); err != nil {
			p.logger.Debug("Failed to show tray menu", zap.Error(err))
		}
	})

	p.mu.Lock()
	p.ready = true
	p.mu.Unlock()

	p.logger.Info("Tray ready")
}

// Present replaces the tray menu with tree.
func (p *Presenter) Present(tree *menu.TrayTree) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return ErrNotReady
	}

	systray.ResetMenu()
	for _, e := range Entries(tree) {
		p.add(nil, e)
	}

	p.logger.Debug("Tray menu presented", zap.Int("entries", len(tree.Items)))
	return nil
}

func (p *Presenter) add(parent *systray.MenuItem, e Entry) {
	if e.Separator {
		// systray only supports separators at the top level
		if parent == nil {
			systray.AddSeparator()
		}
		return
	}

	var item *systray.MenuItem
	switch {
	case parent == nil && e.Checkable:
		item = systray.AddMenuItemCheckbox(e.Title, e.Title, e.Checked)
	case parent == nil:
		item = systray.AddMenuItem(e.Title, e.Title)
	case e.Checkable:
		item = parent.AddSubMenuItemCheckbox(e.Title, e.Title, e.Checked)
	default:
		item = parent.AddSubMenuItem(e.Title, e.Title)
	}
	if e.Disabled {
		item.Disable()
	}

	for _, c := range e.Children {
		p.add(item, c)
	}

	if e.ID != "" {
		id := e.ID
		item.Click(func() {
			p.handler.HandleTrayEvent(id)
		})
	}
}
