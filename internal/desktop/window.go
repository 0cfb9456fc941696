package desktop

import (
	"context"
	"errors"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var (
	// ErrNoContext is returned before the Wails runtime handed over its context.
	ErrNoContext = errors.New("wails runtime context not available")

	// ErrUnavailable is returned by Run in builds without a desktop host.
	ErrUnavailable = errors.New("desktop host not available in nogui/headless builds")
)

// Window drives the Wails main window. It reports close requests received through
// BeforeClose to its subscriber.
type Window struct {
	mu      sync.RWMutex
	ctx     context.Context
	onClose func() bool
}

// NewWindow creates a window. Calls fail with ErrNoContext until Bind.
func NewWindow() *Window {
	return &Window{}
}

// Bind hands over the Wails runtime context received in OnStartup.
func (w *Window) Bind(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ctx = ctx
}

func (w *Window) context() (context.Context, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.ctx == nil {
		return nil, ErrNoContext
	}
	return w.ctx, nil
}

// Show implements window.Handle.
func (w *Window) Show() error {
	ctx, err := w.context()
	if err != nil {
		return err
	}
	runtime.WindowShow(ctx)
	runtime.WindowUnminimise(ctx)
	return nil
}

// Hide implements window.Handle.
func (w *Window) Hide() error {
	ctx, err := w.context()
	if err != nil {
		return err
	}
	runtime.WindowHide(ctx)
	return nil
}

// Focus brings the window in front of other windows.
func (w *Window) Focus() error {
	ctx, err := w.context()
	if err != nil {
		return err
	}
	runtime.WindowSetAlwaysOnTop(ctx, true)
	runtime.WindowSetAlwaysOnTop(ctx, false)
	return nil
}

// SetTitle implements window.Handle.
func (w *Window) SetTitle(title string) error {
	ctx, err := w.context()
	if err != nil {
		return err
	}
	runtime.WindowSetTitle(ctx, title)
	return nil
}

// OnCloseRequested implements window.CloseNotifier.
func (w *Window) OnCloseRequested(fn func() bool) func() {
	w.mu.Lock()
	w.onClose = fn
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		w.onClose = nil
		w.mu.Unlock()
	}
}

// BeforeClose is installed as the Wails OnBeforeClose hook. It returns true to keep the
// window open.
func (w *Window) BeforeClose(context.Context) bool {
	w.mu.RLock()
	fn := w.onClose
	w.mu.RUnlock()

	if fn == nil {
		return false
	}
	return fn()
}
