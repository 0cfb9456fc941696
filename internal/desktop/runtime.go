package desktop

import (
	"context"
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/menu"
)

// Installer swaps the Wails application menu.
type Installer struct {
	ctx     context.Context
	onClick func(id string)
	logger  *zap.Logger
}

// NewInstaller creates an installer whose menu clicks call onClick.
func NewInstaller(ctx context.Context, onClick func(id string), logger *zap.Logger) *Installer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Installer{ctx: ctx, onClick: onClick, logger: logger}
}

// InstallMenu implements shell.MenuInstaller. The Wails menu is fully converted before the
// running one is replaced.
func (i *Installer) InstallMenu(tree *menu.Tree) error {
	m, err := ToWailsMenu(tree, i.onClick)
	if err != nil {
		return fmt.Errorf("convert menu: %w", err)
	}
	if i.ctx == nil {
		return ErrNoContext
	}
	runtime.MenuSetApplicationMenu(i.ctx, m)
	i.logger.Debug("Application menu installed", zap.Int("menus", len(tree.Menus)))
	return nil
}

// Emitter sends events to the web view. Events emitted before Bind are dropped.
type Emitter struct {
	mu  sync.RWMutex
	ctx context.Context
}

// NewEmitter creates an unbound emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Bind hands over the Wails runtime context received in OnStartup.
func (e *Emitter) Bind(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctx = ctx
}

// Emit implements shell.Emitter.
func (e *Emitter) Emit(name, payload string) {
	e.mu.RLock()
	ctx := e.ctx
	e.mu.RUnlock()

	if ctx == nil {
		return
	}
	runtime.EventsEmit(ctx, name, payload)
}
