//go:build nogui || headless

package tray

import (
	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/menu"
)

// Presenter logs tray menus in builds without a tray.
type Presenter struct {
	handler Handler
	logger  *zap.Logger
}

// New creates a logging presenter.
func New(handler Handler, logger *zap.Logger) *Presenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Presenter{handler: handler, logger: logger}
}

// Start calls onReady immediately; there is no tray loop.
func (p *Presenter) Start(onReady func(p *Presenter)) {
	p.logger.Info("Tray functionality disabled (nogui/headless build)")
	if onReady != nil {
		onReady(p)
	}
}

// Stop does nothing.
func (p *Presenter) Stop() {}

// Present logs the tray entries.
func (p *Presenter) Present(tree *menu.TrayTree) error {
	p.logger.Debug("Tray menu (not shown)", zap.Strings("ids", tree.IDs()))
	return nil
}
