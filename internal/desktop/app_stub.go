//go:build nogui || headless

package desktop

import (
	"context"

	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/shell"
)

// Options configures the desktop host.
type Options struct {
	Title       string
	Width       int
	Height      int
	AssetsDir   string
	TrayEnabled bool

	Shell   *shell.Shell
	Emitter *Emitter
	Logger  *zap.Logger

	OnStarted func(ctx context.Context)
}

// Run always fails; use the serve command instead.
func Run(Options) error {
	return ErrUnavailable
}
