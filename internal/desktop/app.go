//go:build !nogui && !headless

package desktop

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/shell"
	"github.com/sing-config/sing-config/internal/tray"
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

	// OnStarted runs after the shell started inside the Wails startup hook.
	OnStarted func(ctx context.Context)
}

type app struct {
	opts   Options
	logger *zap.Logger
	window *Window
	tray   *tray.Presenter

	startErr error
}

// Run opens the main window and blocks until the application quits. A shell that fails to
// start quits the application and its error is returned.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Shell == nil {
		return fmt.Errorf("desktop: shell is required")
	}

	assets, err := Assets(opts.AssetsDir)
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	a := &app{
		opts:   opts,
		logger: logger,
		window: NewWindow(),
	}

	err = wails.Run(&options.App{
		Title:     opts.Title,
		Width:     opts.Width,
		Height:    opts.Height,
		MinWidth:  640,
		MinHeight: 480,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup:     a.startup,
		OnBeforeClose: a.window.BeforeClose,
		OnShutdown:    a.shutdown,
		Bind: []interface{}{
			shell.NewCommands(opts.Shell),
		},
	})
	if err != nil {
		return err
	}
	return a.startErr
}

func (a *app) startup(ctx context.Context) {
	s := a.opts.Shell

	a.window.Bind(ctx)
	if a.opts.Emitter != nil {
		a.opts.Emitter.Bind(ctx)
	}
	installer := NewInstaller(ctx, s.HandleMenuEvent, a.logger.Named("menu"))
	if err := startShell(s, a.window, installer); err != nil {
		a.startErr = err
		a.logger.Error("Native shell failed to start, quitting", zap.Error(err))
		runtime.Quit(ctx)
		return
	}

	if a.opts.TrayEnabled {
		a.tray = tray.New(s, a.logger.Named("tray"))
		a.tray.Start(func(p *tray.Presenter) {
			if err := s.AttachTray(p); err != nil {
				a.logger.Error("Failed to attach tray", zap.Error(err))
			}
		})
	}

	if a.opts.OnStarted != nil {
		a.opts.OnStarted(ctx)
	}
}

func (a *app) shutdown(context.Context) {
	a.opts.Shell.Window().Detach()
	if a.tray != nil {
		a.tray.Stop()
	}
	a.logger.Info("Desktop host stopped")
}
