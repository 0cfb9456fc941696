package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/bridge"
	"github.com/sing-config/sing-config/internal/config"
	"github.com/sing-config/sing-config/internal/desktop"
	"github.com/sing-config/sing-config/internal/notify"
	"github.com/sing-config/sing-config/internal/observability"
	"github.com/sing-config/sing-config/internal/shell"
	"github.com/sing-config/sing-config/internal/tray"
)

// application is one process worth of wired components.
type application struct {
	cfg     *config.Config
	logger  *zap.Logger
	shell   *shell.Shell
	bus     *shell.EventBus
	metrics *observability.Metrics
	health  *observability.HealthManager
}

// appOptions carries the process-specific pieces of newApplication.
type appOptions struct {
	// emitter receives forwarded events in addition to the bridge event bus.
	emitter shell.Emitter

	// exit replaces os.Exit for ExitApp.
	exit func(code int)

	// notifier overrides the default beeep notifier.
	notifier shell.HideNotifier
}

func newApplication(cfg *config.Config, logger *zap.Logger, opts appOptions) (*application, error) {
	layout, err := resolveLayout(cfg)
	if err != nil {
		return nil, err
	}
	locale := resolveLocale(cfg, logger)

	app := &application{
		cfg:     cfg,
		logger:  logger,
		bus:     shell.NewEventBus(),
		metrics: observability.NewMetrics(logger.Named("metrics")),
		health:  observability.NewHealthManager(logger.Named("health")),
	}

	notifier := opts.notifier
	if notifier == nil {
		notifier = notify.New(logger.Named("notify"), cfg.Tray.Enabled && cfg.Tray.NotifyOnHide,
			notify.WithIcon(tray.Icon()))
	}

	emitters := shell.MultiEmitter{app.bus}
	if opts.emitter != nil {
		emitters = append(emitters, opts.emitter)
	}

	app.shell = shell.New(shell.Options{
		Locale:            locale,
		Layout:            layout,
		TrayFollowsLocale: cfg.Tray.FollowLocale,
		Emitter:           emitters,
		Notifier:          notifier,
		Metrics:           app.metrics,
		Logger:            logger.Named("shell"),
		Exit:              opts.exit,
	})

	app.health.AddHealthChecker(observability.CheckFunc{
		Component: "menu",
		Check: func(context.Context) error {
			if app.shell.Menu() == nil {
				return errors.New("menu bar not built")
			}
			return nil
		},
	})
	if cfg.Tray.Enabled {
		app.health.AddHealthChecker(observability.CheckFunc{
			Component: "tray",
			Check: func(context.Context) error {
				if app.shell.Tray() == nil {
					return errors.New("tray menu not built")
				}
				return nil
			},
		})
	}

	logger.Info("Application configured",
		zap.String("locale", string(locale)),
		zap.String("layout", layout.Name()),
		zap.Bool("tray_enabled", cfg.Tray.Enabled),
		zap.Bool("tray_follow_locale", cfg.Tray.FollowLocale))

	return app, nil
}

// newBridge builds the bridge server. withAssets serves the front end at / for the
// headless mode, where no web view exists.
func (a *application) newBridge(withAssets bool) (*bridge.Server, error) {
	opts := []bridge.Option{
		bridge.WithMetrics(a.metrics),
		bridge.WithHealth(a.health),
	}
	if withAssets {
		assets, err := desktop.AssetHandler(a.cfg.Window.AssetsDir)
		if err != nil {
			return nil, &configError{err: fmt.Errorf("window.assets_dir: %w", err)}
		}
		opts = append(opts, bridge.WithAssets(assets))
	}
	return bridge.NewServer(a.shell, a.bus, a.logger.Named("bridge"), opts...), nil
}
