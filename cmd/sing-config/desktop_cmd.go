package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/desktop"
)

func runDesktop(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, shellFlags(cmd))
	if err != nil {
		return err
	}

	logger, err := setupLogger(cfg, true)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("Starting sing-config", zap.String("version", version))

	emitter := desktop.NewEmitter()
	app, err := newApplication(cfg, logger, appOptions{emitter: emitter})
	if err != nil {
		return err
	}
	defer app.shell.Stop()

	bridgeAddr := cfg.BridgeAddress("")
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	err = desktop.Run(desktop.Options{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		AssetsDir:   cfg.Window.AssetsDir,
		TrayEnabled: cfg.Tray.Enabled,
		Shell:       app.shell,
		Emitter:     emitter,
		Logger:      logger.Named("desktop"),
		OnStarted: func(context.Context) {
			if bridgeAddr == "" {
				return
			}
			srv, err := app.newBridge(false)
			if err != nil {
				logger.Warn("Bridge was not started", zap.Error(err))
				return
			}
			go func() {
				if err := srv.ListenAndServe(ctx, bridgeAddr); err != nil {
					logger.Error("Bridge stopped", zap.Error(err))
				}
			}()
		},
	})
	if err != nil {
		return fmt.Errorf("desktop host: %w", err)
	}

	logger.Info("sing-config stopped")
	return nil
}
