package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/config"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the shell headless and expose its commands over the local bridge",
		Long: `Runs the native shell without a window, menu bar or tray. The command surface,
the built menus and forwarded events are reachable over loopback HTTP (default ` + config.DefaultBridgeListen + `).`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}
	addShellFlags(cmd)
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
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

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ExitApp over the bridge shuts the server down instead of killing the process.
	app, err := newApplication(cfg, logger, appOptions{
		exit: func(int) { stop() },
	})
	if err != nil {
		return err
	}

	addr := cfg.BridgeAddress(config.DefaultBridgeListen)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	return runServe(ctx, app, ln)
}

// runServe starts the headless shell and serves the bridge on ln until ctx is done.
func runServe(ctx context.Context, app *application, ln net.Listener) error {
	defer app.shell.Stop()

	if err := app.shell.Start(); err != nil {
		_ = ln.Close()
		return fmt.Errorf("start shell: %w", err)
	}

	srv, err := app.newBridge(true)
	if err != nil {
		_ = ln.Close()
		return err
	}

	app.logger.Info("Headless shell ready",
		zap.String("addr", ln.Addr().String()),
		zap.String("locale", string(app.shell.CurrentLocale())))

	if err := srv.Serve(ctx, ln); err != nil {
		return err
	}
	app.logger.Info("Headless shell stopped")
	return nil
}
