package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/config"
	"github.com/sing-config/sing-config/internal/i18n"
	"github.com/sing-config/sing-config/internal/logs"
	"github.com/sing-config/sing-config/internal/menu"
)

var (
	configFile string
	logLevel   string
	logToFile  bool
	logDir     string

	version = "v0.1.0" // injected by -ldflags during build
)

func main() {
	os.Exit(execute(newRootCmd(), os.Args[1:]))
}

// execute runs the command tree and maps its error onto a process exit code.
func execute(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		code := exitCodeFor(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code != ExitCodeGeneralError {
			fmt.Fprintf(os.Stderr, "Exit code %d: %s\n", code, exitCodeDescription(code))
		}
		return code
	}
	return ExitCodeSuccess
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sing-config",
		Short:         "sing-config desktop configuration editor",
		Long:          "Runs the sing-config desktop window with its native menu bar and tray icon.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDesktop,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path (default: ./sing-config.toml or ~/.sing-config/sing-config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logToFile, "log-to-file", false, "Enable logging to file in standard OS location")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Custom log directory path (overrides standard OS location)")

	addShellFlags(rootCmd)

	rootCmd.AddCommand(
		newServeCmd(),
		newMenuCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// addShellFlags registers the flags shared by the commands that run a shell.
func addShellFlags(cmd *cobra.Command) {
	cmd.Flags().String("locale", "", "Startup locale (zh, en or any BCP-47 tag)")
	cmd.Flags().String("layout", "", "Menu layout (auto, app-menu, file-menu)")
	cmd.Flags().Bool("tray", true, "Enable the system tray icon")
	cmd.Flags().String("listen", "", "Bridge listen address")
}

// shellFlags maps configuration keys onto the flags registered by addShellFlags.
func shellFlags(cmd *cobra.Command) config.Flags {
	return config.Flags{
		"locale":        cmd.Flags().Lookup("locale"),
		"menu.layout":   cmd.Flags().Lookup("layout"),
		"tray.enabled":  cmd.Flags().Lookup("tray"),
		"bridge.listen": cmd.Flags().Lookup("listen"),
	}
}

// loadConfig loads the configuration with flags layered on top, then applies the
// persistent logging flags of cmd.
func loadConfig(cmd *cobra.Command, flags config.Flags) (*config.Config, error) {
	cfg, _, err := config.Load(configFile, flags)
	if err != nil {
		return nil, &configError{err: err}
	}
	if cfg.Logging == nil {
		cfg.Logging = logs.DefaultLogConfig()
	}

	// An explicit --locale wins over system locale detection
	if f := flags["locale"]; f != nil && f.Changed {
		cfg.DetectSystemLocale = false
	}

	if cmd.Flags().Changed("log-to-file") {
		cfg.Logging.EnableFile = logToFile
	}
	if logDir != "" {
		cfg.Logging.LogDir = logDir
	}
	return cfg, nil
}

// resolveLocale picks the startup locale from the configuration.
func resolveLocale(cfg *config.Config, logger *zap.Logger) i18n.Locale {
	if cfg.DetectSystemLocale {
		locale, err := i18n.DetectSystem()
		if err != nil {
			logger.Warn("Failed to detect system locale, using default", zap.Error(err))
		}
		return locale
	}
	return i18n.Resolve(cfg.Locale)
}

func resolveLayout(cfg *config.Config) (menu.Layout, error) {
	layout, err := menu.ParseLayout(cfg.Menu.Layout, runtime.GOOS)
	if err != nil {
		return nil, &configError{err: err}
	}
	return layout, nil
}

func setupLogger(cfg *config.Config, longRunning bool) (*zap.Logger, error) {
	logger, err := logs.SetupCommandLogger(longRunning, cfg.Logging, logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return logger, nil
}
