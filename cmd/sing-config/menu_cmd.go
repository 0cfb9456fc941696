package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/cli/output"
	"github.com/sing-config/sing-config/internal/config"
	"github.com/sing-config/sing-config/internal/menu"
)

var (
	menuOutput string
	menuJSON   bool
	menuTray   bool
)

func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the menu bar or tray menu built for a locale",
		Long: `Builds the menu bar (or, with --tray, the tray menu) exactly as the desktop shell
would and prints it. Useful to review translations and accelerators without a display.`,
		Example: `  sing-config menu --locale en
  sing-config menu --layout app-menu -o yaml
  sing-config menu --tray --json`,
		Args: cobra.NoArgs,
		RunE: runMenuCmd,
	}

	cmd.Flags().String("locale", "", "Locale to build for (zh, en or any BCP-47 tag)")
	cmd.Flags().String("layout", "", "Menu layout (auto, app-menu, file-menu)")
	cmd.Flags().BoolVar(&menuTray, "tray", false, "Print the tray menu instead of the menu bar")
	cmd.Flags().StringVarP(&menuOutput, "output", "o", "", "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(&menuJSON, "json", false, "Shorthand for -o json")

	return cmd
}

func runMenuCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, config.Flags{
		"locale":      cmd.Flags().Lookup("locale"),
		"menu.layout": cmd.Flags().Lookup("layout"),
	})
	if err != nil {
		return err
	}

	logger, err := setupLogger(cfg, false)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	formatter, err := output.NewFormatter(output.ResolveFormat(menuOutput, menuJSON))
	if err != nil {
		return &configError{err: err}
	}

	locale := resolveLocale(cfg, logger)

	var (
		views []menu.View
		rows  [][]string
	)
	if menuTray {
		tray, err := menu.BuildTray(locale)
		if err != nil {
			return printBuildError(cmd, formatter, err)
		}
		views = tray.Views()
		tray.Walk(collectRows(&rows))
	} else {
		layout, err := resolveLayout(cfg)
		if err != nil {
			return err
		}
		tree, err := menu.Build(layout, locale)
		if err != nil {
			return printBuildError(cmd, formatter, err)
		}
		logger.Debug("Menu built", zap.String("layout", layout.Name()), zap.String("locale", string(locale)))
		views = tree.Views()
		tree.Walk(collectRows(&rows))
	}

	var out string
	if _, ok := formatter.(*output.TableFormatter); ok {
		out, err = formatter.FormatTable([]string{"PATH", "KIND", "ID", "LABEL", "ACCELERATOR", "STATE"}, rows)
	} else {
		out, err = formatter.Format(views)
	}
	if err != nil {
		return fmt.Errorf("format menu: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// collectRows flattens a walk into one table row per node.
func collectRows(rows *[][]string) menu.WalkFunc {
	return func(path []string, n menu.Node) bool {
		prefix := strings.Join(path, " > ")
		switch v := n.(type) {
		case *menu.Submenu:
			*rows = append(*rows, []string{prefix, string(v.Kind()), "", v.Label, "", ""})
		case *menu.Item:
			*rows = append(*rows, []string{prefix, string(v.Kind()), v.ID, v.Label, v.Accelerator, enabledState(v.Enabled)})
		case *menu.CheckItem:
			state := enabledState(v.Enabled)
			if v.Checked {
				state = "checked"
			}
			*rows = append(*rows, []string{prefix, string(v.Kind()), v.ID, v.Label, "", state})
		default:
			*rows = append(*rows, []string{prefix, string(n.Kind()), "", "---", "", ""})
		}
		return true
	}
}

func enabledState(enabled bool) string {
	if enabled {
		return ""
	}
	return "disabled"
}

// printBuildError reports a build failure in the selected format and returns err so the
// exit code reflects it.
func printBuildError(cmd *cobra.Command, formatter output.OutputFormatter, err error) error {
	se := output.FromError(err, output.ErrCodeBuildFailed)
	var buildErr *menu.BuildError
	if errors.As(err, &buildErr) {
		se = se.WithContext("target", buildErr.Target)
		if buildErr.ID != "" {
			se = se.WithContext("id", buildErr.ID)
		}
	}
	if text, ferr := formatter.FormatError(se); ferr == nil {
		fmt.Fprint(cmd.ErrOrStderr(), text)
	}
	return err
}
