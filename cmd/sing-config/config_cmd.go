package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sing-config/sing-config/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the sing-config configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration file",
		Long:  "Writes the default configuration as TOML. Without a path the file goes to ~/.sing-config/sing-config.toml.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}

			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created default configuration file at %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Prints the configuration after defaults, the config file and SINGCONFIG_* environment variables were merged.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, used, err := config.Load(configFile, nil)
			if err != nil {
				return &configError{err: err}
			}
			if used == "" {
				used = "(none, using defaults)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# config file: %s\n", used)
			return config.Encode(cfg, cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
