// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strings"

	"iucli/internal/config"
	"iucli/internal/logger"

	"github.com/spf13/cobra"
)

// newConfigCmd is the parent command for all configuration-related subcommands
func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage iucli configuration",
		Long: `Provides subcommands to inspect and change the iucli configuration file.

Values are layered: built-in defaults, then the configuration file, then
IUCLI_* environment variables (for example IUCLI_DEFAULT_MANAGER=pnpm).

Keys: default_project_name, default_manager, templates_dir, log_level and
rename.<template file name>.`,
	}

	configCmd.AddCommand(newConfigPathCmd(), newConfigGetCmd(a), newConfigSetCmd())
	return configCmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "get [key]",
		Short:             "Show the effective value of one or all keys",
		Example:           "  iucli config get\n  iucli config get default_manager\n  iucli config get rename._gitignore",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: configKeyCompletionFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadedConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				value, err := cfg.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, value)
				return nil
			}

			for _, key := range config.Keys() {
				value, err := cfg.Get(key)
				if err != nil {
					return err
				}
				if key == config.KeyRename {
					fmt.Fprintf(out, "%s:\n", identifierColor.Sprint(key))
					for _, line := range strings.Split(value, "\n") {
						fmt.Fprintf(out, "  %s\n", line)
					}
					continue
				}
				if value == "" {
					value = dimColor.Sprint("(unset)")
				}
				fmt.Fprintf(out, "%s: %s\n", identifierColor.Sprint(key), value)
			}
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a key in the configuration file",
		Long: `Sets a key in the configuration file. An empty value clears the key, so the
built-in default applies again. Rename entries are set as rename.<from> <to>.`,
		Example:           "  iucli config set default_manager pnpm\n  iucli config set rename._npmrc .npmrc\n  iucli config set templates_dir \"\"",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: configKeyCompletionFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			cfg, err := config.ReadFile(path)
			if err != nil {
				return err
			}
			if err := cfg.Set(key, value); err != nil {
				return err
			}
			if err := config.SaveTo(path, cfg); err != nil {
				return err
			}

			logger.Info("Configuration updated", "key", key, "path", path)
			if value == "" {
				successColor.Fprintf(cmd.OutOrStdout(), "Cleared %s.\n", key)
			} else {
				successColor.Fprintf(cmd.OutOrStdout(), "Set %s to %s.\n", key, value)
			}
			return nil
		},
	}
}
