package cmd

import (
	"fmt"

	"github.com/penwyp/xtask/internal/config"
	"github.com/penwyp/xtask/internal/git"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the xtask configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the project root",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if path == "" {
			root, err := git.ProjectRoot("")
			if err != nil {
				return err
			}
			path = config.Resolve("", root)
		}

		manager, err := config.NewYAMLConfigManager(path)
		if err != nil {
			return err
		}
		if err := manager.CreateDefaultConfig(); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), renderStatusBar("Config written", true))
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), manager.Path())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := ""
		if flagConfig == "" {
			var err error
			if root, err = git.ProjectRoot(""); err != nil {
				return err
			}
		}

		cfg, err := loadConfig(root)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "remote.host: %s\n", cfg.Remote.Host)
		_, _ = fmt.Fprintf(out, "remote.suffix: %s\n", cfg.Remote.Suffix)
		_, _ = fmt.Fprintf(out, "remote.default_branch: %s\n", cfg.Remote.DefaultBranch)
		_, _ = fmt.Fprintf(out, "git.binary: %s\n", cfg.Git.Binary)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
