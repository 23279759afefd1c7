package cmd

import (
	"fmt"

	"github.com/penwyp/xtask/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version holds the current version of xtask
// This will be set at build time via ldflags
var version = "dev"

// GetVersionString returns a formatted version string
func GetVersionString() string {
	return fmt.Sprintf("xtask version %s", version)
}

var appLogger = zap.NewNop() // 全局日志记录器

var rootCmd = &cobra.Command{
	Use:   "xtask",
	Short: "Developer tasks for working across GitHub forks",
	Long: `xtask bundles small repository chores behind one binary.

The remote subcommand adds a git remote named after the owner of a GitHub URI,
fetches it and shows its branches, lists configured remotes, or removes one.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVersion {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), GetVersionString())
			return nil
		}
		return cmd.Help()
	},
}

var (
	flagDebug   bool
	flagConfig  string
	flagVersion bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug output for troubleshooting")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default is <project root>/.xtask.yaml)")
	rootCmd.Flags().BoolVar(&flagVersion, "version", false, "show version information")
}

func initLogger(cmd *cobra.Command, args []string) error {
	log, err := logger.New(flagDebug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = log
	appLogger.Debug("Starting xtask",
		zap.String("version", version),
		zap.String("command", cmd.CommandPath()),
		zap.Strings("args", args))
	return nil
}

// Execute runs the root command.
func Execute() error {
	defer func() { _ = appLogger.Sync() }()
	return rootCmd.Execute()
}
