package cmd

import (
	"context"
	"io"

	"github.com/penwyp/xtask/internal/config"
	"github.com/penwyp/xtask/internal/errors"
	"github.com/penwyp/xtask/internal/git"
	"github.com/penwyp/xtask/internal/remote"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// remoteRunner 抽象 remote.Manager，测试时注入 Mock
type remoteRunner interface {
	Run(ctx context.Context, req remote.Request) (remote.Outcome, error)
}

var remoteProvider func(out io.Writer) (remoteRunner, error) = defaultRemoteProvider

// defaultRemoteProvider 定位项目根目录、加载配置，并在根目录下执行 git
func defaultRemoteProvider(out io.Writer) (remoteRunner, error) {
	root, err := git.ProjectRoot("")
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return nil, err
	}
	appLogger.Debug("Resolved project", zap.String("root", root), zap.Stringer("config", cfg))

	runner := git.NewExecRunner(root, appLogger)
	gm := git.NewRemoteManagerWithBinary(runner, cfg.Git.Binary)
	return remote.NewManager(gm, out, appLogger, remote.OptionsFromConfig(cfg)), nil
}

func loadConfig(root string) (*config.Config, error) {
	manager, err := config.NewYAMLConfigManager(config.Resolve(flagConfig, root))
	if err != nil {
		return nil, err
	}
	return manager.Load()
}

var remoteCmd = &cobra.Command{
	Use:   "remote [github_uri | remote_name]",
	Short: "Add, list or remove git remotes derived from GitHub URIs",
	Long: `Add a git remote for a GitHub repository, fetch it and print its branches.

The remote is named after the repository owner, lower-cased, with a "-xtask"
suffix: git@github.com:Acme/Widget.git becomes acme-xtask. Adding a remote that
already exists only fetches it again.

With --delete the argument may be a GitHub URI or a plain remote name. If the
current branch tracks that remote, the default branch is checked out first.`,
	Example: `  xtask remote git@github.com:Acme/Widget.git
  xtask remote -l
  xtask remote -d acme-xtask`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemote,
}

var (
	flagDelete bool
	flagList   bool
)

func init() {
	remoteCmd.Flags().BoolVarP(&flagDelete, "delete", "d", false, "remove the remote instead of adding it")
	remoteCmd.Flags().BoolVarP(&flagList, "list", "l", false, "list configured remotes with their URLs")
	rootCmd.AddCommand(remoteCmd)
}

func runRemote(cmd *cobra.Command, args []string) error {
	req := remote.Request{Delete: flagDelete, List: flagList}
	if len(args) > 0 {
		req.Target = args[0]
	}
	// 在定位项目根目录之前报告用法错误
	if req.Target == "" && !req.List {
		return errors.ErrMissingTarget
	}

	runner, err := remoteProvider(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	outcome, err := runner.Run(cmd.Context(), req)
	if err != nil {
		appLogger.Debug("Remote command failed",
			zap.Stringer("type", errors.GetType(err)),
			zap.Error(err))
		return err
	}

	renderOutcome(cmd.ErrOrStderr(), outcome)
	return nil
}
