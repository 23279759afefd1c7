package remote

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/xtask/internal/config"
	"github.com/penwyp/xtask/internal/errors"
	"github.com/penwyp/xtask/internal/git"
	"go.uber.org/zap"
)

// Action 描述一次操作对远程表的影响
type Action int

const (
	// ActionNone 仅列出远程，没有修改
	ActionNone Action = iota
	// ActionCreated 新注册并拉取了远程
	ActionCreated
	// ActionFetched 远程已存在，仅重新拉取
	ActionFetched
	// ActionDeleted 远程已删除
	ActionDeleted
	// ActionSkipped 要删除的远程不存在
	ActionSkipped
)

func (a Action) String() string {
	switch a {
	case ActionCreated:
		return "created"
	case ActionFetched:
		return "fetched"
	case ActionDeleted:
		return "deleted"
	case ActionSkipped:
		return "skipped"
	default:
		return "none"
	}
}

// Outcome is what a create or delete did.
type Outcome struct {
	Action Action
	Remote string
	// SwitchedTo is the branch checked out before a delete, if any.
	SwitchedTo string
}

// Request is one invocation of the remote command.
type Request struct {
	Target string // GitHub URI, or a bare remote name when Delete is set
	Delete bool
	List   bool
}

// Options 控制命名与删除策略
type Options struct {
	Namer         Namer
	DefaultBranch string
}

// DefaultOptions mirrors config.Default.
func DefaultOptions() Options {
	return Options{
		Namer:         DefaultNamer,
		DefaultBranch: config.DefaultBranch,
	}
}

// OptionsFromConfig builds Options from a loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Namer:         Namer{Host: cfg.Remote.Host, Suffix: cfg.Remote.Suffix},
		DefaultBranch: cfg.Remote.DefaultBranch,
	}
}

// Manager implements the remote lifecycle on top of git.RemoteManager.
// Reports are written to out; everything else goes to the logger.
type Manager struct {
	git    git.RemoteManager
	out    io.Writer
	logger *zap.Logger
	opts   Options
}

// NewManager 创建 Manager；logger 为 nil 时不输出日志
func NewManager(g git.RemoteManager, out io.Writer, logger *zap.Logger, opts Options) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Namer.Host == "" || opts.Namer.Suffix == "" {
		opts.Namer = DefaultNamer
	}
	if opts.DefaultBranch == "" {
		opts.DefaultBranch = config.DefaultBranch
	}
	return &Manager{git: g, out: out, logger: logger, opts: opts}
}

// Run dispatches a request: create or delete the target, then list remotes
// if asked. The remote list is read once up front and re-read for the
// listing so that it reflects the mutation just performed.
func (m *Manager) Run(ctx context.Context, req Request) (Outcome, error) {
	if req.Target == "" && !req.List {
		return Outcome{}, errors.ErrMissingTarget
	}

	existing, err := m.git.ListRemoteNames(ctx)
	if err != nil {
		return Outcome{}, err
	}

	var outcome Outcome
	if req.Target != "" {
		if req.Delete {
			outcome, err = m.Delete(ctx, existing, req.Target)
		} else {
			outcome, err = m.Create(ctx, existing, req.Target)
		}
		if err != nil {
			return outcome, err
		}
	}

	if req.List {
		names, err := m.git.ListRemoteNames(ctx)
		if err != nil {
			return outcome, err
		}
		if err := m.ShowRemotes(ctx, names); err != nil {
			return outcome, err
		}
	}

	return outcome, nil
}

// Create registers the remote derived from uri unless a remote of that name
// already exists, fetches it, and prints its remote-tracking branches.
// A fetch failure after a successful add leaves the remote registered.
func (m *Manager) Create(ctx context.Context, existing []string, uri string) (Outcome, error) {
	name, err := m.opts.Namer.Parse(uri)
	if err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{Action: ActionFetched, Remote: name}
	if !contains(existing, name, true) {
		m.logger.Debug("Adding remote", zap.String("remote", name), zap.String("url", uri))
		if err := m.git.AddRemote(ctx, name, uri); err != nil {
			return Outcome{}, err
		}
		outcome.Action = ActionCreated
	} else {
		m.logger.Debug("Remote already configured", zap.String("remote", name))
	}

	m.logger.Debug("Fetching remote", zap.String("remote", name))
	if err := m.git.Fetch(ctx, name); err != nil {
		return outcome, err
	}

	branches, err := m.git.RemoteBranches(ctx)
	if err != nil {
		return outcome, err
	}

	fmt.Fprintf(m.out, "\nRemote branches for %s\n", uri)
	for _, branch := range FilterBranches(branches, name) {
		fmt.Fprintf(m.out, "\t%s\n", branch)
	}

	return outcome, nil
}

// Delete removes the remote named by target, which may be a URI or a bare
// remote name. A target that does not parse as a URI is used verbatim.
// Removing an absent remote is a no-op. When the current branch tracks the
// remote, the default branch is checked out first; if that fails the remote
// is kept.
func (m *Manager) Delete(ctx context.Context, existing []string, target string) (Outcome, error) {
	name, err := m.opts.Namer.Parse(target)
	if err != nil {
		m.logger.Debug("Target is not a URI, using it as remote name",
			zap.String("target", target), zap.Error(err))
		name = target
	}

	if !contains(existing, name, false) {
		m.logger.Debug("Remote not configured, nothing to delete", zap.String("remote", name))
		return Outcome{Action: ActionSkipped, Remote: name}, nil
	}

	outcome := Outcome{Action: ActionDeleted, Remote: name}

	current, err := m.git.CurrentUpstreamRemote(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if current == name {
		m.logger.Debug("Remote is tracked by the current branch, switching away",
			zap.String("remote", name), zap.String("branch", m.opts.DefaultBranch))
		if err := m.git.Checkout(ctx, m.opts.DefaultBranch); err != nil {
			return Outcome{}, err
		}
		outcome.SwitchedTo = m.opts.DefaultBranch
	}

	if err := m.git.RemoveRemote(ctx, name); err != nil {
		return outcome, err
	}

	return outcome, nil
}

// ShowRemotes prints each remote with its URL.
func (m *Manager) ShowRemotes(ctx context.Context, names []string) error {
	remotes := make([]git.Remote, 0, len(names))
	for _, name := range names {
		url, err := m.git.RemoteURL(ctx, name)
		if err != nil {
			return err
		}
		remotes = append(remotes, git.Remote{Name: name, URL: url})
	}

	fmt.Fprintln(m.out, "\nRemotes:")
	for _, r := range remotes {
		fmt.Fprintf(m.out, "\t%s: %s\n", r.Name, r.URL)
	}
	return nil
}

// FilterBranches keeps the remote-tracking branches whose first path
// segment is remote.
func FilterBranches(branches []string, remote string) []string {
	var result []string
	for _, branch := range branches {
		owner, _, _ := strings.Cut(branch, "/")
		if strings.TrimSpace(owner) == remote {
			result = append(result, strings.TrimSpace(branch))
		}
	}
	return result
}

// contains 判断远程是否已存在；trim 为 true 时忽略两端空白
func contains(names []string, name string, trim bool) bool {
	for _, n := range names {
		if trim {
			if strings.TrimSpace(n) == strings.TrimSpace(name) {
				return true
			}
			continue
		}
		if n == name {
			return true
		}
	}
	return false
}
