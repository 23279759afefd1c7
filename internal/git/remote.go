package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/penwyp/xtask/internal/errors"
)

const defaultBinary = "git"

// remoteManager Git远程仓库管理器实现
type remoteManager struct {
	runner Runner
	binary string
}

// NewRemoteManager 创建新的远程仓库管理器
func NewRemoteManager(runner Runner) RemoteManager {
	return NewRemoteManagerWithBinary(runner, defaultBinary)
}

// NewRemoteManagerWithBinary 使用指定的 git 可执行文件
func NewRemoteManagerWithBinary(runner Runner, binary string) RemoteManager {
	if binary == "" {
		binary = defaultBinary
	}
	return &remoteManager{
		runner: runner,
		binary: binary,
	}
}

func (m *remoteManager) git(ctx context.Context, args ...string) (string, error) {
	return m.runner.Run(ctx, m.binary, args...)
}

// ListRemoteNames 获取所有远程仓库名称
func (m *remoteManager) ListRemoteNames(ctx context.Context) ([]string, error) {
	output, err := m.git(ctx, "remote")
	if err != nil {
		return nil, errors.Wrap(errors.ErrTypeGit, "failed to list remotes", err)
	}
	return splitLines(output), nil
}

// RemoteURL 获取远程地址
func (m *remoteManager) RemoteURL(ctx context.Context, name string) (string, error) {
	output, err := m.git(ctx, "remote", "get-url", name)
	if err != nil {
		return "", errors.Wrap(errors.ErrTypeGit, fmt.Sprintf("failed to get url of remote '%s'", name), err)
	}
	return strings.TrimSpace(output), nil
}

func (m *remoteManager) AddRemote(ctx context.Context, name, url string) error {
	if _, err := m.git(ctx, "remote", "add", name, url); err != nil {
		return errors.Wrap(errors.ErrTypeGit, fmt.Sprintf("failed to add remote '%s'", name), err)
	}
	return nil
}

func (m *remoteManager) RemoveRemote(ctx context.Context, name string) error {
	if _, err := m.git(ctx, "remote", "remove", name); err != nil {
		return errors.Wrap(errors.ErrTypeGit, fmt.Sprintf("failed to remove remote '%s'", name), err)
	}
	return nil
}

func (m *remoteManager) Fetch(ctx context.Context, name string) error {
	if _, err := m.git(ctx, "fetch", name); err != nil {
		return errors.Wrap(errors.ErrTypeGit, fmt.Sprintf("failed to fetch remote '%s'", name), err)
	}
	return nil
}

// RemoteBranches 列出远程跟踪分支，已去除 git 输出的缩进
func (m *remoteManager) RemoteBranches(ctx context.Context) ([]string, error) {
	output, err := m.git(ctx, "branch", "--remotes")
	if err != nil {
		return nil, errors.Wrap(errors.ErrTypeGit, "failed to list remote branches", err)
	}
	return splitLines(output), nil
}

// CurrentUpstreamRemote 解析 HEAD 指向的分支及其上游，返回上游所属的远程名称。
// 分离 HEAD、没有上游或上游为本地分支时返回空字符串。
func (m *remoteManager) CurrentUpstreamRemote(ctx context.Context) (string, error) {
	ref, err := m.git(ctx, "symbolic-ref", "-q", "HEAD")
	if err != nil {
		// symbolic-ref -q 在分离 HEAD 时以状态码 1 静默退出
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode == 1 {
			return "", nil
		}
		return "", errors.Wrap(errors.ErrTypeGit, "failed to resolve HEAD", err)
	}

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil
	}

	// 远程名可以包含 '/'，不能从 upstream:short 中切分
	remote, err := m.git(ctx, "for-each-ref", "--format=%(upstream:remotename)", ref)
	if err != nil {
		return "", errors.Wrap(errors.ErrTypeGit, fmt.Sprintf("failed to resolve upstream of %s", ref), err)
	}

	// "." 表示上游是本地分支
	remote = strings.TrimSpace(remote)
	if remote == "." {
		return "", nil
	}
	return remote, nil
}

func (m *remoteManager) Checkout(ctx context.Context, branch string) error {
	if _, err := m.git(ctx, "checkout", branch); err != nil {
		return errors.Wrap(errors.ErrTypeGit, fmt.Sprintf("failed to checkout '%s'", branch), err)
	}
	return nil
}

// splitLines 按行拆分输出，去除空白并丢弃空行
func splitLines(output string) []string {
	lines := strings.Split(output, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result = append(result, line)
	}
	return result
}
