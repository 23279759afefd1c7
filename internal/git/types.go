package git

import (
	"context"
	"fmt"
	"strings"
)

// Remote Git远程仓库信息
type Remote struct {
	Name string // 远程仓库名称，如 acme-xtask
	URL  string // get-url 返回的地址
}

// Runner Git命令执行器接口
type Runner interface {
	Run(ctx context.Context, command string, args ...string) (string, error)
}

// CommandError 描述一次失败的命令调用
type CommandError struct {
	Command  string
	Args     []string
	ExitCode int // -1 表示进程未能启动或输出无效
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Command, strings.Join(e.Args, " "), e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// RemoteManager Git远程仓库管理器
type RemoteManager interface {
	// ListRemoteNames 列出已配置的远程名称，顺序与 git 输出一致
	ListRemoteNames(ctx context.Context) ([]string, error)

	// RemoteURL 获取指定远程的地址
	RemoteURL(ctx context.Context, name string) (string, error)

	// AddRemote 注册新的远程
	AddRemote(ctx context.Context, name, url string) error

	// RemoveRemote 删除远程
	RemoveRemote(ctx context.Context, name string) error

	// Fetch 拉取远程的分支信息
	Fetch(ctx context.Context, name string) error

	// RemoteBranches 列出所有远程跟踪分支
	RemoteBranches(ctx context.Context) ([]string, error)

	// CurrentUpstreamRemote 返回当前分支跟踪的远程名称，没有时返回空字符串
	CurrentUpstreamRemote(ctx context.Context) (string, error)

	// Checkout 切换到指定分支
	Checkout(ctx context.Context, branch string) error
}
