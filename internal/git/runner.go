package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"unicode/utf8"

	"github.com/penwyp/xtask/internal/errors"
	"go.uber.org/zap"
)

// ErrInvalidOutput 表示命令输出不是合法的 UTF-8
var ErrInvalidOutput = fmt.Errorf("output is not valid UTF-8")

// ExecRunner 通过 os/exec 执行命令，工作目录固定为 Dir。
// stdout 作为结果返回，stderr 仅用于错误信息与调试日志。
type ExecRunner struct {
	Dir    string
	Logger *zap.Logger
}

// NewExecRunner 创建在 dir 下执行命令的 Runner；logger 为 nil 时不输出日志
func NewExecRunner(dir string, logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{Dir: dir, Logger: logger}
}

func (r *ExecRunner) Run(ctx context.Context, command string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Logger.Debug("Running command",
		zap.String("command", command),
		zap.Strings("args", args),
		zap.String("dir", r.Dir))

	err := cmd.Run()

	r.Logger.Debug("Command finished",
		zap.String("command", command),
		zap.Strings("args", args),
		zap.Int("output_length", stdout.Len()),
		zap.String("stderr", func() string {
			if stderr.Len() < 1000 {
				return stderr.String()
			}
			return fmt.Sprintf("<%d bytes>", stderr.Len())
		}()),
		zap.Error(err))

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", &CommandError{
			Command:  command,
			Args:     args,
			ExitCode: exitCode,
			Stderr:   stderr.String(),
			Err:      err,
		}
	}

	if !utf8.Valid(stdout.Bytes()) {
		return "", &CommandError{
			Command:  command,
			Args:     args,
			ExitCode: -1,
			Err:      ErrInvalidOutput,
		}
	}

	return stdout.String(), nil
}
