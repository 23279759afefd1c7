package errors

// Exit codes for different error types
const (
	ExitCodeSuccess       = 0
	ExitCodeGenericError  = 1
	ExitCodeUsage         = 2
	ExitCodeInvalidSource = 3
	ExitCodeConfigError   = 4
	ExitCodeGitError      = 8
)

// Report 包含面向用户的错误信息
type Report struct {
	Message    string // 用户友好的错误消息
	Details    string // 详细的错误信息（可选）
	Suggestion string // 建议的解决方案
	ExitCode   int    // 退出码
}
