package errors

import (
	"errors"
	"fmt"
)

// ErrorType 定义错误类型
type ErrorType int

const (
	// ErrTypeUnknown 未知错误
	ErrTypeUnknown ErrorType = iota
	// ErrTypeUsage 命令用法错误
	ErrTypeUsage
	// ErrTypeInvalidSource URI 未指向受支持的托管平台
	ErrTypeInvalidSource
	// ErrTypeMalformedURI URI 路径段不足
	ErrTypeMalformedURI
	// ErrTypeGit Git 命令执行失败
	ErrTypeGit
	// ErrTypeConfig 配置相关错误
	ErrTypeConfig
)

// String returns the taxonomy name used in debug logs.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeUsage:
		return "UsageError"
	case ErrTypeInvalidSource:
		return "InvalidSource"
	case ErrTypeMalformedURI:
		return "MalformedUri"
	case ErrTypeGit:
		return "ToolInvocationError"
	case ErrTypeConfig:
		return "ConfigError"
	default:
		return "Unknown"
	}
}

// XtaskError 统一错误结构
type XtaskError struct {
	Type       ErrorType
	Message    string
	Cause      error
	Suggestion string
}

// Error 实现 error 接口
func (e *XtaskError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap 支持 errors.Is 和 errors.As
func (e *XtaskError) Unwrap() error {
	return e.Cause
}

// WithSuggestion 添加解决建议
func (e *XtaskError) WithSuggestion(suggestion string) *XtaskError {
	e.Suggestion = suggestion
	return e
}

// New 创建新的 XtaskError
func New(errType ErrorType, message string) *XtaskError {
	return &XtaskError{
		Type:    errType,
		Message: message,
	}
}

// Newf is New with a format string.
func Newf(errType ErrorType, format string, args ...interface{}) *XtaskError {
	return New(errType, fmt.Sprintf(format, args...))
}

// Wrap 包装已有错误
func Wrap(errType ErrorType, message string, cause error) *XtaskError {
	return &XtaskError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// 预定义的常见错误
var (
	ErrMissingTarget = New(ErrTypeUsage, "must specify a target or request a listing").WithSuggestion("Pass a GitHub URI (or a remote name with -d), or use -l to list remotes")
	ErrInvalidSource = New(ErrTypeInvalidSource, "URI must reference github")
	ErrMalformedURI  = New(ErrTypeMalformedURI, "not a valid url")
	ErrNoGitRepo     = New(ErrTypeGit, "not inside a git repository").WithSuggestion("Run the command from a git working tree, or run 'git init'")
)

// Is 检查是否为特定错误
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As 尝试转换为特定错误类型
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetType 获取错误类型
func GetType(err error) ErrorType {
	var xerr *XtaskError
	if errors.As(err, &xerr) {
		return xerr.Type
	}
	return ErrTypeUnknown
}

// GetSuggestion 获取错误建议
func GetSuggestion(err error) string {
	var xerr *XtaskError
	if errors.As(err, &xerr) {
		return xerr.Suggestion
	}
	return ""
}

// FormatError 格式化错误输出
func FormatError(err error) string {
	var xerr *XtaskError
	if !errors.As(err, &xerr) {
		return err.Error()
	}

	msg := err.Error()
	if xerr.Suggestion != "" {
		msg += fmt.Sprintf("\n💡 %s", xerr.Suggestion)
	}

	return msg
}
