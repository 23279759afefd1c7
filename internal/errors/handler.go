package errors

import (
	"errors"
	"strings"

	"github.com/fatih/color"
)

// ErrorHandler 错误处理器
type ErrorHandler struct{}

// NewErrorHandler 创建新的错误处理器
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	switch GetType(err) {
	case ErrTypeUsage:
		return ExitCodeUsage
	case ErrTypeInvalidSource, ErrTypeMalformedURI:
		return ExitCodeInvalidSource
	case ErrTypeConfig:
		return ExitCodeConfigError
	case ErrTypeGit:
		return ExitCodeGitError
	default:
		return ExitCodeGenericError
	}
}

// Handle 将错误转换为结构化的报告
func (h *ErrorHandler) Handle(err error) Report {
	if err == nil {
		return Report{ExitCode: ExitCodeSuccess}
	}

	report := Report{
		Message:    err.Error(),
		Suggestion: GetSuggestion(err),
		ExitCode:   ExitCode(err),
	}

	// 对于包装过的错误，消息只保留顶层描述，其余放入 Details
	var xerr *XtaskError
	if errors.As(err, &xerr) && xerr.Cause != nil && err == error(xerr) {
		report.Message = xerr.Message
		report.Details = xerr.Cause.Error()
	}

	return report
}

// Format 格式化错误信息为用户友好的输出
func (h *ErrorHandler) Format(report Report) string {
	var sb strings.Builder

	// 错误消息（红色）
	sb.WriteString(color.RedString("Error: %s\n", report.Message))

	if report.Details != "" {
		sb.WriteString(color.YellowString("Details: %s\n", strings.TrimSpace(report.Details)))
	}

	if report.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(report.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}
