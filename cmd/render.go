package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/penwyp/xtask/internal/remote"
)

// renderStatusBar 渲染带样式的状态条
func renderStatusBar(message string, isSuccess bool) string {
	var style lipgloss.Style
	if isSuccess {
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Background(lipgloss.Color("22")). // Dark green
			Bold(true).
			Padding(0, 1)
	} else {
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // Blue
			Background(lipgloss.Color("19")). // Dark blue
			Bold(true).
			Padding(0, 1)
	}

	indicator := "▶"
	if isSuccess {
		indicator = "✓"
	}

	return style.Render(indicator + " " + message)
}

// outcomeMessage 返回操作结果的描述；ActionNone 返回空字符串
func outcomeMessage(o remote.Outcome) (string, bool) {
	switch o.Action {
	case remote.ActionCreated:
		return fmt.Sprintf("Remote %s added and fetched", o.Remote), true
	case remote.ActionFetched:
		return fmt.Sprintf("Remote %s already configured, fetched", o.Remote), true
	case remote.ActionDeleted:
		if o.SwitchedTo != "" {
			return fmt.Sprintf("Switched to %s, remote %s removed", o.SwitchedTo, o.Remote), true
		}
		return fmt.Sprintf("Remote %s removed", o.Remote), true
	case remote.ActionSkipped:
		return fmt.Sprintf("Remote %s not configured, nothing to remove", o.Remote), false
	default:
		return "", false
	}
}

func renderOutcome(w io.Writer, o remote.Outcome) {
	msg, success := outcomeMessage(o)
	if msg == "" {
		return
	}
	_, _ = fmt.Fprintln(w, renderStatusBar(msg, success))
}
