package main

import (
	"fmt"
	"os"

	"github.com/penwyp/xtask/cmd"
	"github.com/penwyp/xtask/internal/errors"
)

// main 为 CLI 入口，调用 cmd.Execute。
func main() {
	if err := cmd.Execute(); err != nil {
		// 错误只在此处输出一次
		handler := errors.NewErrorHandler()
		report := handler.Handle(err)
		fmt.Fprint(os.Stderr, handler.Format(report))
		os.Exit(report.ExitCode)
	}
}
