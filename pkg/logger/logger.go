// Package logger 构建slog日志
// console格式使用humanlog(便于本地阅读),json格式使用slog.JSONHandler(便于采集)
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lepinkainen/humanlog"
)

// Options 日志选项
type Options struct {
	Level  string // debug | info | warn | error
	Format string // console | json
	Output string // stdout | stderr | /path/to/file
}

// New 创建Logger
// 返回的close函数在程序退出时调用(输出到文件时关闭文件)
func New(opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	w, closeFn, err := openOutput(opts.Output)
	if err != nil {
		return nil, nil, err
	}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "", "console":
		handler = humanlog.NewHandler(w, &humanlog.Options{Level: level})
	default:
		_ = closeFn()
		return nil, nil, fmt.Errorf("未知的日志格式: %s", opts.Format)
	}

	return slog.New(handler), closeFn, nil
}

// Setup 创建Logger并设置为slog默认Logger
func Setup(opts Options) (func() error, error) {
	l, closeFn, err := New(opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(l)
	return closeFn, nil
}

// ParseLevel 解析日志级别,空串为info
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("未知的日志级别: %s", s)
	}
}

func openOutput(output string) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch output {
	case "", "stdout":
		return os.Stdout, noop, nil
	case "stderr":
		return os.Stderr, noop, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
	}
	return f, f.Close, nil
}
