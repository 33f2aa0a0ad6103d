package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/xiebiao/booklist/internal/application/library"
	"github.com/xiebiao/booklist/internal/infrastructure/config"
	"github.com/xiebiao/booklist/pkg/logger"
	"github.com/xiebiao/booklist/pkg/metrics"
	"github.com/xiebiao/booklist/pkg/tracing"
)

// @title           BookList API
// @version         1.0
// @description     个人书单管理：图书、笔记、统计与封面上传
// @BasePath        /

// main 启动流程:
// 配置 → 日志 → 追踪/指标 → Wire组装 → 装载种子数据 → HTTP服务 → 优雅关闭
func main() {
	// 步骤1: 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 步骤2: 日志
	closeLog, err := logger.Setup(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = closeLog() }()

	ctx := context.Background()

	// 步骤3: 追踪与指标
	shutdownTracer, err := tracing.InitTracer(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		fatal("初始化追踪失败", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			slog.Warn("关闭追踪失败", "error", err)
		}
	}()

	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}

	// 步骤4: 依赖注入
	app, cleanup, err := InitializeApp(ctx, cfg)
	if err != nil {
		fatal("初始化应用失败", err)
	}
	defer cleanup()

	// 步骤5: 装载种子数据(默认带随机封面)
	seeded, err := app.Reset.Execute(ctx, library.ResetRequest{FreshCovers: cfg.Seed.RandomCovers})
	if err != nil {
		fatal("装载种子数据失败", err)
	}

	// 步骤6: HTTP服务器
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("server started",
			"addr", srv.Addr,
			"mode", cfg.Server.Mode,
			"books", seeded.Books,
			"notes", seeded.Notes,
			"storage", cfg.Storage.Driver,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("HTTP服务器启动失败", err)
		}
	}()

	// 步骤7: 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("服务器强制关闭", "error", err)
		return
	}
	slog.Info("server stopped")
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
