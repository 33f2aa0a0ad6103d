package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/booklist/pkg/tracing"
)

const (
	// RequestIDHeader 请求ID头,客户端传入时沿用
	RequestIDHeader = "X-Request-ID"

	slowRequestThreshold = 3 * time.Second
)

// Logger 请求日志中间件
// 1. 生成(或沿用)请求ID并回写到响应头
// 2. 请求结束后输出一条结构化日志:方法、路径、状态码、耗时、客户端IP、TraceID
// 3. 超过3秒的请求额外输出警告
// 不记录请求体(上传文件可能很大)
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		ctx := c.Request.Context()
		status := c.Writer.Status()
		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", latency,
			"client_ip", c.ClientIP(),
		}
		if traceID := tracing.ExtractTraceID(ctx); traceID != "" {
			attrs = append(attrs, "trace_id", traceID)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			slog.ErrorContext(ctx, "request", attrs...)
		case status >= 400:
			slog.WarnContext(ctx, "request", attrs...)
		default:
			slog.InfoContext(ctx, "request", attrs...)
		}

		if latency > slowRequestThreshold {
			slog.WarnContext(ctx, "slow request", "request_id", requestID, "method", c.Request.Method, "path", c.Request.URL.Path, "latency", latency)
		}
	}
}
