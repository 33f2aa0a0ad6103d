package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/booklist/internal/infrastructure/config"
	"github.com/xiebiao/booklist/pkg/circuitbreaker"
	"github.com/xiebiao/booklist/pkg/metrics"
	"github.com/xiebiao/booklist/pkg/tracing"
)

const breakerName = "object-storage"

// Guarded 为Backend加上超时、熔断、追踪和指标
// 上传用例只依赖这一层
type Guarded struct {
	backend   Backend
	breaker   *circuitbreaker.CircuitBreaker
	timeout   time.Duration
	bucket    string
	publicURL string
}

// NewGuarded 包装Backend
func NewGuarded(backend Backend, cfg config.StorageConfig) *Guarded {
	breaker := circuitbreaker.New(breakerName, circuitbreaker.Config{
		MaxRequests: 1,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(c circuitbreaker.Counts) bool {
			return c.ConsecutiveFailures >= uint32(cfg.Breaker.MaxFailures)
		},
		// 未配置存储不是下游故障,不参与熔断统计
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotConfigured)
		},
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			slog.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
	metrics.SetCircuitBreakerState(breakerName, int(circuitbreaker.StateClosed))

	return &Guarded{
		backend:   backend,
		breaker:   breaker,
		timeout:   cfg.Timeout,
		bucket:    cfg.Bucket,
		publicURL: cfg.PublicBaseURL(),
	}
}

// New 按配置创建受保护的对象存储,cleanup关闭底层客户端
func New(ctx context.Context, cfg *config.Config) (*Guarded, func(), error) {
	g := NewGuarded(NewBackend(ctx, cfg.Storage), cfg.Storage)
	cleanup := func() {
		if err := g.Close(); err != nil {
			slog.Warn("failed to close object storage", "error", err)
		}
	}
	return g, cleanup, nil
}

// Put 写入对象
func (g *Guarded) Put(ctx context.Context, key string, body io.Reader, contentType string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "storage.Put")
	span.SetAttributes(
		attribute.String("storage.bucket", g.bucket),
		attribute.String("storage.key", key),
		attribute.String("storage.content_type", contentType),
	)
	defer func() { tracing.EndSpan(span, err) }()

	start := time.Now()
	err = g.breaker.Execute(ctx, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()
		return g.backend.Put(ctx, key, body, contentType)
	})

	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		metrics.IncCircuitBreakerRequest(breakerName, "rejected")
		return err
	case err != nil:
		metrics.IncCircuitBreakerRequest(breakerName, "failure")
	default:
		metrics.IncCircuitBreakerRequest(breakerName, "success")
	}
	metrics.ObserveStorage("put", time.Since(start), err)
	return err
}

// PublicURL 对象的公开地址: <public_url>/<bucket>/<key>
func (g *Guarded) PublicURL(key string) string {
	return g.publicURL + "/" + g.bucket + "/" + key
}

// Close 关闭底层客户端
func (g *Guarded) Close() error {
	return g.backend.Close()
}
