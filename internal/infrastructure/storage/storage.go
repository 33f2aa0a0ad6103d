// Package storage 对象存储(上传的封面图片)
package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/xiebiao/booklist/internal/infrastructure/config"
)

// Backend 具体的存储实现
type Backend interface {
	// Put 写入对象,key在bucket内唯一
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	// Close 释放连接
	Close() error
}

// ErrNotConfigured 未配置对象存储
var ErrNotConfigured = errors.New("object storage is not configured")

// disabled 未配置存储时的实现,所有写入都失败(上传接口返回500)
type disabled struct {
	reason string
}

func (d disabled) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	if d.reason == "" {
		return ErrNotConfigured
	}
	return errors.Join(ErrNotConfigured, errors.New(d.reason))
}

func (disabled) Close() error { return nil }

// NewBackend 根据配置选择实现
// GCS客户端创建失败不阻止服务启动:记录警告后降级为disabled,
// 其余接口不依赖对象存储
func NewBackend(ctx context.Context, cfg config.StorageConfig) Backend {
	if cfg.Driver != "gcs" {
		slog.Info("object storage disabled", "driver", cfg.Driver)
		return disabled{}
	}

	b, err := NewGCS(ctx, cfg)
	if err != nil {
		slog.Warn("object storage unavailable, uploads will fail", "bucket", cfg.Bucket, "error", err)
		return disabled{reason: err.Error()}
	}
	slog.Info("object storage ready", "driver", "gcs", "bucket", cfg.Bucket, "endpoint", cfg.Endpoint)
	return b
}
