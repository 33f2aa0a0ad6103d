package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/booklist/internal/infrastructure/config"
	"github.com/xiebiao/booklist/pkg/circuitbreaker"
)

type recordingBackend struct {
	err    error
	calls  int
	key    string
	body   []byte
	ctype  string
	hasDL  bool
	closed bool
}

func (b *recordingBackend) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	b.calls++
	b.key = key
	b.ctype = contentType
	b.body, _ = io.ReadAll(body)
	_, b.hasDL = ctx.Deadline()
	return b.err
}

func (b *recordingBackend) Close() error {
	b.closed = true
	return nil
}

func storageConfig() config.StorageConfig {
	return config.StorageConfig{
		Driver:    "gcs",
		Bucket:    "book-covers",
		Endpoint:  "http://localhost:4443",
		PublicURL: "https://cdn.example.com/",
		Timeout:   time.Second,
		Breaker:   config.BreakerConfig{MaxFailures: 2, Timeout: time.Minute},
	}
}

func TestGuarded_Put(t *testing.T) {
	backend := &recordingBackend{}
	g := NewGuarded(backend, storageConfig())

	err := g.Put(context.Background(), "abc.png", bytes.NewReader([]byte("data")), "image/png")
	require.NoError(t, err)

	assert.Equal(t, 1, backend.calls)
	assert.Equal(t, "abc.png", backend.key)
	assert.Equal(t, "image/png", backend.ctype)
	assert.Equal(t, []byte("data"), backend.body)
	assert.True(t, backend.hasDL)
}

func TestGuarded_PublicURL(t *testing.T) {
	g := NewGuarded(&recordingBackend{}, storageConfig())
	assert.Equal(t, "https://cdn.example.com/book-covers/abc.png", g.PublicURL("abc.png"))

	cfg := storageConfig()
	cfg.PublicURL = ""
	g = NewGuarded(&recordingBackend{}, cfg)
	assert.Equal(t, "http://localhost:4443/book-covers/abc.png", g.PublicURL("abc.png"))
}

func TestGuarded_BreakerOpensOnFailures(t *testing.T) {
	boom := errors.New("503 service unavailable")
	backend := &recordingBackend{err: boom}
	g := NewGuarded(backend, storageConfig())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		assert.ErrorIs(t, g.Put(ctx, "k", bytes.NewReader(nil), "image/png"), boom)
	}

	err := g.Put(ctx, "k", bytes.NewReader(nil), "image/png")
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	assert.Equal(t, 2, backend.calls)
}

func TestGuarded_DisabledDoesNotTrip(t *testing.T) {
	g := NewGuarded(disabled{}, storageConfig())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := g.Put(ctx, "k", bytes.NewReader(nil), "image/png")
		assert.ErrorIs(t, err, ErrNotConfigured)
	}
	assert.Equal(t, circuitbreaker.StateClosed, g.breaker.State())
}

func TestNewBackend_DriverNone(t *testing.T) {
	b := NewBackend(context.Background(), config.StorageConfig{Driver: "none"})
	err := b.Put(context.Background(), "k", bytes.NewReader(nil), "image/png")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.NoError(t, b.Close())
}

func TestNewBackend_Emulator(t *testing.T) {
	// 模拟器模式下只创建客户端,不发起网络请求
	b := NewBackend(context.Background(), storageConfig())
	_, ok := b.(*GCS)
	assert.True(t, ok)
	assert.NoError(t, b.Close())
}

func TestGuarded_Close(t *testing.T) {
	backend := &recordingBackend{}
	g := NewGuarded(backend, storageConfig())
	require.NoError(t, g.Close())
	assert.True(t, backend.closed)
}
