package book_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/booklist/internal/domain/book"
	"github.com/xiebiao/booklist/internal/infrastructure/persistence/memory"
)

func newService() book.Service {
	return book.NewService(memory.NewBookRepository(memory.NewDB()))
}

func TestService_CreateBook(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	t.Run("ID递增", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			b, err := svc.CreateBook(ctx, book.ParseInput(map[string]any{
				"name": "Livre", "author": "Auteur", "editor": "Éditeur", "year": float64(2000 + i),
			}))
			require.NoError(t, err)
			assert.Equal(t, uint(i), b.ID)
		}
	})

	t.Run("缺少必填字段", func(t *testing.T) {
		_, err := svc.CreateBook(ctx, book.ParseInput(map[string]any{"name": "X", "author": "Y"}))
		assert.ErrorIs(t, err, book.ErrMissingRequiredFields)

		all, err := svc.ListBooks(ctx, book.Query{})
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("评分被截断到范围内", func(t *testing.T) {
		b, err := svc.CreateBook(ctx, book.ParseInput(map[string]any{
			"name": "N", "author": "A", "editor": "E", "year": "1999", "rating": float64(8),
		}))
		require.NoError(t, err)
		require.NotNil(t, b.Rating)
		assert.Equal(t, 5, *b.Rating)
		assert.Equal(t, 1999, b.Year)
	})
}

func TestService_UpdateBook(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.CreateBook(ctx, book.ParseInput(map[string]any{
		"name": "Dune", "author": "Frank Herbert", "editor": "Pocket", "year": float64(1965), "rating": float64(4),
	}))
	require.NoError(t, err)

	t.Run("部分更新保留其他字段", func(t *testing.T) {
		updated, err := svc.UpdateBook(ctx, created.ID, book.ParseInput(map[string]any{"read": "TRUE"}))
		require.NoError(t, err)
		assert.True(t, updated.Read)
		assert.Equal(t, "Dune", updated.Name)
		require.NotNil(t, updated.Rating)
		assert.Equal(t, 4, *updated.Rating)
	})

	t.Run("非数值评分清空已有评分", func(t *testing.T) {
		updated, err := svc.UpdateBook(ctx, created.ID, book.ParseInput(map[string]any{"rating": "abc"}))
		require.NoError(t, err)
		assert.Nil(t, updated.Rating)
	})

	t.Run("清空必填字段被拒绝且记录不变", func(t *testing.T) {
		_, err := svc.UpdateBook(ctx, created.ID, book.ParseInput(map[string]any{"name": ""}))
		assert.ErrorIs(t, err, book.ErrMissingRequiredFields)

		got, err := svc.GetBook(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dune", got.Name)
	})

	t.Run("不存在的图书优先返回404", func(t *testing.T) {
		_, err := svc.UpdateBook(ctx, 9999, book.ParseInput(map[string]any{"name": ""}))
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, book.Stats{}, stats)

	for _, r := range []float64{4, 5} {
		_, err := svc.CreateBook(ctx, book.ParseInput(map[string]any{
			"name": "N", "author": "A", "editor": "E", "year": float64(2000), "rating": r, "favorite": true,
		}))
		require.NoError(t, err)
	}

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalBooks)
	assert.Equal(t, 2, stats.UnreadCount)
	assert.Equal(t, 2, stats.FavoritesCount)
	assert.Equal(t, 4.5, stats.AverageRating)
}
