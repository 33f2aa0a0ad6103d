package book

import (
	"context"
	"log/slog"

	"github.com/xiebiao/booklist/internal/domain/book"
	"github.com/xiebiao/booklist/internal/domain/note"
	"github.com/xiebiao/booklist/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/booklist/pkg/metrics"
)

// DeleteBookUseCase 删除图书用例
// 删除图书和删除其笔记是一个原子单元:在同一个事务中完成,
// 其他请求看不到"图书已删、笔记还在"的中间状态
type DeleteBookUseCase struct {
	bookService book.Service
	noteService note.Service
	txManager   *memory.TxManager
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(
	bookService book.Service,
	noteService note.Service,
	txManager *memory.TxManager,
) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		noteService: noteService,
		txManager:   txManager,
	}
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	var removedNotes int
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 删除图书(不存在返回404,事务回滚)
		if err := uc.bookService.DeleteBook(txCtx, id); err != nil {
			return err
		}

		// 2. 级联删除笔记
		n, err := uc.noteService.DeleteNotesOfBook(txCtx, id)
		if err != nil {
			return err
		}
		removedNotes = n
		return nil
	})
	if err != nil {
		return err
	}

	metrics.IncBookMutation("delete")
	slog.InfoContext(ctx, "book deleted", "book_id", id, "notes_removed", removedNotes)
	return nil
}
