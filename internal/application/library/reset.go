package library

import (
	"context"
	"log/slog"

	"github.com/xiebiao/booklist/internal/domain/book"
	"github.com/xiebiao/booklist/internal/domain/note"
	"github.com/xiebiao/booklist/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/booklist/internal/infrastructure/seed"
	"github.com/xiebiao/booklist/pkg/metrics"
)

// ResetMessage 重置成功的提示(两种重置相同)
const ResetMessage = "Données en mémoire remises à zéro (jeu enrichi conservé)."

// CoverSource 封面地址来源
type CoverSource interface {
	CoverURL() string
}

// ResetLibraryUseCase 数据重置用例
// 图书和笔记在同一个事务中替换为种子数据,ID重新从1编号
type ResetLibraryUseCase struct {
	bookService book.Service
	noteService note.Service
	txManager   *memory.TxManager
	covers      CoverSource
}

// NewResetLibraryUseCase 创建重置用例
func NewResetLibraryUseCase(
	bookService book.Service,
	noteService note.Service,
	txManager *memory.TxManager,
	covers CoverSource,
) *ResetLibraryUseCase {
	return &ResetLibraryUseCase{
		bookService: bookService,
		noteService: noteService,
		txManager:   txManager,
		covers:      covers,
	}
}

// ResetRequest 重置请求
type ResetRequest struct {
	// FreshCovers 为每本种子图书生成新的封面地址;否则封面保持种子值(空)
	FreshCovers bool
}

// ResetResponse 重置结果
type ResetResponse struct {
	Message string
	Books   int
	Notes   int
}

// Execute 执行重置
func (uc *ResetLibraryUseCase) Execute(ctx context.Context, req ResetRequest) (*ResetResponse, error) {
	books := seed.Books()
	if req.FreshCovers {
		for i := range books {
			books[i].SetCover(uc.covers.CoverURL())
		}
	}
	notes := seed.Notes()

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.bookService.Reset(txCtx, books); err != nil {
			return err
		}
		return uc.noteService.Reset(txCtx, notes)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookMutation("reset")
	slog.InfoContext(ctx, "library reset", "books", len(books), "notes", len(notes), "fresh_covers", req.FreshCovers)
	return &ResetResponse{
		Message: ResetMessage,
		Books:   len(books),
		Notes:   len(notes),
	}, nil
}
