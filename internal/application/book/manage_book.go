package book

import (
	"context"

	"github.com/xiebiao/booklist/internal/domain/book"
	"github.com/xiebiao/booklist/pkg/metrics"
)

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建详情用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// Execute 执行详情查询
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*book.Book, error) {
	return uc.bookService.GetBook(ctx, id)
}

// CreateBookUseCase 新增图书用例
// 请求体是松散类型的JSON对象,由book.ParseInput统一转换
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建新增用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// Execute 执行新增
func (uc *CreateBookUseCase) Execute(ctx context.Context, payload map[string]any) (*book.Book, error) {
	b, err := uc.bookService.CreateBook(ctx, book.ParseInput(payload))
	if err != nil {
		return nil, err
	}
	metrics.IncBookMutation("create")
	return b, nil
}

// UpdateBookUseCase 更新图书用例(部分字段,未提供的字段保留原值)
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// UpdateBookRequest 更新请求DTO
type UpdateBookRequest struct {
	ID      uint
	Payload map[string]any
}

// Execute 执行更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*book.Book, error) {
	b, err := uc.bookService.UpdateBook(ctx, req.ID, book.ParseInput(req.Payload))
	if err != nil {
		return nil, err
	}
	metrics.IncBookMutation("update")
	return b, nil
}

// GetStatsUseCase 统计用例
type GetStatsUseCase struct {
	bookService book.Service
}

// NewGetStatsUseCase 创建统计用例
func NewGetStatsUseCase(bookService book.Service) *GetStatsUseCase {
	return &GetStatsUseCase{bookService: bookService}
}

// Execute 执行统计
func (uc *GetStatsUseCase) Execute(ctx context.Context) (book.Stats, error) {
	return uc.bookService.Stats(ctx)
}
