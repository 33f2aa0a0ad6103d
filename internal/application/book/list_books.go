package book

import (
	"context"

	"github.com/xiebiao/booklist/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 查询参数在这里完成类型转换(read/favorite → bool),领域层只接触强类型Query
// 2. 不分页:集合规模很小,一次返回全部匹配结果
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询请求DTO
// 指针为nil表示请求中没有该参数
type ListBooksRequest struct {
	Q        string  // 书名或作者包含的文本
	Author   string  // 作者
	Theme    string  // 主题
	Read     *string // 已读过滤,按布尔规则转换
	Favorite *string // 收藏过滤
	Sort     string  // 排序键
	Order    string  // asc | desc
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) ([]book.Book, error) {
	q := book.Query{
		Text:    req.Q,
		Author:  req.Author,
		Theme:   req.Theme,
		SortKey: req.Sort,
		Order:   req.Order,
	}
	if req.Read != nil {
		v := book.ToBool(*req.Read)
		q.Read = &v
	}
	if req.Favorite != nil {
		v := book.ToBool(*req.Favorite)
		q.Favorite = &v
	}

	return uc.bookService.ListBooks(ctx, q)
}
