package note

import (
	"context"
)

// Repository 笔记仓储接口
type Repository interface {
	// ListByBookID 按插入顺序返回某本图书的全部笔记
	ListByBookID(ctx context.Context, bookID uint) ([]Note, error)

	// Create 分配下一个自增ID并追加
	// 外键约束:图书不存在时返回book.ErrBookNotFound
	Create(ctx context.Context, n *Note) error

	// DeleteByBookID 删除某本图书的全部笔记,返回删除数量
	DeleteByBookID(ctx context.Context, bookID uint) (int, error)

	// Reset 用种子数据整体替换,ID重新编号为1..M
	Reset(ctx context.Context, seeds []Note) error
}
