package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(当前为内存实现)
// 2. 所有读操作返回副本,调用方修改不会影响仓储内的数据
type Repository interface {
	// List 按插入顺序返回全部图书
	List(ctx context.Context) ([]Book, error)

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Exists 判断图书是否存在
	Exists(ctx context.Context, id uint) (bool, error)

	// Create 分配下一个自增ID并追加,回填b.ID
	Create(ctx context.Context, b *Book) error

	// Update 原地替换除ID以外的全部字段
	Update(ctx context.Context, b *Book) error

	// Delete 删除图书(不处理笔记,级联由应用层在事务中完成)
	Delete(ctx context.Context, id uint) error

	// Reset 用种子数据整体替换,ID重新编号为1..N,计数器置为N+1
	Reset(ctx context.Context, seeds []Book) error
}
