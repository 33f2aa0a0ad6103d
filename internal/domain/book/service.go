package book

import (
	"context"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务负责归一化、校验与仓储调用的编排
// 2. 级联删除笔记涉及两个聚合,放在应用层的事务中完成
type Service interface {
	// ListBooks 快照 + 过滤排序
	ListBooks(ctx context.Context, q Query) ([]Book, error)

	// GetBook 根据ID获取图书
	GetBook(ctx context.Context, id uint) (*Book, error)

	// CreateBook 归一化输入(无已有记录)、校验后创建
	CreateBook(ctx context.Context, in Input) (*Book, error)

	// UpdateBook 以已有记录为底合并输入,校验后整体替换
	UpdateBook(ctx context.Context, id uint, in Input) (*Book, error)

	// DeleteBook 删除单本图书
	DeleteBook(ctx context.Context, id uint) error

	// Stats 统计信息
	Stats(ctx context.Context) (Stats, error)

	// Reset 用种子数据重置图书集合
	Reset(ctx context.Context, seeds []Book) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListBooks 查询图书列表
func (s *service) ListBooks(ctx context.Context, q Query) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Search(books, q), nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, in Input) (*Book, error) {
	// 1. 归一化 + 校验
	candidate := Normalize(in, nil)
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	// 2. 持久化(仓储分配ID)
	b := candidate.Book(0)
	if err := s.repo.Create(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, in Input) (*Book, error) {
	// 1. 查询已有记录(不存在优先返回404,再做字段校验)
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 合并 + 校验
	candidate := Normalize(in, existing)
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	// 3. 整体替换,ID不变
	b := candidate.Book(existing.ID)
	if err := s.repo.Update(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Stats 统计信息
func (s *service) Stats(ctx context.Context) (Stats, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(books), nil
}

// Reset 重置图书集合
func (s *service) Reset(ctx context.Context, seeds []Book) error {
	return s.repo.Reset(ctx, seeds)
}
