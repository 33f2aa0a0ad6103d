package note

import (
	"context"
	"time"

	"github.com/xiebiao/booklist/internal/domain/book"
)

// Service 笔记领域服务接口
type Service interface {
	// ListNotes 列出图书的笔记;图书不存在返回book.ErrBookNotFound而不是空列表
	ListNotes(ctx context.Context, bookID uint) ([]Note, error)

	// AddNote 为图书添加笔记
	// 校验顺序:先检查图书是否存在(404),再检查内容(400)
	AddNote(ctx context.Context, bookID uint, content string) (*Note, error)

	// DeleteNotesOfBook 级联删除(只由删除图书的用例调用)
	DeleteNotesOfBook(ctx context.Context, bookID uint) (int, error)

	// Reset 用种子数据重置笔记集合
	Reset(ctx context.Context, seeds []Note) error
}

type service struct {
	repo     Repository
	bookRepo book.Repository
	now      func() time.Time
}

// NewService 创建笔记领域服务
func NewService(repo Repository, bookRepo book.Repository) Service {
	return &service{
		repo:     repo,
		bookRepo: bookRepo,
		now:      time.Now,
	}
}

func (s *service) ListNotes(ctx context.Context, bookID uint) ([]Note, error) {
	if err := s.ensureBook(ctx, bookID); err != nil {
		return nil, err
	}
	return s.repo.ListByBookID(ctx, bookID)
}

func (s *service) AddNote(ctx context.Context, bookID uint, content string) (*Note, error) {
	if err := s.ensureBook(ctx, bookID); err != nil {
		return nil, err
	}

	n, err := NewNote(bookID, content, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) DeleteNotesOfBook(ctx context.Context, bookID uint) (int, error) {
	return s.repo.DeleteByBookID(ctx, bookID)
}

func (s *service) Reset(ctx context.Context, seeds []Note) error {
	return s.repo.Reset(ctx, seeds)
}

func (s *service) ensureBook(ctx context.Context, bookID uint) error {
	ok, err := s.bookRepo.Exists(ctx, bookID)
	if err != nil {
		return err
	}
	if !ok {
		return book.ErrBookNotFound
	}
	return nil
}
