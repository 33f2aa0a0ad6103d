package memory

import (
	"context"

	"github.com/xiebiao/booklist/internal/domain/book"
)

// bookRepository 图书仓储实现(内存)
// 读操作返回深拷贝,调用方拿到的是快照
type bookRepository struct {
	db *DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *DB) book.Repository {
	return &bookRepository{db: db}
}

// List 按插入顺序返回全部图书
func (r *bookRepository) List(ctx context.Context) ([]book.Book, error) {
	var out []book.Book
	err := r.db.do(ctx, func(s *state) error {
		out = make([]book.Book, len(s.books))
		for i, b := range s.books {
			out[i] = b.Clone()
		}
		return nil
	})
	return out, err
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var found *book.Book
	err := r.db.do(ctx, func(s *state) error {
		idx := s.bookIndex(id)
		if idx < 0 {
			return book.ErrBookNotFound
		}
		b := s.books[idx].Clone()
		found = &b
		return nil
	})
	return found, err
}

// Exists 判断图书是否存在
func (r *bookRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var ok bool
	err := r.db.do(ctx, func(s *state) error {
		ok = s.bookIndex(id) >= 0
		return nil
	})
	return ok, err
}

// Create 分配自增ID并追加,回填b.ID
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	return r.db.do(ctx, func(s *state) error {
		b.ID = s.nextBookID
		s.nextBookID++
		s.books = append(s.books, b.Clone())
		return nil
	})
}

// Update 替换除ID以外的全部字段,位置不变
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	return r.db.do(ctx, func(s *state) error {
		idx := s.bookIndex(b.ID)
		if idx < 0 {
			return book.ErrBookNotFound
		}
		s.books[idx] = b.Clone()
		return nil
	})
}

// Delete 删除图书
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	return r.db.do(ctx, func(s *state) error {
		idx := s.bookIndex(id)
		if idx < 0 {
			return book.ErrBookNotFound
		}
		s.books = append(s.books[:idx], s.books[idx+1:]...)
		return nil
	})
}

// Reset 用种子数据替换,ID按种子顺序重新编号为1..N
func (r *bookRepository) Reset(ctx context.Context, seeds []book.Book) error {
	return r.db.do(ctx, func(s *state) error {
		books := make([]book.Book, len(seeds))
		for i, seed := range seeds {
			books[i] = seed.Clone()
			books[i].ID = uint(i + 1)
		}
		s.books = books
		s.nextBookID = uint(len(seeds) + 1)
		return nil
	})
}
