package memory

import (
	"context"

	"github.com/xiebiao/booklist/internal/domain/book"
	"github.com/xiebiao/booklist/internal/domain/note"
)

// noteRepository 笔记仓储实现(内存)
type noteRepository struct {
	db *DB
}

// NewNoteRepository 创建笔记仓储
func NewNoteRepository(db *DB) note.Repository {
	return &noteRepository{db: db}
}

// ListByBookID 按插入顺序返回某本图书的笔记
func (r *noteRepository) ListByBookID(ctx context.Context, bookID uint) ([]note.Note, error) {
	out := []note.Note{}
	err := r.db.do(ctx, func(s *state) error {
		for _, n := range s.notes {
			if n.BookID == bookID {
				out = append(out, n)
			}
		}
		return nil
	})
	return out, err
}

// Create 分配自增ID并追加
// 与图书存在性检查在同一把锁内,避免写入孤儿笔记
func (r *noteRepository) Create(ctx context.Context, n *note.Note) error {
	return r.db.do(ctx, func(s *state) error {
		if s.bookIndex(n.BookID) < 0 {
			return book.ErrBookNotFound
		}
		n.ID = s.nextNoteID
		s.nextNoteID++
		s.notes = append(s.notes, *n)
		return nil
	})
}

// DeleteByBookID 删除某本图书的全部笔记
func (r *noteRepository) DeleteByBookID(ctx context.Context, bookID uint) (int, error) {
	removed := 0
	err := r.db.do(ctx, func(s *state) error {
		kept := s.notes[:0]
		for _, n := range s.notes {
			if n.BookID == bookID {
				removed++
				continue
			}
			kept = append(kept, n)
		}
		s.notes = kept
		return nil
	})
	return removed, err
}

// Reset 用种子数据替换,ID重新编号为1..M
func (r *noteRepository) Reset(ctx context.Context, seeds []note.Note) error {
	return r.db.do(ctx, func(s *state) error {
		notes := make([]note.Note, len(seeds))
		for i, seed := range seeds {
			notes[i] = seed
			notes[i].ID = uint(i + 1)
		}
		s.notes = notes
		s.nextNoteID = uint(len(seeds) + 1)
		return nil
	})
}
