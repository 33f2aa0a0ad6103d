package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/booklist/internal/domain/book"
	"github.com/xiebiao/booklist/internal/domain/note"
)

// DB 进程内数据库
// 设计说明:
//  1. 两个有序集合(图书、笔记)和各自的自增计数器,进程重启即丢失
//  2. 一把互斥锁保护全部状态:每次仓储调用或事务都在锁内完成,
//     不存在部分写入可见的情况
//  3. 通过依赖注入传给仓储,不使用全局变量
type DB struct {
	mu    sync.Mutex
	state state
}

type state struct {
	books      []book.Book
	notes      []note.Note
	nextBookID uint
	nextNoteID uint
}

// NewDB 创建空数据库,计数器从1开始
// 启动时由重置用例写入种子数据
func NewDB() *DB {
	return &DB{
		state: state{nextBookID: 1, nextNoteID: 1},
	}
}

// txKey context中标记"已在事务内"的key
type txKey struct{}

// do 在锁内执行fn
// 如果ctx来自本DB的事务,锁已被事务持有,直接执行
func (db *DB) do(ctx context.Context, fn func(s *state) error) error {
	if tx, ok := ctx.Value(txKey{}).(*DB); ok && tx == db {
		return fn(&db.state)
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(&db.state)
}

// clone 深拷贝当前状态,用于事务回滚
func (s *state) clone() state {
	out := state{
		books:      make([]book.Book, len(s.books)),
		notes:      make([]note.Note, len(s.notes)),
		nextBookID: s.nextBookID,
		nextNoteID: s.nextNoteID,
	}
	for i, b := range s.books {
		out.books[i] = b.Clone()
	}
	copy(out.notes, s.notes)
	return out
}

func (s *state) bookIndex(id uint) int {
	for i := range s.books {
		if s.books[i].ID == id {
			return i
		}
	}
	return -1
}
