package memory

import (
	"context"
)

// TxManager 事务管理器
// 要点:
// 1. fn内的所有仓储操作共享同一把锁,对其他请求表现为一个原子步骤
// 2. 通过context传递事务标记(避免全局变量)
// 3. fn返回error时恢复到事务开始前的快照,返回nil时保留修改
// 4. 嵌套调用直接复用外层事务
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    if err := bookRepo.Delete(ctx, id); err != nil {
//	        return err
//	    }
//	    _, err := noteRepo.DeleteByBookID(ctx, id)
//	    return err
//	})
type TxManager struct {
	db *DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*DB); ok && tx == m.db {
		return fn(ctx)
	}

	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	saved := m.db.state.clone()
	txCtx := context.WithValue(ctx, txKey{}, m.db)
	if err := fn(txCtx); err != nil {
		m.db.state = saved
		return err
	}
	return nil
}
