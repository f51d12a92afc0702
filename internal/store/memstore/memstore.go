// Package memstore хранит таблицу админов в памяти процесса. Используется в тестах и
// как dev-бэкенд без персистентности.
package memstore

import (
	"context"
	"sync"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
)

type MemStore struct {
	mu    sync.RWMutex
	table domain.Table
}

func New() *MemStore {
	return &MemStore{table: domain.Table{}}
}

// Load возвращает глубокую копию таблицы, чтобы вызывающий код не делил срезы
// с хранилищем.
func (s *MemStore) Load(_ context.Context) (domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Clone(), nil
}

func (s *MemStore) Save(_ context.Context, table domain.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table.Clone()
	return nil
}
