// Package store описывает контракт персистентного хранилища таблицы админов.
//
// Таблица хранится как единый сериализованный документ: Load возвращает последнюю
// записанную версию либо пустую таблицу, Save заменяет документ целиком. Частичных
// обновлений и транзакций между ключами нет, дисциплина — last writer wins.
package store

import (
	"context"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
)

type Store interface {
	// Load возвращает таблицу из хранилища. Отсутствие документа и не читаемое
	// содержимое деградируют в пустую таблицу, а не в ошибку.
	Load(ctx context.Context) (domain.Table, error)
	// Save целиком заменяет документ в хранилище.
	Save(ctx context.Context, table domain.Table) error
}
