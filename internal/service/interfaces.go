package service

import (
	"context"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// TableStore — потребительский интерфейс хранилища таблицы админов.
type TableStore interface {
	Load(ctx context.Context) (domain.Table, error)
	Save(ctx context.Context, table domain.Table) error
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// InsightClient — клиент внешнего генератора инсайтов: системная инструкция плюс
// пользовательский запрос на входе, свободный текст на выходе.
type InsightClient interface {
	GenerateContent(ctx context.Context, systemInstruction, userContent string) (string, error)
}
