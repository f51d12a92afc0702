package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
	"github.com/fsdevblog/loyalty-pro/internal/service"
)

// LedgerServicer интерфейс исключительно для моков.
type LedgerServicer interface {
	Register(ctx context.Context, args service.RegisterAdminArgs) (*domain.AdminView, error)
	Login(ctx context.Context, args service.LoginAdminArgs) (*domain.AdminView, error)
	Customers(ctx context.Context, username string) ([]domain.Customer, error)
	ApplyTransaction(
		ctx context.Context,
		username string,
		draft service.CustomerDraft,
		transaction domain.Transaction,
	) error
}

type InsightServicer interface {
	CustomerInsights(ctx context.Context, customers []domain.Customer, prompt string) (string, error)
}
