package service

import (
	"github.com/fsdevblog/loyalty-pro/internal/service/psswd"
)

type AppServices struct {
	LedgerService  *LedgerService
	InsightService *InsightService
}

// Factory собирает сервисы приложения. insightClient может быть nil — тогда генерация
// инсайтов деградирует, остальные операции не затрагиваются.
func Factory(store TableStore, insightClient InsightClient) *AppServices {
	return &AppServices{
		LedgerService:  NewLedgerService(store, psswd.New()),
		InsightService: NewInsightService(insightClient),
	}
}
