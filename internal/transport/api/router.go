package api

import (
	"time"

	"github.com/fsdevblog/loyalty-pro/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// InsightServiceTimeout больше остальных: запрос к модели занимает десятки секунд.
	InsightServiceTimeout = 60 * time.Second
)

const (
	RouteGroup        = "/api"
	RegisterRoute     = "/auth/register"
	LoginRoute        = "/auth/login"
	CustomersRoute    = "/admins/:username/customers"
	TransactionsRoute = "/admins/:username/transactions"
	InsightsRoute     = "/admins/:username/insights"

	MetricsRoute = "/metrics"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	LedgerService  LedgerServicer
	InsightService InsightServicer
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Metrics())
	r.Use(middlewares.Errors())

	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))

	authHandler := NewAuthHandler(args.LedgerService)
	customersHandler := NewCustomersHandler(args.LedgerService)
	insightsHandler := NewInsightsHandler(args.LedgerService, args.InsightService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, authHandler.Register)
	api.POST(LoginRoute, authHandler.Login)

	// Сессий нет: админ передается явно в пути, как это делает слой представления.
	api.GET(CustomersRoute, customersHandler.Index)
	api.POST(TransactionsRoute, customersHandler.CreateTransaction)
	api.POST(InsightsRoute, insightsHandler.Create)

	return r
}
