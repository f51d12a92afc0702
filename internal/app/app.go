package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/loyalty-pro/internal/config"
	"github.com/fsdevblog/loyalty-pro/internal/service"
	"github.com/fsdevblog/loyalty-pro/internal/store"
	"github.com/fsdevblog/loyalty-pro/internal/store/filestore"
	"github.com/fsdevblog/loyalty-pro/internal/store/memstore"
	"github.com/fsdevblog/loyalty-pro/internal/store/mongostore"
	"github.com/fsdevblog/loyalty-pro/internal/transport/api"
	"github.com/fsdevblog/loyalty-pro/internal/transport/genai"
	"github.com/sirupsen/logrus"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"runAddress":   a.Config.RunAddress,
		"storeBackend": a.Config.StoreBackend,
	}).Info("Starting app")

	tableStore, closeStore, storeErr := a.initStore(notifyCtx)
	if storeErr != nil {
		return fmt.Errorf("app run: %s", storeErr.Error())
	}
	defer closeStore()

	services := service.Factory(tableStore, a.initInsightClient())

	router := api.New(api.RouterArgs{
		Logger:         a.Logger,
		LedgerService:  services.LedgerService,
		InsightService: services.InsightService,
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func (a *App) initStore(ctx context.Context) (store.Store, func(), error) {
	noop := func() {}

	switch a.Config.StoreBackend {
	case config.StoreBackendMemory:
		return memstore.New(), noop, nil
	case config.StoreBackendMongo:
		mongoStore, connErr := mongostore.Connect(ctx, a.Config.MongoURI, a.Config.MongoDatabase)
		if connErr != nil {
			return nil, nil, fmt.Errorf("init store: %s", connErr.Error())
		}
		closeFn := func() {
			if closeErr := mongoStore.Close(context.Background()); closeErr != nil {
				a.Logger.WithError(closeErr).Error("closing mongo store")
			}
		}
		return mongoStore, closeFn, nil
	default:
		return filestore.New(a.Config.StoreFilePath), noop, nil
	}
}

// initInsightClient создает клиента генерации инсайтов. Без ключа API возвращает nil:
// способность деградирует, остальные операции продолжают работать.
func (a *App) initInsightClient() service.InsightClient {
	if a.Config.GeminiAPIKey == "" {
		a.Logger.Warn("Gemini API key is not set, insight generation is disabled")
		return nil
	}

	baseURL := a.Config.GeminiBaseURL
	if baseURL == "" {
		baseURL = genai.DefaultBaseURL
	}
	model := a.Config.GeminiModel
	if model == "" {
		model = genai.DefaultModel
	}

	return genai.New(baseURL, model, a.Config.GeminiAPIKey)
}
