package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/loyalty-pro/internal/app"
	"github.com/fsdevblog/loyalty-pro/internal/config"
	"github.com/fsdevblog/loyalty-pro/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	// .env опционален, в проде переменные приходят из окружения.
	_ = godotenv.Load()

	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
