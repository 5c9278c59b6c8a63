package main

import (
	"os"

	"github.com/DRSN-tech/terranova/internal/app"
	config "github.com/DRSN-tech/terranova/internal/cfg"
	"github.com/DRSN-tech/terranova/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// .env необязателен: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	bootLog := logger.NewZapLogger(&logger.Config{IsDevelopment: true, Encoding: "console"})

	cfg, err := config.Load(bootLog)
	if err != nil {
		bootLog.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	log := logger.NewZapLogger(&logger.Config{
		IsDevelopment: cfg.AppEnv == config.EnvDevelopment,
		Encoding:      cfg.Logger.Encoding,
		Level:         cfg.Logger.Level,
	})
	defer log.Sync()

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		log.Sync()
		os.Exit(1)
	}
}
