package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	apiHttp "github.com/vburkalo/city-temperature-api/internal/api/http"
	"github.com/vburkalo/city-temperature-api/internal/config"
	"github.com/vburkalo/city-temperature-api/internal/db"
	"github.com/vburkalo/city-temperature-api/internal/repository"
	"github.com/vburkalo/city-temperature-api/internal/scheduler"
	"github.com/vburkalo/city-temperature-api/internal/server"
	"github.com/vburkalo/city-temperature-api/internal/service"
	"github.com/vburkalo/city-temperature-api/internal/weather"
	"github.com/vburkalo/city-temperature-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.MustInit(cfg.Env, cfg.LogLevel)
	defer func() { _ = appLogger.Sync() }()

	logger.Info("starting city temperature api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			logger.Error("error when closing", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	if err := db.Migrate(dbMySQL); err != nil {
		logger.Error("schema migration failed", zap.Error(err))
		os.Exit(1)
	}

	// Services, Repos & API Handlers
	weatherClient := weather.NewClient(cfg.Weather)
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:  cfg,
		Repos:   repos,
		Weather: weatherClient,
	})
	handlers := apiHttp.NewHandlers(services, cfg)

	// Optional periodic refresh
	if cfg.Scheduler.RefreshEnabled {
		sched := scheduler.New(services.Temperatures, cfg.Scheduler.RefreshInterval)
		if err := sched.Start(); err != nil {
			logger.Error("scheduler start failed", zap.Error(err))
			os.Exit(1)
		}
		defer sched.Stop()
		logger.Info("periodic refresh enabled", zap.Duration("interval", cfg.Scheduler.RefreshInterval))
	}

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}
