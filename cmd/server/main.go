package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retreat/internal/booking/module"
	"retreat/internal/catalog"
	"retreat/internal/commons"
	"retreat/internal/config"
	"retreat/internal/infrastructure/logger"
	"retreat/internal/infrastructure/mysql"
	"retreat/internal/pricing"
	"retreat/internal/server"

	"go.uber.org/zap"
)

const configPath = "internal/config/config.yaml"

func main() {
	cfg, err := commons.LoadConfig(configPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	var db *sql.DB
	if cfg.Database.Enabled {
		db, err = mysql.NewConnection(cfg.Database)
		if err != nil {
			zapLogger.Fatal("connecting to database", zap.Error(err))
		}
		defer db.Close()
		zapLogger.Info("database connected", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.Name))
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	rates := pricing.DefaultRates()
	cat, catalogCtrl, err := catalog.NewModule(ctx, cfg.Catalog, db, rates, zapLogger)
	if err != nil {
		zapLogger.Fatal("loading catalog", zap.Error(err))
	}

	calc := pricing.NewCalculator(cat.Rooms, rates)
	bookingCtrl, store := module.NewModule(cat, calc, db, cfg, zapLogger)
	go store.RunSweeper(ctx, cfg.Session.SweepInterval)

	router := server.NewRouter(catalogCtrl, bookingCtrl, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
