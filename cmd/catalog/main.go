package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dwikikusuma/minicommerce/internal/catalog/app"
	"github.com/dwikikusuma/minicommerce/internal/catalog/httpapi"
	"github.com/dwikikusuma/minicommerce/internal/catalog/infra/sqlite"
	"github.com/dwikikusuma/minicommerce/pkg/config"
	"github.com/dwikikusuma/minicommerce/pkg/logger"
	"github.com/dwikikusuma/minicommerce/pkg/shutdown"
	"github.com/dwikikusuma/minicommerce/pkg/sqlitedb"
)

const seedSize = 100

func main() {
	cfg := config.Load()
	if cfg.HTTPPort == 0 {
		cfg.HTTPPort = 8082
	}
	log := logger.New(logger.Options{Service: "products-service", Env: cfg.AppEnv, Level: cfg.LogLevel})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	path := cfg.DBPath
	if path == "" {
		path = "./data/catalog.db"
	}
	db, err := sqlitedb.Open(path)
	if err != nil {
		log.Error("db open failed", slog.Any("err", err), slog.String("path", path))
		os.Exit(1)
	}
	defer db.Close()

	repo, err := sqlite.NewProductRepo(db)
	if err != nil {
		log.Error("db migrate failed", slog.Any("err", err))
		os.Exit(1)
	}

	svc := app.NewService(repo)
	if n, err := svc.Seed(ctx, seedSize); err != nil {
		log.Error("seed failed", slog.Any("err", err))
		os.Exit(1)
	} else if n > 0 {
		log.Info("catalog seeded", slog.Int("products", n))
	}

	handler := httpapi.NewHandler(svc, db, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
