package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/cors"

	"github.com/dwikikusuma/minicommerce/internal/gateway/app"
	"github.com/dwikikusuma/minicommerce/internal/gateway/auth"
	"github.com/dwikikusuma/minicommerce/internal/gateway/client"
	"github.com/dwikikusuma/minicommerce/internal/gateway/health"
	"github.com/dwikikusuma/minicommerce/internal/gateway/httpapi"
	"github.com/dwikikusuma/minicommerce/pkg/config"
	"github.com/dwikikusuma/minicommerce/pkg/logger"
	"github.com/dwikikusuma/minicommerce/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	if cfg.HTTPPort == 0 {
		cfg.HTTPPort = 8080
	}
	log := logger.New(logger.Options{Service: "api-gateway", Env: cfg.AppEnv, Level: cfg.LogLevel})

	// Downstream addresses are startup configuration, not a runtime surprise.
	if cfg.CartServiceURL == "" {
		log.Error("CART_SERVICE_URL is not configured")
		os.Exit(1)
	}
	if cfg.ProductsServiceURL == "" {
		log.Error("PRODUCTS_SERVICE_URL is not configured")
		os.Exit(1)
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	cartClient := client.NewCartClient(cfg.CartServiceURL, cfg.ClientTimeout)
	catalogClient := client.NewCatalogClient(cfg.ProductsServiceURL, cfg.ClientTimeout)
	svc := app.NewService(cartClient, catalogClient)

	authenticator := auth.New(cfg.JWTSecret, cfg.TokenTTL)
	checker := health.NewChecker("api-gateway",
		health.Dependency{Name: "cartService", URL: cfg.CartServiceURL},
		health.Dependency{Name: "productsService", URL: cfg.ProductsServiceURL},
	)

	handler := httpapi.NewHandler(svc, authenticator, checker, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(handler.Router()),
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
