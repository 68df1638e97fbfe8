package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fleamarket/internal/adapter/api"
	"fleamarket/internal/adapter/api/handler"
	"fleamarket/internal/adapter/api/router"
	"fleamarket/internal/adapter/repository"
	"fleamarket/internal/infrastructure/kvstore"
	"fleamarket/internal/infrastructure/ratelimit"
	"fleamarket/internal/infrastructure/websocket"
	"fleamarket/internal/usecase"
	"fleamarket/pkg/config"
	"fleamarket/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetDebug(cfg.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := kvstore.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.StorageDriver, err)
	}
	defer store.Close()
	logger.Info("Using %s storage", cfg.StorageDriver)

	keys := repository.NewKeys(cfg.StorageKeyPrefix)
	productRepo := repository.NewKVProductRepository(store, keys)
	cartRepo := repository.NewKVCartRepository(store, keys, productRepo)
	chatRepo := repository.NewKVChatRepository(store, keys)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	storeUseCase := usecase.NewStoreUseCase(productRepo, cartRepo, chatRepo, wsManager, usecase.StoreOptions{
		SeedCatalog:   cfg.SeedCatalog,
		ShippingFee:   cfg.ShippingFee,
		CheckoutDelay: cfg.CheckoutDelay,
	})
	if err := storeUseCase.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	handler.Setup(storeUseCase)
	handler.SetupHealthHandler(cfg.StorageDriver, wsManager.ClientCount)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine(ctx.Done())

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e, limiter, handler.NewWebSocketHandler(wsManager))

	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown: %v", err)
	}
}
