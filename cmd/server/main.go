package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sk-sazzad/tinystepsbd/internal/api"
	"github.com/sk-sazzad/tinystepsbd/internal/cart"
	"github.com/sk-sazzad/tinystepsbd/internal/catalog"
	"github.com/sk-sazzad/tinystepsbd/internal/checkout"
	"github.com/sk-sazzad/tinystepsbd/internal/config"
	"github.com/sk-sazzad/tinystepsbd/internal/orders"
	"github.com/sk-sazzad/tinystepsbd/internal/store"
	"github.com/sk-sazzad/tinystepsbd/internal/wishlist"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting TinyStepsBD storefront server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	// Initialize the persistent store; a failure here degrades to
	// memory-only for the whole session instead of refusing to start
	var kv store.Store
	fileStore, err := store.NewFileStore(cfg.Store.DataDir, logger)
	if err != nil {
		logger.Warn("Persistent store unavailable, running memory-only",
			zap.String("data_dir", cfg.Store.DataDir),
			zap.Error(err))
		kv = store.NewMemoryStore()
	} else {
		kv = fileStore
	}

	// Wire the storefront core
	catalogClient := catalog.NewClient(cfg.API.URL, 30*time.Second, logger)
	loader := catalog.NewLoader(catalogClient, kv, cfg.Catalog.EnableSampleProducts, logger)
	cartMgr := cart.NewManager(kv, loader, logger)
	wishlistMgr := wishlist.NewManager(kv, logger)
	orderClient := orders.NewClient(cfg.API.URL, cfg.Checkout.AllowUnconfirmedOrders, logger)
	orchestrator := checkout.NewOrchestrator(cartMgr, orderClient, cfg.Checkout.SubmitTimeout, logger)

	// Initialize router
	router := api.NewRouter(cfg, api.Deps{
		Catalog:  loader,
		Cart:     cartMgr,
		Wishlist: wishlistMgr,
		Checkout: orchestrator,
	}, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Catalog refresh: load once on startup, then on the cache cadence
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	go loader.RunRefreshLoop(refreshCtx)
	logger.Info("Catalog refresh job started")

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopRefresh()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
