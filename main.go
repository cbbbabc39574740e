package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autohub/config"
	"autohub/cron"
	"autohub/database"
	"autohub/handlers"
	"autohub/middleware"
	"autohub/routes"
	"autohub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open %s store: %v", cfg.StoreBackend, err)
	}

	if cfg.SeedOnStart {
		seeded, err := database.Seed(ctx, store)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to seed store: %v", err)
		}
		if len(seeded) > 0 {
			logger.Info("Seeded demo data", zap.Strings("keys", seeded))
		}
	}

	handlerBundle := handlers.NewHandlerBundle(store, cfg)

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(ctx, store, cfg.StoreBackend, time.Minute)

	poller := cron.NewNotificationPoller(handlerBundle.NotificationService, cfg.NotificationPollInterval)
	if err := poller.Start(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to start notification poller: %v", err)
	}

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (store: %s)...", srv.Addr, cfg.StoreBackend)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	// Cancelling the root context stops the poller and the health monitor.
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Warn("main: failed to close store", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
