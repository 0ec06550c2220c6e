package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/ogadoctor/triage-api/internal/config"
	analyticsHandler "github.com/ogadoctor/triage-api/internal/handler/analytics"
	"github.com/ogadoctor/triage-api/internal/handler/health"
	inventoryHandler "github.com/ogadoctor/triage-api/internal/handler/inventory"
	promHandler "github.com/ogadoctor/triage-api/internal/handler/prometheus"
	queueHandler "github.com/ogadoctor/triage-api/internal/handler/queue"
	settingsHandler "github.com/ogadoctor/triage-api/internal/handler/settings"
	"github.com/ogadoctor/triage-api/internal/middleware"
	"github.com/ogadoctor/triage-api/internal/repository/memory"
	"github.com/ogadoctor/triage-api/internal/router"
	analyticsService "github.com/ogadoctor/triage-api/internal/service/analytics"
	inventoryService "github.com/ogadoctor/triage-api/internal/service/inventory"
	notificationService "github.com/ogadoctor/triage-api/internal/service/notification"
	settingsService "github.com/ogadoctor/triage-api/internal/service/settings"
	triageService "github.com/ogadoctor/triage-api/internal/service/triage"
	"github.com/ogadoctor/triage-api/pkg/logger"
	"github.com/ogadoctor/triage-api/pkg/metrics"
)

func main() {
	log := logger.NewLogger(nil)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	// Metrics registry and application metrics
	promH := promHandler.New()
	appMetrics := metrics.NewMetrics("triage", promH.Registry())

	// Initialize in-memory repositories; all state is session-scoped
	queueRepo := memory.NewQueueRepository()
	inventoryRepo := memory.NewInventoryRepository(memory.SeedItems())
	settingsRepo := memory.NewSettingsRepository(cfg.Pharmacy.PharmacyInfo())

	// Initialize services
	triageSvc := triageService.NewService(queueRepo, appMetrics)
	inventorySvc := inventoryService.NewService(inventoryRepo, appMetrics)
	notificationSvc := notificationService.NewService(appMetrics)
	settingsSvc := settingsService.NewService(settingsRepo)

	source := analyticsService.NewGeneratedSource(cfg.Analytics.Seed, cfg.Analytics.HistoryDays, time.Now())
	analyticsSvc := analyticsService.NewService(
		source,
		cfg.Analytics.ConsultationFee,
		cfg.Analytics.CacheTTL,
		cfg.Analytics.CacheSweepInterval,
	)

	// Initialize handlers
	queueH := queueHandler.NewHandler(triageSvc, notificationSvc)
	inventoryH := inventoryHandler.NewHandler(inventorySvc)
	analyticsH := analyticsHandler.NewHandler(analyticsSvc)
	settingsH := settingsHandler.NewHandler(settingsSvc, triageSvc)
	healthH := health.NewHandler(queueRepo, inventoryRepo)

	// Setup router
	r := router.NewRouter(
		queueH,
		inventoryH,
		analyticsH,
		settingsH,
		healthH,
		promH,
		router.Config{
			RateLimit:  rate.Limit(cfg.RateLimit.RPS),
			RateBurst:  cfg.RateLimit.Burst,
			CORSConfig: middleware.DefaultCORSConfig(),
			Timeout:    cfg.Server.WriteTimeout,
		},
	)
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
