package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkatlas/backend/internal/config"
	"inkatlas/backend/internal/db"
	"inkatlas/backend/internal/handler"
	transport "inkatlas/backend/internal/http"
	"inkatlas/backend/internal/logger"
	"inkatlas/backend/internal/repository"
	"inkatlas/backend/internal/scheduler"
	"inkatlas/backend/internal/service"
	"inkatlas/backend/internal/service/ai"
	"inkatlas/backend/internal/snowflake"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.NodeID); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	settingsRepo := repository.NewSettingsRepository(dbConn)
	historyRepo := repository.NewHistoryRepository(dbConn)

	limiter := ai.NewRateLimiter(ai.DefaultRateLimit)

	settingsService := service.NewSettingsService(settingsRepo, limiter)
	if stored, err := settingsService.Get(context.Background()); err == nil && stored.RateLimit > 0 {
		limiter.SetLimit(stored.RateLimit)
	}
	searchService := service.NewSearchService(settingsService, historyRepo, limiter, ai.NewProvider)
	darkroomService := service.NewDarkroomService(settingsService, limiter, nil)
	historyService := service.NewHistoryService(historyRepo)

	searchHandler := handler.NewSearchHandler(searchService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	catalogHandler := handler.NewCatalogHandler()
	darkroomHandler := handler.NewDarkroomHandler(darkroomService)
	historyHandler := handler.NewHistoryHandler(historyService)

	router := transport.NewRouter(searchHandler, settingsHandler, catalogHandler, darkroomHandler, historyHandler, cfg.StaticDir)

	// Prune old search history every 6 hours.
	sched := scheduler.New(historyService, 6*time.Hour, cfg.HistoryRetention)
	sched.Start()

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		sched.Stop()
		os.Exit(0)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
