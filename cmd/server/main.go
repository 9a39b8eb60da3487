package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/api"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/config"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/database"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/quote"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/repository"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repository and quote client
	stockRepo := repository.NewStockRepository(db)
	quoteClient := quote.NewFinnhubClient(cfg.Quote.BaseURL, cfg.Quote.APIKey)

	// Create services
	systemService := service.NewSystemService(db)
	stockService := service.NewStockService(stockRepo, quoteClient)
	portfolioService := service.NewPortfolioService(stockRepo, quoteClient)
	refreshService := service.NewPriceRefreshService(stockRepo, quoteClient)

	// Schedule the background price refresh job
	scheduler := cron.New()
	if cfg.Refresh.Schedule != "" {
		_, err := scheduler.AddFunc(cfg.Refresh.Schedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			if err := refreshService.RefreshAll(ctx); err != nil {
				log.Printf("price refresh failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Failed to schedule price refresh (%q): %v", cfg.Refresh.Schedule, err)
		}
		scheduler.Start()
		log.Printf("Scheduled price refresh: %s", cfg.Refresh.Schedule)
	}

	// Create router
	router := api.NewRouter(systemService, stockService, portfolioService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Stop the scheduler and wait for a running refresh to finish
	<-scheduler.Stop().Done()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
