package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/staylodge/staylodge-backend/internal/app"
	"github.com/staylodge/staylodge-backend/internal/config"
	"github.com/staylodge/staylodge-backend/internal/db"
	"github.com/staylodge/staylodge-backend/internal/db/migrations"
	"github.com/staylodge/staylodge-backend/internal/logger"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLog := logger.New()
	defer appLog.Close()

	// Run migrations before opening the pool
	if cfg.MigrateOnStart {
		if err := migrations.Up(cfg.DBDSN); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Connect DB
	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	// Redis backs the per-room booking lock
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	// Wire all modules
	container, err := app.NewContainer(cfg, pool, redisClient, appLog)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer container.Producer.Close()

	// Background sweepers (auto-cancel, check-in reminders)
	go container.Sweeper.Run(ctx)

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		log.Printf("server running on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	log.Println("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("server exited gracefully")
}
