package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"alumni-portal/config"
	"alumni-portal/handlers"
	"alumni-portal/monitoring"
	"alumni-portal/security"
	"alumni-portal/services"
	"alumni-portal/storage"
	"alumni-portal/utils"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to MongoDB; this is the only fatal storage error.
	store, err := storage.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Could not connect to MongoDB: %v", err)
	}
	defer store.Close(context.Background())
	log.Println("Successfully connected to MongoDB")

	if err := store.EnsureIndexes(ctx); err != nil {
		slog.Warn("failed to ensure indexes", "error", err)
	}

	// Redis is optional: without it the stats cache is bypassed and the
	// rate limiter fails open.
	var redisClient *redis.Client
	redisClient, err = utils.NewRedisClient(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		slog.Warn("redis unavailable, continuing without cache", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Successfully connected to Redis")
	}

	// Initialize services
	eventService := services.NewEventService(store, store)
	activityService := services.NewActivityService(store)
	statsService := services.NewStatsService(store, store, redisClient, cfg.StatsCacheTTL)
	authService := services.NewAuthService(store)

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventService)
	activityHandler := handlers.NewActivityHandler(activityService)
	statsHandler := handlers.NewStatsHandler(statsService)
	authHandler := handlers.NewAuthHandler(authService)

	rateLimiter := security.NewRateLimiter(redisClient, cfg.CreateRateLimit, cfg.CreateRateWindow)

	// Register routes
	e := echo.New()
	e.Use(monitoring.Middleware())

	e.GET("/api/events", eventHandler.List)
	e.POST("/api/events", eventHandler.Create, rateLimiter.Limit())
	e.GET("/api/activities", activityHandler.Recent)
	e.GET("/api/stats", statsHandler.Overview)

	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		if err := store.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		if redisClient != nil {
			if err := utils.RedisHealthCheck(redisClient); err != nil {
				return c.JSON(http.StatusOK, map[string]string{
					"status": "degraded",
					"error":  err.Error(),
				})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	// Metrics server
	if cfg.EnableMetrics {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			slog.Info("metrics server listening", "port", cfg.MetricsPort)
			if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
				slog.Error("metrics server stopped", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Setup graceful shutdown
	go handleShutdown(cancel, srv)

	log.Printf("Server running at http://localhost:%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}

// handleShutdown drains the HTTP server on SIGINT/SIGTERM.
func handleShutdown(cancel context.CancelFunc, srv *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
