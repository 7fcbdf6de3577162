package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotel-dashboard/config"
	"hotel-dashboard/controllers"
	"hotel-dashboard/logger"
	"hotel-dashboard/platform"
	"hotel-dashboard/routes"
	"hotel-dashboard/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()

	// Required token secret (fatal if missing: without it no session can be verified)
	if cfg.TokenSecret == "" {
		log.Fatal("❌ ERROR: TOKEN_SECRET environment variable is not set. Cannot verify operator sessions.")
	}
	log.Println("✅ TOKEN_SECRET detected.")

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	// Platform client
	client := platform.NewClient(cfg.Platform)
	log.Printf("✅ Platform API client configured for %s", cfg.Platform.BaseURL)

	// Initialize services
	lifecycleService := services.NewLifecycleService(client)
	statsService := services.NewStatsService(client)

	// Initialize controllers
	bookingController := controllers.NewBookingController(lifecycleService)
	statsController := controllers.NewStatsController(statsService)
	resourceController := controllers.NewResourceController(client)

	// Build router
	router := routes.SetupRouter(bookingController, statsController, resourceController, cfg.CORSOrigins, []byte(cfg.TokenSecret))

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Dashboard starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
