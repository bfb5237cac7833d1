package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/duwalace/ZionFlixx/internal/config"
	"github.com/duwalace/ZionFlixx/internal/database"
	"github.com/duwalace/ZionFlixx/internal/handlers"
	"github.com/duwalace/ZionFlixx/internal/repository"
	"github.com/duwalace/ZionFlixx/internal/routes"
	"github.com/duwalace/ZionFlixx/internal/services"
)

func main() {

	// =========================
	// LOAD CONFIG
	// =========================
	if err := config.LoadConfig(); err != nil {
		log.Println("⚠️ Config load warning:", err)
		log.Println("⚠️ Using environment variables only")
	}

	// =========================
	// CONNECT DATABASE
	// =========================
	if err := database.ConnectDB(); err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}

	database.RunMigrations()

	// =========================
	// INIT REPOSITORIES
	// =========================
	userRepo := repository.NewUserRepository()
	titleRepo := repository.NewTitleRepository()
	progressRepo := repository.NewProgressRepository()
	favoriteRepo := repository.NewFavoriteRepository()

	// =========================
	// INIT SERVICES
	// =========================
	catalogService := services.NewCatalogService(titleRepo, userRepo)
	titleAdminService := services.NewTitleAdminService(titleRepo)
	engagementService := services.NewEngagementService(titleRepo, progressRepo, favoriteRepo)
	statsService := services.NewStatsService(userRepo, titleRepo, progressRepo, favoriteRepo)
	uploadService := services.NewUploadService()

	// =========================
	// INIT HANDLERS
	// =========================
	authHandler := handlers.NewAuthHandler(userRepo)
	titleHandler := handlers.NewTitleHandler(catalogService, titleAdminService)
	engagementHandler := handlers.NewEngagementHandler(engagementService)
	adminHandler := handlers.NewAdminHandler(statsService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// =========================
	// ROUTES
	// =========================
	router := routes.SetupRoutes(
		authHandler,
		titleHandler,
		engagementHandler,
		adminHandler,
		uploadHandler,
		userRepo,
	)

	// =========================
	// PORT
	// =========================
	port := os.Getenv("PORT")
	if port == "" {
		port = config.GlobalConfig.ServerPort
	}
	if port == "" {
		port = "3001"
	}

	bindAddr := "0.0.0.0:" + port

	// =========================
	// SERVER CONFIG
	// =========================
	server := &http.Server{
		Addr:         bindAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// =========================
	// START SERVER
	// =========================
	go func() {
		log.Println("🎬 =======================================")
		log.Println("🎬   ZIONFLIXX API SERVER")
		log.Println("🎬 =======================================")
		log.Printf("🎬   Running on: %s", bindAddr)
		log.Printf("🎬   Serving HLS media from: %s", config.GlobalConfig.MediaRoot)
		log.Println("🎬 =======================================")
		log.Println("🚀 Server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Println("❌ Server error:", err)
		}
	}()

	// =========================
	// GRACEFUL SHUTDOWN
	// =========================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}

	log.Println("✅ Server exited properly")
}
