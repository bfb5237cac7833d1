package routes

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/duwalace/ZionFlixx/internal/config"
	"github.com/duwalace/ZionFlixx/internal/handlers"
	"github.com/duwalace/ZionFlixx/internal/middleware"
	"github.com/duwalace/ZionFlixx/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	authHandler *handlers.AuthHandler,
	titleHandler *handlers.TitleHandler,
	engagementHandler *handlers.EngagementHandler,
	adminHandler *handlers.AdminHandler,
	uploadHandler *handlers.UploadHandler,
	userRepo repository.UserRepository,
) *gin.Engine {

	router := gin.New()

	// =========================
	// GLOBAL MIDDLEWARE
	// =========================
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// =========================
	// CORS CONFIG (DEV / PROD)
	// =========================
	env := os.Getenv("ENV") // development | production
	frontendURL := os.Getenv("CORS_ORIGIN")

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if env == "production" {
		if frontendURL == "" {
			log.Fatal("❌ CORS_ORIGIN environment variable is NOT set in production!")
		}
		corsConfig.AllowOrigins = []string{frontendURL}
		log.Printf("✅ CORS configured for production: %s", frontendURL)
	} else {
		allowedOrigins := []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		}

		if frontendURL != "" {
			allowedOrigins = append(allowedOrigins, frontendURL)
		}

		corsConfig.AllowOriginFunc = func(origin string) bool {
			for _, allowed := range allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			// Allow local network IPs (192.168.x.x, 10.x.x.x)
			if strings.HasPrefix(origin, "http://192.168.") || strings.HasPrefix(origin, "http://10.") {
				return true
			}
			return false
		}
		log.Printf("✅ CORS configured for development with %d allowed origins", len(allowedOrigins))
	}

	router.Use(cors.New(corsConfig))

	// =========================
	// SECURITY HEADERS MIDDLEWARE
	// =========================
	router.Use(func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	})

	// =========================
	// STATIC MEDIA (HLS + covers)
	// =========================
	router.Static("/media", config.GlobalConfig.MediaRoot)

	// =========================
	// API ROUTES
	// =========================
	api := router.Group("/api")
	{
		// ---------- AUTH ----------
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)

			authProtected := auth.Group("/")
			authProtected.Use(middleware.JWTMiddleware())
			{
				authProtected.GET("/me", authHandler.Me)
				authProtected.PUT("/profile", authHandler.UpdateProfile)
			}
		}

		// ---------- CATALOG (optional JWT for age filtering) ----------
		titles := api.Group("/titles")
		titles.Use(middleware.OptionalJWTMiddleware())
		{
			titles.GET("", titleHandler.GetTitles)
			titles.GET("/:id", titleHandler.GetTitleByID)
			titles.GET("/:id/episodes", titleHandler.GetEpisodes)
			titles.GET("/:id/related", titleHandler.GetRelated)

			// Admin-only catalog mutations
			titles.POST("", middleware.JWTMiddleware(), middleware.AdminMiddleware(userRepo), titleHandler.CreateTitle)
			titles.PUT("/:id", middleware.JWTMiddleware(), middleware.AdminMiddleware(userRepo), titleHandler.UpdateTitle)
			titles.DELETE("/:id", middleware.JWTMiddleware(), middleware.AdminMiddleware(userRepo), titleHandler.DeleteTitle)
		}

		// ---------- PROTECTED ----------
		protected := api.Group("/")
		protected.Use(middleware.JWTMiddleware())
		{
			// PROGRESS
			progress := protected.Group("/progress")
			{
				progress.GET("", engagementHandler.GetContinueWatching)
				progress.GET("/:titleId", engagementHandler.GetProgress)
				progress.POST("", engagementHandler.SaveProgress)
			}

			// FAVORITES
			favorites := protected.Group("/favorites")
			{
				favorites.GET("", engagementHandler.GetFavorites)
				favorites.POST("", engagementHandler.AddFavorite)
				favorites.GET("/:titleId", engagementHandler.CheckFavorite)
				favorites.DELETE("/:titleId", engagementHandler.RemoveFavorite)
			}

			// ADMIN DASHBOARD
			admin := protected.Group("/admin")
			admin.Use(middleware.AdminMiddleware(userRepo))
			{
				admin.GET("/stats", adminHandler.GetStats)
				admin.GET("/users", adminHandler.GetUsers)
			}

			// UPLOADS (admin only)
			upload := protected.Group("/upload")
			upload.Use(middleware.AdminMiddleware(userRepo))
			{
				upload.POST("/cover", uploadHandler.UploadCover)
				upload.POST("/video", uploadHandler.UploadVideo)
			}
		}

		// ---------- DEV ONLY ----------
		dev := api.Group("/dev")
		{
			dev.POST("/seed", titleHandler.SeedTitle)
			dev.POST("/create-admin", authHandler.CreateAdmin)
		}
	}

	// =========================
	// HEALTH & ROOT
	// =========================
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "success",
			"message": "Server is running",
		})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "success",
			"message": "ZionFlixx API",
			"version": "1.0.0",
		})
	})

	return router
}
