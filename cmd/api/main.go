package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"awards-cms-go/internal/auth"
	"awards-cms-go/internal/handler"
	"awards-cms-go/internal/middleware"
	"awards-cms-go/internal/region"
	"awards-cms-go/internal/store"
	"awards-cms-go/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Open the region store
	var regionStore store.RegionStore
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		pg := store.NewPostgresStore(db)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		regionStore = pg
	case config.DriverFile:
		fs, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to open data dir: %v", err)
		}
		regionStore = fs
	}

	// Initialize services
	authService := auth.NewAuthService(cfg)
	regionService := region.NewRegionService(regionStore)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	regionHandler := handler.NewRegionHandler(regionService)

	// Set up Gin router
	router := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}
	router.Use(cors.New(corsConfig))

	// Public routes
	router.POST("/api/login", authHandler.Login)
	router.GET("/api/regions", regionHandler.ListRegions)
	router.GET("/api/awards", regionHandler.ListRegions)
	router.POST("/api/awards", regionHandler.CreateRegion)
	router.GET("/api/awards/:region", regionHandler.GetRegion)

	// Session-gated routes (editor UI access)
	session := router.Group("/api")
	session.Use(middleware.SessionAuthMiddleware(cfg.JWTSecret))
	{
		session.GET("/session", authHandler.Session)
	}

	// Write routes gated by the static bearer token
	writes := router.Group("/api")
	writes.Use(middleware.WriteTokenMiddleware(cfg.WriteToken))
	{
		writes.PUT("/awards/:region", regionHandler.UpdateRegion)
		writes.DELETE("/awards/:region", regionHandler.DeleteRegion)
	}

	log.Printf("Starting server on %s (storage: %s)", cfg.Addr, cfg.StorageDriver)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
