package main

import (
	"log"
	"net/http"

	"github.com/garagehub/garagehub-api/internal/config"
	dbpkg "github.com/garagehub/garagehub-api/internal/db"
	"github.com/garagehub/garagehub-api/internal/logger"
	"github.com/garagehub/garagehub-api/internal/middleware"
	"github.com/garagehub/garagehub-api/internal/routes"
	"github.com/garagehub/garagehub-api/internal/session"
	"github.com/garagehub/garagehub-api/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {

	logger.Setup()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	sessions := session.NewStore(cfg)
	images := storage.NewS3Store(cfg.S3Region, cfg.S3Bucket, cfg.S3AccessKey, cfg.S3SecretKey)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, sessions, images)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
