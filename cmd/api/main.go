package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/2025renato/agenda-pet-api/internal/audit"
	"github.com/2025renato/agenda-pet-api/internal/config"
	"github.com/2025renato/agenda-pet-api/internal/kvstore"
	"github.com/2025renato/agenda-pet-api/internal/routes"
)

func main() {

	cfg := config.Load()

	kv, err := kvstore.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}

	auditLogger, err := audit.NewFile(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open audit log: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, kv, auditLogger)

	log.Printf("Server running on %s (storage driver: %s)", cfg.Addr(), cfg.StorageDriver)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
