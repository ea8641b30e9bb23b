package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/andy-moore-energy/energy-storage-optimiser/internal/api/handlers"
	"github.com/andy-moore-energy/energy-storage-optimiser/internal/api/middleware"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.Recovery())

	sizeHandler := handlers.NewSizeHandler(nil)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/size", sizeHandler.RunSize)
	}

	log.Printf("API server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
