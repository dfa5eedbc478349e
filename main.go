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

	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/config"
	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/database"
	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/middleware"
	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/routes"
)

func main() {
	// Load configuration. A missing API key is fatal: the chatbot cannot
	// answer generated branches without it.
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cfg := config.Get()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database. The chat log is best-effort; the chatbot still
	// serves replies when MongoDB is unreachable.
	if err := database.Connect(cfg); err != nil {
		log.Printf("WARNING: chat log disabled, database unavailable: %v", err)
	} else {
		defer database.Disconnect()
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS(cfg.Security.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":        "ok",
			"timestamp":     time.Now(),
			"ai_configured": cfg.AI.APIKey != "",
			"database":      database.HealthCheck() == nil,
		})
	})

	// Setup all routes
	routes.SetupRoutes(router, cfg)

	// Log available endpoints
	logAvailableEndpoints(router)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		log.Printf("Health check: http://localhost:%s/health", cfg.Port)
		log.Printf("Chat endpoint: http://localhost:%s/api/v1/chat", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// logAvailableEndpoints logs all registered routes
func logAvailableEndpoints(router *gin.Engine) {
	log.Println("\nAvailable endpoints:")
	routes := router.Routes()
	for _, route := range routes {
		log.Printf("  %s %s", route.Method, route.Path)
	}
	log.Println("")
}
