package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/config"
	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/controllers"
	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/database"
	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/services"
)

func SetupRoutes(router *gin.Engine, cfg *config.Config) {
	// Initialize services
	aiService := services.NewAIService(cfg.AI)
	store := database.Messages()
	chatbotService := services.NewChatbotService(aiService, store)

	// Initialize controllers
	chatbotController := controllers.NewChatbotController(chatbotService, store)
	wsController := controllers.NewWebSocketController(chatbotService)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		// Chatbot
		public.POST("/chat", chatbotController.HandleChat)
		public.GET("/chat/history", chatbotController.GetChatHistory)
		public.GET("/intents", chatbotController.GetSupportedIntents)

		// WebSocket for real-time chat
		public.GET("/ws", wsController.HandleWebSocket)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
