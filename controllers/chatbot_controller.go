package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/database"
	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/models"
	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/services"
)

type ChatbotController struct {
	chatbotService *services.ChatbotService
	store          *database.MessageStore
}

func NewChatbotController(chatbotService *services.ChatbotService, store *database.MessageStore) *ChatbotController {
	return &ChatbotController{
		chatbotService: chatbotService,
		store:          store,
	}
}

// HandleChat processes chat messages
func (cc *ChatbotController) HandleChat(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if req.Channel == "" {
		req.Channel = models.ChannelWeb
	}

	response := cc.chatbotService.ProcessMessage(c.Request.Context(), req)
	c.JSON(http.StatusOK, response)
}

// GetChatHistory retrieves archived exchanges for a session
func (cc *ChatbotController) GetChatHistory(c *gin.Context) {
	if cc.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Chat history is not available without a database connection",
		})
		return
	}

	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	limit := int64(50)
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.ParseInt(limitStr, 10, 64); err == nil {
			limit = l
		}
	}

	history, err := cc.store.RecentBySession(c.Request.Context(), sessionID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve chat history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"count":   len(history),
	})
}

// GetSupportedIntents returns list of supported intents
func (cc *ChatbotController) GetSupportedIntents(c *gin.Context) {
	intents := []map[string]interface{}{
		{
			"intent":      models.IntentDefinition,
			"description": "Definitions and explanations of medical terms",
			"examples": []string{
				"What is hypertension?",
				"Explain fever.",
				"Define migraine",
			},
		},
		{
			"intent":      models.IntentSymptom,
			"description": "First-person symptom reports, answered with general information and a disclaimer",
			"examples": []string{
				"I have a terrible cough",
				"I feel a sharp pain in my chest",
				"I'm running a fever",
			},
		},
		{
			"intent":      models.IntentAppointment,
			"description": "Appointment and provider queries, answered with a referral to the healthcare provider",
			"examples": []string{
				"Can I book an appointment?",
				"I need to see a doctor",
				"Where is the nearest clinic?",
			},
		},
		{
			"intent":      models.IntentMedication,
			"description": "Medication and prescription queries, answered with a referral to a doctor or pharmacist",
			"examples": []string{
				"Can you renew my prescription?",
				"Which pills should I take?",
			},
		},
		{
			"intent":      models.IntentFallback,
			"description": "Everything else, forwarded to the AI assistant",
			"examples": []string{
				"How can I sleep better?",
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"intents": intents,
	})
}
