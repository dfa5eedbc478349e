package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageIntent string

const (
	IntentEmpty       MessageIntent = "empty"
	IntentDefinition  MessageIntent = "definition"
	IntentSymptom     MessageIntent = "symptom_report"
	IntentAppointment MessageIntent = "appointment"
	IntentMedication  MessageIntent = "medication"
	IntentFallback    MessageIntent = "fallback"
)

// MessageChannel represents the communication channel
type MessageChannel string

const (
	ChannelWeb       MessageChannel = "web"
	ChannelWebSocket MessageChannel = "websocket"
)

// Message is one archived request/response exchange. Records are written
// best-effort after a reply has been produced and are never read back into
// the dispatch path.
type Message struct {
	ID           primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	SessionID    string                 `bson:"session_id" json:"session_id"`
	UserMessage  string                 `bson:"user_message" json:"user_message"`
	BotResponse  string                 `bson:"bot_response" json:"bot_response"`
	Intent       MessageIntent          `bson:"intent" json:"intent"`
	IsAIResponse bool                   `bson:"is_ai_response" json:"is_ai_response"`
	Timestamp    time.Time              `bson:"timestamp" json:"timestamp"`
	UserID       string                 `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Channel      MessageChannel         `bson:"channel,omitempty" json:"channel,omitempty"`
	Metadata     map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// ChatRequest is one submitted user question. Message is deliberately not
// required: an empty or whitespace-only message is a valid request answered
// with the enter-a-question warning.
type ChatRequest struct {
	Message   string                 `json:"message"`
	SessionID string                 `json:"session_id,omitempty"`
	UserID    string                 `json:"user_id,omitempty"`
	Channel   MessageChannel         `json:"channel,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type ChatResponse struct {
	Response     string        `json:"response"`
	Intent       MessageIntent `json:"intent"`
	IsAIResponse bool          `json:"is_ai_response"`
	Symptom      string        `json:"symptom,omitempty"`
}

// NewTextResponse creates a templated (non-generated) response
func NewTextResponse(text string, intent MessageIntent) *ChatResponse {
	return &ChatResponse{
		Response: text,
		Intent:   intent,
	}
}
