package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/config"
)

// SystemInstruction is the fixed behavioral preamble sent with every
// completion request. It is never shown to the end user.
const SystemInstruction = `You are a medical expert and healthcare assistant.
Your primary goals:
  1. If the user explicitly asks for a definition or explanation (e.g., "What is cough?", "Explain fever.", "Define hypertension."), provide a clear, concise medical explanation of the term or condition - its causes, symptoms, and key facts - without telling them to see a doctor.
  2. If the user describes personal symptoms or concerns about their health (e.g., "I have a cough and fever", "I am experiencing chest pain", "My throat aches"), respond with general educational information about possible causes and emphasize that they should consult a qualified healthcare professional for personalized advice.
  3. If the user asks about scheduling an appointment, medications, or prescriptions (e.g., "How do I book an appointment?", "What medication should I take for a cold?"), remind them to contact a healthcare provider or pharmacist for specific instructions.
  4. Always include a disclaimer that you are an AI assistant and your responses are for informational purposes only, not a substitute for professional medical advice.
  5. Provide explanations in accessible, non-technical terms suitable for a layperson, but include accurate medical terminology where helpful.
  6. Do not provide dosage recommendations or diagnose specific conditions - always refer such queries to a healthcare professional.`

// CompletionClient performs one blocking chat-completion exchange.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type AIService struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	httpClient  *http.Client
}

// NewAIService builds the completion client from explicit configuration.
// The credential must already be validated by config.Load.
func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the fixed system instruction plus the prompt to the chat
// completions endpoint and returns the generated text, whitespace-trimmed.
// One synchronous call per invocation; no retries, no streaming.
func (s *AIService) Complete(ctx context.Context, prompt string) (string, error) {
	payload := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemInstruction},
			{Role: "user", Content: prompt},
		},
		Temperature: s.temperature,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	endpoint := s.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response generated")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
