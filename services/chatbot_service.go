package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/database"
	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/models"
	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/utils"
)

// User-visible reply templates. These are part of the product contract and
// must not be reworded without updating the clients that match on them.
const (
	EmptyInputWarning = "⚠️ Please enter a question."

	AppointmentReferral = "📅 For appointment scheduling or physician referrals, please contact your healthcare provider directly."

	MedicationReferral = "💊 For medication or prescription concerns, please consult your doctor or pharmacist."

	SymptomDisclaimer = "⚠️ Disclaimer: This information is educational only and not a substitute for professional medical advice. " +
		"Please consult a qualified healthcare professional for personalized guidance."
)

type ChatbotService struct {
	completions      CompletionClient
	intentClassifier *utils.IntentClassifier
	store            *database.MessageStore
}

// NewChatbotService wires the dispatcher. store may be nil, in which case
// exchanges are not archived.
func NewChatbotService(completions CompletionClient, store *database.MessageStore) *ChatbotService {
	return &ChatbotService{
		completions:      completions,
		intentClassifier: utils.NewIntentClassifier(),
		store:            store,
	}
}

// Respond maps raw user text to the final display string. It never fails:
// completion errors are rendered into the reply, not propagated.
func (s *ChatbotService) Respond(ctx context.Context, userText string) string {
	return s.ProcessMessage(ctx, models.ChatRequest{Message: userText}).Response
}

// ProcessMessage classifies the message, dispatches to the matching handler,
// and archives the exchange. At most one completion call is issued per
// message; templated branches issue none.
func (s *ChatbotService) ProcessMessage(ctx context.Context, req models.ChatRequest) *models.ChatResponse {
	prompt := strings.TrimSpace(req.Message)

	classification := s.intentClassifier.Classify(prompt)

	var response *models.ChatResponse

	switch classification.Intent {
	case models.IntentEmpty:
		response = models.NewTextResponse(EmptyInputWarning, models.IntentEmpty)
	case models.IntentDefinition:
		response = s.handleDefinition(ctx, prompt)
	case models.IntentSymptom:
		response = s.handleSymptomReport(ctx, classification.Symptom)
	case models.IntentAppointment:
		response = models.NewTextResponse(AppointmentReferral, models.IntentAppointment)
	case models.IntentMedication:
		response = models.NewTextResponse(MedicationReferral, models.IntentMedication)
	default:
		response = s.handleFallback(ctx, prompt)
	}

	s.saveMessage(ctx, req, prompt, response)

	return response
}

// handleDefinition forwards the original trimmed text as the prompt. The
// answer is returned verbatim with no disclaimer: the system instruction
// already shapes definitional replies.
func (s *ChatbotService) handleDefinition(ctx context.Context, prompt string) *models.ChatResponse {
	answer, generated := s.generate(ctx, prompt)
	return &models.ChatResponse{
		Response:     answer,
		Intent:       models.IntentDefinition,
		IsAIResponse: generated,
	}
}

// handleSymptomReport asks for general information about the first symptom
// term found in the message and appends the fixed disclaimer block after a
// blank line.
func (s *ChatbotService) handleSymptomReport(ctx context.Context, symptom string) *models.ChatResponse {
	prompt := fmt.Sprintf("What are possible causes and general information about %s?", symptom)
	answer, generated := s.generate(ctx, prompt)
	return &models.ChatResponse{
		Response:     answer + "\n\n" + SymptomDisclaimer,
		Intent:       models.IntentSymptom,
		IsAIResponse: generated,
		Symptom:      symptom,
	}
}

func (s *ChatbotService) handleFallback(ctx context.Context, prompt string) *models.ChatResponse {
	answer, generated := s.generate(ctx, prompt)
	return &models.ChatResponse{
		Response:     answer,
		Intent:       models.IntentFallback,
		IsAIResponse: generated,
	}
}

// generate runs one completion call and converts any failure into the
// user-visible "[Error]: ..." form. The returned bool reports whether the
// text was actually generated by the model.
func (s *ChatbotService) generate(ctx context.Context, prompt string) (string, bool) {
	answer, err := s.completions.Complete(ctx, prompt)
	if err != nil {
		log.Printf("completion failed: %v", err)
		return fmt.Sprintf("[Error]: %v", err), false
	}
	return answer, true
}

// saveMessage archives the exchange best-effort. A store failure is logged
// and never affects the reply.
func (s *ChatbotService) saveMessage(ctx context.Context, req models.ChatRequest, prompt string, response *models.ChatResponse) {
	if s.store == nil {
		return
	}

	message := &models.Message{
		SessionID:    req.SessionID,
		UserMessage:  prompt,
		BotResponse:  response.Response,
		Intent:       response.Intent,
		IsAIResponse: response.IsAIResponse,
		Timestamp:    time.Now(),
		UserID:       req.UserID,
		Channel:      req.Channel,
		Metadata:     req.Metadata,
	}

	if err := s.store.Save(ctx, message); err != nil {
		log.Printf("Failed to save chat message: %v", err)
	}
}
