package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/models"
)

// stubCompletionClient records prompts and returns a canned reply.
type stubCompletionClient struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestRespondEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		stub := &stubCompletionClient{reply: "unused"}
		service := NewChatbotService(stub, nil)

		got := service.Respond(context.Background(), input)
		if got != EmptyInputWarning {
			t.Errorf("Respond(%q) = %q, want warning string", input, got)
		}
		if len(stub.prompts) != 0 {
			t.Errorf("Respond(%q) issued %d completion calls, want 0", input, len(stub.prompts))
		}
	}
}

func TestRespondDefinitionForwardsOriginalText(t *testing.T) {
	stub := &stubCompletionClient{reply: "Hypertension is high blood pressure."}
	service := NewChatbotService(stub, nil)

	got := service.Respond(context.Background(), "What is hypertension?")

	if got != "Hypertension is high blood pressure." {
		t.Errorf("unexpected response: %q", got)
	}
	if len(stub.prompts) != 1 {
		t.Fatalf("expected 1 completion call, got %d", len(stub.prompts))
	}
	// The original trimmed text is the prompt, not a lower-cased or derived form.
	if stub.prompts[0] != "What is hypertension?" {
		t.Errorf("prompt = %q, want original text", stub.prompts[0])
	}
	if strings.Contains(got, SymptomDisclaimer) {
		t.Error("definition responses must not carry the disclaimer")
	}
}

func TestRespondSymptomReport(t *testing.T) {
	stub := &stubCompletionClient{reply: "A cough is usually caused by..."}
	service := NewChatbotService(stub, nil)

	got := service.Respond(context.Background(), "I have a terrible cough")

	if len(stub.prompts) != 1 {
		t.Fatalf("expected 1 completion call, got %d", len(stub.prompts))
	}
	if stub.prompts[0] != "What are possible causes and general information about cough?" {
		t.Errorf("derived prompt = %q", stub.prompts[0])
	}

	want := "A cough is usually caused by...\n\n" + SymptomDisclaimer
	if got != want {
		t.Errorf("response = %q, want generated text + blank line + disclaimer", got)
	}
}

func TestRespondSymptomReportFirstTermInTextOrder(t *testing.T) {
	stub := &stubCompletionClient{reply: "info"}
	service := NewChatbotService(stub, nil)

	service.Respond(context.Background(), "I have fever and cough")

	if len(stub.prompts) != 1 {
		t.Fatalf("expected 1 completion call, got %d", len(stub.prompts))
	}
	if !strings.Contains(stub.prompts[0], "about fever?") {
		t.Errorf("prompt %q should target the first symptom found in the text", stub.prompts[0])
	}
}

func TestRespondTemplatedBranches(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Can I book an appointment?", AppointmentReferral},
		{"I need to see a doctor about paperwork", AppointmentReferral},
		{"Can you renew my prescription?", MedicationReferral},
		{"how many pills per day", MedicationReferral},
	}

	for _, tt := range tests {
		stub := &stubCompletionClient{reply: "unused"}
		service := NewChatbotService(stub, nil)

		got := service.Respond(context.Background(), tt.input)
		if got != tt.want {
			t.Errorf("Respond(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if len(stub.prompts) != 0 {
			t.Errorf("Respond(%q) issued %d completion calls, want 0", tt.input, len(stub.prompts))
		}
	}
}

func TestRespondFallback(t *testing.T) {
	stub := &stubCompletionClient{reply: "Try a consistent sleep schedule."}
	service := NewChatbotService(stub, nil)

	got := service.Respond(context.Background(), "  How can I sleep better?  ")

	if got != "Try a consistent sleep schedule." {
		t.Errorf("unexpected response: %q", got)
	}
	if len(stub.prompts) != 1 || stub.prompts[0] != "How can I sleep better?" {
		t.Errorf("fallback must forward the trimmed text, got %v", stub.prompts)
	}
}

func TestRespondRendersCompletionErrors(t *testing.T) {
	stub := &stubCompletionClient{err: errors.New("connection refused")}
	service := NewChatbotService(stub, nil)

	got := service.Respond(context.Background(), "How can I sleep better?")

	if !strings.HasPrefix(got, "[Error]: ") {
		t.Errorf("error reply = %q, want [Error]: prefix", got)
	}
	if !strings.Contains(got, "connection refused") {
		t.Errorf("error reply %q should carry the failure details", got)
	}
}

func TestRespondSymptomDisclaimerSurvivesError(t *testing.T) {
	stub := &stubCompletionClient{err: errors.New("timeout")}
	service := NewChatbotService(stub, nil)

	got := service.Respond(context.Background(), "I have a fever")

	if !strings.HasPrefix(got, "[Error]: ") {
		t.Errorf("reply = %q, want rendered error", got)
	}
	if !strings.HasSuffix(got, SymptomDisclaimer) {
		t.Errorf("reply %q must still end with the disclaimer", got)
	}
}

func TestRespondIdempotent(t *testing.T) {
	stub := &stubCompletionClient{reply: "deterministic answer"}
	service := NewChatbotService(stub, nil)

	first := service.Respond(context.Background(), "I have a headache")
	second := service.Respond(context.Background(), "I have a headache")

	if first != second {
		t.Errorf("identical inputs produced different outputs:\n%q\n%q", first, second)
	}
}

func TestProcessMessageMetadata(t *testing.T) {
	stub := &stubCompletionClient{reply: "generated"}
	service := NewChatbotService(stub, nil)

	resp := service.ProcessMessage(context.Background(), models.ChatRequest{
		Message: "I have a terrible cough",
	})

	if resp.Intent != models.IntentSymptom {
		t.Errorf("intent = %q, want %q", resp.Intent, models.IntentSymptom)
	}
	if resp.Symptom != "cough" {
		t.Errorf("symptom = %q, want cough", resp.Symptom)
	}
	if !resp.IsAIResponse {
		t.Error("symptom responses are AI-generated")
	}

	resp = service.ProcessMessage(context.Background(), models.ChatRequest{
		Message: "Can I book an appointment?",
	})
	if resp.IsAIResponse {
		t.Error("templated responses are not AI-generated")
	}
}
