package utils

import (
	"testing"

	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/models"
)

func TestClassifyIntentOrder(t *testing.T) {
	classifier := NewIntentClassifier()

	tests := []struct {
		name    string
		message string
		intent  models.MessageIntent
		symptom string
	}{
		{"empty", "", models.IntentEmpty, ""},
		{"whitespace only", "   \t\n", models.IntentEmpty, ""},

		{"what is", "What is hypertension?", models.IntentDefinition, ""},
		{"explain", "Explain fever.", models.IntentDefinition, ""},
		{"define", "define migraine", models.IntentDefinition, ""},
		{"leading whitespace", "   What is a cold?", models.IntentDefinition, ""},
		{"definition wins over symptom when it opens the text",
			"What is this cough symptom I have?", models.IntentDefinition, ""},
		{"definition phrase mid-sentence does not count",
			"Please explain nothing", models.IntentFallback, ""},
		{"prefix without word boundary is not a definition",
			"whatsit doing", models.IntentFallback, ""},

		{"symptom i have", "I have a terrible cough", models.IntentSymptom, "cough"},
		{"symptom i feel", "I feel a sharp pain", models.IntentSymptom, "pain"},
		{"symptom straight apostrophe", "I'm down with a fever", models.IntentSymptom, "fever"},
		{"symptom curly apostrophe", "I’m fighting a headache", models.IntentSymptom, "headache"},
		{"first symptom in text order wins", "I have fever and cough", models.IntentSymptom, "fever"},
		{"list order does not override text order", "I have nausea and a symptom", models.IntentSymptom, "nausea"},
		{"symptom term without first person", "A cough can linger", models.IntentFallback, ""},
		{"first person without symptom term", "I have a question", models.IntentFallback, ""},

		{"appointment", "Can I book an appointment?", models.IntentAppointment, ""},
		{"doctor", "my doctor moved away", models.IntentAppointment, ""},
		{"physician", "Which physician is on duty", models.IntentAppointment, ""},
		{"clinic", "is the clinic open today", models.IntentAppointment, ""},
		{"substring is not a whole word", "I was filled with disappointment", models.IntentFallback, ""},
		{"symptom wins over appointment", "I have a cough, should I see a doctor?", models.IntentSymptom, "cough"},

		{"medication", "my medication ran out", models.IntentMedication, ""},
		{"prescription", "renew my prescription please", models.IntentMedication, ""},
		{"drugs", "are these drugs safe together", models.IntentMedication, ""},
		{"pills", "how many pills per day", models.IntentMedication, ""},
		{"appointment wins over medication", "ask the clinic about my pills", models.IntentAppointment, ""},

		{"fallback", "How can I sleep better?", models.IntentFallback, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.message)
			if got.Intent != tt.intent {
				t.Errorf("Classify(%q) intent = %q, want %q", tt.message, got.Intent, tt.intent)
			}
			if got.Symptom != tt.symptom {
				t.Errorf("Classify(%q) symptom = %q, want %q", tt.message, got.Symptom, tt.symptom)
			}
		})
	}
}

func TestIsDefinitionRequest(t *testing.T) {
	classifier := NewIntentClassifier()

	if !classifier.IsDefinitionRequest("what is a cold") {
		t.Error("expected anchored lead phrase to match")
	}
	if classifier.IsDefinitionRequest("tell me what is a cold") {
		t.Error("lead phrase must be the first token")
	}
	if classifier.IsDefinitionRequest("definitely not") {
		t.Error("'define' must end at a word boundary")
	}
}

func TestExtractSymptom(t *testing.T) {
	classifier := NewIntentClassifier()

	tests := []struct {
		text string
		want string
	}{
		{"i have fever and cough", "fever"},
		{"i have a cough and fever", "cough"},
		{"my headache comes with nausea", "headache"},
		{"no complaints at all", ""},
	}

	for _, tt := range tests {
		if got := classifier.ExtractSymptom(tt.text); got != tt.want {
			t.Errorf("ExtractSymptom(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestWholeWordMatching(t *testing.T) {
	classifier := NewIntentClassifier()

	if classifier.IsAppointmentQuery("what a disappointment") {
		t.Error("'appointment' inside 'disappointment' must not match")
	}
	if classifier.IsMedicationQuery("the spillside trail") {
		t.Error("'pills' inside another word must not match")
	}
	if !classifier.IsMedicationQuery("out of pills.") {
		t.Error("punctuation after a whole word must still match")
	}
}
