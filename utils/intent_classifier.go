package utils

import (
	"regexp"
	"strings"

	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/models"
)

var (
	definitionPattern  = regexp.MustCompile(`^\s*(what is|explain|define)\b`)
	firstPersonPattern = regexp.MustCompile(`\b(i have|i am|i'm|i’m|i feel)\b`)
	symptomPattern     = regexp.MustCompile(`\b(symptom|pain|ache|fever|cough|cold|headache|nausea)\b`)
	appointmentPattern = regexp.MustCompile(`\b(appointment|doctor|physician|clinic)\b`)
	medicationPattern  = regexp.MustCompile(`\b(medication|prescription|drugs|pills)\b`)
)

// Classification is the result of one classifier pass. Symptom is set only
// for symptom-report intents.
type Classification struct {
	Intent  models.MessageIntent
	Symptom string
}

type IntentClassifier struct{}

func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{}
}

// Classify maps raw user text to an intent bucket. Rules are evaluated in a
// fixed order and the first match wins:
//
//  1. empty input
//  2. definitional request anchored at the start of the text
//  3. first-person symptom report
//  4. appointment or provider query
//  5. medication query
//  6. fallback
//
// A definitional lead phrase only takes precedence when it is literally the
// first token, so "What is this cough symptom I have?" classifies as a
// definition while "Lately I have a cough" classifies as a symptom report.
func (ic *IntentClassifier) Classify(message string) Classification {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return Classification{Intent: models.IntentEmpty}
	}

	lower := strings.ToLower(trimmed)

	if ic.IsDefinitionRequest(lower) {
		return Classification{Intent: models.IntentDefinition}
	}

	if ic.IsSymptomReport(lower) {
		return Classification{
			Intent:  models.IntentSymptom,
			Symptom: ic.ExtractSymptom(lower),
		}
	}

	if ic.IsAppointmentQuery(lower) {
		return Classification{Intent: models.IntentAppointment}
	}

	if ic.IsMedicationQuery(lower) {
		return Classification{Intent: models.IntentMedication}
	}

	return Classification{Intent: models.IntentFallback}
}

// IsDefinitionRequest reports whether the text opens with a definitional
// lead phrase ("what is", "explain", "define") followed by a word boundary.
func (ic *IntentClassifier) IsDefinitionRequest(lower string) bool {
	return definitionPattern.MatchString(lower)
}

// IsSymptomReport reports whether the text contains both a first-person
// marker and a symptom term as whole words.
func (ic *IntentClassifier) IsSymptomReport(lower string) bool {
	return firstPersonPattern.MatchString(lower) && symptomPattern.MatchString(lower)
}

// ExtractSymptom returns the first symptom term found scanning the text left
// to right. With "i have fever and cough" that is "fever", regardless of
// where the term sits in the alternation. Returns "" when no term matches.
func (ic *IntentClassifier) ExtractSymptom(lower string) string {
	return symptomPattern.FindString(lower)
}

// IsAppointmentQuery reports whether the text mentions an appointment,
// doctor, physician, or clinic as a whole word.
func (ic *IntentClassifier) IsAppointmentQuery(lower string) bool {
	return appointmentPattern.MatchString(lower)
}

// IsMedicationQuery reports whether the text mentions medications,
// prescriptions, drugs, or pills as a whole word.
func (ic *IntentClassifier) IsMedicationQuery(lower string) bool {
	return medicationPattern.MatchString(lower)
}
