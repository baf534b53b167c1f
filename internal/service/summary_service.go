package service

import (
	"context"
	"fmt"
	"strings"

	"meditranslate/internal/llm"
	"meditranslate/internal/repository"
)

// Temperatura moderada: el resumen admite algo de redacción libre.
const summaryTemperature = 0.5

const summaryInstructions = `You are a medical scribe. Based on the following doctor-patient conversation transcript, produce a structured medical summary with exactly these sections:

Chief Complaint:
Symptoms:
Diagnosis:
Medications:
Follow-up Actions:

If a section has no information in the transcript, write "Not discussed".

Transcript:
`

// SummaryService genera un resumen médico estructurado de una conversación.
type SummaryService struct {
	messages  repository.MessageRepository
	llmClient llm.LLMClient
}

func NewSummaryService(messages repository.MessageRepository, llmClient llm.LLMClient) *SummaryService {
	return &SummaryService{messages: messages, llmClient: llmClient}
}

// Summarize concatena los mensajes en orden y pide el resumen al LLM.
// El texto devuelto es opaco: ningún parseo de las secciones ocurre aquí.
func (s *SummaryService) Summarize(ctx context.Context, conversationID string) (string, error) {
	msgs, err := s.messages.ListByConversationID(ctx, conversationID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if len(msgs) == 0 {
		return "", fmt.Errorf("%w: no messages in conversation %s", ErrNotFound, conversationID)
	}

	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(m.Role), m.OriginalText))
	}

	out, err := s.llmClient.Complete(ctx, summaryInstructions+strings.Join(lines, "\n"), summaryTemperature)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummary, err)
	}

	return strings.TrimSpace(out), nil
}
