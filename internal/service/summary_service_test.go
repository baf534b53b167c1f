package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"meditranslate/internal/domain"
	"meditranslate/internal/llm"
)

func TestSummarize_BuildsTranscriptInOrder(t *testing.T) {
	base := time.Now().UTC()
	repo := &mockMessageRepo{msgs: []domain.Message{
		{ConversationID: "c1", Role: "patient", OriginalText: "Me duele la cabeza", CreatedAt: base.Add(time.Second)},
		{ConversationID: "c1", Role: "doctor", OriginalText: "How long has this lasted?", CreatedAt: base.Add(2 * time.Second)},
		{ConversationID: "c1", Role: "doctor", OriginalText: "What brings you in today?", CreatedAt: base},
		{ConversationID: "c2", Role: "doctor", OriginalText: "other conversation", CreatedAt: base},
	}}
	mock := &llm.MockClient{Response: " Chief Complaint: headache "}
	svc := NewSummaryService(repo, mock)

	out, err := svc.Summarize(context.Background(), "c1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != "Chief Complaint: headache" {
		t.Fatalf("expected trimmed summary, got %q", out)
	}

	wantOrder := "DOCTOR: What brings you in today?\nPATIENT: Me duele la cabeza\nDOCTOR: How long has this lasted?"
	if !strings.Contains(mock.LastPrompt, wantOrder) {
		t.Fatalf("expected ordered transcript in prompt, got %q", mock.LastPrompt)
	}
	if strings.Contains(mock.LastPrompt, "other conversation") {
		t.Fatalf("expected only c1 messages in prompt")
	}
	for _, section := range []string{"Chief Complaint", "Symptoms", "Diagnosis", "Medications", "Follow-up Actions"} {
		if !strings.Contains(mock.LastPrompt, section) {
			t.Fatalf("expected section %q in prompt", section)
		}
	}
	if mock.LastTemperature != 0.5 {
		t.Fatalf("expected temperature 0.5, got %v", mock.LastTemperature)
	}
}

func TestSummarize_NoMessages(t *testing.T) {
	svc := NewSummaryService(&mockMessageRepo{}, &llm.MockClient{Response: "summary"})

	if _, err := svc.Summarize(context.Background(), "empty"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSummarize_ProviderError(t *testing.T) {
	repo := &mockMessageRepo{msgs: []domain.Message{
		{ConversationID: "c1", Role: "doctor", OriginalText: "Hello", CreatedAt: time.Now().UTC()},
	}}
	svc := NewSummaryService(repo, &llm.MockClient{Err: errors.New("timeout")})

	if _, err := svc.Summarize(context.Background(), "c1"); !errors.Is(err, ErrSummary) {
		t.Fatalf("expected ErrSummary, got %v", err)
	}
}

func TestSummarize_ListError(t *testing.T) {
	repo := &mockMessageRepo{listErr: errors.New("db down")}
	svc := NewSummaryService(repo, &llm.MockClient{Response: "summary"})

	if _, err := svc.Summarize(context.Background(), "c1"); !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}
