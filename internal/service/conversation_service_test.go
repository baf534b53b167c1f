package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"meditranslate/internal/domain"
)

type mockConversationRepo struct {
	byID map[string]domain.Conversation

	createErr error
	deleted   []string
	probeErr  error
}

func newMockConversationRepo() *mockConversationRepo {
	return &mockConversationRepo{byID: make(map[string]domain.Conversation)}
}

func (m *mockConversationRepo) Create(_ context.Context, conversation domain.Conversation) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byID[conversation.ID] = conversation
	return nil
}

func (m *mockConversationRepo) List(_ context.Context) ([]domain.Conversation, error) {
	var out []domain.Conversation
	for _, c := range m.byID {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockConversationRepo) GetByID(_ context.Context, id string) (domain.Conversation, error) {
	conv, ok := m.byID[id]
	if !ok {
		return domain.Conversation{}, pgx.ErrNoRows
	}
	return conv, nil
}

func (m *mockConversationRepo) Update(_ context.Context, id, patientName, doctorLang, patientLang string) (domain.Conversation, error) {
	conv, ok := m.byID[id]
	if !ok {
		return domain.Conversation{}, pgx.ErrNoRows
	}
	if patientName != "" {
		conv.PatientName = patientName
	}
	if doctorLang != "" {
		conv.DoctorLang = doctorLang
	}
	if patientLang != "" {
		conv.PatientLang = patientLang
	}
	m.byID[id] = conv
	return conv, nil
}

func (m *mockConversationRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockConversationRepo) Probe(_ context.Context) error {
	return m.probeErr
}

func TestConversationCreate_Defaults(t *testing.T) {
	repo := newMockConversationRepo()
	svc := NewConversationService(repo)

	conv, err := svc.Create(context.Background(), " Maria Lopez ", "", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if conv.ID == "" {
		t.Fatalf("expected generated id")
	}
	if conv.PatientName != "Maria Lopez" {
		t.Fatalf("expected trimmed name, got %q", conv.PatientName)
	}
	if conv.DoctorLang != "English" || conv.PatientLang != "Spanish" {
		t.Fatalf("expected default langs, got %q/%q", conv.DoctorLang, conv.PatientLang)
	}
	if conv.CreatedAt.IsZero() {
		t.Fatalf("expected created_at set")
	}
}

func TestConversationCreate_RequiresName(t *testing.T) {
	svc := NewConversationService(newMockConversationRepo())

	if _, err := svc.Create(context.Background(), "  ", "English", "Spanish"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestConversationCreate_StorageError(t *testing.T) {
	repo := newMockConversationRepo()
	repo.createErr = errors.New("insert refused")
	svc := NewConversationService(repo)

	if _, err := svc.Create(context.Background(), "Maria", "", ""); !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestConversationGet_RoundTrip(t *testing.T) {
	repo := newMockConversationRepo()
	svc := NewConversationService(repo)

	created, err := svc.Create(context.Background(), "Maria", "English", "Portuguese")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.PatientName != "Maria" || got.DoctorLang != "English" || got.PatientLang != "Portuguese" {
		t.Fatalf("unexpected conversation: %+v", got)
	}
}

func TestConversationGet_NotFound(t *testing.T) {
	svc := NewConversationService(newMockConversationRepo())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConversationUpdate_NoFields(t *testing.T) {
	svc := NewConversationService(newMockConversationRepo())

	if _, err := svc.Update(context.Background(), "c1", "", " ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestConversationUpdate_SingleField(t *testing.T) {
	repo := newMockConversationRepo()
	repo.byID["c1"] = domain.Conversation{
		ID: "c1", PatientName: "Maria", DoctorLang: "English", PatientLang: "Spanish",
		CreatedAt: time.Now().UTC(),
	}
	svc := NewConversationService(repo)

	updated, err := svc.Update(context.Background(), "c1", "", "French", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.DoctorLang != "French" {
		t.Fatalf("expected doctor_lang updated, got %q", updated.DoctorLang)
	}
	if updated.PatientName != "Maria" || updated.PatientLang != "Spanish" {
		t.Fatalf("expected other fields untouched: %+v", updated)
	}
}

func TestConversationUpdate_NotFound(t *testing.T) {
	svc := NewConversationService(newMockConversationRepo())

	if _, err := svc.Update(context.Background(), "missing", "Ana", "", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConversationDelete_NotFound(t *testing.T) {
	svc := NewConversationService(newMockConversationRepo())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConversationList_EmptyNotNil(t *testing.T) {
	svc := NewConversationService(newMockConversationRepo())

	out, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty list, got %+v", out)
	}
}
