package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"meditranslate/internal/domain"
	"meditranslate/internal/repository"
)

const (
	defaultDoctorLang  = "English"
	defaultPatientLang = "Spanish"
)

// ConversationService encapsula el CRUD de conversaciones.
type ConversationService struct {
	repo repository.ConversationRepository
}

func NewConversationService(repo repository.ConversationRepository) *ConversationService {
	return &ConversationService{repo: repo}
}

// Create inserta una conversación con los idiomas por defecto si no se indican.
func (s *ConversationService) Create(ctx context.Context, patientName, doctorLang, patientLang string) (domain.Conversation, error) {
	patientName = strings.TrimSpace(patientName)
	if patientName == "" {
		return domain.Conversation{}, fmt.Errorf("%w: patient_name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(doctorLang) == "" {
		doctorLang = defaultDoctorLang
	}
	if strings.TrimSpace(patientLang) == "" {
		patientLang = defaultPatientLang
	}

	conv := domain.Conversation{
		ID:          uuid.NewString(),
		PatientName: patientName,
		DoctorLang:  strings.TrimSpace(doctorLang),
		PatientLang: strings.TrimSpace(patientLang),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, conv); err != nil {
		return domain.Conversation{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return conv, nil
}

// List devuelve todas las conversaciones, más recientes primero.
func (s *ConversationService) List(ctx context.Context) ([]domain.Conversation, error) {
	conversations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if conversations == nil {
		conversations = []domain.Conversation{}
	}
	return conversations, nil
}

func (s *ConversationService) Get(ctx context.Context, id string) (domain.Conversation, error) {
	conv, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Conversation{}, fmt.Errorf("%w: conversation %s", ErrNotFound, id)
	}
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return conv, nil
}

// Update aplica solo los campos no vacíos; sin campos es inválido.
func (s *ConversationService) Update(ctx context.Context, id, patientName, doctorLang, patientLang string) (domain.Conversation, error) {
	patientName = strings.TrimSpace(patientName)
	doctorLang = strings.TrimSpace(doctorLang)
	patientLang = strings.TrimSpace(patientLang)

	if patientName == "" && doctorLang == "" && patientLang == "" {
		return domain.Conversation{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	conv, err := s.repo.Update(ctx, id, patientName, doctorLang, patientLang)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Conversation{}, fmt.Errorf("%w: conversation %s", ErrNotFound, id)
	}
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return conv, nil
}

// Delete elimina la conversación; el storage borra sus mensajes en cascada.
func (s *ConversationService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: conversation %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// Probe verifica conectividad con la tabla de conversaciones.
func (s *ConversationService) Probe(ctx context.Context) error {
	if err := s.repo.Probe(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
