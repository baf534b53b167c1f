package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"meditranslate/internal/domain"
	"meditranslate/internal/repository"
	"meditranslate/internal/storage"
)

// MessageService maneja mensajes de texto y el pipeline de mensajes con audio.
type MessageService struct {
	messages          repository.MessageRepository
	store             storage.Client
	translationServ   *TranslationService
	transcriptionServ *TranscriptionService
}

func NewMessageService(
	messages repository.MessageRepository,
	store storage.Client,
	translationServ *TranslationService,
	transcriptionServ *TranscriptionService,
) *MessageService {
	return &MessageService{
		messages:          messages,
		store:             store,
		translationServ:   translationServ,
		transcriptionServ: transcriptionServ,
	}
}

// List devuelve los mensajes de la conversación, ascendentes por creación.
func (s *MessageService) List(ctx context.Context, conversationID string) ([]domain.Message, error) {
	msgs, err := s.messages.ListByConversationID(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}

// CreateText traduce el texto e inserta el mensaje sin audio.
func (s *MessageService) CreateText(ctx context.Context, conversationID, role, text, sourceLang, targetLang string) (domain.Message, error) {
	role = strings.TrimSpace(role)
	text = strings.TrimSpace(text)
	if conversationID == "" || role == "" || text == "" {
		return domain.Message{}, fmt.Errorf("%w: role and text are required", ErrInvalidInput)
	}

	translation, err := s.translationServ.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return domain.Message{}, err
	}

	msg := domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Role:           role,
		OriginalText:   text,
		OriginalLang:   sourceLang,
		TranslatedText: translation.Translated,
		TranslatedLang: targetLang,
		AudioURL:       nil,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return msg, nil
}

// CreateAudio ejecuta transcripción, traducción, subida e inserción en secuencia.
// Cualquier paso que falle aborta los restantes. Un objeto ya subido no se
// borra si el insert posterior falla: semántica best-effort asumida.
func (s *MessageService) CreateAudio(ctx context.Context, conversationID, role string, audioBytes []byte, filename, contentType, sourceLang, targetLang string) (domain.Message, error) {
	role = strings.TrimSpace(role)
	if conversationID == "" || role == "" {
		return domain.Message{}, fmt.Errorf("%w: role is required", ErrInvalidInput)
	}

	transcript, err := s.transcriptionServ.Transcribe(ctx, audioBytes, filename, sourceLang)
	if err != nil {
		return domain.Message{}, err
	}

	translation, err := s.translationServ.Translate(ctx, transcript, sourceLang, targetLang)
	if err != nil {
		return domain.Message{}, err
	}

	path := BuildAudioPath(conversationID, role, filename)
	if err := s.store.Upload(ctx, path, contentType, audioBytes); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	audioURL := s.store.PublicURL(path)

	msg := domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Role:           role,
		OriginalText:   transcript,
		OriginalLang:   sourceLang,
		TranslatedText: translation.Translated,
		TranslatedLang: targetLang,
		AudioURL:       &audioURL,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return msg, nil
}
