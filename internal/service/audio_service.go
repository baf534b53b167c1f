package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"meditranslate/internal/domain"
	"meditranslate/internal/storage"
)

// AudioService maneja subida de audio y el pipeline sin persistencia.
type AudioService struct {
	store             storage.Client
	transcriptionServ *TranscriptionService
	translationServ   *TranslationService
}

func NewAudioService(store storage.Client, transcriptionServ *TranscriptionService, translationServ *TranslationService) *AudioService {
	return &AudioService{
		store:             store,
		transcriptionServ: transcriptionServ,
		translationServ:   translationServ,
	}
}

// BuildAudioPath genera la ruta del objeto: {conversación}/{rol}/{uuid}.{ext}.
func BuildAudioPath(conversationID, role, filename string) string {
	return fmt.Sprintf("%s/%s/%s.%s", conversationID, role, uuid.NewString(), FileExtension(filename))
}

// Upload sube el audio al bucket y devuelve URL pública y ruta. No escribe fila.
func (s *AudioService) Upload(ctx context.Context, conversationID, role string, audioBytes []byte, filename, contentType string) (domain.AudioUpload, error) {
	if conversationID == "" || role == "" {
		return domain.AudioUpload{}, fmt.Errorf("%w: conversation_id and sender_role are required", ErrInvalidInput)
	}
	if len(audioBytes) == 0 {
		return domain.AudioUpload{}, fmt.Errorf("%w: empty audio", ErrInvalidInput)
	}

	path := BuildAudioPath(conversationID, role, filename)
	if err := s.store.Upload(ctx, path, contentType, audioBytes); err != nil {
		return domain.AudioUpload{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return domain.AudioUpload{
		AudioURL: s.store.PublicURL(path),
		Path:     path,
	}, nil
}

// Process ejecuta transcripción, traducción y subida en secuencia, sin fila en DB.
// El primer paso que falle aborta el resto.
func (s *AudioService) Process(ctx context.Context, conversationID, role string, audioBytes []byte, filename, contentType, sourceLang, targetLang string) (domain.AudioProcess, error) {
	transcript, err := s.transcriptionServ.Transcribe(ctx, audioBytes, filename, sourceLang)
	if err != nil {
		return domain.AudioProcess{}, err
	}

	translation, err := s.translationServ.Translate(ctx, transcript, sourceLang, targetLang)
	if err != nil {
		return domain.AudioProcess{}, err
	}

	upload, err := s.Upload(ctx, conversationID, role, audioBytes, filename, contentType)
	if err != nil {
		return domain.AudioProcess{}, err
	}

	return domain.AudioProcess{
		Transcript:  transcript,
		Translation: translation.Translated,
		AudioURL:    upload.AudioURL,
		SourceLang:  sourceLang,
		TargetLang:  targetLang,
	}, nil
}
