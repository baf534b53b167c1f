package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"meditranslate/internal/transcribe"
)

// TranscriptionService convierte audio a texto pasando por un archivo temporal.
type TranscriptionService struct {
	transcriber transcribe.Client
}

func NewTranscriptionService(transcriber transcribe.Client) *TranscriptionService {
	return &TranscriptionService{transcriber: transcriber}
}

// Transcribe escribe los bytes a un temporal, transcribe y limpia el archivo
// en cualquier salida.
func (s *TranscriptionService) Transcribe(ctx context.Context, audioBytes []byte, filename, sourceLang string) (string, error) {
	if len(audioBytes) == 0 {
		return "", fmt.Errorf("%w: empty audio", ErrInvalidInput)
	}

	tmp, err := os.CreateTemp("", "audio-*."+FileExtension(filename))
	if err != nil {
		return "", fmt.Errorf("%w: create temp file: %v", ErrTranscription, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(audioBytes); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: write temp file: %v", ErrTranscription, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: close temp file: %v", ErrTranscription, err)
	}

	transcript, err := s.transcriber.TranscribeFile(ctx, tmp.Name(), WhisperLanguage(sourceLang))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscription, err)
	}

	return strings.TrimSpace(transcript), nil
}

// WhisperLanguage mapea la etiqueta libre de idioma al código que espera Whisper.
func WhisperLanguage(sourceLang string) string {
	if strings.Contains(strings.ToLower(sourceLang), "english") {
		return "en"
	}
	return "es"
}

// FileExtension extrae la extensión del nombre subido, webm por defecto.
func FileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 && idx < len(filename)-1 {
		return filename[idx+1:]
	}
	return "webm"
}
