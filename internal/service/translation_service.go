package service

import (
	"context"
	"fmt"
	"strings"

	"meditranslate/internal/domain"
	"meditranslate/internal/llm"
)

// Temperatura baja para sesgar hacia traducción literal y determinista.
const translationTemperature = 0.3

// TranslationService traduce texto entre idiomas usando el LLM.
type TranslationService struct {
	llmClient llm.LLMClient
	cache     TranslationCache
}

// NewTranslationService crea el servicio; cache puede ser nil.
func NewTranslationService(llmClient llm.LLMClient, cache TranslationCache) *TranslationService {
	return &TranslationService{llmClient: llmClient, cache: cache}
}

// Translate devuelve la traducción recortada del texto dado.
func (s *TranslationService) Translate(ctx context.Context, text, sourceLang, targetLang string) (domain.Translation, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.TrimSpace(sourceLang) == "" || strings.TrimSpace(targetLang) == "" {
		return domain.Translation{}, fmt.Errorf("%w: text, source_lang and target_lang are required", ErrInvalidInput)
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, sourceLang, targetLang, text); ok {
			return domain.Translation{
				Original:   text,
				Translated: cached,
				SourceLang: sourceLang,
				TargetLang: targetLang,
			}, nil
		}
	}

	prompt := fmt.Sprintf("Translate from %s to %s. Return ONLY the translation:\n\n%s", sourceLang, targetLang, text)

	out, err := s.llmClient.Complete(ctx, prompt, translationTemperature)
	if err != nil {
		return domain.Translation{}, fmt.Errorf("%w: %v", ErrTranslation, err)
	}

	translated := strings.TrimSpace(out)
	if s.cache != nil {
		s.cache.Set(ctx, sourceLang, targetLang, text, translated)
	}

	return domain.Translation{
		Original:   text,
		Translated: translated,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}, nil
}
