package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"meditranslate/internal/domain"
	"meditranslate/internal/repository"
)

const (
	searchLimit         = 50
	searchWindow        = 30
	searchFallbackChars = 100
)

// SearchService busca substring sobre texto original y traducido de todos los
// mensajes y calcula un contexto de visualización por coincidencia.
type SearchService struct {
	messages repository.MessageRepository
}

func NewSearchService(messages repository.MessageRepository) *SearchService {
	return &SearchService{messages: messages}
}

// Search devuelve hasta 50 coincidencias; consultas de menos de 2 caracteres
// devuelven lista vacía sin tocar el storage.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []domain.SearchResult{}, nil
	}

	results, err := s.messages.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	for i := range results {
		results[i].Context = matchContext(results[i].OriginalText, query)
	}
	if results == nil {
		results = []domain.SearchResult{}
	}
	return results, nil
}

// matchContext recorta una ventana de hasta searchWindow caracteres a cada
// lado de la primera coincidencia (case-insensitive) en el texto original,
// marcando con "..." los lados truncados. Si la coincidencia fue solo en el
// texto traducido, devuelve los primeros 100 caracteres del original.
func matchContext(text, query string) string {
	start, end := foldIndex(text, strings.ToLower(query))
	if start < 0 {
		if utf8.RuneCountInString(text) > searchFallbackChars {
			return text[:runesForward(text, 0, searchFallbackChars)] + "..."
		}
		return text
	}

	winStart := runesBack(text, start, searchWindow)
	winEnd := runesForward(text, end, searchWindow)

	out := text[winStart:winEnd]
	if winStart > 0 {
		out = "..." + out
	}
	if winEnd < len(text) {
		out += "..."
	}
	return out
}

// foldIndex devuelve los offsets en bytes (inicio, fin) de la primera
// ocurrencia case-insensitive de lowerQuery dentro de text, o (-1, -1).
// Los offsets se calculan sobre text: ToLower puede cambiar la longitud en
// bytes de algunas runas, así que un índice sobre la copia minúscula no sirve
// para recortar el original.
func foldIndex(text, lowerQuery string) (int, int) {
	want := []rune(lowerQuery)
	for i := 0; i < len(text); {
		j := i
		matched := 0
		for matched < len(want) && j < len(text) {
			r, size := utf8.DecodeRuneInString(text[j:])
			if unicode.ToLower(r) != want[matched] {
				break
			}
			j += size
			matched++
		}
		if matched == len(want) {
			return i, j
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return -1, -1
}

// runesBack retrocede hasta n runas desde el offset idx, sin partir runas.
func runesBack(text string, idx, n int) int {
	for n > 0 && idx > 0 {
		_, size := utf8.DecodeLastRuneInString(text[:idx])
		idx -= size
		n--
	}
	return idx
}

// runesForward avanza hasta n runas desde el offset idx, sin partir runas.
func runesForward(text string, idx, n int) int {
	for n > 0 && idx < len(text) {
		_, size := utf8.DecodeRuneInString(text[idx:])
		idx += size
		n--
	}
	return idx
}
