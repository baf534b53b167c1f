package transcribe

import "context"

// MockClient permite tests sin llamar al servicio de transcripción real.
type MockClient struct {
	Transcript string
	Err        error

	LastPath     string
	LastLanguage string
}

func (m *MockClient) TranscribeFile(ctx context.Context, audioPath, language string) (string, error) {
	m.LastPath = audioPath
	m.LastLanguage = language
	return m.Transcript, m.Err
}
