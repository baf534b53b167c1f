package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error

	LastPrompt      string
	LastTemperature float64
}

func (m *MockClient) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	m.LastPrompt = prompt
	m.LastTemperature = temperature
	return m.Response, m.Err
}
