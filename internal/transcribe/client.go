package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Client define la interfaz para transcribir audio a texto.
type Client interface {
	TranscribeFile(ctx context.Context, audioPath, language string) (string, error)
}

// HTTPClient implementa Client contra el endpoint Whisper de Groq.
type HTTPClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewHTTPClient construye un cliente apuntando a la API de transcripciones.
func NewHTTPClient(baseURL, apiKey, model string) *HTTPClient {
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

type transcriptionResponse struct {
	Text  string `json:"text"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *HTTPClient) TranscribeFile(ctx context.Context, audioPath, language string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("model", c.model); err != nil {
		return "", fmt.Errorf("write model field: %w", err)
	}
	if language != "" {
		if err := mw.WriteField("language", language); err != nil {
			return "", fmt.Errorf("write language field: %w", err)
		}
	}
	if err := mw.WriteField("response_format", "json"); err != nil {
		return "", fmt.Errorf("write format field: %w", err)
	}

	fw, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return "", fmt.Errorf("copy audio: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("whisper http error: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var tr transcriptionResponse
	if err := json.Unmarshal(respBody, &tr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if tr.Error != nil {
		return "", fmt.Errorf("whisper api error: %s", tr.Error.Message)
	}

	return tr.Text, nil
}
