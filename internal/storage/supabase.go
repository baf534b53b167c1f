package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client define la interfaz del bucket de objetos para audio.
type Client interface {
	Upload(ctx context.Context, path, contentType string, data []byte) error
	PublicURL(path string) string
}

// SupabaseClient implementa Client contra la API REST de Supabase Storage.
type SupabaseClient struct {
	baseURL string
	apiKey  string
	bucket  string
	client  *http.Client
}

// NewSupabaseClient construye un cliente para un bucket concreto.
func NewSupabaseClient(baseURL, apiKey, bucket string) *SupabaseClient {
	return &SupabaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		bucket:  bucket,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Upload sube el objeto en la ruta dada dentro del bucket.
func (c *SupabaseClient) Upload(ctx context.Context, path, contentType string, data []byte) error {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("storage http error: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}

// PublicURL deriva la URL pública estable del objeto.
func (c *SupabaseClient) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, path)
}
