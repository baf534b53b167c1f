package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSupabaseUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/storage/v1/object/audio-files/c1/doctor/clip.webm" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", auth)
		}
		if ct := r.Header.Get("Content-Type"); ct != "audio/webm" {
			t.Fatalf("unexpected content-type %q", ct)
		}
		data, _ := io.ReadAll(r.Body)
		if string(data) != "fake-webm" {
			t.Fatalf("unexpected body %q", data)
		}
		w.Write([]byte(`{"Key":"audio-files/c1/doctor/clip.webm"}`))
	}))
	defer server.Close()

	client := NewSupabaseClient(server.URL, "test-key", "audio-files")

	err := client.Upload(context.Background(), "c1/doctor/clip.webm", "audio/webm", []byte("fake-webm"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSupabaseUpload_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"invalid key"}`))
	}))
	defer server.Close()

	client := NewSupabaseClient(server.URL, "bad-key", "audio-files")

	err := client.Upload(context.Background(), "c1/doctor/clip.webm", "audio/webm", []byte("fake"))
	if err == nil || !strings.Contains(err.Error(), "status=403") {
		t.Fatalf("expected http error, got %v", err)
	}
}

func TestSupabasePublicURL(t *testing.T) {
	client := NewSupabaseClient("https://proj.supabase.co/", "key", "audio-files")

	got := client.PublicURL("c1/doctor/clip.webm")
	want := "https://proj.supabase.co/storage/v1/object/public/audio-files/c1/doctor/clip.webm"
	if got != want {
		t.Fatalf("PublicURL = %q, want %q", got, want)
	}
}
