package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"meditranslate/internal/llm"
	"meditranslate/internal/transcribe"
)

func newTestAudioService(store *mockStore, llmMock *llm.MockClient, trMock *transcribe.MockClient) *AudioService {
	return NewAudioService(store, NewTranscriptionService(trMock), NewTranslationService(llmMock, nil))
}

func TestBuildAudioPath(t *testing.T) {
	path := BuildAudioPath("c1", "doctor", "clip.webm")
	if !strings.HasPrefix(path, "c1/doctor/") {
		t.Fatalf("expected {conversation}/{role}/ prefix, got %q", path)
	}
	if !strings.HasSuffix(path, ".webm") {
		t.Fatalf("expected extension preserved, got %q", path)
	}
	if path == BuildAudioPath("c1", "doctor", "clip.webm") {
		t.Fatalf("expected unique paths per call")
	}
}

func TestAudioUpload(t *testing.T) {
	store := newMockStore()
	svc := newTestAudioService(store, &llm.MockClient{}, &transcribe.MockClient{})

	out, err := svc.Upload(context.Background(), "c1", "patient", []byte("fake"), "clip.mp3", "audio/mpeg")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasPrefix(out.Path, "c1/patient/") || !strings.HasSuffix(out.Path, ".mp3") {
		t.Fatalf("unexpected path %q", out.Path)
	}
	if out.AudioURL != store.PublicURL(out.Path) {
		t.Fatalf("expected public url for path, got %q", out.AudioURL)
	}
	if _, ok := store.uploads[out.Path]; !ok {
		t.Fatalf("expected object stored under path")
	}
}

func TestAudioUpload_Validation(t *testing.T) {
	svc := newTestAudioService(newMockStore(), &llm.MockClient{}, &transcribe.MockClient{})

	if _, err := svc.Upload(context.Background(), "", "patient", []byte("fake"), "clip.webm", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without conversation, got %v", err)
	}
	if _, err := svc.Upload(context.Background(), "c1", "patient", nil, "clip.webm", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without audio, got %v", err)
	}
}

func TestAudioUpload_StorageError(t *testing.T) {
	store := newMockStore()
	store.uploadErr = errors.New("bucket unavailable")
	svc := newTestAudioService(store, &llm.MockClient{}, &transcribe.MockClient{})

	if _, err := svc.Upload(context.Background(), "c1", "patient", []byte("fake"), "clip.webm", ""); !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestAudioProcess_FullPipeline(t *testing.T) {
	store := newMockStore()
	svc := newTestAudioService(store,
		&llm.MockClient{Response: "Tengo dolor de cabeza"},
		&transcribe.MockClient{Transcript: "I have a headache"},
	)

	out, err := svc.Process(context.Background(), "c1", "patient", []byte("fake"), "clip.webm", "audio/webm", "English", "Spanish")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Transcript != "I have a headache" || out.Translation != "Tengo dolor de cabeza" {
		t.Fatalf("unexpected pipeline output: %+v", out)
	}
	if !strings.Contains(out.AudioURL, "/c1/patient/") {
		t.Fatalf("expected audio url with path, got %q", out.AudioURL)
	}
	if out.SourceLang != "English" || out.TargetLang != "Spanish" {
		t.Fatalf("expected langs echoed back: %+v", out)
	}
}

func TestAudioProcess_TranslationErrorSkipsUpload(t *testing.T) {
	store := newMockStore()
	svc := newTestAudioService(store,
		&llm.MockClient{Err: errors.New("timeout")},
		&transcribe.MockClient{Transcript: "I have a headache"},
	)

	_, err := svc.Process(context.Background(), "c1", "patient", []byte("fake"), "clip.webm", "audio/webm", "English", "Spanish")
	if !errors.Is(err, ErrTranslation) {
		t.Fatalf("expected ErrTranslation, got %v", err)
	}
	if len(store.uploads) != 0 {
		t.Fatalf("expected no upload after translation failure")
	}
}
