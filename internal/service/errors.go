package service

import "errors"

// Taxonomía de errores que los handlers mapean a códigos HTTP.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrTranslation   = errors.New("translation failed")
	ErrTranscription = errors.New("transcription failed")
	ErrSummary       = errors.New("summary generation failed")
	ErrStorage       = errors.New("storage operation failed")
)
