package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meditranslate/internal/service"
)

// AudioHandler mantiene dependencias para endpoints de audio sin persistencia.
type AudioHandler struct {
	logger            *zap.Logger
	audioServ         *service.AudioService
	transcriptionServ *service.TranscriptionService
}

// NewAudioHandler crea una instancia de AudioHandler.
func NewAudioHandler(logger *zap.Logger, audioServ *service.AudioService, transcriptionServ *service.TranscriptionService) *AudioHandler {
	return &AudioHandler{
		logger:            logger,
		audioServ:         audioServ,
		transcriptionServ: transcriptionServ,
	}
}

// Transcribe maneja POST /api/audio/transcribe.
func (h *AudioHandler) Transcribe(c *gin.Context) {
	audioBytes, filename, _, err := readAudioUpload(c)
	if err != nil {
		h.logger.Warn("invalid audio upload", zap.Error(err))
		respondError(c, err)
		return
	}

	sourceLang := c.DefaultPostForm("source_lang", "English")

	transcript, err := h.transcriptionServ.Transcribe(c.Request.Context(), audioBytes, filename, sourceLang)
	if err != nil {
		h.logger.Error("transcribe failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transcript": transcript,
		"language":   sourceLang,
	})
}

// Process maneja POST /api/audio/process: transcribe, traduce y sube sin fila en DB.
func (h *AudioHandler) Process(c *gin.Context) {
	audioBytes, filename, contentType, err := readAudioUpload(c)
	if err != nil {
		h.logger.Warn("invalid audio upload", zap.Error(err))
		respondError(c, err)
		return
	}

	out, err := h.audioServ.Process(
		c.Request.Context(),
		c.PostForm("conversation_id"),
		c.PostForm("sender_role"),
		audioBytes,
		filename,
		contentType,
		c.PostForm("source_lang"),
		c.PostForm("target_lang"),
	)
	if err != nil {
		h.logger.Error("audio process failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// Upload maneja POST /api/audio/upload.
func (h *AudioHandler) Upload(c *gin.Context) {
	audioBytes, filename, contentType, err := readAudioUpload(c)
	if err != nil {
		h.logger.Warn("invalid audio upload", zap.Error(err))
		respondError(c, err)
		return
	}

	upload, err := h.audioServ.Upload(
		c.Request.Context(),
		c.PostForm("conversation_id"),
		c.PostForm("sender_role"),
		audioBytes,
		filename,
		contentType,
	)
	if err != nil {
		h.logger.Error("audio upload failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, upload)
}
