package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meditranslate/internal/service"
)

// MessageHandler mantiene dependencias para endpoints de mensajes y resumen.
type MessageHandler struct {
	logger      *zap.Logger
	messageServ *service.MessageService
	summaryServ *service.SummaryService
}

// NewMessageHandler crea una instancia de MessageHandler.
func NewMessageHandler(logger *zap.Logger, messageServ *service.MessageService, summaryServ *service.SummaryService) *MessageHandler {
	return &MessageHandler{
		logger:      logger,
		messageServ: messageServ,
		summaryServ: summaryServ,
	}
}

// List maneja GET /api/conversations/:id/messages.
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messageServ.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("list messages failed", zap.Error(err), zap.String("conversation_id", c.Param("id")))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// CreateText maneja POST /api/conversations/:id/messages.
func (h *MessageHandler) CreateText(c *gin.Context) {
	msg, err := h.messageServ.CreateText(
		c.Request.Context(),
		c.Param("id"),
		c.PostForm("role"),
		c.PostForm("text"),
		c.PostForm("source_lang"),
		c.PostForm("target_lang"),
	)
	if err != nil {
		h.logger.Error("create text message failed", zap.Error(err), zap.String("conversation_id", c.Param("id")))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// CreateAudio maneja POST /api/conversations/:id/audio.
func (h *MessageHandler) CreateAudio(c *gin.Context) {
	audioBytes, filename, contentType, err := readAudioUpload(c)
	if err != nil {
		h.logger.Warn("invalid audio upload", zap.Error(err))
		respondError(c, err)
		return
	}

	msg, err := h.messageServ.CreateAudio(
		c.Request.Context(),
		c.Param("id"),
		c.PostForm("role"),
		audioBytes,
		filename,
		contentType,
		c.PostForm("source_lang"),
		c.PostForm("target_lang"),
	)
	if err != nil {
		h.logger.Error("create audio message failed", zap.Error(err), zap.String("conversation_id", c.Param("id")))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// Summarize maneja POST /api/conversations/:id/summary.
func (h *MessageHandler) Summarize(c *gin.Context) {
	summary, err := h.summaryServ.Summarize(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("summarize failed", zap.Error(err), zap.String("conversation_id", c.Param("id")))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// readAudioUpload extrae bytes, nombre y content-type del campo multipart "audio".
func readAudioUpload(c *gin.Context) ([]byte, string, string, error) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: audio file is required", service.ErrInvalidInput)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: open audio: %v", service.ErrInvalidInput, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: read audio: %v", service.ErrInvalidInput, err)
	}

	return data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), nil
}
