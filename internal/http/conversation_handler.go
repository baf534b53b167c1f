package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meditranslate/internal/service"
)

// ConversationHandler mantiene dependencias para endpoints de conversaciones.
type ConversationHandler struct {
	logger           *zap.Logger
	conversationServ *service.ConversationService
}

// NewConversationHandler crea una instancia de ConversationHandler.
func NewConversationHandler(logger *zap.Logger, conversationServ *service.ConversationService) *ConversationHandler {
	return &ConversationHandler{
		logger:           logger,
		conversationServ: conversationServ,
	}
}

// Create maneja POST /api/conversations.
func (h *ConversationHandler) Create(c *gin.Context) {
	patientName := c.PostForm("patient_name")
	doctorLang := c.PostForm("doctor_lang")
	patientLang := c.PostForm("patient_lang")

	conv, err := h.conversationServ.Create(c.Request.Context(), patientName, doctorLang, patientLang)
	if err != nil {
		h.logger.Error("create conversation failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"conversation": conv})
}

// List maneja GET /api/conversations.
func (h *ConversationHandler) List(c *gin.Context) {
	conversations, err := h.conversationServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list conversations failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// Get maneja GET /api/conversations/:id.
func (h *ConversationHandler) Get(c *gin.Context) {
	conv, err := h.conversationServ.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Warn("get conversation failed", zap.Error(err), zap.String("id", c.Param("id")))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversation": conv})
}

// Update maneja PATCH /api/conversations/:id.
func (h *ConversationHandler) Update(c *gin.Context) {
	conv, err := h.conversationServ.Update(
		c.Request.Context(),
		c.Param("id"),
		c.PostForm("patient_name"),
		c.PostForm("doctor_lang"),
		c.PostForm("patient_lang"),
	)
	if err != nil {
		h.logger.Warn("update conversation failed", zap.Error(err), zap.String("id", c.Param("id")))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversation": conv})
}

// Delete maneja DELETE /api/conversations/:id.
func (h *ConversationHandler) Delete(c *gin.Context) {
	if err := h.conversationServ.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Warn("delete conversation failed", zap.Error(err), zap.String("id", c.Param("id")))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Probe maneja GET /test/supabase.
func (h *ConversationHandler) Probe(c *gin.Context) {
	if err := h.conversationServ.Probe(c.Request.Context()); err != nil {
		h.logger.Error("storage probe failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "connected"})
}
