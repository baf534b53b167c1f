package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meditranslate/internal/service"
)

// TranslateHandler mantiene dependencias para traducción sin persistencia.
type TranslateHandler struct {
	logger          *zap.Logger
	translationServ *service.TranslationService
}

// NewTranslateHandler crea una instancia de TranslateHandler.
func NewTranslateHandler(logger *zap.Logger, translationServ *service.TranslationService) *TranslateHandler {
	return &TranslateHandler{
		logger:          logger,
		translationServ: translationServ,
	}
}

// Translate maneja POST /api/translate.
func (h *TranslateHandler) Translate(c *gin.Context) {
	translation, err := h.translationServ.Translate(
		c.Request.Context(),
		c.PostForm("text"),
		c.PostForm("source_lang"),
		c.PostForm("target_lang"),
	)
	if err != nil {
		h.logger.Error("translate failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, translation)
}

// TranscribeTranslate maneja POST /api/audio/transcribe-translate: el cliente
// ya trae el transcript (p.ej. reconocimiento de voz del navegador) y solo
// necesita la traducción.
func (h *TranslateHandler) TranscribeTranslate(c *gin.Context) {
	transcript := c.PostForm("transcript")

	translation, err := h.translationServ.Translate(
		c.Request.Context(),
		transcript,
		c.PostForm("source_lang"),
		c.PostForm("target_lang"),
	)
	if err != nil {
		h.logger.Error("transcribe-translate failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transcript":  transcript,
		"translation": translation.Translated,
		"source_lang": translation.SourceLang,
		"target_lang": translation.TargetLang,
	})
}
