package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meditranslate/internal/service"
)

// SearchHandler mantiene dependencias para la búsqueda de mensajes.
type SearchHandler struct {
	logger     *zap.Logger
	searchServ *service.SearchService
}

// NewSearchHandler crea una instancia de SearchHandler.
func NewSearchHandler(logger *zap.Logger, searchServ *service.SearchService) *SearchHandler {
	return &SearchHandler{
		logger:     logger,
		searchServ: searchServ,
	}
}

// Search maneja GET /api/search?q=.
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.searchServ.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error("search failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
