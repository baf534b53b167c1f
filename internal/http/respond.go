package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"meditranslate/internal/service"
)

// respondError mapea la taxonomía de errores del servicio a códigos HTTP.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
