package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/roughcut/internal/domain"
	"github.com/cutroom/roughcut/internal/store"
)

// statusForError maps engine and store errors onto HTTP status codes. Every
// error in the taxonomy indicates a caller contract violation, so nothing
// here is retried server-side.
func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNoAssets),
		errors.Is(err, domain.ErrNoClips):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnsupportedStrategy),
		errors.Is(err, domain.ErrUnsupportedFormat),
		errors.Is(err, domain.ErrInvalidFramerate),
		errors.Is(err, domain.ErrInvalidTime):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) abortWithError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "path", c.FullPath(), "error", err)
	} else {
		slog.Debug("Request rejected", "path", c.FullPath(), "status", status, "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
