package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gridiron/internal/services/coach"
)

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, coach.ErrSessionNotFound),
		errors.Is(err, coach.ErrCoachNotFound),
		errors.Is(err, coach.ErrCardNotFound):
		return http.StatusNotFound
	case errors.Is(err, coach.ErrInvalidCard),
		errors.Is(err, coach.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, coach.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, coach.ErrArchetypeLocked):
		return http.StatusForbidden
	case errors.Is(err, coach.ErrSessionOver),
		errors.Is(err, coach.ErrHandFull),
		errors.Is(err, coach.ErrNoDraftAvailable):
		return http.StatusConflict
	case errors.Is(err, coach.ErrSessionBusy):
		return http.StatusLocked
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
