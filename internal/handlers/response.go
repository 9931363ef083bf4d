package handlers

import (
	"errors"
	"net/http"

	"hvac_hub/internal/models"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusSuccess = "success"

	errStoreReading    = "failed to store reading"
	errScheduleStatus  = "failed to evaluate schedule"
	errInvalidBodyPref = "invalid body: "
	errInvalidLimit    = "limit must be a positive integer"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDKey)}, kv...)
		if httpCode >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Warnw(logKey, fields...)
		}
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// rejectOrFail maps a validation error to 400 with its message and anything else to 500.
func (h *Handler) rejectOrFail(c *gin.Context, err error, failMsg, logKey string) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		h.logAndJSONError(c, http.StatusBadRequest, ve.Message, logKey, err, "field", ve.Field)
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, failMsg, logKey, err)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
