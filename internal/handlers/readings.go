package handlers

import (
	"net/http"
	"strconv"
	"time"

	"hvac_hub/internal/models"
	"hvac_hub/internal/service"

	"github.com/gin-gonic/gin"
)

// IngestRequest is the device report payload. Null fields count as absent.
type IngestRequest struct {
	Temperature *float64          `json:"temperature" example:"25.4"`
	Humidity    *float64          `json:"humidity" example:"61.2"`
	Hvac        *models.HvacPatch `json:"hvac,omitempty"`
}

// IngestResponse acknowledges a stored reading.
type IngestResponse struct {
	Status    string    `json:"status" example:"success"`
	Timestamp time.Time `json:"timestamp"`
}

// currentReadingResponse keeps all keys present, null before the first reading.
type currentReadingResponse struct {
	Temperature *float64   `json:"temperature"`
	Humidity    *float64   `json:"humidity"`
	Timestamp   *time.Time `json:"timestamp"`
}

// @Summary      Ingest reading
// @Description  Device report. The optional hvac object is the unit's current state and is recorded with source=device.
// @Tags         readings
// @Accept       json
// @Produce      json
// @Param        body  body      IngestRequest  true  "Reading"
// @Success      200   {object}  IngestResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/data [post]
func (h *Handler) ingestReading(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, errInvalidBodyPref+err.Error(), "reading_bad_body", err)
		return
	}

	ts, err := h.services.IngestReading(c.Request.Context(), service.ReadingInput{
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		Hvac:        req.Hvac,
	})
	if err != nil {
		h.rejectOrFail(c, err, errStoreReading, "reading_rejected")
		return
	}

	h.log.Debugw("reading_ingested", "timestamp", ts, "hvac", req.Hvac != nil)
	c.JSON(http.StatusOK, IngestResponse{Status: statusSuccess, Timestamp: ts})
}

// @Summary      Latest reading
// @Description  All fields are null until the first reading arrives.
// @Tags         readings
// @Produce      json
// @Success      200  {object}  models.Reading
// @Router       /api/current [get]
func (h *Handler) currentReading(c *gin.Context) {
	rd, ok := h.services.LatestReading()
	if !ok {
		c.JSON(http.StatusOK, currentReadingResponse{})
		return
	}
	c.JSON(http.StatusOK, rd)
}

// @Summary      Reading history
// @Description  Most recent readings, newest first. Limits above 50 are capped.
// @Tags         readings
// @Produce      json
// @Param        limit  query     int  false  "Number of readings (1-50)"  default(50)
// @Success      200    {array}   models.Reading
// @Failure      400    {object}  map[string]string
// @Router       /api/history [get]
func (h *Handler) history(c *gin.Context) {
	limit := service.DefaultHistoryLimit
	if qs := c.Query("limit"); qs != "" {
		n, err := strconv.Atoi(qs)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidLimit})
			return
		}
		limit = min(n, service.MaxHistoryLimit)
	}
	c.JSON(http.StatusOK, h.services.Recent(c.Request.Context(), limit))
}
