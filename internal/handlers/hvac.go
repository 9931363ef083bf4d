package handlers

import (
	"net/http"

	"hvac_hub/internal/models"

	"github.com/gin-gonic/gin"
)

// HvacUpdateResponse returns the merged record after a web command.
type HvacUpdateResponse struct {
	Status   string              `json:"status" example:"success"`
	Settings models.HvacSettings `json:"settings"`
}

// @Summary      HVAC settings
// @Tags         hvac
// @Produce      json
// @Success      200  {object}  models.HvacSettings
// @Router       /api/hvac [get]
func (h *Handler) getHvac(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.HvacSettings())
}

// @Summary      Update HVAC settings
// @Description  Partial update from the web UI. Only provided fields change; the record is tagged source=web.
// @Tags         hvac
// @Accept       json
// @Produce      json
// @Param        body  body      models.HvacPatch  true  "Fields to change"
// @Success      200   {object}  HvacUpdateResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/hvac/update [post]
func (h *Handler) updateHvac(c *gin.Context) {
	var p models.HvacPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, errInvalidBodyPref+err.Error(), "hvac_bad_body", err)
		return
	}

	settings, err := h.services.ApplyWebCommand(p)
	if err != nil {
		h.rejectOrFail(c, err, "failed to update settings", "hvac_command_rejected")
		return
	}

	h.log.Infow("hvac_command_applied", "request_id", c.GetString(requestIDKey))
	c.JSON(http.StatusOK, HvacUpdateResponse{Status: statusSuccess, Settings: settings})
}

// @Summary      Device command poll
// @Description  Same record as /api/hvac. The device applies it only when source is "web" and timestamp is newer than the last one it applied.
// @Tags         hvac
// @Produce      json
// @Success      200  {object}  models.HvacSettings
// @Router       /api/hvac/command [get]
func (h *Handler) hvacCommand(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.HvacSettings())
}
