package handlers

import (
	"net/http"

	"hvac_hub/internal/models"

	"github.com/gin-gonic/gin"
)

// ScheduleUpdateResponse returns the stored schedule after an update.
type ScheduleUpdateResponse struct {
	Status   string                  `json:"status" example:"success"`
	Schedule models.ScheduleSettings `json:"schedule"`
}

// @Summary      Schedule settings
// @Tags         schedule
// @Produce      json
// @Success      200  {object}  models.ScheduleSettings
// @Router       /api/schedule [get]
func (h *Handler) getSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.ScheduleSettings())
}

// @Summary      Update schedule
// @Description  start_time and end_time are zero-padded 24-hour HH:MM. end before start crosses midnight.
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body      models.SchedulePatch  true  "Fields to change"
// @Success      200   {object}  ScheduleUpdateResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/schedule/update [post]
func (h *Handler) updateSchedule(c *gin.Context) {
	var p models.SchedulePatch
	if err := c.ShouldBindJSON(&p); err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, errInvalidBodyPref+err.Error(), "schedule_bad_body", err)
		return
	}

	sched, err := h.services.UpdateSchedule(p)
	if err != nil {
		h.rejectOrFail(c, err, "failed to update schedule", "schedule_update_rejected")
		return
	}

	h.log.Infow("schedule_updated", "enabled", sched.Enabled, "start", sched.StartTime, "end", sched.EndTime)
	c.JSON(http.StatusOK, ScheduleUpdateResponse{Status: statusSuccess, Schedule: sched})
}

// @Summary      Schedule status
// @Description  should_be_on is null while the schedule is disabled.
// @Tags         schedule
// @Produce      json
// @Success      200  {object}  models.ScheduleStatus
// @Failure      500  {object}  map[string]string
// @Router       /api/schedule/status [get]
func (h *Handler) scheduleStatus(c *gin.Context) {
	st, err := h.services.ScheduleStatus()
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errScheduleStatus, "schedule_status_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
