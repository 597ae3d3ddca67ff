package handlers

import (
	"errors"
	"net/http"

	"expertbook/services/catalog"
	"expertbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler exposes the guest-facing plan availability view.
type CalendarHandler struct {
	Service catalog.CatalogService
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(svc catalog.CatalogService) *CalendarHandler {
	return &CalendarHandler{Service: svc}
}

type calendarPayload struct {
	PlanID string `json:"plan_id" binding:"required,objectid"`
}

// Calendar returns the plan, its expert and the expert's dates with slots
// expanded, so a guest can pick a bookable pair in one round trip.
func (h *CalendarHandler) Calendar(c *gin.Context) {
	var payload calendarPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}

	view, err := h.Service.Calendar(payload.PlanID)
	if err != nil {
		var refErr catalog.InvalidReferenceError
		switch {
		case errors.Is(err, catalog.ErrPlanNotFound):
			utils.JSONError(c, http.StatusNotFound, "Plan not found", "")
		case errors.Is(err, catalog.ErrExpertNotFound):
			utils.JSONError(c, http.StatusNotFound, "Expert not found", "")
		case errors.As(err, &refErr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid reference", refErr.Error())
		default:
			zap.L().Error("failed to build calendar view", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		}
		return
	}
	c.JSON(http.StatusOK, view)
}
