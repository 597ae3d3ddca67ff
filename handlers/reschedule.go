package handlers

import (
	"errors"
	"net/http"

	"expertbook/models"
	"expertbook/services/reschedule"
	"expertbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RescheduleHandler exposes the reschedule workflow over HTTP.
type RescheduleHandler struct {
	Service reschedule.RescheduleService
}

// NewRescheduleHandler creates a RescheduleHandler.
func NewRescheduleHandler(svc reschedule.RescheduleService) *RescheduleHandler {
	return &RescheduleHandler{Service: svc}
}

type createRequestPayload struct {
	CurrentBookingID string `json:"currentBookingId" binding:"required,objectid"`
	RequestedBy      string `json:"requestedBy" binding:"required,oneof=User Expert"`
	RequestedDateID  string `json:"requestedDateId" binding:"omitempty,objectid"`
	RequestedSlotID  string `json:"requestedSlotId" binding:"omitempty,objectid"`
	OptionsID        string `json:"optionsId" binding:"omitempty,objectid"`
	SelectedOption   int    `json:"selectedOption" binding:"omitempty,min=0"`
}

// CreateRequest handles the guest-facing reschedule submission. The response
// is a bare confirmation; no booking or date/slot payload is echoed back.
func (h *RescheduleHandler) CreateRequest(c *gin.Context) {
	var payload createRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}

	err := h.Service.CreateRequest(reschedule.CreateRequestInput{
		CurrentBookingID: payload.CurrentBookingID,
		RequestedBy:      models.RescheduleRequester(payload.RequestedBy),
		RequestedDateID:  payload.RequestedDateID,
		RequestedSlotID:  payload.RequestedSlotID,
		OptionsID:        payload.OptionsID,
		SelectedOption:   payload.SelectedOption,
	})
	if err != nil {
		var refErr reschedule.InvalidReferenceError
		switch {
		case errors.Is(err, reschedule.ErrDuplicateRequest):
			utils.JSONError(c, http.StatusConflict, "Rescheduling request already exists", "")
		case errors.As(err, &refErr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid reference", refErr.Error())
		default:
			zap.L().Error("failed to create rescheduling request", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Rescheduling request created successfully"})
}

type slotOptionPayload struct {
	DateID string `json:"dateId" binding:"required,objectid"`
	SlotID string `json:"slotId" binding:"required,objectid"`
}

type createOptionsPayload struct {
	CurrentBookingID string              `json:"currentBookingId" binding:"required,objectid"`
	AvailableSlots   []slotOptionPayload `json:"availableSlots" binding:"required,min=3,dive"`
}

// CreateOptions persists a candidate set for a booking. The expiry in the
// response is always server-computed; any expiry in the request body is
// ignored by construction.
func (h *RescheduleHandler) CreateOptions(c *gin.Context) {
	var payload createOptionsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}

	slots := make([]reschedule.SlotOptionInput, 0, len(payload.AvailableSlots))
	for _, pair := range payload.AvailableSlots {
		slots = append(slots, reschedule.SlotOptionInput{DateID: pair.DateID, SlotID: pair.SlotID})
	}

	created, err := h.Service.CreateOptions(reschedule.CreateOptionsInput{
		CurrentBookingID: payload.CurrentBookingID,
		AvailableSlots:   slots,
	})
	if err != nil {
		var refErr reschedule.InvalidReferenceError
		var fewErr reschedule.TooFewOptionsError
		switch {
		case errors.As(err, &fewErr):
			utils.JSONError(c, http.StatusBadRequest, "Too few available slots", fewErr.Error())
		case errors.As(err, &refErr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid reference", refErr.Error())
		default:
			zap.L().Error("failed to create rescheduling options", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Rescheduling options created successfully",
		"currentBookingId": created.CurrentBookingID.Hex(),
		"availableSlots":   created.AvailableSlots,
		"expiryDate":       created.ExpiryDate,
	})
}

// GetActiveOptions returns the booking's unexpired options set. Expired sets
// are reported as absent; no background job removes them.
func (h *RescheduleHandler) GetActiveOptions(c *gin.Context) {
	opts, err := h.Service.ActiveOptions(c.Param("bookingId"))
	if err != nil {
		var refErr reschedule.InvalidReferenceError
		switch {
		case errors.Is(err, reschedule.ErrNoActiveOptions):
			utils.JSONError(c, http.StatusNotFound, "No active rescheduling options", "")
		case errors.As(err, &refErr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid reference", refErr.Error())
		default:
			zap.L().Error("failed to fetch rescheduling options", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		}
		return
	}
	c.JSON(http.StatusOK, opts)
}

// ListRequests returns every pending reschedule request.
func (h *RescheduleHandler) ListRequests(c *gin.Context) {
	requests, err := h.Service.ListRequests()
	if err != nil {
		zap.L().Error("failed to list rescheduling requests", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Rescheduling requests retrieved successfully",
		"list":    requests,
	})
}

// ListRequestsByExpert returns pending requests for one expert's bookings.
func (h *RescheduleHandler) ListRequestsByExpert(c *gin.Context) {
	requests, err := h.Service.ListRequestsByExpert(c.Param("expertId"))
	if err != nil {
		var refErr reschedule.InvalidReferenceError
		switch {
		case errors.Is(err, reschedule.ErrExpertNotFound):
			utils.JSONError(c, http.StatusNotFound, "Expert not found", "")
		case errors.Is(err, reschedule.ErrNoRequests):
			utils.JSONError(c, http.StatusNotFound, "No reschedule requests found for this expert", "")
		case errors.As(err, &refErr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid reference", refErr.Error())
		default:
			zap.L().Error("failed to list rescheduling requests by expert", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Rescheduling requests retrieved successfully",
		"list":    requests,
	})
}

type resolvePayload struct {
	CurrentBookingID string `json:"currentBookingId" binding:"required,objectid"`
	RequestedDateID  string `json:"requestedDateId" binding:"omitempty,objectid"`
	RequestedSlotID  string `json:"requestedSlotId" binding:"omitempty,objectid"`
	Action           string `json:"action" binding:"required"`
}

// Resolve applies the accept/reject decision to a pending request.
func (h *RescheduleHandler) Resolve(c *gin.Context) {
	var payload resolvePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}

	booking, err := h.Service.Resolve(reschedule.ResolveInput{
		CurrentBookingID: payload.CurrentBookingID,
		RequestedDateID:  payload.RequestedDateID,
		RequestedSlotID:  payload.RequestedSlotID,
		Action:           payload.Action,
	})
	if err != nil {
		var refErr reschedule.InvalidReferenceError
		switch {
		case errors.Is(err, reschedule.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		case errors.Is(err, reschedule.ErrInvalidAction):
			utils.JSONError(c, http.StatusBadRequest, "Invalid action", "")
		case errors.As(err, &refErr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid date or slot ID", refErr.Error())
		default:
			zap.L().Error("failed to resolve reschedule request", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		}
		return
	}

	if payload.Action == reschedule.ActionRejected {
		c.JSON(http.StatusOK, gin.H{"message": "Reschedule request rejected successfully"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Reschedule request accepted successfully",
		"booking": booking,
	})
}
