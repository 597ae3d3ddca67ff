package handlers

import (
	"net/http"

	"expertbook/models"
	"expertbook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createSlotPayload struct {
	Availability string `json:"availability" binding:"required"`
	Timing       string `json:"timing" binding:"required"`
	Period       string `json:"period" binding:"required,oneof=AM PM"`
	PlanID       string `json:"planId" binding:"required,objectid"`
	ExpertID     string `json:"expertId" binding:"required,objectid"`
}

// CreateSlot adds a bookable time slot under a plan.
func (h *CatalogHandler) CreateSlot(c *gin.Context) {
	var payload createSlotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}
	planID, _ := primitive.ObjectIDFromHex(payload.PlanID)
	expertID, _ := primitive.ObjectIDFromHex(payload.ExpertID)

	created, err := h.Repo.CreateSlot(&models.Slot{
		Availability: payload.Availability,
		Timing:       payload.Timing,
		Period:       payload.Period,
		PlanID:       planID,
		ExpertID:     expertID,
	})
	if err != nil {
		zap.L().Error("failed to create slot", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListSlots returns slots, optionally filtered by ?expertId=.
func (h *CatalogHandler) ListSlots(c *gin.Context) {
	var (
		slots []models.Slot
		err   error
	)
	if hex := c.Query("expertId"); hex != "" {
		expertID, convErr := primitive.ObjectIDFromHex(hex)
		if convErr != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid expert ID", "")
			return
		}
		slots, err = h.Repo.SlotsByExpert(expertID)
	} else {
		slots, err = h.Repo.ListSlots()
	}
	if err != nil {
		zap.L().Error("failed to list slots", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	if slots == nil {
		slots = []models.Slot{}
	}
	c.JSON(http.StatusOK, slots)
}

type updateSlotPayload struct {
	Availability *string `json:"availability"`
	Timing       *string `json:"timing"`
	Period       *string `json:"period" binding:"omitempty,oneof=AM PM"`
}

func (p *updateSlotPayload) fields() bson.M {
	fields := bson.M{}
	if p.Availability != nil {
		fields["availability"] = *p.Availability
	}
	if p.Timing != nil {
		fields["timing"] = *p.Timing
	}
	if p.Period != nil {
		fields["period"] = *p.Period
	}
	return fields
}

// UpdateSlot applies a partial update to a slot.
func (h *CatalogHandler) UpdateSlot(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot ID", "")
		return
	}

	var payload updateSlotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}

	updated, err := h.Repo.UpdateSlot(id, payload.fields())
	if err != nil {
		zap.L().Error("failed to update slot", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	if updated == nil {
		utils.JSONError(c, http.StatusNotFound, "Slot not found", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteSlot removes a slot.
func (h *CatalogHandler) DeleteSlot(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot ID", "")
		return
	}

	deleted, err := h.Repo.DeleteSlot(id)
	if err != nil {
		zap.L().Error("failed to delete slot", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Slot not found", "")
		return
	}
	c.Status(http.StatusNoContent)
}
