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

type createDatePayload struct {
	Date         string   `json:"date" binding:"required"`
	Availability string   `json:"availability" binding:"required,oneof=holiday available 'not available' booked"`
	ExpertID     string   `json:"expertId" binding:"required,objectid"`
	SlotIDs      []string `json:"slotsId" binding:"omitempty,dive,objectid"`
}

// CreateDate adds a calendar day to an expert's schedule.
func (h *CatalogHandler) CreateDate(c *gin.Context) {
	var payload createDatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}
	expertID, _ := primitive.ObjectIDFromHex(payload.ExpertID)
	slotIDs := make([]primitive.ObjectID, 0, len(payload.SlotIDs))
	for _, hex := range payload.SlotIDs {
		id, _ := primitive.ObjectIDFromHex(hex)
		slotIDs = append(slotIDs, id)
	}

	created, err := h.Repo.CreateDate(&models.DateEntry{
		Date:         payload.Date,
		Availability: models.DateAvailability(payload.Availability),
		ExpertID:     expertID,
		SlotIDs:      slotIDs,
	})
	if err != nil {
		zap.L().Error("failed to create date", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListDates returns calendar days, optionally filtered by ?expertId=.
func (h *CatalogHandler) ListDates(c *gin.Context) {
	var (
		dates []models.DateEntry
		err   error
	)
	if hex := c.Query("expertId"); hex != "" {
		expertID, convErr := primitive.ObjectIDFromHex(hex)
		if convErr != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid expert ID", "")
			return
		}
		dates, err = h.Repo.DatesByExpert(expertID)
	} else {
		dates, err = h.Repo.ListDates()
	}
	if err != nil {
		zap.L().Error("failed to list dates", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	if dates == nil {
		dates = []models.DateEntry{}
	}
	c.JSON(http.StatusOK, dates)
}

type updateDatePayload struct {
	Date         *string   `json:"date"`
	Availability *string   `json:"availability" binding:"omitempty,oneof=holiday available 'not available' booked"`
	SlotIDs      *[]string `json:"slotsId" binding:"omitempty,dive,objectid"`
}

func (p *updateDatePayload) fields() (bson.M, error) {
	fields := bson.M{}
	if p.Date != nil {
		fields["date"] = *p.Date
	}
	if p.Availability != nil {
		fields["availability"] = *p.Availability
	}
	if p.SlotIDs != nil {
		ids := make([]primitive.ObjectID, 0, len(*p.SlotIDs))
		for _, hex := range *p.SlotIDs {
			id, err := primitive.ObjectIDFromHex(hex)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		fields["slotsId"] = ids
	}
	return fields, nil
}

// UpdateDate applies a partial update to a calendar day.
func (h *CatalogHandler) UpdateDate(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date ID", "")
		return
	}

	var payload updateDatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}
	fields, err := payload.fields()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot ID", "")
		return
	}

	updated, err := h.Repo.UpdateDate(id, fields)
	if err != nil {
		zap.L().Error("failed to update date", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	if updated == nil {
		utils.JSONError(c, http.StatusNotFound, "Date not found", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDate removes a calendar day.
func (h *CatalogHandler) DeleteDate(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date ID", "")
		return
	}

	deleted, err := h.Repo.DeleteDate(id)
	if err != nil {
		zap.L().Error("failed to delete date", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Date not found", "")
		return
	}
	c.Status(http.StatusNoContent)
}
