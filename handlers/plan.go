package handlers

import (
	"net/http"

	catalogRepo "expertbook/database/repository/catalog"
	"expertbook/models"
	"expertbook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CatalogHandler exposes plan, slot and date CRUD over HTTP. Plan methods
// live here; slot and date methods are in slot.go and date.go.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

type createPlanPayload struct {
	Name        string `json:"name" binding:"required"`
	Channel     string `json:"channel" binding:"required"`
	Duration    int    `json:"duration" binding:"required,min=1"`
	Price       string `json:"price" binding:"required"`
	BookingType string `json:"bookingType" binding:"required"`
	ExpertID    string `json:"expertId" binding:"required,objectid"`
	IsDedicated bool   `json:"isDedicated"`
}

// CreatePlan adds a bookable plan for an expert.
func (h *CatalogHandler) CreatePlan(c *gin.Context) {
	var payload createPlanPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}
	expertID, _ := primitive.ObjectIDFromHex(payload.ExpertID)

	created, err := h.Repo.CreatePlan(&models.Plan{
		Name:        payload.Name,
		Channel:     payload.Channel,
		Duration:    payload.Duration,
		Price:       payload.Price,
		BookingType: payload.BookingType,
		ExpertID:    expertID,
		IsDedicated: payload.IsDedicated,
	})
	if err != nil {
		zap.L().Error("failed to create plan", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListPlans returns plans, optionally filtered by ?expertId=.
func (h *CatalogHandler) ListPlans(c *gin.Context) {
	var (
		plans []models.Plan
		err   error
	)
	if hex := c.Query("expertId"); hex != "" {
		expertID, convErr := primitive.ObjectIDFromHex(hex)
		if convErr != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid expert ID", "")
			return
		}
		plans, err = h.Repo.PlansByExpert(expertID)
	} else {
		plans, err = h.Repo.ListPlans()
	}
	if err != nil {
		zap.L().Error("failed to list plans", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	if plans == nil {
		plans = []models.Plan{}
	}
	c.JSON(http.StatusOK, plans)
}

type updatePlanPayload struct {
	Name        *string `json:"name"`
	Channel     *string `json:"channel"`
	Duration    *int    `json:"duration" binding:"omitempty,min=1"`
	Price       *string `json:"price"`
	BookingType *string `json:"bookingType"`
	IsDedicated *bool   `json:"isDedicated"`
}

func (p *updatePlanPayload) fields() bson.M {
	fields := bson.M{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Channel != nil {
		fields["channel"] = *p.Channel
	}
	if p.Duration != nil {
		fields["duration"] = *p.Duration
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.BookingType != nil {
		fields["bookingType"] = *p.BookingType
	}
	if p.IsDedicated != nil {
		fields["isDedicated"] = *p.IsDedicated
	}
	return fields
}

// UpdatePlan applies a partial update to a plan.
func (h *CatalogHandler) UpdatePlan(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid plan ID", "")
		return
	}

	var payload updatePlanPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}

	updated, err := h.Repo.UpdatePlan(id, payload.fields())
	if err != nil {
		zap.L().Error("failed to update plan", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	if updated == nil {
		utils.JSONError(c, http.StatusNotFound, "Plan not found", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePlan removes a plan.
func (h *CatalogHandler) DeletePlan(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid plan ID", "")
		return
	}

	deleted, err := h.Repo.DeletePlan(id)
	if err != nil {
		zap.L().Error("failed to delete plan", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Plan not found", "")
		return
	}
	c.Status(http.StatusNoContent)
}
