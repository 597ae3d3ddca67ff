package handlers

import (
	"net/http"

	expertRepo "expertbook/database/repository/expert"
	"expertbook/models"
	"expertbook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ExpertHandler exposes expert CRUD over HTTP.
type ExpertHandler struct {
	Repo expertRepo.ExpertRepository
}

// NewExpertHandler creates an ExpertHandler.
func NewExpertHandler(repo expertRepo.ExpertRepository) *ExpertHandler {
	return &ExpertHandler{Repo: repo}
}

type createExpertPayload struct {
	Username        string   `json:"username" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Fullname        string   `json:"fullname" binding:"required"`
	Expertise       []string `json:"expertise" binding:"required"`
	Designation     string   `json:"designation" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Avatar          string   `json:"avatar"`
	CoverPhoto      string   `json:"coverPhoto"`
	AvailableCities []string `json:"availableCities" binding:"required"`
}

// CreateExpert registers a new expert.
func (h *ExpertHandler) CreateExpert(c *gin.Context) {
	var payload createExpertPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}

	created, err := h.Repo.Create(&models.Expert{
		Username:        payload.Username,
		Email:           payload.Email,
		Fullname:        payload.Fullname,
		Expertise:       payload.Expertise,
		Designation:     payload.Designation,
		Description:     payload.Description,
		Avatar:          payload.Avatar,
		CoverPhoto:      payload.CoverPhoto,
		AvailableCities: payload.AvailableCities,
		IsActive:        true,
	})
	if err != nil {
		zap.L().Error("failed to create expert", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListExperts returns all experts.
func (h *ExpertHandler) ListExperts(c *gin.Context) {
	experts, err := h.Repo.List()
	if err != nil {
		zap.L().Error("failed to list experts", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	if experts == nil {
		experts = []models.Expert{}
	}
	c.JSON(http.StatusOK, experts)
}

// GetExpert fetches a single expert by ID.
func (h *ExpertHandler) GetExpert(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid expert ID", "")
		return
	}

	expert, err := h.Repo.GetByID(id)
	if err != nil {
		zap.L().Error("failed to fetch expert", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	if expert == nil {
		utils.JSONError(c, http.StatusNotFound, "Expert not found", "")
		return
	}
	c.JSON(http.StatusOK, expert)
}

type updateExpertPayload struct {
	Username        *string   `json:"username"`
	Email           *string   `json:"email" binding:"omitempty,email"`
	Fullname        *string   `json:"fullname"`
	Expertise       *[]string `json:"expertise"`
	Designation     *string   `json:"designation"`
	Description     *string   `json:"description"`
	Avatar          *string   `json:"avatar"`
	CoverPhoto      *string   `json:"coverPhoto"`
	AvailableCities *[]string `json:"availableCities"`
	IsActive        *bool     `json:"isActive"`
}

func (p *updateExpertPayload) fields() bson.M {
	fields := bson.M{}
	if p.Username != nil {
		fields["username"] = *p.Username
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.Fullname != nil {
		fields["fullname"] = *p.Fullname
	}
	if p.Expertise != nil {
		fields["expertise"] = *p.Expertise
	}
	if p.Designation != nil {
		fields["designation"] = *p.Designation
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Avatar != nil {
		fields["avatar"] = *p.Avatar
	}
	if p.CoverPhoto != nil {
		fields["coverPhoto"] = *p.CoverPhoto
	}
	if p.AvailableCities != nil {
		fields["availableCities"] = *p.AvailableCities
	}
	if p.IsActive != nil {
		fields["isActive"] = *p.IsActive
	}
	return fields
}

// UpdateExpert applies a partial update to an expert.
func (h *ExpertHandler) UpdateExpert(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid expert ID", "")
		return
	}

	var payload updateExpertPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}

	updated, err := h.Repo.Update(id, payload.fields())
	if err != nil {
		zap.L().Error("failed to update expert", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	if updated == nil {
		utils.JSONError(c, http.StatusNotFound, "Expert not found", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteExpert removes an expert.
func (h *ExpertHandler) DeleteExpert(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid expert ID", "")
		return
	}

	deleted, err := h.Repo.DeleteByID(id)
	if err != nil {
		zap.L().Error("failed to delete expert", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Expert not found", "")
		return
	}
	c.Status(http.StatusNoContent)
}
