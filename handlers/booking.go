package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	bookingRepo "expertbook/database/repository/booking"
	"expertbook/models"
	"expertbook/services/booking"
	"expertbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes guest booking submission and the admin booking
// surface over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

type bookAppointmentPayload struct {
	GuestName       string   `json:"guestName" binding:"required"`
	GuestOccupation string   `json:"guestOccupation" binding:"required,oneof=Student Businessperson 'Working Professional'"`
	GuestAge        int      `json:"guestAge" binding:"required,gt=0"`
	GuestCity       string   `json:"guestCity" binding:"required"`
	GuestEmail      string   `json:"guestEmail" binding:"required,email"`
	GuestPhone      string   `json:"guestPhone" binding:"required"`
	GuestWhatsapp   string   `json:"guestWhatsapp" binding:"required"`
	GuestWebsite    string   `json:"guestWebsite"`
	GuestProblem    string   `json:"guestProblem" binding:"required"`
	GuestVoiceNote  string   `json:"guestVoiceNote"`
	Tags            []string `json:"tags" binding:"required"`
	GuestKYC        *bool    `json:"guestKYC" binding:"required"`
	DateID          string   `json:"dateId" binding:"required,objectid"`
	SlotID          string   `json:"slotId" binding:"required,objectid"`
	ExpertID        string   `json:"expertId" binding:"required,objectid"`
}

// BookAppointment handles the guest-facing booking submission. The stored
// status is always Pending regardless of anything the client sends.
func (h *BookingHandler) BookAppointment(c *gin.Context) {
	var payload bookAppointmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}

	created, err := h.Service.Book(booking.BookInput{
		GuestName:       payload.GuestName,
		GuestOccupation: models.GuestOccupation(payload.GuestOccupation),
		GuestAge:        payload.GuestAge,
		GuestCity:       payload.GuestCity,
		GuestEmail:      payload.GuestEmail,
		GuestPhone:      payload.GuestPhone,
		GuestWhatsapp:   payload.GuestWhatsapp,
		GuestWebsite:    payload.GuestWebsite,
		GuestProblem:    payload.GuestProblem,
		GuestVoiceNote:  payload.GuestVoiceNote,
		Tags:            payload.Tags,
		GuestKYC:        *payload.GuestKYC,
		DateID:          payload.DateID,
		SlotID:          payload.SlotID,
		ExpertID:        payload.ExpertID,
	})
	if err != nil {
		var refErr booking.InvalidReferenceError
		if errors.As(err, &refErr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid reference", refErr.Error())
			return
		}
		zap.L().Error("failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}

	c.JSON(http.StatusCreated, created)
}

type modifyGuestPayload struct {
	BookingID  string `json:"booking_id" binding:"required,objectid"`
	GuestPhone string `json:"guestPhone" binding:"required"`
	GuestEmail string `json:"guestEmail" binding:"required,email"`
	GuestName  string `json:"guestName" binding:"required"`
}

// ModifyGuest updates the guest contact fields of an existing booking.
func (h *BookingHandler) ModifyGuest(c *gin.Context) {
	var payload modifyGuestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}

	updated, err := h.Service.ModifyGuest(booking.ModifyGuestInput{
		BookingID:  payload.BookingID,
		GuestName:  payload.GuestName,
		GuestEmail: payload.GuestEmail,
		GuestPhone: payload.GuestPhone,
	})
	if err != nil {
		var refErr booking.InvalidReferenceError
		switch {
		case errors.Is(err, booking.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		case errors.As(err, &refErr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid reference", refErr.Error())
		default:
			zap.L().Error("failed to modify booking", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Guest data updated successfully",
		"updatedBooking": updated,
	})
}

// SearchBookings returns a paginated, searchable, sortable admin listing.
// Query params: page (1-based), limit, search, sort ("field" or "field,desc").
func (h *BookingHandler) SearchBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	sortParam := c.DefaultQuery("sort", "guestName")
	sortParts := strings.SplitN(sortParam, ",", 2)
	asc := len(sortParts) < 2 || !strings.EqualFold(sortParts[1], "desc")

	result, err := h.Service.Search(bookingRepo.SearchParams{
		Page:   page - 1,
		Limit:  limit,
		Search: c.Query("search"),
		SortBy: sortParts[0],
		Asc:    asc,
	})
	if err != nil {
		zap.L().Error("failed to search bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBooking fetches a single booking by ID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	found, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		var refErr booking.InvalidReferenceError
		switch {
		case errors.Is(err, booking.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking entry not found", "")
		case errors.As(err, &refErr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid UID format", "")
		default:
			zap.L().Error("failed to fetch booking", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		}
		return
	}
	c.JSON(http.StatusOK, found)
}
