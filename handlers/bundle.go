package handlers

import (
	adminRepoPkg "expertbook/database/repository/admin"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all endpoint handlers into one struct, along with the
// pieces the route layer needs to build the admin auth middleware.
type HandlerBundle struct {
	AdminRepo adminRepoPkg.AdminRepository
	AuthCache *redis.Client
	JWTSecret []byte

	// Reschedule workflow endpoints
	CreateRescheduleRequestHandler gin.HandlerFunc
	CreateRescheduleOptionsHandler gin.HandlerFunc
	GetActiveOptionsHandler        gin.HandlerFunc
	ListRescheduleRequestsHandler  gin.HandlerFunc
	ListRequestsByExpertHandler    gin.HandlerFunc
	HandleRescheduleHandler        gin.HandlerFunc

	// Booking endpoints
	BookAppointmentHandler gin.HandlerFunc
	ModifyGuestHandler     gin.HandlerFunc
	SearchBookingsHandler  gin.HandlerFunc
	GetBookingHandler      gin.HandlerFunc

	// Expert endpoints
	CreateExpertHandler gin.HandlerFunc
	ListExpertsHandler  gin.HandlerFunc
	GetExpertHandler    gin.HandlerFunc
	UpdateExpertHandler gin.HandlerFunc
	DeleteExpertHandler gin.HandlerFunc

	// Plan endpoints
	CreatePlanHandler gin.HandlerFunc
	ListPlansHandler  gin.HandlerFunc
	UpdatePlanHandler gin.HandlerFunc
	DeletePlanHandler gin.HandlerFunc

	// Slot endpoints
	CreateSlotHandler gin.HandlerFunc
	ListSlotsHandler  gin.HandlerFunc
	UpdateSlotHandler gin.HandlerFunc
	DeleteSlotHandler gin.HandlerFunc

	// Date endpoints
	CreateDateHandler gin.HandlerFunc
	ListDatesHandler  gin.HandlerFunc
	UpdateDateHandler gin.HandlerFunc
	DeleteDateHandler gin.HandlerFunc

	// Calendar endpoint
	CalendarHandler gin.HandlerFunc

	// Admin auth endpoints
	AdminSignUpHandler  gin.HandlerFunc
	AdminSignInHandler  gin.HandlerFunc
	AdminSignOutHandler gin.HandlerFunc
}
