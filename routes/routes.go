package routes

import (
	"net/http"
	"time"

	"expertbook/handlers"
	"expertbook/middleware"
	"expertbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes centralizes registration of all endpoints and CORS.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, monitor *utils.HealthMonitor) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterGuestRoutes(r, hb)
	RegisterRescheduleRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, monitor)
}

func adminAuth(hb *handlers.HandlerBundle) gin.HandlerFunc {
	return middleware.JWTAuthAdminMiddleware(hb.JWTSecret, hb.AuthCache, hb.AdminRepo)
}

// RegisterGuestRoutes registers the unauthenticated guest-facing endpoints:
// booking creation and modification, reschedule intake, and expert/plan reads.
func RegisterGuestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1")
	{
		api.POST("/book-appointment", hb.BookAppointmentHandler)
		api.PUT("/booking/modify", hb.ModifyGuestHandler)
		api.POST("/booking/reschedule", hb.CreateRescheduleRequestHandler)

		api.GET("/guest/experts", hb.ListExpertsHandler)
		api.GET("/experts", hb.ListExpertsHandler)
		api.GET("/expert/:id", hb.GetExpertHandler)
		api.GET("/plans", hb.ListPlansHandler)
		api.POST("/calendar", hb.CalendarHandler)
	}
}

// RegisterRescheduleRoutes registers the admin side of the reschedule
// workflow: options generation, request listings and resolution.
func RegisterRescheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1")
	api.Use(adminAuth(hb))
	{
		api.POST("/reschedule-options", hb.CreateRescheduleOptionsHandler)
		api.GET("/reschedule-options/:bookingId", hb.GetActiveOptionsHandler)
		api.GET("/reschedule-requests", hb.ListRescheduleRequestsHandler)
		api.GET("/reschedule-requests/:expertId", hb.ListRequestsByExpertHandler)
		api.POST("/handle-reschedule", hb.HandleRescheduleHandler)
	}
}

// RegisterCatalogRoutes registers expert, plan, slot and date management.
// Slot and date reads stay behind the admin gate with the mutations; guests
// see experts, plans and the booking surface.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1")
	api.Use(adminAuth(hb))
	{
		api.POST("/expert/create", hb.CreateExpertHandler)
		api.PUT("/expert/:id", hb.UpdateExpertHandler)
		api.DELETE("/expert/:id", hb.DeleteExpertHandler)

		api.POST("/plan/create", hb.CreatePlanHandler)
		api.PUT("/plan/:id", hb.UpdatePlanHandler)
		api.DELETE("/plan/:id", hb.DeletePlanHandler)

		api.POST("/slot/create", hb.CreateSlotHandler)
		api.GET("/slots", hb.ListSlotsHandler)
		api.PUT("/slot/:id", hb.UpdateSlotHandler)
		api.DELETE("/slot/:id", hb.DeleteSlotHandler)

		api.POST("/date/create", hb.CreateDateHandler)
		api.GET("/dates", hb.ListDatesHandler)
		api.PUT("/date/:id", hb.UpdateDateHandler)
		api.DELETE("/date/:id", hb.DeleteDateHandler)
	}
}

// RegisterAdminRoutes registers admin auth plus the admin booking surface.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/admin")
	{
		api.POST("/signup", hb.AdminSignUpHandler)
		api.POST("/login", hb.AdminSignInHandler)

		protected := api.Group("")
		protected.Use(adminAuth(hb))
		protected.DELETE("/logout", hb.AdminSignOutHandler)
		protected.GET("/booking", hb.SearchBookingsHandler)
		protected.GET("/booking/:id", hb.GetBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// dependency monitor. Degraded dependencies report 503.
func RegisterHealthRoute(r *gin.Engine, monitor *utils.HealthMonitor) {
	r.GET("/health", func(c *gin.Context) {
		status := monitor.Status()
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status})
	})
}
