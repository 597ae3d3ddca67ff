package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expertbook/config"
	"expertbook/database"
	adminRepoPkg "expertbook/database/repository/admin"
	bookingRepoPkg "expertbook/database/repository/booking"
	catalogRepoPkg "expertbook/database/repository/catalog"
	expertRepoPkg "expertbook/database/repository/expert"
	rescheduleRepoPkg "expertbook/database/repository/reschedule"
	"expertbook/handlers"
	"expertbook/middleware"
	"expertbook/routes"
	adminSvc "expertbook/services/admin"
	"expertbook/services/booking"
	catalogSvc "expertbook/services/catalog"
	"expertbook/services/reschedule"
	"expertbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	utils.InitializeLogger(cfg.IsProduction())
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	client, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := client.Database(cfg.DatabaseName)

	authCache := utils.NewAuthCacheClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisAuthDB)
	if authCache == nil {
		logger.Warn("main: auth cache unavailable, token revocation disabled")
	}

	if err := utils.RegisterValidators(); err != nil {
		logger.Sugar().Fatalf("main: failed to register validators: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	rescheduleRepo := rescheduleRepoPkg.NewMongoRescheduleRepo(db)
	expertRepo := expertRepoPkg.NewMongoExpertRepo(db)
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo(db)
	adminRepo := adminRepoPkg.NewMongoAdminRepo(db)

	// services.
	rescheduleService := &reschedule.DefaultRescheduleService{
		Repo:        rescheduleRepo,
		BookingRepo: bookingRepo,
		ExpertRepo:  expertRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo: bookingRepo,
	}
	adminService := &adminSvc.DefaultAdminService{
		Repo:      adminRepo,
		Cache:     authCache,
		JWTSecret: []byte(cfg.JWTSecret),
	}
	catalogService := &catalogSvc.DefaultCatalogService{
		Repo:       catalogRepo,
		ExpertRepo: expertRepo,
	}

	rescheduleHandler := handlers.NewRescheduleHandler(rescheduleService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	expertHandler := handlers.NewExpertHandler(expertRepo)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)
	calendarHandler := handlers.NewCalendarHandler(catalogService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminRepo: adminRepo,
		AuthCache: authCache,
		JWTSecret: []byte(cfg.JWTSecret),

		// Reschedule workflow endpoints.
		CreateRescheduleRequestHandler: rescheduleHandler.CreateRequest,
		CreateRescheduleOptionsHandler: rescheduleHandler.CreateOptions,
		GetActiveOptionsHandler:        rescheduleHandler.GetActiveOptions,
		ListRescheduleRequestsHandler:  rescheduleHandler.ListRequests,
		ListRequestsByExpertHandler:    rescheduleHandler.ListRequestsByExpert,
		HandleRescheduleHandler:        rescheduleHandler.Resolve,

		// Booking endpoints.
		BookAppointmentHandler: bookingHandler.BookAppointment,
		ModifyGuestHandler:     bookingHandler.ModifyGuest,
		SearchBookingsHandler:  bookingHandler.SearchBookings,
		GetBookingHandler:      bookingHandler.GetBooking,

		// Expert endpoints.
		CreateExpertHandler: expertHandler.CreateExpert,
		ListExpertsHandler:  expertHandler.ListExperts,
		GetExpertHandler:    expertHandler.GetExpert,
		UpdateExpertHandler: expertHandler.UpdateExpert,
		DeleteExpertHandler: expertHandler.DeleteExpert,

		// Plan endpoints.
		CreatePlanHandler: catalogHandler.CreatePlan,
		ListPlansHandler:  catalogHandler.ListPlans,
		UpdatePlanHandler: catalogHandler.UpdatePlan,
		DeletePlanHandler: catalogHandler.DeletePlan,

		// Slot endpoints.
		CreateSlotHandler: catalogHandler.CreateSlot,
		ListSlotsHandler:  catalogHandler.ListSlots,
		UpdateSlotHandler: catalogHandler.UpdateSlot,
		DeleteSlotHandler: catalogHandler.DeleteSlot,

		// Date endpoints.
		CreateDateHandler: catalogHandler.CreateDate,
		ListDatesHandler:  catalogHandler.ListDates,
		UpdateDateHandler: catalogHandler.UpdateDate,
		DeleteDateHandler: catalogHandler.DeleteDate,

		// Calendar endpoint.
		CalendarHandler: calendarHandler.Calendar,

		// Admin auth endpoints.
		AdminSignUpHandler:  adminHandler.SignUp,
		AdminSignInHandler:  adminHandler.SignIn,
		AdminSignOutHandler: adminHandler.SignOut,
	}

	// Background dependency monitor feeding /health.
	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	monitor := utils.NewHealthMonitor(client, authCache)
	monitor.Start(monitorCtx, 30*time.Second)

	routes.RegisterRoutes(router, handlerBundle, monitor)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(client); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
