package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// Deps are the singletons built by main. DB is nil with the memory driver.
type Deps struct {
	Config       *config.Config
	DB           *gorm.DB
	Appointments domain.Store
	Catalog      catalog.Store
	Locker       lock.Locker
	Audit        *audit.Dispatcher
	Log          *slog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	handlers.RegisterValidators()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestLogger(d.Log),
		middleware.PrometheusMiddleware(),
		middleware.CORSMiddleware(),
		middleware.Timeout(d.Config.RequestTimeout),
	)

	limiter := middleware.NewRateLimiter(d.Config.RateLimitRPS, d.Config.RateLimitBurst)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	checker := ucAppointment.NewAvailabilityChecker(d.Appointments)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		d.Appointments,
		checker,
		d.Locker,
		d.Audit,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		d.Appointments,
		d.Audit,
	)

	checkAvailabilityUC := ucAppointment.NewCheckAvailability(checker)
	listAppointmentsUC := ucAppointment.NewListAppointments(d.Appointments)
	getAppointmentUC := ucAppointment.NewGetAppointment(d.Appointments)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		checkAvailabilityUC,
		listAppointmentsUC,
		getAppointmentUC,
	)
	catalogHandler := handlers.NewCatalogHandler(d.Catalog)
	healthHandler := handlers.NewHealthHandler(d.DB, d.Config)

	// ======================================================
	// HEALTH
	// ======================================================
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)
	r.GET("/test", healthHandler.Test)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")

	api.GET("/barbers", catalogHandler.ListBarbers)
	api.POST("/barbers", limiter.Middleware(), catalogHandler.CreateBarber)

	api.GET("/services", catalogHandler.ListServices)
	api.POST("/services", limiter.Middleware(), catalogHandler.CreateService)

	appointments := api.Group("/appointments")
	{
		appointments.GET("", appointmentHandler.List)
		appointments.GET("/check", appointmentHandler.Check)
		appointments.GET("/:id", appointmentHandler.Get)
		appointments.POST("", limiter.Middleware(), appointmentHandler.Create)
		appointments.PATCH("/:id/cancel", appointmentHandler.Cancel)
	}
}
