package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/counsel-scheduler/internal/audit"
	"github.com/BruksfildServices01/counsel-scheduler/internal/auth"
	"github.com/BruksfildServices01/counsel-scheduler/internal/config"
	domainAccount "github.com/BruksfildServices01/counsel-scheduler/internal/domain/account"
	domainBooking "github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	domainConsultant "github.com/BruksfildServices01/counsel-scheduler/internal/domain/consultant"
	domainSurvey "github.com/BruksfildServices01/counsel-scheduler/internal/domain/survey"
	"github.com/BruksfildServices01/counsel-scheduler/internal/handlers"
	"github.com/BruksfildServices01/counsel-scheduler/internal/middleware"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
	"github.com/BruksfildServices01/counsel-scheduler/internal/storage"
	"github.com/BruksfildServices01/counsel-scheduler/internal/timezone"
	ucAccount "github.com/BruksfildServices01/counsel-scheduler/internal/usecase/account"
	ucBooking "github.com/BruksfildServices01/counsel-scheduler/internal/usecase/booking"
	ucConsultant "github.com/BruksfildServices01/counsel-scheduler/internal/usecase/consultant"
	ucSurvey "github.com/BruksfildServices01/counsel-scheduler/internal/usecase/survey"
)

// Infra is everything the routes need from the outside world. main wires
// the postgres-backed versions; tests wire in-memory ones.
type Infra struct {
	Accounts    domainAccount.Repository
	Bookings    domainBooking.Repository
	Consultants domainConsultant.Repository
	Surveys     domainSurvey.Repository

	Locker   domainBooking.Locker
	Uploader storage.Uploader
	Audit    *audit.Dispatcher
	Clock    *timezone.Clock
	Tokens   *auth.Tokens
	Logger   *zap.Logger

	// DB backs the audit log listing. Nil leaves the route out.
	DB *gorm.DB

	// EmailCheck vets the email domain on registration. Nil skips it.
	EmailCheck func(string) bool
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, in Infra) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(in.Logger))
	r.Use(middleware.RequestLogger(in.Logger))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAccount.NewRegister(in.Accounts, in.Tokens, cfg.BootstrapAdminEmail, in.EmailCheck)
	loginUC := ucAccount.NewLogin(in.Accounts, in.Tokens)
	getMeUC := ucAccount.NewGetMe(in.Accounts)
	avatarUC := ucAccount.NewUploadAvatar(in.Accounts, in.Uploader)

	createBookingUC := ucBooking.NewCreateBooking(in.Bookings, in.Locker, in.Clock, in.Audit)
	updateBookingUC := ucBooking.NewUpdateBooking(in.Bookings, in.Audit)
	deleteBookingUC := ucBooking.NewDeleteBooking(in.Bookings, in.Audit)
	listBookingsUC := ucBooking.NewListBookings(in.Bookings)
	checkAvailabilityUC := ucBooking.NewCheckAvailability(in.Bookings)

	createConsultantUC := ucConsultant.NewCreateConsultant(in.Consultants, in.Audit)
	deleteConsultantUC := ucConsultant.NewDeleteConsultant(in.Consultants, in.Audit)
	listConsultantsUC := ucConsultant.NewListConsultants(in.Consultants)
	createSlotUC := ucConsultant.NewCreateSlot(in.Consultants)
	assignSlotUC := ucConsultant.NewAssignSlot(in.Consultants)

	createProgramUC := ucSurvey.NewCreateProgram(in.Surveys)
	createSurveyUC := ucSurvey.NewCreateSurvey(in.Surveys, in.Audit)
	getSurveyUC := ucSurvey.NewGetSurvey(in.Surveys)
	reviseSurveyUC := ucSurvey.NewReviseSurvey(in.Surveys, in.Audit)
	submitResponseUC := ucSurvey.NewSubmitResponse(in.Surveys)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	meHandler := handlers.NewMeHandler(getMeUC, avatarUC)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		deleteBookingUC,
		listBookingsUC,
		checkAvailabilityUC,
	)

	consultantHandler := handlers.NewConsultantHandler(
		createConsultantUC,
		deleteConsultantUC,
		listConsultantsUC,
		createSlotUC,
		assignSlotUC,
	)

	surveyHandler := handlers.NewSurveyHandler(
		createProgramUC,
		createSurveyUC,
		getSurveyUC,
		reviseSurveyUC,
		submitResponseUC,
	)

	admin := middleware.RequireRole(models.RoleAdmin)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		authAPI.Use(middleware.NewRateLimiter(cfg.RateLimitPerMin).Middleware())
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(in.Tokens))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)

			// BOOKINGS
			secured.GET("/bookings/availability", bookingHandler.Availability)
			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", middleware.RequireRole(models.RoleMember), bookingHandler.Create)
			secured.PATCH("/bookings/:id",
				middleware.RequireRole(models.RoleConsultant, models.RoleAdmin),
				bookingHandler.Update,
			)
			secured.DELETE("/bookings/:id", admin, bookingHandler.Delete)

			// CONSULTANTS / SLOTS
			secured.GET("/consultants", consultantHandler.List)
			secured.POST("/consultants", admin, consultantHandler.Create)
			secured.DELETE("/consultants/:id", admin, consultantHandler.Delete)
			secured.POST("/consultants/:id/slots",
				middleware.RequireRole(models.RoleConsultant, models.RoleAdmin),
				consultantHandler.AssignSlot,
			)
			secured.POST("/slots", admin, consultantHandler.CreateSlot)

			// PROGRAMS / SURVEYS
			secured.POST("/programs", admin, surveyHandler.CreateProgram)
			secured.POST("/surveys", admin, surveyHandler.Create)
			secured.GET("/surveys/:id", surveyHandler.Get)
			secured.PUT("/surveys/:id/questions", admin, surveyHandler.ReviseQuestions)
			secured.POST("/surveys/:id/responses", surveyHandler.SubmitResponse)

			// AUDIT
			if in.DB != nil {
				auditLogsHandler := handlers.NewAuditLogsHandler(in.DB, in.Clock)
				secured.GET("/audit-logs", admin, auditLogsHandler.List)
			}
		}
	}
}
