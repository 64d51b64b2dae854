package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/killyross/barbershop-booking/internal/audit"
	"github.com/killyross/barbershop-booking/internal/config"
	domain "github.com/killyross/barbershop-booking/internal/domain/booking"
	"github.com/killyross/barbershop-booking/internal/handlers"
	"github.com/killyross/barbershop-booking/internal/infra/cache"
	infraRepo "github.com/killyross/barbershop-booking/internal/infra/repository"
	"github.com/killyross/barbershop-booking/internal/middleware"
	"github.com/killyross/barbershop-booking/internal/notify"
	"github.com/killyross/barbershop-booking/internal/phonecheck"
	ucBooking "github.com/killyross/barbershop-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	var repo domain.Repository = infraRepo.NewBookingGormRepository(db)
	if rdb != nil {
		repo = cache.NewCachedRepository(repo, rdb)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var senders []notify.Sender
	if cfg.SendSMS && cfg.TwilioAccountSID != "" {
		senders = append(senders, notify.NewTwilioSender(
			cfg.TwilioAccountSID,
			cfg.TwilioAuthToken,
			cfg.TwilioFrom,
		))
	}
	if cfg.SMTPHost != "" && cfg.OwnerEmail != "" {
		senders = append(senders, notify.NewMailSender(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPass,
			cfg.OwnerEmail,
		))
	}
	notifier := notify.NewDispatcher(senders...)

	var validator phonecheck.Validator
	if cfg.ValidatePhone && cfg.NumVerifyAPIKey != "" {
		validator = phonecheck.NewNumVerifyClient(cfg.NumVerifyAPIKey)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	bookingViewUC := ucBooking.NewGetBookingView(repo)

	createReservationUC := ucBooking.NewCreateReservation(
		repo,
		validator,
		notifier,
		auditDispatcher,
		ucBooking.Capabilities{
			SendSMS:       cfg.SendSMS,
			ValidatePhone: cfg.ValidatePhone,
		},
		cfg.CountryCode,
	)

	confirmReservationUC := ucBooking.NewConfirmReservation(repo, auditDispatcher)
	deleteReservationUC := ucBooking.NewDeleteReservation(repo, auditDispatcher)
	listReservationsUC := ucBooking.NewListBarberReservations(repo)
	statisticsUC := ucBooking.NewGetStatistics(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(db, cfg.Timezone, bookingViewUC, createReservationUC)
	reservationHandler := handlers.NewReservationHandler(
		cfg.Timezone,
		listReservationsUC,
		confirmReservationUC,
		deleteReservationUC,
	)

	barberHandler := handlers.NewBarberHandler(db, auditDispatcher)
	customerHandler := handlers.NewCustomerHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db)
	statsHandler := handlers.NewStatsHandler(cfg.Timezone, statisticsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/booking-view", publicHandler.BookingView)
			publicAPI.POST("/reservations", publicHandler.CreateReservation)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (barbeiro autenticado)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/reservations", reservationHandler.List)
			secured.PATCH("/me/reservations/:id/confirm", reservationHandler.Confirm)
			secured.DELETE("/me/reservations/:id", reservationHandler.Delete)

			secured.GET("/me/statistics", statsHandler.Get)

			// ------------------------------
			// GESTÃO (apenas dono)
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireOwner())
			{
				owner.GET("/me/barbers", barberHandler.List)
				owner.POST("/me/barbers", barberHandler.Create)
				owner.PATCH("/me/barbers/:id", barberHandler.Update)
				owner.DELETE("/me/barbers/:id", barberHandler.Delete)

				owner.GET("/me/customers", customerHandler.List)
				owner.PATCH("/me/customers/:id/ban", customerHandler.SetBanned)
				owner.DELETE("/me/customers/:id", customerHandler.Delete)

				owner.GET("/me/services", serviceHandler.List)
				owner.POST("/me/services", serviceHandler.Create)
				owner.PATCH("/me/services/:id", serviceHandler.Update)
				owner.DELETE("/me/services/:id", serviceHandler.Delete)

				owner.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
