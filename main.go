package main

import (
	"log"

	"github.com/Breezy-Reese/hotel/config"
	"github.com/Breezy-Reese/hotel/internal/auth"
	"github.com/Breezy-Reese/hotel/internal/handler"
	"github.com/Breezy-Reese/hotel/internal/middleware"
	"github.com/Breezy-Reese/hotel/internal/repository"
	"github.com/Breezy-Reese/hotel/internal/service"
	"github.com/Breezy-Reese/hotel/internal/validation"
	"github.com/Breezy-Reese/hotel/pkg/database"
	"github.com/Breezy-Reese/hotel/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ publisher: booking.* / payment.* events for downstream consumers
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, events disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	tokenStore := auth.NewRedisTokenStore(cfg.RedisAddr)
	defer tokenStore.Close()
	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL, tokenStore)

	// Repositories
	roomRepo := repository.NewRoomRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, serviceRepo, guestRepo, publisher)
	paymentSvc := service.NewPaymentService(paymentRepo, bookingRepo, publisher)
	catalogSvc := service.NewCatalogService(roomRepo, serviceRepo, bookingRepo)
	authSvc := service.NewAuthService(adminRepo, tokens)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = validation.New()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "hotel-booking"})
	})

	api := e.Group("/api/v1")
	admin := api.Group("/admin")
	guarded := admin.Group("", middleware.AdminAuth(tokens))

	handler.NewAuthHandler(authSvc).RegisterRoutes(admin, guarded)
	handler.NewCatalogHandler(catalogSvc).RegisterRoutes(api, guarded)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api, guarded)
	handler.NewPaymentHandler(paymentSvc).RegisterRoutes(api)

	log.Printf("Hotel Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
