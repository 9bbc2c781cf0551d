package main

import (
	"log"

	"github.com/kikao/booking-service/config"
	"github.com/kikao/booking-service/internal/consumer"
	"github.com/kikao/booking-service/internal/handler"
	"github.com/kikao/booking-service/internal/middleware"
	"github.com/kikao/booking-service/internal/repository"
	"github.com/kikao/booking-service/internal/service"
	"github.com/kikao/booking-service/internal/validation"
	"github.com/kikao/booking-service/pkg/database"
	"github.com/kikao/booking-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ consumer: sync listings from the Listing Service
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	listingConsumer := consumer.NewListingConsumer(db)
	listingConsumer.Start(msgs)

	// RabbitMQ publisher: booking.* notifications
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	bookingRepo := repository.NewBookingRepository(db)
	bookingSvc := service.NewBookingService(bookingRepo, publisher)

	e := echo.New()
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
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
		return c.JSON(200, map[string]string{"status": "ok", "service": "booking-service"})
	})

	bookings := e.Group("/api/v1/bookings", middleware.Auth(cfg.JWTSecret))
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(bookings)

	log.Printf("Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
