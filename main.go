package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"gorm.io/gorm"

	"vinylstore/internal/config"
	"vinylstore/internal/database"
	"vinylstore/internal/handlers"
	"vinylstore/internal/logging"
	"vinylstore/internal/middleware"
	"vinylstore/internal/models"
	"vinylstore/internal/repositories"
	"vinylstore/internal/services"
	"vinylstore/pkg/googleauth"
	"vinylstore/pkg/mailer"
	"vinylstore/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logs, err := logging.New(cfg.SystemLogPath, cfg.ControllerLogPath)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logs.Close()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := seedVinyls(db); err != nil {
		logs.System.Error("failed to seed catalog", "error", err)
	}

	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
	}
	defer mqClient.Close()

	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})

	gateway := services.NewStripeGateway(cfg.StripeSecretKey)
	oauthClient := googleauth.New(googleauth.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleCallbackURL,
	})

	app := newApp(cfg, logs, db, oauthClient, gateway, mqClient)

	if err := startEmailConsumer(mqClient, mail, logs); err != nil {
		log.Fatalf("Failed to start email consumer: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logs.System.Info("server starting", "port", cfg.AppPort, "env", cfg.Env)
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	logs.System.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logs.System.Error("error during shutdown", "error", err)
	}
	logs.System.Info("server stopped")
}

// newApp wires repositories, services, and handlers into a Fiber app. It is
// separated from main so tests can assemble the app over an in-memory
// database with fake gateway and publisher implementations.
func newApp(
	cfg *config.Config,
	logs *logging.Logs,
	db *gorm.DB,
	oauthClient *googleauth.Client,
	gateway services.PaymentGateway,
	publisher services.EventPublisher,
) *fiber.App {
	userRepo := repositories.NewGORMUserRepository(db)
	vinylRepo := repositories.NewGORMVinylRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, logs.System)
	vinylService := services.NewVinylService(vinylRepo, logs.System)
	reviewService := services.NewReviewService(reviewRepo, vinylRepo, logs.System)
	userService := services.NewUserService(userRepo, logs.System)
	paymentService := services.NewPaymentService(vinylRepo, userRepo, gateway, publisher, logs.System)
	adminService := services.NewAdminService(logs)

	app := fiber.New()
	app.Use(middleware.RequestLogger(authService, logs.Controller))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")
	handlers.NewAuthHandler(authService, oauthClient, cfg, logs.System).RegisterRoutes(api)
	handlers.NewVinylHandler(vinylService, authService, userRepo).RegisterRoutes(api)
	handlers.NewReviewHandler(reviewService, authService, userRepo).RegisterRoutes(api)
	handlers.NewUserHandler(userService, authService).RegisterRoutes(api)
	handlers.NewPaymentHandler(paymentService, authService).RegisterRoutes(api)
	handlers.NewAdminHandler(adminService, authService, userRepo).RegisterRoutes(api)

	return app
}

// startEmailConsumer drains the payment email queue and sends one
// confirmation email per event. Send failures are returned so the message is
// redelivered.
func startEmailConsumer(mqClient *rabbitmq.Client, mail *mailer.Mailer, logs *logging.Logs) error {
	return mqClient.Consume(rabbitmq.QueuePaymentEmails, func(msg amqp.Delivery) error {
		var event services.PaymentConfirmedEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			// A malformed message will never parse; drop it instead of
			// requeueing forever.
			logs.System.Error("dropping malformed payment event", "error", err)
			return nil
		}

		if err := mail.SendPaymentConfirmation(event.UserEmail, event.Amount, event.Currency, event.VinylName); err != nil {
			return fmt.Errorf("failed to send confirmation for intent %s: %w", event.IntentID, err)
		}
		logs.System.Info("payment confirmation sent", "email", event.UserEmail, "intent_id", event.IntentID)
		return nil
	})
}

// seedVinyls populates an empty catalog with a few starter records.
func seedVinyls(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Vinyl{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count vinyls: %w", err)
	}
	if count > 0 {
		return nil
	}

	vinyls := []models.Vinyl{
		{ID: uuid.NewString(), Name: "Kind of Blue", Artist: "Miles Davis", Description: "1959 modal jazz landmark", Price: 29.99},
		{ID: uuid.NewString(), Name: "Abbey Road", Artist: "The Beatles", Description: "1969 studio album, 2019 remaster pressing", Price: 34.99},
		{ID: uuid.NewString(), Name: "Rumours", Artist: "Fleetwood Mac", Description: "1977 classic on 180g vinyl", Price: 27.50},
	}
	if err := db.Create(&vinyls).Error; err != nil {
		return fmt.Errorf("failed to seed vinyls: %w", err)
	}
	return nil
}
