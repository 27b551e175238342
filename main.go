package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/handlers"
	"catalog/internal/logger"
	"catalog/internal/metrics"
	"catalog/internal/middleware"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DatabaseDriver).Msg("failed to open database")
	}

	// --- Domain events (optional) ---
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		events = mqClient
	} else {
		log.Info().Msg("RABBITMQ_URL not set, catalog events are disabled")
	}

	if cfg.SeedData {
		if err := seed(db); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
		log.Info().Msg("seeded sample merchants and items")
	}

	app := NewApp(cfg, db, events, log)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", cfg.AppPort).Msg("starting server")
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("error during fiber shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server gracefully stopped")
}

// NewApp builds the fiber application. events may be nil.
func NewApp(cfg *config.Config, db *gorm.DB, events services.EventPublisher, log zerolog.Logger) *fiber.App {
	errHandler := handlers.ErrorHandler(cfg.LegacyEnvelopes, log)
	app := fiber.New(fiber.Config{
		AppName:      "catalog",
		ErrorHandler: errHandler,
	})

	m := metrics.New()

	// --- Middleware ---
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log, m, errHandler))
	app.Use(recover.New())

	// --- Repositories, services and handlers ---
	itemRepo := repositories.NewGORMItemRepository(db)
	merchantRepo := repositories.NewGORMMerchantRepository(db)

	itemService := services.NewItemService(itemRepo, merchantRepo, events, log)
	merchantService := services.NewMerchantService(merchantRepo, itemRepo, events, log)

	apiV1 := app.Group("/api/v1")
	handlers.NewItemHandler(itemService).RegisterRoutes(apiV1)
	handlers.NewMerchantHandler(merchantService).RegisterRoutes(apiV1)

	// --- Health and metrics ---
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			log.Warn().Err(err).Msg("health check failed")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	return app
}
