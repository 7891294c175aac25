package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"productos/internal/config"
	"productos/internal/database"
	"productos/internal/handlers"
	"productos/internal/models"
	"productos/internal/repositories"
	"productos/internal/services"
	"productos/pkg/logger"
	"productos/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().Str("env", cfg.App.Env).Str("db_driver", cfg.DB.Driver).Msg("starting productos API")

	// --- Initialize Repository ---
	var productRepo repositories.ProductRepository
	var healthCheck func() error
	if cfg.DB.Driver == "memory" {
		productRepo = repositories.NewMemoryProductRepository()
	} else {
		db, err := database.Open(cfg.DB, cfg.App.LogLevel == "debug")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize database")
		}
		defer database.Close(db)
		productRepo = repositories.NewGORMProductRepository(db)
		healthCheck = func() error { return database.Ping(db) }
	}

	if cfg.App.SeedProducts {
		seedProducts(productRepo, log)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQ.Enabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Exchange: cfg.RabbitMQ.Exchange}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Info().Msg("RABBITMQ_URL not set, product events disabled")
	}

	// --- Initialize Service and Handler ---
	productService := services.NewProductService(productRepo, publisher, log)
	productHandler := handlers.NewProductHandler(productService, log)

	app := newApp(productHandler, healthCheck, log)

	// --- Start HTTP Server ---
	log.Info().Str("addr", cfg.App.Port).Msg("starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.App.Port); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("error during fiber shutdown")
	}
	log.Info().Msg("server gracefully stopped")
}

// newApp wires middleware, the health endpoint and the product routes.
// healthCheck may be nil when there is no database to ping.
func newApp(productHandler *handlers.ProductHandler, healthCheck func() error, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "productos",
		ErrorHandler: handlers.ErrorHandler(log),
	})

	app.Use(recover.New())
	if log.Level() <= zerolog.InfoLevel {
		app.Use(fiberlogger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if healthCheck != nil {
			if err := healthCheck(); err != nil {
				log.Warn().Err(err).Msg("database health check failed")
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status":   "unhealthy",
					"time":     time.Now().Format(time.RFC3339),
					"database": "down",
				})
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "up",
		})
	})

	productHandler.RegisterRoutes(app.Group("/api"))
	return app
}

// seedProducts populates an empty repository with some initial data.
func seedProducts(repo repositories.ProductRepository, log *logger.Logger) {
	existing, err := repo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing products before seeding")
		return
	}
	if len(existing) > 0 {
		return
	}

	laptop := "Laptop con procesador Intel Core i5, 8GB RAM, 256GB SSD"
	remera := "Remera deportiva talle M"
	products := []models.Product{
		{Name: "Laptop Dell Inspiron 15", Description: &laptop, Price: 45999.99, Stock: 25, Category: models.CategoryElectronica},
		{Name: "Remera Nike Deportiva", Description: &remera, Price: 8500.50, Stock: 100, Category: models.CategoryRopa},
		{Name: "Mouse Logitech", Price: 3500.00, Stock: 50, Category: models.CategoryElectronica},
	}

	for i := range products {
		if err := repo.Save(&products[i]); err != nil {
			log.Error().Err(err).Str("name", products[i].Name).Msg("error seeding product")
			continue
		}
		log.Info().Uint("id", products[i].ID).Str("name", products[i].Name).Msg("seeded product")
	}
}
