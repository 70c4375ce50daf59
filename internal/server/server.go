package server

import (
	"time"

	"catalog/internal/handlers"
	"catalog/internal/ratelimit"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Options are the services behind the HTTP API. SeedService and
// LoginLimiter are optional.
type Options struct {
	AuthService    *services.AuthService
	ProductService *services.ProductService
	FileService    *services.FileService
	SeedService    *services.SeedService
	LoginLimiter   ratelimit.Limiter
	RequestLog     bool
	Checks         map[string]func() string
}

// New builds the Fiber app with every route mounted under /api.
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "catalog",
		UnescapePath: true,
	})

	app.Use(recover.New())
	if opts.RequestLog {
		app.Use(logger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		body := fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		}
		for name, check := range opts.Checks {
			body[name] = check()
		}
		return c.Status(fiber.StatusOK).JSON(body)
	})

	api := app.Group("/api")

	handlers.NewAuthHandler(opts.AuthService, opts.LoginLimiter).RegisterRoutes(api)
	handlers.NewProductHandler(opts.ProductService, opts.AuthService).RegisterRoutes(api)
	handlers.NewFileHandler(opts.FileService).RegisterRoutes(api)
	if opts.SeedService != nil {
		handlers.NewSeedHandler(opts.SeedService, opts.AuthService).RegisterRoutes(api)
	}

	return app
}
