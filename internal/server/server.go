package server

import (
	"log"

	"rlc-hub-be/internal/bootstrap"
	"rlc-hub-be/internal/config"
	"rlc-hub-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, bounded by the archive upload size
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Static
	app.Static("/uploads", cfg.App.UploadDir)

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)

	c.ProjectController.RegisterRoutes(api)
	c.IntegrationEventController.RegisterRoutes(api)
	c.KeyDecisionController.RegisterRoutes(api)
	c.KnowledgeGapController.RegisterRoutes(api)

	c.ArchiveController.RegisterRoutes(api)
	c.CoachController.RegisterRoutes(api)
	c.ReportController.RegisterRoutes(api)

	c.TenantController.RegisterRoutes(api)
	c.UsageController.RegisterRoutes(api)
	c.AdminUserController.RegisterRoutes(api)
	c.FeedbackController.RegisterRoutes(api)
	c.BillingController.RegisterRoutes(api)
}
