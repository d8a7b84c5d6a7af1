package server

import (
	"log"

	"app-catalog-be/internal/bootstrap"
	"app-catalog-be/internal/config"
	"app-catalog-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	engine := html.New(cfg.Site.ViewsDir, ".html")

	app := fiber.New(fiber.Config{
		BodyLimit:   100 * 1024 * 1024, // tutorial videos go through /save
		Views:       engine,
		ViewsLayout: "layout",
	})

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Static
	app.Static("/uploads", cfg.Site.UploadsDir)
	app.Static("/apps", cfg.Site.AppsDir)

	// Routes
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
	log.Printf("✅ Server is running on http://%s:%s", s.cfg.App.Host, s.cfg.App.Port)
	return s.app.Listen(s.cfg.App.Host + ":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.AuthController.RegisterRoutes(app)
	c.AppController.RegisterRoutes(app)
	c.TutorialController.RegisterRoutes(app)
	c.SettingsController.RegisterRoutes(app)

	// Catch-all /:slug goes last.
	c.SiteController.RegisterRoutes(app)
}
