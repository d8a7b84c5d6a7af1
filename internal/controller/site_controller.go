package controller

import (
	"os"
	"path/filepath"

	"app-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Path prefixes that can never be app slugs. The catch-all /:slug route is
// registered last, so only static-site names need listing here.
var reservedSlugs = map[string]bool{
	"painel":       true,
	"new":          true,
	"save":         true,
	"edit":         true,
	"delete":       true,
	"delete-image": true,
	"rebuild":      true,
	"login":        true,
	"logout":       true,
	"tutorial":     true,
	"uploads":      true,
	"apps":         true,
	"favicon.ico":  true,
}

type ISiteController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	Tutorials(ctx *fiber.Ctx) error
	AppPage(ctx *fiber.Ctx) error
}

// siteController serves the generated public pages. Pages are regenerated
// lazily when their file is missing, such as on a fresh data directory.
type siteController struct {
	staticService service.IStaticSiteService
	publicDir     string
	appsDir       string
}

func NewSiteController(staticService service.IStaticSiteService, publicDir, appsDir string) ISiteController {
	return &siteController{
		staticService: staticService,
		publicDir:     publicDir,
		appsDir:       appsDir,
	}
}

func (c *siteController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
	r.Get("/tutorial", c.Tutorials)
	r.Get("/:slug", c.AppPage)
}

func (c *siteController) Home(ctx *fiber.Ctx) error {
	path := filepath.Join(c.publicDir, "index.html")
	if _, err := os.Stat(path); err != nil {
		if err := c.staticService.GenerateHomePage(); err != nil {
			return err
		}
	}
	return ctx.SendFile(path)
}

func (c *siteController) Tutorials(ctx *fiber.Ctx) error {
	path := filepath.Join(c.publicDir, "tutorial", "index.html")
	if _, err := os.Stat(path); err != nil {
		if err := c.staticService.GenerateTutorialsPage(); err != nil {
			return err
		}
	}
	return ctx.SendFile(path)
}

func (c *siteController) AppPage(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")
	if slug == "" || reservedSlugs[slug] {
		return fiber.ErrNotFound
	}

	path := filepath.Join(c.appsDir, slug, "index.html")
	if _, err := os.Stat(path); err != nil {
		return fiber.ErrNotFound
	}
	return ctx.SendFile(path)
}
