package controller

import (
	"errors"
	"net/url"
	"strconv"

	"app-catalog-be/internal/dto"
	"app-catalog-be/internal/entity"
	"app-catalog-be/internal/pkg/serverutils"
	"app-catalog-be/internal/pkg/uploads"
	"app-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAppController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
	NewForm(ctx *fiber.Ctx) error
	EditForm(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	DeleteImage(ctx *fiber.Ctx) error
	Rebuild(ctx *fiber.Ctx) error
}

type appController struct {
	appService    service.IAppService
	staticService service.IStaticSiteService
	storage       *uploads.Storage
	authMW        fiber.Handler
}

func NewAppController(
	appService service.IAppService,
	staticService service.IStaticSiteService,
	storage *uploads.Storage,
	authMW fiber.Handler,
) IAppController {
	return &appController{
		appService:    appService,
		staticService: staticService,
		storage:       storage,
		authMW:        authMW,
	}
}

func (c *appController) RegisterRoutes(r fiber.Router) {
	r.Get("/painel", c.authMW, c.Dashboard)
	r.Get("/new", c.authMW, c.NewForm)
	r.Get("/edit/:slug", c.authMW, c.EditForm)
	r.Post("/save", c.authMW, c.Save)
	r.Get("/delete/:slug", c.authMW, c.Delete)
	r.Get("/delete-image/:slug/:imgName", c.authMW, c.DeleteImage)
	r.Post("/rebuild", c.authMW, c.Rebuild)
}

func (c *appController) Dashboard(ctx *fiber.Ctx) error {
	return ctx.Render("dashboard", fiber.Map{
		"Title": "Painel",
		"Apps":  c.appService.GetAll(),
	})
}

func (c *appController) NewForm(ctx *fiber.Ctx) error {
	app := &entity.App{CompatibleDevices: entity.AllDevices()}
	return ctx.Render("form", fiber.Map{
		"Title":      "Novo App",
		"App":        app,
		"IsNew":      true,
		"AllDevices": entity.AllDevices(),
		"Checked":    deviceSet(app.CompatibleDevices),
	})
}

func (c *appController) EditForm(ctx *fiber.Ctx) error {
	app, ok := c.appService.Get(ctx.Params("slug"))
	if !ok {
		return fiber.ErrNotFound
	}
	return ctx.Render("form", fiber.Map{
		"Title":      "Editar " + app.Name,
		"App":        app,
		"IsNew":      false,
		"AllDevices": entity.AllDevices(),
		"Checked":    deviceSet(app.CompatibleDevices),
	})
}

func deviceSet(devices []string) map[string]bool {
	set := make(map[string]bool, len(devices))
	for _, d := range devices {
		set[d] = true
	}
	return set
}

func (c *appController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveAppRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	req.Tutorials = tutorialRows(ctx)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	files, err := c.storage.SaveForm(ctx, req.Name)
	if err != nil {
		return err
	}

	if _, err := c.appService.Save(ctx.Context(), &req, files); err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			return fiber.NewError(fiber.StatusBadRequest, "Nome do app é obrigatório.")
		case errors.Is(err, service.ErrSlugTaken):
			return fiber.NewError(fiber.StatusConflict, "Slug já utilizado por outro app.")
		}
		return err
	}
	return ctx.Redirect("/painel")
}

func (c *appController) Delete(ctx *fiber.Ctx) error {
	if err := c.appService.Delete(ctx.Context(), ctx.Params("slug")); err != nil {
		if errors.Is(err, service.ErrAppNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	return ctx.Redirect("/painel")
}

func (c *appController) DeleteImage(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")
	imgName, err := url.PathUnescape(ctx.Params("imgName"))
	if err != nil || imgName == "" {
		return fiber.ErrBadRequest
	}

	if err := c.appService.DeleteImage(ctx.Context(), slug, imgName); err != nil {
		if errors.Is(err, service.ErrAppNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	return ctx.Redirect("/edit/" + slug)
}

func (c *appController) Rebuild(ctx *fiber.Ctx) error {
	if err := c.staticService.RebuildAll(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao reconstruir o site.")
	}
	return ctx.Redirect("/painel")
}

// tutorialRows zips the edit form's positional tutorial fields into ordered
// structured rows. Index alignment lives here and nowhere else.
func tutorialRows(ctx *fiber.Ctx) []dto.TutorialInput {
	form, err := ctx.MultipartForm()
	if err != nil || form == nil {
		return nil
	}

	titles := form.Value["tutorial_title"]
	urls := form.Value["tutorial_url"]
	descriptions := form.Value["tutorial_description"]
	icons := form.Value["tutorial_icon"]
	videoFlags := form.Value["tutorial_is_video"]

	n := len(titles)
	if len(urls) > n {
		n = len(urls)
	}

	rows := make([]dto.TutorialInput, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, dto.TutorialInput{
			Title:       valueAt(titles, i),
			Url:         valueAt(urls, i),
			Description: valueAt(descriptions, i),
			Icon:        valueAt(icons, i),
			IsVideo:     parseBool(valueAt(videoFlags, i)),
		})
	}
	return rows
}

func valueAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
