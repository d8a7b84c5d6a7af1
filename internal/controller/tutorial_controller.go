package controller

import (
	"errors"

	"app-catalog-be/internal/dto"
	"app-catalog-be/internal/pkg/serverutils"
	"app-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITutorialController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type tutorialController struct {
	service service.ITutorialService
	authMW  fiber.Handler
}

func NewTutorialController(service service.ITutorialService, authMW fiber.Handler) ITutorialController {
	return &tutorialController{service: service, authMW: authMW}
}

func (c *tutorialController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/painel/tutoriais", c.authMW)
	h.Get("", c.List)
	h.Post("/save", c.Save)
	h.Get("/delete/:id", c.Delete)
}

func (c *tutorialController) List(ctx *fiber.Ctx) error {
	return ctx.Render("tutorials_admin", fiber.Map{
		"Title":     "Tutoriais",
		"Tutorials": c.service.GetAll(),
	})
}

func (c *tutorialController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveTutorialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if _, err := c.service.Save(ctx.Context(), &req); err != nil {
		if errors.Is(err, service.ErrTutorialNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	return ctx.Redirect("/painel/tutoriais")
}

func (c *tutorialController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		if errors.Is(err, service.ErrTutorialNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	return ctx.Redirect("/painel/tutoriais")
}
