package controller

import (
	"app-catalog-be/internal/dto"
	"app-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type settingsController struct {
	service service.ISettingsService
	authMW  fiber.Handler
}

func NewSettingsController(service service.ISettingsService, authMW fiber.Handler) ISettingsController {
	return &settingsController{service: service, authMW: authMW}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/painel/config", c.authMW)
	h.Get("", c.Show)
	h.Post("", c.Update)
}

func (c *settingsController) Show(ctx *fiber.Ctx) error {
	return ctx.Render("settings", fiber.Map{
		"Title":    "Configurações",
		"Settings": c.service.Get(),
	})
}

func (c *settingsController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if _, err := c.service.Update(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.Redirect("/painel/config")
}
