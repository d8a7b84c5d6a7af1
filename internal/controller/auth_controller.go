package controller

import (
	"errors"
	"time"

	"app-catalog-be/internal/dto"
	"app-catalog-be/internal/pkg/serverutils"
	"app-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	LoginPage(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	limiter *serverutils.LoginLimiter
}

func NewAuthController(service service.IAuthService, limiter *serverutils.LoginLimiter) IAuthController {
	return &authController{service: service, limiter: limiter}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Get("/login", c.LoginPage)
	r.Post("/login", c.Login)
	r.Get("/logout", c.Logout)
}

func (c *authController) LoginPage(ctx *fiber.Ctx) error {
	return ctx.Render("login", fiber.Map{"Title": "Login"})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	ip := ctx.IP()
	if c.limiter.Blocked(ip) {
		return fiber.NewError(fiber.StatusTooManyRequests, "Muitas tentativas. Tente novamente mais tarde.")
	}

	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	token, err := c.service.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.limiter.Fail(ip)
			return ctx.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
				"Title": "Login",
				"Error": "Senha incorreta.",
			})
		}
		return err
	}

	c.limiter.Reset(ip)
	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.AdminCookie,
		Value:    token,
		Expires:  time.Now().Add(c.service.SessionDuration()),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return ctx.Redirect("/painel")
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.AdminCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return ctx.Redirect("/login")
}
