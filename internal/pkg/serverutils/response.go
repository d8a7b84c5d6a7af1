package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type BaseResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{Message: message, Data: data}
}

// ErrorHandlerMiddleware turns errors escaping a handler into plain HTTP
// error responses. The panel is server rendered, so the body is text, not
// JSON.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Erro interno do servidor."
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}
		return c.Status(code).SendString(message)
	}
}
