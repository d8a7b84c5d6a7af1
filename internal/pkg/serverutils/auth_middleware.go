package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AdminCookie is the cookie carrying the signed admin session token.
const AdminCookie = "admin_token"

// AuthRequired checks the admin JWT from Cookie("admin_token") or an
// Authorization: Bearer header and redirects unauthenticated browsers to the
// login page.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(AdminCookie)
		if token == "" {
			authz := c.Get("Authorization")
			if strings.HasPrefix(authz, "Bearer ") {
				token = strings.TrimPrefix(authz, "Bearer ")
			}
		}
		if token == "" {
			return c.Redirect("/login")
		}

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			return c.Redirect("/login")
		}

		if claims, ok := parsed.Claims.(jwt.MapClaims); ok {
			c.Locals("role", claims["role"])
		}
		return c.Next()
	}
}
