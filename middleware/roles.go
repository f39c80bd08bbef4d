package middleware

import "github.com/gofiber/fiber/v2"

// AllowRoles returns a middleware that permits only the given role ids.
// It must run after JWTMiddleware.
func AllowRoles(roles ...uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleID, ok := c.Locals("roleId").(uint)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "No autenticado")
		}

		for _, role := range roles {
			if roleID == role {
				return c.Next()
			}
		}

		return ErrorResponse(c, fiber.StatusForbidden, "No tiene permisos para acceder a este recurso")
	}
}
