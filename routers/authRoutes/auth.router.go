package authRoutes

import (
	authController "holistica/controllers/auth"
	"holistica/middleware"
	authValidator "holistica/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/logout", authController.Logout)
	authGroup.Post("/reset-password", authValidator.ResetPassword(), middleware.JWTMiddleware, authController.ResetPassword)
}
