package userRoutes

import (
	userController "holistica/controllers/user"
	"holistica/middleware"
	"holistica/models"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Get("/me", middleware.JWTMiddleware, userController.Me)
	userGroup.Put("/me", middleware.JWTMiddleware, userController.UpdateMe)

	// Admin user management
	userGroup.Get("/", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), userController.ListUsers)
	userGroup.Post("/", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), userController.CreateUser)
	userGroup.Get("/:id", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), userController.GetUser)
	userGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), userController.DeleteUser)
}
