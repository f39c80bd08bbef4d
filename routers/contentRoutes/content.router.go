package contentRoutes

import (
	contentController "holistica/controllers/content"
	"holistica/middleware"
	"holistica/models"

	"github.com/gofiber/fiber/v2"
)

func SetupContentRoutes(app *fiber.App) {
	contentGroup := app.Group("/api/contents")

	contentGroup.Get("/", middleware.JWTMiddleware, contentController.GetContents)

	contentGroup.Post("/", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), contentController.CreateContent)
	contentGroup.Put("/:id", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), contentController.UpdateContent)
	contentGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), contentController.DeleteContent)
}
