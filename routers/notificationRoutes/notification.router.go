package notificationRoutes

import (
	notificationController "holistica/controllers/notification"
	"holistica/middleware"
	"holistica/models"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/api/notifications")

	notificationGroup.Get("/", middleware.JWTMiddleware, notificationController.GetNotifications)
	notificationGroup.Post("/", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), notificationController.CreateNotification)
	notificationGroup.Put("/:id/read", middleware.JWTMiddleware, notificationController.MarkRead)
}
