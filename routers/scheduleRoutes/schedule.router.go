package scheduleRoutes

import (
	scheduleController "holistica/controllers/schedule"
	"holistica/middleware"
	"holistica/models"
	scheduleValidator "holistica/validators/schedule"

	"github.com/gofiber/fiber/v2"
)

func SetupScheduleRoutes(app *fiber.App) {
	scheduleGroup := app.Group("/api/schedules")

	scheduleGroup.Get("/", middleware.JWTMiddleware, scheduleController.GetSchedules)
	scheduleGroup.Get("/:id", middleware.JWTMiddleware, scheduleValidator.ScheduleID(), scheduleController.GetSchedule)

	scheduleGroup.Post("/", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), scheduleValidator.Schedule(), scheduleController.CreateSchedule)
	scheduleGroup.Put("/:id", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), scheduleValidator.ScheduleID(), scheduleValidator.Schedule(), scheduleController.UpdateSchedule)
	scheduleGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), scheduleValidator.ScheduleID(), scheduleController.DeleteSchedule)
}
