package reportRoutes

import (
	reportController "holistica/controllers/report"
	"holistica/middleware"
	"holistica/models"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	reportGroup := app.Group("/api/reports", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin))

	reportGroup.Get("/courses", reportController.CourseReport)
	reportGroup.Get("/financial", reportController.FinancialReport)
}
