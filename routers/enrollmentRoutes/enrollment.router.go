package enrollmentRoutes

import (
	enrollmentController "holistica/controllers/enrollment"
	"holistica/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/api/enrollments")

	enrollmentGroup.Post("/", middleware.JWTMiddleware, enrollmentController.Enroll)
	enrollmentGroup.Get("/my-enrollments", middleware.JWTMiddleware, enrollmentController.MyEnrollments)
}
