package courseRoutes

import (
	courseController "holistica/controllers/course"
	"holistica/middleware"
	"holistica/models"
	courseValidator "holistica/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/", middleware.JWTMiddleware, courseController.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, courseValidator.CourseID(), courseController.GetCourse)

	// Mutations are admin only
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), courseValidator.CreateCourse(), courseController.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), courseValidator.CourseID(), courseValidator.UpdateCourse(), courseController.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AllowRoles(models.RoleAdmin), courseValidator.CourseID(), courseController.DeleteCourse)
}
