package courseController

import (
	"holistica/database"
	"holistica/middleware"
	"holistica/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists courses, optionally filtered by category
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	var courses []models.Course
	if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al obtener los cursos", err)
	}

	return c.Status(fiber.StatusOK).JSON(courses)
}

// GetCourse returns one course by id
func GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso no encontrado")
	}

	return c.Status(fiber.StatusOK).JSON(course)
}
