package enrollmentController

import (
	"time"

	"holistica/database"
	"holistica/middleware"
	"holistica/models"

	"github.com/gofiber/fiber/v2"
)

type enrollRequest struct {
	CourseID uint `json:"course_id"`
}

// Enroll inscribes the caller in a course without a payment. There is no
// duplicate check: enrolling twice creates two rows.
func Enroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No autenticado")
	}

	reqData := new(enrollRequest)
	if err := c.BodyParser(reqData); err != nil || reqData.CourseID == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "El curso es obligatorio")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso no encontrado")
	}

	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   course.ID,
		Status:     models.EnrollmentInscrito,
		EnrolledAt: time.Now(),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al crear la inscripción", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Inscripción creada correctamente",
		"enrollmentId": enrollment.ID,
	})
}

// MyEnrollments lists the caller's enrollments with their courses
func MyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No autenticado")
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Preload("Course").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al obtener las inscripciones", err)
	}

	return c.Status(fiber.StatusOK).JSON(enrollments)
}
