package courseController

import (
	"holistica/database"
	"holistica/middleware"
	"holistica/models"
	courseValidator "holistica/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a new course (admin only, enforced in routing)
func CreateCourse(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		Duration:    reqData.Duration,
		Category:    reqData.Category,
		Type:        reqData.Type,
		StartDate:   reqData.StartDate,
		EndDate:     reqData.EndDate,
		CreatedBy:   userID,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al crear el curso", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Curso creado correctamente",
		"courseId": course.ID,
	})
}

// UpdateCourse applies only the fields present in the body; last write wins
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso no encontrado")
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Duration != nil {
		course.Duration = *reqData.Duration
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.Type != "" {
		course.Type = reqData.Type
	}
	if reqData.StartDate != "" {
		course.StartDate = reqData.StartDate
	}
	if reqData.EndDate != "" {
		course.EndDate = reqData.EndDate
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al actualizar el curso", err)
	}

	return c.Status(fiber.StatusOK).JSON(course)
}

// DeleteCourse soft deletes a course
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso no encontrado")
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al eliminar el curso", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Curso eliminado correctamente",
	})
}
