package contentController

import (
	"strconv"
	"strings"

	"holistica/database"
	"holistica/middleware"
	"holistica/models"

	"github.com/gofiber/fiber/v2"
)

type contentRequest struct {
	CourseID uint   `json:"course_id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	URL      string `json:"url"`
}

// GetContents lists course contents, optionally filtered by course
func GetContents(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if courseID := c.QueryInt("course_id"); courseID > 0 {
		db = db.Where("course_id = ?", courseID)
	}

	var contents []models.Content
	if err := db.Order("created_at asc").Find(&contents).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al obtener los contenidos", err)
	}

	return c.Status(fiber.StatusOK).JSON(contents)
}

// CreateContent attaches a multimedia resource to a course (admin only)
func CreateContent(c *fiber.Ctx) error {
	reqData := new(contentRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	errors := make(map[string]string)
	if reqData.CourseID == 0 {
		errors["course_id"] = "El curso es obligatorio"
	}
	if strings.TrimSpace(reqData.Title) == "" {
		errors["title"] = "El título es obligatorio"
	}
	if strings.TrimSpace(reqData.URL) == "" {
		errors["url"] = "La URL es obligatoria"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso no encontrado")
	}

	content := models.Content{
		CourseID: reqData.CourseID,
		Title:    reqData.Title,
		Type:     reqData.Type,
		URL:      reqData.URL,
	}
	if err := database.Database.Db.Create(&content).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al crear el contenido", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Contenido creado correctamente",
		"contentId": content.ID,
	})
}

// UpdateContent applies present fields to a content row (admin only)
func UpdateContent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "ID de contenido inválido")
	}

	var content models.Content
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&content).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Contenido no encontrado")
	}

	reqData := new(contentRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	if reqData.Title != "" {
		content.Title = reqData.Title
	}
	if reqData.Type != "" {
		content.Type = reqData.Type
	}
	if reqData.URL != "" {
		content.URL = reqData.URL
	}

	if err := database.Database.Db.Save(&content).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al actualizar el contenido", err)
	}

	return c.Status(fiber.StatusOK).JSON(content)
}

// DeleteContent soft deletes a content row (admin only)
func DeleteContent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "ID de contenido inválido")
	}

	var content models.Content
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&content).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Contenido no encontrado")
	}

	content.IsDeleted = true
	if err := database.Database.Db.Save(&content).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al eliminar el contenido", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Contenido eliminado correctamente",
	})
}
