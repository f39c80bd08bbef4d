package userController

import (
	"strings"

	"holistica/database"
	"holistica/middleware"
	"holistica/models"

	"github.com/gofiber/fiber/v2"
)

// Me returns the authenticated user's public profile
func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No autenticado")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	return c.Status(fiber.StatusOK).JSON(user.Public())
}

type updateMeRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// UpdateMe updates the whitelisted self-service profile fields. Email, dni
// and role cannot be changed here.
func UpdateMe(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No autenticado")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	reqData := new(updateMeRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	if strings.TrimSpace(reqData.Name) != "" {
		user.Name = reqData.Name
	}
	if strings.TrimSpace(reqData.Lastname) != "" {
		user.Lastname = reqData.Lastname
	}
	if reqData.Phone != "" {
		user.Phone = reqData.Phone
	}
	if reqData.Address != "" {
		user.Address = reqData.Address
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al actualizar el perfil", err)
	}

	return c.Status(fiber.StatusOK).JSON(user.Public())
}
