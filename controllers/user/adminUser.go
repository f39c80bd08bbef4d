package userController

import (
	"log"
	"strconv"

	"holistica/config"
	"holistica/database"
	"holistica/middleware"
	"holistica/models"
	authValidator "holistica/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// ListUsers returns all non-deleted users (admin only)
func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al obtener los usuarios", err)
	}

	public := make([]models.PublicUser, len(users))
	for i, u := range users {
		public[i] = u.Public()
	}

	return c.Status(fiber.StatusOK).JSON(public)
}

// GetUser returns one user by id (admin only)
func GetUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "ID de usuario inválido")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	return c.Status(fiber.StatusOK).JSON(user.Public())
}

type adminCreateUserRequest struct {
	authValidator.RegisterRequest
	RoleID uint `json:"role_id"`
}

// CreateUser lets an admin create an account with a chosen role
func CreateUser(c *fiber.Ctx) error {
	reqData := new(adminCreateUserRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	errors := make(map[string]string)
	if reqData.Email == "" {
		errors["email"] = "Email inválido"
	}
	if len(reqData.Password) < 6 {
		errors["password"] = "La contraseña debe tener al menos 6 caracteres"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "El email ya está registrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al crear el usuario", err)
	}

	roleID := reqData.RoleID
	if roleID != models.RoleAdmin {
		roleID = models.RoleStudent
	}

	newUser := models.User{
		Name:     reqData.Name,
		Lastname: reqData.Lastname,
		Email:    reqData.Email,
		Phone:    reqData.Phone,
		Dni:      reqData.Dni,
		Address:  reqData.Address,
		Password: string(hashedPassword),
		RoleID:   roleID,
	}
	if err := db.Create(&newUser).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al crear el usuario", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Usuario creado correctamente",
		"userId":  newUser.ID,
	})
}

// DeleteUser soft deletes a user (admin only)
func DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "ID de usuario inválido")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	user.IsDeleted = true
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al eliminar el usuario", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Usuario eliminado correctamente",
	})
}
