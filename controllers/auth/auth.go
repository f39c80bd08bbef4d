package authController

import (
	"log"
	"time"

	"holistica/config"
	"holistica/database"
	"holistica/middleware"
	"holistica/models"
	"holistica/utils"
	authValidator "holistica/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new student account
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	db := database.Database.Db

	// Exact-match duplicate check on email
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "El email ya está registrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al registrar el usuario", err)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Lastname: reqData.Lastname,
		Email:    reqData.Email,
		Phone:    reqData.Phone,
		Dni:      reqData.Dni,
		Address:  reqData.Address,
		Password: string(hashedPassword),
		RoleID:   models.RoleStudent,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al registrar el usuario", err)
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.Name)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Usuario registrado correctamente",
		"userId":  newUser.ID,
	})
}

// Login checks credentials and issues a bearer token. Unknown email and wrong
// password surface the same generic message.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	user.LastLogin = time.Now()
	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.RoleID)
	if err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al generar el token", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Inicio de sesión exitoso",
		"token":   token,
		"user":    user.Public(),
	})
}

// Logout is a stateless no-op; tokens stay valid until they expire
func Logout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Sesión cerrada correctamente",
	})
}

// ResetPassword changes the authenticated user's password
func ResetPassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No autenticado")
	}

	reqData, ok := c.Locals("validatedResetPassword").(*authValidator.ResetPasswordRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.CurrentPassword)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "La contraseña actual es incorrecta")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al actualizar la contraseña", err)
	}

	user.Password = string(hashedPassword)
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al actualizar la contraseña", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Contraseña actualizada correctamente",
	})
}
