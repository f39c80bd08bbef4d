package authValidator

import (
	"regexp"
	"strings"

	"holistica/middleware"

	"github.com/gofiber/fiber/v2"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	dniRegex   = regexp.MustCompile(`^\d{8}$`)
)

// RegisterRequest is the registration payload stored in c.Locals after validation
type RegisterRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Dni      string `json:"dni"`
	Address  string `json:"address"`
}

// LoginRequest is the login payload stored in c.Locals after validation
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest carries a password change for the authenticated user
type ResetPasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "El nombre es obligatorio"
		}
		if strings.TrimSpace(reqData.Lastname) == "" {
			errors["lastname"] = "El apellido es obligatorio"
		}
		if reqData.Email == "" || !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Email inválido"
		}
		if len(reqData.Password) < 6 {
			errors["password"] = "La contraseña debe tener al menos 6 caracteres"
		}
		if reqData.Phone == "" || !phoneRegex.MatchString(reqData.Phone) {
			errors["phone"] = "El teléfono debe tener 10 dígitos"
		}
		if reqData.Dni == "" || !dniRegex.MatchString(reqData.Dni) {
			errors["dni"] = "El DNI debe tener 8 dígitos"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		errors := make(map[string]string)

		if reqData.Email == "" || !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Email inválido"
		}
		if reqData.Password == "" {
			errors["password"] = "La contraseña es obligatoria"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// ResetPassword validator middleware
func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ResetPasswordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		errors := make(map[string]string)

		if reqData.CurrentPassword == "" {
			errors["current_password"] = "La contraseña actual es obligatoria"
		}
		if len(reqData.NewPassword) < 6 {
			errors["new_password"] = "La nueva contraseña debe tener al menos 6 caracteres"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResetPassword", reqData)
		return c.Next()
	}
}
