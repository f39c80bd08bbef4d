package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// ErrorResponse sends {error} with the given status code
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{"error": message})
}

// ErrorDetailsResponse sends {error, details} with the underlying error
// message attached. The frontend surfaces details directly.
func ErrorDetailsResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error":   message,
		"details": err.Error(),
	})
}

// ValidationErrorResponse sends field-level validation messages
func ValidationErrorResponse(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Errores de validación",
		"fields": fields,
	})
}

// ErrorHandler is the global fiber error handler for anything that escapes
// the controllers. Known error types map to specific codes, everything else
// falls through to a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ErrorResponse(c, fiberErr.Code, fiberErr.Message)
	}

	var validationErr *jwt.ValidationError
	if errors.As(err, &validationErr) {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Token inválido o expirado")
	}

	log.Printf("Unhandled error: %v", err)
	return ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error interno del servidor", err)
}
