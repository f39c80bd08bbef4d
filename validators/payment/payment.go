package paymentValidator

import (
	"holistica/middleware"
	"holistica/models"

	"github.com/gofiber/fiber/v2"
)

// ProcessPaymentRequest is the payment payload stored in c.Locals after validation
type ProcessPaymentRequest struct {
	CourseID uint    `json:"course_id"`
	Amount   float64 `json:"amount"`
	Method   string  `json:"method"`
}

// ProcessPayment validator middleware. The method must be one of the fixed
// allow-list; anything else is rejected with the list of valid methods.
func ProcessPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProcessPaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if reqData.CourseID == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "El curso es obligatorio")
		}
		if reqData.Amount <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "El monto debe ser mayor a 0")
		}
		if !models.IsValidPaymentMethod(reqData.Method) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":        "Método de pago inválido",
				"validMethods": models.PaymentMethods,
			})
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
