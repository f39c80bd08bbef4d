package paymentController

import (
	"time"

	"holistica/database"
	"holistica/middleware"
	"holistica/models"
	"holistica/utils"
	paymentValidator "holistica/validators/payment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// ProcessPayment records a payment and enrolls the user in the course.
// The payment and enrollment inserts are two independent statements: a
// failed enrollment leaves the payment row in place. The client-supplied
// amount is stored as-is without checking it against the course price.
func ProcessPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No autenticado")
	}

	reqData, ok := c.Locals("validatedPayment").(*paymentValidator.ProcessPaymentRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Usuario no encontrado")
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso no encontrado")
	}

	reference, gatewayRaw := utils.ChargeGateway(reqData.Method, reqData.Amount, user.Email)

	payment := models.Payment{
		UserID:          userID,
		CourseID:        course.ID,
		Amount:          reqData.Amount,
		Method:          reqData.Method,
		Reference:       reference,
		GatewayResponse: datatypes.JSON(gatewayRaw),
		PaymentDate:     time.Now(),
	}
	if err := db.Create(&payment).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al procesar el pago", err)
	}

	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   course.ID,
		Status:     models.EnrollmentInscrito,
		EnrolledAt: time.Now(),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al inscribir al usuario", err)
	}

	utils.SendPaymentReceiptEmail(user.Email, user.Name, course.Title, payment.Amount, payment.Reference)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Pago procesado correctamente",
		"paymentId":   payment.ID,
		"courseTitle": course.Title,
	})
}

// PaymentHistory returns the caller's payments, newest first
func PaymentHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No autenticado")
	}

	var payments []models.Payment
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Order("payment_date desc").
		Find(&payments).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al obtener el historial de pagos", err)
	}

	return c.Status(fiber.StatusOK).JSON(payments)
}
