package paymentRoutes

import (
	paymentController "holistica/controllers/payment"
	"holistica/middleware"
	paymentValidator "holistica/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/api/payments")

	paymentGroup.Post("/", middleware.JWTMiddleware, paymentValidator.ProcessPayment(), paymentController.ProcessPayment)
	paymentGroup.Get("/history", middleware.JWTMiddleware, paymentController.PaymentHistory)
}
