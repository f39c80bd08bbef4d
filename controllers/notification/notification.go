package notificationController

import (
	"strconv"
	"strings"

	"holistica/database"
	"holistica/middleware"
	"holistica/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications lists the caller's notifications, newest first
func GetNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No autenticado")
	}

	var notifications []models.Notification
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al obtener las notificaciones", err)
	}

	return c.Status(fiber.StatusOK).JSON(notifications)
}

type createNotificationRequest struct {
	UserID  uint   `json:"user_id"`
	Message string `json:"message"`
}

// CreateNotification lets an admin send a notification to any user
func CreateNotification(c *fiber.Ctx) error {
	reqData := new(createNotificationRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	errors := make(map[string]string)
	if reqData.UserID == 0 {
		errors["user_id"] = "El usuario es obligatorio"
	}
	if strings.TrimSpace(reqData.Message) == "" {
		errors["message"] = "El mensaje es obligatorio"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	notification := models.Notification{
		UserID:  reqData.UserID,
		Message: reqData.Message,
	}
	if err := database.Database.Db.Create(&notification).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al crear la notificación", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":        "Notificación creada correctamente",
		"notificationId": notification.ID,
	})
}

// MarkRead marks one of the caller's notifications as read
func MarkRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "No autenticado")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "ID de notificación inválido")
	}

	var notification models.Notification
	if err := database.Database.Db.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Notificación no encontrada")
	}

	notification.ReadStatus = true
	if err := database.Database.Db.Save(&notification).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al actualizar la notificación", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notificación marcada como leída",
	})
}
