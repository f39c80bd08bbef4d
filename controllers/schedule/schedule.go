package scheduleController

import (
	"holistica/database"
	"holistica/middleware"
	"holistica/models"
	scheduleValidator "holistica/validators/schedule"

	"github.com/gofiber/fiber/v2"
)

// GetSchedules lists schedules, optionally filtered by course
func GetSchedules(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if courseID := c.QueryInt("course_id"); courseID > 0 {
		db = db.Where("course_id = ?", courseID)
	}

	var schedules []models.Schedule
	if err := db.Order("day_of_week asc, start_time asc").Find(&schedules).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al obtener los horarios", err)
	}

	return c.Status(fiber.StatusOK).JSON(schedules)
}

// GetSchedule returns one schedule by id
func GetSchedule(c *fiber.Ctx) error {
	scheduleID := c.Locals("scheduleID").(uint)

	var schedule models.Schedule
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", scheduleID, false).First(&schedule).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Horario no encontrado")
	}

	return c.Status(fiber.StatusOK).JSON(schedule)
}

// CreateSchedule adds a time slot for a course. Overlaps with other slots for
// the same instructor are not checked.
func CreateSchedule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSchedule").(*scheduleValidator.ScheduleRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso no encontrado")
	}

	schedule := models.Schedule{
		CourseID:     reqData.CourseID,
		DayOfWeek:    reqData.DayOfWeek,
		StartTime:    reqData.StartTime,
		EndTime:      reqData.EndTime,
		InstructorID: reqData.InstructorID,
	}
	if err := database.Database.Db.Create(&schedule).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al crear el horario", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Horario creado correctamente",
		"scheduleId": schedule.ID,
	})
}

// UpdateSchedule replaces the slot fields
func UpdateSchedule(c *fiber.Ctx) error {
	scheduleID := c.Locals("scheduleID").(uint)

	var schedule models.Schedule
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", scheduleID, false).First(&schedule).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Horario no encontrado")
	}

	reqData, ok := c.Locals("validatedSchedule").(*scheduleValidator.ScheduleRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	schedule.CourseID = reqData.CourseID
	schedule.DayOfWeek = reqData.DayOfWeek
	schedule.StartTime = reqData.StartTime
	schedule.EndTime = reqData.EndTime
	schedule.InstructorID = reqData.InstructorID

	if err := database.Database.Db.Save(&schedule).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al actualizar el horario", err)
	}

	return c.Status(fiber.StatusOK).JSON(schedule)
}

// DeleteSchedule soft deletes a schedule
func DeleteSchedule(c *fiber.Ctx) error {
	scheduleID := c.Locals("scheduleID").(uint)

	var schedule models.Schedule
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", scheduleID, false).First(&schedule).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Horario no encontrado")
	}

	schedule.IsDeleted = true
	if err := database.Database.Db.Save(&schedule).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al eliminar el horario", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Horario eliminado correctamente",
	})
}
