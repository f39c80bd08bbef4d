package scheduleValidator

import (
	"regexp"
	"strconv"
	"strings"

	"holistica/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	validate  = validator.New()
	timeRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ScheduleRequest is the schedule create/update payload
type ScheduleRequest struct {
	CourseID     uint   `json:"course_id" validate:"required"`
	DayOfWeek    string `json:"day_of_week" validate:"required"`
	StartTime    string `json:"start_time" validate:"required"`
	EndTime      string `json:"end_time" validate:"required"`
	InstructorID uint   `json:"instructor_id"`
}

// Schedule validator middleware for create and update
func Schedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ScheduleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					errors[strings.ToLower(fe.Field())] = "El campo " + strings.ToLower(fe.Field()) + " es obligatorio"
				}
			}
		}
		if reqData.StartTime != "" && !timeRegex.MatchString(reqData.StartTime) {
			errors["start_time"] = "La hora de inicio debe tener formato HH:MM"
		}
		if reqData.EndTime != "" && !timeRegex.MatchString(reqData.EndTime) {
			errors["end_time"] = "La hora de fin debe tener formato HH:MM"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSchedule", reqData)
		return c.Next()
	}
}

// ScheduleID validates the :id route param
func ScheduleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "ID de horario inválido")
		}

		c.Locals("scheduleID", uint(id))
		return c.Next()
	}
}
