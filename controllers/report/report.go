package reportController

import (
	"math"

	"holistica/database"
	"holistica/middleware"
	"holistica/models"
	"holistica/utils"

	"github.com/gofiber/fiber/v2"
)

// CourseReportRow aggregates sales and enrollment figures for one course
type CourseReportRow struct {
	CourseID        uint    `json:"course_id"`
	Title           string  `json:"title"`
	SalesCount      int64   `json:"sales_count"`
	Revenue         float64 `json:"revenue"`
	EnrollmentCount int64   `json:"enrollment_count"`
	CompletedCount  int64   `json:"completed_count"`
	AbandonedCount  int64   `json:"abandoned_count"`
	AbandonmentRate float64 `json:"abandonment_rate"` // percentage, 2 decimals
}

// CourseReport returns per-course sales, revenue and completion figures.
// Every call re-scans the tables; there is no caching.
func CourseReport(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []models.Course
	if err := db.Where("is_deleted = ?", false).Order("id asc").Find(&courses).Error; err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al generar el reporte", err)
	}

	rows := make([]CourseReportRow, 0, len(courses))
	for _, course := range courses {
		row := CourseReportRow{CourseID: course.ID, Title: course.Title}

		db.Model(&models.Payment{}).Where("course_id = ?", course.ID).Count(&row.SalesCount)
		db.Model(&models.Payment{}).Where("course_id = ?", course.ID).
			Select("COALESCE(SUM(amount), 0)").Scan(&row.Revenue)

		db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&row.EnrollmentCount)
		db.Model(&models.Enrollment{}).Where("course_id = ? AND status = ?", course.ID, models.EnrollmentCompletado).Count(&row.CompletedCount)
		db.Model(&models.Enrollment{}).Where("course_id = ? AND status = ?", course.ID, models.EnrollmentAbandonado).Count(&row.AbandonedCount)

		if row.EnrollmentCount > 0 {
			rate := float64(row.AbandonedCount) / float64(row.EnrollmentCount) * 100
			row.AbandonmentRate = math.Round(rate*100) / 100
		}

		rows = append(rows, row)
	}

	return c.Status(fiber.StatusOK).JSON(rows)
}

// FinancialReport buckets payments by day over a trailing window
// (?days=N, default 30)
func FinancialReport(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days <= 0 {
		days = 30
	}

	rows, err := utils.QueryDailyRevenue(days)
	if err != nil {
		return middleware.ErrorDetailsResponse(c, fiber.StatusInternalServerError, "Error al generar el reporte financiero", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"days":    days,
		"buckets": rows,
	})
}
