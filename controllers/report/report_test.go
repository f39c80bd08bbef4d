package reportController_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"holistica/config"
	"holistica/database"
	"holistica/middleware"
	"holistica/models"
	reportRoutes "holistica/routers/reportRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		JWTExpire: time.Hour,
		SaltRound: 4,
	}
	db := database.ConnectTestDb()

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	reportRoutes.SetupReportRoutes(app)
	return app, db
}

func tokenFor(t *testing.T, db *gorm.DB, email string, role uint) string {
	t.Helper()

	user := models.User{Name: "T", Lastname: "T", Email: email, Password: "x", RoleID: role}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.RoleID)
	require.NoError(t, err)
	return token
}

func get(t *testing.T, app *fiber.App, path, token string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestCourseReportAbandonmentRate(t *testing.T) {
	app, db := setupApp(t)
	admin := tokenFor(t, db, "admin@holistica.test", models.RoleAdmin)

	course := models.Course{Title: "Meditación", Price: 50}
	require.NoError(t, db.Create(&course).Error)

	// 10 enrollments: 3 abandoned, 2 completed, 5 active
	for i := 0; i < 10; i++ {
		status := models.EnrollmentInscrito
		if i < 3 {
			status = models.EnrollmentAbandonado
		} else if i < 5 {
			status = models.EnrollmentCompletado
		}
		require.NoError(t, db.Create(&models.Enrollment{
			UserID: uint(i + 100), CourseID: course.ID, Status: status, EnrolledAt: time.Now(),
		}).Error)
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, db.Create(&models.Payment{
			UserID: uint(i + 100), CourseID: course.ID, Amount: 50, Method: "efectivo", PaymentDate: time.Now(),
		}).Error)
	}

	status, body := get(t, app, "/api/reports/courses", admin)
	require.Equal(t, fiber.StatusOK, status)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &rows))
	require.Len(t, rows, 1)

	row := rows[0]
	assert.EqualValues(t, 4, row["sales_count"])
	assert.EqualValues(t, 200, row["revenue"])
	assert.EqualValues(t, 10, row["enrollment_count"])
	assert.EqualValues(t, 2, row["completed_count"])
	assert.EqualValues(t, 3, row["abandoned_count"])
	assert.EqualValues(t, 30.00, row["abandonment_rate"])
}

func TestFinancialReportBucketsByDay(t *testing.T) {
	app, db := setupApp(t)
	admin := tokenFor(t, db, "admin@holistica.test", models.RoleAdmin)

	course := models.Course{Title: "Reiki", Price: 80}
	require.NoError(t, db.Create(&course).Error)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Payment{
			UserID: 1, CourseID: course.ID, Amount: 80, Method: "online", PaymentDate: time.Now(),
		}).Error)
	}
	// Outside the default window
	require.NoError(t, db.Create(&models.Payment{
		UserID: 1, CourseID: course.ID, Amount: 80, Method: "online",
		PaymentDate: time.Now().AddDate(0, 0, -60),
	}).Error)

	status, body := get(t, app, "/api/reports/financial", admin)
	require.Equal(t, fiber.StatusOK, status)

	var parsed struct {
		Days    int `json:"days"`
		Buckets []struct {
			Day      string  `json:"day"`
			Payments int64   `json:"payments"`
			Revenue  float64 `json:"revenue"`
		} `json:"buckets"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, 30, parsed.Days)
	require.Len(t, parsed.Buckets, 1)
	assert.EqualValues(t, 3, parsed.Buckets[0].Payments)
	assert.EqualValues(t, 240, parsed.Buckets[0].Revenue)
}

func TestReportsAreAdminOnly(t *testing.T) {
	app, db := setupApp(t)
	student := tokenFor(t, db, "student@holistica.test", models.RoleStudent)

	status, _ := get(t, app, "/api/reports/courses", student)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = get(t, app, "/api/reports/financial", student)
	assert.Equal(t, fiber.StatusForbidden, status)
}
