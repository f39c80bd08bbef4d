package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"holistica/config"
	"holistica/database"
	"holistica/middleware"
	"holistica/models"
	authRoutes "holistica/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		JWTExpire: time.Hour,
		SaltRound: 4,
	}
	database.ConnectTestDb()

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	parsed := make(map[string]interface{})
	json.NewDecoder(resp.Body).Decode(&parsed)
	return resp.StatusCode, parsed
}

func registerBody() map[string]interface{} {
	return map[string]interface{}{
		"name":     "A",
		"lastname": "B",
		"email":    "a@b.com",
		"password": "123456",
		"phone":    "1234567890",
		"dni":      "12345678",
	}
}

func TestRegister(t *testing.T) {
	app := setupApp(t)

	status, body := postJSON(t, app, "/api/auth/register", registerBody())
	require.Equal(t, fiber.StatusCreated, status)
	assert.NotZero(t, body["userId"])

	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "a@b.com").First(&user).Error)
	assert.Equal(t, models.RoleStudent, user.RoleID)
	assert.NotEqual(t, "123456", user.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	status, _ := postJSON(t, app, "/api/auth/register", registerBody())
	require.Equal(t, fiber.StatusCreated, status)

	status, body := postJSON(t, app, "/api/auth/register", registerBody())
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "El email ya está registrado", body["error"])

	var count int64
	database.Database.Db.Model(&models.User{}).Where("email = ?", "a@b.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLoginWrongPasswordAndUnknownEmailAreIndistinguishable(t *testing.T) {
	app := setupApp(t)

	status, _ := postJSON(t, app, "/api/auth/register", registerBody())
	require.Equal(t, fiber.StatusCreated, status)

	wrongPw, wrongPwBody := postJSON(t, app, "/api/auth/login", map[string]interface{}{
		"email":    "a@b.com",
		"password": "incorrecta",
	})
	unknown, unknownBody := postJSON(t, app, "/api/auth/login", map[string]interface{}{
		"email":    "nadie@b.com",
		"password": "123456",
	})

	assert.Equal(t, fiber.StatusUnauthorized, wrongPw)
	assert.Equal(t, fiber.StatusUnauthorized, unknown)
	assert.Equal(t, "Credenciales inválidas", wrongPwBody["error"])
	assert.Equal(t, wrongPwBody["error"], unknownBody["error"])
}

func TestLoginSuccessReturnsTokenAndPublicUser(t *testing.T) {
	app := setupApp(t)

	status, _ := postJSON(t, app, "/api/auth/register", registerBody())
	require.Equal(t, fiber.StatusCreated, status)

	status, body := postJSON(t, app, "/api/auth/login", map[string]interface{}{
		"email":    "a@b.com",
		"password": "123456",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a@b.com", user["email"])
	assert.NotContains(t, user, "password")
}

func TestLogoutIsStateless(t *testing.T) {
	app := setupApp(t)

	status, body := postJSON(t, app, "/api/auth/logout", map[string]interface{}{})
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body["message"])
}
