package authValidator_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	authValidator "holistica/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Post("/register", authValidator.Register(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ok"})
	})
	app.Post("/login", authValidator.Login(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ok"})
	})
	return app
}

func post(t *testing.T, app *fiber.App, path string, body map[string]interface{}) (int, map[string]interface{}) {
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

func validRegister() map[string]interface{} {
	return map[string]interface{}{
		"name":     "Ana",
		"lastname": "García",
		"email":    "ana@holistica.test",
		"password": "123456",
		"phone":    "1234567890",
		"dni":      "12345678",
	}
}

func TestRegisterValidPayloadPasses(t *testing.T) {
	app := setupApp()

	status, _ := post(t, app, "/register", validRegister())
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRegisterFieldValidation(t *testing.T) {
	app := setupApp()

	cases := []struct {
		name  string
		field string
		value interface{}
	}{
		{"empty name", "name", ""},
		{"bad email", "email", "no-es-un-email"},
		{"short password", "password", "12345"},
		{"short phone", "phone", "123"},
		{"alpha dni", "dni", "abcdefgh"},
		{"short dni", "dni", "1234"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := validRegister()
			body[tc.field] = tc.value

			status, resp := post(t, app, "/register", body)
			require.Equal(t, fiber.StatusBadRequest, status)

			fields, ok := resp["fields"].(map[string]interface{})
			require.True(t, ok)
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestLoginRequiresEmailAndPassword(t *testing.T) {
	app := setupApp()

	status, resp := post(t, app, "/login", map[string]interface{}{})
	require.Equal(t, fiber.StatusBadRequest, status)

	fields, ok := resp["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}
