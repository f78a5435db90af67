package middlewares

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fkmb_backend/internals/apperrors"
)

func errorApp(handler fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	return resp.StatusCode, payload
}

func TestErrorHandlerTypedErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", apperrors.NotFound("Data tidak ditemukan"), fiber.StatusNotFound},
		{"invalid token", apperrors.InvalidToken("Token tidak valid"), fiber.StatusBadRequest},
		{"duplicate check-in", apperrors.DuplicateCheckIn("Sudah absen"), fiber.StatusConflict},
		{"forbidden", apperrors.Forbidden("Tidak boleh"), fiber.StatusForbidden},
		{"internal", apperrors.Internal("Ada masalah", errors.New("db down")), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := errorApp(func(c *fiber.Ctx) error { return tt.err })
			status, payload := doRequest(t, app)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, "error", payload["status"])
			assert.Equal(t, float64(tt.wantStatus), payload["code"])
			assert.NotEmpty(t, payload["message"])
		})
	}
}

func TestErrorHandlerValidationIncludesFields(t *testing.T) {
	app := errorApp(func(c *fiber.Ctx) error {
		return apperrors.Validation("Data tidak valid", map[string][]string{
			"user_email": {"format email salah"},
		})
	})
	status, payload := doRequest(t, app)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	fields, ok := payload["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "user_email")
}

func TestErrorHandlerFiberError(t *testing.T) {
	app := errorApp(func(c *fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	})
	status, payload := doRequest(t, app)

	assert.Equal(t, fiber.StatusMethodNotAllowed, status)
	assert.Equal(t, "error", payload["status"])
}

func TestErrorHandlerUnknownError(t *testing.T) {
	app := errorApp(func(c *fiber.Ctx) error {
		return errors.New("sesuatu yang aneh")
	})
	status, payload := doRequest(t, app)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	// pesan internal tidak bocor ke client
	assert.Equal(t, "Internal Server Error", payload["message"])
}
