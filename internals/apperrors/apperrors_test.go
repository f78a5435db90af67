package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"not found", NotFound("x"), fiber.StatusNotFound},
		{"invalid token", InvalidToken("x"), fiber.StatusBadRequest},
		{"duplicate check-in", DuplicateCheckIn("x"), fiber.StatusConflict},
		{"conflict", Conflict("x"), fiber.StatusConflict},
		{"validation", Validation("x", nil), fiber.StatusUnprocessableEntity},
		{"unauthorized", Unauthorized("x"), fiber.StatusUnauthorized},
		{"forbidden", Forbidden("x"), fiber.StatusForbidden},
		{"internal", Internal("x", errors.New("boom")), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status())
		})
	}
}

func TestExpected(t *testing.T) {
	assert.True(t, InvalidToken("x").Expected())
	assert.True(t, DuplicateCheckIn("x").Expected())
	assert.True(t, Validation("x", nil).Expected())
	assert.False(t, Internal("x", errors.New("boom")).Expected())
}

func TestAsUnwrapsWrappedError(t *testing.T) {
	inner := NotFound("tidak ada")
	wrapped := fmt.Errorf("context: %w", inner)

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, appErr.Kind)
	assert.Equal(t, "tidak ada", appErr.Message)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("Gagal konek", cause)
	assert.Equal(t, cause, err.Unwrap())
	assert.Equal(t, "Gagal konek", err.Error())
}
