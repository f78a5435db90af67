package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fkmb_backend/internals/constants"
	"fkmb_backend/internals/middlewares"
)

func appWithLocals(role, userID string, guard fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("user_role", role)
		}
		if userID != "" {
			c.Locals("user_id", userID)
		}
		return c.Next()
	})
	app.Get("/guarded/:id", guard, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func requestStatus(t *testing.T, app *fiber.App, target string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestOnlyRoles(t *testing.T) {
	guard := OnlyRoles("❌ Hanya pengurus.", constants.PengurusAndAbove...)

	assert.Equal(t, fiber.StatusOK,
		requestStatus(t, appWithLocals(constants.RoleAdmin, "", guard), "/guarded/x"))
	assert.Equal(t, fiber.StatusOK,
		requestStatus(t, appWithLocals(constants.RolePengurus, "", guard), "/guarded/x"))
	assert.Equal(t, fiber.StatusForbidden,
		requestStatus(t, appWithLocals(constants.RoleAnggota, "", guard), "/guarded/x"))
	assert.Equal(t, fiber.StatusUnauthorized,
		requestStatus(t, appWithLocals("", "", guard), "/guarded/x"))
}

func TestRequirePermission(t *testing.T) {
	guard := RequirePermission(constants.PermCashCreate)

	assert.Equal(t, fiber.StatusOK,
		requestStatus(t, appWithLocals(constants.RoleBendahara, "", guard), "/guarded/x"))
	assert.Equal(t, fiber.StatusOK,
		requestStatus(t, appWithLocals(constants.RoleAdmin, "", guard), "/guarded/x"))
	assert.Equal(t, fiber.StatusForbidden,
		requestStatus(t, appWithLocals(constants.RolePengurus, "", guard), "/guarded/x"))
}

func TestSelfOrRoles(t *testing.T) {
	guard := SelfOrRoles("id", constants.RoleAdmin)

	// akses data sendiri
	assert.Equal(t, fiber.StatusOK,
		requestStatus(t, appWithLocals(constants.RoleAnggota, "user-1", guard), "/guarded/user-1"))
	// admin boleh akses data orang lain
	assert.Equal(t, fiber.StatusOK,
		requestStatus(t, appWithLocals(constants.RoleAdmin, "user-1", guard), "/guarded/user-2"))
	// anggota tidak boleh akses data orang lain
	assert.Equal(t, fiber.StatusForbidden,
		requestStatus(t, appWithLocals(constants.RoleAnggota, "user-1", guard), "/guarded/user-2"))
}
