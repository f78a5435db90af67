package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveVia(t *testing.T, target string) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveVia(t, "/items")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestResolvePagingExplicit(t *testing.T) {
	p := resolveVia(t, "/items?page=3&per_page=10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)
}

func TestResolvePagingLimitAlias(t *testing.T) {
	p := resolveVia(t, "/items?limit=5")
	assert.Equal(t, 5, p.PerPage)
}

func TestResolvePagingClampsInvalid(t *testing.T) {
	p := resolveVia(t, "/items?page=-2&per_page=9999")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage) // dibatasi maxPerPage
}

func TestBuildPagination(t *testing.T) {
	pg := BuildPagination(45, 2, 20)
	assert.Equal(t, int64(45), pg.Total)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	last := BuildPagination(45, 3, 20)
	assert.False(t, last.HasNext)

	empty := BuildPagination(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
