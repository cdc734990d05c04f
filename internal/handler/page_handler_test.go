package handler_test

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"edugenie/internal/handler"
	"edugenie/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageApp(staticDir string) *fiber.App {
	h := handler.NewPageHandler(staticDir)
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/", h.Index)
	app.Get("/healthz", h.Health)
	return app
}

func TestPageHandler_Index(t *testing.T) {
	t.Run("Serves index.html", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>EduGenie</h1>"), 0o644))

		resp, err := newPageApp(dir).Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "<h1>EduGenie</h1>", string(body))
	})

	t.Run("Missing page is 404", func(t *testing.T) {
		resp, err := newPageApp(t.TempDir()).Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"detail":"index.html not found"}`, string(body))
	})
}

func TestPageHandler_Health(t *testing.T) {
	resp, err := newPageApp(t.TempDir()).Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}
