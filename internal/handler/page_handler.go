package handler

import (
	"os"
	"path/filepath"

	"edugenie/internal/domain"
	"edugenie/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const indexFile = "index.html"

// PageHandler serves the landing page and liveness probe
type PageHandler struct {
	staticDir string
}

// NewPageHandler creates a PageHandler serving files from staticDir
func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{staticDir: staticDir}
}

// Index godoc
// @Summary Landing page
// @Description Serves static/index.html
// @Tags page
// @Produce html
// @Success 200 {string} string "index.html"
// @Failure 404 {object} dto.ErrorResponse
// @Router / [get]
func (h *PageHandler) Index(c *fiber.Ctx) error {
	indexPath := filepath.Join(h.staticDir, indexFile)
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		return domain.NewNotFoundError(indexFile + " not found")
	}
	return c.SendFile(indexPath)
}

// Health godoc
// @Summary Liveness probe
// @Tags page
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *PageHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}
