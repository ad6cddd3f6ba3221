package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-checker/internal/models"
	"alfredoptarigan/ats-checker/internal/services"
)

type GeneratorHandler struct {
	scanner services.ScannerService
}

func NewGeneratorHandler(scanner services.ScannerService) *GeneratorHandler {
	return &GeneratorHandler{
		scanner: scanner,
	}
}

// HandleGenerate handles POST /generator
func (h *GeneratorHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GeneratorRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	return c.JSON(h.scanner.BuildTemplate(req.JobDescription))
}
