package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/ats-checker/internal/models"
	"alfredoptarigan/ats-checker/internal/repositories"
)

const maxListLimit = 500

type HistoryHandler struct {
	scanRepo repositories.ScanRepository
}

func NewHistoryHandler(scanRepo repositories.ScanRepository) *HistoryHandler {
	return &HistoryHandler{
		scanRepo: scanRepo,
	}
}

// HandleList handles GET /scans
func (h *HistoryHandler) HandleList(c *fiber.Ctx) error {
	filter := models.ScanFilter{
		Limit: c.QueryInt("limit", 50),
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	if since := c.Query("since"); since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "since must be an RFC3339 timestamp",
			})
		}
		filter.Since = &t
	}

	if until := c.Query("until"); until != "" {
		t, err := time.Parse(time.RFC3339, until)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "until must be an RFC3339 timestamp",
			})
		}
		filter.Until = &t
	}

	scans, err := h.scanRepo.List(filter)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list scans")
	}

	response := models.ScanListResponse{
		Scans: make([]models.ScanRecordResponse, 0, len(scans)),
		Count: len(scans),
	}
	for _, scan := range scans {
		response.Scans = append(response.Scans, toRecordResponse(scan))
	}

	return c.JSON(response)
}

// HandleGet handles GET /scans/:id
func (h *HistoryHandler) HandleGet(c *fiber.Ctx) error {
	scanID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid scan ID format",
		})
	}

	scan, err := h.scanRepo.FindByID(scanID)
	if err != nil {
		if errors.Is(err, repositories.ErrScanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Scan not found",
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load scan")
	}

	return c.JSON(toRecordResponse(*scan))
}

func toRecordResponse(scan models.ScannedResume) models.ScanRecordResponse {
	return models.ScanRecordResponse{
		ID:         scan.ID.String(),
		Filename:   scan.Filename,
		Score:      scan.Score,
		UploadedAt: scan.UploadedAt,
	}
}
