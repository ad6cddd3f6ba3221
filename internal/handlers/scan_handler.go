package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/ats-checker/internal/models"
	"alfredoptarigan/ats-checker/internal/services"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

type ScanHandler struct {
	batch       services.BatchScanner
	maxFileSize int64
	log         *zap.Logger
}

func NewScanHandler(batch services.BatchScanner, maxFileSize int64, log *zap.Logger) *ScanHandler {
	return &ScanHandler{
		batch:       batch,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

// HandleScan handles POST /scan
func (h *ScanHandler) HandleScan(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	jobDesc := ""
	if values := form.Value["job_description"]; len(values) > 0 {
		jobDesc = strings.TrimSpace(values[0])
	}
	if jobDesc == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	files := form.File["resume_file"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "at least one resume_file is required",
		})
	}

	uploads := make([]services.Upload, 0, len(files))
	for _, file := range files {
		if file.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("%s is too large. Max size: %d bytes", file.Filename, h.maxFileSize),
			})
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedExtensions[ext] {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("invalid file extension: %s", ext),
			})
		}

		data, err := readUpload(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to read %s", file.Filename),
			})
		}

		uploads = append(uploads, services.Upload{
			Filename: filepath.Base(file.Filename),
			Data:     data,
		})
	}

	results, err := h.batch.ScanAll(c.UserContext(), jobDesc, uploads)
	if err != nil {
		h.log.Error("scan failed", zap.Int("files", len(uploads)), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to record scan results")
	}

	h.log.Info("scan completed", zap.Int("files", len(results)))

	return c.JSON(models.ScanResponse{Results: results})
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return io.ReadAll(src)
}
