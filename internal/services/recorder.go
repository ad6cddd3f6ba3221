package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/ats-checker/internal/models"
	"alfredoptarigan/ats-checker/internal/repositories"
)

// ScanRecorder persists one scanned upload: the original blob and its record.
type ScanRecorder interface {
	Record(ctx context.Context, filename string, data []byte, score float64) (uuid.UUID, error)
}

type scanRecorder struct {
	storage  BlobStorage
	scanRepo repositories.ScanRepository
	log      *zap.Logger
}

func NewScanRecorder(storage BlobStorage, scanRepo repositories.ScanRepository, log *zap.Logger) ScanRecorder {
	return &scanRecorder{
		storage:  storage,
		scanRepo: scanRepo,
		log:      log,
	}
}

// Record implements ScanRecorder.
func (r *scanRecorder) Record(ctx context.Context, filename string, data []byte, score float64) (uuid.UUID, error) {
	key, err := r.storage.Save(ctx, filename, data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to store resume file: %w", err)
	}

	id, err := r.scanRepo.Create(&models.ScannedResume{
		Filename: filename,
		FilePath: key,
		Score:    score,
	})
	if err != nil {
		// Cleanup stored file if database insert fails
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.log.Warn("failed to remove orphaned resume file", zap.String("key", key), zap.Error(delErr))
		}
		return uuid.Nil, err
	}

	return id, nil
}
