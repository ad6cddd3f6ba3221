package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/ats-checker/internal/models"
)

var ErrScanNotFound = errors.New("scan not found")

const defaultListLimit = 50

// ScanRepository is append-only: records are created once and never updated.
type ScanRepository interface {
	Create(scan *models.ScannedResume) (uuid.UUID, error)
	FindByID(id uuid.UUID) (*models.ScannedResume, error)
	List(filter models.ScanFilter) ([]models.ScannedResume, error)
}

type scanRepository struct {
	db *gorm.DB
}

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

// Create implements ScanRepository.
func (r *scanRepository) Create(scan *models.ScannedResume) (uuid.UUID, error) {
	if scan.ID == uuid.Nil {
		scan.ID = uuid.New()
	}

	if err := r.db.Create(scan).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to create scan record: %w", err)
	}

	return scan.ID, nil
}

// FindByID implements ScanRepository.
func (r *scanRepository) FindByID(id uuid.UUID) (*models.ScannedResume, error) {
	var scan models.ScannedResume
	if err := r.db.Where("id = ?", id).First(&scan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScanNotFound
		}
		return nil, fmt.Errorf("failed to find scan: %w", err)
	}

	return &scan, nil
}

// List implements ScanRepository. Newest uploads come first.
func (r *scanRepository) List(filter models.ScanFilter) ([]models.ScannedResume, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := r.db.Model(&models.ScannedResume{})
	if filter.Since != nil {
		query = query.Where("uploaded_at >= ?", *filter.Since)
	}
	if filter.Until != nil {
		query = query.Where("uploaded_at < ?", *filter.Until)
	}

	var scans []models.ScannedResume
	if err := query.Order("uploaded_at DESC").Limit(limit).Find(&scans).Error; err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}

	return scans, nil
}
