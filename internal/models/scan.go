package models

import (
	"time"

	"github.com/google/uuid"
)

// ScannedResume is the append-only record kept for every scanned upload.
type ScannedResume struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename   string    `gorm:"type:varchar(255);not null" json:"filename"`
	FilePath   string    `gorm:"type:text" json:"file_path"`
	Score      float64   `gorm:"not null" json:"score"`
	UploadedAt time.Time `gorm:"autoCreateTime;index;<-:create" json:"uploaded_at"`
}

func (ScannedResume) TableName() string {
	return "scanned_resumes"
}

// ScanFilter narrows the admin listing.
type ScanFilter struct {
	Since *time.Time
	Until *time.Time
	Limit int
}
