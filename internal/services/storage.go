package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BlobStorage keeps the original uploaded résumé files.
type BlobStorage interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
	EnsureReady(ctx context.Context) error
}

type localStorage struct {
	uploadPath string
}

func NewLocalStorage(uploadPath string) BlobStorage {
	return &localStorage{
		uploadPath: uploadPath,
	}
}

func (s *localStorage) EnsureReady(_ context.Context) error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// Save writes data under a unique name and returns its path.
func (s *localStorage) Save(_ context.Context, filename string, data []byte) (string, error) {
	filePath := filepath.Join(s.uploadPath, blobKey(filename))

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}

func (s *localStorage) Delete(_ context.Context, key string) error {
	if err := os.Remove(key); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// blobKey builds resume_<uuid><ext> names so uploads never collide.
func blobKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("resume_%s%s", uuid.New().String(), ext)
}
