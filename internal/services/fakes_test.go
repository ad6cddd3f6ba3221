package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"alfredoptarigan/ats-checker/internal/models"
)

type stubParser struct {
	texts map[string]string
}

func (s *stubParser) ExtractText(filename string, _ []byte) (string, error) {
	text, ok := s.texts[filename]
	if !ok {
		return "", errors.New("failed to open PDF: malformed header")
	}
	return text, nil
}

func (s *stubParser) ExtractFile(path string) (*DocumentContent, error) {
	text, err := s.ExtractText(path, nil)
	if err != nil {
		return nil, err
	}
	return &DocumentContent{Text: text, PageCount: 1, FilePath: path}, nil
}

type stubRecorder struct {
	mu      sync.Mutex
	scores  map[string]float64
	failFor string
}

func (s *stubRecorder) Record(_ context.Context, filename string, _ []byte, score float64) (uuid.UUID, error) {
	if filename == s.failFor {
		return uuid.Nil, errors.New("failed to create scan record: connection refused")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scores == nil {
		s.scores = map[string]float64{}
	}
	s.scores[filename] = score
	return uuid.New(), nil
}

type stubGenerator struct {
	mu         sync.Mutex
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubGenerator) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

type memoryStorage struct {
	blobs   map[string][]byte
	deleted []string
}

func (m *memoryStorage) Save(_ context.Context, filename string, data []byte) (string, error) {
	if m.blobs == nil {
		m.blobs = map[string][]byte{}
	}
	key := blobKey(filename)
	m.blobs[key] = data
	return key, nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	delete(m.blobs, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *memoryStorage) EnsureReady(context.Context) error { return nil }

type memoryScanRepo struct {
	created []models.ScannedResume
	err     error
}

func (m *memoryScanRepo) Create(scan *models.ScannedResume) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.Nil, m.err
	}
	scan.ID = uuid.New()
	m.created = append(m.created, *scan)
	return scan.ID, nil
}

func (m *memoryScanRepo) FindByID(id uuid.UUID) (*models.ScannedResume, error) {
	for i := range m.created {
		if m.created[i].ID == id {
			return &m.created[i], nil
		}
	}
	return nil, errors.New("scan not found")
}

func (m *memoryScanRepo) List(models.ScanFilter) ([]models.ScannedResume, error) {
	return m.created, nil
}
