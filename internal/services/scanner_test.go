package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const scenarioJD = "Looking for a Python developer with AWS and Docker experience, 5 years required"

func TestScannerService_Scan(t *testing.T) {
	parser := &stubParser{texts: map[string]string{"cv.pdf": "Python developer with SQL experience"}}
	recorder := &stubRecorder{}
	scanner := NewScannerService(parser, nil, recorder, zap.NewNop())

	result, err := scanner.Scan(context.Background(), scenarioJD, Upload{Filename: "cv.pdf", Data: []byte("%PDF")})

	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", result.Filename)
	assert.Equal(t, []string{"docker", "looking"}, result.Missing)
	assert.Greater(t, result.Score, 0.0)
	assert.Len(t, result.Strategies, 3)
	assert.NotEmpty(t, result.Insights)
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.ExtractionFailed)
	assert.Equal(t, result.Score, recorder.scores["cv.pdf"])
}

func TestScannerService_ScanUnreadableDocument(t *testing.T) {
	scanner := NewScannerService(&stubParser{}, nil, nil, zap.NewNop())

	result, err := scanner.Scan(context.Background(), scenarioJD, Upload{Filename: "broken.pdf", Data: []byte("garbage")})

	require.NoError(t, err)
	assert.True(t, result.ExtractionFailed)
	assert.Zero(t, result.Score)
	assert.Equal(t, []string{"developer", "docker", "looking", "python", "with"}, result.Missing)
	assert.NotEmpty(t, result.Insights)
	assert.Empty(t, result.ID)
}

func TestScannerService_RecorderFailure(t *testing.T) {
	parser := &stubParser{texts: map[string]string{"cv.pdf": "python"}}
	scanner := NewScannerService(parser, nil, &stubRecorder{failFor: "cv.pdf"}, zap.NewNop())

	result, err := scanner.Scan(context.Background(), scenarioJD, Upload{Filename: "cv.pdf"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cv.pdf")
	assert.Equal(t, "cv.pdf", result.Filename)
}

func TestScannerService_CoachSummary(t *testing.T) {
	parser := &stubParser{texts: map[string]string{"cv.pdf": "Python developer"}}
	generator := &stubGenerator{response: "  Add Docker to your skills.  "}
	coach := NewCoachService(generator, 0, 2, zap.NewNop())
	scanner := NewScannerService(parser, coach, nil, zap.NewNop())

	result, err := scanner.Scan(context.Background(), scenarioJD, Upload{Filename: "cv.pdf"})

	require.NoError(t, err)
	assert.Equal(t, "Add Docker to your skills.", result.AISummary)
	assert.Contains(t, generator.lastPrompt, "MISSING KEYWORDS: docker, looking, with")
}

func TestScannerService_BuildTemplate(t *testing.T) {
	scanner := NewScannerService(&stubParser{}, nil, nil, zap.NewNop())

	got := scanner.BuildTemplate("Golang golang kubernetes")

	assert.Equal(t, "Golang golang kubernetes", got.JobDescription)
	assert.Equal(t, []string{"golang", "kubernetes"}, got.Keywords)
	assert.Contains(t, got.Template, "Core Competencies: golang, kubernetes")
	assert.Contains(t, got.Template, "using relevant tools.")
}
