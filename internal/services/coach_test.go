package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCoachService_Disabled(t *testing.T) {
	coach := NewCoachService(nil, 1, 3, zap.NewNop())

	assert.False(t, coach.Enabled())
	summary, err := coach.Summarize(context.Background(), CoachInput{})
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestCoachService_RetriesThenFails(t *testing.T) {
	generator := &stubGenerator{err: errors.New("quota exceeded")}
	coach := NewCoachService(generator, 0, 3, zap.NewNop())

	_, err := coach.Summarize(context.Background(), CoachInput{Filename: "cv.pdf"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
	assert.Equal(t, 3, generator.calls)
}

func TestCoachService_CancelledContext(t *testing.T) {
	generator := &stubGenerator{response: "ok"}
	coach := NewCoachService(generator, 0.001, 1, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := coach.Summarize(ctx, CoachInput{})

	assert.Error(t, err)
	assert.Zero(t, generator.calls)
}

func TestCoachPromptBuilder(t *testing.T) {
	prompt := NewCoachPromptBuilder().BuildScanReviewPrompt(CoachInput{
		Filename:       "cv.pdf",
		JobDescription: "Go developer",
		Score:          47.25,
	})

	assert.Contains(t, prompt, "RESUME FILE: cv.pdf")
	assert.Contains(t, prompt, "MISSING KEYWORDS: none")
	assert.Contains(t, prompt, "Go developer")
}
