package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// CoachService writes a short narrative review of a scan.
type CoachService interface {
	Enabled() bool
	Summarize(ctx context.Context, in CoachInput) (string, error)
}

type CoachInput struct {
	Filename       string
	JobDescription string
	Score          float64
	Missing        []string
}

// TextGenerator is the slice of the Gemini client the coach needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

type coachService struct {
	generator     TextGenerator
	limiter       *rate.Limiter
	promptBuilder *CoachPromptBuilder
	maxRetries    int
	log           *zap.Logger
}

func NewCoachService(generator TextGenerator, requestsPerSecond float64, maxRetries int, log *zap.Logger) CoachService {
	if maxRetries <= 0 {
		maxRetries = 1
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	return &coachService{
		generator:     generator,
		limiter:       rate.NewLimiter(limit, 1),
		promptBuilder: NewCoachPromptBuilder(),
		maxRetries:    maxRetries,
		log:           log,
	}
}

func (c *coachService) Enabled() bool {
	return c.generator != nil
}

// Summarize implements CoachService.
func (c *coachService) Summarize(ctx context.Context, in CoachInput) (string, error) {
	if c.generator == nil {
		return "", nil
	}

	prompt := c.promptBuilder.BuildScanReviewPrompt(in)

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		text, err := c.generator.GenerateText(ctx, prompt, 0.4)
		if err == nil {
			return strings.TrimSpace(text), nil
		}
		lastErr = err

		if attempt < c.maxRetries {
			c.log.Warn("coach attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.String("filename", in.Filename),
				zap.Error(err),
			)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", c.maxRetries, lastErr)
}

type geminiGenerator struct {
	client    *genai.Client
	modelName string
}

func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (TextGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiGenerator{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 1024,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
