package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/ats-checker/internal/logger"
)

type CoachPromptBuilder struct{}

func NewCoachPromptBuilder() *CoachPromptBuilder {
	return &CoachPromptBuilder{}
}

// BuildScanReviewPrompt creates the prompt for the narrative scan review.
func (pb *CoachPromptBuilder) BuildScanReviewPrompt(in CoachInput) string {
	missing := "none"
	if len(in.Missing) > 0 {
		missing = strings.Join(in.Missing, ", ")
	}

	return fmt.Sprintf(`You are an experienced recruiter reviewing how well a resume passes an applicant tracking system.

JOB DESCRIPTION:
%s

RESUME FILE: %s
KEYWORD MATCH SCORE: %.1f%% (keyword overlap, not a hiring probability)
MISSING KEYWORDS: %s

Write 2-3 sentences of practical advice for the candidate. Mention at most two missing keywords and where in the resume they belong.
Return ONLY the advice text, no JSON or markdown.`,
		logger.TruncateForLog(in.JobDescription, 4000), in.Filename, in.Score, missing)
}
