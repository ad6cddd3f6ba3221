package analyzer

import (
	"fmt"
	"strings"
)

const (
	maxInsights       = 5
	minInsights       = 3
	alignedInsight    = "Your resume is perfectly aligned with the job's core requirements!"
	keywordTipInsight = "Keyword Optimization: Use industry-standard terminology found in the JD to pass ATS filters."
)

type insightCategory struct {
	name    string
	markers []string
	format  string
}

// insightCategories is checked in order; the first category with a marker
// contained in the keyword wins.
var insightCategories = []insightCategory{
	{
		name:    "technical",
		markers: []string{"python", "java", "sql", "react", "aws", "api", "django", "fastapi", "docker", "git"},
		format:  "Technical Gap: The JD emphasizes '%s'. Add this to your Skills section.",
	},
	{
		name:    "soft_skills",
		markers: []string{"leadership", "communication", "management", "agile", "analytical", "problem"},
		format:  "Soft Skill: '%s' is a key requirement. Mention an example in your experience.",
	},
	{
		name:    "education",
		markers: []string{"degree", "bachelor", "master", "certification", "university", "phd"},
		format:  "Qualification: The system noted a missing mention of '%s' or related education.",
	},
}

// matchCategory returns the first category with a marker inside keyword, or nil.
func matchCategory(keyword string) *insightCategory {
	for i := range insightCategories {
		for _, marker := range insightCategories[i].markers {
			if strings.Contains(keyword, marker) {
				return &insightCategories[i]
			}
		}
	}
	return nil
}

// GenerateInsights turns missing keywords into feedback sentences. At most
// five category insights are produced; a generic tip is appended when fewer
// than three were found.
func GenerateInsights(missing []string) []string {
	if len(missing) == 0 {
		return []string{alignedInsight}
	}

	insights := make([]string, 0, maxInsights)
	for _, word := range missing {
		if c := matchCategory(word); c != nil {
			insights = append(insights, fmt.Sprintf(c.format, word))
		}
		if len(insights) >= maxInsights {
			break
		}
	}

	if len(insights) < minInsights {
		insights = append(insights, keywordTipInsight)
	}
	return insights
}
