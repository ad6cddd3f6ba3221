package analyzer

import (
	"math"
	"strings"
)

const (
	fallbackGapKeyword = "key industry terms"
	keywordPlaceholder = "{keyword}"
)

// strategyBand covers scores in [lower, upper). Templates may contain the
// {keyword} placeholder for the first missing keyword.
type strategyBand struct {
	tier      string
	lower     float64
	upper     float64
	templates [3]string
}

var strategyBands = []strategyBand{
	{
		tier:  "critical_gap",
		lower: math.Inf(-1),
		upper: 40,
		templates: [3]string{
			"Critical Gap: Your resume completely lacks mention of '{keyword}'.",
			"Formatting: Ensure your resume is a single-column layout.",
			"Action: Standardize headings like 'Work Experience' and 'Education'.",
		},
	},
	{
		tier:  "optimization",
		lower: 40,
		upper: 75,
		templates: [3]string{
			"Optimization: Increase keyword density for terms like '{keyword}'.",
			"Quantification: Use numbers (e.g., 'Improved speed by 20%') to stand out.",
			"Context: Ensure missing keywords are placed within professional experience.",
		},
	},
	{
		tier:  "refinement",
		lower: 75,
		upper: math.Inf(1),
		templates: [3]string{
			"Refinement: You are a strong match. Focus on active verbs like 'Spearheaded' or 'Architected'.",
			"Strategy: Double-check that your contact links (LinkedIn/GitHub) are clickable in the PDF.",
			"Final Polish: Tailor your Summary to mention the company name to show high intent.",
		},
	},
}

func bandFor(score float64) strategyBand {
	for _, b := range strategyBands {
		if score >= b.lower && score < b.upper {
			return b
		}
	}
	// NaN falls through every comparison
	return strategyBands[0]
}

// StrategyTier names the band a score falls in.
func StrategyTier(score float64) string {
	return bandFor(score).tier
}

// ImprovementStrategies returns exactly three strategies for the score band.
func ImprovementStrategies(score float64, missing []string) []string {
	gap := fallbackGapKeyword
	if len(missing) > 0 {
		gap = missing[0]
	}

	band := bandFor(score)
	out := make([]string, 0, len(band.templates))
	for _, tmpl := range band.templates {
		out = append(out, strings.ReplaceAll(tmpl, keywordPlaceholder, gap))
	}
	return out
}
