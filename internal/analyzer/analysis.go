package analyzer

// Analysis is the outcome of matching one résumé against a job description.
type Analysis struct {
	Score      float64
	Tier       string
	Missing    []string
	Insights   []string
	Strategies []string
}

// Analyze runs the full matching pipeline on already extracted résumé text.
// An empty résumé is valid input and scores 0 with the whole keyword gap.
func Analyze(resumeText, jobDesc string) Analysis {
	missing := MissingKeywords(jobDesc, resumeText)
	score := Score(resumeText, jobDesc)

	return Analysis{
		Score:      score,
		Tier:       StrategyTier(score),
		Missing:    missing,
		Insights:   GenerateInsights(missing),
		Strategies: ImprovementStrategies(score, missing),
	}
}
