package analyzer

import "sort"

// MaxMissingKeywords caps the keyword gap list.
const MaxMissingKeywords = 12

// MissingKeywords returns the job description tokens (≥4 word characters)
// absent from the résumé, minus generic posting words, sorted ascending and
// capped at MaxMissingKeywords. A blank résumé surfaces the whole gap.
func MissingKeywords(jobDesc, resumeText string) []string {
	jdTokens := tokenSet(jobDesc)
	resumeTokens := tokenSet(resumeText)

	missing := make([]string, 0, len(jdTokens))
	for tok := range jdTokens {
		if _, ok := resumeTokens[tok]; ok {
			continue
		}
		if IsGapStopWord(tok) {
			continue
		}
		missing = append(missing, tok)
	}

	sort.Strings(missing)
	if len(missing) > MaxMissingKeywords {
		missing = missing[:MaxMissingKeywords]
	}
	return missing
}
