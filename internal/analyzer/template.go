package analyzer

import (
	"fmt"
	"strings"
)

// DefaultTopKeywords is how many job description terms feed the template.
const DefaultTopKeywords = 10

// ExtractTopKeywords ranks the job description terms by TF-IDF weight over the
// single-document corpus and returns the best n, highest first.
func ExtractTopKeywords(jobDesc string, n int) []string {
	if n <= 0 {
		return nil
	}

	vectors := Vectorizer{MaxNGram: 1}.FitTransform([]string{jobDesc})
	ranked := vectors[0].Ranked()
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	keywords := make([]string, 0, len(ranked))
	for _, w := range ranked {
		keywords = append(keywords, w.Term)
	}
	return keywords
}

func keywordOr(keywords []string, i int, fallback string) string {
	if i < len(keywords) {
		return keywords[i]
	}
	return fallback
}

// BuildResumeTemplate renders the résumé skeleton around the ranked keywords.
func BuildResumeTemplate(keywords []string) string {
	return fmt.Sprintf(`
[NAME] | [PHONE] | [EMAIL] | [LINKEDIN/PORTFOLIO]

SUMMARY
-----------------------------------------------------------
[Write 2-3 sentences. Mention you have experience with %s. 
Tip: Use 'Action Verbs' like Led, Developed, or Optimized.]

TECHNICAL SKILLS (ATS Primary Scan Area)
-----------------------------------------------------------
Core Competencies: %s
[User Note: Do not remove these keywords; they are why the AI flagged this JD!]

PROFESSIONAL EXPERIENCE
-----------------------------------------------------------
[Most Recent Job Title] | [Company Name] | [Dates]
• Led a project involving %s resulting in a [X]%% increase in efficiency.
• Managed [Specific Task] using %s.
• [Tip: Always use numbers (%%, $, #) to prove your impact to the recruiter.]

EDUCATION
-----------------------------------------------------------
[Degree Name] | [University Name] | [Year]
    `,
		keywordOr(keywords, 0, "key industry skills"),
		strings.Join(keywords, ", "),
		keywordOr(keywords, 1, "industry standards"),
		keywordOr(keywords, 2, "relevant tools"),
	)
}
