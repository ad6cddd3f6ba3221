// Package analyzer holds the résumé/job-description matching pipeline:
// cleaning, keyword gaps, TF-IDF similarity, feedback and template generation.
package analyzer

import (
	"regexp"
	"strings"
)

// Word characters are letters, digits and underscore.
var (
	gapTokenPattern    = regexp.MustCompile(`[\p{L}\p{N}_]{4,}`)
	vectorTokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)
)

// CleanText lowercases text, replaces everything that is not an ASCII letter,
// digit or whitespace with a space and collapses whitespace runs.
func CleanText(text string) string {
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			// whitespace and punctuation alike become separators
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// tokenSet returns the distinct ≥4 character word tokens of the lowercased text.
func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range gapTokenPattern.FindAllString(strings.ToLower(text), -1) {
		set[tok] = struct{}{}
	}
	return set
}

// vectorTokens splits text into ≥2 character word tokens, in order, dropping
// English stop words.
func vectorTokens(text string) []string {
	raw := vectorTokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
