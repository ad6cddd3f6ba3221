package analyzer

import (
	"math"
	"strconv"
)

const (
	// scoreCeiling is where non-identical texts are clamped once they exceed 99.
	scoreCeiling   = 98.5
	ceilingTrigger = 99.0
)

// Similarity returns the TF-IDF cosine similarity (unigrams and bigrams) of
// the cleaned résumé and job description, in [0,1].
func Similarity(cleanedResume, cleanedJD string) float64 {
	if cleanedResume == "" || cleanedJD == "" {
		return 0
	}

	vectors := Vectorizer{MaxNGram: 2}.FitTransform([]string{cleanedResume, cleanedJD})
	sim := Cosine(vectors[0], vectors[1])

	return math.Max(0, math.Min(1, sim))
}

// DisplayScore maps a raw cosine similarity to a 0-100 score with one decimal,
// lifting the low end through a square root.
func DisplayScore(sim float64) float64 {
	sim = math.Max(0, math.Min(1, sim))
	return round1(math.Sqrt(sim) * 100)
}

// Score computes the match score of resumeText against jobDesc. Only texts
// that clean to identical strings may score above 99.
func Score(resumeText, jobDesc string) float64 {
	cleanedResume := CleanText(resumeText)
	cleanedJD := CleanText(jobDesc)

	score := DisplayScore(Similarity(cleanedResume, cleanedJD))
	if score > ceilingTrigger && cleanedResume != cleanedJD {
		score = scoreCeiling
	}
	return score
}

// round1 rounds on the shortest decimal form of v, so 0.15 (stored just
// below 0.15) becomes 0.1 and exact halves go to the even digit.
func round1(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}
