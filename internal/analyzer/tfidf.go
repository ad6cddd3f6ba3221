package analyzer

import (
	"math"
	"sort"
	"strings"
)

// Vector is a sparse, L2-normalized TF-IDF row keyed by term.
type Vector map[string]float64

// Vectorizer builds TF-IDF rows over a small in-memory corpus.
// MaxNGram 1 yields unigrams only; 2 adds bigrams of adjacent kept tokens.
type Vectorizer struct {
	MaxNGram int
}

// Weighted is a term with its TF-IDF weight.
type Weighted struct {
	Term   string
	Weight float64
}

func (v Vectorizer) terms(doc string) []string {
	tokens := vectorTokens(doc)
	terms := append([]string(nil), tokens...)
	if v.MaxNGram >= 2 {
		for i := 0; i+1 < len(tokens); i++ {
			terms = append(terms, tokens[i]+" "+tokens[i+1])
		}
	}
	return terms
}

// FitTransform returns one vector per document using raw term counts, smooth
// idf ln((1+n)/(1+df))+1 and L2 row normalization. Documents with no terms
// yield empty vectors; an empty corpus vocabulary is not an error.
func (v Vectorizer) FitTransform(docs []string) []Vector {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)

	for i, doc := range docs {
		tf := make(map[string]int)
		for _, term := range v.terms(doc) {
			tf[term]++
		}
		for term := range tf {
			df[term]++
		}
		counts[i] = tf
	}

	n := float64(len(docs))
	vectors := make([]Vector, len(docs))
	for i, tf := range counts {
		vec := make(Vector, len(tf))
		var norm float64
		for term, c := range tf {
			idf := math.Log((1+n)/(1+float64(df[term]))) + 1
			w := float64(c) * idf
			vec[term] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for term := range vec {
				vec[term] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

// Cosine returns the cosine similarity of two vectors, 0 when either is empty.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot, na, nb float64
	for term, w := range a {
		dot += w * b[term]
	}
	for _, w := range a {
		na += w * w
	}
	for _, w := range b {
		nb += w * w
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Ranked returns the vector terms by descending weight, ties alphabetical.
func (vec Vector) Ranked() []Weighted {
	out := make([]Weighted, 0, len(vec))
	for term, w := range vec {
		out = append(out, Weighted{Term: term, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return strings.Compare(out[i].Term, out[j].Term) < 0
	})
	return out
}
