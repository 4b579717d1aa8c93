// Package similarity computes the TF-IDF cosine similarity between exactly
// two documents: one resume and one job description.
package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/textnorm"
)

const (
	// DefaultMaxFeatures caps the vocabulary at the most frequent terms
	// across the two-document corpus.
	DefaultMaxFeatures = 1000

	// corpusSize is always 2: the vectorizer is fit per resume/job pair.
	// Fitting on a larger corpus would change the IDF weighting and with it
	// the meaning of every score.
	corpusSize = 2
)

var termSplitPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Vectorizer builds a term-weighted vector space over a pair of documents
// and scores their cosine similarity. A Vectorizer is stateless and safe for
// concurrent use; every Similarity call fits a fresh vocabulary.
type Vectorizer struct {
	maxFeatures int
}

// NewVectorizer returns a Vectorizer with the given vocabulary cap.
// A non-positive cap falls back to DefaultMaxFeatures.
func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{maxFeatures: maxFeatures}
}

// Similarity returns the TF-IDF cosine similarity of the two texts scaled to
// [0, 100]. Empty input on either side, or a corpus whose vocabulary is
// empty after stopword removal, yields 0 rather than an error.
func (v *Vectorizer) Similarity(resumeText, jobText string) float64 {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return 0
	}

	resumeCounts := termCounts(resumeText)
	jobCounts := termCounts(jobText)
	if len(resumeCounts) == 0 || len(jobCounts) == 0 {
		return 0
	}

	vocabulary := v.buildVocabulary(resumeCounts, jobCounts)
	if len(vocabulary) == 0 {
		return 0
	}

	resumeVec := tfidfVector(resumeCounts, jobCounts, vocabulary)
	jobVec := tfidfVector(jobCounts, resumeCounts, vocabulary)

	similarity := cosine(resumeVec, jobVec) * 100
	if similarity < 0 {
		return 0
	}
	if similarity > 100 {
		return 100
	}
	return similarity
}

// termCounts tokenizes text into lowercase unigrams and bigrams, dropping
// English stopwords and single-character tokens.
func termCounts(text string) map[string]int {
	split := termSplitPattern.Split(strings.ToLower(text), -1)

	tokens := make([]string, 0, len(split))
	for _, token := range split {
		if len(token) < 2 {
			continue
		}
		if textnorm.IsStopword(token) {
			continue
		}
		tokens = append(tokens, token)
	}

	counts := make(map[string]int, len(tokens)*2)
	for i, token := range tokens {
		counts[token]++
		if i+1 < len(tokens) {
			counts[token+" "+tokens[i+1]]++
		}
	}
	return counts
}

// buildVocabulary takes the union of both documents' terms, capped at
// maxFeatures by total corpus frequency with alphabetical tie-break.
func (v *Vectorizer) buildVocabulary(a, b map[string]int) []string {
	totals := make(map[string]int, len(a)+len(b))
	for term, count := range a {
		totals[term] += count
	}
	for term, count := range b {
		totals[term] += count
	}

	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totals[terms[i]] != totals[terms[j]] {
			return totals[terms[i]] > totals[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}
	return terms
}

// tfidfVector computes the L2-normalized TF-IDF vector for the document with
// counts docCounts. IDF uses the smoothed form ln((1+N)/(1+df))+1 over the
// two-document corpus, so terms shared by both documents get IDF 1 and terms
// unique to one document get a higher weight.
func tfidfVector(docCounts, otherCounts map[string]int, vocabulary []string) []float64 {
	vector := make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		tf := float64(docCounts[term])
		if tf == 0 {
			continue
		}

		df := 1
		if otherCounts[term] > 0 {
			df = 2
		}
		idf := math.Log(float64(1+corpusSize)/float64(1+df)) + 1

		vector[i] = tf * idf
	}

	// L2 normalization
	norm := 0.0
	for _, w := range vector {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vector {
			vector[i] /= norm
		}
	}

	return vector
}

// cosine returns the dot product of two L2-normalized vectors.
func cosine(a, b []float64) float64 {
	dot := 0.0
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}
