// Package textnorm turns raw document text into a normalized token stream
// used by the similarity engine.
package textnorm

import (
	"log"
	"regexp"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// minTokenLength is the shortest token the rich pipeline keeps; tokens of
// one or two characters are dropped.
const minTokenLength = 3

// Pipeline normalizes raw text into a lowercase, space-joined token stream.
// Implementations must be pure: the same input always yields the same output,
// and empty input yields an empty string rather than an error.
type Pipeline interface {
	Normalize(text string) string
}

// New returns the richest pipeline available. It tries to load the English
// lemmatizer dictionary once; when that fails it degrades to the basic
// pipeline. Callers cannot tell which variant they received, and the choice
// is made here, at construction, not per call.
func New() Pipeline {
	lem, err := golem.New(en.New())
	if err != nil {
		log.Printf("lemmatizer unavailable, using basic text normalization: %v", err)
		return basicPipeline{}
	}
	return &richPipeline{lemmatizer: lem}
}

// NewBasic returns the degraded pipeline: lowercasing, stripping
// non-alphanumerics, and collapsing whitespace.
func NewBasic() Pipeline {
	return basicPipeline{}
}

var tokenPattern = regexp.MustCompile(`[a-zA-Z0-9']+`)

// richPipeline tokenizes, drops stopwords and short tokens, and reduces the
// survivors to their lemma form.
type richPipeline struct {
	lemmatizer *golem.Lemmatizer
}

func (p *richPipeline) Normalize(text string) string {
	if text == "" {
		return ""
	}

	tokens := tokenPattern.FindAllString(text, -1)
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		lower := strings.ToLower(strings.Trim(token, "'"))
		if len(lower) < minTokenLength {
			continue
		}
		if IsStopword(lower) {
			continue
		}
		lemma := strings.ToLower(p.lemmatizer.Lemma(lower))
		if lemma == "" {
			lemma = lower
		}
		kept = append(kept, lemma)
	}

	return strings.Join(kept, " ")
}

var (
	nonAlphanumericPattern = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern      = regexp.MustCompile(`\s+`)
)

// basicPipeline is the deterministic fallback: lowercase, strip special
// characters, collapse whitespace. It keeps stopwords and short tokens,
// trading signal quality for availability.
type basicPipeline struct{}

func (basicPipeline) Normalize(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	lower = nonAlphanumericPattern.ReplaceAllString(lower, " ")
	lower = whitespacePattern.ReplaceAllString(lower, " ")

	return strings.TrimSpace(lower)
}
