package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdenticalDocuments(t *testing.T) {
	v := NewVectorizer(0)

	text := "senior python developer django flask postgresql"
	got := v.Similarity(text, text)
	assert.InDelta(t, 100.0, got, 1e-6, "identical documents must score 100")
}

func TestSimilarityEmptyInput(t *testing.T) {
	v := NewVectorizer(0)

	assert.Zero(t, v.Similarity("", "python developer"))
	assert.Zero(t, v.Similarity("python developer", ""))
	assert.Zero(t, v.Similarity("", ""))
	assert.Zero(t, v.Similarity("   \n\t  ", "python developer"), "whitespace-only counts as empty")
}

func TestSimilarityStopwordOnlyInput(t *testing.T) {
	v := NewVectorizer(0)

	// Every token is a stopword or single character; the vocabulary is
	// empty after filtering and the score degrades to zero.
	assert.Zero(t, v.Similarity("the and of a to", "python developer"))
}

func TestSimilarityDisjointDocuments(t *testing.T) {
	v := NewVectorizer(0)

	got := v.Similarity("gardening cooking painting", "kubernetes terraform ansible")
	assert.Zero(t, got, "documents sharing no terms have orthogonal vectors")
}

func TestSimilarityPartialOverlap(t *testing.T) {
	v := NewVectorizer(0)

	resume := "python developer building django services"
	job := "python developer wanted for platform team"
	got := v.Similarity(resume, job)

	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 100.0)
}

func TestSimilarityOrderingTracksOverlap(t *testing.T) {
	v := NewVectorizer(0)

	job := "python django postgresql docker kubernetes"
	strong := v.Similarity("python django postgresql docker", job)
	weak := v.Similarity("python gardening cooking painting", job)

	assert.Greater(t, strong, weak, "more shared terms must score higher")
}

func TestSimilarityBounds(t *testing.T) {
	v := NewVectorizer(0)

	inputs := []struct{ a, b string }{
		{"python", "python"},
		{"python developer", "java engineer"},
		{"one shared word python here", "python appears in both texts"},
	}
	for _, in := range inputs {
		got := v.Similarity(in.a, in.b)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestSimilarityMaxFeaturesCap(t *testing.T) {
	// A tiny cap still produces a valid score over the surviving vocabulary.
	v := NewVectorizer(2)

	got := v.Similarity("python python django flask", "python python django flask")
	assert.InDelta(t, 100.0, got, 1e-6)
}

func TestNewVectorizerDefaultCap(t *testing.T) {
	v := NewVectorizer(-5)
	assert.Equal(t, DefaultMaxFeatures, v.maxFeatures)
}
