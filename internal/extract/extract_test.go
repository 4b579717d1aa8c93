package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywords(t *testing.T) {
	t.Run("frequency ordering", func(t *testing.T) {
		text := "python django python django flask"
		got := Keywords(text, 10)
		assert.Equal(t, []string{"python", "django", "flask"}, got)
	})

	t.Run("ties keep first appearance order", func(t *testing.T) {
		// alpha and beta both occur twice; alpha appeared first.
		text := "alpha beta alpha beta"
		got := Keywords(text, 10)
		assert.Equal(t, []string{"alpha", "beta"}, got)
	})

	t.Run("topN truncation", func(t *testing.T) {
		text := "kubernetes kubernetes terraform terraform ansible"
		got := Keywords(text, 2)
		assert.Equal(t, []string{"kubernetes", "terraform"}, got)
	})

	t.Run("short words dropped", func(t *testing.T) {
		got := Keywords("use the api api api now", 10)
		assert.NotContains(t, got, "api", "three-letter words are below the minimum length")
		assert.NotContains(t, got, "use")
	})

	t.Run("stopwords dropped", func(t *testing.T) {
		got := Keywords("should would could python must shall", 10)
		assert.Equal(t, []string{"python"}, got)
	})

	t.Run("case folded", func(t *testing.T) {
		got := Keywords("Python PYTHON python", 10)
		assert.Equal(t, []string{"python"}, got)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, Keywords("", 10))
	})

	t.Run("non-positive topN", func(t *testing.T) {
		assert.Empty(t, Keywords("python developer", 0))
	})
}

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"plus years of experience", "5+ years of experience with Python", 5},
		{"years experience", "10 years experience in backend systems", 10},
		{"yrs exp", "has 3 yrs exp with cloud platforms", 3},
		{"years in", "7 years in software development", 7},
		{"case insensitive", "12 Years Of Experience", 12},
		{"multiple mentions take the max", "2 years of experience in Go and 8 years of experience in Java", 8},
		{"no experience phrase", "Seasoned engineer, shipped many systems", 0},
		{"bare number", "worked on 4 projects", 0},
		{"empty text", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceYears(tt.text))
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.NoError(t, catalog.Validate())

	names := make([]string, len(catalog.Technical))
	for i, category := range catalog.Technical {
		names[i] = category.Name
	}
	assert.Equal(t, []string{"programming", "web_dev", "databases", "cloud", "ml_ai", "tools"}, names)
	assert.NotEmpty(t, catalog.Soft)
}

func TestCatalogValidate(t *testing.T) {
	empty := &Catalog{Soft: []string{"leadership"}}
	err := empty.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestCatalogSkills(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("single-word skills", func(t *testing.T) {
		found := catalog.Skills("Experienced Python developer using Docker and PostgreSQL")
		assert.Contains(t, found.Technical, "python")
		assert.Contains(t, found.Technical, "docker")
		assert.Contains(t, found.Technical, "postgresql")
	})

	t.Run("multi-word phrase matches as substring", func(t *testing.T) {
		found := catalog.Skills("Applied machine learning to fraud detection")
		assert.Contains(t, found.Technical, "machine learning")
	})

	t.Run("case insensitive", func(t *testing.T) {
		found := catalog.Skills("KUBERNETES and TensorFlow")
		assert.Contains(t, found.Technical, "kubernetes")
		assert.Contains(t, found.Technical, "tensorflow")
	})

	t.Run("substring semantics include embedded matches", func(t *testing.T) {
		// Matching is plain substring containment, so "javascript" also
		// matches the "java" phrase. Callers rely on this being stable.
		found := catalog.Skills("JavaScript frontend work")
		assert.Contains(t, found.Technical, "javascript")
		assert.Contains(t, found.Technical, "java")
	})

	t.Run("soft skills", func(t *testing.T) {
		found := catalog.Skills("Strong leadership and communication")
		assert.Contains(t, found.Soft, "leadership")
		assert.Contains(t, found.Soft, "communication")
	})

	t.Run("no matches", func(t *testing.T) {
		found := catalog.Skills("enjoys hiking near home")
		assert.Empty(t, found.Technical)
		assert.Empty(t, found.Soft)
	})
}
