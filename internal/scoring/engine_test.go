package scoring

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/config"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/textnorm"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(config.Config{}, textnorm.NewBasic(), nil)
	require.NoError(t, err)
	return engine
}

func TestNewEngine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		engine, err := NewEngine(config.Config{}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultWeights(), engine.Weights())
	})

	t.Run("rejects weights that do not sum to one", func(t *testing.T) {
		w := config.Weights{Keyword: 0.5, Skills: 0.5, Experience: 0.5, TFIDF: 0.5}
		_, err := NewEngine(config.Config{Weights: &w}, nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sum to 1.0")
	})

	t.Run("rejects negative weights", func(t *testing.T) {
		w := config.Weights{Keyword: -0.2, Skills: 0.5, Experience: 0.45, TFIDF: 0.25}
		_, err := NewEngine(config.Config{Weights: &w}, nil, nil)
		assert.Error(t, err)
	})

	t.Run("custom weights accepted", func(t *testing.T) {
		w := config.Weights{Keyword: 0.25, Skills: 0.25, Experience: 0.25, TFIDF: 0.25}
		engine, err := NewEngine(config.Config{Weights: &w}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, w, engine.Weights())
	})
}

func TestScoreBounds(t *testing.T) {
	engine := newTestEngine(t)

	pairs := []struct{ resume, job string }{
		{"Python developer, 5 years of experience with Django", "Python engineer with 3 years of experience"},
		{"", "Python engineer with 3 years of experience"},
		{"unrelated hobby text", "Python engineer"},
		{"Python Python Python", "Python"},
	}

	for _, pair := range pairs {
		record := engine.ScoreTexts(pair.resume, pair.job)
		for name, score := range map[string]float64{
			"keyword":    record.KeywordScore,
			"skills":     record.SkillsScore,
			"experience": record.ExperienceScore,
			"tfidf":      record.TFIDFSimilarity,
			"overall":    record.OverallScore,
		} {
			assert.GreaterOrEqual(t, score, 0.0, "%s score below range", name)
			assert.LessOrEqual(t, score, 100.0, "%s score above range", name)
		}
	}
}

func TestKeywordScore(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("fractional match", func(t *testing.T) {
		// Job keywords: python (2), django (2), flask (1).
		job := "python django python django flask"
		resume := "python and flask here"
		record := engine.ScoreTexts(resume, job)
		assert.InDelta(t, 200.0/3.0, record.KeywordScore, 0.01)
	})

	t.Run("full match", func(t *testing.T) {
		record := engine.ScoreTexts("python django flask", "python django flask")
		assert.InDelta(t, 100.0, record.KeywordScore, 1e-9)
	})

	t.Run("empty resume scores zero", func(t *testing.T) {
		record := engine.ScoreTexts("", "python django flask")
		assert.Zero(t, record.KeywordScore)
	})

	t.Run("job with no extractable keywords scores zero", func(t *testing.T) {
		record := engine.ScoreTexts("python developer", "a an the of to")
		assert.Zero(t, record.KeywordScore)
	})
}

func TestConfiguredMinKeywordLength(t *testing.T) {
	engine, err := NewEngine(config.Config{MinKeywordLength: 7}, textnorm.NewBasic(), nil)
	require.NoError(t, err)

	t.Run("words below the minimum yield no keywords", func(t *testing.T) {
		record := engine.ScoreTexts("code team", "code code team")
		assert.Zero(t, record.KeywordScore, "four-letter words are below the configured minimum")
	})

	t.Run("words at or above the minimum still score", func(t *testing.T) {
		record := engine.ScoreTexts("kubernetes expert", "kubernetes kubernetes")
		assert.InDelta(t, 100.0, record.KeywordScore, 1e-9)
	})

	t.Run("matched keywords honor the minimum", func(t *testing.T) {
		matched := engine.MatchedKeywords("code kubernetes", "code kubernetes")
		assert.Equal(t, []string{"kubernetes"}, matched)
	})
}

func TestSkillsScore(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("neutral when job lists no technical skills", func(t *testing.T) {
		record := engine.ScoreTexts("python developer", "friendly person wanted for the team")
		assert.InDelta(t, 50.0, record.SkillsScore, 1e-9)
	})

	t.Run("partial coverage", func(t *testing.T) {
		// Job technical set: {python, flask}; resume covers python only.
		record := engine.ScoreTexts("Strong Python background", "Python and Flask required")
		assert.InDelta(t, 50.0, record.SkillsScore, 1e-9)
	})

	t.Run("full coverage", func(t *testing.T) {
		record := engine.ScoreTexts("Python, Django, and more Python", "Python and Django required")
		assert.InDelta(t, 100.0, record.SkillsScore, 1e-9)
	})

	t.Run("zero coverage", func(t *testing.T) {
		record := engine.ScoreTexts("enjoys hiking near home", "Python and Django required")
		assert.Zero(t, record.SkillsScore)
	})
}

func TestExperienceScore(t *testing.T) {
	engine := newTestEngine(t)

	job := "requires 10 years of experience"

	tests := []struct {
		name   string
		resume string
		job    string
		want   float64
	}{
		{"job states no requirement", "8 years of experience", "great team, remote work", 75},
		{"resume states no years", "seasoned engineer", job, 30},
		{"meets requirement", "10 years of experience", job, 100},
		{"exceeds requirement", "15 years of experience", job, 100},
		{"close match at 0.7", "7 years of experience", job, 80},
		{"partial match at 0.5", "5 years of experience", job, 60},
		{"weak match below 0.5", "4 years of experience", job, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := engine.ScoreTexts(tt.resume, tt.job)
			assert.InDelta(t, tt.want, record.ExperienceScore, 1e-9)
		})
	}
}

func TestOverallScoreIsWeightedSum(t *testing.T) {
	engine := newTestEngine(t)
	weights := engine.Weights()

	record := engine.ScoreTexts(
		"Python developer with 6 years of experience in Django and Flask",
		"Looking for a Python developer with 5 years of experience in Django",
	)

	expected := record.KeywordScore*weights.Keyword +
		record.SkillsScore*weights.Skills +
		record.ExperienceScore*weights.Experience +
		record.TFIDFSimilarity*weights.TFIDF

	assert.InDelta(t, expected, record.OverallScore, 0.05+1e-9, "overall is the weighted sum rounded to one decimal")
}

func TestScoreEndToEnd(t *testing.T) {
	engine := newTestEngine(t)

	resume := "Python developer with 6 years of experience building Django applications"
	job := "We need a Python developer with 5 years of experience in Django"

	record := engine.ScoreTexts(resume, job)

	// 6 years against a 5 year requirement is a full match.
	assert.InDelta(t, 100.0, record.ExperienceScore, 1e-9)
	// Both documents name python and django; coverage is complete.
	assert.InDelta(t, 100.0, record.SkillsScore, 1e-9)
	assert.Greater(t, record.KeywordScore, 0.0)
	assert.Greater(t, record.TFIDFSimilarity, 0.0)
	assert.Greater(t, record.OverallScore, 50.0)
}

func TestScoreEmptyResume(t *testing.T) {
	engine := newTestEngine(t)

	record := engine.ScoreTexts("", "Python developer with 5 years of experience in Django")

	assert.Zero(t, record.KeywordScore)
	assert.Zero(t, record.SkillsScore)
	assert.InDelta(t, 30.0, record.ExperienceScore, 1e-9, "missing years against a stated requirement")
	assert.Zero(t, record.TFIDFSimilarity)
	assert.GreaterOrEqual(t, record.OverallScore, 0.0)
}

func TestMatchedKeywords(t *testing.T) {
	engine := newTestEngine(t)

	matched := engine.MatchedKeywords(
		"django and python projects, zebra hobby",
		"python django flask backend",
	)

	assert.Contains(t, matched, "python")
	assert.Contains(t, matched, "django")
	assert.NotContains(t, matched, "flask")
	assert.NotContains(t, matched, "zebra")
	assert.True(t, sort.StringsAreSorted(matched), "matched keywords are sorted for deterministic output")
}

func TestScoreDeterministic(t *testing.T) {
	engine := newTestEngine(t)

	resume := "Python developer, 5 years of experience with Django and PostgreSQL"
	job := "Senior Python role requiring 4 years of experience with Django"

	first := engine.ScoreTexts(resume, job)
	second := engine.ScoreTexts(resume, job)
	assert.Equal(t, first, second)
}
