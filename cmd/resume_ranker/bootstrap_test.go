package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/config"
)

func TestLoadRankerConfig(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := loadRankerConfig("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("file values merged over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"top_keywords": 5}`), 0644))

		cfg, err := loadRankerConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.TopKeywords)
		assert.Equal(t, 8080, cfg.Port, "unset fields fall back to defaults")
	})

	t.Run("invalid weights rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{"weights": {"keyword": 0.9, "skills": 0.9, "experience": 0.9, "tfidf": 0.9}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := loadRankerConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sum to 1.0")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadRankerConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}

func TestBuildEngine(t *testing.T) {
	engine, err := buildEngine(config.Default())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultWeights(), engine.Weights())
}

func TestCandidateName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"resumes/jane_doe.pdf", "jane_doe"},
		{"jane.doe.resume.txt", "jane.doe.resume"},
		{"/abs/path/to/candidate.md", "candidate"},
		{"noextension", "noextension"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, candidateName(tt.path))
	}
}
