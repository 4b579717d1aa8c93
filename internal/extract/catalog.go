// Package extract pulls structured signals out of raw document text:
// keywords, technical and soft skills, and years of experience.
package extract

import (
	"fmt"
	"strings"

	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/types"
)

// SkillCategory groups related technical skill phrases. Category membership
// is static configuration; downstream scoring only sees the flat set.
type SkillCategory struct {
	Name    string
	Phrases []string
}

// Catalog is the static skill taxonomy matched against document text.
// It is built once at bootstrap and read-only afterwards.
type Catalog struct {
	Technical []SkillCategory
	Soft      []string
}

// DefaultCatalog returns the built-in skill taxonomy.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Technical: []SkillCategory{
			{Name: "programming", Phrases: []string{
				"python", "java", "javascript", "c++", "c#", "ruby", "php",
				"go", "rust", "kotlin", "swift",
			}},
			{Name: "web_dev", Phrases: []string{
				"html", "css", "react", "angular", "vue", "nodejs", "django",
				"flask", "express",
			}},
			{Name: "databases", Phrases: []string{
				"sql", "mysql", "postgresql", "mongodb", "redis",
				"elasticsearch", "sqlite",
			}},
			{Name: "cloud", Phrases: []string{
				"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
				"jenkins",
			}},
			{Name: "ml_ai", Phrases: []string{
				"machine learning", "deep learning", "tensorflow", "pytorch",
				"scikit-learn", "pandas", "numpy",
			}},
			{Name: "tools", Phrases: []string{
				"git", "jira", "confluence", "slack", "figma", "photoshop",
				"illustrator",
			}},
		},
		Soft: []string{
			"leadership", "communication", "teamwork", "problem solving",
			"analytical", "creative", "adaptable", "organized",
			"detail oriented", "time management", "project management",
			"collaboration", "mentoring", "training",
		},
	}
}

// Validate checks that the catalog contains at least one technical skill
// phrase. An empty catalog is a configuration error that must stop startup.
func (c *Catalog) Validate() error {
	for _, category := range c.Technical {
		if len(category.Phrases) > 0 {
			return nil
		}
	}
	return fmt.Errorf("config error: skill catalog has no technical skill phrases")
}

// Skills extracts the technical and soft skills present in text using
// case-insensitive substring matching. Multi-word phrases such as
// "machine learning" match as whole substrings, not token by token.
func (c *Catalog) Skills(text string) types.SkillSet {
	lower := strings.ToLower(text)

	found := types.SkillSet{}
	for _, category := range c.Technical {
		for _, phrase := range category.Phrases {
			if containsPhrase(lower, phrase) {
				found.Technical = append(found.Technical, phrase)
			}
		}
	}
	for _, phrase := range c.Soft {
		if containsPhrase(lower, phrase) {
			found.Soft = append(found.Soft, phrase)
		}
	}

	return found
}
