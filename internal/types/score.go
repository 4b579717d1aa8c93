package types

import "github.com/google/uuid"

// ScoreRecord holds the four sub-scores and the weighted overall score for
// one resume measured against one job description. Every field is in [0,100].
type ScoreRecord struct {
	KeywordScore    float64 `json:"keyword_score"`
	SkillsScore     float64 `json:"skills_score"`
	ExperienceScore float64 `json:"experience_score"`
	TFIDFSimilarity float64 `json:"tfidf_similarity"`
	OverallScore    float64 `json:"overall_score"`
}

// RankedCandidate is one scored resume in a ranking run. It is created once
// per resume per run and never mutated after scoring.
type RankedCandidate struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Rank            int         `json:"rank"`
	Resume          Document    `json:"-"`
	Scores          ScoreRecord `json:"scores"`
	Insights        []string    `json:"insights"`
	MatchedKeywords []string    `json:"matched_keywords"`
}
