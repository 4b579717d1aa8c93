// Package scoring combines keyword, skill, experience, and TF-IDF signals
// into a weighted match score for one resume against one job description.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/config"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/extract"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/similarity"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/textnorm"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/types"
)

// Neutral defaults used when a sub-score cannot be computed or a signal is
// absent from the inputs.
const (
	neutralSkillsScore     = 50 // Job lists no technical skills
	neutralExperienceScore = 75 // Job states no experience requirement
	noExperienceEvidence   = 30 // Job states a requirement, resume shows none
	failedExperienceScore  = 50 // Experience sub-score computation failed
)

// Experience ratio buckets. The step function is intentional: small
// differences in years must not create false precision.
const (
	experienceFullMatch    = 100
	experienceCloseMatch   = 80
	experiencePartialMatch = 60
	experienceWeakMatch    = 40
)

// Engine scores resumes against job descriptions. It is immutable after
// construction and safe for concurrent use.
type Engine struct {
	weights       config.Weights
	catalog       *extract.Catalog
	pipeline      textnorm.Pipeline
	vectorizer    *similarity.Vectorizer
	topKeywords   int
	minKeywordLen int
}

// NewEngine builds a scoring engine from the weight table, skill catalog,
// and normalization pipeline. It fails fast on configuration errors: weights
// that do not sum to 1.0 or an empty skill catalog.
func NewEngine(cfg config.Config, pipeline textnorm.Pipeline, catalog *extract.Catalog) (*Engine, error) {
	merged := cfg.MergeWithDefaults(config.Default())

	if err := merged.Weights.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil {
		catalog = extract.DefaultCatalog()
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if pipeline == nil {
		pipeline = textnorm.NewBasic()
	}

	return &Engine{
		weights:       *merged.Weights,
		catalog:       catalog,
		pipeline:      pipeline,
		vectorizer:    similarity.NewVectorizer(merged.MaxFeatures),
		topKeywords:   merged.TopKeywords,
		minKeywordLen: merged.MinKeywordLength,
	}, nil
}

// Weights returns the weight table the engine was built with.
func (e *Engine) Weights() config.Weights {
	return e.weights
}

// NormalizeDocument produces the two representations of a raw text blob.
func (e *Engine) NormalizeDocument(raw string) types.Document {
	return types.Document{
		Raw:        raw,
		Normalized: e.pipeline.Normalize(raw),
	}
}

// Score computes the four sub-scores and the weighted overall score for one
// resume against one job description. A failure inside any single sub-score
// degrades that sub-score to its documented default; it never prevents the
// other three from being computed.
func (e *Engine) Score(resume, jobDesc types.Document) types.ScoreRecord {
	record := types.ScoreRecord{
		KeywordScore:    e.keywordScore(resume.Raw, jobDesc.Raw),
		SkillsScore:     e.skillsScore(resume.Raw, jobDesc.Raw),
		ExperienceScore: e.experienceScore(resume.Raw, jobDesc.Raw),
		TFIDFSimilarity: e.tfidfScore(resume.Normalized, jobDesc.Normalized),
	}
	record.OverallScore = e.overallScore(record)
	return record
}

// ScoreTexts is Score for callers holding raw strings; normalization happens
// internally.
func (e *Engine) ScoreTexts(resumeRaw, jobRaw string) types.ScoreRecord {
	return e.Score(e.NormalizeDocument(resumeRaw), e.NormalizeDocument(jobRaw))
}

// keywordScore is the fraction of the job description's keywords present as
// case-insensitive substrings in the raw resume text, scaled to [0,100].
func (e *Engine) keywordScore(resumeRaw, jobRaw string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
		}
	}()

	jobKeywords := extract.KeywordsWithMinLength(jobRaw, e.topKeywords, e.minKeywordLen)
	if len(jobKeywords) == 0 {
		return 0
	}

	// Keywords come out of extract.Keywords already lowercased; membership
	// is substring containment in the raw resume, not token equality.
	resumeLower := strings.ToLower(resumeRaw)
	matches := 0
	for _, keyword := range jobKeywords {
		if strings.Contains(resumeLower, keyword) {
			matches++
		}
	}

	return float64(matches) / float64(len(jobKeywords)) * 100
}

// skillsScore is the coverage of the job's technical skill set by the
// resume's. A job with no stated technical skills scores neutral 50.
func (e *Engine) skillsScore(resumeRaw, jobRaw string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
		}
	}()

	jobSkills := e.catalog.Skills(jobRaw).TechnicalSet()
	if len(jobSkills) == 0 {
		return neutralSkillsScore
	}

	resumeSkills := e.catalog.Skills(resumeRaw).TechnicalSet()
	matched := 0
	for skill := range jobSkills {
		if _, ok := resumeSkills[skill]; ok {
			matched++
		}
	}

	score = float64(matched) / float64(len(jobSkills)) * 100
	return math.Min(score, 100)
}

// experienceScore buckets the ratio of the candidate's stated years to the
// job's required years. Zero extracted years means "not stated", which is
// scored 30 when the job requires experience, not treated as zero years.
func (e *Engine) experienceScore(resumeRaw, jobRaw string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = failedExperienceScore
		}
	}()

	required := extract.ExperienceYears(jobRaw)
	if required == 0 {
		return neutralExperienceScore
	}

	have := extract.ExperienceYears(resumeRaw)
	if have == 0 {
		return noExperienceEvidence
	}

	ratio := float64(have) / float64(required)
	switch {
	case ratio >= 1.0:
		return experienceFullMatch
	case ratio >= 0.7:
		return experienceCloseMatch
	case ratio >= 0.5:
		return experiencePartialMatch
	default:
		return experienceWeakMatch
	}
}

// tfidfScore runs the pairwise TF-IDF cosine similarity on the normalized
// texts.
func (e *Engine) tfidfScore(resumeNorm, jobNorm string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
		}
	}()

	return e.vectorizer.Similarity(resumeNorm, jobNorm)
}

// overallScore is the weighted combination of the four sub-scores, rounded
// to one decimal place.
func (e *Engine) overallScore(record types.ScoreRecord) float64 {
	overall := record.KeywordScore*e.weights.Keyword +
		record.SkillsScore*e.weights.Skills +
		record.ExperienceScore*e.weights.Experience +
		record.TFIDFSimilarity*e.weights.TFIDF

	return math.Round(overall*10) / 10
}

// MatchedKeywords returns the keywords common to both documents, sorted
// alphabetically so output is deterministic. Callers cap display themselves.
func (e *Engine) MatchedKeywords(resumeRaw, jobRaw string) []string {
	jobKeywords := extract.KeywordsWithMinLength(jobRaw, e.topKeywords, e.minKeywordLen)
	resumeKeywords := extract.KeywordsWithMinLength(resumeRaw, e.topKeywords, e.minKeywordLen)

	resumeSet := make(map[string]struct{}, len(resumeKeywords))
	for _, keyword := range resumeKeywords {
		resumeSet[keyword] = struct{}{}
	}

	matched := make([]string, 0)
	for _, keyword := range jobKeywords {
		if _, ok := resumeSet[keyword]; ok {
			matched = append(matched, keyword)
		}
	}

	sort.Strings(matched)
	return matched
}
