// Package ranking scores a batch of candidate resumes against one job
// description and orders them by overall match score.
package ranking

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/scoring"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/types"
)

// Candidate is one resume submitted for ranking. ExtractionErr marks
// candidates whose upstream text extraction failed; they are excluded from
// scoring and reported, never scored as zero.
type Candidate struct {
	Name          string
	Text          string
	ExtractionErr error
}

// ExcludedCandidate records a candidate dropped before scoring and why.
type ExcludedCandidate struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// RankResult is the outcome of one ranking run.
type RankResult struct {
	RunID    uuid.UUID               `json:"run_id"`
	Ranked   []types.RankedCandidate `json:"ranked"`
	Excluded []ExcludedCandidate     `json:"excluded,omitempty"`
}

// Rank scores every candidate against the job description concurrently and
// returns them sorted by overall score descending. Candidates with equal
// scores keep their submission order. Candidates without extractable text
// are excluded and reported in the result.
//
// Each candidate is scored in isolation: a failure in one resume's pipeline
// never blocks or corrupts the scoring of its siblings.
func Rank(ctx context.Context, engine *scoring.Engine, jobDesc string, candidates []Candidate) (*RankResult, error) {
	if engine == nil {
		return nil, fmt.Errorf("ranking requires a scoring engine")
	}

	result := &RankResult{RunID: uuid.New()}

	// Partition out candidates whose extraction failed upstream.
	scorable := make([]Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ExtractionErr != nil {
			reason := candidate.ExtractionErr.Error()
			log.Printf("Warning: excluding candidate %q from ranking: %s", candidate.Name, reason)
			result.Excluded = append(result.Excluded, ExcludedCandidate{Name: candidate.Name, Reason: reason})
			continue
		}
		if candidate.Text == "" {
			log.Printf("Warning: excluding candidate %q from ranking: no extractable text", candidate.Name)
			result.Excluded = append(result.Excluded, ExcludedCandidate{Name: candidate.Name, Reason: "no extractable text"})
			continue
		}
		scorable = append(scorable, candidate)
	}

	// The job description is normalized once and shared read-only; each
	// candidate pair still gets its own similarity fit inside the engine.
	jobDoc := engine.NormalizeDocument(jobDesc)

	ranked := make([]types.RankedCandidate, len(scorable))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, candidate := range scorable {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			resumeDoc := engine.NormalizeDocument(candidate.Text)
			record := engine.Score(resumeDoc, jobDoc)

			ranked[i] = types.RankedCandidate{
				ID:              uuid.New(),
				Name:            candidate.Name,
				Resume:          resumeDoc,
				Scores:          record,
				Insights:        engine.Insights(record),
				MatchedKeywords: engine.MatchedKeywords(candidate.Text, jobDesc),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking aborted: %w", err)
	}

	// Stable sort keeps submission order for equal overall scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Scores.OverallScore > ranked[j].Scores.OverallScore
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	result.Ranked = ranked
	return result, nil
}
