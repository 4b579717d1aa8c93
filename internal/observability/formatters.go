// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/ranking"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/types"
)

const (
	// minBoxWidth is the minimum width for formatted output boxes
	minBoxWidth = 64
	// maxBoxWidth caps box growth; longer lines are truncated
	maxBoxWidth = 100
	// maxKeywordsToShow limits the matched-keyword list in detail views
	maxKeywordsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. The box grows to
// fit the widest content line up to maxBoxWidth; longer lines are truncated.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	lines := strings.Split(content, "\n")

	width := minBoxWidth
	for _, line := range append([]string{title}, lines...) {
		if len(line)+4 > width {
			width = len(line) + 4
		}
	}
	if width > maxBoxWidth {
		width = maxBoxWidth
	}

	border := strings.Repeat("─", width-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", width-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range lines {
		if len(line) > width-4 {
			line = line[:width-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", width-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRankings outputs the ranking table with one row per candidate.
func (p *Printer) PrintRankings(result *ranking.RankResult) {
	if result == nil || len(result.Ranked) == 0 {
		p.printBox("RANKING RESULTS", "No candidates were scored.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-4s %-24s %8s %8s %8s %8s %8s\n",
		"Rank", "Candidate", "Overall", "Keyword", "Skills", "Exp", "TF-IDF"))

	for _, candidate := range result.Ranked {
		name := candidate.Name
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-4d %-24s %7.1f%% %7.1f%% %7.1f%% %7.1f%% %7.1f%%\n",
			candidate.Rank,
			name,
			candidate.Scores.OverallScore,
			candidate.Scores.KeywordScore,
			candidate.Scores.SkillsScore,
			candidate.Scores.ExperienceScore,
			candidate.Scores.TFIDFSimilarity,
		))
	}

	if len(result.Excluded) > 0 {
		sb.WriteString("\nExcluded:\n")
		for _, excluded := range result.Excluded {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", excluded.Name, excluded.Reason))
		}
	}

	p.printBox("RANKING RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidateDetail outputs one candidate's score breakdown, insights,
// and matched keywords.
func (p *Printer) PrintCandidateDetail(candidate *types.RankedCandidate) {
	if candidate == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score: %.1f%%\n\n", candidate.Scores.OverallScore))
	sb.WriteString(fmt.Sprintf("Keyword match:    %6.1f%%\n", candidate.Scores.KeywordScore))
	sb.WriteString(fmt.Sprintf("Skills match:     %6.1f%%\n", candidate.Scores.SkillsScore))
	sb.WriteString(fmt.Sprintf("Experience:       %6.1f%%\n", candidate.Scores.ExperienceScore))
	sb.WriteString(fmt.Sprintf("TF-IDF similarity:%6.1f%%\n", candidate.Scores.TFIDFSimilarity))

	if len(candidate.Insights) > 0 {
		sb.WriteString("\nInsights:\n")
		for _, insight := range candidate.Insights {
			sb.WriteString(fmt.Sprintf("  • %s\n", insight))
		}
	}

	if len(candidate.MatchedKeywords) > 0 {
		keywords := candidate.MatchedKeywords
		extra := 0
		if len(keywords) > maxKeywordsToShow {
			extra = len(keywords) - maxKeywordsToShow
			keywords = keywords[:maxKeywordsToShow]
		}
		sb.WriteString(fmt.Sprintf("\nMatched keywords: %s", strings.Join(keywords, ", ")))
		if extra > 0 {
			sb.WriteString(fmt.Sprintf(" (+%d more)", extra))
		}
		sb.WriteString("\n")
	}

	title := fmt.Sprintf("#%d  %s", candidate.Rank, candidate.Name)
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreRecord outputs a single score record without ranking context.
func (p *Printer) PrintScoreRecord(name string, record types.ScoreRecord, insights []string) {
	candidate := &types.RankedCandidate{
		Name:     name,
		Rank:     1,
		Scores:   record,
		Insights: insights,
	}
	p.PrintCandidateDetail(candidate)
}
