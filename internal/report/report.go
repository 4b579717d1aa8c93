// Package report renders the HR ranking report as a PDF document.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/config"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/ranking"
)

const (
	titleFontSize   = 18
	headingFontSize = 14
	bodyFontSize    = 10
	lineHeight      = 5.5

	jobDescPreviewLen = 1200
	maxKeywordsShown  = 10
)

// Generate writes a complete HR report for one ranking run: title page,
// executive summary, job description, per-candidate breakdowns, and the
// scoring methodology.
func Generate(w io.Writer, result *ranking.RankResult, jobDesc string, weights config.Weights) error {
	if result == nil {
		return fmt.Errorf("report requires a ranking result")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 18)

	writeTitlePage(pdf, result)
	writeExecutiveSummary(pdf, result)
	writeJobDescription(pdf, jobDesc)
	writeCandidateDetails(pdf, result)
	writeMethodology(pdf, weights)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render report PDF: %w", err)
	}
	return nil
}

func writeTitlePage(pdf *fpdf.Fpdf, result *ranking.RankResult) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", titleFontSize)
	pdf.CellFormat(0, 12, "Resume Ranking Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", headingFontSize)
	pdf.CellFormat(0, 10, "Candidate Analysis and Rankings", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", bodyFontSize)
	rows := [][2]string{
		{"Report generated", time.Now().Format("January 2, 2006")},
		{"Run ID", result.RunID.String()},
		{"Candidates ranked", fmt.Sprintf("%d", len(result.Ranked))},
		{"Candidates excluded", fmt.Sprintf("%d", len(result.Excluded))},
	}
	for _, row := range rows {
		pdf.CellFormat(50, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 7, row[1], "1", 1, "L", false, 0, "")
	}
}

func writeExecutiveSummary(pdf *fpdf.Fpdf, result *ranking.RankResult) {
	pdf.AddPage()
	heading(pdf, "Executive Summary")

	if len(result.Ranked) == 0 {
		body(pdf, "No candidates produced extractable text; nothing was scored.")
		return
	}

	top := result.Ranked[0]
	total := 0.0
	for _, candidate := range result.Ranked {
		total += candidate.Scores.OverallScore
	}
	average := total / float64(len(result.Ranked))

	body(pdf, fmt.Sprintf(
		"%d candidates were scored against the job description. "+
			"The top candidate is %s with an overall match of %.1f%%. "+
			"The average overall score across all candidates is %.1f%%.",
		len(result.Ranked), top.Name, top.Scores.OverallScore, average))
	pdf.Ln(4)

	// Ranking table
	pdf.SetFont("Helvetica", "B", bodyFontSize)
	headers := []struct {
		label string
		width float64
	}{
		{"Rank", 14}, {"Candidate", 56}, {"Overall", 24}, {"Keyword", 24},
		{"Skills", 24}, {"Experience", 24}, {"TF-IDF", 24},
	}
	for _, h := range headers {
		pdf.CellFormat(h.width, 7, h.label, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", bodyFontSize)
	for _, candidate := range result.Ranked {
		name := candidate.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		pdf.CellFormat(14, 7, fmt.Sprintf("%d", candidate.Rank), "1", 0, "C", false, 0, "")
		pdf.CellFormat(56, 7, name, "1", 0, "L", false, 0, "")
		for _, score := range []float64{
			candidate.Scores.OverallScore,
			candidate.Scores.KeywordScore,
			candidate.Scores.SkillsScore,
			candidate.Scores.ExperienceScore,
			candidate.Scores.TFIDFSimilarity,
		} {
			pdf.CellFormat(24, 7, fmt.Sprintf("%.1f%%", score), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(result.Excluded) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", bodyFontSize)
		pdf.CellFormat(0, 7, "Excluded candidates", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", bodyFontSize)
		for _, excluded := range result.Excluded {
			body(pdf, fmt.Sprintf("- %s: %s", excluded.Name, excluded.Reason))
		}
	}
}

func writeJobDescription(pdf *fpdf.Fpdf, jobDesc string) {
	pdf.AddPage()
	heading(pdf, "Job Description")

	preview := strings.TrimSpace(jobDesc)
	if len(preview) > jobDescPreviewLen {
		preview = preview[:jobDescPreviewLen] + "..."
	}
	if preview == "" {
		preview = "(empty job description)"
	}
	body(pdf, preview)
}

func writeCandidateDetails(pdf *fpdf.Fpdf, result *ranking.RankResult) {
	if len(result.Ranked) == 0 {
		return
	}

	pdf.AddPage()
	heading(pdf, "Candidate Details")

	for _, candidate := range result.Ranked {
		pdf.SetFont("Helvetica", "B", bodyFontSize+1)
		pdf.CellFormat(0, 8, fmt.Sprintf("#%d  %s  (%.1f%%)", candidate.Rank, candidate.Name, candidate.Scores.OverallScore), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", bodyFontSize)
		body(pdf, fmt.Sprintf("Keyword %.1f%%  |  Skills %.1f%%  |  Experience %.1f%%  |  TF-IDF %.1f%%",
			candidate.Scores.KeywordScore,
			candidate.Scores.SkillsScore,
			candidate.Scores.ExperienceScore,
			candidate.Scores.TFIDFSimilarity))

		for _, insight := range candidate.Insights {
			body(pdf, "- "+insight)
		}

		if len(candidate.MatchedKeywords) > 0 {
			keywords := candidate.MatchedKeywords
			if len(keywords) > maxKeywordsShown {
				keywords = keywords[:maxKeywordsShown]
			}
			body(pdf, "Matched keywords: "+strings.Join(keywords, ", "))
		}
		pdf.Ln(3)
	}
}

func writeMethodology(pdf *fpdf.Fpdf, weights config.Weights) {
	pdf.AddPage()
	heading(pdf, "Methodology")

	body(pdf, "Each resume is scored against the job description on four signals, "+
		"combined as a weighted sum:")
	pdf.Ln(2)
	body(pdf, fmt.Sprintf("  Keyword matching: %.0f%%", weights.Keyword*100))
	body(pdf, fmt.Sprintf("  Technical skills: %.0f%%", weights.Skills*100))
	body(pdf, fmt.Sprintf("  Experience: %.0f%%", weights.Experience*100))
	body(pdf, fmt.Sprintf("  TF-IDF similarity: %.0f%%", weights.TFIDF*100))
	pdf.Ln(2)
	body(pdf, "Keyword matching measures how many of the job description's most "+
		"frequent terms appear in the resume. Technical skills coverage compares "+
		"skill catalog matches between the two documents. Experience compares the "+
		"years stated in the resume with the requirement in the posting. TF-IDF "+
		"similarity is the cosine similarity of the two documents in a "+
		"term-weighted vector space fit on exactly that pair.")
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", headingFontSize)
	pdf.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func body(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", bodyFontSize)
	pdf.MultiCell(0, lineHeight, text, "", "L", false)
}
