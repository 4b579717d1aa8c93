package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/ingestion"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/observability"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/ranking"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/report"
)

var rankCmd = &cobra.Command{
	Use:   "rank [resume files...]",
	Short: "Rank resumes against a job description",
	Long:  "Scores each resume file (.pdf, .txt, .md) against the job description and prints them ranked by overall match score. Files that yield no text are excluded and reported.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRank,
}

var (
	rankJobFile    string
	rankConfigFile string
	rankOutputFile string
	rankReportFile string
	rankVerbose    bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankJobFile, "job", "j", "", "Path to the job description file (required)")
	rankCmd.Flags().StringVarP(&rankConfigFile, "config", "c", "", "Path to JSON config file")
	rankCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to write the ranking result JSON")
	rankCmd.Flags().StringVar(&rankReportFile, "report", "", "Path to write the HR report PDF")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print per-candidate score breakdowns")

	if err := rankCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := loadRankerConfig(rankConfigFile)
	if err != nil {
		return err
	}

	// The flag turns verbose on; the config file sets the default.
	verbose := rankVerbose || cfg.Verbose

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	// 1. Load the job description
	jobDesc, err := ingestion.ExtractText(rankJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	// 2. Extract text from every resume. Extraction failures ride along so
	// the ranker can report them as exclusions.
	candidates := make([]ranking.Candidate, 0, len(args))
	for _, path := range args {
		name := candidateName(path)
		text, err := ingestion.ExtractText(path)
		if err != nil {
			candidates = append(candidates, ranking.Candidate{Name: name, ExtractionErr: err})
			continue
		}
		candidates = append(candidates, ranking.Candidate{Name: name, Text: text})
	}

	// 3. Rank
	result, err := ranking.Rank(cmd.Context(), engine, jobDesc, candidates)
	if err != nil {
		return err
	}

	// 4. Print results
	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintRankings(result)
	if verbose {
		for i := range result.Ranked {
			printer.PrintCandidateDetail(&result.Ranked[i])
		}
	}

	// 5. Optional JSON output
	if rankOutputFile != "" {
		jsonOutput, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal ranking result: %w", err)
		}
		if err := os.WriteFile(rankOutputFile, jsonOutput, 0644); err != nil {
			return fmt.Errorf("failed to write result file %s: %w", rankOutputFile, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Ranking result written to %s\n", rankOutputFile)
	}

	// 6. Optional HR report
	if rankReportFile != "" {
		f, err := os.Create(rankReportFile)
		if err != nil {
			return fmt.Errorf("failed to create report file %s: %w", rankReportFile, err)
		}
		defer f.Close()

		if err := report.Generate(f, result, jobDesc, engine.Weights()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "HR report written to %s\n", rankReportFile)
	}

	return nil
}

// candidateName derives a display name from a resume file path.
func candidateName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
