package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/ingestion"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/observability"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single resume against a job description",
	Long:  "Computes the four sub-scores and the weighted overall score for one resume against one job description, with insights and matched keywords.",
	RunE:  runScore,
}

var (
	scoreJobFile    string
	scoreResumeFile string
	scoreConfigFile string
	scoreJSON       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to the job description file (required)")
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to the resume file (required)")
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Path to JSON config file")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the score record as JSON")

	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := loadRankerConfig(scoreConfigFile)
	if err != nil {
		return err
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	jobDesc, err := ingestion.ExtractText(scoreJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	resumeText, err := ingestion.ExtractText(scoreResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	record := engine.ScoreTexts(resumeText, jobDesc)
	insights := engine.Insights(record)

	if scoreJSON {
		output := map[string]any{
			"scores":           record,
			"insights":         insights,
			"matched_keywords": engine.MatchedKeywords(resumeText, jobDesc),
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScoreRecord(candidateName(scoreResumeFile), record, insights)
	return nil
}
