// Package main provides the entry point for the resume ranker CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_ranker",
	Short: "Resume ranking against job descriptions",
	Long:  "resume_ranker scores candidate resumes against a job description using keyword, skill, experience, and TF-IDF similarity signals, and ranks them by overall match.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
