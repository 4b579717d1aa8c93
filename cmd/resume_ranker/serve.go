package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume ranking HTTP API server",
	Long:  "Starts the REST API exposing POST /rank, POST /score, and GET /health. The scoring engine is initialized once at startup and shared across requests.",
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigFile string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port (default from config, 8080)")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadRankerConfig(serveConfigFile)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{Port: cfg.Port, Engine: engine})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
