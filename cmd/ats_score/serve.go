package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/server"
)

var (
	servePort     int
	serveSemantic bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring, similarity, keyword extraction and improvements.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	serveCmd.Flags().BoolVar(&serveSemantic, "semantic", false, "Enable LLM semantic adjustment (requires GEMINI_API_KEY)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := cfg.Server.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	eng, closeEngine, err := buildEngine(cmd.Context(), serveSemantic)
	if err != nil {
		return err
	}
	defer func() { _ = closeEngine() }()

	srv, err := server.New(server.Config{
		Port:         port,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		RateLimit:    cfg.RateLimitSettings(),
		Engine:       eng,
		Logger:       logger,
		Metrics:      metrics,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(cmd.Context())
}
