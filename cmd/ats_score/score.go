package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume for ATS compatibility",
	Long:  "Scores a resume JSON file, optionally against a job description or keyword set, and writes a ScoreResult JSON.",
	RunE:  runScore,
}

var (
	scoreResumeFile   string
	scoreJobFile      string
	scoreKeywordsFile string
	scoreStrategy     string
	scoreSemantic     bool
	scoreOutputFile   string
	scoreVerbose      bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path or URL of job description text or HTML file")
	scoreCmd.Flags().StringVarP(&scoreKeywordsFile, "keywords", "k", "", "Path to KeywordSet JSON file used instead of the job description")
	scoreCmd.Flags().StringVar(&scoreStrategy, "strategy", "", "Aggregation strategy: comprehensive or industry_standard (default automatic)")
	scoreCmd.Flags().BoolVar(&scoreSemantic, "semantic", false, "Apply an LLM semantic adjustment (requires GEMINI_API_KEY)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a readable breakdown to stderr")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	doc, err := loadResumeFile(scoreResumeFile)
	if err != nil {
		return err
	}
	jobText, err := loadJobFile(cmd.Context(), scoreJobFile)
	if err != nil {
		return err
	}

	req := &types.ScoreRequest{
		Resume:         doc,
		JobDescription: jobText,
		Strategy:       types.Strategy(scoreStrategy),
	}
	if scoreKeywordsFile != "" {
		req.Keywords, err = loadKeywordSetFile(scoreKeywordsFile)
		if err != nil {
			return err
		}
	}

	eng, closeEngine, err := buildEngine(ctx, scoreSemantic)
	if err != nil {
		return err
	}
	defer func() { _ = closeEngine() }()

	result := eng.Score(ctx, req)

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintScoreResult(result)
	}
	if err := writeJSON(scoreOutputFile, result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("scoring failed: %s", result.Error)
	}
	return nil
}
