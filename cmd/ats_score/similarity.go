package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/resume"
)

var similarityCmd = &cobra.Command{
	Use:   "similarity",
	Short: "Compare a resume's keywords with a job description",
	Long:  "Partitions the job description's keywords into those the resume covers and those it lacks, and writes a MatchResult JSON.",
	RunE:  runSimilarity,
}

var (
	similarityResumeFile string
	similarityJobFile    string
	similarityOutputFile string
	similarityVerbose    bool
)

func init() {
	similarityCmd.Flags().StringVarP(&similarityResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	similarityCmd.Flags().StringVarP(&similarityJobFile, "job", "j", "", "Path or URL of job description file (required)")
	similarityCmd.Flags().StringVarP(&similarityOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	similarityCmd.Flags().BoolVarP(&similarityVerbose, "verbose", "v", false, "Print a readable summary to stderr")

	if err := similarityCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := similarityCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(similarityCmd)
}

func runSimilarity(cmd *cobra.Command, _ []string) error {
	doc, err := loadResumeFile(similarityResumeFile)
	if err != nil {
		return err
	}
	jobText, err := loadJobFile(cmd.Context(), similarityJobFile)
	if err != nil {
		return err
	}
	if strings.TrimSpace(jobText) == "" {
		return fmt.Errorf("job description is empty: %s", similarityJobFile)
	}

	eng, closeEngine, err := buildEngine(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer func() { _ = closeEngine() }()

	match := eng.CalculateSimilarity(jobText, resume.BodyText(doc))

	if similarityVerbose {
		observability.NewPrinter(os.Stderr).PrintMatchResult(match)
	}
	return writeJSON(similarityOutputFile, match)
}
