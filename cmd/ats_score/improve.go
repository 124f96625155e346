package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/observability"
)

var improveCmd = &cobra.Command{
	Use:   "improve",
	Short: "Suggest prioritized resume improvements",
	Long:  "Analyzes a resume, optionally against a job description, and writes a prioritized list of improvements as JSON.",
	RunE:  runImprove,
}

var (
	improveResumeFile string
	improveJobFile    string
	improveOutputFile string
	improveVerbose    bool
)

func init() {
	improveCmd.Flags().StringVarP(&improveResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	improveCmd.Flags().StringVarP(&improveJobFile, "job", "j", "", "Path or URL of job description file")
	improveCmd.Flags().StringVarP(&improveOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	improveCmd.Flags().BoolVarP(&improveVerbose, "verbose", "v", false, "Print the improvements to stderr")

	if err := improveCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(improveCmd)
}

func runImprove(cmd *cobra.Command, _ []string) error {
	doc, err := loadResumeFile(improveResumeFile)
	if err != nil {
		return err
	}
	jobText, err := loadJobFile(cmd.Context(), improveJobFile)
	if err != nil {
		return err
	}

	eng, closeEngine, err := buildEngine(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer func() { _ = closeEngine() }()

	imps := eng.Improvements(doc, jobText)

	if improveVerbose {
		observability.NewPrinter(os.Stderr).PrintImprovements(imps)
	}
	return writeJSON(improveOutputFile, imps)
}
