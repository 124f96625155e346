package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/observability"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract categorized keywords from text",
	Long:  "Extracts technical, soft-skill, ATS and general keywords plus high-frequency terms from a text or HTML file and writes a KeywordSet JSON.",
	RunE:  runKeywords,
}

var (
	keywordsInputFile  string
	keywordsOutputFile string
	keywordsVerbose    bool
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsInputFile, "in", "i", "", "Path to text or HTML file (required)")
	keywordsCmd.Flags().StringVarP(&keywordsOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	keywordsCmd.Flags().BoolVarP(&keywordsVerbose, "verbose", "v", false, "Print the keywords to stderr")

	if err := keywordsCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	text, err := loadJobFile(cmd.Context(), keywordsInputFile)
	if err != nil {
		return err
	}

	eng, closeEngine, err := buildEngine(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer func() { _ = closeEngine() }()

	set := eng.ExtractKeywords(text)

	if keywordsVerbose {
		observability.NewPrinter(os.Stderr).PrintKeywords(set)
	}
	return writeJSON(keywordsOutputFile, set)
}
