package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // verbose output; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintScoreResult outputs the overall score and its component breakdown.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}
	if !result.Success {
		p.printBox("ATS SCORE FAILED", result.Error)
		return
	}

	d := result.Details
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:       %.1f\n", result.Score))
	sb.WriteString(fmt.Sprintf("Method:      %s\n", result.Method))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Structure:   %.1f\n", d.Structure))
	sb.WriteString(fmt.Sprintf("Keywords:    %.1f\n", d.Keyword))
	if result.Method != types.MethodComprehensive {
		sb.WriteString(fmt.Sprintf("TF-IDF:      %.1f\n", d.TFIDF))
	}
	sb.WriteString(fmt.Sprintf("Quality:     %.1f\n", d.Quality))
	sb.WriteString(fmt.Sprintf("Formatting:  %.1f\n", d.Formatting))
	if d.Bonus > 0 {
		sb.WriteString(fmt.Sprintf("Bonus:       +%.1f\n", d.Bonus))
	}
	if d.SemanticAdjustment != 0 {
		sb.WriteString(fmt.Sprintf("Semantic:    %+.1f\n", d.SemanticAdjustment))
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("\n")
		writeList(&sb, "Suggestions", result.Suggestions)
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs a resume/job comparison.
func (p *Printer) PrintMatchResult(match *types.MatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Similarity:     %.2f\n", match.SimilarityScore))
	sb.WriteString(fmt.Sprintf("Technical:      %.2f\n", match.TechnicalScore))
	sb.WriteString(fmt.Sprintf("Keyword match:  %.2f%%\n", match.KeywordMatchPercentage))
	sb.WriteString(fmt.Sprintf("Job keywords:   %d\n", match.TotalJobKeywords))
	sb.WriteString("\n")
	writeList(&sb, "Matching", match.MatchingKeywords)
	writeList(&sb, "Missing", match.MissingKeywords)

	p.printBox("JOB MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywords outputs the categorized keywords of a text.
func (p *Printer) PrintKeywords(set *types.KeywordSet) {
	if set.IsEmpty() {
		return
	}

	var sb strings.Builder
	writeList(&sb, "Technical", set.Technical)
	writeList(&sb, "ATS", set.ATSFocused)
	writeList(&sb, "Soft skills", set.SoftSkills)
	writeList(&sb, "General", set.General)
	if len(set.HighFrequency) > 0 {
		top := make([]string, 0, len(set.HighFrequency))
		for _, hf := range set.HighFrequency {
			top = append(top, fmt.Sprintf("%s (%d, %s)", hf.Keyword, hf.Frequency, hf.Importance))
		}
		writeList(&sb, "Most frequent", top)
	}

	p.printBox("KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintImprovements outputs prioritized improvements.
//
//nolint:errcheck // verbose output; errors are not recoverable
func (p *Printer) PrintImprovements(imps []types.Improvement) {
	if len(imps) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO IMPROVEMENTS NEEDED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d improvements:\n\n", len(imps)))
	for i, imp := range imps {
		sb.WriteString(fmt.Sprintf("[%s %d/10] %s\n", imp.Priority, imp.ImpactScore, imp.Title))
		if imp.SpecificSuggestion != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", imp.SpecificSuggestion))
		}
		if i < len(imps)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("IMPROVEMENTS", strings.TrimSuffix(sb.String(), "\n"))
}
