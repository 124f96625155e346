// Package formatting flags resume formatting that applicant tracking systems parse poorly.
package formatting

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/ats-scorer/internal/ingestion"
	"github.com/jonathan/ats-scorer/internal/resume"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Checker thresholds
const (
	// IssuePenalty is deducted per detected issue
	IssuePenalty = 15.0
	// MaxSpecialCharacterDensity is the tolerated share of unusual characters
	MaxSpecialCharacterDensity = 0.05
	// MaxLineLength is the longest line, in characters, an ATS reliably keeps intact
	MaxLineLength = 200
)

const allowedPunctuation = ".,;:!?'\"()[]-/&%$@+#*_’‘“”–—"

var (
	pipeRow      = regexp.MustCompile(`\|[^|\n]*\|`)
	tabColumns   = regexp.MustCompile(`\S\t+\S.*\t`)
	numberMarker = regexp.MustCompile(`^\d+[.)]\s`)
)

var bulletMarkers = []string{"•", "▪", "◦", "●", "■", "►", "➢", "✓", "-", "*", "–", "+", ">"}

// Checker inspects the rendered resume text. It is stateless.
type Checker struct{}

// NewChecker creates a formatting checker
func NewChecker() *Checker {
	return &Checker{}
}

// Check reports every formatting issue found in the resume.
func (c *Checker) Check(doc *types.ResumeDocument) *types.FormattingReport {
	report := &types.FormattingReport{
		Issues:  []types.FormattingIssue{},
		Details: []string{},
	}
	if doc.IsEmpty() {
		report.Issues = append(report.Issues, types.IssueMissingEmail, types.IssueMissingPhone)
		report.Details = append(report.Details, "Resume is empty")
		report.Score = Score(len(report.Issues))
		return report
	}

	text := resume.Text(doc)
	flag := func(issue types.FormattingIssue, detail string) {
		report.Issues = append(report.Issues, issue)
		report.Details = append(report.Details, detail)
	}

	report.SpecialCharacterDensity = SpecialCharacterDensity(text)
	if report.SpecialCharacterDensity > MaxSpecialCharacterDensity {
		flag(types.IssueSpecialCharacters, fmt.Sprintf("%.1f%% of characters are symbols or decorative glyphs", report.SpecialCharacterDensity*100))
	}
	if HasTableMarkup(text) {
		flag(types.IssueTableMarkup, "Tables or column layouts detected")
	}
	report.LongestLine = longestLine(text)
	if report.LongestLine > MaxLineLength {
		flag(types.IssueLongLines, fmt.Sprintf("A line is %d characters long", report.LongestLine))
	}
	if !resume.HasEmail(doc) {
		flag(types.IssueMissingEmail, "No e-mail address found")
	}
	if !resume.HasPhone(doc) {
		flag(types.IssueMissingPhone, "No phone number found")
	}
	if markers := bulletMarkerSet(doc); len(markers) > 1 {
		flag(types.IssueBulletMarkers, "Bullets mix markers: "+strings.Join(markers, " "))
	}

	report.Score = Score(len(report.Issues))
	return report
}

// Score deducts a fixed penalty per issue, floored at zero.
func Score(issues int) float64 {
	s := 100 - IssuePenalty*float64(issues)
	if s < 0 {
		return 0
	}
	return s
}

// SpecialCharacterDensity is the share of non-space characters that are neither
// letters, digits nor ordinary punctuation.
func SpecialCharacterDensity(text string) float64 {
	total, special := 0, 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(allowedPunctuation, r) {
			continue
		}
		special++
	}
	if total == 0 {
		return 0
	}
	return float64(special) / float64(total)
}

// HasTableMarkup detects HTML tables, pipe-delimited rows and tab-separated columns.
func HasTableMarkup(text string) bool {
	if ingestion.LooksLikeHTML(text) {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(text)); err == nil {
			if doc.Find("table, tr, td, th").Length() > 0 {
				return true
			}
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if pipeRow.MatchString(line) || tabColumns.MatchString(line) {
			return true
		}
	}
	return false
}

func longestLine(text string) int {
	longest := 0
	for _, line := range strings.Split(text, "\n") {
		if n := utf8.RuneCountInString(line); n > longest {
			longest = n
		}
	}
	return longest
}

// bulletMarkerSet returns the distinct leading markers used by visible bullets.
// Unmarked bullets only count as a style when some other bullet carries a marker.
func bulletMarkerSet(doc *types.ResumeDocument) []string {
	seen := make(map[string]bool)
	var order []string
	for _, text := range resume.BulletTexts(doc) {
		m := leadingMarker(strings.TrimSpace(text))
		if !seen[m] {
			seen[m] = true
			order = append(order, m)
		}
	}
	if len(order) == 1 && order[0] == "" {
		return nil
	}
	for i, m := range order {
		if m == "" {
			order[i] = "(none)"
		}
	}
	return order
}

func leadingMarker(text string) string {
	if numberMarker.MatchString(text) {
		return "1."
	}
	for _, m := range bulletMarkers {
		if strings.HasPrefix(text, m) {
			return m
		}
	}
	return ""
}
