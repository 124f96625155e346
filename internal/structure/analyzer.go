// Package structure checks that a resume has the sections applicant tracking systems expect.
package structure

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/resume"
	"github.com/jonathan/ats-scorer/internal/taxonomy"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Scoring constants
const (
	MissingRequiredPenalty    = 20.0
	MaxMissingRequiredPenalty = 60.0
	MissingOptionalPenalty    = 5.0
	MaxMissingOptionalPenalty = 10.0
	IncompletePenalty         = 10.0
	MaxIncompletePenalty      = 20.0
	OrderBonus                = 5.0
	// MinBullets is the fewest visible bullets an experience or education section may have
	MinBullets = 2
)

var (
	// RequiredSections must be present for a full structure score
	RequiredSections = []types.SectionKind{types.SectionContact, types.SectionExperience, types.SectionEducation}
	// OptionalSections cost a smaller penalty when absent
	OptionalSections = []types.SectionKind{types.SectionSummary, types.SectionSkills}
)

// Analyzer scores resume structure. It holds no per-request state.
type Analyzer struct {
	tax *taxonomy.Taxonomy
}

// NewAnalyzer creates a structure analyzer
func NewAnalyzer(tax *taxonomy.Taxonomy) *Analyzer {
	return &Analyzer{tax: tax}
}

// Analyze classifies the resume's sections and scores their presence, order and completeness.
func (a *Analyzer) Analyze(doc *types.ResumeDocument) *types.StructureReport {
	report := &types.StructureReport{
		Present:            []types.SectionKind{},
		MissingRequired:    []types.SectionKind{},
		MissingOptional:    []types.SectionKind{},
		IncompleteSections: []string{},
		Issues:             []string{},
	}
	if doc.IsEmpty() {
		report.MissingRequired = append(report.MissingRequired, RequiredSections...)
		report.MissingOptional = append(report.MissingOptional, OptionalSections...)
		report.Issues = append(report.Issues, "Resume is empty")
		return report
	}

	present := a.presentKinds(doc)
	for _, kind := range a.tax.CanonicalOrder() {
		if present[kind] {
			report.Present = append(report.Present, kind)
		}
	}

	penalty := 0.0
	missingRequired := 0.0
	for _, kind := range RequiredSections {
		if !present[kind] {
			report.MissingRequired = append(report.MissingRequired, kind)
			report.Issues = append(report.Issues, fmt.Sprintf("Missing required section: %s", kind))
			missingRequired += MissingRequiredPenalty
		}
	}
	penalty += math.Min(MaxMissingRequiredPenalty, missingRequired)

	missingOptional := 0.0
	for _, kind := range OptionalSections {
		if !present[kind] {
			report.MissingOptional = append(report.MissingOptional, kind)
			missingOptional += MissingOptionalPenalty
		}
	}
	penalty += math.Min(MaxMissingOptionalPenalty, missingOptional)

	incomplete := 0.0
	for _, section := range doc.Sections {
		kind := a.tax.ClassifySection(section.Title)
		if kind != types.SectionExperience && kind != types.SectionEducation {
			continue
		}
		if countFilled(resume.VisibleBullets(section)) < MinBullets {
			report.IncompleteSections = append(report.IncompleteSections, section.Title)
			report.Issues = append(report.Issues, fmt.Sprintf("Section %q has fewer than %d bullets", section.Title, MinBullets))
			incomplete += IncompletePenalty
		}
	}
	penalty += math.Min(MaxIncompletePenalty, incomplete)

	ordered, classified := a.sectionOrder(doc)
	report.ClassifiedSections = classified
	report.OrderCorrect = ordered && classified >= 2
	bonus := 0.0
	switch {
	case report.OrderCorrect:
		bonus = OrderBonus
	case !ordered:
		report.Issues = append(report.Issues, "Sections are not in the standard order")
	}

	report.Score = math.Round(math.Max(0, math.Min(100, 100-penalty+bonus))*10) / 10
	return report
}

// presentKinds finds section kinds by title, header fields or full-text evidence
func (a *Analyzer) presentKinds(doc *types.ResumeDocument) map[types.SectionKind]bool {
	present := make(map[types.SectionKind]bool)
	for _, section := range doc.Sections {
		if kind := a.tax.ClassifySection(section.Title); kind != types.SectionOther {
			present[kind] = true
		}
	}
	if resume.HasContact(doc) {
		present[types.SectionContact] = true
	}
	if strings.TrimSpace(doc.Summary) != "" {
		present[types.SectionSummary] = true
	}

	text := keywords.Normalize(resume.Text(doc))
	for _, kind := range append(append([]types.SectionKind{}, RequiredSections...), OptionalSections...) {
		if present[kind] {
			continue
		}
		for _, phrase := range keywords.NewPhrases(a.tax.SectionEvidence(kind)) {
			if phrase.In(text) {
				present[kind] = true
				break
			}
		}
	}
	return present
}

// sectionOrder reports whether classified section positions never go backwards in
// the canonical order, and how many sections were classified. Fewer than two
// classified sections earn no order credit.
func (a *Analyzer) sectionOrder(doc *types.ResumeDocument) (bool, int) {
	rank := make(map[types.SectionKind]int)
	for i, kind := range a.tax.CanonicalOrder() {
		rank[kind] = i
	}
	last, seen := -1, 0
	for _, section := range doc.Sections {
		r, ok := rank[a.tax.ClassifySection(section.Title)]
		if !ok {
			continue
		}
		if r < last {
			return false, seen + 1
		}
		last = r
		seen++
	}
	return true, seen
}

func countFilled(bullets []types.Bullet) int {
	n := 0
	for _, b := range bullets {
		if strings.TrimSpace(b.Text) != "" {
			n++
		}
	}
	return n
}
