// Package improvements turns analyzer findings into prioritized, actionable resume edits.
package improvements

import (
	"sort"

	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/taxonomy"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Improvement categories
const (
	CategorySummary      = "summary"
	CategoryAchievements = "achievements"
	CategorySkills       = "skills"
	CategoryFormatting   = "formatting"
	CategoryKeywords     = "keywords"
	CategoryActionVerbs  = "action_verbs"
	CategoryLanguage     = "language"
	CategoryContact      = "contact"
	CategoryStructure    = "structure"
	CategoryBullets      = "bullets"
)

// Input carries the resume and the analyzer reports the rules read. Match is nil
// when there is no job description.
type Input struct {
	Resume     *types.ResumeDocument
	Structure  *types.StructureReport
	Quality    *types.QualityReport
	Formatting *types.FormattingReport
	Match      *types.MatchResult
}

// Rule inspects the input and returns at most one improvement
type Rule func(in Input) *types.Improvement

// Generator runs every rule independently and ranks the results.
type Generator struct {
	rules []Rule
}

// NewGenerator builds the default rule catalog for a taxonomy
func NewGenerator(tax *taxonomy.Taxonomy) *Generator {
	r := &rules{tax: tax, strongVerbs: make(map[string]bool), atsPhrases: make(map[string]bool)}
	for _, v := range tax.StrongVerbs() {
		r.strongVerbs[v] = true
	}
	for _, p := range tax.ATSPhrases() {
		r.atsPhrases[keywords.Normalize(p)] = true
	}
	return NewGeneratorWithRules(
		r.missingSummary,
		r.quantifiedAchievements,
		r.missingSkills,
		r.specialCharacters,
		r.missingKeywords,
		r.weakActionVerbs,
		r.vagueLanguage,
		r.buzzwordOveruse,
		r.missingContact,
		r.sectionOrder,
		r.thinSections,
		r.overlongBullets,
	)
}

// NewGeneratorWithRules builds a generator from an explicit rule list.
func NewGeneratorWithRules(rules ...Rule) *Generator {
	return &Generator{rules: rules}
}

// Generate applies every rule and returns the improvements sorted by priority,
// then impact (highest first), then category.
func (g *Generator) Generate(in Input) []types.Improvement {
	out := []types.Improvement{}
	if in.Resume == nil {
		return out
	}
	for _, rule := range g.rules {
		if imp := rule(in); imp != nil {
			out = append(out, *imp)
		}
	}
	Sort(out)
	return out
}

// Sort orders improvements by priority, impact descending, category, then title.
func Sort(imps []types.Improvement) {
	sort.SliceStable(imps, func(i, j int) bool {
		a, b := imps[i], imps[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if a.ImpactScore != b.ImpactScore {
			return a.ImpactScore > b.ImpactScore
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Title < b.Title
	})
}
