package improvements

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/formatting"
	"github.com/jonathan/ats-scorer/internal/quality"
	"github.com/jonathan/ats-scorer/internal/resume"
	"github.com/jonathan/ats-scorer/internal/structure"
	"github.com/jonathan/ats-scorer/internal/taxonomy"
	"github.com/jonathan/ats-scorer/internal/types"
)

func analyze(doc *types.ResumeDocument) Input {
	tax := taxonomy.Default()
	return Input{
		Resume:     doc,
		Structure:  structure.NewAnalyzer(tax).Analyze(doc),
		Quality:    quality.NewAnalyzer(tax).Analyze(doc),
		Formatting: formatting.NewChecker().Check(doc),
	}
}

func titles(imps []types.Improvement) []string {
	out := make([]string, 0, len(imps))
	for _, i := range imps {
		out = append(out, i.Title)
	}
	return out
}

func TestGenerate_StrongResumeNeedsNothing(t *testing.T) {
	doc, err := resume.LoadResume("../../testdata/resumes/valid.json")
	require.NoError(t, err)

	imps := NewGenerator(taxonomy.Default()).Generate(analyze(doc))

	assert.Empty(t, imps)
}

func TestGenerate_WeakResume(t *testing.T) {
	doc := &types.ResumeDocument{
		Name: "Sam Rivera",
		Sections: []types.Section{
			{Title: "Education", Bullets: []types.Bullet{{Text: "B.A. History"}}},
			{Title: "Experience", Bullets: []types.Bullet{
				{Text: "Responsible for weekly reports"},
				{Text: "Helped with onboarding of new hires"},
				{Text: "Passionate, motivated, proactive, dynamic team player"},
				{Text: strings.Repeat("worked on many different things ", 8)},
			}},
		},
	}
	in := analyze(doc)
	in.Match = &types.MatchResult{
		MissingKeywords:  []string{"Kafka", "Docker", "AWS", "leadership"},
		TechnicalMissing: []string{"Kafka", "Docker", "AWS"},
		TotalJobKeywords: 5,
	}

	imps := NewGenerator(taxonomy.Default()).Generate(in)

	got := titles(imps)
	for _, want := range []string{
		"Add a professional summary",
		"Quantify your achievements",
		"Add a skills section",
		"Add missing job keywords",
		"Lead bullets with strong action verbs",
		"Replace vague phrasing",
		"Cut buzzwords",
		"Complete your contact information",
		"Reorder your sections",
		"Expand thin sections",
		"Shorten long bullets",
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "Remove decorative characters")

	require.NotEmpty(t, imps)
	assert.Equal(t, "Add missing job keywords", imps[0].Title)
	assert.Equal(t, 10, imps[0].ImpactScore)
	for i := 1; i < len(imps); i++ {
		prev, cur := imps[i-1], imps[i]
		if prev.Priority.Rank() == cur.Priority.Rank() {
			assert.GreaterOrEqual(t, prev.ImpactScore, cur.ImpactScore)
		} else {
			assert.Less(t, prev.Priority.Rank(), cur.Priority.Rank())
		}
		assert.GreaterOrEqual(t, cur.ImpactScore, 1)
		assert.LessOrEqual(t, cur.ImpactScore, 10)
	}
}

func TestGenerate_MissingKeywordImpact(t *testing.T) {
	tests := []struct {
		name      string
		missing   []string
		technical []string
		expected  int
	}{
		{"general only", []string{"teamwork", "remote"}, nil, 8},
		{"one ats gap", []string{"Stakeholder", "remote"}, nil, 9},
		{"ats gaps only", []string{"Stakeholder", "Compliance", "ROI", "remote"}, nil, 10},
		{"technical and ats", []string{"Kafka", "Governance"}, []string{"Kafka"}, 9},
		{"technical only", []string{"Kafka", "Docker", "AWS"}, []string{"Kafka", "Docker", "AWS"}, 10},
	}

	g := NewGenerator(taxonomy.Default())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := analyze(&types.ResumeDocument{Name: "Sam Rivera"})
			in.Match = &types.MatchResult{
				MissingKeywords:  tt.missing,
				TechnicalMissing: tt.technical,
				TotalJobKeywords: 6,
			}

			var found *types.Improvement
			for _, imp := range g.Generate(in) {
				if imp.Category == CategoryKeywords {
					found = &imp
					break
				}
			}
			require.NotNil(t, found)
			assert.Equal(t, tt.expected, found.ImpactScore)
		})
	}
}

func TestGenerate_SpecialCharacters(t *testing.T) {
	doc := &types.ResumeDocument{
		Email: "sam@example.com",
		Phone: "555-010-2030",
		Sections: []types.Section{
			{Title: "Skills", Bullets: []types.Bullet{{Text: "★★★★ Go ★★★ SQL ➜➜ ✦✦"}}},
		},
	}

	imps := NewGenerator(taxonomy.Default()).Generate(analyze(doc))

	assert.Contains(t, titles(imps), "Remove decorative characters")
}

func TestGenerate_NilResume(t *testing.T) {
	imps := NewGenerator(taxonomy.Default()).Generate(Input{})
	assert.NotNil(t, imps)
	assert.Empty(t, imps)
}

func TestGenerateWithRules(t *testing.T) {
	low := func(Input) *types.Improvement {
		return &types.Improvement{Category: "b", Title: "low", Priority: types.PriorityLow, ImpactScore: 9}
	}
	highSmall := func(Input) *types.Improvement {
		return &types.Improvement{Category: "a", Title: "high small", Priority: types.PriorityHigh, ImpactScore: 2}
	}
	highBig := func(Input) *types.Improvement {
		return &types.Improvement{Category: "c", Title: "high big", Priority: types.PriorityHigh, ImpactScore: 7}
	}
	none := func(Input) *types.Improvement { return nil }

	imps := NewGeneratorWithRules(low, none, highSmall, highBig).Generate(Input{Resume: &types.ResumeDocument{}})

	assert.Equal(t, []string{"high big", "high small", "low"}, titles(imps))
}
