package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/quality"
	"github.com/jonathan/ats-scorer/internal/types"
)

// MaxSuggestions caps the plain-text suggestion list
const MaxSuggestions = 10

// suggestedMissingKeywords is how many missing keywords one suggestion names
const suggestedMissingKeywords = 5

var formattingAdvice = map[types.FormattingIssue]string{
	types.IssueSpecialCharacters: "Replace decorative symbols and icons with plain text",
	types.IssueTableMarkup:       "Avoid tables and multi-column layouts; use a single column",
	types.IssueLongLines:         "Break long lines into shorter bullets",
	types.IssueMissingEmail:      "Add an e-mail address to your contact information",
	types.IssueMissingPhone:      "Add a phone number to your contact information",
	types.IssueBulletMarkers:     "Use one bullet style consistently",
}

// Suggestions turns component findings into short, ordered advice.
func Suggestions(c Components) []string {
	out := []string{}
	add := func(format string, args ...any) {
		if len(out) < MaxSuggestions {
			out = append(out, fmt.Sprintf(format, args...))
		}
	}

	if c.Empty {
		add("Add content to your resume: contact details, experience, education and skills")
		return out
	}

	if m := c.Match; m != nil && len(m.MissingKeywords) > 0 {
		n := min(suggestedMissingKeywords, len(m.MissingKeywords))
		names := make([]string, 0, n)
		for _, kw := range m.MissingKeywords[:n] {
			names = append(names, kw.Keyword)
		}
		add("Add relevant job keywords where they honestly apply: %s", strings.Join(names, ", "))
	}

	if s := c.Structure; s != nil {
		for _, kind := range s.MissingRequired {
			add("Add a clearly titled %s section", kind)
		}
		for _, title := range s.IncompleteSections {
			add("Expand the %q section with at least two bullets", title)
		}
		if !s.OrderCorrect && len(s.Present) > 1 {
			add("Order sections as contact, summary, experience, education, skills")
		}
	}

	if q := c.Quality; q != nil {
		if q.QuantifiedAchievements == 0 {
			add("Quantify achievements with numbers, percentages or amounts")
		}
		if q.StrongVerbs == 0 {
			add("Start bullets with strong action verbs such as led, built or improved")
		}
		if q.VagueTerms > 0 {
			add("Replace vague phrases: %s", strings.Join(q.FoundVague, ", "))
		}
		if q.Buzzwords > quality.BuzzwordAllowance {
			add("Cut buzzwords and show results instead: %s", strings.Join(q.FoundBuzzwords, ", "))
		}
	}

	if f := c.Formatting; f != nil {
		for _, issue := range f.Issues {
			if advice, ok := formattingAdvice[issue]; ok {
				add("%s", advice)
			}
		}
	}

	if c.Match == nil && c.ResumeKeywords != nil && len(c.ResumeKeywords.Technical) < 5 {
		add("List more specific technical skills, tools and technologies")
	}
	return out
}
