package improvements

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/quality"
	"github.com/jonathan/ats-scorer/internal/resume"
	"github.com/jonathan/ats-scorer/internal/taxonomy"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Rule thresholds
const (
	// MinQuantifiedAchievements is the number of quantified results a resume should show
	MinQuantifiedAchievements = 3
	// MinStrongVerbShare is the share of experience bullets that should open with a strong verb
	MinStrongVerbShare = 0.5
	// MaxBulletWords is the longest bullet, in words, before it reads as a paragraph
	MaxBulletWords = 35
	// MaxBulletChars is the longest bullet, in characters
	MaxBulletChars = 220
	// maxListedKeywords is how many missing keywords a suggestion names
	maxListedKeywords = 8
)

type rules struct {
	tax         *taxonomy.Taxonomy
	strongVerbs map[string]bool
	atsPhrases  map[string]bool
}

func (r *rules) missingSummary(in Input) *types.Improvement {
	if in.Structure == nil || !containsKind(in.Structure.MissingOptional, types.SectionSummary) {
		return nil
	}
	return &types.Improvement{
		Category:           CategorySummary,
		Title:              "Add a professional summary",
		Description:        "A short summary at the top gives recruiters and ATS parsers your focus at a glance.",
		Priority:           types.PriorityMedium,
		ImpactScore:        6,
		ActionType:         types.ActionAdd,
		SpecificSuggestion: "Write two or three sentences naming your role, years of experience and core skills.",
		Example:            "Backend engineer with 8 years of experience building distributed systems in Go and Python.",
	}
}

func (r *rules) quantifiedAchievements(in Input) *types.Improvement {
	if in.Quality == nil || len(resume.BulletTexts(in.Resume)) == 0 {
		return nil
	}
	if in.Quality.QuantifiedAchievements >= MinQuantifiedAchievements {
		return nil
	}
	return &types.Improvement{
		Category:           CategoryAchievements,
		Title:              "Quantify your achievements",
		Description:        fmt.Sprintf("Only %d quantified result(s) found. Numbers make impact concrete.", in.Quality.QuantifiedAchievements),
		Priority:           types.PriorityHigh,
		ImpactScore:        8,
		ActionType:         types.ActionModify,
		SpecificSuggestion: "Add percentages, amounts, team sizes or time saved to your strongest bullets.",
		Example:            "Reduced API latency by 35% by introducing Redis caching.",
	}
}

func (r *rules) missingSkills(in Input) *types.Improvement {
	if in.Structure == nil || !containsKind(in.Structure.MissingOptional, types.SectionSkills) {
		return nil
	}
	return &types.Improvement{
		Category:           CategorySkills,
		Title:              "Add a skills section",
		Description:        "ATS parsers look for a dedicated skills section to match technical keywords.",
		Priority:           types.PriorityMedium,
		ImpactScore:        7,
		ActionType:         types.ActionAdd,
		SpecificSuggestion: "List languages, frameworks and tools you have used professionally.",
		Example:            "Skills: Go, Python, PostgreSQL, Docker, Kubernetes, AWS",
	}
}

func (r *rules) specialCharacters(in Input) *types.Improvement {
	if !in.Formatting.HasIssue(types.IssueSpecialCharacters) {
		return nil
	}
	return &types.Improvement{
		Category:           CategoryFormatting,
		Title:              "Remove decorative characters",
		Description:        fmt.Sprintf("%.1f%% of characters are symbols that ATS parsers may garble.", in.Formatting.SpecialCharacterDensity*100),
		Priority:           types.PriorityMedium,
		ImpactScore:        5,
		ActionType:         types.ActionRemove,
		SpecificSuggestion: "Replace icons, stars and arrows with plain words and simple bullets.",
	}
}

func (r *rules) missingKeywords(in Input) *types.Improvement {
	if in.Match == nil || len(in.Match.MissingKeywords) == 0 {
		return nil
	}
	listed := in.Match.MissingKeywords
	if len(listed) > maxListedKeywords {
		listed = listed[:maxListedKeywords]
	}
	impact := 8
	if gaps := len(in.Match.TechnicalMissing) + r.atsGaps(in.Match.MissingKeywords); gaps >= 3 {
		impact = 10
	} else if gaps > 0 {
		impact = 9
	}
	return &types.Improvement{
		Category:           CategoryKeywords,
		Title:              "Add missing job keywords",
		Description:        fmt.Sprintf("%d of %d job keywords do not appear in your resume.", len(in.Match.MissingKeywords), in.Match.TotalJobKeywords),
		Priority:           types.PriorityHigh,
		ImpactScore:        impact,
		ActionType:         types.ActionAdd,
		SpecificSuggestion: "Work these terms into your skills and experience where they truthfully apply: " + strings.Join(listed, ", "),
	}
}

// atsGaps counts missing keywords that are ATS action verbs, metric or industry terms
func (r *rules) atsGaps(missing []string) int {
	n := 0
	for _, kw := range missing {
		if r.atsPhrases[keywords.Normalize(kw)] {
			n++
		}
	}
	return n
}

func (r *rules) weakActionVerbs(in Input) *types.Improvement {
	total, strong := 0, 0
	for _, section := range in.Resume.Sections {
		kind := r.tax.ClassifySection(section.Title)
		if kind != types.SectionExperience && kind != types.SectionProjects {
			continue
		}
		for _, b := range resume.VisibleBullets(section) {
			word := firstWord(b.Text)
			if word == "" {
				continue
			}
			total++
			if r.strongVerbs[word] {
				strong++
			}
		}
	}
	if total < 2 || float64(strong)/float64(total) >= MinStrongVerbShare {
		return nil
	}
	return &types.Improvement{
		Category:           CategoryActionVerbs,
		Title:              "Lead bullets with strong action verbs",
		Description:        fmt.Sprintf("%d of %d experience bullets start with a strong action verb.", strong, total),
		Priority:           types.PriorityMedium,
		ImpactScore:        6,
		ActionType:         types.ActionModify,
		SpecificSuggestion: "Open each bullet with a verb such as led, built, launched, reduced or improved.",
		Example:            "Led the migration of 40 services to Kubernetes.",
	}
}

func (r *rules) vagueLanguage(in Input) *types.Improvement {
	if in.Quality == nil || in.Quality.VagueTerms == 0 {
		return nil
	}
	return &types.Improvement{
		Category:           CategoryLanguage,
		Title:              "Replace vague phrasing",
		Description:        "Phrases like " + quoteList(in.Quality.FoundVague) + " describe duties rather than results.",
		Priority:           types.PriorityMedium,
		ImpactScore:        5,
		ActionType:         types.ActionModify,
		SpecificSuggestion: "Rewrite these bullets to state what you did and what changed.",
		Example:            "Instead of \"Responsible for deployments\", write \"Automated deployments, cutting release time from 2 hours to 10 minutes\".",
	}
}

func (r *rules) buzzwordOveruse(in Input) *types.Improvement {
	if in.Quality == nil || in.Quality.Buzzwords <= quality.BuzzwordAllowance {
		return nil
	}
	return &types.Improvement{
		Category:           CategoryLanguage,
		Title:              "Cut buzzwords",
		Description:        fmt.Sprintf("%d buzzwords found: %s.", in.Quality.Buzzwords, quoteList(in.Quality.FoundBuzzwords)),
		Priority:           types.PriorityLow,
		ImpactScore:        3,
		ActionType:         types.ActionRemove,
		SpecificSuggestion: "Show the trait through a concrete result instead of naming it.",
	}
}

func (r *rules) missingContact(in Input) *types.Improvement {
	email := in.Formatting.HasIssue(types.IssueMissingEmail)
	phone := in.Formatting.HasIssue(types.IssueMissingPhone)
	if !email && !phone {
		return nil
	}
	var missing []string
	if email {
		missing = append(missing, "e-mail address")
	}
	if phone {
		missing = append(missing, "phone number")
	}
	return &types.Improvement{
		Category:           CategoryContact,
		Title:              "Complete your contact information",
		Description:        "Missing " + strings.Join(missing, " and ") + ".",
		Priority:           types.PriorityHigh,
		ImpactScore:        9,
		ActionType:         types.ActionAdd,
		SpecificSuggestion: "Put your e-mail address and phone number in the resume header as plain text.",
	}
}

func (r *rules) sectionOrder(in Input) *types.Improvement {
	if in.Structure == nil || in.Structure.OrderCorrect || in.Structure.ClassifiedSections < 2 {
		return nil
	}
	kinds := r.tax.CanonicalOrder()
	if len(kinds) > 5 {
		kinds = kinds[:5]
	}
	order := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		order = append(order, string(kind))
	}
	return &types.Improvement{
		Category:           CategoryStructure,
		Title:              "Reorder your sections",
		Description:        "Sections appear in an unexpected order, which can confuse ATS parsers.",
		Priority:           types.PriorityLow,
		ImpactScore:        4,
		ActionType:         types.ActionRestructure,
		SpecificSuggestion: "Use the order: " + strings.Join(order, ", ") + ".",
	}
}

func (r *rules) thinSections(in Input) *types.Improvement {
	if in.Structure == nil || len(in.Structure.IncompleteSections) == 0 {
		return nil
	}
	return &types.Improvement{
		Category:           CategoryStructure,
		Title:              "Expand thin sections",
		Description:        "These sections have fewer than two bullets: " + quoteList(in.Structure.IncompleteSections) + ".",
		Priority:           types.PriorityMedium,
		ImpactScore:        6,
		ActionType:         types.ActionAdd,
		SpecificSuggestion: "Add at least two bullets describing responsibilities and results.",
	}
}

func (r *rules) overlongBullets(in Input) *types.Improvement {
	long := 0
	for _, text := range resume.BulletTexts(in.Resume) {
		if len(strings.Fields(text)) > MaxBulletWords || utf8.RuneCountInString(text) > MaxBulletChars {
			long++
		}
	}
	if long == 0 {
		return nil
	}
	return &types.Improvement{
		Category:           CategoryBullets,
		Title:              "Shorten long bullets",
		Description:        fmt.Sprintf("%d bullet(s) run longer than %d words.", long, MaxBulletWords),
		Priority:           types.PriorityLow,
		ImpactScore:        4,
		ActionType:         types.ActionModify,
		SpecificSuggestion: "Keep each bullet to one or two lines: action, scope, result.",
	}
}

func containsKind(kinds []types.SectionKind, kind types.SectionKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// firstWord returns the normalized first word of a bullet, skipping any marker
func firstWord(text string) string {
	for _, f := range strings.Fields(keywords.Normalize(text)) {
		w := strings.Trim(f, ".,;:!?()•▪◦●-*–+>\"'")
		if w != "" {
			return w
		}
	}
	return ""
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}
