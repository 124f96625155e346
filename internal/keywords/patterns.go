package keywords

import (
	"regexp"
	"strings"
)

// atsPattern turns a regex match on normalized text into a canonical ATS keyword
type atsPattern struct {
	re        *regexp.Regexp
	canonical func(match []string) string
}

var degreeNames = map[string]string{
	"bachelor":  "bachelor's degree",
	"master":    "master's degree",
	"associate": "associate degree",
	"doctor":    "doctorate",
	"doctorate": "doctorate",
}

var knownCertifications = map[string]string{
	"pmp":             "pmp",
	"cissp":           "cissp",
	"ccna":            "ccna",
	"cka":             "cka",
	"ckad":            "ckad",
	"cpa":             "cpa",
	"cfa":             "cfa",
	"itil":            "itil",
	"six sigma":       "six sigma",
	"scrum master":    "scrum master",
	"comptia":         "comptia",
	"security+":       "security+",
	"aws certified":   "aws certified",
	"azure certified": "azure certified",
}

var atsPatterns = []atsPattern{
	{
		re: regexp.MustCompile(`\b(bachelor|master|associate|doctorate|doctor)(?:'s|s)?\b(?:\s+(?:degree|of|in)\b)`),
		canonical: func(m []string) string {
			return degreeNames[m[1]]
		},
	},
	{
		re:        regexp.MustCompile(`\b(?:ph\.?\s?d|doctoral)\b`),
		canonical: func([]string) string { return "phd" },
	},
	{
		re:        regexp.MustCompile(`\bmba\b`),
		canonical: func([]string) string { return "mba" },
	},
	{
		re: regexp.MustCompile(`\bdegree in ([a-z]+(?: [a-z]+)?)`),
		canonical: func(m []string) string {
			field := strings.TrimSuffix(strings.TrimSuffix(m[1], " or"), " and")
			return "degree in " + field
		},
	},
	{
		re: regexp.MustCompile(`\b(\d{1,2})\s*(\+)?\s*(?:years?|yrs?)\b(?:\s+of)?(?:\s+[a-z]+)?\s+experience\b`),
		canonical: func(m []string) string {
			return m[1] + m[2] + " years experience"
		},
	},
	{
		re: regexp.MustCompile(`\b(pmp|cissp|ccna|ckad|cka|cpa|cfa|itil|six sigma|scrum master|comptia|security\+|aws certified|azure certified)(?:[^a-z0-9]|$)`),
		canonical: func(m []string) string {
			return knownCertifications[m[1]]
		},
	},
	{
		re: regexp.MustCompile(`\bcertified ([a-z]+(?: [a-z]+)?)`),
		canonical: func(m []string) string {
			return "certified " + m[1]
		},
	},
}

// matchPatterns returns the canonical keywords found by the ATS regex patterns, in
// first-occurrence order.
func matchPatterns(normalized string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range atsPatterns {
		for _, m := range p.re.FindAllStringSubmatch(normalized, -1) {
			kw := strings.TrimSpace(p.canonical(m))
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}
