// Package resume provides functionality to load resume documents and extract their scoreable text.
package resume

import (
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// VisibleBullets returns the bullets of a section that take part in scoring
func VisibleBullets(section types.Section) []types.Bullet {
	visible := make([]types.Bullet, 0, len(section.Bullets))
	for _, b := range section.Bullets {
		if b.Visible() {
			visible = append(visible, b)
		}
	}
	return visible
}

// BulletTexts returns the non-blank text of every visible bullet in document order
func BulletTexts(doc *types.ResumeDocument) []string {
	if doc == nil {
		return nil
	}
	var texts []string
	for _, section := range doc.Sections {
		for _, b := range VisibleBullets(section) {
			if t := strings.TrimSpace(b.Text); t != "" {
				texts = append(texts, b.Text)
			}
		}
	}
	return texts
}

// Text flattens the resume into newline-separated text: header fields, summary,
// then each section title followed by its visible bullets. Hidden bullets never appear.
func Text(doc *types.ResumeDocument) string {
	if doc == nil {
		return ""
	}

	var lines []string
	add := func(s string) {
		if strings.TrimSpace(s) != "" {
			lines = append(lines, s)
		}
	}

	add(doc.Name)
	add(doc.Title)
	add(doc.Email)
	add(doc.Phone)
	add(doc.Location)
	add(doc.Summary)
	for _, section := range doc.Sections {
		add(section.Title)
		for _, b := range VisibleBullets(section) {
			add(b.Text)
		}
	}

	return strings.Join(lines, "\n")
}

// BodyText is Text without the header contact fields; content analyzers use it so
// phone numbers and e-mail addresses do not count as achievements or keywords.
func BodyText(doc *types.ResumeDocument) string {
	if doc == nil {
		return ""
	}
	var lines []string
	if strings.TrimSpace(doc.Summary) != "" {
		lines = append(lines, doc.Summary)
	}
	for _, section := range doc.Sections {
		if strings.TrimSpace(section.Title) != "" {
			lines = append(lines, section.Title)
		}
		for _, b := range VisibleBullets(section) {
			if strings.TrimSpace(b.Text) != "" {
				lines = append(lines, b.Text)
			}
		}
	}
	return strings.Join(lines, "\n")
}
