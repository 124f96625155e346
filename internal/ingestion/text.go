// Package ingestion cleans job-description text before it is scored.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	spaceRun       = regexp.MustCompile(`[ \t]+`)
	blankLineRun   = regexp.MustCompile(`\n\n\n+`)
	bulletPrefixes = []string{"- ", "* ", "• ", "· "}
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Clean each line
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	// 3. Collapse runs of blank lines and trim
	result := strings.Join(cleanedLines, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving headings and bullets
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}
	if isBulletLine(trimmed) {
		return trimmed
	}

	return spaceRun.ReplaceAllString(trimmed, " ")
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// CleanJobDescription returns scoreable plain text for a pasted or uploaded job description.
// HTML input is reduced to the posting body first.
func CleanJobDescription(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	if LooksLikeHTML(raw) {
		text, err := ExtractMainText(raw, JobPostingSelectors())
		if err == nil && text != "" {
			return CleanText(text)
		}
	}
	return CleanText(raw)
}

// IngestFromFile reads a job description file and returns its cleaned text
func IngestFromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return CleanJobDescription(string(content)), nil
}
