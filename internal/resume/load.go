// Package resume provides functionality to load resume documents and extract their scoreable text.
package resume

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-scorer/internal/types"
)

// LoadResume loads a resume document from a JSON file and normalizes it
func LoadResume(path string) (*types.ResumeDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return ParseResume(content)
}

// ParseResume decodes resume JSON and normalizes it
func ParseResume(content []byte) (*types.ResumeDocument, error) {
	var doc types.ResumeDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	Normalize(&doc)
	return &doc, nil
}
