// Package types provides type definitions for structured data used throughout the ATS scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ResumeDocument is the structured resume the engine scores. The engine only reads it.
type ResumeDocument struct {
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Location string    `json:"location"`
	Summary  string    `json:"summary"`
	Sections []Section `json:"sections"`
}

// Section is an ordered group of bullets under a title. Its kind is derived from the title.
type Section struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Bullets []Bullet `json:"bullets"`
}

// Bullet is a single resume line with free-form rendering params
type Bullet struct {
	ID     string         `json:"id"`
	Text   string         `json:"text"`
	Params map[string]any `json:"params,omitempty"`
}

// BulletParams is the typed view over the params the engine understands
type BulletParams struct {
	Visible *bool `mapstructure:"visible"`
}

// DecodeParams decodes the known params, accepting loosely typed values ("false", 0).
func (b Bullet) DecodeParams() (BulletParams, error) {
	var p BulletParams
	if len(b.Params) == 0 {
		return p, nil
	}
	if err := mapstructure.WeakDecode(b.Params, &p); err != nil {
		return BulletParams{}, err
	}
	return p, nil
}

// Visible reports whether the bullet takes part in text extraction and scoring.
// Only an explicit visible=false hides a bullet; undecodable params leave it visible.
func (b Bullet) Visible() bool {
	p, err := b.DecodeParams()
	if err != nil || p.Visible == nil {
		return true
	}
	return *p.Visible
}

// IsEmpty reports whether the resume carries no text at all
func (r *ResumeDocument) IsEmpty() bool {
	if r == nil {
		return true
	}
	for _, f := range []string{r.Name, r.Title, r.Email, r.Phone, r.Location, r.Summary} {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	for _, s := range r.Sections {
		if strings.TrimSpace(s.Title) != "" {
			return false
		}
		for _, b := range s.Bullets {
			if b.Visible() && strings.TrimSpace(b.Text) != "" {
				return false
			}
		}
	}
	return true
}
