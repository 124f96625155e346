// Package resume provides functionality to load resume documents and extract their scoreable text.
package resume

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/ats-scorer/internal/types"
)

// idNamespace scopes the name-based IDs generated for sections and bullets
var idNamespace = uuid.MustParse("6f1c2a8e-4b7d-5e39-9a0c-3d2e1f4b5a67")

// Normalize trims contact fields and assigns stable IDs to sections and bullets that lack one.
func Normalize(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}
	doc.Name = strings.TrimSpace(doc.Name)
	doc.Title = strings.TrimSpace(doc.Title)
	doc.Email = strings.TrimSpace(doc.Email)
	doc.Phone = strings.TrimSpace(doc.Phone)
	doc.Location = strings.TrimSpace(doc.Location)
	AssignIDs(doc)
}

// AssignIDs fills empty section and bullet IDs with name-based UUIDs.
// The IDs derive from position and content, so loading the same file twice yields the same IDs.
func AssignIDs(doc *types.ResumeDocument) {
	for i := range doc.Sections {
		section := &doc.Sections[i]
		if section.ID == "" {
			section.ID = uuid.NewSHA1(idNamespace, []byte(fmt.Sprintf("section:%d:%s", i, section.Title))).String()
		}
		for j := range section.Bullets {
			bullet := &section.Bullets[j]
			if bullet.ID == "" {
				name := fmt.Sprintf("bullet:%s:%d:%s", section.ID, j, bullet.Text)
				bullet.ID = uuid.NewSHA1(idNamespace, []byte(name)).String()
			}
		}
	}
}
