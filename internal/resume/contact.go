package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}\b`)
)

// HasEmail reports whether the resume carries an e-mail address in its header or text
func HasEmail(doc *types.ResumeDocument) bool {
	if doc == nil {
		return false
	}
	if emailPattern.MatchString(doc.Email) {
		return true
	}
	return emailPattern.MatchString(Text(doc))
}

// HasPhone reports whether the resume carries a phone number in its header or text
func HasPhone(doc *types.ResumeDocument) bool {
	if doc == nil {
		return false
	}
	if strings.TrimSpace(doc.Phone) != "" && phonePattern.MatchString(doc.Phone) {
		return true
	}
	return phonePattern.MatchString(Text(doc))
}

// HasContact reports whether an e-mail address or phone number is present.
func HasContact(doc *types.ResumeDocument) bool {
	return HasEmail(doc) || HasPhone(doc)
}
