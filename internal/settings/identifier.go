package settings

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var identifierPattern = regexp.MustCompile(`^[a-z0-9_.-]+/[a-z0-9_.-]+$`)

// Identifier is a validated vendor/project package name.
type Identifier struct {
	vendor  string
	project string
}

// ParseIdentifier validates s against the vendor/project shape.
func ParseIdentifier(s string) (Identifier, error) {
	if !identifierPattern.MatchString(s) {
		return Identifier{}, &InvalidIdentifierError{Value: s}
	}
	vendor, project, _ := strings.Cut(s, "/")
	return Identifier{vendor: vendor, project: project}, nil
}

// IsValidIdentifier reports whether s has the vendor/project shape.
func IsValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// String returns "vendor/project".
func (i Identifier) String() string {
	return i.vendor + "/" + i.project
}

// VendorLower is the vendor segment, lower-cased. Used for paths.
func (i Identifier) VendorLower() string { return strings.ToLower(i.vendor) }

// ProjectLower is the project segment, lower-cased. Used for paths and as the
// output directory name.
func (i Identifier) ProjectLower() string { return strings.ToLower(i.project) }

// VendorStudly is the vendor segment in StudlyCase, e.g. "jonathan-torres" → "JonathanTorres".
func (i Identifier) VendorStudly() string { return Studly(i.vendor) }

// ProjectStudly is the project segment in StudlyCase. Used for class names.
func (i Identifier) ProjectStudly() string { return Studly(i.project) }

// Studly splits s on hyphens and underscores, upper-cases the first letter
// of every part and joins the parts.
func Studly(s string) string {
	caser := cases.Title(language.Und, cases.NoLower)
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var b strings.Builder
	for _, p := range parts {
		b.WriteString(caser.String(p))
	}
	return b.String()
}
