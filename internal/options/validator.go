package options

import (
	"strings"

	"github.com/construct-labs/construct/internal/catalog"
	"github.com/construct-labs/construct/internal/settings"
)

// Raw is the options record as received from the command line.
type Raw struct {
	ProjectName   string
	TestFramework string
	License       string
	Namespace     string
	Git           bool
	PHPCS         bool
	Keywords      string
	Vagrant       bool
	EditorConfig  bool
	PHPVersion    string
	Env           bool
	Year          int
}

// Input defaults used when a flag is not supplied.
const (
	DefaultTestFramework = "phpunit"
	DefaultLicense       = "MIT"
	DefaultNamespace     = catalog.DefaultNamespace
	DefaultPHPVersion    = "5.6.0"
)

// NewRaw returns a Raw for projectName with every optional field at its
// default.
func NewRaw(projectName string) Raw {
	return Raw{
		ProjectName:   projectName,
		TestFramework: DefaultTestFramework,
		License:       DefaultLicense,
		Namespace:     DefaultNamespace,
		PHPVersion:    DefaultPHPVersion,
	}
}

// Validator checks raw values against an injected catalog.
type Validator struct {
	catalog catalog.Catalog
}

// NewValidator returns a Validator over c.
func NewValidator(c catalog.Catalog) *Validator {
	return &Validator{catalog: c}
}

// License returns candidate when it is a catalog license. Otherwise it
// returns the default license and true.
func (v *Validator) License(candidate string) (catalog.License, bool) {
	if l, ok := v.catalog.License(candidate); ok {
		return l, false
	}
	return v.catalog.DefaultLicense, true
}

// TestFramework returns candidate when it is a catalog framework. Otherwise
// it returns the default framework and true.
func (v *Validator) TestFramework(candidate string) (catalog.TestFramework, bool) {
	if f, ok := v.catalog.TestFramework(candidate); ok {
		return f, false
	}
	return v.catalog.DefaultTestFramework, true
}

// PHPVersion returns candidate when it is a catalog PHP version. Otherwise it
// returns the default version and true.
func (v *Validator) PHPVersion(candidate string) (catalog.PHPVersion, bool) {
	if p, ok := v.catalog.PHPVersion(candidate); ok {
		return p, false
	}
	return v.catalog.DefaultPHPVersion, true
}

// NamingConvention reports whether projectName contains "php" in any case.
// It applies to any string, valid identifier or not.
func NamingConvention(projectName string) bool {
	return strings.Contains(strings.ToLower(projectName), "php")
}

// Validate checks the identifier shape first and returns a
// *settings.InvalidIdentifierError without warnings when it fails. Otherwise
// it applies the naming advisory and the catalog checks, in that order, and
// returns the corrected fields ready for settings.New.
func (v *Validator) Validate(raw Raw) (settings.Fields, []Warning, error) {
	if _, err := settings.ParseIdentifier(raw.ProjectName); err != nil {
		return settings.Fields{}, nil, err
	}

	var warnings []Warning
	if NamingConvention(raw.ProjectName) {
		warnings = append(warnings, Warning{
			Subject:  SubjectNamingConvention,
			Rejected: raw.ProjectName,
		})
	}

	license, warn := v.License(raw.License)
	if warn {
		warnings = append(warnings, Warning{
			Subject:     SubjectLicense,
			Rejected:    raw.License,
			Substituted: license.String(),
		})
	}

	framework, warn := v.TestFramework(raw.TestFramework)
	if warn {
		warnings = append(warnings, Warning{
			Subject:     SubjectTestFramework,
			Rejected:    raw.TestFramework,
			Substituted: framework.String(),
		})
	}

	php, warn := v.PHPVersion(raw.PHPVersion)
	if warn {
		warnings = append(warnings, Warning{
			Subject:     SubjectPHPVersion,
			Rejected:    raw.PHPVersion,
			Substituted: php.String(),
		})
	}

	fields := settings.Fields{
		ProjectName:   raw.ProjectName,
		TestFramework: framework,
		License:       license,
		Namespace:     raw.Namespace,
		InitGit:       raw.Git,
		PHPCS:         raw.PHPCS,
		Keywords:      raw.Keywords,
		Vagrant:       raw.Vagrant,
		EditorConfig:  raw.EditorConfig,
		PHPVersion:    php,
		Env:           raw.Env,
		Year:          raw.Year,
	}
	return fields, warnings, nil
}

// Settings runs Validate and freezes the result.
func (v *Validator) Settings(raw Raw) (*settings.Settings, []Warning, error) {
	fields, warnings, err := v.Validate(raw)
	if err != nil {
		return nil, nil, err
	}
	s, err := settings.New(fields)
	if err != nil {
		return nil, nil, err
	}
	return s, warnings, nil
}
