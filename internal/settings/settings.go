package settings

import (
	"strings"

	"github.com/construct-labs/construct/internal/catalog"
)

// Fields are the already validated inputs of New.
type Fields struct {
	ProjectName   string
	TestFramework catalog.TestFramework
	License       catalog.License
	Namespace     string
	InitGit       bool
	PHPCS         bool
	Keywords      string
	Vagrant       bool
	EditorConfig  bool
	PHPVersion    catalog.PHPVersion
	Env           bool

	// Year is the copyright year written to LICENSE.md. It is supplied by the
	// caller so that generation never reads the clock.
	Year int
}

// Settings is a frozen snapshot of Fields. It has no setters.
type Settings struct {
	id     Identifier
	fields Fields
}

// New freezes f. It fails only when f.ProjectName is not a vendor/project
// identifier. Zero-valued catalog fields fall back to the catalog defaults.
func New(f Fields) (*Settings, error) {
	id, err := ParseIdentifier(f.ProjectName)
	if err != nil {
		return nil, err
	}

	defaults := catalog.Default()
	if f.TestFramework == "" {
		f.TestFramework = defaults.DefaultTestFramework
	}
	if f.License == "" {
		f.License = defaults.DefaultLicense
	}
	if f.PHPVersion.IsZero() {
		f.PHPVersion = defaults.DefaultPHPVersion
	}
	if f.Namespace == "" {
		f.Namespace = catalog.DefaultNamespace
	}

	return &Settings{id: id, fields: f}, nil
}

// Identifier returns the parsed project identifier.
func (s *Settings) Identifier() Identifier { return s.id }

// ProjectName returns "vendor/project".
func (s *Settings) ProjectName() string { return s.id.String() }

// VendorLower returns the lower-cased vendor segment.
func (s *Settings) VendorLower() string { return s.id.VendorLower() }

// ProjectLower returns the lower-cased project segment.
func (s *Settings) ProjectLower() string { return s.id.ProjectLower() }

// VendorStudly returns the StudlyCase vendor segment.
func (s *Settings) VendorStudly() string { return s.id.VendorStudly() }

// ProjectStudly returns the StudlyCase project segment.
func (s *Settings) ProjectStudly() string { return s.id.ProjectStudly() }

// TestFramework returns the selected test framework.
func (s *Settings) TestFramework() catalog.TestFramework { return s.fields.TestFramework }

// License returns the selected license.
func (s *Settings) License() catalog.License { return s.fields.License }

// RawNamespace returns the namespace exactly as supplied.
func (s *Settings) RawNamespace() string { return s.fields.Namespace }

// Namespace returns the PHP namespace for generated code without leading or
// trailing backslashes. The Vendor\Project placeholder is replaced by
// VendorStudly\ProjectStudly.
func (s *Settings) Namespace() string {
	ns := strings.Trim(s.fields.Namespace, `\`)
	if ns == "" || ns == catalog.DefaultNamespace {
		return s.VendorStudly() + `\` + s.ProjectStudly()
	}
	return ns
}

// WithGitInit reports whether a git repository should be initialized.
func (s *Settings) WithGitInit() bool { return s.fields.InitGit }

// WithPHPCS reports whether a PHP Coding Standards Fixer config is generated.
func (s *Settings) WithPHPCS() bool { return s.fields.PHPCS }

// WithVagrantfile reports whether a Vagrantfile is generated.
func (s *Settings) WithVagrantfile() bool { return s.fields.Vagrant }

// WithEditorConfig reports whether an .editorconfig is generated.
func (s *Settings) WithEditorConfig() bool { return s.fields.EditorConfig }

// WithEnvironmentFiles reports whether .env files are generated.
func (s *Settings) WithEnvironmentFiles() bool { return s.fields.Env }

// RawKeywords returns the comma separated keywords as supplied.
func (s *Settings) RawKeywords() string { return s.fields.Keywords }

// Keywords splits the raw keywords on commas, trimming blanks. It returns
// nil when no keywords were supplied.
func (s *Settings) Keywords() []string {
	var out []string
	for _, k := range strings.Split(s.fields.Keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// PHPVersion returns the minimum supported PHP version.
func (s *Settings) PHPVersion() catalog.PHPVersion { return s.fields.PHPVersion }

// Year returns the copyright year.
func (s *Settings) Year() int { return s.fields.Year }
