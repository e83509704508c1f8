package scaffold

import (
	"strings"

	"github.com/construct-labs/construct/internal/catalog"
	"github.com/construct-labs/construct/internal/matrix"
	"github.com/construct-labs/construct/internal/settings"
)

// TemplateData holds all variables available to scaffold templates.
type TemplateData struct {
	PackageName   string // e.g., "acme/php-widgets"
	Vendor        string // e.g., "acme"
	Project       string // e.g., "php-widgets"
	VendorStudly  string // e.g., "Acme"
	ProjectStudly string // e.g., "PhpWidgets"
	Namespace     string // e.g., `Acme\PhpWidgets`
	Description   string
	Keywords      []string // never nil so it renders as a JSON array
	Hostname      string   // project name usable as a host name

	License       catalog.License
	LicenseName   string
	TestFramework catalog.TestFramework
	Framework     catalog.FrameworkSpec

	// Test layout, derived from the framework.
	TestNamespace      string // e.g., `Acme\PhpWidgets\Test`
	TestDir            string // e.g., "tests"
	TestPath           string // e.g., "tests/"
	AutoloadPrefix     string // PSR-4 prefix for src/
	TestAutoloadPrefix string // PSR-4 prefix for TestPath

	PHPVersion       string // e.g., "5.6.0"
	PHPConstraint    string // e.g., ">=5.6.0"
	VersionsToTest   []string
	PHPVersionsToRun string
	AlternateRuntime string

	PHPCS bool
	Env   bool
	Year  int
}

// NewTemplateData derives every template variable from s. The CI matrix is
// computed by d.
func NewTemplateData(s *settings.Settings, d *matrix.Deriver, alternateRuntime string) *TemplateData {
	data := &TemplateData{
		PackageName:      s.ProjectName(),
		Vendor:           s.VendorLower(),
		Project:          s.ProjectLower(),
		VendorStudly:     s.VendorStudly(),
		ProjectStudly:    s.ProjectStudly(),
		Namespace:        s.Namespace(),
		Keywords:         s.Keywords(),
		Hostname:         strings.NewReplacer("_", "-", ".", "-").Replace(s.ProjectLower()),
		License:          s.License(),
		LicenseName:      s.License().DisplayName(),
		TestFramework:    s.TestFramework(),
		Framework:        s.TestFramework().Spec(),
		PHPVersion:       s.PHPVersion().String(),
		PHPConstraint:    ">=" + s.PHPVersion().String(),
		AlternateRuntime: alternateRuntime,
		PHPCS:            s.WithPHPCS(),
		Env:              s.WithEnvironmentFiles(),
		Year:             s.Year(),
	}
	if data.Keywords == nil {
		data.Keywords = []string{}
	}
	data.Description = "The " + data.ProjectStudly + " package."

	data.VersionsToTest = d.VersionsToTest(s.PHPVersion())
	data.PHPVersionsToRun = matrix.VersionsToRun(data.VersionsToTest)

	data.AutoloadPrefix = data.Namespace + `\`
	switch s.TestFramework() {
	case catalog.PHPSpec:
		data.TestNamespace = `spec\` + data.Namespace
		data.TestDir = "spec"
	case catalog.Behat:
		// Behat contexts live in the global namespace.
		data.TestDir = "features"
		data.TestPath = "features/bootstrap/"
	default:
		data.TestNamespace = data.Namespace + `\Test`
		data.TestDir = "tests"
	}
	if data.TestPath == "" {
		data.TestPath = data.TestDir + "/"
	}
	if data.TestNamespace != "" {
		data.TestAutoloadPrefix = data.TestNamespace + `\`
	}

	return data
}
