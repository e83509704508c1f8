package catalog

// TestFramework names a test framework from the catalog.
type TestFramework string

// Supported test frameworks.
const (
	PHPUnit     TestFramework = "phpunit"
	Behat       TestFramework = "behat"
	PHPSpec     TestFramework = "phpspec"
	Codeception TestFramework = "codeception"
)

// FrameworkSpec describes how a test framework is wired into a generated
// project.
type FrameworkSpec struct {
	Package     string   // composer require-dev package
	Constraint  string   // composer version constraint
	ConfigFile  string   // framework config file at the project root
	TestCommand string   // command CI runs
	Bootstrap   []string // post-install command, nil when none is needed
}

var frameworkSpecs = map[TestFramework]FrameworkSpec{
	PHPUnit: {
		Package:     "phpunit/phpunit",
		Constraint:  "~4.8 || ~5.0",
		ConfigFile:  "phpunit.xml.dist",
		TestCommand: "vendor/bin/phpunit",
	},
	Behat: {
		Package:     "behat/behat",
		Constraint:  "~3.0",
		ConfigFile:  "behat.yml",
		TestCommand: "vendor/bin/behat",
		Bootstrap:   []string{"vendor/bin/behat", "--init"},
	},
	PHPSpec: {
		Package:     "phpspec/phpspec",
		Constraint:  "~2.0",
		ConfigFile:  "phpspec.yml",
		TestCommand: "vendor/bin/phpspec run",
	},
	Codeception: {
		Package:     "codeception/codeception",
		Constraint:  "~2.1",
		ConfigFile:  "codeception.yml",
		TestCommand: "vendor/bin/codecept run",
		Bootstrap:   []string{"vendor/bin/codecept", "bootstrap"},
	},
}

// String returns the framework name.
func (f TestFramework) String() string { return string(f) }

// Spec returns the wiring details for f. Unknown frameworks get a zero FrameworkSpec.
func (f TestFramework) Spec() FrameworkSpec {
	return frameworkSpecs[f]
}

// NeedsBootstrap reports whether f requires an external bootstrap step after
// the files are written.
func (f TestFramework) NeedsBootstrap() bool {
	return len(frameworkSpecs[f].Bootstrap) > 0
}
