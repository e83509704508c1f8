package catalog

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/construct-labs/construct/internal/branding"
)

// License is an SPDX identifier from the license catalog.
type License string

// Supported licenses (more: http://choosealicense.com/licenses).
const (
	LicenseMIT     License = "MIT"
	LicenseApache2 License = "Apache-2.0"
	LicenseGPL2    License = "GPL-2.0"
	LicenseGPL3    License = "GPL-3.0"
)

// DefaultNamespace is the placeholder namespace. When a project keeps it, the
// namespace is derived from the project identifier instead.
const DefaultNamespace = `Vendor\Project`

const licenseUnnamed = "Unknown License"

var licenseNames = map[License]string{
	LicenseMIT:     "MIT License",
	LicenseApache2: "Apache License 2.0",
	LicenseGPL2:    "GNU General Public License v2.0",
	LicenseGPL3:    "GNU General Public License v3.0",
}

// String returns the SPDX identifier.
func (l License) String() string { return string(l) }

// DisplayName returns the long form name used in README and LICENSE files.
func (l License) DisplayName() string {
	if n, ok := licenseNames[l]; ok {
		return n
	}
	return licenseUnnamed
}

// Catalog is the full set of accepted values. A Catalog is a value; callers
// receive fresh slices from Default and may not affect other callers.
type Catalog struct {
	Licenses             []License
	DefaultLicense       License
	TestFrameworks       []TestFramework
	DefaultTestFramework TestFramework
	PHPVersions          []PHPVersion
	DefaultPHPVersion    PHPVersion

	// AlternateRuntime is the secondary interpreter prepended to every
	// version matrix.
	AlternateRuntime string
}

// Default returns the catalog shipped with construct.
func Default() Catalog {
	versions := []PHPVersion{
		MustPHPVersion("5.4.0", false),
		MustPHPVersion("5.5.0", false),
		MustPHPVersion("5.6.0", false),
		MustPHPVersion("7.0.0", false),
	}
	return Catalog{
		Licenses:             []License{LicenseMIT, LicenseApache2, LicenseGPL2, LicenseGPL3},
		DefaultLicense:       LicenseMIT,
		TestFrameworks:       []TestFramework{PHPUnit, Behat, PHPSpec, Codeception},
		DefaultTestFramework: PHPUnit,
		PHPVersions:          versions,
		DefaultPHPVersion:    versions[2],
		AlternateRuntime:     branding.AlternateRuntime(),
	}
}

// License looks up a license by exact SPDX identifier.
func (c Catalog) License(name string) (License, bool) {
	for _, l := range c.Licenses {
		if string(l) == name {
			return l, true
		}
	}
	return "", false
}

// TestFramework looks up a test framework by exact name.
func (c Catalog) TestFramework(name string) (TestFramework, bool) {
	for _, f := range c.TestFrameworks {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// PHPVersion looks up a PHP version by its exact catalog spelling ("5.6.0").
func (c Catalog) PHPVersion(raw string) (PHPVersion, bool) {
	for _, v := range c.PHPVersions {
		if v.String() == raw {
			return v, true
		}
	}
	return PHPVersion{}, false
}

// LicenseNames returns the license identifiers in catalog order.
func (c Catalog) LicenseNames() []string {
	out := make([]string, len(c.Licenses))
	for i, l := range c.Licenses {
		out[i] = string(l)
	}
	return out
}

// TestFrameworkNames returns the framework names in catalog order.
func (c Catalog) TestFrameworkNames() []string {
	out := make([]string, len(c.TestFrameworks))
	for i, f := range c.TestFrameworks {
		out[i] = string(f)
	}
	return out
}

// PHPVersionNames returns the PHP versions in catalog order.
func (c Catalog) PHPVersionNames() []string {
	out := make([]string, len(c.PHPVersions))
	for i, v := range c.PHPVersions {
		out[i] = v.String()
	}
	return out
}

// PHPVersion is a catalog PHP release. Whether it is a point release is
// decided when the catalog is authored, not by inspecting the string.
type PHPVersion struct {
	raw   string
	v     *semver.Version
	point bool
}

// NewPHPVersion parses raw as major.minor.patch. Missing segments are
// treated as zero.
func NewPHPVersion(raw string, pointRelease bool) (PHPVersion, error) {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return PHPVersion{}, fmt.Errorf("parsing php version %q: %w", raw, err)
	}
	return PHPVersion{raw: raw, v: v, point: pointRelease}, nil
}

// MustPHPVersion is NewPHPVersion for catalog literals; it panics on error.
func MustPHPVersion(raw string, pointRelease bool) PHPVersion {
	p, err := NewPHPVersion(raw, pointRelease)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the catalog spelling, e.g. "5.6.0".
func (p PHPVersion) String() string { return p.raw }

// IsZero reports whether p is the zero value.
func (p PHPVersion) IsZero() bool { return p.v == nil }

// PointRelease reports whether the patch segment is significant.
func (p PHPVersion) PointRelease() bool { return p.point }

// Major returns the major segment.
func (p PHPVersion) Major() uint64 { return p.v.Major() }

// Minor returns the minor segment.
func (p PHPVersion) Minor() uint64 { return p.v.Minor() }

// Patch returns the patch segment.
func (p PHPVersion) Patch() uint64 { return p.v.Patch() }

// Compare returns -1, 0 or 1 as p is older than, equal to or newer than o.
func (p PHPVersion) Compare(o PHPVersion) int {
	return p.v.Compare(o.v)
}

// Short returns "major.minor" for regular releases and "major.minor.patch"
// for point releases.
func (p PHPVersion) Short() string {
	if p.point {
		return fmt.Sprintf("%d.%d.%d", p.Major(), p.Minor(), p.Patch())
	}
	return fmt.Sprintf("%d.%d", p.Major(), p.Minor())
}
