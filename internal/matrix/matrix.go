// Package matrix derives the PHP versions a generated project's CI
// configuration runs against.
package matrix

import (
	"strings"

	"github.com/construct-labs/construct/internal/catalog"
)

// Deriver computes version matrices from a fixed, ascending list of
// supported versions.
type Deriver struct {
	versions  []catalog.PHPVersion
	alternate string
}

// New returns a Deriver over the supported versions. The alternate runtime
// is prepended to every matrix; an empty string disables it.
func New(versions []catalog.PHPVersion, alternateRuntime string) *Deriver {
	return &Deriver{
		versions:  append([]catalog.PHPVersion(nil), versions...),
		alternate: alternateRuntime,
	}
}

// FromCatalog returns a Deriver over c.PHPVersions with c.AlternateRuntime.
func FromCatalog(c catalog.Catalog) *Deriver {
	return New(c.PHPVersions, c.AlternateRuntime)
}

// VersionsToTest returns the alternate runtime followed by every supported
// version at or above minimum, in catalog order. Regular releases are
// written as "major.minor", point releases as "major.minor.patch".
//
// The alternate runtime is included whatever minimum is requested.
func (d *Deriver) VersionsToTest(minimum catalog.PHPVersion) []string {
	out := make([]string, 0, len(d.versions)+1)
	if d.alternate != "" {
		out = append(out, d.alternate)
	}
	for _, v := range d.versions {
		if v.Compare(minimum) >= 0 {
			out = append(out, v.Short())
		}
	}
	return out
}

// VersionsToRun renders versions as a YAML list body: one "  - <version>"
// line per entry, newline separated, without a trailing newline.
func VersionsToRun(versions []string) string {
	lines := make([]string, len(versions))
	for i, v := range versions {
		lines[i] = "  - " + v
	}
	return strings.Join(lines, "\n")
}
