package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construct-labs/construct/internal/catalog"
	"github.com/construct-labs/construct/internal/options"
)

func TestOptions(t *testing.T) {
	opts := Options(catalog.Default().LicenseNames())

	require.Len(t, opts, 4)
	for i, name := range []string{"MIT", "Apache-2.0", "GPL-2.0", "GPL-3.0"} {
		assert.Equal(t, name, opts[i].Key)
		assert.Equal(t, name, opts[i].Value)
	}
}

func TestFields(t *testing.T) {
	raw := options.NewRaw("acme/widgets")

	fields := Fields(&raw, catalog.Default())
	assert.Len(t, fields, 10)

	assert.Equal(t, "MIT", raw.License)
	assert.Equal(t, "phpunit", raw.TestFramework)
	assert.Equal(t, "5.6.0", raw.PHPVersion)
	assert.False(t, raw.Git)
}
