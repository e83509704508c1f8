package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/construct-labs/construct/internal/catalog"
)

func TestCatalogEntries(t *testing.T) {
	entries := catalogEntries(catalog.Default())
	assert.Len(t, entries, 12)

	defaults := map[string]string{}
	for _, e := range entries {
		if e.Default {
			defaults[e.Kind] = e.Name
		}
	}
	assert.Equal(t, map[string]string{
		"license": "MIT",
		"test":    "phpunit",
		"php":     "5.6.0",
	}, defaults)
}
