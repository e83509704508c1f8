package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	c, err := ParseFile(testPath("valid-composer.json"))
	require.NoError(t, err)

	assert.Equal(t, "acme/widgets", c.Name)
	assert.Equal(t, "MIT", c.License)
	assert.Equal(t, []string{"widgets", "acme"}, c.Keywords)
	assert.Equal(t, ">=5.6.0", c.Require["php"])
	assert.Equal(t, "~4.8 || ~5.0", c.RequireDev["phpunit/phpunit"])
	assert.Equal(t, "src/", c.Autoload.PSR4[`Acme\Widgets\`])
	require.NotNil(t, c.AutoloadDev)
	assert.Equal(t, "tests/", c.AutoloadDev.PSR4[`Acme\Widgets\Test\`])
	assert.Equal(t, "vendor/bin/phpunit", c.Scripts["test"])
	assert.Equal(t, "stable", c.MinimumStability)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"name":`))
	assert.Error(t, err)
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(testPath("nonexistent.json"))
	assert.Error(t, err)
}
