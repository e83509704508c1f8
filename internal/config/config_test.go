package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func setup(t *testing.T) string {
	t.Helper()
	viper.Reset()
	dir := filepath.Join(t.TempDir(), ".construct")
	dirOverride = dir
	t.Cleanup(func() {
		dirOverride = ""
		viper.Reset()
	})
	return dir
}

func TestLoadDefaults(t *testing.T) {
	setup(t)
	Load()

	assert.Equal(t, map[string]string{
		"license":   "MIT",
		"test":      "phpunit",
		"namespace": `Vendor\Project`,
		"php":       "5.6.0",
		"keywords":  "",
	}, All())
}

func TestSetPersists(t *testing.T) {
	dir := setup(t)
	Load()

	require.NoError(t, Set("license", "GPL-3.0"))
	require.NoError(t, Set("TEST", "behat"))

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	var stored map[string]string
	require.NoError(t, yaml.Unmarshal(data, &stored))
	assert.Equal(t, "GPL-3.0", stored["license"])
	assert.Equal(t, "behat", stored["test"])

	viper.Reset()
	Load()
	assert.Equal(t, "GPL-3.0", Get("license"))
	assert.Equal(t, "behat", Get("test"))
}

func TestSetUnknownKey(t *testing.T) {
	setup(t)
	Load()

	err := Set("colour", "blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestEnvironmentOverrides(t *testing.T) {
	setup(t)
	t.Setenv("CONSTRUCT_PHP", "7.0.0")
	Load()

	assert.Equal(t, "7.0.0", Get("php"))
}

func TestDefaults(t *testing.T) {
	setup(t)
	t.Setenv("CONSTRUCT_LICENSE", "Apache-2.0")
	t.Setenv("CONSTRUCT_KEYWORDS", "php,widgets")
	Load()

	raw := Defaults("acme/widgets")
	assert.Equal(t, "acme/widgets", raw.ProjectName)
	assert.Equal(t, "Apache-2.0", raw.License)
	assert.Equal(t, "phpunit", raw.TestFramework)
	assert.Equal(t, `Vendor\Project`, raw.Namespace)
	assert.Equal(t, "5.6.0", raw.PHPVersion)
	assert.Equal(t, "php,widgets", raw.Keywords)
	assert.False(t, raw.Git)
}

func TestIsKey(t *testing.T) {
	assert.True(t, IsKey("license"))
	assert.True(t, IsKey("PHP"))
	assert.False(t, IsKey("mirror"))
}
