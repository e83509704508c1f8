package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construct-labs/construct/internal/manifest"
)

// TestRootCommandGenerate runs the full command: config load, validation,
// generation, writing and git init.
func TestRootCommandGenerate(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"generate", "acme/php-widgets",
		"--dir", dir,
		"-l", "Apache-2.0",
		"--php", "7.0.0",
		"-g", "--env", "--editor-config",
		"--no-bootstrap",
	})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		genFlags = generateFlags{}
	})

	require.NoError(t, rootCmd.Execute())

	root := filepath.Join(dir, "php-widgets")
	for _, p := range []string{".git", ".gitattributes", ".env", ".env.example", ".editorconfig", "src/PhpWidgets.php"} {
		_, err := os.Stat(filepath.Join(root, p))
		assert.NoError(t, err, p)
	}

	result, err := manifest.ValidateFile(filepath.Join(root, "composer.json"))
	require.NoError(t, err)
	assert.True(t, result.Valid, "issues: %v", result.Issues)

	c, err := manifest.ParseFile(filepath.Join(root, "composer.json"))
	require.NoError(t, err)
	assert.Equal(t, "Apache-2.0", c.License)
	assert.Equal(t, ">=7.0.0", c.Require["php"])

	travis, err := os.ReadFile(filepath.Join(root, ".travis.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(travis), "php:\n  - hhvm\n  - 7.0\n")

	assert.Contains(t, out.String(), "Created")
}
