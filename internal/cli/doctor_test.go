package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunManifestCheck(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{
		"name": "acme/widgets",
		"description": "The Widgets package.",
		"license": "MIT",
		"require": {"php": ">=5.6.0"},
		"autoload": {"psr-4": {"Acme\\Widgets\\": "src/"}}
	}`), 0o644))

	var out bytes.Buffer
	require.NoError(t, runManifestCheck(&out, valid))
	assert.Contains(t, out.String(), "[ OK ] Valid composer.json: acme/widgets (MIT)")

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"name": "acme/widgets"}`), 0o644))

	out.Reset()
	err := runManifestCheck(&out, invalid)
	require.Error(t, err)
	assert.Contains(t, out.String(), "[FAIL]")
}
