package output

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func captureLog(verbose bool) *bytes.Buffer {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Verbose: verbose, Writer: &buf})
	return &buf
}

func TestSetupLogging_DefaultInfoLevel(t *testing.T) {
	captureLog(false)
	assert.Equal(t, log.InfoLevel, Logger().GetLevel())
}

func TestSetupLogging_VerboseEnablesDebugLevel(t *testing.T) {
	buf := captureLog(true)
	assert.Equal(t, log.DebugLevel, Logger().GetLevel())

	Debug("verbose-msg")
	assert.Contains(t, buf.String(), "verbose-msg")
}

func TestDebugHiddenByDefault(t *testing.T) {
	buf := captureLog(false)
	Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestSubstitution(t *testing.T) {
	buf := captureLog(false)
	Substitution(`"WTFPL" is not a supported license. Using MIT.`, "license", "WTFPL", "MIT")

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "subject=license")
	assert.Contains(t, out, "rejected=WTFPL")
	assert.Contains(t, out, "substituted=MIT")
}

func TestSubstitution_NoReplacement(t *testing.T) {
	buf := captureLog(false)
	Substitution("naming", "namingConvention", "acme/php-widgets", "")

	out := buf.String()
	assert.Contains(t, out, "rejected=acme/php-widgets")
	assert.NotContains(t, out, "substituted")
}
