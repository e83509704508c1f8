package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileLine(t *testing.T) {
	line := FormatFileLine("composer.json", StatusCreated)
	assert.Contains(t, line, "f:")
	assert.Contains(t, line, "composer.json")
	assert.Contains(t, line, "created")
}

func TestFormatFileLine_LongPathKeepsSeparator(t *testing.T) {
	path := strings.Repeat("x", minPathColumnWidth+10)
	line := FormatFileLine(path, StatusPlanned)
	assert.Contains(t, line, path+"  ")
}

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, FormatCheckmark("done"), "✔ done")
}

func TestStatusStyle_Unknown(t *testing.T) {
	assert.Equal(t, "x", StatusStyle("other").Render("x"))
}
