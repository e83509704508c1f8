package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid-composer.json"))
	require.NoError(t, err)
	assert.True(t, result.Valid, "issues: %v", result.Issues)
	assert.Empty(t, result.Issues)
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file string
		path string
	}{
		{"invalid-missing-php.json", "/require"},
		{"invalid-bad-name.json", "/name"},
		{"invalid-psr4-prefix.json", "/license"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			require.NoError(t, err)
			assert.False(t, result.Valid)
			require.NotEmpty(t, result.Issues)

			var paths []string
			for _, issue := range result.Issues {
				assert.NotEmpty(t, issue.Message)
				assert.NotEmpty(t, issue.Keyword)
				paths = append(paths, issue.Path)
			}
			assert.Contains(t, paths, tt.path)
		})
	}
}

func TestValidate_PSR4PrefixMustEndWithBackslash(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-psr4-prefix.json"))
	require.NoError(t, err)
	var keywords []string
	for _, issue := range result.Issues {
		keywords = append(keywords, issue.Keyword)
	}
	assert.Contains(t, keywords, "enum")
	assert.Contains(t, keywords, "pattern")
}

func TestValidateFile_NotJSON(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-json.json"))
	assert.Error(t, err)
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(testPath("nonexistent.json"))
	assert.Error(t, err)
}

func TestDeduplicateIssues(t *testing.T) {
	in := []ValidationIssue{
		{Path: "/name", Keyword: "pattern", Message: "bad"},
		{Path: "/name", Keyword: "pattern", Message: "bad"},
		{Path: "/license", Keyword: "enum", Message: "bad"},
	}
	assert.Len(t, deduplicateIssues(in), 2)
}
