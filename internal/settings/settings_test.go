package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construct-labs/construct/internal/catalog"
)

func TestNew(t *testing.T) {
	php := catalog.MustPHPVersion("7.0.0", false)
	s, err := New(Fields{
		ProjectName:   "acme/widgets",
		TestFramework: catalog.Behat,
		License:       catalog.LicenseGPL3,
		Namespace:     `Acme\Widgets\Core`,
		InitGit:       true,
		PHPCS:         true,
		Keywords:      "widgets, acme ,,tools",
		Vagrant:       true,
		EditorConfig:  true,
		PHPVersion:    php,
		Env:           true,
		Year:          2016,
	})
	require.NoError(t, err)

	assert.Equal(t, "acme/widgets", s.ProjectName())
	assert.Equal(t, "acme", s.VendorLower())
	assert.Equal(t, "widgets", s.ProjectLower())
	assert.Equal(t, "Acme", s.VendorStudly())
	assert.Equal(t, "Widgets", s.ProjectStudly())
	assert.Equal(t, catalog.Behat, s.TestFramework())
	assert.Equal(t, catalog.LicenseGPL3, s.License())
	assert.Equal(t, `Acme\Widgets\Core`, s.Namespace())
	assert.True(t, s.WithGitInit())
	assert.True(t, s.WithPHPCS())
	assert.True(t, s.WithVagrantfile())
	assert.True(t, s.WithEditorConfig())
	assert.True(t, s.WithEnvironmentFiles())
	assert.Equal(t, []string{"widgets", "acme", "tools"}, s.Keywords())
	assert.Equal(t, "widgets, acme ,,tools", s.RawKeywords())
	assert.Equal(t, "7.0.0", s.PHPVersion().String())
	assert.Equal(t, 2016, s.Year())
}

func TestNewRejectsMalformedIdentifier(t *testing.T) {
	s, err := New(Fields{ProjectName: "not-a-package"})
	assert.Nil(t, s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidProjectIdentifier))
}

func TestNewFillsZeroValuedCatalogFields(t *testing.T) {
	s, err := New(Fields{ProjectName: "acme/widgets"})
	require.NoError(t, err)

	assert.Equal(t, catalog.PHPUnit, s.TestFramework())
	assert.Equal(t, catalog.LicenseMIT, s.License())
	assert.Equal(t, "5.6.0", s.PHPVersion().String())
	assert.Equal(t, catalog.DefaultNamespace, s.RawNamespace())
	assert.False(t, s.WithGitInit())
	assert.Nil(t, s.Keywords())
}

func TestNamespace(t *testing.T) {
	tests := []struct {
		name      string
		project   string
		namespace string
		want      string
	}{
		{"placeholder is derived", "jonathan-torres/construct", `Vendor\Project`, `JonathanTorres\Construct`},
		{"empty is derived", "acme/php-widgets", "", `Acme\PhpWidgets`},
		{"explicit is kept", "acme/widgets", `Foo\Bar`, `Foo\Bar`},
		{"surrounding backslashes trimmed", "acme/widgets", `\Foo\Bar\`, `Foo\Bar`},
		{"placeholder with backslashes", "acme/widgets", `\Vendor\Project\`, `Acme\Widgets`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(Fields{ProjectName: tt.project, Namespace: tt.namespace})
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Namespace())
		})
	}
}
