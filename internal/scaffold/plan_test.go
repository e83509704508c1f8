package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construct-labs/construct/internal/catalog"
	"github.com/construct-labs/construct/internal/settings"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name          string
		fields        settings.Fields
		wantGit       bool
		wantBootstrap []string
	}{
		{"phpunit", settings.Fields{TestFramework: catalog.PHPUnit}, false, nil},
		{"phpspec with git", settings.Fields{TestFramework: catalog.PHPSpec, InitGit: true}, true, nil},
		{"behat", settings.Fields{TestFramework: catalog.Behat}, false, []string{"vendor/bin/behat", "--init"}},
		{"codeception", settings.Fields{TestFramework: catalog.Codeception}, false, []string{"vendor/bin/codecept", "bootstrap"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields.ProjectName = "acme/php-widgets"
			p, err := Build(newSettings(t, tt.fields), Templates())
			require.NoError(t, err)

			assert.Equal(t, "php-widgets", p.Dir)
			assert.Equal(t, tt.wantGit, p.InitGit)
			assert.True(t, p.Files.Has("composer.json"))

			if tt.wantBootstrap == nil {
				assert.Nil(t, p.Bootstrap)
				return
			}
			require.NotNil(t, p.Bootstrap)
			assert.Equal(t, tt.fields.TestFramework, p.Bootstrap.Framework)
			assert.Equal(t, tt.wantBootstrap, p.Bootstrap.Command)
		})
	}
}
