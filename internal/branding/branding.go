// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults apply when a key is missing.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	GoModule         string `yaml:"go_module"`
	GitHubRepo       string `yaml:"github_repo"`
	AlternateRuntime string `yaml:"alternate_runtime"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:          "construct",
			DisplayName:      "Construct",
			Description:      "Scaffolding generator for PHP micro-packages",
			HomeDir:          ".construct",
			EnvPrefix:        "CONSTRUCT",
			GoModule:         "github.com/construct-labs/construct",
			GitHubRepo:       "construct-labs/construct",
			AlternateRuntime: "hhvm",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "construct").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".construct").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CONSTRUCT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// AlternateRuntime returns the secondary PHP interpreter that every CI
// matrix is exercised against (e.g., "hhvm").
func AlternateRuntime() string { load(); return defaults.AlternateRuntime }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("LICENSE") → "CONSTRUCT_LICENSE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
