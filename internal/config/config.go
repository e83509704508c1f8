package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/construct-labs/construct/internal/branding"
	"github.com/construct-labs/construct/internal/options"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyLicense   = "license"
	KeyTest      = "test"
	KeyNamespace = "namespace"
	KeyPHP       = "php"
	KeyKeywords  = "keywords"
)

// Keys lists every recognized key in display order.
var Keys = []string{KeyLicense, KeyTest, KeyNamespace, KeyPHP, KeyKeywords}

// dirOverride is set by tests to keep them out of the real home directory.
var dirOverride string

// Dir returns the path to the config directory (~/.construct/).
func Dir() string {
	if dirOverride != "" {
		return dirOverride
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.construct/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyLicense, options.DefaultLicense)
	viper.SetDefault(KeyTest, options.DefaultTestFramework)
	viper.SetDefault(KeyNamespace, options.DefaultNamespace)
	viper.SetDefault(KeyPHP, options.DefaultPHPVersion)
	viper.SetDefault(KeyKeywords, "")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// IsKey reports whether key is recognized.
func IsKey(key string) bool {
	return slices.Contains(Keys, strings.ToLower(key))
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// All returns every recognized key with its effective value.
func All() map[string]string {
	m := make(map[string]string, len(Keys))
	for _, k := range Keys {
		m[k] = viper.GetString(k)
	}
	return m
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKey(key) {
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(strings.ToLower(key), value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Defaults returns a Raw for projectName whose catalog fields come from the
// loaded configuration.
func Defaults(projectName string) options.Raw {
	raw := options.NewRaw(projectName)
	raw.License = viper.GetString(KeyLicense)
	raw.TestFramework = viper.GetString(KeyTest)
	raw.Namespace = viper.GetString(KeyNamespace)
	raw.PHPVersion = viper.GetString(KeyPHP)
	raw.Keywords = viper.GetString(KeyKeywords)
	return raw
}
