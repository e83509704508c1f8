// Package config manages user-level settings stored at
// ~/.construct/config.yaml. The stored keys are defaults for the generate
// command's options: license, test framework, namespace, PHP version and
// keywords. Environment variables with the CONSTRUCT_ prefix override them.
package config
