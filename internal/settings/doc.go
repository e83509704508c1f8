// Package settings defines the immutable record of a scaffolding run: the
// vendor/project identifier and every user choice after validation. A
// Settings value is built once per invocation and only read afterwards.
package settings
