// Package writer materializes a generated file set onto a billy filesystem.
// The CLI passes an osfs rooted at the output directory; tests use memfs.
package writer
