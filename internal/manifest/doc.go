// Package manifest parses and validates composer.json manifests. Validation
// runs against an embedded JSON Schema covering the fields construct writes,
// so a generated manifest can be checked before it reaches the disk.
package manifest
