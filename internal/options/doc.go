// Package options checks raw user input against the catalogs. Unknown
// catalog values are replaced by the catalog default and reported as a
// Warning; a malformed project identifier is the only fatal outcome.
// Validation never writes output; rendering a Warning is the caller's job.
package options
