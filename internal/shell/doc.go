// Package shell performs the side effects that follow file generation:
// initializing a git repository and bootstrapping the selected test
// framework through composer.
package shell
