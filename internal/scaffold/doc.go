// Package scaffold renders the files of a new PHP package from embedded
// templates. Generation is a pure function of a settings.Settings value and
// a template filesystem: it returns a FileSet in memory and never touches
// the disk or spawns processes. Build wraps the FileSet in a Plan carrying
// the signals for the git and test-framework collaborators.
package scaffold
