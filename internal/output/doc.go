// Package output provides terminal output for the construct CLI: a
// charmbracelet/log logger on stderr and lipgloss styles for the lines
// printed to stdout while a project is generated.
package output
