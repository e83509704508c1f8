// Package wizard prompts for generation options on a terminal. Each prompt
// runs as its own huh form, and the answers are written back into an
// options.Raw so that validation stays in one place.
package wizard
