package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed scaffolds
var scaffoldFS embed.FS

// Templates returns the built-in template set rooted at its top directory.
func Templates() fs.FS {
	sub, err := fs.Sub(scaffoldFS, "scaffolds")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
