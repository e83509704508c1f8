package scaffold

import "fmt"

// FileSet maps relative output paths to rendered content. Paths keep their
// insertion order so repeated runs enumerate files identically.
type FileSet struct {
	paths []string
	files map[string]string
}

// NewFileSet returns an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{files: make(map[string]string)}
}

// Add stores content under path. Adding a path twice is an error.
func (f *FileSet) Add(path, content string) error {
	if _, exists := f.files[path]; exists {
		return fmt.Errorf("duplicate output path %s", path)
	}
	f.paths = append(f.paths, path)
	f.files[path] = content
	return nil
}

// Paths returns the output paths in insertion order.
func (f *FileSet) Paths() []string {
	return append([]string(nil), f.paths...)
}

// Content returns the content stored under path.
func (f *FileSet) Content(path string) (string, bool) {
	c, ok := f.files[path]
	return c, ok
}

// Has reports whether path is part of the set.
func (f *FileSet) Has(path string) bool {
	_, ok := f.files[path]
	return ok
}

// Len returns the number of files.
func (f *FileSet) Len() int { return len(f.paths) }

// Map returns a copy of the path to content mapping.
func (f *FileSet) Map() map[string]string {
	m := make(map[string]string, len(f.files))
	for k, v := range f.files {
		m[k] = v
	}
	return m
}
