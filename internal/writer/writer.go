package writer

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/construct-labs/construct/internal/scaffold"
)

// ErrTargetNotEmpty is returned when the output directory already has
// entries.
var ErrTargetNotEmpty = errors.New("target directory is not empty")

const (
	dirMode     os.FileMode = 0o755
	fileMode    os.FileMode = 0o644
	privateMode os.FileMode = 0o600
)

// privateFiles hold secrets and are written owner-only.
var privateFiles = map[string]bool{
	".env": true,
}

// Write stores every file of files under the root of fsys and returns the
// written paths in generation order. It refuses to write into a root that
// already has entries.
func Write(fsys billy.Filesystem, files *scaffold.FileSet) ([]string, error) {
	if err := ensureEmpty(fsys); err != nil {
		return nil, err
	}

	written := make([]string, 0, files.Len())
	for _, p := range files.Paths() {
		content, _ := files.Content(p)

		if dir := path.Dir(p); dir != "." {
			if err := fsys.MkdirAll(dir, dirMode); err != nil {
				return written, fmt.Errorf("creating directory %s: %w", dir, err)
			}
		}

		if err := util.WriteFile(fsys, p, []byte(content), Mode(p)); err != nil {
			return written, fmt.Errorf("writing %s: %w", p, err)
		}
		written = append(written, p)
	}
	return written, nil
}

// Mode returns the permission bits used for the generated file at p.
func Mode(p string) os.FileMode {
	if privateFiles[path.Base(p)] {
		return privateMode
	}
	return fileMode
}

func ensureEmpty(fsys billy.Filesystem) error {
	entries, err := fsys.ReadDir("/")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading target directory %s: %w", fsys.Root(), err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%s: %w", fsys.Root(), ErrTargetNotEmpty)
	}
	return nil
}
