package shell

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// InitRepository creates an empty git repository in dir. An existing
// repository is left untouched.
func InitRepository(dir string) error {
	_, err := git.PlainInit(dir, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("initializing git repository in %s: %w", dir, err)
	}
	return nil
}
