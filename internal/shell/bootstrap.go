package shell

import (
	"context"
	"fmt"

	"github.com/construct-labs/construct/internal/catalog"
)

// composerInstall installs the dependencies declared in composer.json.
var composerInstall = []string{"composer", "install", "--no-interaction"}

// Bootstrap installs the project's dependencies and then runs the
// framework's bootstrap command in dir. Frameworks without one are a no-op.
func Bootstrap(ctx context.Context, r Runner, framework catalog.TestFramework, dir string) error {
	command := framework.Spec().Bootstrap
	if len(command) == 0 {
		return nil
	}

	if err := r.Run(ctx, dir, composerInstall[0], composerInstall[1:]...); err != nil {
		return fmt.Errorf("installing dependencies: %w", err)
	}
	if err := r.Run(ctx, dir, command[0], command[1:]...); err != nil {
		return fmt.Errorf("bootstrapping %s: %w", framework, err)
	}
	return nil
}
