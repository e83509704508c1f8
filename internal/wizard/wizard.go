package wizard

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/construct-labs/construct/internal/catalog"
	"github.com/construct-labs/construct/internal/options"
)

var (
	// ErrCancelled is returned when the user aborts a prompt.
	ErrCancelled = errors.New("wizard cancelled")

	// ErrNoTerminal is returned when stdin is not a terminal.
	ErrNoTerminal = errors.New("interactive mode requires a terminal")
)

// Available reports whether stdin is attached to a terminal.
func Available() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Run asks for every option in raw, using its current values as defaults.
func Run(raw *options.Raw, c catalog.Catalog) error {
	if !Available() {
		return ErrNoTerminal
	}

	// One form per field avoids the huh viewport scroll bug with multiple
	// groups.
	for _, field := range Fields(raw, c) {
		form := huh.NewForm(huh.NewGroup(field)).WithAccessible(false)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return ErrCancelled
			}
			return fmt.Errorf("wizard error: %w", err)
		}
	}
	return nil
}

// Fields builds the prompts bound to raw, in the order they are asked.
func Fields(raw *options.Raw, c catalog.Catalog) []huh.Field {
	return []huh.Field{
		huh.NewSelect[string]().
			Title("License").
			Options(Options(c.LicenseNames())...).
			Value(&raw.License),
		huh.NewSelect[string]().
			Title("Test framework").
			Options(Options(c.TestFrameworkNames())...).
			Value(&raw.TestFramework),
		huh.NewSelect[string]().
			Title("Minimum PHP version").
			Options(Options(c.PHPVersionNames())...).
			Value(&raw.PHPVersion),
		huh.NewInput().
			Title("Namespace").
			Placeholder(catalog.DefaultNamespace).
			Value(&raw.Namespace),
		huh.NewInput().
			Title("Keywords").
			Description("Comma separated.").
			Value(&raw.Keywords),
		confirm("Initialize a git repository?", &raw.Git),
		confirm("Add a PHP Coding Standards Fixer config?", &raw.PHPCS),
		confirm("Add a Vagrantfile?", &raw.Vagrant),
		confirm("Add an .editorconfig?", &raw.EditorConfig),
		confirm("Add .env files?", &raw.Env),
	}
}

// Options turns catalog names into select options.
func Options(names []string) []huh.Option[string] {
	opts := make([]huh.Option[string], len(names))
	for i, name := range names {
		opts[i] = huh.NewOption(name, name)
	}
	return opts
}

func confirm(title string, value *bool) *huh.Confirm {
	return huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(value)
}
