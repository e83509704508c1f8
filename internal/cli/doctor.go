package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/construct-labs/construct/internal/config"
	"github.com/construct-labs/construct/internal/manifest"
)

var checkManifest string

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a composer.json file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tools generated projects rely on",
	Long: `Report whether php, composer and git are on the PATH and where the
configuration file lives. Composer is needed to bootstrap behat and
codeception projects.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if checkManifest != "" {
			return runManifestCheck(out, checkManifest)
		}

		fmt.Fprintln(out, "Tools check:")
		for _, name := range []string{"php", "composer", "git"} {
			checkBinary(out, name)
		}

		fmt.Fprintln(out, "Config check:")
		if _, err := os.Stat(config.FilePath()); err != nil {
			fmt.Fprintf(out, "  [INFO] no config file at %s\n", config.FilePath())
		} else {
			fmt.Fprintf(out, "  [ OK ] %s\n", config.FilePath())
		}
		return nil
	},
}

func checkBinary(out io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, path)
}

func runManifestCheck(out io.Writer, path string) error {
	fmt.Fprintf(out, "Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		c, err := manifest.ParseFile(path)
		if err != nil {
			fmt.Fprintln(out, "  [ OK ] Valid composer.json")
			return nil
		}
		fmt.Fprintf(out, "  [ OK ] Valid composer.json: %s (%s)\n", c.Name, c.License)
		return nil
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	printIssues(out, result.Issues)
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}

func printIssues(out io.Writer, issues []manifest.ValidationIssue) {
	for _, issue := range issues {
		if issue.Path != "" {
			fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(out, "    - %s\n", issue.Message)
		}
	}
}
