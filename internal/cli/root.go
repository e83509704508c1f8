package cli

import (
	"github.com/spf13/cobra"

	"github.com/construct-labs/construct/internal/branding"
	"github.com/construct-labs/construct/internal/config"
	"github.com/construct-labs/construct/internal/output"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates the boilerplate of a new PHP package: composer.json,
license, changelog, CI configuration, test framework wiring and optional
editor, linter, Vagrant and environment files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLogging(output.LogConfig{Verbose: verbose})
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		output.Error(err.Error())
		return err
	}
	return nil
}
