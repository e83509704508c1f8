package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/construct-labs/construct/internal/catalog"
	"github.com/construct-labs/construct/internal/config"
	"github.com/construct-labs/construct/internal/manifest"
	"github.com/construct-labs/construct/internal/options"
	"github.com/construct-labs/construct/internal/output"
	"github.com/construct-labs/construct/internal/scaffold"
	"github.com/construct-labs/construct/internal/shell"
	"github.com/construct-labs/construct/internal/wizard"
	"github.com/construct-labs/construct/internal/writer"
)

// generateFlags holds the generate command's flag values.
type generateFlags struct {
	test         string
	license      string
	namespace    string
	php          string
	keywords     string
	git          bool
	phpcs        bool
	vagrant      bool
	editorConfig bool
	env          bool

	dir         string
	dryRun      bool
	noBootstrap bool
	interactive bool
}

var genFlags generateFlags

func init() {
	bindGenerateFlags(generateCmd, &genFlags)
	rootCmd.AddCommand(generateCmd)
}

func bindGenerateFlags(cmd *cobra.Command, g *generateFlags) {
	f := cmd.Flags()
	f.StringVarP(&g.test, "test", "t", options.DefaultTestFramework, "Test framework (phpunit, behat, phpspec, codeception)")
	f.StringVarP(&g.license, "license", "l", options.DefaultLicense, "License (MIT, Apache-2.0, GPL-2.0, GPL-3.0)")
	f.StringVarP(&g.namespace, "namespace", "s", options.DefaultNamespace, "Root namespace, derived from the project name by default")
	f.StringVar(&g.php, "php", options.DefaultPHPVersion, "Minimum PHP version (5.4.0, 5.5.0, 5.6.0, 7.0.0)")
	f.StringVarP(&g.keywords, "keywords", "k", "", "Comma separated composer keywords")
	f.BoolVarP(&g.git, "git", "g", false, "Initialize a git repository and add .gitattributes")
	f.BoolVarP(&g.phpcs, "phpcs", "p", false, "Add a PHP Coding Standards Fixer config")
	f.BoolVar(&g.vagrant, "vagrant", false, "Add a Vagrantfile")
	f.BoolVarP(&g.editorConfig, "editor-config", "e", false, "Add an .editorconfig")
	f.BoolVar(&g.env, "env", false, "Add .env and .env.example files")

	f.StringVar(&g.dir, "dir", ".", "Parent directory of the generated project")
	f.BoolVar(&g.dryRun, "dry-run", false, "Print the files that would be generated without writing them")
	f.BoolVar(&g.noBootstrap, "no-bootstrap", false, "Skip composer install and the test framework bootstrap")
	f.BoolVarP(&g.interactive, "interactive", "i", false, "Prompt for options")
}

var generateCmd = &cobra.Command{
	Use:     "generate <vendor/project>",
	Aliases: []string{"new"},
	Short:   "Generate a PHP package skeleton",
	Long: `Generate the skeleton of a PHP package in ./<project>.

Unsupported licenses, test frameworks and PHP versions are replaced by the
defaults with a warning. Defaults can be changed with 'construct config set'.

Examples:
  construct generate acme/widgets
  construct generate acme/widgets -t behat -l GPL-3.0 --php 7.0.0 -g
  construct generate acme/widgets --env --editor-config --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := rawFromFlags(cmd, genFlags, args[0], time.Now().Year())

		if genFlags.interactive {
			if err := wizard.Run(&raw, catalog.Default()); err != nil {
				return err
			}
		}

		return generate(cmd.Context(), cmd.OutOrStdout(), raw, generateTarget{
			dir:         genFlags.dir,
			dryRun:      genFlags.dryRun,
			noBootstrap: genFlags.noBootstrap,
			runner:      shell.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
		})
	},
}

// rawFromFlags starts from the configured defaults and overlays the flags the
// user actually passed.
func rawFromFlags(cmd *cobra.Command, g generateFlags, projectName string, year int) options.Raw {
	raw := config.Defaults(projectName)
	raw.Year = year

	f := cmd.Flags()
	if f.Changed("test") {
		raw.TestFramework = g.test
	}
	if f.Changed("license") {
		raw.License = g.license
	}
	if f.Changed("namespace") {
		raw.Namespace = g.namespace
	}
	if f.Changed("php") {
		raw.PHPVersion = g.php
	}
	if f.Changed("keywords") {
		raw.Keywords = g.keywords
	}
	raw.Git = g.git
	raw.PHPCS = g.phpcs
	raw.Vagrant = g.vagrant
	raw.EditorConfig = g.editorConfig
	raw.Env = g.env
	return raw
}

// generateTarget describes where and how a plan is materialized.
type generateTarget struct {
	dir         string
	dryRun      bool
	noBootstrap bool
	runner      shell.Runner
}

func generate(ctx context.Context, out io.Writer, raw options.Raw, target generateTarget) error {
	v := options.NewValidator(catalog.Default())
	s, warnings, err := v.Settings(raw)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		output.Substitution(w.Message(), string(w.Subject), w.Rejected, w.Substituted)
	}

	plan, err := scaffold.Build(s, scaffold.Templates())
	if err != nil {
		return fmt.Errorf("generating %s: %w", s.ProjectName(), err)
	}
	checkComposer(plan.Files)

	root := filepath.Join(target.dir, plan.Dir)
	output.Debug("resolved settings",
		"project", s.ProjectName(),
		"namespace", s.Namespace(),
		"license", s.License(),
		"test", s.TestFramework(),
		"php", s.PHPVersion(),
		"dir", root,
	)

	if target.dryRun {
		for _, p := range plan.Files.Paths() {
			fmt.Fprintln(out, output.FormatFileLine(p, output.StatusPlanned))
		}
		return nil
	}

	written, err := writerWrite(root, plan.Files)
	for _, p := range written {
		fmt.Fprintln(out, output.FormatFileLine(p, output.StatusCreated))
	}
	if err != nil {
		return err
	}

	if plan.InitGit {
		if err := shell.InitRepository(root); err != nil {
			return err
		}
		output.Debug("initialized git repository", "dir", root)
	}

	if plan.Bootstrap != nil {
		if target.noBootstrap {
			output.Info("skipped bootstrap", "framework", plan.Bootstrap.Framework)
		} else if err := shell.Bootstrap(ctx, target.runner, plan.Bootstrap.Framework, root); err != nil {
			// The files are already in place; the user can finish by hand.
			output.Warn("bootstrap failed", "framework", plan.Bootstrap.Framework, "err", err)
		}
	}

	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Created %s in %s", output.StyleNoun.Render(s.ProjectName()), root)))
	return nil
}

// checkComposer reports schema issues in the generated composer.json.
// Generation continues regardless.
func checkComposer(files *scaffold.FileSet) {
	content, ok := files.Content("composer.json")
	if !ok {
		return
	}
	result, err := manifest.Validate([]byte(content))
	if err != nil {
		output.Warn("could not validate composer.json", "err", err)
		return
	}
	for _, issue := range result.Issues {
		output.Warn("composer.json issue", "path", issue.Path, "message", issue.Message)
	}
}

func writerWrite(root string, files *scaffold.FileSet) ([]string, error) {
	written, err := writer.Write(osfs.New(root), files)
	if err != nil {
		if errors.Is(err, writer.ErrTargetNotEmpty) {
			return written, fmt.Errorf("refusing to overwrite: %w", err)
		}
		return written, fmt.Errorf("writing project: %w", err)
	}
	return written, nil
}
