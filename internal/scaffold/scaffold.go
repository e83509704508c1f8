package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/construct-labs/construct/internal/catalog"
	"github.com/construct-labs/construct/internal/matrix"
	"github.com/construct-labs/construct/internal/settings"
)

// artifact maps one template to one output path. include is nil for
// artifacts that are always generated.
type artifact struct {
	template func(d *TemplateData) string
	path     func(d *TemplateData) string
	include  func(s *settings.Settings) bool
}

func fixed(s string) func(*TemplateData) string {
	return func(*TemplateData) string { return s }
}

var baseArtifacts = []artifact{
	{template: fixed("composer.json.tmpl"), path: fixed("composer.json")},
	{template: fixed("README.md.tmpl"), path: fixed("README.md")},
	{
		template: func(d *TemplateData) string { return "licenses/" + d.License.String() + ".tmpl" },
		path:     fixed("LICENSE.md"),
	},
	{template: fixed("CHANGELOG.md.tmpl"), path: fixed("CHANGELOG.md")},
	{template: fixed("CONTRIBUTING.md.tmpl"), path: fixed("CONTRIBUTING.md")},
	{template: fixed("gitignore.tmpl"), path: fixed(".gitignore")},
	{template: fixed("travis.yml.tmpl"), path: fixed(".travis.yml")},
	{
		template: fixed("Project.php.tmpl"),
		path:     func(d *TemplateData) string { return "src/" + d.ProjectStudly + ".php" },
	},
}

var frameworkArtifacts = map[catalog.TestFramework][]artifact{
	catalog.PHPUnit: {
		{template: fixed("frameworks/phpunit/phpunit.xml.dist.tmpl"), path: fixed("phpunit.xml.dist")},
		{
			template: fixed("frameworks/phpunit/Test.php.tmpl"),
			path:     func(d *TemplateData) string { return "tests/" + d.ProjectStudly + "Test.php" },
		},
	},
	catalog.Behat: {
		{template: fixed("frameworks/behat/behat.yml.tmpl"), path: fixed("behat.yml")},
		{template: fixed("frameworks/behat/FeatureContext.php.tmpl"), path: fixed("features/bootstrap/FeatureContext.php")},
		{
			template: fixed("frameworks/behat/project.feature.tmpl"),
			path:     func(d *TemplateData) string { return "features/" + d.Project + ".feature" },
		},
	},
	catalog.PHPSpec: {
		{template: fixed("frameworks/phpspec/phpspec.yml.tmpl"), path: fixed("phpspec.yml")},
		{
			template: fixed("frameworks/phpspec/Spec.php.tmpl"),
			path:     func(d *TemplateData) string { return "spec/" + d.ProjectStudly + "Spec.php" },
		},
	},
	catalog.Codeception: {
		{template: fixed("frameworks/codeception/codeception.yml.tmpl"), path: fixed("codeception.yml")},
		{template: fixed("frameworks/codeception/unit.suite.yml.tmpl"), path: fixed("tests/unit.suite.yml")},
		{
			template: fixed("frameworks/codeception/Test.php.tmpl"),
			path:     func(d *TemplateData) string { return "tests/unit/" + d.ProjectStudly + "Test.php" },
		},
	},
}

var optionalArtifacts = []artifact{
	{
		template: fixed("optional/gitattributes.tmpl"),
		path:     fixed(".gitattributes"),
		include:  (*settings.Settings).WithGitInit,
	},
	{
		template: fixed("optional/php_cs.tmpl"),
		path:     fixed(".php_cs"),
		include:  (*settings.Settings).WithPHPCS,
	},
	{
		template: fixed("optional/Vagrantfile.tmpl"),
		path:     fixed("Vagrantfile"),
		include:  (*settings.Settings).WithVagrantfile,
	},
	{
		template: fixed("optional/editorconfig.tmpl"),
		path:     fixed(".editorconfig"),
		include:  (*settings.Settings).WithEditorConfig,
	},
	{
		template: fixed("optional/env.tmpl"),
		path:     fixed(".env"),
		include:  (*settings.Settings).WithEnvironmentFiles,
	},
	{
		template: fixed("optional/env.example.tmpl"),
		path:     fixed(".env.example"),
		include:  (*settings.Settings).WithEnvironmentFiles,
	},
}

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// json renders v as a JSON literal without HTML escaping.
	"json": func(v any) (string, error) {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	},
}

// Generate renders the complete file set for s from the templates in src.
// Use Templates() for the built-in set.
func Generate(s *settings.Settings, src fs.FS) (*FileSet, error) {
	c := catalog.Default()
	return GenerateWith(s, src, matrix.FromCatalog(c), c.AlternateRuntime)
}

// GenerateWith is Generate with an explicit matrix deriver.
func GenerateWith(s *settings.Settings, src fs.FS, d *matrix.Deriver, alternateRuntime string) (*FileSet, error) {
	data := NewTemplateData(s, d, alternateRuntime)

	framework, ok := frameworkArtifacts[s.TestFramework()]
	if !ok {
		return nil, fmt.Errorf("no templates for test framework %q", s.TestFramework())
	}

	artifacts := make([]artifact, 0, len(baseArtifacts)+len(framework)+len(optionalArtifacts))
	artifacts = append(artifacts, baseArtifacts...)
	artifacts = append(artifacts, framework...)
	artifacts = append(artifacts, optionalArtifacts...)

	files := NewFileSet()
	for _, a := range artifacts {
		if a.include != nil && !a.include(s) {
			continue
		}

		name := a.template(data)
		content, err := Render(src, name, data)
		if err != nil {
			return nil, err
		}
		if err := files.Add(a.path(data), content); err != nil {
			return nil, err
		}
	}

	return files, nil
}

// Render parses the named template from src and executes it with data.
// Missing keys are errors.
func Render(src fs.FS, name string, data any) (string, error) {
	raw, err := fs.ReadFile(src, name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
