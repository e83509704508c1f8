package scaffold

import (
	"io/fs"

	"github.com/construct-labs/construct/internal/catalog"
	"github.com/construct-labs/construct/internal/settings"
)

// Plan is everything the collaborators need to materialize a project.
type Plan struct {
	// Dir is the output directory name, the lower-cased project segment.
	Dir   string
	Files *FileSet

	// InitGit asks the shell collaborator to initialize a repository in Dir.
	InitGit bool

	// Bootstrap is set when the test framework needs a post-install step.
	Bootstrap *BootstrapSignal
}

// BootstrapSignal asks the shell collaborator to run Command in Dir.
type BootstrapSignal struct {
	Framework catalog.TestFramework
	Command   []string
}

// Build generates the file set for s and collects the collaborator signals.
func Build(s *settings.Settings, src fs.FS) (*Plan, error) {
	files, err := Generate(s, src)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		Dir:     s.ProjectLower(),
		Files:   files,
		InitGit: s.WithGitInit(),
	}
	if fw := s.TestFramework(); fw.NeedsBootstrap() {
		p.Bootstrap = &BootstrapSignal{
			Framework: fw,
			Command:   append([]string(nil), fw.Spec().Bootstrap...),
		}
	}
	return p, nil
}
