// Package scaffold creates a new project from a template: it prepares the
// target directory, copies the template tree, renames the manifest's
// package, applies the selected plugins and writes the final manifest.
package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mini-vite/create/internal/errors"
	"github.com/mini-vite/create/internal/logger"
	"github.com/mini-vite/create/internal/manifest"
	"github.com/mini-vite/create/internal/patch"
	"github.com/mini-vite/create/internal/plugin"
	"github.com/mini-vite/create/internal/templates"
)

// Selection holds what the user chose to create.
type Selection struct {
	TargetDir   string   // relative to the working directory, or absolute
	PackageName string   // defaults to the base name of the target directory
	Template    string   // template identifier, e.g. "vue-ts"
	Features    []string // plugin names; order does not decide execution
	Overwrite   bool     // empty a non-empty target instead of failing
}

// Result is returned after a successful Run.
type Result struct {
	Root        string
	PackageName string
	Files       []string // copied template files, relative to Root
	Plugins     *plugin.Result
	Duration    time.Duration
}

// Scaffolder creates projects.
type Scaffolder struct {
	Templates templates.Source
	Registry  *plugin.Registry
	Log       *logger.Logger
	Ignore    []string // doublestar globs of template paths not to copy

	OnStep        func(step, total int, label string) // called at each named stage
	OnPluginStart func(p plugin.Plugin)
	OnPluginDone  func(name string, err error)
}

const totalSteps = 4

// Run creates the project described by sel. Plugin failures do not fail the
// run; they are reported in Result.Plugins.
func (s *Scaffolder) Run(sel *Selection) (*Result, error) {
	start := time.Now()
	log := s.log()

	root, err := filepath.Abs(FormatTargetDir(sel.TargetDir))
	if err != nil {
		return nil, fmt.Errorf("resolve target: %w", err)
	}
	name := sel.PackageName
	if name == "" {
		name = filepath.Base(root)
	}
	if !IsValidPackageName(name) {
		return nil, errors.Newf(errors.EUsage, "Invalid package name: %s", name)
	}

	tree, err := s.Templates.Open(sel.Template)
	if err != nil {
		return nil, err
	}
	m, err := loadManifest(tree)
	if err != nil {
		return nil, err
	}

	s.step(1, "Preparing "+root)
	if err := s.prepare(root, sel.Overwrite); err != nil {
		return nil, err
	}

	s.step(2, fmt.Sprintf("Copying template %s", sel.Template))
	files, err := copyTree(tree, root, s.Ignore)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		log.Printf("  %s", f)
	}
	m.SetName(name)

	s.step(3, fmt.Sprintf("Applying %d feature(s)", len(sel.Features)))
	runner := &plugin.Runner{
		Registry: s.Registry,
		Log:      log,
		OnStart:  s.OnPluginStart,
		OnDone:   s.OnPluginDone,
	}
	applied := runner.Apply(sel.Features, root, sel.Template, m)

	s.step(4, "Writing "+manifestFile)
	if err := patch.WriteFile(filepath.Join(root, manifestFile), m); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	if err := renameGitignore(root); err != nil {
		return nil, err
	}

	return &Result{
		Root:        root,
		PackageName: name,
		Files:       files,
		Plugins:     applied,
		Duration:    time.Since(start),
	}, nil
}

func (s *Scaffolder) log() *logger.Logger {
	if s.Log == nil {
		return logger.NewDiscard()
	}
	return s.Log
}

func (s *Scaffolder) step(n int, label string) {
	s.log().Printf("[%d/%d] %s", n, totalSteps, label)
	if s.OnStep != nil {
		s.OnStep(n, totalSteps, label)
	}
}

// prepare makes sure root exists and is empty apart from .git.
func (s *Scaffolder) prepare(root string, overwrite bool) error {
	empty, err := IsEmpty(root)
	if err != nil {
		return err
	}
	if !empty {
		if !overwrite {
			return errors.Newf(errors.EUsage, "Target directory %q is not empty", root)
		}
		s.log().Printf("Removing existing files in %s", root)
		if err := EmptyDir(root); err != nil {
			return fmt.Errorf("empty target: %w", err)
		}
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create target: %w", err)
	}
	return nil
}

// loadManifest parses and validates the template's package.json.
func loadManifest(tree fs.FS) (*manifest.Manifest, error) {
	data, err := fs.ReadFile(tree, manifestFile)
	if err != nil {
		return nil, errors.Wrap(errors.EInvalidManifest, "template has no "+manifestFile, err)
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return nil, err
	}
	res, err := manifest.Validate(m)
	if err != nil {
		return nil, fmt.Errorf("validate manifest: %w", err)
	}
	if !res.Valid {
		issues := make([]string, len(res.Issues))
		for i, is := range res.Issues {
			issues[i] = is.String()
		}
		return nil, errors.Newf(errors.EInvalidManifest, "template %s is invalid: %s", manifestFile, strings.Join(issues, "; "))
	}
	return m, nil
}

// renameGitignore turns the template's _gitignore into .gitignore.
// Templates carry it under another name so package tooling keeps it.
func renameGitignore(root string) error {
	src := filepath.Join(root, "_gitignore")
	if !patch.Exists(src) {
		return nil
	}
	if err := os.Rename(src, filepath.Join(root, ".gitignore")); err != nil {
		return fmt.Errorf("rename gitignore: %w", err)
	}
	return nil
}
