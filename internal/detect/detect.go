// Package detect inspects an existing project to recover the template it was
// created from, so features can be added after the fact.
package detect

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mini-vite/create/internal/catalog"
	"github.com/mini-vite/create/internal/errors"
	"github.com/mini-vite/create/internal/manifest"
)

// typeScriptMarkers are files whose presence alone marks a TypeScript project.
var typeScriptMarkers = []string{"tsconfig.json", "vite.config.ts", "vite.config.mts"}

const typeScriptSources = "src/**/*.{ts,tsx,mts}"

// Project is an existing project on disk.
type Project struct {
	Root       string
	Manifest   *manifest.Manifest
	Framework  catalog.UI
	TypeScript bool
}

// Template returns the template identifier matching the project, e.g. "react-ts".
func (p *Project) Template() string {
	id := string(p.Framework)
	if p.TypeScript {
		id += "-ts"
	}
	return id
}

// Inspect loads the manifest at root and infers framework and language.
// A project with neither react nor vue among its dependencies cannot be mapped
// to a template and is reported as E_TEMPLATE_NOT_FOUND.
func Inspect(root string) (*Project, error) {
	m, err := manifest.Load(filepath.Join(root, "package.json"))
	if err != nil {
		return nil, err
	}

	p := &Project{Root: root, Manifest: m, Framework: Framework(m)}
	if p.Framework == catalog.Vanilla {
		return nil, errors.New(errors.ETemplateNotFound, "Could not detect a React or Vue project")
	}
	p.TypeScript = TypeScript(root, m)
	return p, nil
}

// Framework returns React when react is a dependency, else Vue when vue is,
// else Vanilla.
func Framework(m *manifest.Manifest) catalog.UI {
	switch {
	case hasDependency(m, "react"):
		return catalog.React
	case hasDependency(m, "vue"):
		return catalog.Vue
	}
	return catalog.Vanilla
}

// TypeScript reports whether the project at root is written in TypeScript.
func TypeScript(root string, m *manifest.Manifest) bool {
	if hasDependency(m, "typescript") {
		return true
	}
	for _, name := range typeScriptMarkers {
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			return true
		}
	}
	matches, err := doublestar.Glob(os.DirFS(root), typeScriptSources)
	return err == nil && len(matches) > 0
}

// featureMarkers maps each built-in feature to the dependency it declares.
var featureMarkers = []struct{ feature, dependency string }{
	{"eslint", "@antfu/eslint-config"},
	{"tailwind", "@tailwindcss/vite"},
	{"unocss", "unocss"},
}

// Features returns the built-in features already declared in m, in
// registration order.
func Features(m *manifest.Manifest) []string {
	var found []string
	for _, fm := range featureMarkers {
		if hasDependency(m, fm.dependency) {
			found = append(found, fm.feature)
		}
	}
	return found
}

func hasDependency(m *manifest.Manifest, name string) bool {
	for _, section := range []string{manifest.Dependencies, manifest.DevDependencies} {
		if _, ok := m.Lookup(section, name); ok {
			return true
		}
	}
	return false
}
