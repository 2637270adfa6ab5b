// Package templates provides the starter trees copied into new projects.
// Each tree lives in a directory named template-<id>. The trees are embedded
// in the binary and may be overridden by a directory on disk.
package templates

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mini-vite/create/internal/errors"
)

// all: keeps _gitignore, which embed would otherwise skip.
//
//go:embed all:template-*
var embedded embed.FS

const dirPrefix = "template-"

// Source resolves template identifiers to file trees.
type Source struct {
	// Dir, when set, is searched for template-<id> before the embedded trees.
	Dir string
}

// Open returns the tree for template id.
func (s Source) Open(id string) (fs.FS, error) {
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, errors.Newf(errors.ETemplateNotFound, "Template not found: %q", id)
	}
	name := dirPrefix + id

	if s.Dir != "" {
		dir := filepath.Join(s.Dir, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return os.DirFS(dir), nil
		}
	}

	if _, err := fs.Stat(embedded, name); err != nil {
		return nil, errors.Newf(errors.ETemplateNotFound, "Template not found: %s", id)
	}
	return fs.Sub(embedded, name)
}

// Has reports whether id resolves to a tree.
func (s Source) Has(id string) bool {
	_, err := s.Open(id)
	return err == nil
}

// IDs lists every resolvable template identifier, sorted.
func (s Source) IDs() []string {
	set := map[string]bool{}
	collect := func(entries []fs.DirEntry) {
		for _, e := range entries {
			if e.IsDir() && strings.HasPrefix(e.Name(), dirPrefix) {
				set[strings.TrimPrefix(e.Name(), dirPrefix)] = true
			}
		}
	}

	if entries, err := fs.ReadDir(embedded, "."); err == nil {
		collect(entries)
	}
	if s.Dir != "" {
		if entries, err := os.ReadDir(s.Dir); err == nil {
			collect(entries)
		}
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
