package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

const manifestFile = "package.json"

// copyTree copies every file of tree into dest, except the root manifest
// and paths matching one of the ignore globs. It returns the copied paths
// relative to dest in walk order.
func copyTree(tree fs.FS, dest string, ignore []string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(tree, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if p == manifestFile && !d.IsDir() {
			return nil
		}
		if ignored(p, ignore) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(dest, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(tree, p, target); err != nil {
			return err
		}
		copied = append(copied, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copy template: %w", err)
	}
	return copied, nil
}

func copyFile(tree fs.FS, name, target string) error {
	data, err := fs.ReadFile(tree, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, data, 0o644)
}

// ignored matches p against each glob, and also its base name so that
// a plain "*.md" skips markdown files at any depth.
func ignored(p string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, p); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, path.Base(p)); ok {
			return true
		}
	}
	return false
}
