package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// gitDir survives EmptyDir and does not count towards IsEmpty.
const gitDir = ".git"

// IsEmpty reports whether dir has no entries other than .git.
// A missing directory is empty.
func IsEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("read dir: %w", err)
	}
	for _, e := range entries {
		if e.Name() != gitDir {
			return false, nil
		}
	}
	return true, nil
}

// EmptyDir removes everything in dir except .git. A missing directory is a no-op.
func EmptyDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read dir: %w", err)
	}
	for _, e := range entries {
		if e.Name() == gitDir {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("remove %s: %w", e.Name(), err)
		}
	}
	return nil
}
