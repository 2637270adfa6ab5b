// Package patch implements the read-modify-write primitives plugins use to
// change generated files. Nothing here panics or returns untyped errors:
// every failure is an *errors.Error with E_IO, E_FILE_NOT_FOUND or
// E_SEARCH_NOT_FOUND.
//
// Idempotence is the caller's job. Check with Contains before inserting.
package patch

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/mini-vite/create/internal/errors"
)

// Position selects where Inject places the inserted text relative to the match.
type Position int

const (
	Before Position = iota
	After
)

// WriteFile writes content to path, creating parent directories as needed
// and overwriting any existing file. Strings and byte slices are written
// verbatim; any other value is encoded as indented JSON with a trailing newline.
func WriteFile(path string, content any) error {
	data, err := encode(content)
	if err != nil {
		return errors.Wrap(errors.EIO, "", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.EIO, "", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.EIO, "", err)
	}
	return nil
}

// Inject inserts insert next to the first occurrence of search in the file at path.
// The file is left untouched when it is missing or does not contain search.
func Inject(path, search, insert string, pos Position) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.EFileNotFound, "File not found")
		}
		return errors.Wrap(errors.EIO, "", err)
	}

	content := string(data)
	i := strings.Index(content, search)
	if i < 0 {
		return errors.Newf(errors.ESearchNotFound, "Search string not found: %s", search)
	}

	at := i
	if pos == After {
		at = i + len(search)
	}
	return WriteFile(path, content[:at]+insert+content[at:])
}

// ReadFile returns the file's content as a string.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New(errors.EFileNotFound, "File not found")
		}
		return "", errors.Wrap(errors.EIO, "", err)
	}
	return string(data), nil
}

// Prepend writes prefix followed by the file's current content.
func Prepend(path, prefix string) error {
	content, err := ReadFile(path)
	if err != nil {
		return err
	}
	return WriteFile(path, prefix+content)
}

// Contains reports whether the file at path contains needle.
// A missing file is not an error and reports false.
func Contains(path, needle string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(errors.EIO, "", err)
	}
	return strings.Contains(string(data), needle), nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func encode(content any) ([]byte, error) {
	switch c := content.(type) {
	case string:
		return []byte(c), nil
	case []byte:
		return c, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(content); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
